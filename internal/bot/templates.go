package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/internal/entity"
	"github.com/joseph-ayodele/mowbot/internal/photos"
	"github.com/joseph-ayodele/mowbot/internal/weather"
)

const separator = "―――――――――――――――"

var statusEmojis = map[constants.JobStatus]string{
	constants.JobStatusPending:    "⏳",
	constants.JobStatusInProgress: "🔄",
	constants.JobStatusCompleted:  "✅",
}

const (
	backPrefix   = "🔙"
	dangerPrefix = "❌"
)

func statusEmoji(s constants.JobStatus) string {
	if e, ok := statusEmojis[s]; ok {
		return e
	}
	return "❓"
}

func formatDashboardHeader(name, role string) string {
	return fmt.Sprintf("👤 %s Dashboard\n%s\nWelcome, %s", role, separator, name)
}

func formatJobListHeader(title string, count int) string {
	return fmt.Sprintf("📋 %s (%d)\n%s", title, count, separator)
}

func formatSuccess(title, body string) string {
	return fmt.Sprintf("✅ %s\n\n%s", title, body)
}

func formatError(title, body string) string {
	return fmt.Sprintf("⚠️ %s\n\n%s", title, body)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}

func jobDuration(j *entity.Job) string {
	if d, ok := j.Duration(); ok {
		return formatDuration(d)
	}
	return "N/A"
}

func strOr(p *string, fallback string) string {
	if p == nil || *p == "" {
		return fallback
	}
	return *p
}

func formatJobCard(j *entity.Job, notes []*entity.Note, photoCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", statusEmoji(j.Status), j.SiteName)
	fmt.Fprintf(&b, "Status: %s\n", strings.ReplaceAll(string(j.Status), "_", " "))
	fmt.Fprintf(&b, "Area: %s\n", strOr(j.Area, "No Area"))
	fmt.Fprintf(&b, "Duration: %s\n", jobDuration(j))
	if photoCount > 0 {
		fmt.Fprintf(&b, "Photos: %d\n", photoCount)
	}
	if len(notes) > 0 {
		b.WriteString("Notes:\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "  • %s\n", n.Note)
		}
	}
	b.WriteString(separator)
	return b.String()
}

func formatUploadProgress(jobID, count int) string {
	return fmt.Sprintf("Job #%d now has %d of %d photos for today.", jobID, count, photos.DailyQuota)
}

func formatSiteInfo(siteName, contact, gateCode string, address *string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "ℹ️ Site Info: %s\n%s\n", siteName, separator)
	if address != nil && *address != "" {
		fmt.Fprintf(&b, "Address: %s\n", *address)
	}
	if contact != "" {
		fmt.Fprintf(&b, "Contact: %s\n", contact)
	}
	if gateCode != "" {
		fmt.Fprintf(&b, "Gate Code: %s\n", gateCode)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatWeather(f *weather.Forecast, siteName string) string {
	return fmt.Sprintf(
		"🌤️ Weather for %s\n%s\n%s, %.1f°C\nWind: %.0f kph, Rain: %.0f%%",
		siteName, separator, f.Description, f.TempC, f.WindKph, f.RainChance*100,
	)
}
