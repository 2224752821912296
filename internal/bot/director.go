package bot

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/photos"
	"github.com/joseph-ayodele/mowbot/internal/session"
)

func (b *Bot) directorHome(ctx context.Context, st *session.State, userID, chatID int64) error {
	if err := b.requireDirector(userID); err != nil {
		return err
	}
	st.ClearAwaiting()

	counts, err := b.jobs.CountByStatus(ctx)
	if err != nil {
		return err
	}
	name := b.users.NameOf(userID, fmt.Sprintf("user %d", userID))
	text := fmt.Sprintf("%s\n\nJobs: %d total, %d active, %d completed",
		formatDashboardHeader(name, "Director"),
		counts.Total, counts.Active, counts.Completed)

	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: text,
		Keyboard: [][]Button{
			row(btn("📝 Assign Jobs", tok0(FamAssignmentList))),
			row(btn("✅ Completed Jobs", tok0(FamEmployeeChoiceList))),
		},
	})
}

// assignmentList enters the assignment workflow with a fresh selection.
func (b *Bot) assignmentList(ctx context.Context, st *session.State, userID, chatID int64) error {
	if err := b.requireDirector(userID); err != nil {
		return err
	}
	st.BeginSelection()
	return b.renderAssignPage(ctx, st, chatID)
}

func (b *Bot) toggleJob(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireDirector(userID); err != nil {
		return err
	}
	st.ToggleSelection(jobID)
	return b.renderAssignPage(ctx, st, chatID)
}

func (b *Bot) gotoPage(ctx context.Context, st *session.State, userID, chatID int64, page int) error {
	if err := b.requireDirector(userID); err != nil {
		return err
	}
	st.SetPage(page)
	return b.renderAssignPage(ctx, st, chatID)
}

// renderAssignPage draws one page of unassigned jobs with selection marks.
// Next appears only on a full page; whether a further page actually has
// rows is unknowable without overfetching and a dead Next is harmless.
func (b *Bot) renderAssignPage(ctx context.Context, st *session.State, chatID int64) error {
	page := st.Page()
	jobs, err := b.jobs.ListUnassigned(ctx, page, assignPageSize)
	if err != nil {
		return err
	}
	if len(jobs) == 0 && page > 1 {
		// walked past the last page, step back
		st.SetPage(page - 1)
		page = st.Page()
		jobs, err = b.jobs.ListUnassigned(ctx, page, assignPageSize)
		if err != nil {
			return err
		}
	}
	if len(jobs) == 0 {
		return b.renderer.Render(ctx, st, chatID, Screen{
			Text:     formatJobListHeader("Unassigned Jobs", 0) + "\nNo unassigned jobs right now.",
			Keyboard: [][]Button{row(btn(backPrefix+" Back", tok0(FamDirectorHome)))},
		})
	}

	selected := st.Selection()
	var kb [][]Button
	for _, j := range jobs {
		mark := "⬜️"
		if st.Selected(j.ID) {
			mark = "✅"
		}
		label := fmt.Sprintf("%s %s", mark, j.SiteName)
		if j.Area != nil && *j.Area != "" {
			label += " — " + *j.Area
		}
		kb = append(kb, row(btn(label, tok(FamToggleJob, int64(j.ID)))))
	}

	var nav []Button
	if page > 1 {
		nav = append(nav, btn("⬅️ Prev", tok(FamPage, int64(page-1))))
	}
	nav = append(nav, btn(backPrefix+" Back", tok0(FamDirectorHome)))
	if len(jobs) == assignPageSize {
		nav = append(nav, btn("➡️ Next", tok(FamPage, int64(page+1))))
	}
	kb = append(kb, nav)
	if len(selected) > 0 {
		kb = append(kb, row(btn(
			fmt.Sprintf("👤 Assign Selected (%d)", len(selected)),
			tok0(FamAssignSelected))))
	}

	text := fmt.Sprintf("%s\nPage %d. Tap jobs to select, then Assign Selected.",
		formatJobListHeader("Unassigned Jobs", len(jobs)), page)
	return b.renderer.Render(ctx, st, chatID, Screen{Text: text, Keyboard: kb})
}

// assignSelected asks which employee receives the current selection.
func (b *Bot) assignSelected(ctx context.Context, st *session.State, userID, chatID int64) error {
	if err := b.requireDirector(userID); err != nil {
		return err
	}
	if len(st.Selection()) == 0 {
		return common.ErrEmptySelection
	}

	kb := b.employeeButtons(FamAssignTo)
	if len(kb) == 0 {
		return b.renderer.Render(ctx, st, chatID, Screen{
			Text:     formatError("No Employees", "No employees are configured."),
			Keyboard: [][]Button{row(btn(backPrefix+" Back", tok0(FamAssignmentList)))},
		})
	}
	kb = append(kb, row(btn(backPrefix+" Back", tok0(FamAssignmentList))))
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: fmt.Sprintf("👤 Assign %d job(s) to:\n%s",
			len(st.Selection()), separator),
		Keyboard: kb,
	})
}

func (b *Bot) assignTo(ctx context.Context, st *session.State, userID, chatID int64, employeeID int64) error {
	if err := b.requireDirector(userID); err != nil {
		return err
	}
	selection := st.Selection()
	if len(selection) == 0 {
		return common.ErrEmptySelection
	}

	assigned, err := b.jobs.Assign(ctx, selection, employeeID)
	if err != nil {
		return err
	}
	st.ClearSelection()

	name := b.users.NameOf(employeeID, fmt.Sprintf("user %d", employeeID))
	body := fmt.Sprintf("%d job(s) assigned to %s.", assigned, name)
	if skipped := len(selection) - assigned; skipped > 0 {
		body += fmt.Sprintf(" %d selected job(s) no longer existed and were skipped.", skipped)
	}
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: formatSuccess("Jobs Assigned", body),
		Keyboard: [][]Button{
			row(btn("📝 Assign More", tok0(FamAssignmentList))),
			row(btn(backPrefix+" Dashboard", tok0(FamDirectorHome))),
		},
	})
}

// employeeChoiceList asks whose completed jobs to review.
func (b *Bot) employeeChoiceList(ctx context.Context, st *session.State, userID, chatID int64) error {
	if err := b.requireDirector(userID); err != nil {
		return err
	}
	kb := b.employeeButtons(FamViewCompleted)
	if len(kb) == 0 {
		return b.renderer.Render(ctx, st, chatID, Screen{
			Text:     formatError("No Employees", "No employees are configured."),
			Keyboard: [][]Button{row(btn(backPrefix+" Back", tok0(FamDirectorHome)))},
		})
	}
	kb = append(kb, row(btn(backPrefix+" Back", tok0(FamDirectorHome))))
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text:     "✅ Completed jobs for:\n" + separator,
		Keyboard: kb,
	})
}

func (b *Bot) viewCompleted(ctx context.Context, st *session.State, userID, chatID int64, employeeID int64) error {
	if err := b.requireDirector(userID); err != nil {
		return err
	}
	jobs, err := b.jobs.ListCompleted(ctx, employeeID, completedLimit)
	if err != nil {
		return err
	}
	name := b.users.NameOf(employeeID, fmt.Sprintf("user %d", employeeID))
	if len(jobs) == 0 {
		return b.renderer.Render(ctx, st, chatID, Screen{
			Text:     fmt.Sprintf("✅ Completed Jobs — %s\n%s\nNothing completed yet.", name, separator),
			Keyboard: [][]Button{row(btn(backPrefix+" Back", tok0(FamEmployeeChoiceList)))},
		})
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "✅ Completed Jobs — %s (latest %d)\n%s\n", name, len(jobs), separator)
	var kb [][]Button
	for _, j := range jobs {
		finished := "unknown"
		if j.FinishTime != nil {
			finished = j.FinishTime.In(b.ledger.Loc).Format("Mon 2 Jan 15:04")
		}
		photoCount := photos.CountForDate(j.Photos, b.ledger.EffectiveDate(j))
		fmt.Fprintf(&sb, "• %s — %s (%s, %d photos)\n", j.SiteName, finished, jobDuration(j), photoCount)
		kb = append(kb, row(btn("🔍 "+j.SiteName, tok(FamViewJob, int64(j.ID)))))
	}
	kb = append(kb, row(btn(backPrefix+" Back", tok0(FamEmployeeChoiceList))))
	return b.renderer.Render(ctx, st, chatID, Screen{Text: sb.String(), Keyboard: kb})
}

// directorViewJob shows the full card for a job under review: photos,
// site details and, for outdoor sites, the forecast.
func (b *Bot) directorViewJob(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireDirector(userID); err != nil {
		return err
	}
	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	notes, err := b.notes.ListByJob(ctx, jobID, notesShown)
	if err != nil {
		return err
	}

	date := b.ledger.EffectiveDate(j)
	count := photos.CountForDate(j.Photos, date)
	text := formatJobCard(j, notes, count)
	if j.Outdoor() && b.forecast != nil {
		if f, err := b.forecast.Forecast(ctx, j.WeatherLocation()); err == nil {
			text += "\n" + formatWeather(f, j.SiteName)
		} else {
			b.logger.Warn("forecast unavailable", "job_id", jobID, "error", err)
		}
	}

	id := int64(jobID)
	kb := [][]Button{}
	if count > 0 {
		kb = append(kb, row(btn("🖼️ View Photos", tok(FamViewPhotosGrid, id))))
	}
	contact, gateCode := b.directory.Apply(j)
	if contact != "" || gateCode != "" || (j.Address != nil && *j.Address != "") {
		kb = append(kb, row(btn("ℹ️ Site Info", tok(FamSiteInfo, id))))
	}
	if j.MapLink != nil && *j.MapLink != "" {
		kb = append(kb, row(btn("🗺️ Map Link", tok(FamMapLink, id))))
	}
	if j.Outdoor() && b.forecast != nil {
		kb = append(kb, row(btn("🌤️ Refresh Weather", tok(FamRefreshWeather, id))))
	}
	kb = append(kb, row(btn(backPrefix+" Back", tok0(FamEmployeeChoiceList))))
	return b.renderer.Render(ctx, st, chatID, Screen{Text: text, Keyboard: kb})
}

// employeeButtons builds one button per configured employee, ordered by id
// so screens are stable across renders.
func (b *Bot) employeeButtons(fam Family) [][]Button {
	ids := make([]int64, 0, len(b.users.Employees))
	for id := range b.users.Employees {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, k int) bool { return ids[i] < ids[k] })

	var kb [][]Button
	for _, id := range ids {
		kb = append(kb, row(btn("👤 "+b.users.Employees[id], tok(fam, id))))
	}
	return kb
}
