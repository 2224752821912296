package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/photos"
	"github.com/joseph-ayodele/mowbot/internal/session"
)

func (b *Bot) employeeHome(ctx context.Context, st *session.State, userID, chatID int64) error {
	if err := b.requireEmployee(userID); err != nil {
		return err
	}
	st.ClearAwaiting()
	name := b.users.NameOf(userID, fmt.Sprintf("user %d", userID))
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: formatDashboardHeader(name, "Employee"),
		Keyboard: [][]Button{
			row(btn("📋 My Jobs", tok0(FamMyJobs))),
		},
	})
}

// myJobs lists the employee's open jobs. Completed jobs drop off the list
// until the daily reset returns them to the pool.
func (b *Bot) myJobs(ctx context.Context, st *session.State, userID, chatID int64) error {
	if err := b.requireEmployee(userID); err != nil {
		return err
	}
	st.ClearAwaiting()

	exclude := constants.JobStatusCompleted
	jobs, err := b.jobs.ListByAssignee(ctx, userID, &exclude)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return b.renderer.Render(ctx, st, chatID, Screen{
			Text:     formatJobListHeader("My Jobs", 0) + "\nNo jobs assigned to you right now.",
			Keyboard: [][]Button{row(btn(backPrefix+" Back", tok0(FamEmployeeHome)))},
		})
	}

	var kb [][]Button
	for _, j := range jobs {
		label := fmt.Sprintf("%s %s", statusEmoji(j.Status), j.SiteName)
		kb = append(kb, row(btn(label, tok(FamJobMenu, int64(j.ID)))))
	}
	kb = append(kb, row(btn(backPrefix+" Back", tok0(FamEmployeeHome))))
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text:     formatJobListHeader("My Jobs", len(jobs)),
		Keyboard: kb,
	})
}

// jobMenu is the per-job screen. Which actions appear depends entirely on
// the job's current state, so a stale screen's buttons can always be
// tapped safely.
func (b *Bot) jobMenu(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireEmployee(userID); err != nil {
		return err
	}
	st.ClearAwaiting()
	return b.renderJobMenu(ctx, st, chatID, jobID)
}

func (b *Bot) renderJobMenu(ctx context.Context, st *session.State, chatID int64, jobID int) error {
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
	var kb [][]Button
	switch j.Status {
	case constants.JobStatusPending:
		kb = append(kb, row(btn("▶️ Start Job", tok(FamStartJob, id))))
	case constants.JobStatusInProgress:
		kb = append(kb,
			row(btn("🏁 Finish Job", tok(FamFinishJob, id))),
			row(btn("📸 Upload Photo", tok(FamUploadPhoto, id))),
			row(btn("📝 Add Note", tok(FamAddNote, id))),
		)
	}

	contact, gateCode := b.directory.Apply(j)
	if contact != "" || gateCode != "" || (j.Address != nil && *j.Address != "") {
		kb = append(kb, row(btn("ℹ️ Site Info", tok(FamSiteInfo, id))))
	}
	if j.MapLink != nil && *j.MapLink != "" {
		kb = append(kb, row(btn("🗺️ Map Link", tok(FamMapLink, id))))
	}
	if count > 0 {
		kb = append(kb, row(btn("🖼️ View Today's Photos", tok(FamViewPhotosGrid, id))))
	}
	if j.Outdoor() && b.forecast != nil {
		kb = append(kb, row(btn("🌤️ Refresh Weather", tok(FamRefreshWeather, id))))
	}
	kb = append(kb, row(btn(backPrefix+" Back", tok0(FamMyJobs))))

	return b.renderer.Render(ctx, st, chatID, Screen{Text: text, Keyboard: kb})
}

// startJob moves pending to in_progress. The loser of a double tap lands
// back on the job menu, which shows the state the winner produced.
func (b *Bot) startJob(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireEmployee(userID); err != nil {
		return err
	}
	err := b.jobs.Transition(ctx, jobID,
		constants.JobStatusPending, constants.JobStatusInProgress, b.ledger.Now())
	if err == common.ErrInvalidTransition {
		return b.renderJobMenu(ctx, st, chatID, jobID)
	}
	if err != nil {
		return err
	}
	return b.renderJobMenu(ctx, st, chatID, jobID)
}

func (b *Bot) finishJob(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireEmployee(userID); err != nil {
		return err
	}
	err := b.jobs.Transition(ctx, jobID,
		constants.JobStatusInProgress, constants.JobStatusCompleted, b.ledger.Now())
	if err == common.ErrInvalidTransition {
		return b.renderJobMenu(ctx, st, chatID, jobID)
	}
	if err != nil {
		return err
	}
	st.ClearAwaiting()

	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: formatSuccess("Job Finished",
			fmt.Sprintf("%s completed in %s.", j.SiteName, jobDuration(j))),
		Keyboard: [][]Button{
			row(btn("📋 My Jobs", tok0(FamMyJobs))),
			row(btn(backPrefix+" Dashboard", tok0(FamEmployeeHome))),
		},
	})
}

// uploadPhoto arms bulk photo capture after a quota pre-check. The check is
// advisory; the ingest pipeline re-checks under the per-job lock.
func (b *Bot) uploadPhoto(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireEmployee(userID); err != nil {
		return err
	}
	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	today := b.ledger.Today()
	count := photos.CountForDate(j.Photos, today)
	if count >= photos.DailyQuota {
		return common.ErrQuotaExceeded
	}

	st.AwaitPhoto(jobID)
	id := int64(jobID)
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: fmt.Sprintf("📸 Send photos for %s now.\n%s\n%d of %d used today. Tap Done Uploading when finished.",
			j.SiteName, separator, count, photos.DailyQuota),
		Keyboard: [][]Button{
			row(btn("✅ Done Uploading", tok(FamFinishUpload, id))),
			row(btn(dangerPrefix+" Cancel", tok(FamJobMenu, id))),
		},
	})
}

func (b *Bot) finishUpload(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireEmployee(userID); err != nil {
		return err
	}
	st.ClearAwaiting()

	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	count := photos.CountForDate(j.Photos, b.ledger.Today())
	id := int64(jobID)
	kb := [][]Button{}
	if count > 0 {
		kb = append(kb, row(btn("🖼️ View Today's Photos", tok(FamViewPhotosGrid, id))))
	}
	kb = append(kb, row(btn(backPrefix+" Back to Job", tok(FamJobMenu, id))))
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text:     formatSuccess("Upload Finished", formatUploadProgress(jobID, count)),
		Keyboard: kb,
	})
}

func (b *Bot) siteInfo(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireKnown(userID); err != nil {
		return err
	}
	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	contact, gateCode := b.directory.Apply(j)
	id := int64(jobID)
	back := row(btn(backPrefix+" Back", tok(b.jobBackFamily(userID), id)))
	if contact == "" && gateCode == "" && (j.Address == nil || *j.Address == "") {
		return b.renderer.Render(ctx, st, chatID, Screen{
			Text:     fmt.Sprintf("ℹ️ Site Info: %s\n%s\nNo site details on record.", j.SiteName, separator),
			Keyboard: [][]Button{back},
		})
	}
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text:     formatSiteInfo(j.SiteName, contact, gateCode, j.Address),
		Keyboard: [][]Button{back},
	})
}

func (b *Bot) mapLink(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireKnown(userID); err != nil {
		return err
	}
	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	id := int64(jobID)
	back := row(btn(backPrefix+" Back", tok(b.jobBackFamily(userID), id)))
	if j.MapLink == nil || *j.MapLink == "" {
		return b.renderer.Render(ctx, st, chatID, Screen{
			Text:     fmt.Sprintf("🗺️ %s\n%s\nNo map link on record.", j.SiteName, separator),
			Keyboard: [][]Button{back},
		})
	}
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text:     fmt.Sprintf("🗺️ %s\n%s\n%s", j.SiteName, separator, *j.MapLink),
		Keyboard: [][]Button{back},
	})
}

// addNote arms note capture; the next plain message becomes the note.
func (b *Bot) addNote(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireKnown(userID); err != nil {
		return err
	}
	j, err := b.jobs.Get(ctx, jobID)
	if err != nil {
		return err
	}
	st.AwaitNote(jobID)
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: fmt.Sprintf("📝 Add a note for %s\n%s\nSend the note as a message.", j.SiteName, separator),
		Keyboard: [][]Button{
			row(btn(dangerPrefix+" Cancel", tok(FamCancelNote, int64(jobID)))),
		},
	})
}

func (b *Bot) cancelNote(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireKnown(userID); err != nil {
		return err
	}
	st.ClearAwaiting()
	return b.renderJobMenu(ctx, st, chatID, jobID)
}

func (b *Bot) saveNote(ctx context.Context, st *session.State, userID, chatID int64, jobID int, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return common.ErrInvalidInput
	}
	if _, err := b.notes.Append(ctx, jobID, text, userID, b.roleOf(userID)); err != nil {
		return err
	}
	st.ClearAwaiting()
	// the note arrived as a new message below the old screen; render fresh
	st.SetScreen(0, 0)
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: formatSuccess("Note Added", "Your note was saved."),
		Keyboard: [][]Button{
			row(btn(backPrefix+" Back to Job", tok(FamJobMenu, int64(jobID)))),
		},
	})
}

// refreshWeather drops the cached forecast for the job's location and
// redraws the caller's job screen with a fresh one.
func (b *Bot) refreshWeather(ctx context.Context, st *session.State, userID, chatID int64, jobID int) error {
	if err := b.requireKnown(userID); err != nil {
		return err
	}
	if b.forecast != nil {
		j, err := b.jobs.Get(ctx, jobID)
		if err != nil {
			return err
		}
		b.forecast.Invalidate(j.WeatherLocation())
	}
	if b.roleOf(userID) == constants.RoleDirector {
		return b.directorViewJob(ctx, st, userID, chatID, jobID)
	}
	return b.renderJobMenu(ctx, st, chatID, jobID)
}
