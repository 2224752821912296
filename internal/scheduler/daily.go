package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/mowbot/internal/photos"
	"github.com/joseph-ayodele/mowbot/internal/repository"
)

// DailyReset returns the job pool to its morning state once per local day:
// in-progress and completed jobs that are unscheduled or scheduled for
// today go back to pending with their assignment and timestamps cleared.
// Photos and notes are never touched.
type DailyReset struct {
	jobs   repository.JobRepository
	loc    *time.Location
	hour   int
	minute int
	logger *slog.Logger

	now func() time.Time // swappable for tests

	lastRun string // local date of the last completed run
}

func NewDailyReset(jobs repository.JobRepository, loc *time.Location, hour, minute int, logger *slog.Logger) *DailyReset {
	return &DailyReset{
		jobs:   jobs,
		loc:    loc,
		hour:   hour,
		minute: minute,
		logger: logger,
		now:    time.Now,
	}
}

// Run blocks until ctx is cancelled, firing once per local day at the
// configured wall-clock time. A run failure is logged and retried the next
// day; it never kills the loop.
func (d *DailyReset) Run(ctx context.Context) {
	for {
		next := d.nextFire(d.now().In(d.loc))
		d.logger.Info("daily reset scheduled", "at", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			d.logger.Info("daily reset loop stopped")
			return
		case <-timer.C:
			d.fire(ctx)
		}
	}
}

// nextFire is the next configured wall-clock instant strictly after now.
func (d *DailyReset) nextFire(now time.Time) time.Time {
	fire := time.Date(now.Year(), now.Month(), now.Day(), d.hour, d.minute, 0, 0, d.loc)
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 1)
	}
	return fire
}

// fire runs the reset at most once per local date. The timer can wake
// twice around a DST shift; the date guard makes the second wake a no-op.
func (d *DailyReset) fire(ctx context.Context) {
	date := d.now().In(d.loc).Format(photos.DateFormat)
	if date == d.lastRun {
		d.logger.Info("daily reset already ran today", "date", date)
		return
	}

	n, err := d.jobs.ResetStaleJobs(ctx, date)
	if err != nil {
		d.logger.Error("daily reset failed", "date", date, "error", err)
		return
	}
	d.lastRun = date
	d.logger.Info("daily reset complete", "date", date, "jobs_reset", n)
}
