package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/mowbot/internal/repository"
)

// fakeJobs records ResetStaleJobs calls; the embedded interface panics on
// anything else, which is what we want in these tests.
type fakeJobs struct {
	repository.JobRepository
	calls []string
	err   error
}

func (f *fakeJobs) ResetStaleJobs(_ context.Context, localDate string) (int, error) {
	f.calls = append(f.calls, localDate)
	if f.err != nil {
		return 0, f.err
	}
	return 3, nil
}

func newTestReset(t *testing.T, jobs *fakeJobs, instant string) *DailyReset {
	t.Helper()
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	now, err := time.ParseInLocation("2006-01-02 15:04:05", instant, loc)
	require.NoError(t, err)
	d := NewDailyReset(jobs, loc, 5, 0, slog.New(slog.DiscardHandler))
	d.now = func() time.Time { return now }
	return d
}

func TestNextFireSameDayBeforeClock(t *testing.T) {
	d := newTestReset(t, &fakeJobs{}, "2026-08-25 03:10:00")
	next := d.nextFire(d.now())
	assert.Equal(t, "2026-08-25 05:00:00", next.Format("2006-01-02 15:04:05"))
}

func TestNextFireRollsToTomorrowAfterClock(t *testing.T) {
	d := newTestReset(t, &fakeJobs{}, "2026-08-25 05:00:00")
	next := d.nextFire(d.now())
	assert.Equal(t, "2026-08-26 05:00:00", next.Format("2006-01-02 15:04:05"))
}

func TestFireRunsOncePerDate(t *testing.T) {
	jobs := &fakeJobs{}
	d := newTestReset(t, jobs, "2026-08-25 05:00:01")

	d.fire(context.Background())
	d.fire(context.Background()) // spurious second wake, same date
	assert.Equal(t, []string{"2026-08-25"}, jobs.calls)
}

func TestFireRetriesNextDayAfterFailure(t *testing.T) {
	jobs := &fakeJobs{err: errors.New("store down")}
	d := newTestReset(t, jobs, "2026-08-25 05:00:01")

	d.fire(context.Background())
	require.Equal(t, []string{"2026-08-25"}, jobs.calls)

	// failed runs do not mark the date as done
	jobs.err = nil
	d.fire(context.Background())
	assert.Equal(t, []string{"2026-08-25", "2026-08-25"}, jobs.calls)
}
