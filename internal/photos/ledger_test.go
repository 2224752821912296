package photos

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/mowbot/internal/entity"
)

func TestRefNameRoundTrip(t *testing.T) {
	name := NewRefName(42, "2026-08-25", "b1946ac9")
	assert.Equal(t, "job_42_2026-08-25_b1946ac9.webp", name)

	ref, ok := ParseRef(name)
	require.True(t, ok)
	assert.Equal(t, 42, ref.JobID)
	assert.Equal(t, "2026-08-25", ref.Date)
	assert.Equal(t, "b1946ac9", ref.Suffix)
}

func TestParseRefRejectsMalformedNames(t *testing.T) {
	for _, name := range []string{
		"",
		"photo.webp",
		"job_x_2026-08-25_s.webp",
		"job_1_not-a-date_s.webp",
		"job_1_2026-08-25.webp", // no suffix
	} {
		_, ok := ParseRef(name)
		assert.False(t, ok, "expected reject: %q", name)
	}
}

func TestForDatePreservesOrderAndSkipsOtherDays(t *testing.T) {
	refs := []string{
		NewRefName(1, "2026-08-24", "aa"),
		NewRefName(1, "2026-08-25", "bb"),
		"garbage",
		NewRefName(1, "2026-08-25", "cc"),
	}
	got := ForDate(refs, "2026-08-25")
	assert.Equal(t, []string{
		NewRefName(1, "2026-08-25", "bb"),
		NewRefName(1, "2026-08-25", "cc"),
	}, got)
	assert.Equal(t, 2, CountForDate(refs, "2026-08-25"))
	assert.Equal(t, 1, CountForDate(refs, "2026-08-24"))
	assert.Equal(t, 0, CountForDate(refs, "2026-08-23"))
}

func TestQuotaCountsOnlyToday(t *testing.T) {
	var refs []string
	for i := 0; i < DailyQuota; i++ {
		refs = append(refs, NewRefName(1, "2026-08-24", "s"))
	}
	// yesterday's quota is full, today's is untouched
	assert.Equal(t, 0, CountForDate(refs, "2026-08-25"))
	assert.Equal(t, DailyQuota, CountForDate(refs, "2026-08-24"))
}

func fixedLedger(t *testing.T, instant string) *Ledger {
	t.Helper()
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	now, err := time.Parse(time.RFC3339, instant)
	require.NoError(t, err)
	l := NewLedger(loc)
	l.Now = func() time.Time { return now }
	return l
}

func TestTodayUsesDeploymentTimezone(t *testing.T) {
	// 23:30 UTC on the 24th is 00:30 on the 25th in London during BST
	l := fixedLedger(t, "2026-08-24T23:30:00Z")
	assert.Equal(t, "2026-08-25", l.Today())
}

func TestEffectiveDateFollowsFinishTime(t *testing.T) {
	l := fixedLedger(t, "2026-08-25T10:00:00Z")

	unfinished := &entity.Job{}
	assert.Equal(t, "2026-08-25", l.EffectiveDate(unfinished))

	finishedAt := time.Date(2026, 8, 20, 16, 0, 0, 0, time.UTC)
	finished := &entity.Job{FinishTime: &finishedAt}
	assert.Equal(t, "2026-08-20", l.EffectiveDate(finished))
}
