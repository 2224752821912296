package repository

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/gen/ent"
	"github.com/joseph-ayodele/mowbot/gen/ent/enttest"
	"github.com/joseph-ayodele/mowbot/internal/common"
)

var dbSeq int

func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:jobs_test_%d?mode=memory&cache=shared", dbSeq)
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func seedJob(t *testing.T, client *ent.Client, site string) int {
	t.Helper()
	row, err := client.Job.Create().SetSiteName(site).Save(context.Background())
	require.NoError(t, err)
	return row.ID
}

func TestGetMapsMissingJobToNotFound(t *testing.T) {
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())

	_, err := repo.Get(context.Background(), 999)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestTransitionHappyPath(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())
	id := seedJob(t, client, "Willow Court")

	started := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Transition(ctx, id,
		constants.JobStatusPending, constants.JobStatusInProgress, started))

	j, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusInProgress, j.Status)
	require.NotNil(t, j.StartTime)
	assert.True(t, j.StartTime.Equal(started))
	assert.Nil(t, j.FinishTime)

	finished := started.Add(90 * time.Minute)
	require.NoError(t, repo.Transition(ctx, id,
		constants.JobStatusInProgress, constants.JobStatusCompleted, finished))

	j, err = repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, j.Status)
	require.NotNil(t, j.FinishTime)
	d, ok := j.Duration()
	require.True(t, ok)
	assert.Equal(t, 90*time.Minute, d)
}

func TestTransitionDoubleStartLosesCleanly(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())
	id := seedJob(t, client, "Willow Court")

	require.NoError(t, repo.Transition(ctx, id,
		constants.JobStatusPending, constants.JobStatusInProgress, time.Now()))

	err := repo.Transition(ctx, id,
		constants.JobStatusPending, constants.JobStatusInProgress, time.Now())
	assert.ErrorIs(t, err, common.ErrInvalidTransition)
}

func TestTransitionFinishBeforeStartRefused(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())
	id := seedJob(t, client, "Willow Court")

	err := repo.Transition(ctx, id,
		constants.JobStatusInProgress, constants.JobStatusCompleted, time.Now())
	assert.ErrorIs(t, err, common.ErrInvalidTransition)
}

func TestTransitionMissingJobIsNotFound(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())

	err := repo.Transition(ctx, 12345,
		constants.JobStatusPending, constants.JobStatusInProgress, time.Now())
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestListUnassignedPagination(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())
	for i := 0; i < 12; i++ {
		seedJob(t, client, fmt.Sprintf("Site %02d", i))
	}

	page1, err := repo.ListUnassigned(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page1, 10)

	page2, err := repo.ListUnassigned(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, page2, 2)

	// pages do not overlap and order is stable
	assert.Greater(t, page2[0].ID, page1[len(page1)-1].ID)

	page3, err := repo.ListUnassigned(ctx, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, page3)
}

func TestAssignSkipsMissingJobs(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())
	a := seedJob(t, client, "Site A")
	b := seedJob(t, client, "Site B")

	n, err := repo.Assign(ctx, []int{a, 777, b}, 42)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	jobs, err := repo.ListByAssignee(ctx, 42, nil)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	// assigned jobs leave the unassigned pool
	pool, err := repo.ListUnassigned(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, pool)
}

func TestListByAssigneeExcludesStatus(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())
	a := seedJob(t, client, "Site A")
	b := seedJob(t, client, "Site B")
	_, err := repo.Assign(ctx, []int{a, b}, 42)
	require.NoError(t, err)

	require.NoError(t, repo.Transition(ctx, a,
		constants.JobStatusPending, constants.JobStatusInProgress, time.Now()))
	require.NoError(t, repo.Transition(ctx, a,
		constants.JobStatusInProgress, constants.JobStatusCompleted, time.Now()))

	exclude := constants.JobStatusCompleted
	open, err := repo.ListByAssignee(ctx, 42, &exclude)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, b, open[0].ID)
}

func TestListCompletedNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())

	base := time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)
	var ids []int
	for i := 0; i < 3; i++ {
		id := seedJob(t, client, fmt.Sprintf("Site %d", i))
		ids = append(ids, id)
		_, err := repo.Assign(ctx, []int{id}, 42)
		require.NoError(t, err)
		require.NoError(t, repo.Transition(ctx, id,
			constants.JobStatusPending, constants.JobStatusInProgress, base))
		require.NoError(t, repo.Transition(ctx, id,
			constants.JobStatusInProgress, constants.JobStatusCompleted,
			base.Add(time.Duration(i)*time.Hour)))
	}

	got, err := repo.ListCompleted(ctx, 42, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids[2], got[0].ID)
	assert.Equal(t, ids[1], got[1].ID)
}

func TestCountByStatus(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())

	a := seedJob(t, client, "Site A")
	seedJob(t, client, "Site B")
	c := seedJob(t, client, "Site C")

	require.NoError(t, repo.Transition(ctx, a,
		constants.JobStatusPending, constants.JobStatusInProgress, time.Now()))
	require.NoError(t, repo.Transition(ctx, c,
		constants.JobStatusPending, constants.JobStatusInProgress, time.Now()))
	require.NoError(t, repo.Transition(ctx, c,
		constants.JobStatusInProgress, constants.JobStatusCompleted, time.Now()))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, StatusCounts{Total: 3, Active: 1, Completed: 1}, counts)
}

func TestAppendPhotoPreservesOrder(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())
	id := seedJob(t, client, "Site A")

	require.NoError(t, repo.AppendPhoto(ctx, id, "job_1_2026-08-25_aa.webp"))
	require.NoError(t, repo.AppendPhoto(ctx, id, "job_1_2026-08-25_bb.webp"))
	assert.ErrorIs(t, repo.AppendPhoto(ctx, 999, "x"), common.ErrNotFound)

	j, err := repo.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"job_1_2026-08-25_aa.webp",
		"job_1_2026-08-25_bb.webp",
	}, j.Photos)
}

func TestResetStaleJobs(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())
	today := "2026-08-25"

	// unscheduled, completed: reset
	everyday := seedJob(t, client, "Everyday")
	// scheduled for today, in progress: reset
	scheduledToday := seedJob(t, client, "Scheduled Today")
	_, err := client.Job.UpdateOneID(scheduledToday).SetScheduledDate(today).Save(ctx)
	require.NoError(t, err)
	// scheduled for another day, completed: untouched
	scheduledLater := seedJob(t, client, "Scheduled Later")
	_, err = client.Job.UpdateOneID(scheduledLater).SetScheduledDate("2026-09-01").Save(ctx)
	require.NoError(t, err)
	// pending stays pending
	pending := seedJob(t, client, "Untouched Pending")

	for _, id := range []int{everyday, scheduledLater} {
		_, err := repo.Assign(ctx, []int{id}, 42)
		require.NoError(t, err)
		require.NoError(t, repo.Transition(ctx, id,
			constants.JobStatusPending, constants.JobStatusInProgress, time.Now()))
		require.NoError(t, repo.Transition(ctx, id,
			constants.JobStatusInProgress, constants.JobStatusCompleted, time.Now()))
	}
	_, err = repo.Assign(ctx, []int{scheduledToday}, 42)
	require.NoError(t, err)
	require.NoError(t, repo.Transition(ctx, scheduledToday,
		constants.JobStatusPending, constants.JobStatusInProgress, time.Now()))

	require.NoError(t, repo.AppendPhoto(ctx, everyday, "job_1_2026-08-25_aa.webp"))

	n, err := repo.ResetStaleJobs(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	j, err := repo.Get(ctx, everyday)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusPending, j.Status)
	assert.Nil(t, j.AssignedTo)
	assert.Nil(t, j.StartTime)
	assert.Nil(t, j.FinishTime)
	// the photo ledger survives the reset
	assert.Len(t, j.Photos, 1)

	j, err = repo.Get(ctx, scheduledToday)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusPending, j.Status)

	j, err = repo.Get(ctx, scheduledLater)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, j.Status)
	require.NotNil(t, j.AssignedTo)

	j, err = repo.Get(ctx, pending)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusPending, j.Status)
}

func TestUpsertSiteCreateThenUpdate(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	repo := NewJobRepository(client, testLogger())

	j, created, err := repo.UpsertSite(ctx, SiteFields{
		SiteName: "Willow Court",
		Area:     "Garden",
		Contact:  "Pat 07700 900000",
	})
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, j.Area)
	assert.Equal(t, "Garden", *j.Area)

	j2, created, err := repo.UpsertSite(ctx, SiteFields{
		SiteName: "Willow Court",
		GateCode: "4821",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, j.ID, j2.ID)
	require.NotNil(t, j2.GateCode)
	assert.Equal(t, "4821", *j2.GateCode)
	// fields absent from the update keep their values
	require.NotNil(t, j2.Area)
	assert.Equal(t, "Garden", *j2.Area)
}
