package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/internal/common"
)

func TestAppendNoteRequiresExistingJob(t *testing.T) {
	client := openTestClient(t)
	repo := NewNoteRepository(client, testLogger())

	_, err := repo.Append(context.Background(), 999, "gate was locked", 42, constants.RoleEmployee)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestNotesListNewestFirst(t *testing.T) {
	ctx := context.Background()
	client := openTestClient(t)
	jobID := seedJob(t, client, "Willow Court")
	repo := NewNoteRepository(client, testLogger())

	first, err := repo.Append(ctx, jobID, "gate was locked", 42, constants.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, jobID, first.JobID)
	assert.Equal(t, constants.RoleEmployee, first.AuthorRole)

	_, err = repo.Append(ctx, jobID, "key left with neighbour", 7, constants.RoleDirector)
	require.NoError(t, err)

	notes, err := repo.ListByJob(ctx, jobID, 0)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "key left with neighbour", notes[0].Note)
	assert.Equal(t, "gate was locked", notes[1].Note)

	limited, err := repo.ListByJob(ctx, jobID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
