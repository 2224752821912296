package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreGetCreatesIndependentStates(t *testing.T) {
	s := NewStore()
	a := s.Get(1)
	b := s.Get(2)
	require.NotNil(t, a)
	require.NotNil(t, b)

	a.ToggleSelection(7)
	assert.True(t, a.Selected(7))
	assert.False(t, b.Selected(7))

	// same user returns the same state
	assert.True(t, s.Get(1).Selected(7))
}

func TestToggleSelectionRoundTrip(t *testing.T) {
	st := NewStore().Get(1)
	st.BeginSelection()

	assert.True(t, st.ToggleSelection(3))
	assert.True(t, st.Selected(3))
	assert.False(t, st.ToggleSelection(3))
	assert.False(t, st.Selected(3))
	assert.Empty(t, st.Selection())
}

func TestSelectionSorted(t *testing.T) {
	st := NewStore().Get(1)
	st.BeginSelection()
	for _, id := range []int{9, 2, 5} {
		st.ToggleSelection(id)
	}
	assert.Equal(t, []int{2, 5, 9}, st.Selection())
}

func TestBeginSelectionResetsPageAndSelection(t *testing.T) {
	st := NewStore().Get(1)
	st.ToggleSelection(4)
	st.SetPage(3)

	st.BeginSelection()
	assert.Empty(t, st.Selection())
	assert.Equal(t, 1, st.Page())
}

func TestPageNeverBelowOne(t *testing.T) {
	st := NewStore().Get(1)
	st.SetPage(0)
	assert.Equal(t, 1, st.Page())
	st.SetPage(-5)
	assert.Equal(t, 1, st.Page())
}

func TestAwaitingModesAreExclusive(t *testing.T) {
	st := NewStore().Get(1)

	st.AwaitNote(10)
	kind, jobID := st.Awaiting()
	assert.Equal(t, AwaitingNote, kind)
	assert.Equal(t, 10, jobID)

	// arming photo capture displaces the note mode
	st.AwaitPhoto(11)
	kind, jobID = st.Awaiting()
	assert.Equal(t, AwaitingPhoto, kind)
	assert.Equal(t, 11, jobID)

	st.ClearAwaiting()
	kind, jobID = st.Awaiting()
	assert.Equal(t, AwaitingNone, kind)
	assert.Equal(t, 0, jobID)
}

func TestPhotoViewerCursor(t *testing.T) {
	st := NewStore().Get(1)
	refs := []string{"a.webp", "b.webp"}
	st.SetPhotoViewer(5, refs, "2026-08-25")

	jobID, got, date := st.PhotoViewer()
	assert.Equal(t, 5, jobID)
	assert.Equal(t, refs, got)
	assert.Equal(t, "2026-08-25", date)
	assert.Equal(t, 0, st.PhotoIndex())
	assert.Equal(t, 0, st.PhotoPage())

	st.SetPhotoIndex(1)
	assert.Equal(t, 1, st.PhotoIndex())

	// repointing the viewer resets the cursor
	st.SetPhotoViewer(5, refs, "2026-08-26")
	assert.Equal(t, 0, st.PhotoIndex())
}

func TestDropForgetsState(t *testing.T) {
	s := NewStore()
	s.Get(1).ToggleSelection(2)
	s.Drop(1)
	assert.False(t, s.Get(1).Selected(2))
}
