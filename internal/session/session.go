package session

import (
	"sort"
	"sync"
)

// AwaitingKind names what free-form input, if any, a user's next message is
// expected to carry. At most one kind is active per user at a time.
type AwaitingKind int

const (
	AwaitingNone AwaitingKind = iota
	AwaitingNote
	AwaitingPhoto
)

// State is per-user scratch for multi-step UI flows. It is never the source
// of truth for job data and is lost on restart by design. The platform
// delivers at most one interaction per user at a time, so State methods are
// called from a single goroutine per user; only the Store map is locked.
type State struct {
	selected map[int]struct{}
	page     int

	awaiting    AwaitingKind
	awaitingJob int

	// photo viewer cursor
	photoJob   int
	photoRefs  []string
	photoDate  string
	photoIndex int
	photoPage  int

	// handle of the last rendered screen, used for edit-in-place
	screenChat    int64
	screenMessage int
}

// Store holds ephemeral per-user session state keyed by chat user id.
type Store struct {
	mu    sync.Mutex
	users map[int64]*State
}

func NewStore() *Store {
	return &Store{users: make(map[int64]*State)}
}

// Get returns the user's state, creating an empty one on first touch.
func (s *Store) Get(userID int64) *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.users[userID]
	if !ok {
		st = &State{selected: make(map[int]struct{}), page: 1}
		s.users[userID] = st
	}
	return st
}

// Drop discards a user's state entirely.
func (s *Store) Drop(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
}

// BeginSelection enters the assignment workflow: empty selection, page 1.
func (st *State) BeginSelection() {
	st.selected = make(map[int]struct{})
	st.page = 1
}

// ToggleSelection flips membership of a job id and reports whether the id
// is selected afterwards. Toggling twice restores the original state.
func (st *State) ToggleSelection(jobID int) bool {
	if _, ok := st.selected[jobID]; ok {
		delete(st.selected, jobID)
		return false
	}
	st.selected[jobID] = struct{}{}
	return true
}

func (st *State) Selected(jobID int) bool {
	_, ok := st.selected[jobID]
	return ok
}

// Selection returns the selected job ids in ascending order.
func (st *State) Selection() []int {
	out := make([]int, 0, len(st.selected))
	for id := range st.selected {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func (st *State) ClearSelection() {
	st.selected = make(map[int]struct{})
}

func (st *State) Page() int {
	if st.page < 1 {
		return 1
	}
	return st.page
}

func (st *State) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	st.page = page
}

// AwaitNote arms note capture for a job, displacing any other awaiting mode.
func (st *State) AwaitNote(jobID int) {
	st.awaiting = AwaitingNote
	st.awaitingJob = jobID
}

// AwaitPhoto arms photo capture for a job, displacing any other awaiting
// mode. Capture stays armed until ClearAwaiting.
func (st *State) AwaitPhoto(jobID int) {
	st.awaiting = AwaitingPhoto
	st.awaitingJob = jobID
}

// Awaiting reports the active input mode and its job id.
func (st *State) Awaiting() (AwaitingKind, int) {
	return st.awaiting, st.awaitingJob
}

// ClearAwaiting exits any input mode. Called on every mode exit and
// defensively before any incompatible action.
func (st *State) ClearAwaiting() {
	st.awaiting = AwaitingNone
	st.awaitingJob = 0
}

// SetPhotoViewer points the photo cursor at a job's refs for one date.
func (st *State) SetPhotoViewer(jobID int, refs []string, date string) {
	st.photoJob = jobID
	st.photoRefs = refs
	st.photoDate = date
	st.photoIndex = 0
	st.photoPage = 0
}

func (st *State) PhotoViewer() (jobID int, refs []string, date string) {
	return st.photoJob, st.photoRefs, st.photoDate
}

func (st *State) PhotoIndex() int { return st.photoIndex }

func (st *State) SetPhotoIndex(i int) { st.photoIndex = i }

func (st *State) PhotoPage() int { return st.photoPage }

func (st *State) SetPhotoPage(p int) { st.photoPage = p }

// Screen returns the handle of the last rendered screen for this user.
func (st *State) Screen() (chatID int64, messageID int) {
	return st.screenChat, st.screenMessage
}

func (st *State) SetScreen(chatID int64, messageID int) {
	st.screenChat = chatID
	st.screenMessage = messageID
}
