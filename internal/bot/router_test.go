package bot

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/internal/async"
	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/entity"
	"github.com/joseph-ayodele/mowbot/internal/photos"
	"github.com/joseph-ayodele/mowbot/internal/repository"
	"github.com/joseph-ayodele/mowbot/internal/session"
	"github.com/joseph-ayodele/mowbot/internal/sites"
	"github.com/joseph-ayodele/mowbot/internal/weather"
)

const (
	directorID = int64(100)
	employeeID = int64(200)
	chatID     = int64(900)
)

// fakeTransport records every rendered screen in order.
type fakeTransport struct {
	screens   []Screen
	editErr   error
	deleted   []Handle
	nextMsgID int
}

func (f *fakeTransport) Edit(_ context.Context, _ Handle, s Screen) error {
	if f.editErr != nil {
		return f.editErr
	}
	f.screens = append(f.screens, s)
	return nil
}

func (f *fakeTransport) Send(_ context.Context, chat int64, s Screen) (Handle, error) {
	f.screens = append(f.screens, s)
	f.nextMsgID++
	return Handle{ChatID: chat, MessageID: f.nextMsgID}, nil
}

func (f *fakeTransport) SendPhoto(_ context.Context, chat int64, _, caption string, kb [][]Button) (Handle, error) {
	f.screens = append(f.screens, Screen{Text: caption, Keyboard: kb})
	f.nextMsgID++
	return Handle{ChatID: chat, MessageID: f.nextMsgID}, nil
}

func (f *fakeTransport) SendAlbum(context.Context, int64, []string) error { return nil }

func (f *fakeTransport) Delete(_ context.Context, h Handle) error {
	f.deleted = append(f.deleted, h)
	return nil
}

func (f *fakeTransport) Toast(context.Context, string, string) error { return nil }

func (f *fakeTransport) Download(context.Context, string) ([]byte, error) {
	return []byte("jpeg-bytes"), nil
}

func (f *fakeTransport) last(t *testing.T) Screen {
	t.Helper()
	require.NotEmpty(t, f.screens)
	return f.screens[len(f.screens)-1]
}

func buttonTokens(s Screen) []string {
	var out []string
	for _, r := range s.Keyboard {
		for _, b := range r {
			out = append(out, b.Token)
		}
	}
	return out
}

func buttonLabels(s Screen) []string {
	var out []string
	for _, r := range s.Keyboard {
		for _, b := range r {
			out = append(out, b.Label)
		}
	}
	return out
}

// fakeJobs serves canned jobs; the embedded interface panics for anything a
// test did not stub, making unexpected store calls loud.
type fakeJobs struct {
	repository.JobRepository
	jobs       map[int]*entity.Job
	unassigned []*entity.Job
	counts     repository.StatusCounts
	assigned   []int
	assignee   int64
}

func (f *fakeJobs) Get(_ context.Context, id int) (*entity.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobs) ListUnassigned(_ context.Context, page, pageSize int) ([]*entity.Job, error) {
	start := (page - 1) * pageSize
	if start >= len(f.unassigned) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(f.unassigned) {
		end = len(f.unassigned)
	}
	return f.unassigned[start:end], nil
}

func (f *fakeJobs) ListByAssignee(_ context.Context, employee int64, exclude *constants.JobStatus) ([]*entity.Job, error) {
	var out []*entity.Job
	for _, j := range f.jobs {
		if j.AssignedTo == nil || *j.AssignedTo != employee {
			continue
		}
		if exclude != nil && j.Status == *exclude {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobs) CountByStatus(context.Context) (repository.StatusCounts, error) {
	return f.counts, nil
}

func (f *fakeJobs) Assign(_ context.Context, ids []int, employee int64) (int, error) {
	f.assigned = ids
	f.assignee = employee
	return len(ids), nil
}

func (f *fakeJobs) Transition(_ context.Context, id int, expected, next constants.JobStatus, at time.Time) error {
	j, ok := f.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	if j.Status != expected {
		return common.ErrInvalidTransition
	}
	j.Status = next
	switch next {
	case constants.JobStatusInProgress:
		j.StartTime = &at
	case constants.JobStatusCompleted:
		j.FinishTime = &at
	}
	return nil
}

type fakeNotes struct {
	repository.NoteRepository
	appended []string
}

func (f *fakeNotes) Append(_ context.Context, jobID int, text string, authorID int64, role constants.Role) (*entity.Note, error) {
	f.appended = append(f.appended, text)
	return &entity.Note{JobID: jobID, AuthorID: authorID, AuthorRole: role, Note: text}, nil
}

func (f *fakeNotes) ListByJob(context.Context, int, int) ([]*entity.Note, error) {
	return nil, nil
}

type fakeForecaster struct {
	invalidated []string
}

func (f *fakeForecaster) Forecast(context.Context, string) (*weather.Forecast, error) {
	return &weather.Forecast{
		Location:    "Leeds",
		Description: "light rain",
		TempC:       16.2,
		WindKph:     12,
		RainChance:  0.4,
		FetchedAt:   time.Now(),
	}, nil
}

func (f *fakeForecaster) Invalidate(location string) {
	f.invalidated = append(f.invalidated, location)
}

type fakeQueue struct {
	uploads []async.Upload
}

func (f *fakeQueue) Enqueue(_ context.Context, u async.Upload) error {
	f.uploads = append(f.uploads, u)
	return nil
}

func (f *fakeQueue) Shutdown(context.Context) {}

type fixture struct {
	bot       *Bot
	transport *fakeTransport
	jobs      *fakeJobs
	notes     *fakeNotes
	queue     *fakeQueue
	sessions  *session.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	directory, err := sites.Load(filepath.Join(t.TempDir(), "absent.json"), logger)
	require.NoError(t, err)

	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	ledger := photos.NewLedger(loc)
	now, err := time.Parse(time.RFC3339, "2026-08-25T10:00:00+01:00")
	require.NoError(t, err)
	ledger.Now = func() time.Time { return now }

	content, err := photos.NewContentStore(t.TempDir())
	require.NoError(t, err)

	tr := &fakeTransport{}
	jobs := &fakeJobs{jobs: map[int]*entity.Job{}}
	notes := &fakeNotes{}
	queue := &fakeQueue{}
	sessions := session.NewStore()

	b := New(Deps{
		Jobs:      jobs,
		Notes:     notes,
		Sessions:  sessions,
		Ledger:    ledger,
		Content:   content,
		Uploads:   queue,
		Directory: directory,
		Transport: tr,
		Users: common.UsersConfig{
			Devs:      map[int64]string{},
			Directors: map[int64]string{directorID: "Dana"},
			Employees: map[int64]string{employeeID: "Andy"},
		},
		Logger: logger,
	})
	return &fixture{bot: b, transport: tr, jobs: jobs, notes: notes, queue: queue, sessions: sessions}
}

func mkJob(id int, site string, status constants.JobStatus) *entity.Job {
	return &entity.Job{ID: id, SiteName: site, Status: status, Priority: "normal"}
}

func TestStartCommandRoutesByRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.bot.HandleCommand(ctx, directorID, chatID, "start")
	s := f.transport.last(t)
	assert.Contains(t, s.Text, "Director Dashboard")
	assert.Contains(t, buttonTokens(s), "dir_assign_jobs_list")

	f.bot.HandleCommand(ctx, employeeID, chatID, "start")
	s = f.transport.last(t)
	assert.Contains(t, s.Text, "Employee Dashboard")
	assert.Contains(t, buttonTokens(s), "emp_view_jobs")

	f.bot.HandleCommand(ctx, 555, chatID, "start")
	s = f.transport.last(t)
	assert.Contains(t, s.Text, "Access Denied")
}

func TestAssignPageNextOnlyWhenFull(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 1; i <= assignPageSize; i++ {
		f.jobs.unassigned = append(f.jobs.unassigned, mkJob(i, fmt.Sprintf("Site %d", i), constants.JobStatusPending))
	}

	f.bot.HandleCallback(ctx, directorID, chatID, "cb1", "dir_assign_jobs_list")
	s := f.transport.last(t)
	assert.Contains(t, buttonTokens(s), "page_2")

	// one job short of a full page: no Next
	f.jobs.unassigned = f.jobs.unassigned[:assignPageSize-1]
	f.bot.HandleCallback(ctx, directorID, chatID, "cb2", "dir_assign_jobs_list")
	s = f.transport.last(t)
	assert.NotContains(t, buttonTokens(s), "page_2")
	assert.NotContains(t, buttonTokens(s), "page_0")
}

func TestToggleMarksSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.jobs.unassigned = []*entity.Job{mkJob(7, "Willow Court", constants.JobStatusPending)}

	f.bot.HandleCallback(ctx, directorID, chatID, "cb1", "dir_assign_jobs_list")
	s := f.transport.last(t)
	require.Contains(t, buttonLabels(s)[0], "⬜️")

	f.bot.HandleCallback(ctx, directorID, chatID, "cb2", "toggle_job_7")
	s = f.transport.last(t)
	assert.Contains(t, buttonLabels(s)[0], "✅")
	assert.Contains(t, buttonLabels(s), "👤 Assign Selected (1)")

	// toggling again restores the original screen
	f.bot.HandleCallback(ctx, directorID, chatID, "cb3", "toggle_job_7")
	s = f.transport.last(t)
	assert.Contains(t, buttonLabels(s)[0], "⬜️")
	assert.NotContains(t, buttonLabels(s), "👤 Assign Selected (1)")
}

func TestAssignSelectedEmptyIsBenign(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.bot.HandleCallback(ctx, directorID, chatID, "cb1", "assign_selected_jobs")
	s := f.transport.last(t)
	assert.Contains(t, s.Text, "No Jobs Selected")
}

func TestAssignFlowEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.jobs.unassigned = []*entity.Job{
		mkJob(1, "Site A", constants.JobStatusPending),
		mkJob(2, "Site B", constants.JobStatusPending),
	}

	f.bot.HandleCallback(ctx, directorID, chatID, "cb1", "dir_assign_jobs_list")
	f.bot.HandleCallback(ctx, directorID, chatID, "cb2", "toggle_job_2")
	f.bot.HandleCallback(ctx, directorID, chatID, "cb3", "toggle_job_1")
	f.bot.HandleCallback(ctx, directorID, chatID, "cb4", "assign_selected_jobs")
	s := f.transport.last(t)
	assert.Contains(t, buttonTokens(s), fmt.Sprintf("assign_to_%d", employeeID))

	f.bot.HandleCallback(ctx, directorID, chatID, "cb5", fmt.Sprintf("assign_to_%d", employeeID))
	s = f.transport.last(t)
	assert.Contains(t, s.Text, "2 job(s) assigned to Andy")
	assert.Equal(t, []int{1, 2}, f.jobs.assigned)
	assert.Equal(t, employeeID, f.jobs.assignee)

	// selection is spent after a successful assignment
	st := f.sessions.Get(directorID)
	assert.Empty(t, st.Selection())
}

func TestJobMenuButtonsFollowStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	j := mkJob(5, "Willow Court", constants.JobStatusPending)
	j.AssignedTo = &[]int64{employeeID}[0]
	f.jobs.jobs[5] = j

	f.bot.HandleCallback(ctx, employeeID, chatID, "cb1", "job_menu_5")
	tokens := buttonTokens(f.transport.last(t))
	assert.Contains(t, tokens, "start_job_5")
	assert.NotContains(t, tokens, "finish_job_5")
	assert.NotContains(t, tokens, "upload_photo_5")

	f.bot.HandleCallback(ctx, employeeID, chatID, "cb2", "start_job_5")
	tokens = buttonTokens(f.transport.last(t))
	assert.NotContains(t, tokens, "start_job_5")
	assert.Contains(t, tokens, "finish_job_5")
	assert.Contains(t, tokens, "upload_photo_5")
	assert.Contains(t, tokens, "add_note_5")
}

func TestStartJobDoubleTapLandsOnJobMenu(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	j := mkJob(5, "Willow Court", constants.JobStatusInProgress)
	f.jobs.jobs[5] = j

	// stale Start button: job already in progress
	f.bot.HandleCallback(ctx, employeeID, chatID, "cb1", "start_job_5")
	s := f.transport.last(t)
	assert.Contains(t, s.Text, "Willow Court")
	assert.Contains(t, buttonTokens(s), "finish_job_5")
}

func TestNoteCaptureFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.jobs.jobs[5] = mkJob(5, "Willow Court", constants.JobStatusInProgress)

	f.bot.HandleCallback(ctx, employeeID, chatID, "cb1", "add_note_5")
	s := f.transport.last(t)
	assert.Contains(t, s.Text, "Send the note")
	assert.Contains(t, buttonTokens(s), "cancel_note_5")

	f.bot.HandleText(ctx, employeeID, chatID, "  gate was locked  ")
	require.Equal(t, []string{"gate was locked"}, f.notes.appended)
	assert.Contains(t, f.transport.last(t).Text, "Note Added")

	// capture mode is spent; further text is ignored
	f.bot.HandleText(ctx, employeeID, chatID, "another line")
	assert.Len(t, f.notes.appended, 1)
}

func TestCancelNoteDisarmsCapture(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.jobs.jobs[5] = mkJob(5, "Willow Court", constants.JobStatusInProgress)

	f.bot.HandleCallback(ctx, employeeID, chatID, "cb1", "add_note_5")
	f.bot.HandleCallback(ctx, employeeID, chatID, "cb2", "cancel_note_5")

	f.bot.HandleText(ctx, employeeID, chatID, "should be dropped")
	assert.Empty(t, f.notes.appended)
}

func TestPhotoUploadEnqueuesWhileArmed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.jobs.jobs[5] = mkJob(5, "Willow Court", constants.JobStatusInProgress)

	f.bot.HandleCallback(ctx, employeeID, chatID, "cb1", "upload_photo_5")
	s := f.transport.last(t)
	assert.Contains(t, buttonTokens(s), "finish_upload_5")

	f.bot.HandlePhoto(ctx, employeeID, chatID, "file-1")
	f.bot.HandlePhoto(ctx, employeeID, chatID, "file-2")
	require.Len(t, f.queue.uploads, 2)
	assert.Equal(t, 5, f.queue.uploads[0].JobID)
	assert.Equal(t, employeeID, f.queue.uploads[0].UserID)

	f.bot.HandleCallback(ctx, employeeID, chatID, "cb2", "finish_upload_5")
	f.bot.HandlePhoto(ctx, employeeID, chatID, "file-3")
	assert.Len(t, f.queue.uploads, 2)
	assert.Contains(t, f.transport.last(t).Text, "No photo expected")
}

func TestUploadRefusedAtQuota(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	j := mkJob(5, "Willow Court", constants.JobStatusInProgress)
	for i := 0; i < photos.DailyQuota; i++ {
		j.Photos = append(j.Photos, photos.NewRefName(5, "2026-08-25", fmt.Sprintf("s%d", i)))
	}
	f.jobs.jobs[5] = j

	f.bot.HandleCallback(ctx, employeeID, chatID, "cb1", "upload_photo_5")
	assert.Contains(t, f.transport.last(t).Text, "Photo Limit Reached")

	kind, _ := f.sessions.Get(employeeID).Awaiting()
	assert.Equal(t, session.AwaitingNone, kind)
}

func TestUnknownTokenIsBenign(t *testing.T) {
	f := newFixture(t)
	f.bot.HandleCallback(context.Background(), directorID, chatID, "cb1", "exploit_%00")
	assert.Contains(t, f.transport.last(t).Text, "not supported")
}

func TestRoleGateOnDirectorScreens(t *testing.T) {
	f := newFixture(t)
	f.bot.HandleCallback(context.Background(), employeeID, chatID, "cb1", "director_dashboard")
	assert.Contains(t, f.transport.last(t).Text, "Access Denied")
}

func TestEditConflictFallsBackToResend(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// first render establishes a screen handle
	f.bot.HandleCommand(ctx, directorID, chatID, "start")
	before := len(f.transport.screens)

	// platform refuses the edit; the renderer must resend
	f.transport.editErr = common.ErrRenderConflict
	f.bot.HandleCallback(ctx, directorID, chatID, "cb1", "director_dashboard")
	require.Greater(t, len(f.transport.screens), before)
	assert.Contains(t, f.transport.last(t).Text, "Director Dashboard")
}

func TestHelpCommand(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.bot.HandleCommand(ctx, employeeID, chatID, "help")
	s := f.transport.last(t)
	assert.Contains(t, s.Text, "25 per job per day")

	f.bot.HandleCommand(ctx, directorID, chatID, "help")
	assert.Contains(t, f.transport.last(t).Text, "Assign Jobs")
}

func TestDirectorPhotoViewerBacksToJobCard(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	finished, err := time.Parse(time.RFC3339, "2026-08-25T09:00:00+01:00")
	require.NoError(t, err)
	j := mkJob(5, "Willow Court", constants.JobStatusCompleted)
	j.FinishTime = &finished
	j.Photos = []string{
		photos.NewRefName(5, "2026-08-25", "a"),
		photos.NewRefName(5, "2026-08-25", "b"),
	}
	f.jobs.jobs[5] = j

	f.bot.HandleCallback(ctx, directorID, chatID, "cb1", "view_photos_grid_5")
	tokens := buttonTokens(f.transport.last(t))
	assert.Contains(t, tokens, "view_job_5")
	assert.NotContains(t, tokens, "job_menu_5")

	f.bot.HandleCallback(ctx, directorID, chatID, "cb2", "view_photos_5")
	tokens = buttonTokens(f.transport.last(t))
	assert.Contains(t, tokens, "view_job_5")
	assert.NotContains(t, tokens, "job_menu_5")

	// Back lands on the job card, not an access refusal
	f.bot.HandleCallback(ctx, directorID, chatID, "cb3", "view_job_5")
	s := f.transport.last(t)
	assert.Contains(t, s.Text, "Willow Court")
	assert.NotContains(t, s.Text, "Access Denied")
}

func TestEmployeePhotoViewerBacksToJobMenu(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	j := mkJob(5, "Willow Court", constants.JobStatusInProgress)
	j.AssignedTo = &[]int64{employeeID}[0]
	j.Photos = []string{photos.NewRefName(5, "2026-08-25", "a")}
	f.jobs.jobs[5] = j

	f.bot.HandleCallback(ctx, employeeID, chatID, "cb1", "view_photos_grid_5")
	tokens := buttonTokens(f.transport.last(t))
	assert.Contains(t, tokens, "job_menu_5")
	assert.NotContains(t, tokens, "view_job_5")
}

func TestDirectorJobCardShowsSiteAndWeatherActions(t *testing.T) {
	f := newFixture(t)
	forecast := &fakeForecaster{}
	f.bot.forecast = forecast
	ctx := context.Background()
	j := mkJob(5, "Willow Court", constants.JobStatusCompleted)
	j.Area = &[]string{"North Gardens"}[0]
	j.Contact = &[]string{"Pat 07700 900123"}[0]
	j.MapLink = &[]string{"https://maps.example.com/willow"}[0]
	f.jobs.jobs[5] = j

	f.bot.HandleCallback(ctx, directorID, chatID, "cb1", "view_job_5")
	s := f.transport.last(t)
	assert.Contains(t, s.Text, "light rain")
	tokens := buttonTokens(s)
	assert.Contains(t, tokens, "site_info_5")
	assert.Contains(t, tokens, "map_link_5")
	assert.Contains(t, tokens, "refresh_weather_5")

	// site info backs to the director's card, not the employee job menu
	f.bot.HandleCallback(ctx, directorID, chatID, "cb2", "site_info_5")
	assert.Contains(t, buttonTokens(f.transport.last(t)), "view_job_5")

	// refresh drops the cached forecast and redraws the same card
	f.bot.HandleCallback(ctx, directorID, chatID, "cb3", "refresh_weather_5")
	require.NotEmpty(t, forecast.invalidated)
	s = f.transport.last(t)
	assert.Contains(t, s.Text, "Willow Court")
	assert.Contains(t, buttonTokens(s), "refresh_weather_5")
}

func TestMyJobsExcludesCompleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	emp := employeeID
	open := mkJob(1, "Open Site", constants.JobStatusPending)
	open.AssignedTo = &emp
	done := mkJob(2, "Done Site", constants.JobStatusCompleted)
	done.AssignedTo = &emp
	f.jobs.jobs[1] = open
	f.jobs.jobs[2] = done

	f.bot.HandleCallback(ctx, employeeID, chatID, "cb1", "emp_view_jobs")
	labels := strings.Join(buttonLabels(f.transport.last(t)), "\n")
	assert.Contains(t, labels, "Open Site")
	assert.NotContains(t, labels, "Done Site")
}
