package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/internal/async"
	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/photos"
	"github.com/joseph-ayodele/mowbot/internal/repository"
	"github.com/joseph-ayodele/mowbot/internal/session"
	"github.com/joseph-ayodele/mowbot/internal/sites"
	"github.com/joseph-ayodele/mowbot/internal/weather"
)

const (
	assignPageSize = 10 // unassigned jobs per assignment page
	completedLimit = 20 // completed jobs shown per employee
	notesShown     = 3  // latest notes rendered on a job card
	gridPageSize   = 10 // photos per grid message
)

// Bot wires the interaction boundary to the job store and session state.
// Exactly one handler runs per interaction; every error is converted to a
// screen at this boundary and never propagates to the transport loop.
type Bot struct {
	jobs      repository.JobRepository
	notes     repository.NoteRepository
	sessions  *session.Store
	ledger    *photos.Ledger
	content   *photos.ContentStore
	uploads   async.Queue
	directory *sites.Directory
	forecast  weather.Forecaster // nil disables weather sections
	transport Transport
	renderer  *Renderer
	users     common.UsersConfig
	logger    *slog.Logger
}

type Deps struct {
	Jobs      repository.JobRepository
	Notes     repository.NoteRepository
	Sessions  *session.Store
	Ledger    *photos.Ledger
	Content   *photos.ContentStore
	Uploads   async.Queue
	Directory *sites.Directory
	Forecast  weather.Forecaster
	Transport Transport
	Users     common.UsersConfig
	Logger    *slog.Logger
}

func New(d Deps) *Bot {
	return &Bot{
		jobs:      d.Jobs,
		notes:     d.Notes,
		sessions:  d.Sessions,
		ledger:    d.Ledger,
		content:   d.Content,
		uploads:   d.Uploads,
		directory: d.Directory,
		forecast:  d.Forecast,
		transport: d.Transport,
		renderer:  NewRenderer(d.Transport, d.Logger),
		users:     d.Users,
		logger:    d.Logger,
	}
}

// SetUploads lets the upload queue be attached after construction; the
// queue's notify callback needs the bot and the bot needs the queue.
func (b *Bot) SetUploads(q async.Queue) {
	b.uploads = q
}

// HandleCallback is the single entry point for button interactions.
func (b *Bot) HandleCallback(ctx context.Context, userID, chatID int64, callbackID, data string) {
	st := b.sessions.Get(userID)
	defer func() {
		if rec := recover(); rec != nil {
			b.logger.Error("handler panicked", "user_id", userID, "token", data, "panic", rec)
			b.renderFailure(ctx, st, chatID, common.ErrStoreUnavailable)
		}
	}()

	// acknowledge the tap so the client stops its spinner
	if err := b.transport.Toast(ctx, callbackID, ""); err != nil {
		b.logger.Warn("callback ack failed", "error", err)
	}

	action, ok := ParseToken(data)
	if !ok {
		b.logger.Warn("unsupported interaction token", "user_id", userID, "token", data)
		_ = b.renderer.Render(ctx, st, chatID, Screen{
			Text: formatError("Unknown Action", "This action is not supported."),
		})
		return
	}

	if err := b.dispatch(ctx, st, userID, chatID, action); err != nil {
		b.renderFailure(ctx, st, chatID, err)
	}
}

func (b *Bot) dispatch(ctx context.Context, st *session.State, userID, chatID int64, a Action) error {
	switch a.Family {
	case FamNoop:
		return nil
	case FamHome:
		return b.home(ctx, st, userID, chatID)
	case FamDevHome:
		return b.devHome(ctx, st, userID, chatID)

	// director
	case FamDirectorHome:
		return b.directorHome(ctx, st, userID, chatID)
	case FamAssignmentList:
		return b.assignmentList(ctx, st, userID, chatID)
	case FamToggleJob:
		return b.toggleJob(ctx, st, userID, chatID, int(a.Arg))
	case FamPage:
		return b.gotoPage(ctx, st, userID, chatID, int(a.Arg))
	case FamAssignSelected:
		return b.assignSelected(ctx, st, userID, chatID)
	case FamAssignTo:
		return b.assignTo(ctx, st, userID, chatID, a.Arg)
	case FamEmployeeChoiceList:
		return b.employeeChoiceList(ctx, st, userID, chatID)
	case FamViewCompleted:
		return b.viewCompleted(ctx, st, userID, chatID, a.Arg)
	case FamViewJob:
		return b.directorViewJob(ctx, st, userID, chatID, int(a.Arg))

	// employee
	case FamEmployeeHome:
		return b.employeeHome(ctx, st, userID, chatID)
	case FamMyJobs:
		return b.myJobs(ctx, st, userID, chatID)
	case FamJobMenu:
		return b.jobMenu(ctx, st, userID, chatID, int(a.Arg))
	case FamStartJob:
		return b.startJob(ctx, st, userID, chatID, int(a.Arg))
	case FamFinishJob:
		return b.finishJob(ctx, st, userID, chatID, int(a.Arg))
	case FamUploadPhoto:
		return b.uploadPhoto(ctx, st, userID, chatID, int(a.Arg))
	case FamFinishUpload:
		return b.finishUpload(ctx, st, userID, chatID, int(a.Arg))
	case FamSiteInfo:
		return b.siteInfo(ctx, st, userID, chatID, int(a.Arg))
	case FamMapLink:
		return b.mapLink(ctx, st, userID, chatID, int(a.Arg))
	case FamAddNote:
		return b.addNote(ctx, st, userID, chatID, int(a.Arg))
	case FamCancelNote:
		return b.cancelNote(ctx, st, userID, chatID, int(a.Arg))

	// photos & weather
	case FamViewPhotos:
		return b.viewPhotos(ctx, st, userID, chatID, int(a.Arg))
	case FamPhotoNav:
		return b.photoNav(ctx, st, userID, chatID, int(a.Arg))
	case FamViewPhotosGrid:
		return b.viewPhotosGrid(ctx, st, userID, chatID, int(a.Arg))
	case FamPhotoGridNav:
		return b.photoGridNav(ctx, st, userID, chatID, int(a.Arg))
	case FamRefreshWeather:
		return b.refreshWeather(ctx, st, userID, chatID, int(a.Arg))
	}
	b.logger.Warn("no handler for action family", "family", a.Family)
	_ = b.renderer.Render(ctx, st, chatID, Screen{
		Text: formatError("Unknown Action", "This action is not supported."),
	})
	return nil
}

// HandleCommand routes /start and /help to role-appropriate screens.
func (b *Bot) HandleCommand(ctx context.Context, userID, chatID int64, command string) {
	st := b.sessions.Get(userID)
	// commands arrive as new messages, so the previous screen handle is
	// stale by definition
	st.SetScreen(0, 0)

	var err error
	switch command {
	case "start":
		err = b.home(ctx, st, userID, chatID)
	case "help":
		err = b.help(ctx, st, userID, chatID)
	default:
		err = b.renderer.Render(ctx, st, chatID, Screen{
			Text: formatError("Unknown Command", "Try /start or /help."),
		})
	}
	if err != nil {
		b.renderFailure(ctx, st, chatID, err)
	}
}

// HandleText consumes free-form text. It only means something when a note
// is being awaited; anything else is ignored.
func (b *Bot) HandleText(ctx context.Context, userID, chatID int64, text string) {
	st := b.sessions.Get(userID)
	kind, jobID := st.Awaiting()
	if kind != session.AwaitingNote {
		return
	}
	if err := b.saveNote(ctx, st, userID, chatID, jobID, text); err != nil {
		b.renderFailure(ctx, st, chatID, err)
	}
}

// HandlePhoto consumes an incoming photo message. Payloads are downloaded
// and queued for the ingestion pipeline.
func (b *Bot) HandlePhoto(ctx context.Context, userID, chatID int64, fileID string) {
	st := b.sessions.Get(userID)
	kind, jobID := st.Awaiting()
	if kind != session.AwaitingPhoto {
		if _, err := b.transport.Send(ctx, chatID, Screen{Text: "No photo expected at this time."}); err != nil {
			b.logger.Warn("reply failed", "error", err)
		}
		return
	}

	data, err := b.transport.Download(ctx, fileID)
	if err != nil {
		b.logger.Error("photo download failed", "user_id", userID, "job_id", jobID, "error", err)
		b.renderFailure(ctx, st, chatID, common.ErrStoreUnavailable)
		return
	}
	if err := b.uploads.Enqueue(ctx, async.Upload{
		UserID:      userID,
		ChatID:      chatID,
		JobID:       jobID,
		Data:        data,
		SubmittedAt: time.Now(),
	}); err != nil {
		b.renderFailure(ctx, st, chatID, err)
	}
}

// NotifyUpload is the upload queue's result callback. Rejects always reach
// the uploader; successful uploads stay silent until Done Uploading.
func (b *Bot) NotifyUpload(res async.Result) {
	ctx := context.Background()
	switch {
	case errors.Is(res.Err, common.ErrQuotaExceeded):
		b.send(ctx, res.Upload.ChatID, Screen{Text: formatError(
			"Photo Limit Reached",
			"Maximum number of photos (25) reached for this job today.")})
	case errors.Is(res.Err, common.ErrInvalidImage):
		b.send(ctx, res.Upload.ChatID, Screen{Text: formatError(
			"Photo Rejected", "Photo verification failed.")})
	case res.Err != nil:
		b.send(ctx, res.Upload.ChatID, Screen{Text: formatError(
			"Upload Failed", "Failed to save photo. Please try again.")})
	}
}

func (b *Bot) send(ctx context.Context, chatID int64, s Screen) {
	if _, err := b.transport.Send(ctx, chatID, s); err != nil {
		b.logger.Warn("send failed", "chat_id", chatID, "error", err)
	}
}

// renderFailure converts a taxonomy error into a user-facing screen.
func (b *Bot) renderFailure(ctx context.Context, st *session.State, chatID int64, err error) {
	var s Screen
	switch {
	case errors.Is(err, common.ErrNotFound):
		s = Screen{Text: formatError("Job not found", "The requested job was not found.")}
	case errors.Is(err, common.ErrInvalidTransition):
		s = Screen{Text: formatError("Not Allowed", "This job is not in a state that allows that action.")}
	case errors.Is(err, common.ErrEmptySelection):
		s = Screen{Text: formatError("No Jobs Selected", "Please select jobs before assigning.")}
	case errors.Is(err, common.ErrQuotaExceeded):
		s = Screen{Text: formatError("Photo Limit Reached", "Maximum number of photos (25) reached for this job today.")}
	case errors.Is(err, common.ErrInvalidImage):
		s = Screen{Text: formatError("Photo Rejected", "Photo verification failed.")}
	case errors.Is(err, common.ErrUnauthorized):
		s = Screen{Text: formatError("Access Denied", "You do not have a registered role.")}
	default:
		b.logger.Error("handler failed", "chat_id", chatID, "error", err)
		s = Screen{Text: formatError("Something went wrong", "Please try again.")}
	}
	if !errors.Is(err, common.ErrUnauthorized) {
		s.Keyboard = append(s.Keyboard, row(btn(backPrefix+" Home", tok0(FamHome))))
	}
	if rerr := b.renderer.Render(ctx, st, chatID, s); rerr != nil {
		b.logger.Error("failure screen render failed", "chat_id", chatID, "error", rerr)
	}
}

func (b *Bot) roleOf(userID int64) constants.Role {
	return b.users.RoleOf(userID)
}

func (b *Bot) requireDirector(userID int64) error {
	switch b.roleOf(userID) {
	case constants.RoleDirector, constants.RoleDev:
		return nil
	}
	return common.ErrUnauthorized
}

func (b *Bot) requireEmployee(userID int64) error {
	switch b.roleOf(userID) {
	case constants.RoleEmployee, constants.RoleDev:
		return nil
	}
	return common.ErrUnauthorized
}

func (b *Bot) requireKnown(userID int64) error {
	if b.roleOf(userID) == constants.RoleUnauthorized {
		return common.ErrUnauthorized
	}
	return nil
}

// jobBackFamily picks the per-role job detail screen behind a photo or
// info screen's Back button: directors review jobs through the completed
// card, everyone else through the job menu.
func (b *Bot) jobBackFamily(userID int64) Family {
	if b.roleOf(userID) == constants.RoleDirector {
		return FamViewJob
	}
	return FamJobMenu
}
