package bot

import (
	"context"
	"fmt"

	"github.com/joseph-ayodele/mowbot/constants"
	"github.com/joseph-ayodele/mowbot/internal/common"
	"github.com/joseph-ayodele/mowbot/internal/session"
)

// home routes the user to the dashboard for their role. Unauthorized users
// get a closed door, not a fault.
func (b *Bot) home(ctx context.Context, st *session.State, userID, chatID int64) error {
	switch b.roleOf(userID) {
	case constants.RoleDev:
		return b.devHome(ctx, st, userID, chatID)
	case constants.RoleDirector:
		return b.directorHome(ctx, st, userID, chatID)
	case constants.RoleEmployee:
		return b.employeeHome(ctx, st, userID, chatID)
	}
	return common.ErrUnauthorized
}

// devHome exposes both dashboards so a dev can exercise either flow.
func (b *Bot) devHome(ctx context.Context, st *session.State, userID, chatID int64) error {
	if b.roleOf(userID) != constants.RoleDev {
		return common.ErrUnauthorized
	}
	st.ClearAwaiting()
	name := b.users.NameOf(userID, fmt.Sprintf("user %d", userID))
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text: formatDashboardHeader(name, "Dev"),
		Keyboard: [][]Button{
			row(btn("📋 Director Dashboard", tok0(FamDirectorHome))),
			row(btn("🧑‍🔧 Employee Dashboard", tok0(FamEmployeeHome))),
		},
	})
}

func (b *Bot) help(ctx context.Context, st *session.State, userID, chatID int64) error {
	var text string
	switch b.roleOf(userID) {
	case constants.RoleDirector, constants.RoleDev:
		text = "Director commands:\n" +
			"/start opens your dashboard.\n" +
			"Assign Jobs lists unassigned jobs ten at a time; tap to select, then pick an employee.\n" +
			"Completed Jobs shows each employee's last twenty finished jobs."
	case constants.RoleEmployee:
		text = "Employee commands:\n" +
			"/start opens your dashboard.\n" +
			"My Jobs lists your assigned jobs. Open a job to start it, finish it, add notes or upload photos.\n" +
			"Photos are limited to 25 per job per day."
	default:
		return common.ErrUnauthorized
	}
	return b.renderer.Render(ctx, st, chatID, Screen{
		Text:     "ℹ️ Help\n" + separator + "\n" + text,
		Keyboard: [][]Button{row(btn(backPrefix+" Home", tok0(FamHome)))},
	})
}
