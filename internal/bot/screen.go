package bot

// Button is one tappable action on a screen's menu.
type Button struct {
	Label string
	Token string
}

// Screen is the single logical (text + action-menu) unit a handler
// produces. The router renders it by replacing the previous screen.
type Screen struct {
	Text     string
	Keyboard [][]Button
}

func btn(label, token string) Button {
	return Button{Label: label, Token: token}
}

func row(buttons ...Button) []Button {
	return buttons
}

// Handle identifies a rendered screen on the chat surface.
type Handle struct {
	ChatID    int64
	MessageID int
}

func (h Handle) Zero() bool {
	return h.MessageID == 0
}
