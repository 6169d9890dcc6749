package popups

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/chatter/gitmodal/internal/components"
	"github.com/chatter/gitmodal/internal/env"
	"github.com/chatter/gitmodal/internal/keys"
	"github.com/chatter/gitmodal/internal/labels"
	"github.com/chatter/gitmodal/internal/ui"
	"github.com/chatter/gitmodal/internal/ui/style"
)

const (
	msgWidth  = 60
	msgHeight = 12
)

// MsgPopup shows an error to the user until it is dismissed.
type MsgPopup struct {
	visible   bool
	title     string
	msg       string
	theme     style.SharedTheme
	keyConfig keys.SharedKeyConfig
	labels    *labels.Labels
}

var _ components.Component = (*MsgPopup)(nil)

// NewMsgPopup creates the popup, initially hidden.
func NewMsgPopup(e *env.Environment) *MsgPopup {
	return &MsgPopup{
		theme:     e.Theme,
		keyConfig: e.KeyConfig,
		labels:    e.Labels,
	}
}

// ShowError opens the popup with err's message.
func (m *MsgPopup) ShowError(err error) error {
	m.title = m.labels.ErrorTitle()
	m.msg = err.Error()
	return m.Show()
}

// Message returns the text currently held by the popup.
func (m *MsgPopup) Message() string {
	return m.msg
}

// Draw renders the message while visible.
func (m *MsgPopup) Draw(f *ui.Frame, _ ui.Rect) error {
	if !m.visible {
		return nil
	}

	area := ui.CenteredRectAbsolute(msgWidth, msgHeight, f.Area())

	return drawModal(f, area, m.theme, modal{
		title: m.title,
		lines: []string{m.msg},
		align: lipgloss.Left,
		wrap:  true,
	})
}

// Commands offers "close popup" while open.
func (m *MsgPopup) Commands(out *[]components.CommandInfo, _ bool) components.CommandBlocking {
	*out = append(*out, components.NewCommandInfo(
		m.labels.ClosePopup(m.keyConfig),
		true,
		m.visible,
	))

	return components.VisibilityBlocking(m)
}

// Event closes the popup on the exit key and swallows all input while open.
func (m *MsgPopup) Event(msg tea.Msg) (components.EventState, error) {
	if !m.visible {
		return components.NotConsumed, nil
	}

	if keys.KeyMatch(msg, m.keyConfig.Keys.ExitPopup) {
		m.Hide()
	}

	return components.Consumed, nil
}

// IsVisible reports whether the popup is open.
func (m *MsgPopup) IsVisible() bool {
	return m.visible
}

// Hide closes the popup.
func (m *MsgPopup) Hide() {
	m.visible = false
}

// Show opens the popup with whatever message it holds.
func (m *MsgPopup) Show() error {
	m.visible = true
	return nil
}
