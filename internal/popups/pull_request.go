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
	pullRequestWidth  = 50
	pullRequestHeight = 10
)

// PullRequestPopup tells the user that pull requests are not implemented yet.
type PullRequestPopup struct {
	visible   bool
	theme     style.SharedTheme
	keyConfig keys.SharedKeyConfig
	labels    *labels.Labels
}

var _ components.Component = (*PullRequestPopup)(nil)

// NewPullRequestPopup creates the popup, initially hidden.
func NewPullRequestPopup(e *env.Environment) *PullRequestPopup {
	return &PullRequestPopup{
		theme:     e.Theme,
		keyConfig: e.KeyConfig,
		labels:    e.Labels,
	}
}

// Draw renders the dialog centered in the frame while visible.
func (p *PullRequestPopup) Draw(f *ui.Frame, _ ui.Rect) error {
	if !p.visible {
		return nil
	}

	area := ui.CenteredRectAbsolute(pullRequestWidth, pullRequestHeight, f.Area())

	return drawModal(f, area, p.theme, modal{
		title: p.labels.PullRequestTitle(),
		lines: p.labels.PullRequestBody(p.keyConfig),
		align: lipgloss.Center,
		wrap:  true,
	})
}

// Commands offers "close popup" while the dialog is open.
func (p *PullRequestPopup) Commands(out *[]components.CommandInfo, _ bool) components.CommandBlocking {
	*out = append(*out, components.NewCommandInfo(
		p.labels.ClosePopup(p.keyConfig),
		true,
		p.visible,
	))

	return components.VisibilityBlocking(p)
}

// Event closes the dialog on the exit key and swallows all input while open.
func (p *PullRequestPopup) Event(msg tea.Msg) (components.EventState, error) {
	if !p.visible {
		return components.NotConsumed, nil
	}

	if keys.KeyMatch(msg, p.keyConfig.Keys.ExitPopup) {
		p.Hide()
	}

	return components.Consumed, nil
}

// IsVisible reports whether the dialog is open.
func (p *PullRequestPopup) IsVisible() bool {
	return p.visible
}

// Hide closes the dialog.
func (p *PullRequestPopup) Hide() {
	p.visible = false
}

// Show opens the dialog.
func (p *PullRequestPopup) Show() error {
	p.visible = true
	return nil
}

// Open is the entry point used by the shell; it is the same as Show.
func (p *PullRequestPopup) Open() error {
	return p.Show()
}
