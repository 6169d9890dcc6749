// Package popups contains the modal dialogs of the application. Every popup
// follows the same contract: it draws and consumes input only while visible,
// swallows every event while open, and blocks the command bar of the
// components beneath it.
package popups

import (
	"charm.land/lipgloss/v2"

	"github.com/chatter/gitmodal/internal/ui"
	"github.com/chatter/gitmodal/internal/ui/style"
)

// modal is the content of one popup draw.
type modal struct {
	title string
	lines []string
	align lipgloss.Position
	wrap  bool
}

// drawModal clears area and renders m inside it with the focused theme styles.
func drawModal(f *ui.Frame, area ui.Rect, theme style.SharedTheme, m modal) error {
	if err := f.Clear(area); err != nil {
		return err
	}

	p := ui.NewParagraph(m.lines...).
		WithBlock(ui.Block{
			Title:       m.title,
			TitleStyle:  theme.Title(true),
			Border:      theme.BorderType(),
			BorderStyle: theme.Block(true),
		}).
		Alignment(m.align).
		Wrapped(m.wrap)

	return f.RenderWidget(area, p.Render(area.Width, area.Height))
}
