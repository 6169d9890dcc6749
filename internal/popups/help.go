package popups

import (
	"sort"

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
	helpMinWidth  = 40
	helpMinHeight = 10
)

// HelpPopup lists every command registered by the visible components,
// grouped by section.
type HelpPopup struct {
	visible   bool
	cmds      []components.CommandInfo
	scroll    int
	theme     style.SharedTheme
	keyConfig keys.SharedKeyConfig
	labels    *labels.Labels
}

var _ components.Component = (*HelpPopup)(nil)

// NewHelpPopup creates the popup, initially hidden.
func NewHelpPopup(e *env.Environment) *HelpPopup {
	return &HelpPopup{
		theme:     e.Theme,
		keyConfig: e.KeyConfig,
		labels:    e.Labels,
	}
}

// SetCommands replaces the listed commands. Commands marked HideHelp and
// repeated names are dropped; the rest are grouped in first-seen group order
// and sorted by Order within a group.
func (h *HelpPopup) SetCommands(cmds []components.CommandInfo) {
	groupRank := make(map[string]int)
	seen := make(map[string]bool)
	listed := make([]components.CommandInfo, 0, len(cmds))
	for _, c := range cmds {
		if c.Text.HideHelp || seen[c.Text.Name] {
			continue
		}
		seen[c.Text.Name] = true
		if _, ok := groupRank[c.Text.Group]; !ok {
			groupRank[c.Text.Group] = len(groupRank)
		}
		listed = append(listed, c)
	}

	sort.SliceStable(listed, func(i, j int) bool {
		gi, gj := groupRank[listed[i].Text.Group], groupRank[listed[j].Text.Group]
		if gi != gj {
			return gi < gj
		}
		return listed[i].Order < listed[j].Order
	})

	h.cmds = listed
	h.scroll = 0
}

// Draw renders the command list while visible.
func (h *HelpPopup) Draw(f *ui.Frame, _ ui.Rect) error {
	if !h.visible {
		return nil
	}

	full := f.Area()
	area := ui.CenteredRectAbsolute(
		max(full.Width*80/100, helpMinWidth),
		max(full.Height*70/100, helpMinHeight),
		full,
	)

	lines := h.contentLines(area.Width - 2)
	visible := max(area.Height-2, 0)
	offset := min(h.scroll, max(len(lines)-visible, 0))

	return drawModal(f, area, h.theme, modal{
		title: h.labels.HelpTitle(),
		lines: lines[offset:],
		align: lipgloss.Left,
	})
}

// contentLines renders group headers and one line per command.
func (h *HelpPopup) contentLines(width int) []string {
	if len(h.cmds) == 0 {
		return []string{h.labels.NoCommands()}
	}

	nameWidth := 0
	for _, c := range h.cmds {
		nameWidth = max(nameWidth, lipgloss.Width(c.Text.Name))
	}
	nameWidth += 2

	headerStyle := h.theme.Header()
	descMax := max(width-2-nameWidth, 10)

	var lines []string
	group := ""
	for i, c := range h.cmds {
		if i == 0 || c.Text.Group != group {
			if i > 0 {
				lines = append(lines, "")
			}
			group = c.Text.Group
			lines = append(lines, headerStyle.Render(group))
		}

		nameStyle := h.theme.CommandFG(c.Enabled).Width(nameWidth)
		descStyle := h.theme.Text(c.Enabled, false).MaxWidth(descMax)
		lines = append(lines, "  "+nameStyle.Render(c.Text.Name)+descStyle.Render(c.Text.Desc))
	}

	return lines
}

// Commands offers closing and scrolling while open.
func (h *HelpPopup) Commands(out *[]components.CommandInfo, _ bool) components.CommandBlocking {
	*out = append(*out,
		components.NewCommandInfo(h.labels.ClosePopup(h.keyConfig), true, h.visible),
		components.NewCommandInfo(h.labels.Scroll(h.keyConfig), true, h.visible).WithOrder(1),
	)

	return components.VisibilityBlocking(h)
}

// Event scrolls on the move keys, closes on the exit or help key and
// swallows everything else while open.
func (h *HelpPopup) Event(msg tea.Msg) (components.EventState, error) {
	if !h.visible {
		return components.NotConsumed, nil
	}

	k := h.keyConfig.Keys
	switch {
	case keys.KeyMatch(msg, k.ExitPopup), keys.KeyMatch(msg, k.OpenHelp):
		h.Hide()
	case keys.KeyMatch(msg, k.MoveUp):
		h.scroll = max(h.scroll-1, 0)
	case keys.KeyMatch(msg, k.MoveDown):
		h.scroll = min(h.scroll+1, h.maxScroll())
	}

	return components.Consumed, nil
}

// maxScroll bounds scrolling by the number of rendered lines.
func (h *HelpPopup) maxScroll() int {
	groups := make(map[string]bool)
	for _, c := range h.cmds {
		groups[c.Text.Group] = true
	}
	// one header per group plus a blank line between groups
	lines := len(h.cmds) + 2*len(groups) - 1
	return max(lines-1, 0)
}

// Scroll returns the current scroll offset.
func (h *HelpPopup) Scroll() int {
	return h.scroll
}

// IsVisible reports whether the popup is open.
func (h *HelpPopup) IsVisible() bool {
	return h.visible
}

// Hide closes the popup.
func (h *HelpPopup) Hide() {
	h.visible = false
}

// Show opens the popup at the top of the list.
func (h *HelpPopup) Show() error {
	h.scroll = 0
	h.visible = true
	return nil
}
