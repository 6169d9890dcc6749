// Package help renders the one-line command bar at the bottom of the screen.
package help

import (
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/chatter/gitmodal/internal/components"
	"github.com/chatter/gitmodal/internal/ui/style"
)

const (
	separator = " • "
	ellipsis  = "…"
)

// CommandBar renders the quick commands on the left and the version on the
// right. Commands that do not fit are replaced by an ellipsis; pinned
// commands are kept whenever there is room for them.
type CommandBar struct {
	width   int
	version string
	cmds    []components.CommandInfo
	theme   style.SharedTheme
}

// NewCommandBar creates a command bar that displays the given version string.
func NewCommandBar(theme style.SharedTheme, version string) *CommandBar {
	return &CommandBar{theme: theme, version: version}
}

// SetWidth sets the available width for rendering.
func (b *CommandBar) SetWidth(width int) {
	b.width = width
}

// SetCommands replaces the listed commands. Only commands that should be
// shown are kept, sorted by Order; equal orders keep their given order.
func (b *CommandBar) SetCommands(cmds []components.CommandInfo) {
	shown := make([]components.CommandInfo, 0, len(cmds))
	for _, c := range cmds {
		if c.Show() {
			shown = append(shown, c)
		}
	}

	sort.SliceStable(shown, func(i, j int) bool {
		return shown[i].Order < shown[j].Order
	})

	b.cmds = shown
}

// View renders the command bar as exactly one line of b.width cells.
func (b *CommandBar) View() string {
	if b.width <= 0 {
		return ""
	}

	version := b.theme.CommandBar().Render(ansi.Truncate(b.version, b.width, ""))
	versionWidth := lipgloss.Width(version)

	// one cell between the commands and the version
	avail := b.width - versionWidth - 1
	left := b.renderCommands(avail)
	leftWidth := lipgloss.Width(left)

	padding := max(b.width-leftWidth-versionWidth, 0)

	return left + strings.Repeat(" ", padding) + version
}

// renderCommands lays out as many commands as fit in width cells.
func (b *CommandBar) renderCommands(width int) string {
	if width <= 0 || len(b.cmds) == 0 {
		return ""
	}

	sep := b.theme.Separator().Render(separator)
	sepWidth := lipgloss.Width(sep)

	var normal, pinned []string
	for _, c := range b.cmds {
		if c.Pinned {
			pinned = append(pinned, b.entry(c))
		} else {
			normal = append(normal, b.entry(c))
		}
	}

	reserved := joinedWidth(pinned, sepWidth)
	if reserved > width {
		normal = append(normal, pinned...)
		pinned, reserved = nil, 0
	}
	if len(pinned) > 0 && len(normal) > 0 {
		reserved += sepWidth
	}

	if joinedWidth(normal, sepWidth)+reserved <= width {
		return strings.Join(append(normal, pinned...), sep)
	}

	budget := width - reserved - lipgloss.Width(ellipsis)
	var parts []string
	used := 0
	for _, entry := range normal {
		w := lipgloss.Width(entry)
		if len(parts) > 0 {
			w += sepWidth
		}
		// the separator before the ellipsis must still fit
		if used+w+sepWidth > budget {
			break
		}
		parts = append(parts, entry)
		used += w
	}

	parts = append(parts, b.theme.CommandBar().Render(ellipsis))
	parts = append(parts, pinned...)

	return ansi.Truncate(strings.Join(parts, sep), width, "")
}

// joinedWidth is the width of entries joined by separators.
func joinedWidth(entries []string, sepWidth int) int {
	if len(entries) == 0 {
		return 0
	}

	w := sepWidth * (len(entries) - 1)
	for _, e := range entries {
		w += lipgloss.Width(e)
	}
	return w
}

func (b *CommandBar) entry(c components.CommandInfo) string {
	return b.theme.CommandFG(c.Enabled).Render(c.Text.Name)
}
