// Package style holds the shared color theme handed to every component.
package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is the set of configurable colors. Values are lipgloss color
// strings: an ANSI index ("62") or a hex value ("#7d56f4").
type Palette struct {
	Border        string
	BorderFocused string
	Title         string
	TitleFocused  string
	CommandFG     string
	DisabledFG    string
	SelectedBG    string
	Accent        string
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	return Palette{
		Border:        "240", // Dark gray
		BorderFocused: "62",  // Purple
		Title:         "62",
		TitleFocused:  "86", // Cyan
		CommandFG:     "252",
		DisabledFG:    "241",
		SelectedBG:    "238",
		Accent:        "205", // Magenta
	}
}

// Theme is read-only once built; components only call its style getters.
type Theme struct {
	border        color.Color
	borderFocused color.Color
	title         color.Color
	titleFocused  color.Color
	commandFG     color.Color
	disabledFG    color.Color
	selectedBG    color.Color
	accent        color.Color
}

// SharedTheme is the handle components keep for the application lifetime.
type SharedTheme = *Theme

// New builds a theme from p.
func New(p Palette) *Theme {
	return &Theme{
		border:        lipgloss.Color(p.Border),
		borderFocused: lipgloss.Color(p.BorderFocused),
		title:         lipgloss.Color(p.Title),
		titleFocused:  lipgloss.Color(p.TitleFocused),
		commandFG:     lipgloss.Color(p.CommandFG),
		disabledFG:    lipgloss.Color(p.DisabledFG),
		selectedBG:    lipgloss.Color(p.SelectedBG),
		accent:        lipgloss.Color(p.Accent),
	}
}

// Default returns a theme with the built-in palette.
func Default() *Theme {
	return New(DefaultPalette())
}

// Title styles a block title.
func (t *Theme) Title(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Bold(true).Foreground(t.titleFocused)
	}
	return lipgloss.NewStyle().Foreground(t.title)
}

// Block styles a block border.
func (t *Theme) Block(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(t.borderFocused)
	}
	return lipgloss.NewStyle().Foreground(t.border)
}

// BorderType is the border used by modal popups.
func (t *Theme) BorderType() lipgloss.Border {
	return lipgloss.ThickBorder()
}

// PanelBorder is the border used by non-modal panels.
func (t *Theme) PanelBorder() lipgloss.Border {
	return lipgloss.RoundedBorder()
}

// Text styles regular content.
func (t *Theme) Text(enabled, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(t.commandFG)
	if !enabled {
		s = s.Foreground(t.disabledFG)
	}
	if selected {
		s = s.Background(t.selectedBG).Bold(true)
	}
	return s
}

// CommandFG styles a command bar entry.
func (t *Theme) CommandFG(enabled bool) lipgloss.Style {
	if enabled {
		return lipgloss.NewStyle().Foreground(t.commandFG)
	}
	return lipgloss.NewStyle().Foreground(t.disabledFG)
}

// CommandBar styles the command bar background text.
func (t *Theme) CommandBar() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.disabledFG)
}

// Separator styles the gap between command bar entries.
func (t *Theme) Separator() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.border)
}

// Accent styles highlighted identifiers such as commit hashes.
func (t *Theme) Accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.accent)
}

// Header styles section headers inside popups.
func (t *Theme) Header() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.title)
}
