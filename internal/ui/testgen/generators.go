// Package testgen provides rapid generators for input events and screen
// geometry used by component tests.
package testgen

import (
	tea "charm.land/bubbletea/v2"
	"pgregory.net/rapid"

	"github.com/chatter/gitmodal/internal/ui"
)

// namedKeys are the special keys a user is likely to press.
var namedKeys = []rune{
	tea.KeyEnter,
	tea.KeyTab,
	tea.KeyBackspace,
	tea.KeyEscape,
	tea.KeyUp,
	tea.KeyDown,
	tea.KeyLeft,
	tea.KeyRight,
	tea.KeyHome,
	tea.KeyEnd,
	tea.KeyPgUp,
	tea.KeyPgDown,
}

// Press builds the key press for a printable rune.
func Press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// PressCode builds the key press for a named key such as tea.KeyEscape.
func PressCode(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// PrintableKey generates a press of a single printable ASCII character.
func PrintableKey() *rapid.Generator[tea.KeyPressMsg] {
	return rapid.Custom(func(t *rapid.T) tea.KeyPressMsg {
		r := rapid.SampledFrom(printable).Draw(t, "rune")
		return Press(r)
	})
}

// NamedKey generates a press of a special key.
func NamedKey() *rapid.Generator[tea.KeyPressMsg] {
	return rapid.Custom(func(t *rapid.T) tea.KeyPressMsg {
		return PressCode(rapid.SampledFrom(namedKeys).Draw(t, "code"))
	})
}

// CtrlKey generates a ctrl+letter press.
func CtrlKey() *rapid.Generator[tea.KeyPressMsg] {
	return rapid.Custom(func(t *rapid.T) tea.KeyPressMsg {
		r := rapid.RuneFrom([]rune("abcdefghijklmnopqrstuvwxyz")).Draw(t, "letter")
		return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
	})
}

// KeyPress generates any key press.
func KeyPress() *rapid.Generator[tea.KeyPressMsg] {
	return rapid.OneOf(PrintableKey(), NamedKey(), CtrlKey())
}

// KeyPressExcept generates key presses whose keystroke is not in excluded.
func KeyPressExcept(excluded ...string) *rapid.Generator[tea.KeyPressMsg] {
	skip := make(map[string]bool, len(excluded))
	for _, k := range excluded {
		skip[k] = true
	}
	return KeyPress().Filter(func(msg tea.KeyPressMsg) bool {
		return !skip[msg.String()]
	})
}

// NonKeyMsg generates messages that are not key presses.
func NonKeyMsg() *rapid.Generator[tea.Msg] {
	return rapid.Custom(func(t *rapid.T) tea.Msg {
		switch rapid.IntRange(0, 3).Draw(t, "kind") {
		case 0:
			return tea.WindowSizeMsg{
				Width:  rapid.IntRange(1, 300).Draw(t, "width"),
				Height: rapid.IntRange(1, 100).Draw(t, "height"),
			}
		case 1:
			return tea.KeyReleaseMsg{Code: rapid.SampledFrom(namedKeys).Draw(t, "code")}
		case 2:
			return tea.FocusMsg{}
		default:
			return tea.BlurMsg{}
		}
	})
}

// Msg generates any input message, key press or not.
func Msg() *rapid.Generator[tea.Msg] {
	return rapid.OneOf(
		rapid.Map(KeyPress(), func(k tea.KeyPressMsg) tea.Msg { return k }),
		NonKeyMsg(),
	)
}

// FrameSize generates terminal dimensions between the given bounds.
func FrameSize(minW, maxW, minH, maxH int) *rapid.Generator[ui.Rect] {
	return rapid.Custom(func(t *rapid.T) ui.Rect {
		return ui.Rect{
			Width:  rapid.IntRange(minW, maxW).Draw(t, "width"),
			Height: rapid.IntRange(minH, maxH).Draw(t, "height"),
		}
	})
}

// RectWithin generates a rect that lies inside area.
func RectWithin(area ui.Rect) *rapid.Generator[ui.Rect] {
	return rapid.Custom(func(t *rapid.T) ui.Rect {
		x := rapid.IntRange(area.X, area.Right()).Draw(t, "x")
		y := rapid.IntRange(area.Y, area.Bottom()).Draw(t, "y")
		return ui.Rect{
			X:      x,
			Y:      y,
			Width:  rapid.IntRange(0, area.Right()-x).Draw(t, "w"),
			Height: rapid.IntRange(0, area.Bottom()-y).Draw(t, "h"),
		}
	})
}

// printable holds the visible ASCII characters, space excluded.
var printable = func() []rune {
	runes := make([]rune, 0, 0x7e-0x21+1)
	for r := rune(0x21); r <= 0x7e; r++ {
		runes = append(runes, r)
	}
	return runes
}()
