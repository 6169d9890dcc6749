// Package keys holds the shared key binding configuration.
package keys

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// ErrUnknownAction is returned when an override names an action that does not exist.
var ErrUnknownAction = errors.New("unknown key action")

// Action names accepted in configuration files.
const (
	ActionExitPopup       = "exit_popup"
	ActionOpenPullRequest = "open_pull_request"
	ActionOpenHelp        = "open_help"
	ActionQuit            = "quit"
	ActionMoveUp          = "move_up"
	ActionMoveDown        = "move_down"
)

// KeysList maps each logical action to its physical keys.
type KeysList struct {
	ExitPopup       key.Binding
	OpenPullRequest key.Binding
	OpenHelp        key.Binding
	Quit            key.Binding
	MoveUp          key.Binding
	MoveDown        key.Binding
}

// KeyConfig is built once at startup and then only read.
type KeyConfig struct {
	Keys KeysList
}

// SharedKeyConfig is the handle components keep for the application lifetime.
type SharedKeyConfig = *KeyConfig

// DefaultKeyConfig returns the default key bindings.
func DefaultKeyConfig() *KeyConfig {
	return &KeyConfig{
		Keys: KeysList{
			ExitPopup:       newBinding("esc"),
			OpenPullRequest: newBinding("p"),
			OpenHelp:        newBinding("?"),
			Quit:            newBinding("q", "ctrl+c"),
			MoveUp:          newBinding("k", "up"),
			MoveDown:        newBinding("j", "down"),
		},
	}
}

// Actions lists the configurable action names in sorted order.
func Actions() []string {
	actions := []string{
		ActionExitPopup,
		ActionOpenPullRequest,
		ActionOpenHelp,
		ActionQuit,
		ActionMoveUp,
		ActionMoveDown,
	}
	sort.Strings(actions)
	return actions
}

// Apply replaces the keys of every action named in overrides.
// It must run before the config is shared with components.
func (k *KeyConfig) Apply(overrides map[string][]string) error {
	for action, keyNames := range overrides {
		b := k.binding(action)
		if b == nil {
			return fmt.Errorf("%w: %q", ErrUnknownAction, action)
		}
		if len(keyNames) == 0 {
			return fmt.Errorf("action %q: at least one key is required", action)
		}
		*b = newBinding(keyNames...)
	}
	return nil
}

func (k *KeyConfig) binding(action string) *key.Binding {
	switch action {
	case ActionExitPopup:
		return &k.Keys.ExitPopup
	case ActionOpenPullRequest:
		return &k.Keys.OpenPullRequest
	case ActionOpenHelp:
		return &k.Keys.OpenHelp
	case ActionQuit:
		return &k.Keys.Quit
	case ActionMoveUp:
		return &k.Keys.MoveUp
	case ActionMoveDown:
		return &k.Keys.MoveDown
	default:
		return nil
	}
}

// KeyMatch reports whether msg is a key press bound to b.
// Releases, mouse events and every other message never match.
func KeyMatch(msg tea.Msg, b key.Binding) bool {
	press, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return false
	}
	return key.Matches(press, b)
}

// KeyLabel returns the display form of a binding, e.g. "⎋" or "k/↑".
func KeyLabel(b key.Binding) string {
	return b.Help().Key
}

func newBinding(keyNames ...string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keyNames...),
		key.WithHelp(displayKeys(keyNames), ""),
	)
}

// symbols are the glyphs shown for named keys.
var symbols = map[string]string{
	"esc":       "⎋",
	"enter":     "⏎",
	"tab":       "⇥",
	"shift+tab": "⇧⇥",
	"up":        "↑",
	"down":      "↓",
	"left":      "←",
	"right":     "→",
}

func displayKeys(keyNames []string) string {
	shown := make([]string, 0, len(keyNames))
	for _, name := range keyNames {
		// ctrl+c is an escape hatch, not something worth advertising
		if name == "ctrl+c" && len(keyNames) > 1 {
			continue
		}
		if sym, ok := symbols[name]; ok {
			name = sym
		}
		shown = append(shown, name)
	}
	return strings.Join(shown, "/")
}
