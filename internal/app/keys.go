package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/gitmodal/internal/components"
	"github.com/chatter/gitmodal/internal/keys"
)

// Action is a function that executes a keybinding's behavior
type Action func(m *Model) (Model, tea.Cmd)

// ActionBinding pairs a global key with the command it advertises and the
// action it runs.
type ActionBinding struct {
	Binding key.Binding
	Command components.CommandInfo // shown in the command bar and help popup
	Action  Action                 // nil = display-only (no action)
}

// dispatchKey iterates through bindings and executes the first matching action.
// Returns nil, nil if no binding matches.
func dispatchKey(m *Model, msg tea.KeyPressMsg, bindings []ActionBinding) (*Model, tea.Cmd) {
	for _, ab := range bindings {
		if keys.KeyMatch(msg, ab.Binding) && ab.Action != nil {
			newModel, cmd := ab.Action(m)
			return &newModel, cmd
		}
	}
	return nil, nil
}

// commandsOf extracts the advertised commands from action bindings.
func commandsOf(abs []ActionBinding) []components.CommandInfo {
	result := make([]components.CommandInfo, len(abs))
	for i, ab := range abs {
		result[i] = ab.Command
	}
	return result
}

// globalBindings returns the app-level keybindings with their actions.
// They only run when no component consumed the key.
func (m *Model) globalBindings() []ActionBinding {
	k := m.env.KeyConfig.Keys
	l := m.env.Labels

	return []ActionBinding{
		{
			Binding: k.OpenPullRequest,
			Command: components.NewCommandInfo(l.OpenPullRequest(m.env.KeyConfig), true, true).WithOrder(20),
			Action:  (*Model).actionOpenPullRequest,
		},
		// Help is pinned so it survives command bar truncation
		{
			Binding: k.OpenHelp,
			Command: components.NewCommandInfo(l.Help(m.env.KeyConfig), true, true).WithOrder(99).Pin(),
			Action:  (*Model).actionOpenHelp,
		},
		{
			Binding: k.Quit,
			Command: components.NewCommandInfo(l.Quit(m.env.KeyConfig), true, true).WithOrder(100),
			Action:  (*Model).actionQuit,
		},
	}
}
