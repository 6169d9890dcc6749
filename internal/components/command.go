package components

// CommandText is the localized description of one command.
type CommandText struct {
	Name     string // short label with key, e.g. "Close [⎋]"
	Desc     string // longer description for the help popup
	Group    string // help popup section
	HideHelp bool   // if true, never listed in the help popup
}

// CommandInfo describes one command a component currently offers.
// It is built fresh on every query and never stored.
type CommandInfo struct {
	Text CommandText
	// Enabled is false when the command exists but cannot run right now.
	Enabled bool
	// Available is false when the command is not offered at all right now.
	Available bool
	// Quick commands are shown in the command bar, not only in help.
	Quick bool
	// Order sorts the command bar; lower comes first.
	Order int
	// Pinned commands stay in the command bar when the rest is truncated.
	Pinned bool
}

// NewCommandInfo creates a quick command with default order.
func NewCommandInfo(text CommandText, enabled, available bool) CommandInfo {
	return CommandInfo{
		Text:      text,
		Enabled:   enabled,
		Available: available,
		Quick:     true,
	}
}

// WithOrder returns c with the given command bar order.
func (c CommandInfo) WithOrder(order int) CommandInfo {
	c.Order = order
	return c
}

// HideHelp returns c excluded from the help popup.
func (c CommandInfo) HideHelp() CommandInfo {
	c.Text.HideHelp = true
	return c
}

// HideBar returns c excluded from the command bar.
func (c CommandInfo) HideBar() CommandInfo {
	c.Quick = false
	return c
}

// Pin returns c pinned to the command bar.
func (c CommandInfo) Pin() CommandInfo {
	c.Pinned = true
	return c
}

// Show reports whether the command bar should render c.
func (c CommandInfo) Show() bool {
	return c.Available && c.Quick
}
