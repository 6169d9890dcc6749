// Package components defines the contract every screen element satisfies:
// drawing into a frame, consuming input events and reporting the commands it
// offers to the command bar and help popup.
package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/gitmodal/internal/ui"
)

// EventState reports whether a component took ownership of an event.
type EventState int

const (
	// NotConsumed means the router should offer the event to the next component.
	NotConsumed EventState = iota
	// Consumed means no other component may see the event.
	Consumed
)

// IsConsumed reports whether the event was consumed.
func (s EventState) IsConsumed() bool {
	return s == Consumed
}

func (s EventState) String() string {
	if s == Consumed {
		return "consumed"
	}
	return "not consumed"
}

// CommandBlocking tells the caller collecting commands whether to keep asking
// the components beneath this one.
type CommandBlocking int

const (
	// PassingOn lets commands of underlying components through.
	PassingOn CommandBlocking = iota
	// Blocking means this component owns the command bar and input focus.
	Blocking
)

// DrawableComponent renders itself into a frame.
type DrawableComponent interface {
	// Draw is called once per frame whether or not the component is visible.
	Draw(f *ui.Frame, area ui.Rect) error
}

// Component is the full contract of a screen element.
type Component interface {
	DrawableComponent

	// Commands appends the commands this component offers to out.
	Commands(out *[]CommandInfo, forceAll bool) CommandBlocking

	// Event handles one input message.
	Event(msg tea.Msg) (EventState, error)

	IsVisible() bool
	Hide()
	Show() error
}

// Visibility is the part of a component VisibilityBlocking needs.
type Visibility interface {
	IsVisible() bool
}

// VisibilityBlocking blocks while c is visible.
func VisibilityBlocking(c Visibility) CommandBlocking {
	if c.IsVisible() {
		return Blocking
	}
	return PassingOn
}
