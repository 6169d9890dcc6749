package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/gitmodal/internal/ui"
)

// Router owns the layering of components. Components are pushed bottom to
// top: input is offered top-down and drawing runs bottom-up, so the topmost
// visible modal both receives input first and covers everything beneath it.
type Router struct {
	layers []Component
}

// NewRouter creates a router with the given layers, bottom first.
func NewRouter(layers ...Component) *Router {
	r := &Router{}
	for _, c := range layers {
		r.Push(c)
	}
	return r
}

// Push adds c on top of the existing layers.
func (r *Router) Push(c Component) {
	r.layers = append(r.layers, c)
}

// Len returns the number of layers.
func (r *Router) Len() int {
	return len(r.layers)
}

// Event offers msg to each layer from the top until one consumes it.
func (r *Router) Event(msg tea.Msg) (EventState, error) {
	for i := len(r.layers) - 1; i >= 0; i-- {
		state, err := r.layers[i].Event(msg)
		if err != nil {
			return NotConsumed, err
		}
		if state.IsConsumed() {
			return Consumed, nil
		}
	}
	return NotConsumed, nil
}

// Draw draws every layer bottom-up. The first error aborts the pass and is
// returned as is.
func (r *Router) Draw(f *ui.Frame, area ui.Rect) error {
	for _, c := range r.layers {
		if err := c.Draw(f, area); err != nil {
			return err
		}
	}
	return nil
}

// Commands collects commands from the top down. A blocking layer hides the
// commands of everything beneath it unless forceAll is set.
// The second result reports whether collection was blocked.
func (r *Router) Commands(forceAll bool) ([]CommandInfo, bool) {
	var out []CommandInfo
	for i := len(r.layers) - 1; i >= 0; i-- {
		if r.layers[i].Commands(&out, forceAll) == Blocking && !forceAll {
			return out, true
		}
	}
	return out, false
}

// TopVisible returns the highest visible layer, or nil.
func (r *Router) TopVisible() Component {
	for i := len(r.layers) - 1; i >= 0; i-- {
		if r.layers[i].IsVisible() {
			return r.layers[i]
		}
	}
	return nil
}

// AnyBlocking reports whether some layer currently claims exclusive focus.
func (r *Router) AnyBlocking() bool {
	_, blocked := r.Commands(false)
	return blocked
}
