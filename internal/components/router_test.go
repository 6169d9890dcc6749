package components_test

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/chatter/gitmodal/internal/components"
	"github.com/chatter/gitmodal/internal/ui"
	"github.com/chatter/gitmodal/internal/ui/testgen"
)

// stub is a component with scripted behavior that records what it saw.
type stub struct {
	name     string
	visible  bool
	modal    bool
	drawErr  error
	eventErr error
	log      *[]string
	events   int
}

func (s *stub) Draw(f *ui.Frame, area ui.Rect) error {
	if !s.visible {
		return nil
	}
	*s.log = append(*s.log, "draw "+s.name)
	return s.drawErr
}

func (s *stub) Commands(out *[]components.CommandInfo, _ bool) components.CommandBlocking {
	*out = append(*out, components.NewCommandInfo(components.CommandText{Name: s.name}, true, s.visible))
	if s.modal {
		return components.VisibilityBlocking(s)
	}
	return components.PassingOn
}

func (s *stub) Event(tea.Msg) (components.EventState, error) {
	if s.eventErr != nil {
		return components.NotConsumed, s.eventErr
	}
	if !s.visible {
		return components.NotConsumed, nil
	}
	s.events++
	if s.modal {
		return components.Consumed, nil
	}
	return components.NotConsumed, nil
}

func (s *stub) IsVisible() bool { return s.visible }
func (s *stub) Hide()           { s.visible = false }
func (s *stub) Show() error     { s.visible = true; return nil }

func names(cmds []components.CommandInfo) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Text.Name
	}
	return out
}

func TestRouter_DrawsBottomUp(t *testing.T) {
	var log []string
	r := components.NewRouter(
		&stub{name: "base", visible: true, log: &log},
		&stub{name: "hidden", log: &log},
		&stub{name: "top", visible: true, modal: true, log: &log},
	)

	require.NoError(t, r.Draw(ui.NewFrame(10, 10), ui.Rect{Width: 10, Height: 10}))
	assert.Equal(t, []string{"draw base", "draw top"}, log)
}

func TestRouter_DrawErrorPropagatesUnchanged(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	r := components.NewRouter(
		&stub{name: "a", visible: true, drawErr: boom, log: &log},
		&stub{name: "b", visible: true, log: &log},
	)

	err := r.Draw(ui.NewFrame(1, 1), ui.Rect{Width: 1, Height: 1})
	assert.Same(t, boom, err)
	assert.Equal(t, []string{"draw a"}, log, "draw stops at the first error")
}

func TestRouter_TopModalTakesEvents(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var log []string
		base := &stub{name: "base", visible: true, log: &log}
		lower := &stub{name: "lower", modal: true, visible: rapid.Bool().Draw(t, "lower"), log: &log}
		upper := &stub{name: "upper", modal: true, visible: rapid.Bool().Draw(t, "upper"), log: &log}
		r := components.NewRouter(base, lower, upper)

		state, err := r.Event(testgen.Msg().Draw(t, "msg"))
		if err != nil {
			t.Fatalf("event: %v", err)
		}

		switch {
		case upper.visible:
			if state != components.Consumed || lower.events+base.events != 0 {
				t.Fatal("visible top modal must take the event alone")
			}
		case lower.visible:
			if state != components.Consumed || base.events != 0 {
				t.Fatal("visible lower modal must take the event before the base")
			}
		default:
			if state != components.NotConsumed || base.events != 1 {
				t.Fatal("with no modal the base sees the event and it stays unconsumed")
			}
		}
	})
}

func TestRouter_EventErrorStops(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	base := &stub{name: "base", visible: true, log: &log}
	r := components.NewRouter(base, &stub{name: "bad", eventErr: boom, log: &log})

	_, err := r.Event(tea.FocusMsg{})
	assert.Same(t, boom, err)
	assert.Zero(t, base.events)
}

func TestRouter_CommandsBlockedByVisibleModal(t *testing.T) {
	var log []string
	modal := &stub{name: "modal", modal: true, log: &log}
	r := components.NewRouter(&stub{name: "base", visible: true, log: &log}, modal)

	cmds, blocked := r.Commands(false)
	assert.False(t, blocked)
	assert.Equal(t, []string{"modal", "base"}, names(cmds))
	assert.False(t, r.AnyBlocking())
	assert.Equal(t, "base", r.TopVisible().(*stub).name)

	require.NoError(t, modal.Show())

	cmds, blocked = r.Commands(false)
	assert.True(t, blocked)
	assert.Equal(t, []string{"modal"}, names(cmds))
	assert.True(t, r.AnyBlocking())
	assert.Same(t, modal, r.TopVisible())

	cmds, _ = r.Commands(true)
	assert.Equal(t, []string{"modal", "base"}, names(cmds), "forceAll ignores blocking")
}

func TestRouter_Empty(t *testing.T) {
	r := components.NewRouter()

	state, err := r.Event(tea.FocusMsg{})
	require.NoError(t, err)
	assert.Equal(t, components.NotConsumed, state)
	assert.Nil(t, r.TopVisible())
	assert.Zero(t, r.Len())
}
