package help

import (
	"fmt"
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"pgregory.net/rapid"

	"github.com/chatter/gitmodal/internal/components"
	"github.com/chatter/gitmodal/internal/ui/style"
)

func command(name string, order int) components.CommandInfo {
	return components.NewCommandInfo(components.CommandText{Name: name}, true, true).WithOrder(order)
}

// generateCommand creates a random CommandInfo
func generateCommand(t *rapid.T, idx int) components.CommandInfo {
	name := fmt.Sprintf("%s [%c]", rapid.StringMatching(`[a-z]{3,10}`).Draw(t, "name"), 'a'+idx%26)
	c := components.NewCommandInfo(
		components.CommandText{Name: name},
		rapid.Bool().Draw(t, "enabled"),
		rapid.Bool().Draw(t, "available"),
	).WithOrder(rapid.IntRange(0, 100).Draw(t, "order"))

	if rapid.Bool().Draw(t, "pinned") {
		c = c.Pin()
	}
	return c
}

func generateCommands(t *rapid.T) []components.CommandInfo {
	n := rapid.IntRange(0, 20).Draw(t, "numCommands")
	cmds := make([]components.CommandInfo, n)
	for i := range cmds {
		cmds[i] = generateCommand(t, i)
	}
	return cmds
}

func render(width int, version string, cmds []components.CommandInfo) string {
	b := NewCommandBar(style.Default(), version)
	b.SetCommands(cmds)
	b.SetWidth(width)
	return b.View()
}

func TestCommandBar_WidthExact(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(1, 200).Draw(t, "width")
		view := render(width, "v1.0.0", generateCommands(t))

		if w := lipgloss.Width(view); w != width {
			t.Errorf("view width %d, want %d: %q", w, width, view)
		}
	})
}

func TestCommandBar_VersionAtEnd(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(20, 200).Draw(t, "width")
		version := rapid.StringMatching(`v[0-9]+\.[0-9]+\.[0-9]+`).Draw(t, "version")
		view := ansi.Strip(render(width, version, generateCommands(t)))

		if !strings.HasSuffix(view, version) {
			t.Errorf("version %q not at end: %q", version, view)
		}
	})
}

func TestCommandBar_UnavailableNeverAppear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "n")
		cmds := make([]components.CommandInfo, n)
		for i := range cmds {
			cmds[i] = components.NewCommandInfo(
				components.CommandText{Name: fmt.Sprintf("hidden%d", i)}, true, false)
		}
		cmds = append(cmds, command("bar-only", 0).HideBar())

		view := render(200, "v1.0.0", cmds)

		if strings.Contains(view, "hidden") || strings.Contains(view, "bar-only") {
			t.Errorf("unavailable commands should not appear: %q", view)
		}
	})
}

func TestCommandBar_DisabledShownDimmed(t *testing.T) {
	theme := style.Default()
	disabled := components.NewCommandInfo(components.CommandText{Name: "Scroll [k/j]"}, false, true)

	view := render(80, "v1.0.0", []components.CommandInfo{disabled})

	want := theme.CommandFG(false).Render("Scroll [k/j]")
	if !strings.Contains(view, want) {
		t.Errorf("disabled command should use the disabled style: %q", view)
	}
}

func TestCommandBar_OrderedByOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 5).Draw(t, "n")
		cmds := make([]components.CommandInfo, n)
		for i := range cmds {
			cmds[i] = command(fmt.Sprintf("c%c", 'a'+i), rapid.IntRange(0, 100).Draw(t, "order"))
		}

		view := ansi.Strip(render(300, "v1.0.0", cmds))

		for i := range cmds {
			for j := range cmds {
				if cmds[i].Order >= cmds[j].Order {
					continue
				}
				if strings.Index(view, cmds[i].Text.Name) > strings.Index(view, cmds[j].Text.Name) {
					t.Errorf("%s (order %d) after %s (order %d): %q",
						cmds[i].Text.Name, cmds[i].Order, cmds[j].Text.Name, cmds[j].Order, view)
				}
			}
		}
	})
}

func TestCommandBar_SeparatorBetweenCommands(t *testing.T) {
	view := ansi.Strip(render(100, "v1.0.0", []components.CommandInfo{
		command("first", 1),
		command("second", 2),
	}))

	if !strings.Contains(view, "first • second") {
		t.Errorf("expected separator between commands: %q", view)
	}
}

func TestCommandBar_NoCommandsShowsVersion(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(20, 200).Draw(t, "width")
		view := ansi.Strip(render(width, "v1.0.0", nil))

		if !strings.Contains(view, "v1.0.0") {
			t.Errorf("version not found with no commands: %q", view)
		}
		if strings.Contains(view, ellipsis) {
			t.Errorf("unexpected ellipsis with no commands: %q", view)
		}
	})
}

func TestCommandBar_EllipsisWhenTruncated(t *testing.T) {
	cmds := make([]components.CommandInfo, 10)
	for i := range cmds {
		cmds[i] = command(fmt.Sprintf("command%d", i), i)
	}

	view := ansi.Strip(render(50, "v1.0.0", cmds))

	if !strings.Contains(view, ellipsis) {
		t.Errorf("expected ellipsis when commands overflow: %q", view)
	}
	if !strings.HasPrefix(view, "command0") {
		t.Errorf("lowest order command should come first: %q", view)
	}
}

func TestCommandBar_PinnedAlwaysAppear(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(40, 100).Draw(t, "width")

		n := rapid.IntRange(5, 15).Draw(t, "numRegular")
		cmds := make([]components.CommandInfo, 0, n+1)
		for i := range n {
			cmds = append(cmds, command(fmt.Sprintf("action%d", i), i))
		}
		cmds = append(cmds, command("Help [?]", 99).Pin())

		view := ansi.Strip(render(width, "v1.0.0", cmds))

		if !strings.Contains(view, "Help [?]") {
			t.Errorf("pinned command should always appear: %q", view)
		}
	})
}
