package ui_test

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/chatter/gitmodal/internal/ui"
	"github.com/chatter/gitmodal/internal/ui/testgen"
)

func TestFrame_Blank(t *testing.T) {
	f := ui.NewFrame(4, 2)
	assert.Equal(t, "    \n    ", f.String())
	assert.Equal(t, ui.Rect{Width: 4, Height: 2}, f.Area())
}

func TestFrame_RenderWidget(t *testing.T) {
	f := ui.NewFrame(6, 3)
	require.NoError(t, f.RenderWidget(ui.Rect{X: 1, Y: 1, Width: 3, Height: 2}, "abcdef\nx"))

	assert.Equal(t, []string{
		"      ",
		" abc  ",
		" x    ",
	}, f.Lines())
}

func TestFrame_ClearRemovesContent(t *testing.T) {
	f := ui.NewFrame(5, 1)
	require.NoError(t, f.RenderWidget(f.Area(), "#####"))
	require.NoError(t, f.Clear(ui.Rect{X: 1, Width: 3, Height: 1}))

	assert.Equal(t, "#   #", f.String())
}

func TestFrame_OutOfBounds(t *testing.T) {
	f := ui.NewFrame(10, 5)

	for _, r := range []ui.Rect{
		{X: 8, Width: 3, Height: 1},
		{Y: 4, Width: 1, Height: 2},
		{X: -1, Width: 1, Height: 1},
		{Width: -1, Height: 1},
	} {
		require.ErrorIs(t, f.Clear(r), ui.ErrOutOfBounds, "%+v", r)
		require.ErrorIs(t, f.RenderWidget(r, "x"), ui.ErrOutOfBounds, "%+v", r)
	}
}

func TestFrame_StyledSpliceKeepsWidth(t *testing.T) {
	f := ui.NewFrame(10, 1)
	styled := lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Render("abcdef")
	require.NoError(t, f.RenderWidget(f.Area(), styled))
	require.NoError(t, f.RenderWidget(ui.Rect{X: 2, Width: 3, Height: 1}, "XYZ"))

	assert.Equal(t, "abXYZf    ", ansi.Strip(f.String()))
	assert.Equal(t, 10, ansi.StringWidth(f.String()))
}

func TestFrame_LinesAlwaysFullWidth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := testgen.FrameSize(0, 80, 0, 30).Draw(t, "size")
		f := ui.NewFrame(size.Width, size.Height)

		for range rapid.IntRange(0, 5).Draw(t, "writes") {
			r := testgen.RectWithin(f.Area()).Draw(t, "rect")
			text := rapid.StringMatching(`[a-z ]{0,40}(\n[a-z ]{0,40}){0,5}`).Draw(t, "text")
			if err := f.RenderWidget(r, text); err != nil {
				t.Fatalf("render into %+v: %v", r, err)
			}
		}

		lines := f.Lines()
		if len(lines) != size.Height {
			t.Fatalf("%d lines, want %d", len(lines), size.Height)
		}
		for i, line := range lines {
			if w := ansi.StringWidth(line); w != size.Width {
				t.Fatalf("line %d width %d, want %d: %q", i, w, size.Width, line)
			}
		}
	})
}

func TestFrame_LinesIsCopy(t *testing.T) {
	f := ui.NewFrame(3, 1)
	lines := f.Lines()
	lines[0] = "changed"

	assert.Equal(t, "   ", f.String())
	assert.False(t, strings.Contains(f.String(), "changed"))
}
