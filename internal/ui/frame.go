package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ErrOutOfBounds is returned when a widget is drawn outside the frame.
var ErrOutOfBounds = errors.New("area outside frame")

// sgrReset closes any style left open by a spliced line segment.
const sgrReset = "\x1b[m"

// Frame is the drawing surface for one render pass. Every line always spans
// exactly width cells; styled content may carry ANSI sequences.
type Frame struct {
	width  int
	height int
	lines  []string
}

// NewFrame creates a blank frame of the given size.
func NewFrame(width, height int) *Frame {
	width = max(width, 0)
	height = max(height, 0)

	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}

	return &Frame{width: width, height: height, lines: lines}
}

// Area returns the full drawable area of the frame.
func (f *Frame) Area() Rect {
	return Rect{Width: f.width, Height: f.height}
}

// Clear erases area so that whatever was drawn beneath it disappears.
func (f *Frame) Clear(area Rect) error {
	if err := f.check(area); err != nil {
		return err
	}
	if area.Empty() {
		return nil
	}

	blank := strings.Repeat(" ", area.Width)
	for y := area.Y; y < area.Bottom(); y++ {
		f.lines[y] = splice(f.lines[y], area.X, area.Width, blank)
	}

	return nil
}

// RenderWidget copies a rendered block into area. Lines are clipped or padded
// to area.Width and rows beyond area.Height are dropped.
func (f *Frame) RenderWidget(area Rect, block string) error {
	if err := f.check(area); err != nil {
		return err
	}
	if area.Empty() {
		return nil
	}

	rows := strings.Split(block, "\n")
	for i := 0; i < area.Height; i++ {
		row := ""
		if i < len(rows) {
			row = rows[i]
		}
		f.lines[area.Y+i] = splice(f.lines[area.Y+i], area.X, area.Width, fit(row, area.Width))
	}

	return nil
}

// Lines returns a copy of the frame's rows.
func (f *Frame) Lines() []string {
	return append([]string(nil), f.lines...)
}

// String renders the frame as newline separated rows.
func (f *Frame) String() string {
	return strings.Join(f.lines, "\n")
}

func (f *Frame) check(area Rect) error {
	if area.Width < 0 || area.Height < 0 || !f.Area().Contains(area) {
		return fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d frame",
			ErrOutOfBounds, area.Width, area.Height, area.X, area.Y, f.width, f.height)
	}
	return nil
}

// fit clips or pads s to exactly width cells.
func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

// splice replaces width cells of line starting at column x with content.
func splice(line string, x, width int, content string) string {
	left := ansi.Truncate(line, x, "")
	right := ansi.TruncateLeft(line, x+width, "")

	if !strings.Contains(line, "\x1b") && !strings.Contains(content, "\x1b") {
		return left + content + right
	}
	return left + sgrReset + content + sgrReset + right
}
