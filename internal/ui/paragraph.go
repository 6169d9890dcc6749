package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Block is the border and title drawn around a widget.
type Block struct {
	Title       string
	TitleStyle  lipgloss.Style
	Border      lipgloss.Border
	BorderStyle lipgloss.Style
}

// Paragraph is a block of text rendered into a fixed size rect.
type Paragraph struct {
	Lines []string
	Style lipgloss.Style
	Block *Block
	Align lipgloss.Position
	Wrap  bool
}

// NewParagraph creates a left aligned, unwrapped paragraph.
func NewParagraph(lines ...string) Paragraph {
	return Paragraph{
		Lines: lines,
		Style: lipgloss.NewStyle(),
		Align: lipgloss.Left,
	}
}

// WithBlock surrounds the paragraph with b.
func (p Paragraph) WithBlock(b Block) Paragraph {
	p.Block = &b
	return p
}

// Alignment sets the horizontal alignment of every line.
func (p Paragraph) Alignment(pos lipgloss.Position) Paragraph {
	p.Align = pos
	return p
}

// Wrapped enables word wrapping at the inner width.
func (p Paragraph) Wrapped(wrap bool) Paragraph {
	p.Wrap = wrap
	return p
}

// Render draws the paragraph to exactly width x height cells.
func (p Paragraph) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	innerWidth, innerHeight := width, height
	if p.Block != nil {
		innerWidth -= 2
		innerHeight -= 2
		if innerWidth < 0 || innerHeight < 0 {
			return ""
		}
	}

	body := p.renderBody(innerWidth, innerHeight)
	if p.Block == nil {
		return strings.Join(body, "\n")
	}

	return strings.Join(p.Block.frame(body, innerWidth), "\n")
}

func (p Paragraph) renderBody(width, height int) []string {
	out := make([]string, 0, height)
	if width <= 0 {
		for range height {
			out = append(out, "")
		}
		return out
	}

	lines := p.Lines
	if !p.Wrap {
		lines = make([]string, len(p.Lines))
		for i, line := range p.Lines {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}

	rendered := p.Style.Width(width).Align(p.Align).Render(strings.Join(lines, "\n"))
	for _, line := range strings.Split(rendered, "\n") {
		if len(out) == height {
			break
		}
		out = append(out, fit(line, width))
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", width))
	}

	return out
}

// frame wraps body rows, each innerWidth cells wide, in the block border.
func (b *Block) frame(body []string, innerWidth int) []string {
	border := b.Border
	style := b.BorderStyle

	out := make([]string, 0, len(body)+2)
	out = append(out, b.topLine(innerWidth))
	for _, row := range body {
		out = append(out, style.Render(border.Left)+row+style.Render(border.Right))
	}
	out = append(out, style.Render(border.BottomLeft+strings.Repeat(border.Bottom, innerWidth)+border.BottomRight))

	return out
}

func (b *Block) topLine(innerWidth int) string {
	border := b.Border
	style := b.BorderStyle

	title := ""
	if b.Title != "" && innerWidth > 0 {
		title = ansi.Truncate(b.TitleStyle.Render(b.Title), innerWidth, "")
	}
	rest := innerWidth - ansi.StringWidth(title)

	return style.Render(border.TopLeft) + title +
		style.Render(strings.Repeat(border.Top, rest)+border.TopRight)
}
