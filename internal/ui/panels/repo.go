// Package panels holds the non-modal components that sit beneath the popups.
package panels

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/chatter/gitmodal/internal/components"
	"github.com/chatter/gitmodal/internal/env"
	"github.com/chatter/gitmodal/internal/keys"
	"github.com/chatter/gitmodal/internal/labels"
	"github.com/chatter/gitmodal/internal/repo"
	"github.com/chatter/gitmodal/internal/ui"
	"github.com/chatter/gitmodal/internal/ui/style"
)

// headerRows is the number of body rows above the commit list:
// branch, head, changes, remote, a blank line and the list title.
const headerRows = 6

// RepoPanel displays the working copy summary and the recent commits.
// It fills the area it is given and is the bottom layer of the router.
type RepoPanel struct {
	visible   bool
	focused   bool
	summary   *repo.Summary
	commits   []repo.Commit
	cursor    int
	theme     style.SharedTheme
	keyConfig keys.SharedKeyConfig
	labels    *labels.Labels
}

var _ components.Component = (*RepoPanel)(nil)

// NewRepoPanel creates a visible, focused panel with no data yet.
func NewRepoPanel(e *env.Environment) *RepoPanel {
	return &RepoPanel{
		visible:   true,
		focused:   true,
		theme:     e.Theme,
		keyConfig: e.KeyConfig,
		labels:    e.Labels,
	}
}

// SetContent replaces the summary and commit list. The cursor stays on the
// same index when possible.
func (p *RepoPanel) SetContent(s repo.Summary, commits []repo.Commit) {
	p.summary = &s
	p.commits = commits
	p.cursor = max(min(p.cursor, len(commits)-1), 0)
}

// SetFocused sets whether the panel border is highlighted.
func (p *RepoPanel) SetFocused(focused bool) {
	p.focused = focused
}

// Loaded reports whether content has been set.
func (p *RepoPanel) Loaded() bool {
	return p.summary != nil
}

// SelectedCommit returns the commit under the cursor, or nil.
func (p *RepoPanel) SelectedCommit() *repo.Commit {
	if p.cursor >= 0 && p.cursor < len(p.commits) {
		return &p.commits[p.cursor]
	}
	return nil
}

// CursorUp moves the cursor up.
func (p *RepoPanel) CursorUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// CursorDown moves the cursor down.
func (p *RepoPanel) CursorDown() {
	if p.cursor < len(p.commits)-1 {
		p.cursor++
	}
}

// Draw renders the panel into area.
func (p *RepoPanel) Draw(f *ui.Frame, area ui.Rect) error {
	if !p.visible || area.Empty() {
		return nil
	}

	title := " gitmodal "
	if p.summary != nil {
		title = " " + p.branchLabel() + " "
	}

	para := ui.NewParagraph(p.bodyLines(area.Width-2, area.Height-2)...).
		WithBlock(ui.Block{
			Title:       title,
			TitleStyle:  p.theme.Title(p.focused),
			Border:      p.theme.PanelBorder(),
			BorderStyle: p.theme.Block(p.focused),
		})

	return f.RenderWidget(area, para.Render(area.Width, area.Height))
}

func (p *RepoPanel) bodyLines(width, height int) []string {
	if p.summary == nil {
		return []string{p.theme.Text(false, false).Render(p.labels.Loading())}
	}

	s := p.summary
	label := func(name string) string {
		return p.theme.Header().Render(fmt.Sprintf("%-9s", name+":"))
	}

	head := p.theme.Accent().Render(s.Head)
	if s.Empty {
		head = "-"
	} else if s.Subject != "" {
		head += " " + s.Subject
	}

	remote := p.labels.NoRemote()
	if s.Remote != repo.RemoteNone {
		remote = string(s.Remote) + " " + p.theme.Text(false, false).Render(s.RemoteURL)
	}

	lines := []string{
		label(p.labels.Branch()) + p.branchLabel(),
		label(p.labels.Head()) + head,
		label(p.labels.Changes()) + strconv.Itoa(s.Changed),
		label(p.labels.Remote()) + remote,
		"",
		p.theme.Header().Render(p.labels.Commits()),
	}

	rows := height - headerRows
	if rows <= 0 {
		return lines
	}

	start := p.listOffset(rows)
	end := min(start+rows, len(p.commits))
	for i := start; i < end; i++ {
		lines = append(lines, p.commitLine(p.commits[i], i == p.cursor, width))
	}

	return lines
}

// listOffset is the first commit shown so that the cursor stays in view.
func (p *RepoPanel) listOffset(rows int) int {
	return max(p.cursor-rows+1, 0)
}

func (p *RepoPanel) commitLine(c repo.Commit, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = "→ "
	}

	line := marker + p.theme.Accent().Render(c.Short) + " " + c.Subject
	if c.Author != "" {
		line += p.theme.Text(false, false).Render(" (" + c.Author + ")")
	}
	line = ansi.Truncate(line, width, "…")

	if selected {
		return p.theme.Text(true, true).Width(width).Render(line)
	}
	return line
}

func (p *RepoPanel) branchLabel() string {
	switch {
	case p.summary.Detached:
		return p.labels.Detached()
	case p.summary.Branch == "":
		return "-"
	default:
		return p.summary.Branch
	}
}

// Commands offers scrolling through the commit list.
func (p *RepoPanel) Commands(out *[]components.CommandInfo, _ bool) components.CommandBlocking {
	*out = append(*out,
		components.NewCommandInfo(p.labels.Scroll(p.keyConfig), len(p.commits) > 1, p.visible).WithOrder(10),
	)

	return components.PassingOn
}

// Event moves the cursor on the navigation keys and passes on everything else.
func (p *RepoPanel) Event(msg tea.Msg) (components.EventState, error) {
	if !p.visible {
		return components.NotConsumed, nil
	}

	k := p.keyConfig.Keys
	switch {
	case keys.KeyMatch(msg, k.MoveUp):
		p.CursorUp()
	case keys.KeyMatch(msg, k.MoveDown):
		p.CursorDown()
	default:
		return components.NotConsumed, nil
	}

	return components.Consumed, nil
}

// IsVisible reports whether the panel is drawn.
func (p *RepoPanel) IsVisible() bool {
	return p.visible
}

// Hide stops drawing the panel.
func (p *RepoPanel) Hide() {
	p.visible = false
}

// Show draws the panel again.
func (p *RepoPanel) Show() error {
	p.visible = true
	return nil
}
