// Package app wires the components into the bubbletea program.
package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/chatter/gitmodal/internal/components"
	"github.com/chatter/gitmodal/internal/env"
	"github.com/chatter/gitmodal/internal/popups"
	"github.com/chatter/gitmodal/internal/repo"
	"github.com/chatter/gitmodal/internal/ui"
	"github.com/chatter/gitmodal/internal/ui/help"
	"github.com/chatter/gitmodal/internal/ui/panels"
)

const (
	// commitLimit is how many commits the repository panel lists.
	commitLimit = 50

	// debounce collapses bursts of file system events into one reload.
	debounce = 100 * time.Millisecond
)

// Source is the repository data the application displays.
type Source interface {
	Root() string
	Summary() (repo.Summary, error)
	RecentCommits(n int) ([]repo.Commit, error)
}

// Model is the main application model
type Model struct {
	env     *env.Environment
	version string
	source  Source
	watcher *repo.Watcher

	// Components, bottom to top
	router      *components.Router
	panel       *panels.RepoPanel
	pullRequest *popups.PullRequestPopup
	help        *popups.HelpPopup
	msg         *popups.MsgPopup

	commandBar *help.CommandBar

	// Window size
	width  int
	height int
}

// New creates a new application model
func New(e *env.Environment, source Source, version string) Model {
	panel := panels.NewRepoPanel(e)
	pullRequest := popups.NewPullRequestPopup(e)
	helpPopup := popups.NewHelpPopup(e)
	msg := popups.NewMsgPopup(e)

	return Model{
		env:         e,
		version:     version,
		source:      source,
		router:      components.NewRouter(panel, pullRequest, helpPopup, msg),
		panel:       panel,
		pullRequest: pullRequest,
		help:        helpPopup,
		msg:         msg,
		commandBar:  help.NewCommandBar(e.Theme, "gitmodal "+version),
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadSummary(),
		m.startWatcher(),
	)
}

// loadSummary reads the working copy state and recent commits
func (m Model) loadSummary() tea.Cmd {
	if m.source == nil {
		return nil
	}

	return func() tea.Msg {
		summary, err := m.source.Summary()
		if err != nil {
			return errMsg{err}
		}

		commits, err := m.source.RecentCommits(commitLimit)
		if err != nil {
			return errMsg{err}
		}

		return summaryLoadedMsg{summary: summary, commits: commits}
	}
}

// startWatcher starts the file system watcher
func (m Model) startWatcher() tea.Cmd {
	if m.source == nil {
		return nil
	}

	return func() tea.Msg {
		watcher, err := repo.NewWatcher(m.source.Root(), m.env.Log)
		if err != nil {
			// Don't fail if watcher can't start, just disable auto-refresh
			return watcherStartedMsg{watcher: nil, err: err}
		}
		return watcherStartedMsg{watcher: watcher, err: nil}
	}
}

// waitForChange waits for file system changes
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	return func() tea.Msg {
		change, ok := <-m.watcher.Changes()
		if !ok {
			return nil
		}
		time.Sleep(debounce)
		return repo.WatcherMsg{Kind: change.Kind}
	}
}

// Message types
type summaryLoadedMsg struct {
	summary repo.Summary
	commits []repo.Commit
}

type watcherStartedMsg struct {
	watcher *repo.Watcher
	err     error
}

type errMsg struct {
	err error
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.commandBar.SetWidth(msg.Width)

	case summaryLoadedMsg:
		m.panel.SetContent(msg.summary, msg.commits)

	case watcherStartedMsg:
		m.watcher = msg.watcher
		if msg.err != nil {
			m.env.Log.Warn("auto-refresh disabled", "err", msg.err)
		}
		cmds = append(cmds, m.waitForChange())

	case repo.WatcherMsg:
		m.env.Log.Debug("reloading", "reason", msg.Kind)
		cmds = append(cmds, m.loadSummary(), m.waitForChange())

	case errMsg:
		m.showError(msg.err)

	default:
		// Everything else (focus, key releases, mouse) is offered to the
		// components; a visible popup swallows it.
		if _, err := m.router.Event(msg); err != nil {
			m.showError(err)
		}
	}

	m.panel.SetFocused(!m.router.AnyBlocking())

	return m, tea.Batch(cmds...)
}

// handleKey offers a key press to the components first and falls back to the
// global bindings when none of them consumed it.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	state, err := m.router.Event(msg)
	if err != nil {
		m.showError(err)
		return nil
	}
	if state.IsConsumed() {
		return nil
	}

	if newModel, cmd := dispatchKey(m, msg, m.globalBindings()); newModel != nil {
		*m = *newModel
		return cmd
	}

	return nil
}

// showError logs err and opens the message popup with it.
func (m *Model) showError(err error) {
	m.env.Log.Error("error", "err", err)
	if showErr := m.msg.ShowError(err); showErr != nil {
		m.env.Log.Error("failed to show error", "err", showErr)
	}
}

// Action methods for keybindings

func (m *Model) actionQuit() (Model, tea.Cmd) {
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.env.Log.Warn("closing watcher", "err", err)
		}
	}
	return *m, tea.Quit
}

func (m *Model) actionOpenPullRequest() (Model, tea.Cmd) {
	if err := m.pullRequest.Open(); err != nil {
		m.showError(err)
	}
	return *m, nil
}

func (m *Model) actionOpenHelp() (Model, tea.Cmd) {
	m.help.SetCommands(m.allCommands())
	if err := m.help.Show(); err != nil {
		m.showError(err)
	}
	return *m, nil
}

// allCommands is every command regardless of blocking, for the help popup.
func (m *Model) allCommands() []components.CommandInfo {
	cmds, _ := m.router.Commands(true)
	return append(cmds, commandsOf(m.globalBindings())...)
}

// barCommands is what the command bar shows: the commands of the components
// that are not blocked, plus the global ones unless a popup is open.
func (m *Model) barCommands() []components.CommandInfo {
	cmds, blocked := m.router.Commands(false)
	if !blocked {
		cmds = append(cmds, commandsOf(m.globalBindings())...)
	}
	return cmds
}

// View renders the UI
func (m Model) View() tea.View {
	if m.width == 0 || m.height == 0 {
		return tea.NewView("")
	}

	// Reserve the last row for the command bar
	frame := ui.NewFrame(m.width, max(m.height-1, 0))
	if err := m.router.Draw(frame, frame.Area()); err != nil {
		m.env.Log.Error("draw failed", "err", err)
	}

	m.commandBar.SetCommands(m.barCommands())

	v := tea.NewView(frame.String() + "\n" + m.commandBar.View())
	v.AltScreen = true

	return v
}
