// Package labels provides the localized strings shown to the user:
// command bar entries, popup titles and popup bodies.
package labels

import (
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/chatter/gitmodal/internal/components"
	"github.com/chatter/gitmodal/internal/keys"
)

// ErrUnsupportedLanguage is returned for languages without a translation.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Command groups used by the help popup.
const (
	GroupGeneral    = "General"
	GroupNavigation = "Navigation"
	GroupPopup      = "Popup"
)

// Message keys. The English text doubles as the catalog key.
const (
	msgClose           = "Close [%s]"
	msgCloseDesc       = "close popup"
	msgPullRequest     = "Pull Request [%s]"
	msgPullRequestDesc = "open pull request dialog"
	msgHelp            = "Help [%s]"
	msgHelpDesc        = "show all commands"
	msgQuit            = "Quit [%s]"
	msgQuitDesc        = "quit gitmodal"
	msgScroll          = "Scroll [%s/%s]"
	msgScrollDesc      = "move selection"

	msgPRTitle = "Pull Request (Coming Soon)"
	msgPR1     = "Pull Request functionality is not yet"
	msgPR2     = "implemented. This feature would allow"
	msgPR3     = "creating pull requests to GitHub/GitLab"
	msgPR4     = "directly from gitmodal."
	msgPRClose = "Press %s to close this dialog."

	msgHelpTitle  = "Help"
	msgErrorTitle = "Error"
	msgNoCommands = "No commands available"

	msgBranch   = "Branch"
	msgHead     = "Head"
	msgChanges  = "Changes"
	msgRemote   = "Remote"
	msgDetached = "detached"
	msgNoRemote = "none"
	msgLoading  = "Loading..."
	msgCommits  = "Commits"
)

var supported = []language.Tag{language.English, language.German}

var translations = map[language.Tag]map[string]string{
	language.German: {
		msgClose:           "Schließen [%s]",
		msgCloseDesc:       "Popup schließen",
		msgPullRequest:     "Pull Request [%s]",
		msgPullRequestDesc: "Pull-Request-Dialog öffnen",
		msgHelp:            "Hilfe [%s]",
		msgHelpDesc:        "alle Befehle anzeigen",
		msgQuit:            "Beenden [%s]",
		msgQuitDesc:        "gitmodal beenden",
		msgScroll:          "Blättern [%s/%s]",
		msgScrollDesc:      "Auswahl bewegen",

		msgPRTitle: "Pull Request (demnächst)",
		msgPR1:     "Pull Requests sind noch nicht",
		msgPR2:     "implementiert. Diese Funktion würde",
		msgPR3:     "Pull Requests für GitHub/GitLab",
		msgPR4:     "direkt aus gitmodal erstellen.",
		msgPRClose: "%s schließt diesen Dialog.",

		msgHelpTitle:  "Hilfe",
		msgErrorTitle: "Fehler",
		msgNoCommands: "Keine Befehle verfügbar",

		msgBranch:   "Branch",
		msgHead:     "Head",
		msgChanges:  "Änderungen",
		msgRemote:   "Remote",
		msgDetached: "losgelöst",
		msgNoRemote: "keins",
		msgLoading:  "Lädt...",
		msgCommits:  "Commits",

		GroupGeneral:    "Allgemein",
		GroupNavigation: "Navigation",
		GroupPopup:      "Popup",
	},
}

var messages = buildCatalog()

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, entries := range translations {
		for k, v := range entries {
			// Keys and values are compile-time constants; SetString only
			// fails on malformed messages.
			if err := b.SetString(tag, k, v); err != nil {
				panic(fmt.Sprintf("labels: bad translation %q: %v", k, err))
			}
		}
	}
	return b
}

// Labels formats user-visible strings in one language.
type Labels struct {
	tag     language.Tag
	printer *message.Printer
	title   cases.Caser
}

// Supported lists the accepted language codes.
func Supported() []string {
	codes := make([]string, len(supported))
	for i, tag := range supported {
		codes[i] = tag.String()
	}
	return codes
}

// New returns labels for lang ("en", "de"). An empty lang means English.
func New(lang string) (*Labels, error) {
	tag := language.English
	if lang != "" {
		parsed, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrUnsupportedLanguage, lang, err)
		}
		base, _ := parsed.Base()
		match, ok := lookup(base.String())
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
		}
		tag = match
	}

	return &Labels{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
		title:   cases.Title(tag),
	}, nil
}

// Default returns English labels.
func Default() *Labels {
	l, _ := New("")
	return l
}

// Language returns the language code in use.
func (l *Labels) Language() string {
	return l.tag.String()
}

func (l *Labels) sprintf(msg string, args ...any) string {
	return l.printer.Sprintf(msg, args...)
}

func lookup(code string) (language.Tag, bool) {
	for _, t := range supported {
		if t.String() == code {
			return t, true
		}
	}
	return language.Und, false
}

// keyName returns the first physical key of b for prose, e.g. "Esc".
func (l *Labels) keyName(b key.Binding) string {
	names := b.Keys()
	if len(names) == 0 {
		return ""
	}
	return l.title.String(names[0])
}

// ClosePopup is the command shown by every popup while it is open.
func (l *Labels) ClosePopup(kc keys.SharedKeyConfig) components.CommandText {
	return components.CommandText{
		Name:  l.sprintf(msgClose, keys.KeyLabel(kc.Keys.ExitPopup)),
		Desc:  l.sprintf(msgCloseDesc),
		Group: l.sprintf(GroupPopup),
	}
}

// OpenPullRequest is the global command that opens the pull request popup.
func (l *Labels) OpenPullRequest(kc keys.SharedKeyConfig) components.CommandText {
	return components.CommandText{
		Name:  l.sprintf(msgPullRequest, keys.KeyLabel(kc.Keys.OpenPullRequest)),
		Desc:  l.sprintf(msgPullRequestDesc),
		Group: l.sprintf(GroupGeneral),
	}
}

// Help is the global command that opens the help popup.
func (l *Labels) Help(kc keys.SharedKeyConfig) components.CommandText {
	return components.CommandText{
		Name:  l.sprintf(msgHelp, keys.KeyLabel(kc.Keys.OpenHelp)),
		Desc:  l.sprintf(msgHelpDesc),
		Group: l.sprintf(GroupGeneral),
	}
}

// Quit is the global quit command.
func (l *Labels) Quit(kc keys.SharedKeyConfig) components.CommandText {
	return components.CommandText{
		Name:  l.sprintf(msgQuit, keys.KeyLabel(kc.Keys.Quit)),
		Desc:  l.sprintf(msgQuitDesc),
		Group: l.sprintf(GroupGeneral),
	}
}

// Scroll is the navigation command of list components.
func (l *Labels) Scroll(kc keys.SharedKeyConfig) components.CommandText {
	return components.CommandText{
		Name:  l.sprintf(msgScroll, keys.KeyLabel(kc.Keys.MoveUp), keys.KeyLabel(kc.Keys.MoveDown)),
		Desc:  l.sprintf(msgScrollDesc),
		Group: l.sprintf(GroupNavigation),
	}
}

// PullRequestTitle is the title of the pull request popup.
func (l *Labels) PullRequestTitle() string {
	return l.sprintf(msgPRTitle)
}

// PullRequestBody is the fixed message of the pull request popup.
func (l *Labels) PullRequestBody(kc keys.SharedKeyConfig) []string {
	return []string{
		"",
		l.sprintf(msgPR1),
		l.sprintf(msgPR2),
		l.sprintf(msgPR3),
		l.sprintf(msgPR4),
		"",
		l.sprintf(msgPRClose, l.keyName(kc.Keys.ExitPopup)),
	}
}

// HelpTitle is the title of the help popup.
func (l *Labels) HelpTitle() string { return l.sprintf(msgHelpTitle) }

// ErrorTitle is the title of the message popup.
func (l *Labels) ErrorTitle() string { return l.sprintf(msgErrorTitle) }

// NoCommands is shown by the help popup when nothing is registered.
func (l *Labels) NoCommands() string { return l.sprintf(msgNoCommands) }

// Branch labels the current branch in the repository panel.
func (l *Labels) Branch() string { return l.sprintf(msgBranch) }

// Head labels the head commit.
func (l *Labels) Head() string { return l.sprintf(msgHead) }

// Changes labels the count of changed files.
func (l *Labels) Changes() string { return l.sprintf(msgChanges) }

// Remote labels the origin remote.
func (l *Labels) Remote() string { return l.sprintf(msgRemote) }

// Detached is shown instead of a branch name on a detached head.
func (l *Labels) Detached() string { return l.sprintf(msgDetached) }

// NoRemote is shown when there is no origin remote.
func (l *Labels) NoRemote() string { return l.sprintf(msgNoRemote) }

// Loading is shown before the repository summary arrives.
func (l *Labels) Loading() string { return l.sprintf(msgLoading) }

// Commits is the title of the repository panel.
func (l *Labels) Commits() string { return l.sprintf(msgCommits) }
