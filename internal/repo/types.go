package repo

import "time"

// RemoteKind identifies the hosting service behind the origin remote.
type RemoteKind string

const (
	RemoteNone   RemoteKind = ""
	RemoteGitHub RemoteKind = "GitHub"
	RemoteGitLab RemoteKind = "GitLab"
	RemoteOther  RemoteKind = "other"
)

// Summary is the state of the working copy shown in the repository panel.
type Summary struct {
	Branch    string     // Short branch name, empty when detached or unborn
	Detached  bool       // HEAD points at a commit, not a branch
	Empty     bool       // No commits yet
	Head      string     // Abbreviated HEAD hash
	Subject   string     // First line of the HEAD commit message
	Changed   int        // Files with staged or unstaged changes
	RemoteURL string     // First URL of origin
	Remote    RemoteKind // Hosting service of origin
}

// Commit is one entry of the commit list.
type Commit struct {
	Hash    string
	Short   string
	Author  string
	When    time.Time
	Subject string
}
