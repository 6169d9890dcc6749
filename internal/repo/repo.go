// Package repo reads the state of a git working copy with go-git and watches
// it for changes.
package repo

import (
	"errors"
	"fmt"
	"io"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/chatter/gitmodal/internal/logger"
)

// ErrNotRepository is returned when no git repository contains the path.
var ErrNotRepository = errors.New("not a git repository")

// shortHashLen is the number of hex digits shown for abbreviated hashes.
const shortHashLen = 7

// Repo is an opened working copy.
type Repo struct {
	repo *git.Repository
	root string
	log  *logger.Logger
}

// Open finds the repository containing path, searching parent directories.
func Open(path string, log *logger.Logger) (*Repo, error) {
	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
	}
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}

	wt, err := r.Worktree()
	if err != nil {
		return nil, fmt.Errorf("opening worktree: %w", err)
	}

	root := wt.Filesystem.Root()
	log.Debug("repository opened", "root", root)

	return &Repo{repo: r, root: root, log: log}, nil
}

// Root returns the top directory of the working copy.
func (r *Repo) Root() string {
	return r.root
}

// Summary reads branch, head, worktree status and origin.
func (r *Repo) Summary() (Summary, error) {
	var s Summary

	head, err := r.repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		s.Empty = true
	case err != nil:
		return Summary{}, fmt.Errorf("reading HEAD: %w", err)
	default:
		if head.Name().IsBranch() {
			s.Branch = head.Name().Short()
		} else {
			s.Detached = true
		}
		s.Head = shortHash(head.Hash())

		commit, err := r.repo.CommitObject(head.Hash())
		if err != nil {
			return Summary{}, fmt.Errorf("reading HEAD commit: %w", err)
		}
		s.Subject = firstLine(commit.Message)
	}

	if s.Empty {
		// An unborn branch still has a name in HEAD.
		if ref, err := r.repo.Storer.Reference(plumbing.HEAD); err == nil && ref.Target().IsBranch() {
			s.Branch = ref.Target().Short()
		}
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return Summary{}, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return Summary{}, fmt.Errorf("reading worktree status: %w", err)
	}
	for _, fs := range status {
		if fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified {
			s.Changed++
		}
	}

	if remote, err := r.repo.Remote(git.DefaultRemoteName); err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			s.RemoteURL = urls[0]
			s.Remote = ClassifyRemote(urls[0])
		}
	} else if !errors.Is(err, git.ErrRemoteNotFound) {
		return Summary{}, fmt.Errorf("reading origin: %w", err)
	}

	r.log.Debug("summary loaded", "branch", s.Branch, "head", s.Head, "changed", s.Changed)

	return s, nil
}

// RecentCommits returns up to n commits reachable from HEAD, newest first.
// An empty repository has no commits and is not an error.
func (r *Repo) RecentCommits(n int) ([]Commit, error) {
	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading HEAD: %w", err)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	commits := make([]Commit, 0, n)
	for len(commits) < n {
		c, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("walking log: %w", err)
		}
		commits = append(commits, Commit{
			Hash:    c.Hash.String(),
			Short:   shortHash(c.Hash),
			Author:  c.Author.Name,
			When:    c.Author.When,
			Subject: firstLine(c.Message),
		})
	}

	return commits, nil
}

// ClassifyRemote names the hosting service of a remote URL.
func ClassifyRemote(url string) RemoteKind {
	if strings.TrimSpace(url) == "" {
		return RemoteNone
	}

	ep, err := transport.NewEndpoint(url)
	if err != nil {
		return RemoteOther
	}

	host := strings.ToLower(ep.Host)
	switch {
	case strings.Contains(host, "github"):
		return RemoteGitHub
	case strings.Contains(host, "gitlab"):
		return RemoteGitLab
	default:
		return RemoteOther
	}
}

func shortHash(h plumbing.Hash) string {
	return h.String()[:shortHashLen]
}

func firstLine(msg string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(msg), "\n")
	return strings.TrimSpace(line)
}
