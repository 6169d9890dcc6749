package repo

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/chatter/gitmodal/internal/ignore"
	"github.com/chatter/gitmodal/internal/logger"
)

// ChangeKind says which part of the repository a change touched.
type ChangeKind int

const (
	// RefChange moves HEAD, a branch tip or the index.
	RefChange ChangeKind = iota
	// WorktreeChange edits a tracked or untracked file in the working copy.
	WorktreeChange
	// IgnoreChange edits a .gitignore or .git/info/exclude.
	IgnoreChange
)

func (k ChangeKind) String() string {
	switch k {
	case RefChange:
		return "ref"
	case WorktreeChange:
		return "worktree"
	case IgnoreChange:
		return "ignore"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change is one filtered file system event.
type Change struct {
	Path string
	Kind ChangeKind
}

// WatcherMsg tells the shell the repository changed and should be reloaded.
type WatcherMsg struct {
	Kind ChangeKind
}

// Watcher reports changes to the git directory and the working copy.
// Changes are coalesced: while one is pending, later ones are dropped.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan Change
	done    chan struct{}
	log     *logger.Logger
	ignore  *ignore.Matcher
	gitDir  string
}

// NewWatcher starts watching the repository rooted at root.
func NewWatcher(root string, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fs:      fw,
		changes: make(chan Change, 1),
		done:    make(chan struct{}),
		log:     log,
		ignore:  ignore.NewMatcher(root),
		gitDir:  filepath.Join(root, ".git"),
	}

	for _, dir := range w.gitDirs() {
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, fmt.Errorf("watching %s: %w", dir, err)
		}
	}

	dirs := w.addWorktree(root)
	log.Info("watcher started", "root", root, "worktree_dirs", dirs)

	go w.run()

	return w, nil
}

// gitDirs lists the directories inside .git whose files matter.
func (w *Watcher) gitDirs() []string {
	dirs := []string{w.gitDir, filepath.Join(w.gitDir, "refs", "heads")}
	if info := filepath.Join(w.gitDir, "info"); isDir(info) {
		dirs = append(dirs, info)
	}
	return dirs
}

// addWorktree watches every directory under root that is not ignored and
// returns how many were added.
func (w *Watcher) addWorktree(root string) int {
	count := 0
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if w.ignore.Match(path, true) {
			return filepath.SkipDir
		}
		if err := w.fs.Add(path); err != nil {
			w.log.Debug("cannot watch directory", "path", path, "err", err)
			return nil
		}
		count++
		return nil
	})
	return count
}

// Changes returns the channel of filtered changes. It is closed by Close.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)

	if err := w.fs.Close(); err != nil {
		return fmt.Errorf("closing fsnotify watcher: %w", err)
	}
	return nil
}

func (w *Watcher) run() {
	defer close(w.changes)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "err", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) && isDir(event.Name) && !w.ignore.Match(event.Name, true) {
		w.addWorktree(event.Name)
	}

	kind, ok := w.classify(event)
	if !ok {
		return
	}
	if kind == IgnoreChange {
		w.ignore.Invalidate()
	}

	select {
	case w.changes <- Change{Path: event.Name, Kind: kind}:
		w.log.Debug("change", "path", event.Name, "kind", kind, "op", event.Op.String())
	default:
	}
}

// classify decides whether event is worth a reload and what kind it is.
// git writes *.lock files before every ref or index update; the rename that
// follows is what counts.
func (w *Watcher) classify(event fsnotify.Event) (ChangeKind, bool) {
	if strings.HasSuffix(event.Name, ".lock") {
		return 0, false
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return 0, false
	}

	if ignore.IsIgnoreFile(event.Name) {
		return IgnoreChange, true
	}

	if rel, err := filepath.Rel(w.gitDir, event.Name); err == nil && !strings.HasPrefix(rel, "..") {
		if isRefChange(rel) {
			return RefChange, true
		}
		return 0, false
	}

	if w.ignore.Match(event.Name, false) {
		return 0, false
	}
	return WorktreeChange, true
}

// isRefChange reports whether a path relative to .git moves HEAD, a branch
// tip or the index. Objects, logs and config are noise.
func isRefChange(rel string) bool {
	rel = filepath.ToSlash(rel)
	return rel == "HEAD" || rel == "index" || strings.HasPrefix(rel, "refs/heads/")
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
