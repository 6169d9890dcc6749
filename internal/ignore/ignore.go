// Package ignore decides which paths of a working copy the watcher skips.
//
// Rules come from git itself: the repository's .git/info/exclude file and
// every .gitignore from the root down to a path's directory, parsed with
// go-git's gitignore implementation. A small set of well-known directory
// names is skipped without consulting any rules.
package ignore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// wellKnownDirs are never worth watching, whatever the ignore files say.
var wellKnownDirs = map[string]bool{
	".git":          true,
	".hg":           true,
	".svn":          true,
	"node_modules":  true,
	"vendor":        true,
	"__pycache__":   true,
	".pytest_cache": true,
	".cache":        true,
	".idea":         true,
	".vscode":       true,
}

// Matcher checks paths against the ignore rules of one repository.
// It is safe for concurrent use; the watcher goroutine and the walker share it.
type Matcher struct {
	rootPath string

	mu       sync.Mutex
	exclude  []gitignore.Pattern            // .git/info/exclude, loaded lazily
	loaded   bool                           // exclude has been read
	perDir   map[string][]gitignore.Pattern // dir -> patterns of its .gitignore
	combined map[string]gitignore.Matcher   // dir -> all patterns root..dir
}

// NewMatcher creates a Matcher for the working copy rooted at rootPath.
func NewMatcher(rootPath string) *Matcher {
	return &Matcher{
		rootPath: rootPath,
		perDir:   make(map[string][]gitignore.Pattern),
		combined: make(map[string]gitignore.Matcher),
	}
}

// Match reports whether the given absolute path should be ignored.
// isDir must be true when path refers to a directory so that directory-only
// patterns (e.g. "backup/") are applied correctly.
func (m *Matcher) Match(path string, isDir bool) bool {
	if isDir && wellKnownDirs[filepath.Base(path)] {
		return true
	}

	if path == m.rootPath {
		return false
	}

	relPath, err := filepath.Rel(m.rootPath, path)
	if err != nil {
		relPath = path
	}

	parts := splitPath(relPath)
	if len(parts) == 0 {
		return false
	}

	return m.matcherFor(filepath.Dir(path)).Match(parts, isDir)
}

// Invalidate drops cached rules. Call it after an ignore file changes.
func (m *Matcher) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.exclude = nil
	m.loaded = false
	clear(m.perDir)
	clear(m.combined)
}

// IsIgnoreFile reports whether path is a file that defines ignore rules.
func IsIgnoreFile(path string) bool {
	slashed := filepath.ToSlash(path)
	return filepath.Base(path) == ".gitignore" || strings.HasSuffix(slashed, ".git/info/exclude")
}

// matcherFor returns the combined matcher for files inside dir.
func (m *Matcher) matcherFor(dir string) gitignore.Matcher {
	m.mu.Lock()
	defer m.mu.Unlock()

	if matcher, ok := m.combined[dir]; ok {
		return matcher
	}

	if !m.loaded {
		m.exclude = readPatterns(filepath.Join(m.rootPath, ".git", "info", "exclude"), nil)
		m.loaded = true
	}

	// Later patterns take precedence, so the exclude file goes first and
	// deeper .gitignore files come last.
	all := append([]gitignore.Pattern(nil), m.exclude...)

	current := m.rootPath
	all = append(all, m.dirPatterns(current)...)

	rel, _ := filepath.Rel(m.rootPath, dir)
	for _, part := range splitPath(rel) {
		current = filepath.Join(current, part)
		all = append(all, m.dirPatterns(current)...)
	}

	matcher := gitignore.NewMatcher(all)
	m.combined[dir] = matcher

	return matcher
}

// dirPatterns returns the cached patterns of dir's .gitignore. m.mu must be held.
func (m *Matcher) dirPatterns(dir string) []gitignore.Pattern {
	if patterns, ok := m.perDir[dir]; ok {
		return patterns
	}

	var domain []string
	if rel, err := filepath.Rel(m.rootPath, dir); err == nil {
		domain = splitPath(rel)
	}

	patterns := readPatterns(filepath.Join(dir, ".gitignore"), domain)
	m.perDir[dir] = patterns

	return patterns
}

// readPatterns parses an ignore file. A missing file has no patterns.
func readPatterns(path string, domain []string) []gitignore.Pattern {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var patterns []gitignore.Pattern
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}

	return patterns
}

// splitPath splits a relative path into its components.
func splitPath(path string) []string {
	path = filepath.ToSlash(path)
	if path == "" || path == "." {
		return nil
	}

	return strings.Split(path, "/")
}
