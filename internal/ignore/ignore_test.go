package ignore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/chatter/gitmodal/internal/ignore"
)

// check is one Match query relative to the repository root.
type check struct {
	path    string
	isDir   bool
	ignored bool
}

func TestMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		files  map[string]string
		checks []check
	}{
		{
			name: "no rules",
			checks: []check{
				{"file.txt", false, false},
				{"src", true, false},
				{"src/main.go", false, false},
			},
		},
		{
			name:  "well-known directories",
			files: map[string]string{".gitignore": "!vendor/\n"},
			checks: []check{
				{".git", true, true},
				{"vendor", true, true},
				{"web/node_modules", true, true},
				{"py/__pycache__", true, true},
				{".idea", true, true},
				{"node_modules", false, false},
			},
		},
		{
			name:  "file and directory patterns",
			files: map[string]string{".gitignore": "*.log\nbuild/\n"},
			checks: []check{
				{"app.log", false, true},
				{"logs/app.log", false, true},
				{"main.go", false, false},
				{"build", true, true},
				{"build", false, false},
				{"build/out.o", false, true},
			},
		},
		{
			name: "nested gitignore",
			files: map[string]string{
				".gitignore":     "*.tmp\n",
				"sub/.gitignore": "*.dat\n",
			},
			checks: []check{
				{"a.tmp", false, true},
				{"sub/b.tmp", false, true},
				{"sub/c.dat", false, true},
				{"c.dat", false, false},
				{"other/c.dat", false, false},
			},
		},
		{
			name:  "negation",
			files: map[string]string{".gitignore": "*.log\n!keep.log\n"},
			checks: []check{
				{"debug.log", false, true},
				{"keep.log", false, false},
			},
		},
		{
			name:  "info exclude",
			files: map[string]string{".git/info/exclude": "*.swp\n"},
			checks: []check{
				{"main.go.swp", false, true},
				{"main.go", false, false},
			},
		},
		{
			name: "gitignore overrides info exclude",
			files: map[string]string{
				".git/info/exclude": "*.log\n",
				".gitignore":        "!keep.log\n",
			},
			checks: []check{
				{"debug.log", false, true},
				{"keep.log", false, false},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := t.TempDir()
			writeFiles(t, root, tt.files)
			m := ignore.NewMatcher(root)

			for _, c := range tt.checks {
				got := m.Match(filepath.Join(root, c.path), c.isDir)
				assert.Equal(t, c.ignored, got, "Match(%q, isDir=%v)", c.path, c.isDir)
			}
		})
	}
}

func TestMatch_RootNeverIgnored(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, map[string]string{".gitignore": "*\n"})

	m := ignore.NewMatcher(root)
	assert.False(t, m.Match(root, true))
	assert.True(t, m.Match(filepath.Join(root, "anything"), false))
}

func TestMatch_WellKnownAtAnyDepth(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	m := ignore.NewMatcher(root)

	rapid.Check(t, func(rt *rapid.T) {
		parents := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,8}`), 0, 4).Draw(rt, "parents")
		name := rapid.SampledFrom([]string{".git", ".hg", ".svn", "node_modules", "vendor", ".cache"}).Draw(rt, "name")

		path := filepath.Join(append(append([]string{root}, parents...), name)...)
		if !m.Match(path, true) {
			rt.Fatalf("%s should be ignored", path)
		}
	})
}

func TestInvalidate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	m := ignore.NewMatcher(root)
	target := filepath.Join(root, "out.tmp")

	require.False(t, m.Match(target, false))

	writeFiles(t, root, map[string]string{".gitignore": "*.tmp\n"})
	assert.False(t, m.Match(target, false), "cached rules stay until Invalidate")

	m.Invalidate()
	assert.True(t, m.Match(target, false))
}

func TestIsIgnoreFile(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"/repo/.gitignore":        true,
		"/repo/sub/.gitignore":    true,
		"/repo/.git/info/exclude": true,
		"/repo/exclude":           false,
		"/repo/gitignore.txt":     false,
		"/repo/.gitignore.bak":    false,
	}

	for path, want := range tests {
		assert.Equal(t, want, ignore.IsIgnoreFile(path), path)
	}
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}
