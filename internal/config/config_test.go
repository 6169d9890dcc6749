package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/charmbracelet/colorprofile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/chatter/gitmodal/internal/keys"
	"github.com/chatter/gitmodal/internal/logger"
	"github.com/chatter/gitmodal/internal/ui/style"
)

const fullConfig = `
log_level: debug
language: de
color: ansi256
theme:
  border: "#444444"
  title_focused: "33"
keys:
  exit_popup: [esc, x]
  quit: [ctrl+q]
`

func TestParse_FullConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(fullConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "de", cfg.Language)
	assert.Equal(t, "ansi256", cfg.Color)
	assert.Equal(t, []string{"esc", "x"}, cfg.Keys["exit_popup"])

	p := cfg.Palette()
	def := style.DefaultPalette()
	assert.Equal(t, "#444444", p.Border)
	assert.Equal(t, "33", p.TitleFocused)
	assert.Equal(t, def.Title, p.Title, "unset entries keep their default")
}

func TestParse_EmptyDocument(t *testing.T) {
	t.Parallel()

	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, style.DefaultPalette(), cfg.Palette())

	_, ok := cfg.ColorProfile()
	assert.False(t, ok, "empty color means auto detection")
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		doc  string
		want string
	}{
		"bad log level":   {doc: "log_level: trace", want: "LogLevel"},
		"bad language":    {doc: "language: fr", want: "unsupported language"},
		"bad color mode":  {doc: "color: rainbow", want: "Color"},
		"bad theme color": {doc: "theme:\n  border: purple", want: "not a color"},
		"color too large": {doc: "theme:\n  accent: \"256\"", want: "not a color"},
		"unknown action":  {doc: "keys:\n  launch: [l]", want: "unknown action"},
		"empty key list":  {doc: "keys:\n  quit: []", want: "at least one key"},
		"bad key":         {doc: "keys:\n  quit: [\"ctrl+ q\"]", want: "not a key"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("colour: auto"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig, "typos are parse errors, not validation errors")
}

func TestLoad_MissingDefaultFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoad_ReadsDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "gitmodal", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("color: none\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	profile, ok := cfg.ColorProfile()
	assert.True(t, ok)
	assert.Equal(t, colorprofile.Ascii, profile)
}

func TestLoad_ExplicitPathMustExist(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_ReportsPathOnInvalidFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o644))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}

func TestParse_SuggestsAction(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("keys:\n  exit_pupop: [x]"))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), `did you mean "exit_popup"?`)
}

func TestClosestAction(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "quit", closestAction("quti"))
	assert.Equal(t, "move_down", closestAction("move_dwn"))
	assert.Empty(t, closestAction("launch_rockets"))
}

func TestColorProfile(t *testing.T) {
	t.Parallel()

	tests := map[string]colorprofile.Profile{
		"truecolor": colorprofile.TrueColor,
		"ansi256":   colorprofile.ANSI256,
		"ansi":      colorprofile.ANSI,
		"none":      colorprofile.Ascii,
	}

	for mode, want := range tests {
		got, ok := (&Config{Color: mode}).ColorProfile()
		assert.True(t, ok, mode)
		assert.Equal(t, want, got, mode)
	}

	_, ok := (&Config{Color: "auto"}).ColorProfile()
	assert.False(t, ok)
}

func TestEnvironment_AppliesKeysAndLanguage(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(fullConfig))
	require.NoError(t, err)

	e, err := cfg.Environment(logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "de", e.Labels.Language())
	assert.Equal(t, []string{"ctrl+q"}, e.KeyConfig.Keys.Quit.Keys())
	assert.Equal(t, keys.DefaultKeyConfig().Keys.OpenHelp.Keys(), e.KeyConfig.Keys.OpenHelp.Keys())
}

func TestIsColor_PaletteIndices(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(-50, 400).Draw(t, "n")
		want := n >= 0 && n <= 255
		if got := isColor(strconv.Itoa(n)); got != want {
			t.Fatalf("isColor(%d) = %v, want %v", n, got, want)
		}
	})
}

func TestIsColor_Hex(t *testing.T) {
	t.Parallel()

	for _, c := range []string{"#fff", "#7D56F4", "#000000"} {
		assert.True(t, isColor(c), c)
	}
	for _, c := range []string{"fff", "#ffff", "#ggg", "", "#1234567"} {
		assert.False(t, isColor(c), c)
	}
}
