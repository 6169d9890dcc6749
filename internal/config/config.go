// Package config loads the optional user configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/colorprofile"
	"gopkg.in/yaml.v3"

	"github.com/chatter/gitmodal/internal/env"
	"github.com/chatter/gitmodal/internal/keys"
	"github.com/chatter/gitmodal/internal/labels"
	"github.com/chatter/gitmodal/internal/logger"
	"github.com/chatter/gitmodal/internal/ui/style"
)

const (
	appName  = "gitmodal"
	fileName = "config.yaml"
)

// ErrInvalidConfig is returned when the file parses but fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config mirrors config.yaml. Every field is optional.
type Config struct {
	LogLevel string              `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Language string              `yaml:"language"  validate:"omitempty,language"`
	Color    string              `yaml:"color"     validate:"omitempty,oneof=auto truecolor ansi256 ansi none"`
	Theme    ThemeConfig         `yaml:"theme"`
	Keys     map[string][]string `yaml:"keys"      validate:"omitempty,dive,keys,action,endkeys,min=1,dive,keyspec"`
}

// ThemeConfig overrides individual palette entries.
type ThemeConfig struct {
	Border        string `yaml:"border"         validate:"omitempty,color"`
	BorderFocused string `yaml:"border_focused" validate:"omitempty,color"`
	Title         string `yaml:"title"          validate:"omitempty,color"`
	TitleFocused  string `yaml:"title_focused"  validate:"omitempty,color"`
	CommandFG     string `yaml:"command_fg"     validate:"omitempty,color"`
	DisabledFG    string `yaml:"disabled_fg"    validate:"omitempty,color"`
	SelectedBG    string `yaml:"selected_bg"    validate:"omitempty,color"`
	Accent        string `yaml:"accent"         validate:"omitempty,color"`
}

// DefaultPath returns $XDG_CONFIG_HOME/gitmodal/config.yaml, falling back to
// ~/.config when the variable is unset.
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("finding home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}

	return filepath.Join(base, appName, fileName), nil
}

// Load reads the config at path. An empty path means DefaultPath, and a
// missing default file yields the defaults. A path given explicitly must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes and validates a config document. Unknown fields are errors.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Palette returns the default palette with the configured overrides applied.
func (c *Config) Palette() style.Palette {
	p := style.DefaultPalette()
	t := c.Theme

	override(&p.Border, t.Border)
	override(&p.BorderFocused, t.BorderFocused)
	override(&p.Title, t.Title)
	override(&p.TitleFocused, t.TitleFocused)
	override(&p.CommandFG, t.CommandFG)
	override(&p.DisabledFG, t.DisabledFG)
	override(&p.SelectedBG, t.SelectedBG)
	override(&p.Accent, t.Accent)

	return p
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

// KeyConfig returns the default bindings with the configured keys applied.
func (c *Config) KeyConfig() (*keys.KeyConfig, error) {
	kc := keys.DefaultKeyConfig()
	if err := kc.Apply(c.Keys); err != nil {
		return nil, err
	}

	return kc, nil
}

// ColorProfile maps the color setting to a profile. ok is false for "auto",
// in which case the terminal is detected.
func (c *Config) ColorProfile() (profile colorprofile.Profile, ok bool) {
	switch c.Color {
	case "truecolor":
		return colorprofile.TrueColor, true
	case "ansi256":
		return colorprofile.ANSI256, true
	case "ansi":
		return colorprofile.ANSI, true
	case "none":
		return colorprofile.Ascii, true
	default:
		return 0, false
	}
}

// Environment builds the shared component environment from the config.
func (c *Config) Environment(log *logger.Logger) (*env.Environment, error) {
	kc, err := c.KeyConfig()
	if err != nil {
		return nil, err
	}

	lang := c.Language
	if lang == "" {
		lang = "en"
	}

	l, err := labels.New(lang)
	if err != nil {
		return nil, err
	}

	return env.New(style.New(c.Palette()), kc, l, log), nil
}
