// Package env holds the shared, read-only collaborators handed to every
// component at construction time.
package env

import (
	"github.com/chatter/gitmodal/internal/keys"
	"github.com/chatter/gitmodal/internal/labels"
	"github.com/chatter/gitmodal/internal/logger"
	"github.com/chatter/gitmodal/internal/ui/style"
)

// Environment is owned by the application and outlives every component.
// Components keep the pointers they need and never modify what they point to.
type Environment struct {
	Theme     style.SharedTheme
	KeyConfig keys.SharedKeyConfig
	Labels    *labels.Labels
	Log       *logger.Logger
}

// New bundles the collaborators. A nil log is replaced by a no-op logger.
func New(theme style.SharedTheme, kc keys.SharedKeyConfig, l *labels.Labels, log *logger.Logger) *Environment {
	if log == nil {
		log = logger.Nop()
	}
	return &Environment{
		Theme:     theme,
		KeyConfig: kc,
		Labels:    l,
		Log:       log,
	}
}

// Default returns an environment with default theme, keys and English labels.
func Default() *Environment {
	return New(style.Default(), keys.DefaultKeyConfig(), labels.Default(), nil)
}
