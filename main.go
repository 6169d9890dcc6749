package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chatter/gitmodal/internal/app"
	"github.com/chatter/gitmodal/internal/config"
	"github.com/chatter/gitmodal/internal/logger"
	"github.com/chatter/gitmodal/internal/repo"
)

// errNotTerminal is returned when stdout cannot host the interface.
var errNotTerminal = errors.New("stdout is not a terminal")

// version is set from build info or falls back to "dev"
var version = "dev"

func init() {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
}

type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gitmodal [path]",
		Short:         "gitmodal is a terminal UI for a git working copy",
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			return run(flags, path)
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gitmodal/config.yaml)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log to the state directory at this level: debug, info, warn or error")

	return cmd
}

func run(flags *rootFlags, path string) error {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if flags.logLevel != "" {
		level = flags.logLevel
	}

	log, err := logger.New(level)
	if err != nil {
		return err
	}
	defer log.Close()

	log = log.With("session", uuid.NewString())
	log.Info("starting", "version", version, "path", path)

	r, err := repo.Open(path, log)
	if err != nil {
		return err
	}

	e, err := cfg.Environment(log)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	var opts []tea.ProgramOption
	if profile, ok := cfg.ColorProfile(); ok {
		opts = append(opts, tea.WithColorProfile(profile))
	}

	p := tea.NewProgram(app.New(e, r, version), opts...)
	if _, err := p.Run(); err != nil {
		log.Error("program exited", "err", err)
		return err
	}

	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
