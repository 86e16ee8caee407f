package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"zag/internal/project"
)

// settings merges the project manifest with the persistent flags.
// Flags win over the manifest; the manifest wins over the defaults.
type settings struct {
	manifest       *project.Manifest
	maxDiagnostics int
	color          project.ColorMode
	quiet          bool
}

func resolveSettings(cmd *cobra.Command) (*settings, error) {
	cfg := project.DefaultConfig()
	manifest, ok, err := project.Load(".")
	if err != nil {
		return nil, err
	}
	if ok {
		cfg = manifest.Config
	}

	s := &settings{
		manifest:       manifest,
		maxDiagnostics: cfg.Check.MaxDiagnostics,
		color:          cfg.Check.Color,
	}

	flags := cmd.Root().PersistentFlags()
	if v, err := flags.GetInt("max-diagnostics"); err != nil {
		return nil, err
	} else if v > 0 {
		s.maxDiagnostics = v
	}
	if v, err := flags.GetString("color"); err != nil {
		return nil, err
	} else if v != "" {
		mode := project.ColorMode(v)
		if !mode.Valid() {
			return nil, fmt.Errorf("invalid --color %q (want auto, always or never)", v)
		}
		s.color = mode
	}
	if v, err := flags.GetBool("quiet"); err != nil {
		return nil, err
	} else {
		s.quiet = v
	}

	// The color package keys off TTY detection on its own; a forced
	// mode must override that.
	switch s.color {
	case project.ColorAlways:
		color.NoColor = false
	case project.ColorNever:
		color.NoColor = true
	}
	return s, nil
}

// useColor resolves the color mode against whether f is a terminal.
func (s *settings) useColor(f *os.File) bool {
	switch s.color {
	case project.ColorAlways:
		return true
	case project.ColorNever:
		return false
	}
	return isTerminal(f)
}
