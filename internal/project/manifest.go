// Package project locates and parses zag.toml, the per-project
// configuration manifest. CLI flags override whatever the manifest
// sets; the manifest overrides the built-in defaults.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the upward search looks for.
const ManifestName = "zag.toml"

// DefaultMaxDiagnostics caps per-file diagnostics when neither the
// manifest nor the CLI sets a limit.
const DefaultMaxDiagnostics = 256

// ColorMode is the manifest/CLI color setting.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Valid reports whether m is one of the known modes.
func (m ColorMode) Valid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// PackageConfig is the [package] section.
type PackageConfig struct {
	Name string `toml:"name"`
}

// CheckConfig is the [check] section.
type CheckConfig struct {
	// MaxDiagnostics caps the diagnostics reported per file.
	MaxDiagnostics int `toml:"max_diagnostics"`
	// Color selects diagnostic coloring: auto, always or never.
	Color ColorMode `toml:"color"`
	// Include lists the paths checked when the CLI names none.
	// Relative paths resolve against the manifest directory.
	Include []string `toml:"include"`
}

// Config is the parsed manifest content.
type Config struct {
	Package PackageConfig `toml:"package"`
	Check   CheckConfig   `toml:"check"`
}

// Manifest is a loaded zag.toml together with where it was found.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// DefaultConfig returns the configuration used without a manifest.
func DefaultConfig() Config {
	return Config{
		Check: CheckConfig{
			MaxDiagnostics: DefaultMaxDiagnostics,
			Color:          ColorAuto,
		},
	}
}

// Find walks from startDir toward the filesystem root looking for
// zag.toml. It reports false when no manifest exists on the path.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadFile parses the manifest at path. Omitted settings keep their
// defaults; an unknown color mode is an error.
func LoadFile(path string) (*Manifest, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("check", "color") && !cfg.Check.Color.Valid() {
		return nil, fmt.Errorf("%s: invalid check.color %q (want auto, always or never)", path, cfg.Check.Color)
	}
	if meta.IsDefined("check", "max_diagnostics") && cfg.Check.MaxDiagnostics <= 0 {
		return nil, fmt.Errorf("%s: check.max_diagnostics must be positive", path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		Path:   abs,
		Root:   filepath.Dir(abs),
		Config: cfg,
	}, nil
}

// Load finds and parses the nearest manifest above startDir. A
// missing manifest is not an error: ok is false and the defaults
// apply.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	m, err := LoadFile(path)
	if err != nil {
		return nil, true, err
	}
	return m, true, nil
}

// IncludePaths resolves the manifest include list against its root.
func (m *Manifest) IncludePaths() []string {
	out := make([]string, 0, len(m.Config.Check.Include))
	for _, p := range m.Config.Check.Include {
		if !filepath.IsAbs(p) {
			p = filepath.Join(m.Root, p)
		}
		out = append(out, p)
	}
	return out
}
