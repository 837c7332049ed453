package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// yes.toml lets a project pin its custom literal pairs once instead of
// repeating -l flags on every invocation:
//
//	[parse]
//	literals = ["[]", "{}"]
type manifestConfig struct {
	Parse parseConfig `toml:"parse"`
}

type parseConfig struct {
	Literals []string `toml:"literals"`
}

// findYesToml walks upward from startDir looking for a yes.toml.
func findYesToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "yes.toml")
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

// manifestLiterals returns the literal pairs declared by the nearest
// yes.toml, or nothing when no manifest exists.
func manifestLiterals(startDir string) ([]string, error) {
	path, ok, err := findYesToml(startDir)
	if err != nil || !ok {
		return nil, err
	}

	var cfg manifestConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("parse") {
		return nil, nil
	}
	return cfg.Parse.Literals, nil
}
