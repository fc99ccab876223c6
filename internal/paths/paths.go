// Package paths resolves the configuration directory and the fixture file
// the catindex command works on.
package paths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// Application directory name under the platform config root.
const appDirName = "catindex"

// Environment variable names for overrides.
const (
	EnvConfigDir = "CATINDEX_CONFIG_DIR"
	EnvFixture   = "CATINDEX_FIXTURE"
)

// ErrNoFixture is returned when no fixture path is given by flag, config,
// or environment.
var ErrNoFixture = errors.New("no fixture file given (use --file, config fixture, or " + EnvFixture + ")")

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/catindex (fallback ~/.config/catindex)
// macOS:   ~/Library/Application Support/catindex
// Windows: %APPDATA%/catindex
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > CATINDEX_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveFixture returns the fixture path following the precedence chain:
// flag > config.yaml fixture > CATINDEX_FIXTURE env. Returns ErrNoFixture
// when none is set.
func ResolveFixture(flag, configYAMLValue string) (string, error) {
	for _, p := range []string{flag, configYAMLValue, os.Getenv(EnvFixture)} {
		if p != "" {
			return filepath.Abs(p)
		}
	}
	return "", ErrNoFixture
}
