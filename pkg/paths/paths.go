// Package paths provides centralized path handling for spotlight-manager.
// It resolves the rule document location and the XDG state directory once,
// at process start, so that no other package reads the environment.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/spotlight-manager/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigFile overrides the rule document location
	EnvConfigFile = "SPOTLIGHT_MANAGER_CONFIG"

	// EnvStateDir overrides the XDG state directory for spotlight-manager
	EnvStateDir = "SPOTLIGHT_MANAGER_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under XDG base directories
	AppDirName = "spotlight-manager"

	// LegacyConfigFile is the dotfile used by earlier releases, relative to $HOME
	LegacyConfigFile = ".spotlight-manager.yaml"

	// ConfigFileName is the rule document name under the XDG config directory
	ConfigFileName = "config.yaml"

	// LogFileName is the name of the log file
	LogFileName = "spotlight-manager.log"

	// StoreLockName guards writes to the Spotlight plist
	StoreLockName = "store.lock"

	// RegistryLockName guards rewrites of the rule document
	RegistryLockName = "registry.lock"

	// DefaultStorePath is where macOS 11+ keeps the Spotlight volume configuration
	DefaultStorePath = "/System/Volumes/Data/.Spotlight-V100/VolumeConfiguration.plist"
)

// Paths holds every location the tool reads or writes, resolved once
type Paths struct {
	home         string
	configFile   string
	stateDir     string
	usedLegacy   bool
	fromOverride bool
}

// New resolves locations. configOverride (usually the --config flag) wins
// over SPOTLIGHT_MANAGER_CONFIG, which wins over the legacy ~/.spotlight-manager.yaml
// (when it exists), which wins over $XDG_CONFIG_HOME/spotlight-manager/config.yaml.
func New(configOverride string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv(EnvHome)
	}
	if home == "" {
		return nil, errors.New(errors.ErrConfigLoad, "cannot determine home directory").
			WithHint("set $HOME")
	}

	p := &Paths{home: home}

	switch {
	case configOverride != "":
		p.configFile = p.ExpandHome(configOverride)
		p.fromOverride = true
	case os.Getenv(EnvConfigFile) != "":
		p.configFile = p.ExpandHome(os.Getenv(EnvConfigFile))
		p.fromOverride = true
	default:
		legacy := filepath.Join(home, LegacyConfigFile)
		if _, err := os.Stat(legacy); err == nil {
			p.configFile = legacy
			p.usedLegacy = true
		} else {
			p.configFile = filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
		}
	}

	absConfig, err := filepath.Abs(p.configFile)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to get absolute path for %s", p.configFile)
	}
	p.configFile = absConfig

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.stateDir = p.ExpandHome(stateDir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, AppDirName)
	}

	return p, nil
}

// NewFixed builds Paths from explicit locations without consulting the environment
func NewFixed(home, configFile, stateDir string) *Paths {
	return &Paths{home: home, configFile: configFile, stateDir: stateDir, fromOverride: true}
}

// Home returns the user's home directory
func (p *Paths) Home() string { return p.home }

// ConfigFile returns the rule document path
func (p *Paths) ConfigFile() string { return p.configFile }

// UsedLegacyConfig reports whether the pre-XDG dotfile was picked up
func (p *Paths) UsedLegacyConfig() bool { return p.usedLegacy }

// StateDir returns the directory for logs and lock files
func (p *Paths) StateDir() string { return p.stateDir }

// LogFilePath returns the path of the append-only log file
func (p *Paths) LogFilePath() string { return filepath.Join(p.stateDir, LogFileName) }

// StoreLockPath returns the advisory lock guarding plist writes
func (p *Paths) StoreLockPath() string { return filepath.Join(p.stateDir, StoreLockName) }

// RegistryLockPath returns the advisory lock guarding rule document rewrites
func (p *Paths) RegistryLockPath() string { return filepath.Join(p.stateDir, RegistryLockName) }

// ExpandHome replaces a leading "~" or "~/" with the home directory.
// "~user" forms are returned unchanged.
func (p *Paths) ExpandHome(path string) string {
	if path == "~" {
		return p.home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(p.home, path[2:])
	}
	return path
}

// ResolveDir turns a user-supplied search directory into an absolute path.
// An empty arg means cwd. Absolute input is returned as typed so that rule
// normalization, not filepath.Clean, decides its final form.
func (p *Paths) ResolveDir(arg, cwd string) (string, error) {
	if arg == "" {
		arg = cwd
	}
	if arg == "" {
		return "", errors.New(errors.ErrInvalidInput, "no search directory given and working directory unknown")
	}

	expanded := p.ExpandHome(arg)
	if filepath.IsAbs(expanded) {
		return expanded, nil
	}
	if cwd == "" {
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", arg)
		}
		return abs, nil
	}
	return filepath.Join(cwd, expanded), nil
}
