// Package paths provides centralized path handling for aiassisted.
// It implements XDG Base Directory specification compliance and
// knows the layout of an installed tree.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for aiassisted
	EnvConfigDir = "AIASSISTED_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for aiassisted
	EnvStateDir = "AIASSISTED_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Layout of the installed tree. These names are shared with the remote
// source and must not change.
const (
	// AppDirName is the directory name used under XDG locations
	AppDirName = "aiassisted"

	// InstallDirName is the installed tree directory inside a project
	InstallDirName = ".aiassisted"

	// VersionFileName is the version marker file
	VersionFileName = ".version"

	// ManifestFileName is the manifest file
	ManifestFileName = "FILES.txt"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "aiassisted.log"
)

// Paths provides centralized path management for aiassisted
type Paths interface {
	TargetDir() string
	InstallDir() string
	VersionFile() string
	ManifestFile() string
	InstalledPath(relPath string) string
	ConfigDir() string
	ConfigFile() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	// targetDir is the project directory that holds the installed tree
	targetDir string

	xdgConfig string
	xdgState  string
}

// New creates a new Paths instance for the given target directory.
// An empty target means the current working directory.
func New(targetDir string) (Paths, error) {
	if targetDir == "" {
		targetDir = "."
	}

	abs, err := NormalizePath(targetDir)
	if err != nil {
		return nil, err
	}

	return &paths{
		targetDir: abs,
		xdgConfig: ConfigDir(),
		xdgState:  StateDir(),
	}, nil
}

// ConfigDir returns the configuration directory, respecting AIASSISTED_CONFIG_DIR
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the state directory, respecting AIASSISTED_STATE_DIR and
// XDG_STATE_HOME
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	// xdg.StateHome is resolved once at init; read the variable directly so
	// late changes are honoured
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the default log file location
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ConfigFilePath returns the default user configuration file location
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// NormalizePath expands home, makes the path absolute and cleans it
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIO, "failed to get absolute path for %s", path)
	}
	return filepath.Clean(abs), nil
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	return expandHome(path)
}

func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}

func (p *paths) TargetDir() string {
	return p.targetDir
}

// InstallDir returns <target>/.aiassisted
func (p *paths) InstallDir() string {
	return filepath.Join(p.targetDir, InstallDirName)
}

func (p *paths) VersionFile() string {
	return filepath.Join(p.InstallDir(), VersionFileName)
}

func (p *paths) ManifestFile() string {
	return filepath.Join(p.InstallDir(), ManifestFileName)
}

// InstalledPath maps a manifest-relative POSIX path to its location inside
// the installed tree.
func (p *paths) InstalledPath(relPath string) string {
	return filepath.Join(p.InstallDir(), filepath.FromSlash(strings.TrimPrefix(relPath, "/")))
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) ConfigFile() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}
