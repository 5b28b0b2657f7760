package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shellforge-dev/shellforge/internal/branding"
)

// Directory and file name constants for the home-directory layout.
const (
	ConfigFileName = "config.zsh"
	BackupsDir     = "backups"
	CacheDir       = "cache"
	PluginsDir     = "plugins"
	ProfilesDir    = "profiles"

	DefaultProfileFile = "default.yaml"
	ActiveProfileLink  = "active"
)

// Permission constants.
const (
	DirPermSecure  os.FileMode = 0700
	FilePermSecure os.FileMode = 0600
	DirPermNormal  os.FileMode = 0755
)

// Root returns the tool's home directory. It checks the SHELLFORGE_HOME
// environment variable first, then falls back to ~/.shellforge.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// ConfigFile returns the path to the generated zsh configuration artifact.
func ConfigFile() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ConfigFileName), nil
}

// Backups returns the path to the backup directory.
func Backups() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, BackupsDir), nil
}

// Cache returns the path to the download cache directory.
func Cache() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, CacheDir), nil
}

// Profiles returns the path to the profiles directory.
func Profiles() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, ProfilesDir), nil
}

// ActiveProfile returns the path of the active profile symlink.
func ActiveProfile() (string, error) {
	profiles, err := Profiles()
	if err != nil {
		return "", err
	}
	return filepath.Join(profiles, ActiveProfileLink), nil
}

// Zshrc returns the path to the user's interactive-shell startup file.
// It checks the SHELLFORGE_ZSHRC environment variable first so tests and
// sandboxed runs can redirect it.
func Zshrc() (string, error) {
	if v := os.Getenv(branding.EnvVar("ZSHRC")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".zshrc"), nil
}
