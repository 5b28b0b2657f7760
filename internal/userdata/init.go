package userdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shellforge-dev/shellforge/internal/platform"
)

// Default content for profiles/default.yaml.
const defaultProfileContent = `name: default
# theme: powerlevel10k/powerlevel10k
modules: {}
# modules:
#   podman:
#     settings:
#       docker_alias: false
`

// Init creates the home directory structure with proper permissions.
// It prints progress messages to w. Existing items are skipped with a message.
func Init(w io.Writer) error {
	root, err := Root()
	if err != nil {
		return err
	}

	if err := ensureDir(w, root, DirPermNormal); err != nil {
		return err
	}

	for _, sub := range []string{BackupsDir, CacheDir, PluginsDir} {
		if err := ensureDir(w, filepath.Join(root, sub), DirPermNormal); err != nil {
			return err
		}
	}

	// Profiles carry user settings, keep them private.
	profilesDir := filepath.Join(root, ProfilesDir)
	if err := ensureDir(w, profilesDir, DirPermSecure); err != nil {
		return err
	}

	defaultProfile := filepath.Join(profilesDir, DefaultProfileFile)
	if err := ensureFile(w, defaultProfile, defaultProfileContent, FilePermSecure); err != nil {
		return err
	}

	// Create active symlink -> default.yaml (relative).
	activePath := filepath.Join(profilesDir, ActiveProfileLink)
	return ensureSymlink(w, activePath, DefaultProfileFile)
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string, perm os.FileMode) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureSymlink creates a symlink if it doesn't exist.
func ensureSymlink(w io.Writer, linkPath, target string) error {
	if _, err := os.Lstat(linkPath); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", linkPath)
		return nil
	}

	if err := platform.CreateSymlink(target, linkPath); err != nil {
		return fmt.Errorf("creating symlink %s -> %s: %w", linkPath, target, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s -> %s\n", linkPath, target)
	return nil
}
