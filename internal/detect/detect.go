// Package detect probes the local machine for the binaries and
// directories that gate module installation.
//
// Probes are re-evaluated on every call; there is no caching. A failed
// probe is a signal, not an error.
package detect

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Detector answers capability probes against the current environment.
type Detector struct{}

// New returns a Detector.
func New() *Detector { return &Detector{} }

// Binary reports whether name resolves on the current search path.
func (d *Detector) Binary(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// BinaryPath returns the resolved path of a binary, if present.
func (d *Detector) BinaryPath(name string) (string, bool) {
	p, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return p, true
}

// Dir reports whether path exists and is a directory.
func (d *Detector) Dir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Version runs a binary with its version arguments and returns the first
// output line, or an empty string if the version cannot be determined.
func (d *Detector) Version(ctx context.Context, name string, args ...string) string {
	path, ok := d.BinaryPath(name)
	if !ok {
		return ""
	}
	if len(args) == 0 {
		args = []string{"--version"}
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
	if err != nil && len(out) == 0 {
		return ""
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line
}

// ZshIsDefault reports whether the login shell is zsh.
func (d *Detector) ZshIsDefault() bool {
	return strings.HasSuffix(os.Getenv("SHELL"), "zsh")
}

// OhMyZshDir returns the oh-my-zsh installation directory, if present.
// It checks ~/.oh-my-zsh first, then the ZSH environment variable.
func (d *Detector) OhMyZshDir() (string, bool) {
	if home, err := os.UserHomeDir(); err == nil {
		omz := filepath.Join(home, ".oh-my-zsh")
		if d.Dir(omz) {
			return omz, true
		}
	}
	if zsh := os.Getenv("ZSH"); zsh != "" && d.Dir(zsh) {
		return zsh, true
	}
	return "", false
}

// ZshCustomDir returns the oh-my-zsh custom directory, honoring ZSH_CUSTOM.
func (d *Detector) ZshCustomDir() string {
	if custom := os.Getenv("ZSH_CUSTOM"); custom != "" {
		return custom
	}
	if omz, ok := d.OhMyZshDir(); ok {
		return filepath.Join(omz, "custom")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".oh-my-zsh", "custom")
}
