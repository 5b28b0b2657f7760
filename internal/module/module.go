// Package module defines the unit of optional shell configuration and
// the registry that dispatches it.
//
// A Module pairs a capability probe with an install action. Everything a
// module touches (the generated document, the startup-file patcher, the
// prober, the consent gate) arrives through an explicitly constructed
// Env, so there is no hidden process-wide state and tests can substitute
// any collaborator.
package module

import (
	"context"
	"errors"

	"github.com/shellforge-dev/shellforge/internal/gitclone"
	"github.com/shellforge-dev/shellforge/internal/logging"
	"github.com/shellforge-dev/shellforge/internal/profile"
	"github.com/shellforge-dev/shellforge/internal/prompt"
	"github.com/shellforge-dev/shellforge/internal/shellcfg"
	"github.com/shellforge-dev/shellforge/internal/zshrc"
)

// Sentinel errors for registry and dispatch failures.
var (
	// ErrDuplicateModule reports a case-insensitive name collision at
	// registration time.
	ErrDuplicateModule = errors.New("module already registered")

	// ErrModuleNotFound reports a failed registry lookup.
	ErrModuleNotFound = errors.New("module not found")

	// ErrCapabilityAbsent reports that an explicitly dispatched module's
	// capability is missing at apply time.
	ErrCapabilityAbsent = errors.New("capability not available")
)

// ProbeFunc decides whether a module applies in the current environment.
type ProbeFunc func(env *Env) bool

// ApplyFunc performs a module's consent-gated installation.
type ApplyFunc func(ctx context.Context, env *Env) error

// Module is one name-addressable unit of optional shell configuration.
type Module struct {
	Name        string
	Description string
	Probe       ProbeFunc
	Apply       ApplyFunc
}

// Prober answers the capability checks modules need.
type Prober interface {
	// Binary reports whether a binary resolves on the search path.
	Binary(name string) bool
	// Dir reports whether a path exists and is a directory.
	Dir(path string) bool
	// ZshCustomDir returns the oh-my-zsh custom directory.
	ZshCustomDir() string
}

// Env carries every collaborator a module may use during apply. It is
// built once per command and shared by all modules of that run; module
// execution is strictly sequential, so nothing here is synchronized.
type Env struct {
	Doc     *shellcfg.Document
	Shell   *zshrc.Patcher
	Probe   Prober
	Ask     prompt.Asker
	Log     *logging.Logger
	Clone   gitclone.Func
	Profile *profile.Profile
}

// Setting returns a per-module profile setting with a default.
func (e *Env) Setting(module, key string, def bool) bool {
	if e.Profile == nil {
		return def
	}
	return e.Profile.Setting(module, key, def)
}
