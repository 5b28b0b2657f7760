package module

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// ConfigSpec describes a module that only emits configuration for a tool
// that is already installed. The probe is a binary check; apply is one
// consent question gating one section. Binary and Binaries share one
// gating set, so the probe and the apply-time capability guard can never
// disagree.
type ConfigSpec struct {
	Name        string
	Description string
	Binary      string   // gating binary; empty means always applicable
	Binaries    []string // alternative gating binaries, any one suffices
	Question    string   // consent question; defaults to "Configure <name>?"
	Body        string
	BodyFunc    func(env *Env) string // overrides Body when set
	Then        ApplyFunc             // optional follow-up stage after the section
}

// gating returns the full set of binaries that can satisfy the spec.
func (spec ConfigSpec) gating() []string {
	if spec.Binary == "" {
		return spec.Binaries
	}
	return append([]string{spec.Binary}, spec.Binaries...)
}

// capable reports whether any gating binary resolves, or true when the
// spec gates on nothing.
func (spec ConfigSpec) capable(env *Env) bool {
	gating := spec.gating()
	if len(gating) == 0 {
		return true
	}
	for _, b := range gating {
		if env.Probe.Binary(b) {
			return true
		}
	}
	return false
}

// Config builds a config-only module from its spec.
func Config(spec ConfigSpec) Module {
	question := spec.Question
	if question == "" {
		question = fmt.Sprintf("Configure %s?", spec.Name)
	}

	return Module{
		Name:        spec.Name,
		Description: spec.Description,
		Probe: func(env *Env) bool {
			return spec.capable(env)
		},
		Apply: func(ctx context.Context, env *Env) error {
			if !spec.capable(env) {
				gating := spec.gating()
				if len(gating) == 1 {
					return fmt.Errorf("%s: %w: %q not on PATH", spec.Name, ErrCapabilityAbsent, gating[0])
				}
				return fmt.Errorf("%s: %w: none of %s on PATH", spec.Name, ErrCapabilityAbsent, strings.Join(gating, ", "))
			}

			ok, err := env.Ask.Confirm(question, true)
			if err != nil {
				return fmt.Errorf("%s: %w", spec.Name, err)
			}
			if !ok {
				env.Log.Skipf("%s: declined", spec.Name)
				return nil
			}

			body := spec.Body
			if spec.BodyFunc != nil {
				body = spec.BodyFunc(env)
			}
			added, err := env.Doc.AddSection(spec.Name, body)
			if err != nil {
				return fmt.Errorf("%s: %w", spec.Name, err)
			}
			if added {
				env.Log.Successf("%s configured", spec.Name)
			} else {
				env.Log.Skipf("%s: section already present", spec.Name)
			}

			if spec.Then != nil {
				return spec.Then(ctx, env)
			}
			return nil
		},
	}
}

// CloneSpec describes a module installed by cloning a repository into the
// oh-my-zsh custom tree. The probe is target-directory absence.
type CloneSpec struct {
	Name        string
	Description string
	RepoURL     string
	DirName     string // directory name under custom/plugins or custom/themes
	AsTheme     bool
	Question    string
	PluginToken string                                            // plugin to enable after cloning
	ThemeValue  string                                            // theme to activate after cloning
	Section     string                                            // optional extra section name
	BodyFunc    func(env *Env, dir string) string                 // body for Section
	PostClone   func(ctx context.Context, env *Env, dir string) error // optional content patch
}

// TargetDir resolves where the repository lands for the given environment.
func (spec CloneSpec) TargetDir(env *Env) string {
	kind := "plugins"
	if spec.AsTheme {
		kind = "themes"
	}
	return filepath.Join(env.Probe.ZshCustomDir(), kind, spec.DirName)
}

// Clone builds a git-clone module from its spec.
func Clone(spec CloneSpec) Module {
	question := spec.Question
	if question == "" {
		question = fmt.Sprintf("Install %s?", spec.Name)
	}

	return Module{
		Name:        spec.Name,
		Description: spec.Description,
		Probe: func(env *Env) bool {
			return !env.Probe.Dir(spec.TargetDir(env))
		},
		Apply: func(ctx context.Context, env *Env) error {
			dir := spec.TargetDir(env)

			if env.Probe.Dir(dir) {
				env.Log.Skipf("%s: already installed at %s", spec.Name, dir)
			} else {
				ok, err := env.Ask.Confirm(question, true)
				if err != nil {
					return fmt.Errorf("%s: %w", spec.Name, err)
				}
				if !ok {
					env.Log.Skipf("%s: declined", spec.Name)
					return nil
				}

				env.Log.Infof("%s: cloning %s", spec.Name, spec.RepoURL)
				if err := env.Clone(ctx, spec.RepoURL, dir); err != nil {
					return fmt.Errorf("%s: %w", spec.Name, err)
				}
				if spec.PostClone != nil {
					if err := spec.PostClone(ctx, env, dir); err != nil {
						return fmt.Errorf("%s: %w", spec.Name, err)
					}
				}
				env.Log.Successf("%s installed", spec.Name)
			}

			if spec.PluginToken != "" {
				changed, err := env.Shell.EnablePlugin(spec.PluginToken)
				if err != nil {
					return fmt.Errorf("%s: %w", spec.Name, err)
				}
				if changed {
					env.Log.Successf("%s: enabled plugin %q", spec.Name, spec.PluginToken)
				}
			}
			if spec.ThemeValue != "" {
				changed, err := env.Shell.SetTheme(spec.ThemeValue)
				if err != nil {
					return fmt.Errorf("%s: %w", spec.Name, err)
				}
				if changed {
					env.Log.Successf("%s: set theme %q", spec.Name, spec.ThemeValue)
				}
			}
			if spec.Section != "" && spec.BodyFunc != nil {
				added, err := env.Doc.AddSection(spec.Section, spec.BodyFunc(env, dir))
				if err != nil {
					return fmt.Errorf("%s: %w", spec.Name, err)
				}
				if added {
					env.Log.Successf("%s: section added", spec.Name)
				}
			}
			return nil
		},
	}
}
