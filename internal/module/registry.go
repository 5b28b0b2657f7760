package module

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Registry is an ordered, name-addressable collection of modules. It is
// built once at startup and read-only during dispatch.
type Registry struct {
	byKey map[string]Module // key is the lowercased name
}

// NewRegistry builds a registry from the given modules. It fails on the
// first duplicate name.
func NewRegistry(mods ...Module) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Module, len(mods))}
	for _, m := range mods {
		if err := r.Register(m); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a module. Names collide case-insensitively.
func (r *Registry) Register(m Module) error {
	if m.Name == "" {
		return fmt.Errorf("module name must not be empty")
	}
	key := strings.ToLower(m.Name)
	if existing, ok := r.byKey[key]; ok {
		return fmt.Errorf("%w: %q conflicts with %q", ErrDuplicateModule, m.Name, existing.Name)
	}
	r.byKey[key] = m
	return nil
}

// Resolve looks a module up by case-insensitive name.
func (r *Registry) Resolve(name string) (Module, error) {
	m, ok := r.byKey[strings.ToLower(name)]
	if !ok {
		return Module{}, fmt.Errorf("%w: %q", ErrModuleNotFound, name)
	}
	return m, nil
}

// All returns every module sorted by name. The order is stable and
// deterministic, which makes generated documents diff-stable across runs.
func (r *Registry) All() []Module {
	out := make([]Module, 0, len(r.byKey))
	for _, m := range r.byKey {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns all module names, sorted.
func (r *Registry) Names() []string {
	all := r.All()
	names := make([]string, len(all))
	for i, m := range all {
		names[i] = m.Name
	}
	return names
}

// Result records the outcome of one module during DispatchAll.
type Result struct {
	Module  string
	Skipped bool // probe false or profile-disabled; never presented
	Err     error
}

// DispatchAll applies every applicable module in sorted-name order.
// Modules whose probe fails are skipped without a prompt. A fault in one
// module is logged and does not abort the loop.
func (r *Registry) DispatchAll(ctx context.Context, env *Env) []Result {
	var results []Result
	for _, m := range r.All() {
		if env.Profile != nil && env.Profile.Disabled(m.Name) {
			env.Log.Debugf("%s: disabled by profile", m.Name)
			results = append(results, Result{Module: m.Name, Skipped: true})
			continue
		}
		if !m.Probe(env) {
			env.Log.Debugf("%s: capability absent, skipping", m.Name)
			results = append(results, Result{Module: m.Name, Skipped: true})
			continue
		}

		if err := m.Apply(ctx, env); err != nil {
			env.Log.Errorf("%s: %v", m.Name, err)
			results = append(results, Result{Module: m.Name, Err: err})
			continue
		}
		results = append(results, Result{Module: m.Name})
	}
	return results
}

// DispatchOne resolves a module by name and applies it unconditionally.
// The module itself surfaces a clear error when its capability is truly
// absent at apply time.
func (r *Registry) DispatchOne(ctx context.Context, env *Env, name string) error {
	m, err := r.Resolve(name)
	if err != nil {
		return err
	}
	return m.Apply(ctx, env)
}
