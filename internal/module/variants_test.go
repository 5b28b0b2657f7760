package module

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// denyAll answers no to every question.
type denyAll struct{}

func (denyAll) Confirm(string, bool) (bool, error) { return false, nil }

func TestConfig_WritesSectionOnConsent(t *testing.T) {
	env := newTestEnv(t, &fakeProber{binaries: map[string]bool{"aws": true}})

	m := Config(ConfigSpec{
		Name:        "AWS",
		Description: "AWS completion",
		Binary:      "aws",
		Body:        "complete -C aws_completer aws",
	})

	if !m.Probe(env) {
		t.Fatal("probe should pass when the binary is present")
	}
	if err := m.Apply(context.Background(), env); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	has, err := env.Doc.HasSection("AWS")
	if err != nil {
		t.Fatalf("HasSection failed: %v", err)
	}
	if !has {
		t.Error("section should exist after consented apply")
	}

	// Re-apply is a consented no-op.
	before, _ := os.ReadFile(env.Doc.Path())
	if err := m.Apply(context.Background(), env); err != nil {
		t.Fatalf("second Apply failed: %v", err)
	}
	after, _ := os.ReadFile(env.Doc.Path())
	if string(before) != string(after) {
		t.Error("re-apply changed the document")
	}
}

func TestConfig_DeclinedWritesNothing(t *testing.T) {
	env := newTestEnv(t, &fakeProber{binaries: map[string]bool{"aws": true}})
	env.Ask = denyAll{}

	m := Config(ConfigSpec{Name: "AWS", Binary: "aws", Body: "body"})
	if err := m.Apply(context.Background(), env); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	has, _ := env.Doc.HasSection("AWS")
	if has {
		t.Error("declined module must not write its section")
	}
}

func TestConfig_MissingBinarySurfacesCapabilityError(t *testing.T) {
	env := newTestEnv(t, &fakeProber{})

	m := Config(ConfigSpec{Name: "AWS", Binary: "aws", Body: "body"})
	err := m.Apply(context.Background(), env)
	if !errors.Is(err, ErrCapabilityAbsent) {
		t.Errorf("err = %v, want ErrCapabilityAbsent", err)
	}
	if err != nil && !strings.Contains(err.Error(), "aws") {
		t.Errorf("error should name the missing binary: %v", err)
	}
}

func TestConfig_AlternativeBinariesGateApply(t *testing.T) {
	spec := ConfigSpec{Name: "Bat", Binaries: []string{"bat", "batcat"}, Body: "alias cat='bat'"}

	// Neither alternative resolves: probe fails and explicit apply
	// surfaces the capability error instead of writing the section.
	env := newTestEnv(t, &fakeProber{})
	m := Config(spec)
	if m.Probe(env) {
		t.Error("probe should fail when no alternative binary resolves")
	}
	err := m.Apply(context.Background(), env)
	if !errors.Is(err, ErrCapabilityAbsent) {
		t.Errorf("err = %v, want ErrCapabilityAbsent", err)
	}
	if err != nil && (!strings.Contains(err.Error(), "bat") || !strings.Contains(err.Error(), "batcat")) {
		t.Errorf("error should name the alternatives: %v", err)
	}
	if has, _ := env.Doc.HasSection("Bat"); has {
		t.Error("section written despite absent capability")
	}

	// Any one alternative is enough.
	env = newTestEnv(t, &fakeProber{binaries: map[string]bool{"batcat": true}})
	m = Config(spec)
	if !m.Probe(env) {
		t.Error("probe should pass with one alternative present")
	}
	if err := m.Apply(context.Background(), env); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if has, _ := env.Doc.HasSection("Bat"); !has {
		t.Error("section should exist after consented apply")
	}
}

func TestConfig_BodyFuncOverridesBody(t *testing.T) {
	env := newTestEnv(t, &fakeProber{binaries: map[string]bool{"batcat": true}})

	m := Config(ConfigSpec{
		Name: "Bat",
		Body: "static",
		BodyFunc: func(env *Env) string {
			if env.Probe.Binary("batcat") {
				return "alias bat='batcat'"
			}
			return "static"
		},
	})
	if err := m.Apply(context.Background(), env); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	sections, _ := env.Doc.Sections()
	if len(sections) != 1 || !strings.Contains(sections[0].Body, "batcat") {
		t.Errorf("sections = %+v, want body from BodyFunc", sections)
	}
}

func TestClone_InstallsAndEnablesPlugin(t *testing.T) {
	probe := &fakeProber{dirs: map[string]bool{}}
	env := newTestEnv(t, probe)

	var clonedURL, clonedDir string
	env.Clone = func(ctx context.Context, url, dir string) error {
		clonedURL, clonedDir = url, dir
		return os.MkdirAll(dir, 0755)
	}

	m := Clone(CloneSpec{
		Name:        "ZSH-Autosuggestions",
		RepoURL:     "https://github.com/zsh-users/zsh-autosuggestions",
		DirName:     "zsh-autosuggestions",
		PluginToken: "zsh-autosuggestions",
	})

	if !m.Probe(env) {
		t.Fatal("probe should pass while the target directory is absent")
	}
	if err := m.Apply(context.Background(), env); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	wantDir := filepath.Join(probe.custom, "plugins", "zsh-autosuggestions")
	if clonedDir != wantDir {
		t.Errorf("cloned into %q, want %q", clonedDir, wantDir)
	}
	if clonedURL == "" {
		t.Error("clone was not invoked")
	}

	plugins, err := env.Shell.Plugins()
	if err != nil {
		t.Fatalf("Plugins failed: %v", err)
	}
	if len(plugins) != 1 || plugins[0] != "zsh-autosuggestions" {
		t.Errorf("plugins = %v, want [zsh-autosuggestions]", plugins)
	}
}

func TestClone_AlreadyInstalledSkipsCloneButRepairsZshrc(t *testing.T) {
	probe := &fakeProber{dirs: map[string]bool{}}
	env := newTestEnv(t, probe)
	target := filepath.Join(probe.custom, "plugins", "zsh-autosuggestions")
	probe.dirs[target] = true

	cloneCalls := 0
	env.Clone = func(ctx context.Context, url, dir string) error {
		cloneCalls++
		return nil
	}

	m := Clone(CloneSpec{
		Name:        "ZSH-Autosuggestions",
		RepoURL:     "https://github.com/zsh-users/zsh-autosuggestions",
		DirName:     "zsh-autosuggestions",
		PluginToken: "zsh-autosuggestions",
	})

	if m.Probe(env) {
		t.Error("probe should fail once the target directory exists")
	}
	// Explicit dispatch still runs: no clone, but the plugin line is
	// (re)ensured.
	if err := m.Apply(context.Background(), env); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if cloneCalls != 0 {
		t.Errorf("clone called %d times, want 0", cloneCalls)
	}
	plugins, _ := env.Shell.Plugins()
	if len(plugins) != 1 {
		t.Errorf("plugins = %v, want the plugin enabled", plugins)
	}
}

func TestClone_DeclinedDoesNothing(t *testing.T) {
	probe := &fakeProber{}
	env := newTestEnv(t, probe)
	env.Ask = denyAll{}

	cloneCalls := 0
	env.Clone = func(ctx context.Context, url, dir string) error {
		cloneCalls++
		return nil
	}

	m := Clone(CloneSpec{
		Name:        "PowerLevel10K",
		RepoURL:     "https://github.com/romkatv/powerlevel10k",
		DirName:     "powerlevel10k",
		AsTheme:     true,
		ThemeValue:  "powerlevel10k/powerlevel10k",
	})
	if err := m.Apply(context.Background(), env); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if cloneCalls != 0 {
		t.Error("declined module must not clone")
	}
	if _, err := os.Stat(env.Shell.Path()); !os.IsNotExist(err) {
		t.Error("declined module must not touch the startup file")
	}
}

func TestClone_ThemeTargetsThemesDir(t *testing.T) {
	probe := &fakeProber{custom: "/custom"}
	spec := CloneSpec{DirName: "powerlevel10k", AsTheme: true}
	env := &Env{Probe: probe}

	got := spec.TargetDir(env)
	want := filepath.Join("/custom", "themes", "powerlevel10k")
	if got != want {
		t.Errorf("TargetDir = %q, want %q", got, want)
	}
}
