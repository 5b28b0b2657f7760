package branding

import "testing"

func TestEmbeddedIdentity(t *testing.T) {
	if CLIName() != "shellforge" {
		t.Errorf("CLIName = %q", CLIName())
	}
	if HomeDir() != ".shellforge" {
		t.Errorf("HomeDir = %q", HomeDir())
	}
	if EnvPrefix() != "SHELLFORGE" {
		t.Errorf("EnvPrefix = %q", EnvPrefix())
	}
	if GitHubRepo() == "" {
		t.Error("GitHubRepo is empty")
	}
}

func TestEnvVar(t *testing.T) {
	tests := []struct {
		suffix string
		want   string
	}{
		{"HOME", "SHELLFORGE_HOME"},
		{"zshrc", "SHELLFORGE_ZSHRC"},
		{"Mirror", "SHELLFORGE_MIRROR"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.suffix); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.suffix, got, tt.want)
		}
	}
}
