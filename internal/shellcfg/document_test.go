package shellcfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shellforge-dev/shellforge/internal/backup"
)

func newTestDoc(t *testing.T) *Document {
	t.Helper()
	tmp := t.TempDir()
	store := backup.NewStore(filepath.Join(tmp, "backups"))
	return New(filepath.Join(tmp, "config.zsh"), store)
}

func TestEnsureInitialized_WritesHeaderOnce(t *testing.T) {
	d := newTestDoc(t)

	if err := d.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized failed: %v", err)
	}
	content, err := os.ReadFile(d.Path())
	if err != nil {
		t.Fatalf("reading artifact: %v", err)
	}
	if string(content) != Header {
		t.Errorf("fresh artifact should contain exactly the header")
	}

	// Second call must not touch existing content.
	if _, err := d.AddSection("AWS", "complete -C aws_completer aws"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	if err := d.EnsureInitialized(); err != nil {
		t.Fatalf("second EnsureInitialized failed: %v", err)
	}
	after, _ := os.ReadFile(d.Path())
	if !strings.Contains(string(after), "AWS") {
		t.Error("EnsureInitialized overwrote existing sections")
	}
}

func TestAddSection_Idempotent(t *testing.T) {
	d := newTestDoc(t)

	added, err := d.AddSection("AWS", "line one\nline two")
	if err != nil {
		t.Fatalf("first AddSection failed: %v", err)
	}
	if !added {
		t.Error("first AddSection should report added")
	}

	before, _ := os.ReadFile(d.Path())

	added, err = d.AddSection("AWS", "different body")
	if err != nil {
		t.Fatalf("second AddSection failed: %v", err)
	}
	if added {
		t.Error("second AddSection should be a no-op")
	}

	after, _ := os.ReadFile(d.Path())
	if string(before) != string(after) {
		t.Error("repeated AddSection changed the file")
	}
}

func TestAddSection_PreservesInsertionOrder(t *testing.T) {
	d := newTestDoc(t)

	for _, name := range []string{"Docker", "AWS", "Kubectl"} {
		if _, err := d.AddSection(name, "body of "+name); err != nil {
			t.Fatalf("AddSection(%q) failed: %v", name, err)
		}
	}
	// Re-adding an early section must not move it.
	if _, err := d.AddSection("Docker", "ignored"); err != nil {
		t.Fatalf("re-AddSection failed: %v", err)
	}

	sections, err := d.Sections()
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}
	got := make([]string, len(sections))
	for i, s := range sections {
		got[i] = s.Name
	}
	want := []string{"Docker", "AWS", "Kubectl"}
	if len(got) != len(want) {
		t.Fatalf("got %d sections, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("section %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHasSection_ExactNameOnly(t *testing.T) {
	d := newTestDoc(t)

	if _, err := d.AddSection("Kubectl", "alias k=kubectl"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}

	tests := []struct {
		name string
		want bool
	}{
		{"Kubectl", true},
		{"K", false},
		{"Kube", false},
		{"Kubectl ", false},
		{"kubectl", false},
	}
	for _, tt := range tests {
		got, err := d.HasSection(tt.name)
		if err != nil {
			t.Fatalf("HasSection(%q) failed: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("HasSection(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestHasSection_BodyMentionDoesNotCount(t *testing.T) {
	d := newTestDoc(t)

	// A body that mentions another module's marker text inline must not
	// make that module appear installed.
	if _, err := d.AddSection("Notes", "echo '## Section: AWS is documented elsewhere'"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	got, err := d.HasSection("AWS")
	if err != nil {
		t.Fatalf("HasSection failed: %v", err)
	}
	if got {
		t.Error("substring inside a body line was treated as a marker")
	}
}

func TestSections_ParsesBodies(t *testing.T) {
	d := newTestDoc(t)

	if _, err := d.AddSection("AWS", "alias a=aws\ncomplete -C aws_completer aws"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}

	sections, err := d.Sections()
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if sections[0].Name != "AWS" {
		t.Errorf("Name = %q, want AWS", sections[0].Name)
	}
	if !strings.Contains(sections[0].Body, "alias a=aws") {
		t.Errorf("Body missing first line: %q", sections[0].Body)
	}
}

func TestReset_BacksUpThenRemoves(t *testing.T) {
	d := newTestDoc(t)

	if _, err := d.AddSection("AWS", "body"); err != nil {
		t.Fatalf("AddSection failed: %v", err)
	}
	original, _ := os.ReadFile(d.Path())

	backupPath, err := d.Reset()
	if err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if backupPath == "" {
		t.Fatal("Reset should return a backup path")
	}
	if _, err := os.Stat(d.Path()); !os.IsNotExist(err) {
		t.Error("artifact should be removed after Reset")
	}

	saved, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(saved) != string(original) {
		t.Error("backup content differs from the original artifact")
	}
}

func TestReset_NothingToRemove(t *testing.T) {
	d := newTestDoc(t)

	backupPath, err := d.Reset()
	if err != nil {
		t.Fatalf("Reset on missing artifact failed: %v", err)
	}
	if backupPath != "" {
		t.Errorf("backup path = %q, want empty", backupPath)
	}
}
