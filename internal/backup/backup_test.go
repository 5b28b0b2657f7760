package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

func TestBackup_NamingAndContent(t *testing.T) {
	tmp := t.TempDir()
	store := NewStore(filepath.Join(tmp, "backups"))
	fixed := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }

	src := writeFixture(t, tmp, ".zshrc", "plugins=(git)\n")

	dst, err := store.Backup(src)
	if err != nil {
		t.Fatalf("Backup failed: %v", err)
	}

	wantName := fmt.Sprintf(".zshrc.%d.bak", fixed.Unix())
	if filepath.Base(dst) != wantName {
		t.Errorf("backup name = %q, want %q", filepath.Base(dst), wantName)
	}

	saved, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if string(saved) != "plugins=(git)\n" {
		t.Errorf("backup content = %q, want original content", saved)
	}

	// Source must be untouched.
	orig, _ := os.ReadFile(src)
	if string(orig) != "plugins=(git)\n" {
		t.Error("source file changed during backup")
	}
}

func TestBackup_MissingSourceIsNoop(t *testing.T) {
	tmp := t.TempDir()
	store := NewStore(filepath.Join(tmp, "backups"))

	dst, err := store.Backup(filepath.Join(tmp, "does-not-exist"))
	if err != nil {
		t.Fatalf("Backup of missing file failed: %v", err)
	}
	if dst != "" {
		t.Errorf("backup path = %q, want empty", dst)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d backups, want 0", len(entries))
	}
}

func TestBackup_RejectsDirectory(t *testing.T) {
	tmp := t.TempDir()
	store := NewStore(filepath.Join(tmp, "backups"))

	if _, err := store.Backup(tmp); err == nil {
		t.Error("expected error backing up a directory")
	}
}

func TestList_NewestFirst(t *testing.T) {
	tmp := t.TempDir()
	backupDir := filepath.Join(tmp, "backups")
	store := NewStore(backupDir)

	src := writeFixture(t, tmp, "config.zsh", "v1")
	ts := time.Now().Add(-time.Hour)
	store.now = func() time.Time { return ts }
	first, err := store.Backup(src)
	if err != nil {
		t.Fatalf("first Backup failed: %v", err)
	}
	// Age the first copy so modification times differ.
	os.Chtimes(first, ts, ts)

	writeFixture(t, tmp, "config.zsh", "v2")
	store.now = time.Now
	second, err := store.Backup(src)
	if err != nil {
		t.Fatalf("second Backup failed: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d backups, want 2", len(entries))
	}
	if entries[0].Path != second {
		t.Errorf("entries[0] = %s, want newest backup %s", entries[0].Path, second)
	}
	if entries[0].Source != "config.zsh" {
		t.Errorf("Source = %q, want config.zsh", entries[0].Source)
	}
}

func TestRestore_BacksUpTargetFirst(t *testing.T) {
	tmp := t.TempDir()
	store := NewStore(filepath.Join(tmp, "backups"))

	src := writeFixture(t, tmp, "config.zsh", "old content")
	backupPath, err := store.Backup(src)
	if err != nil {
		t.Fatalf("Backup failed: %v", err)
	}

	writeFixture(t, tmp, "config.zsh", "new content")

	if err := store.Restore(backupPath, src); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	restored, _ := os.ReadFile(src)
	if string(restored) != "old content" {
		t.Errorf("restored content = %q, want %q", restored, "old content")
	}

	// The pre-restore state of the target must itself have been saved.
	entries, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	found := false
	for _, e := range entries {
		data, _ := os.ReadFile(e.Path)
		if string(data) == "new content" {
			found = true
		}
	}
	if !found {
		t.Error("pre-restore target content was not backed up")
	}
}

func TestSourceName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".zshrc.1756100000.bak", ".zshrc"},
		{"config.zsh.1756100000.bak", "config.zsh"},
		{"plain.bak", "plain"},
	}
	for _, tt := range tests {
		if got := sourceName(tt.in); got != tt.want {
			t.Errorf("sourceName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
