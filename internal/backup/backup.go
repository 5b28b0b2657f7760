// Package backup copies tracked files aside before destructive mutations.
//
// Backups are plain copies named <basename>.<unixTimestamp>.bak inside one
// backup directory. Names are unique at one-second granularity, which is
// enough for the single-threaded, human-paced flows that use this store.
// Backups are retained indefinitely; there is no eviction.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const suffix = ".bak"

// Store writes timestamped copies of files into a single directory.
type Store struct {
	dir string
	now func() time.Time
}

// Entry describes one backup on disk.
type Entry struct {
	Path     string
	Source   string // original basename the backup was taken from
	ModTime  time.Time
	Size     int64
}

// NewStore returns a Store rooted at dir. The directory is created lazily
// on first backup.
func NewStore(dir string) *Store {
	return &Store{dir: dir, now: time.Now}
}

// Dir returns the backup directory path.
func (s *Store) Dir() string { return s.dir }

// Backup copies path into the store and returns the backup path.
// A missing source is not an error; it returns an empty path.
func (s *Store) Backup(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("cannot back up directory %s", path)
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("creating backup directory %s: %w", s.dir, err)
	}

	name := fmt.Sprintf("%s.%d%s", filepath.Base(path), s.now().Unix(), suffix)
	dst := filepath.Join(s.dir, name)

	if err := copyFile(path, dst, info.Mode()); err != nil {
		return "", fmt.Errorf("backing up %s: %w", path, err)
	}
	return dst, nil
}

// List returns the backups in the store, newest first.
func (s *Store) List() ([]Entry, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading backup directory: %w", err)
	}

	var out []Entry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Entry{
			Path:    filepath.Join(s.dir, e.Name()),
			Source:  sourceName(e.Name()),
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ModTime.After(out[j].ModTime) })
	return out, nil
}

// Restore copies a backup over target, backing up the current target first.
func (s *Store) Restore(backupPath, target string) error {
	info, err := os.Stat(backupPath)
	if err != nil {
		return fmt.Errorf("stat backup %s: %w", backupPath, err)
	}

	if _, err := s.Backup(target); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", target, err)
	}
	if err := copyFile(backupPath, target, info.Mode()); err != nil {
		return fmt.Errorf("restoring %s: %w", target, err)
	}
	return nil
}

// sourceName strips the ".<timestamp>.bak" tail from a backup filename.
func sourceName(name string) string {
	base := strings.TrimSuffix(name, suffix)
	if i := strings.LastIndex(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
