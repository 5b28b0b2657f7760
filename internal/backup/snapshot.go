package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// SnapshotFile records one file captured in a snapshot.
type SnapshotFile struct {
	OriginalPath string `json:"original_path"`
	BackupPath   string `json:"backup_path"`
	Existed      bool   `json:"existed"`
}

// Snapshot groups the backups taken before one destructive operation so
// they can be restored together.
type Snapshot struct {
	ID          string         `json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	Description string         `json:"description"`
	Files       []SnapshotFile `json:"files"`
	Modules     []string       `json:"modules,omitempty"`
}

// Snapshots manages the snapshot index stored alongside the backup files.
type Snapshots struct {
	store *Store
	index string
}

// NewSnapshots returns a snapshot manager persisting its index under the
// store's backup directory.
func NewSnapshots(store *Store) *Snapshots {
	return &Snapshots{
		store: store,
		index: filepath.Join(store.Dir(), "snapshots.json"),
	}
}

// Create backs up each existing path and records the set under a fresh ID.
func (s *Snapshots) Create(description string, paths []string, modules ...string) (*Snapshot, error) {
	snap := &Snapshot{
		ID:          uuid.NewString()[:8],
		CreatedAt:   time.Now(),
		Description: description,
		Modules:     modules,
	}

	for _, p := range paths {
		backupPath, err := s.store.Backup(p)
		if err != nil {
			return nil, err
		}
		snap.Files = append(snap.Files, SnapshotFile{
			OriginalPath: p,
			BackupPath:   backupPath,
			Existed:      backupPath != "",
		})
	}

	all, err := s.List()
	if err != nil {
		return nil, err
	}
	all = append(all, *snap)
	if err := s.save(all); err != nil {
		return nil, err
	}
	return snap, nil
}

// List returns all recorded snapshots, oldest first.
func (s *Snapshots) List() ([]Snapshot, error) {
	data, err := os.ReadFile(s.index)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading snapshot index: %w", err)
	}

	var all []Snapshot
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("parsing snapshot index: %w", err)
	}
	return all, nil
}

// Restore puts every file of the identified snapshot back in place.
// Files that did not exist when the snapshot was taken are removed.
func (s *Snapshots) Restore(id string) (*Snapshot, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}

	for i := range all {
		if all[i].ID != id {
			continue
		}
		snap := &all[i]
		for _, f := range snap.Files {
			if !f.Existed {
				if err := os.Remove(f.OriginalPath); err != nil && !os.IsNotExist(err) {
					return nil, fmt.Errorf("removing %s: %w", f.OriginalPath, err)
				}
				continue
			}
			if err := s.store.Restore(f.BackupPath, f.OriginalPath); err != nil {
				return nil, err
			}
		}
		return snap, nil
	}
	return nil, fmt.Errorf("snapshot %q not found", id)
}

func (s *Snapshots) save(all []Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.index), 0755); err != nil {
		return fmt.Errorf("creating backup directory: %w", err)
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot index: %w", err)
	}
	if err := os.WriteFile(s.index, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot index: %w", err)
	}
	return nil
}
