// Package gitclone fetches plugin and theme repositories.
package gitclone

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
)

// Func is the clone operation injected into modules, so tests can swap
// the network out.
type Func func(ctx context.Context, url, dir string) error

// Clone performs a shallow clone of url into dir, creating parents as
// needed. Cloning into an existing directory is an error.
func Clone(ctx context.Context, url, dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return fmt.Errorf("target %s already exists", dir)
	}
	if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
		return fmt.Errorf("creating parent of %s: %w", dir, err)
	}

	_, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{
		URL:          url,
		Depth:        1,
		SingleBranch: true,
		Tags:         gogit.NoTags,
	})
	if err != nil && !errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
		// A failed clone may leave a partial directory behind; remove it
		// so a retry starts clean.
		os.RemoveAll(dir)
		return fmt.Errorf("cloning %s: %w", url, err)
	}
	return nil
}
