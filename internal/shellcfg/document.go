// Package shellcfg owns the generated zsh configuration artifact.
//
// The artifact is a UTF-8 text file made of a fixed header followed by
// uniquely named sections. Sections are append-only: a module that emits
// the same section name twice gets a no-op, never a merge. Section order
// is exactly the order of the first AddSection call for each name, which
// makes repeated runs diff-stable on unchanged machine state.
package shellcfg

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shellforge-dev/shellforge/internal/backup"
)

// SectionPrefix starts every section marker line. Presence checks compare
// whole lines against the marker, never substrings, so a module named "K"
// can not shadow a section named "Kubectl".
const SectionPrefix = "## Section: "

// Header is written once when the artifact is first created.
const Header = `# ============================================================
# ShellForge Configuration
# ============================================================
# This file is generated by shellforge. Do not edit manually!
# Your own zsh configuration belongs in ~/.zshrc.
#
# To add or remove modules, run:
#   shellforge install <module>
#   shellforge clean
# ============================================================

`

// Section is one uniquely named block of generated configuration.
type Section struct {
	Name string
	Body string
}

// Document is the single generated configuration artifact.
type Document struct {
	path    string
	backups *backup.Store
}

// New returns a Document stored at path, using backups before destruction.
func New(path string, backups *backup.Store) *Document {
	return &Document{path: path, backups: backups}
}

// Path returns the artifact location.
func (d *Document) Path() string { return d.path }

// EnsureInitialized creates the artifact with its fixed header, plus the
// parent and backup directories, if any of them are missing. Idempotent.
func (d *Document) EnsureInitialized() error {
	if err := os.MkdirAll(filepath.Dir(d.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.MkdirAll(d.backups.Dir(), 0755); err != nil {
		return fmt.Errorf("creating backup directory: %w", err)
	}

	content, err := os.ReadFile(d.path)
	if err == nil && strings.TrimSpace(string(content)) != "" {
		return nil
	}
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", d.path, err)
	}

	if err := os.WriteFile(d.path, []byte(Header), 0644); err != nil {
		return fmt.Errorf("writing header to %s: %w", d.path, err)
	}
	return nil
}

// AddSection appends a named section and reports whether it was added.
// If the exact marker line for name already exists the call is a no-op
// and returns false. The write is a single append, never a rewrite of
// existing sections.
func (d *Document) AddSection(name, body string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("section name must not be empty")
	}
	if err := d.EnsureInitialized(); err != nil {
		return false, err
	}

	present, err := d.HasSection(name)
	if err != nil {
		return false, err
	}
	if present {
		return false, nil
	}

	f, err := os.OpenFile(d.path, os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return false, fmt.Errorf("opening %s: %w", d.path, err)
	}

	block := SectionPrefix + name + "\n" + strings.TrimSpace(body) + "\n\n"
	if _, err := f.WriteString(block); err != nil {
		f.Close()
		return false, fmt.Errorf("appending section %q: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing %s: %w", d.path, err)
	}
	return true, nil
}

// HasSection reports whether a section with this exact name exists.
func (d *Document) HasSection(name string) (bool, error) {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", d.path, err)
	}
	defer f.Close()

	marker := SectionPrefix + name
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.TrimRight(scanner.Text(), "\r") == marker {
			return true, nil
		}
	}
	return false, scanner.Err()
}

// Sections parses the artifact and returns its sections in file order.
func (d *Document) Sections() ([]Section, error) {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", d.path, err)
	}
	defer f.Close()

	var (
		sections []Section
		current  *Section
		body     []string
	)
	flush := func() {
		if current != nil {
			current.Body = strings.TrimRight(strings.Join(body, "\n"), "\n")
			sections = append(sections, *current)
		}
		current = nil
		body = nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, SectionPrefix) {
			flush()
			current = &Section{Name: strings.TrimPrefix(line, SectionPrefix)}
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return sections, nil
}

// Reset backs up the artifact and then deletes it. It returns the backup
// path, which is empty when there was nothing to back up.
func (d *Document) Reset() (string, error) {
	backupPath, err := d.backups.Backup(d.path)
	if err != nil {
		return "", err
	}
	if err := os.Remove(d.path); err != nil && !os.IsNotExist(err) {
		return backupPath, fmt.Errorf("removing %s: %w", d.path, err)
	}
	return backupPath, nil
}
