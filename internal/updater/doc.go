// Package updater implements the self-update mechanism for the shellforge
// binary. It checks GitHub Releases (or a configured mirror) for new
// versions, downloads and verifies checksums, extracts the binary, and
// replaces the running executable. A daily-cached version check powers the
// startup banner.
package updater