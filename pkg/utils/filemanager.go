// =============================================================================
// EDIWIN Order Extractor - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the extractor:
//   - Atomic output writes (stage to a temp file, rename into place)
//   - Input archival after successful batch processing
//   - Directory management
//   - Output file naming
//
// ARCHIVAL STRATEGY:
//   - Input PDFs are moved to the archive directory after successful
//     processing; a timestamp suffix resolves name collisions.
//   - Failed files remain in their original location.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// DIRECTORY MANAGEMENT
// =============================================================================

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path exists and is not a directory.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes data to path through a temporary file in the same
// directory, so a crash never leaves a half-written output. Parent
// directories are created as needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move output into place: %w", err)
	}
	return nil
}

// =============================================================================
// ARCHIVAL
// =============================================================================

// ArchiveFile moves a processed input file into archiveDir. When a file of
// the same name is already archived, a timestamp suffix is appended.
// Returns the archived path.
func ArchiveFile(path, archiveDir string) (string, error) {
	if err := EnsureDir(archiveDir); err != nil {
		return "", err
	}

	target := filepath.Join(archiveDir, filepath.Base(path))
	if FileExists(target) {
		ext := filepath.Ext(target)
		base := strings.TrimSuffix(filepath.Base(target), ext)
		stamp := time.Now().Format("20060102_150405")
		target = filepath.Join(archiveDir, fmt.Sprintf("%s_%s%s", base, stamp, ext))
	}

	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	return target, nil
}

// =============================================================================
// OUTPUT NAMING
// =============================================================================

// GenerateOutputFileName renders an output name format by substituting:
//   {uuid}      - a random UUID
//   {timestamp} - current timestamp (YYYYMMDD_HHMMSS)
//   {vendor}    - the vendor key that matched the input file
//   {source}    - the input file name without extension
func GenerateOutputFileName(format, vendor, sourcePath string) string {
	base := filepath.Base(sourcePath)
	source := strings.TrimSuffix(base, filepath.Ext(base))

	name := format
	name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	name = strings.ReplaceAll(name, "{timestamp}", time.Now().Format("20060102_150405"))
	name = strings.ReplaceAll(name, "{vendor}", vendor)
	name = strings.ReplaceAll(name, "{source}", source)
	return name
}
