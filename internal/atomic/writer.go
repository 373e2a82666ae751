// Package atomic provides crash-safe file writes for FocusFive state files.
//
// Every byte the tracker persists flows through Write, which implements the
// write-temp-then-rename protocol: the target file either keeps its previous
// contents or holds exactly the new bytes, never a partial mix. Within one
// process, concurrent writers to the same path are serialized by a
// per-canonical-path mutex; across processes, correctness relies on rename
// atomicity on the same filesystem.
package atomic

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/errors"
)

// Directory and file permission constants.
const (
	dirPerm  = 0o750 // Secure directory permissions
	filePerm = 0o644 // World-readable state files: the data is the user's own Markdown/JSON
)

// tempMarker appears in every temp file name so the sweep can recognize
// leftovers from interrupted writes.
const tempMarker = ".tmp."

// pathLocks serializes writers per canonical path. The table is bounded:
// once it exceeds maxTrackedPaths, it is reset wholesale. Losing a lock
// entry only costs serialization with a writer that raced the reset;
// correctness of individual writes never depends on the table.
var (
	pathLocksMu sync.Mutex                       //nolint:gochecknoglobals // Guards pathLocks
	pathLocks   = make(map[string]*sync.Mutex)   //nolint:gochecknoglobals // Per-path writer locks
)

// maxTrackedPaths bounds the lock table. A single-user tracker touches a few
// dozen paths per session, so the bound exists only as a safety valve.
const maxTrackedPaths = 1024

// lockFor returns the mutex guarding the given path.
func lockFor(path string) *sync.Mutex {
	canonical := filepath.Clean(path)

	pathLocksMu.Lock()
	defer pathLocksMu.Unlock()

	if len(pathLocks) > maxTrackedPaths {
		pathLocks = make(map[string]*sync.Mutex)
	}
	mu, ok := pathLocks[canonical]
	if !ok {
		mu = &sync.Mutex{}
		pathLocks[canonical] = mu
	}
	return mu
}

// ValidatePath rejects paths that could escape the data directory or break
// filesystem APIs: null bytes, control characters other than tab, ".."
// segments, and paths longer than 255 codepoints.
func ValidatePath(path string) error {
	if path == "" {
		return errors.Wrap(errors.ErrPathRejected, "empty path")
	}
	if utf8.RuneCountInString(path) > constants.MaxPathLength {
		return errors.Wrapf(errors.ErrPathRejected, "path exceeds %d characters", constants.MaxPathLength)
	}
	for _, r := range path {
		if r == 0 {
			return errors.Wrap(errors.ErrPathRejected, "path contains null byte")
		}
		if r < 0x20 && r != '\t' {
			return errors.Wrapf(errors.ErrPathRejected, "path contains control character %#x", r)
		}
	}
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == ".." {
			return errors.Wrap(errors.ErrPathRejected, "path contains traversal segment")
		}
	}
	return nil
}

// Write atomically replaces the file at path with data. On any failure the
// pre-existing file at path is left untouched and the temp file is removed
// best-effort.
func Write(path string, data []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}

	mu := lockFor(path)
	mu.Lock()
	defer mu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpPath := tempPathFor(path)
	if err := writeTemp(tmpPath, data); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	// Best-effort only: some filesystems refuse chmod and the write is
	// still complete.
	_ = os.Chmod(path, filePerm)

	return nil
}

// tempPathFor builds a sibling temp name whose suffix combines a monotonic
// timestamp and the process id, guaranteeing uniqueness across callers.
func tempPathFor(path string) string {
	name := fmt.Sprintf(".%s%s%d.%d", filepath.Base(path), tempMarker, time.Now().UnixNano(), os.Getpid())
	return filepath.Join(filepath.Dir(path), name)
}

// writeTemp creates the temp file, writes all bytes, and flushes them to
// durable storage before closing. The temp file is removed on any failure.
func writeTemp(tmpPath string, data []byte) error {
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm) //#nosec G304 -- path is derived from a validated target
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write data: %w", err)
	}

	// Ensure data is persisted before the rename makes it visible.
	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	return nil
}

// SweepStale removes temp-named leftovers in dir older than maxAge. Leftovers
// appear when a process dies between creating a temp file and renaming it.
// The sweep is best-effort; it reports how many files it removed.
func SweepStale(dir string, maxAge time.Duration) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || !isTempName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}
		if os.Remove(filepath.Join(dir, entry.Name())) == nil {
			removed++
		}
	}
	return removed
}

// isTempName reports whether a file name matches this package's temp naming.
func isTempName(name string) bool {
	return strings.HasPrefix(name, ".") && strings.Contains(name, tempMarker)
}
