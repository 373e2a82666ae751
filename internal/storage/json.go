// Package storage persists FocusFive state: Markdown goals files, JSON
// documents and sidecars, the append-only observation log, and saved
// reviews. All writes go through the atomic writer so a crash never leaves
// a partially written file behind.
package storage

import (
	"encoding/json"
	stderrors "errors"
	"os"

	"github.com/mrz1836/focusfive/internal/atomic"
	"github.com/mrz1836/focusfive/internal/errors"
)

// isNotFound reports whether err carries the not-found sentinel.
func isNotFound(err error) bool {
	return stderrors.Is(err, errors.ErrNotFound)
}

// loadJSON reads a JSON document into out. It reports false with no error
// when the file does not exist, so callers can substitute a typed default.
func loadJSON(path string, out any) (bool, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path is constructed from resolved config
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, errors.Wrapf(err, "parse %s", path)
	}
	return true, nil
}

// saveJSON writes v as pretty-printed JSON with a trailing newline.
func saveJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encode %s", path)
	}
	data = append(data, '\n')
	return atomic.Write(path, data)
}
