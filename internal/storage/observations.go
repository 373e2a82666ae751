package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mrz1836/focusfive/internal/config"
	"github.com/mrz1836/focusfive/internal/ctxutil"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/flock"
)

// maxObservationLine bounds the scanner buffer for one NDJSON line.
const maxObservationLine = 64 * 1024

// ObservationLog is the append-only NDJSON measurement log. Appends never
// rewrite history; each record is one JSON object on its own line.
type ObservationLog struct {
	cfg *config.Config
}

// NewObservationLog returns a log over observations.ndjson.
func NewObservationLog(cfg *config.Config) *ObservationLog {
	return &ObservationLog{cfg: cfg}
}

// Path returns the log file location.
func (l *ObservationLog) Path() string {
	return l.cfg.ObservationsFilePath()
}

// Append encodes one observation and appends it with a trailing newline,
// syncing before close so an acknowledged append survives a crash. An
// exclusive lock on the log file keeps appends from concurrent invocations
// from interleaving.
func (l *ObservationLog) Append(obs *domain.Observation) error {
	data, err := json.Marshal(obs)
	if err != nil {
		return errors.Wrap(err, "encode observation")
	}

	path := l.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrapf(err, "create %s", filepath.Dir(path))
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //#nosec G304 -- path is constructed from resolved config
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}

	if err = flock.Exclusive(f.Fd()); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "lock %s", path)
	}
	defer func() { _ = flock.Unlock(f.Fd()) }()

	if _, err = f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "append to %s", path)
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "sync %s", path)
	}
	return f.Close()
}

// ObservationFilter narrows a Read. Zero fields match everything.
type ObservationFilter struct {
	// IndicatorID keeps only observations for one indicator.
	IndicatorID string

	// From keeps observations on or after this date.
	From domain.Date

	// To keeps observations on or before this date.
	To domain.Date
}

func (f ObservationFilter) matches(obs *domain.Observation) bool {
	if f.IndicatorID != "" && obs.IndicatorID != f.IndicatorID {
		return false
	}
	if !f.From.IsZero() && obs.When.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && obs.When.After(f.To) {
		return false
	}
	return true
}

// Read streams the log and returns matching observations in append order.
// A missing file yields an empty slice. Blank lines are skipped; a line
// that is not valid JSON fails the read and names the offending content.
// The log grows without bound, so the scan honors context cancellation.
func (l *ObservationLog) Read(ctx context.Context, filter ObservationFilter) ([]domain.Observation, error) {
	path := l.Path()
	f, err := os.Open(path) //#nosec G304 -- path is constructed from resolved config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	var out []domain.Observation
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 4096), maxObservationLine)

	lineNum := 0
	for scanner.Scan() {
		if err := ctxutil.Canceled(ctx); err != nil {
			return nil, err
		}
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var obs domain.Observation
		if err := json.Unmarshal([]byte(line), &obs); err != nil {
			return nil, errors.Wrapf(errors.ErrCorruptObservation,
				"line %d: %s", lineNum, truncateForError(line))
		}
		if filter.matches(&obs) {
			out = append(out, obs)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", path)
	}
	return out, nil
}

// truncateForError shortens a corrupt line for inclusion in an error.
func truncateForError(line string) string {
	const limit = 80
	if len(line) <= limit {
		return line
	}
	return line[:limit] + "..."
}
