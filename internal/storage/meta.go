package storage

import (
	"time"

	"github.com/mrz1836/focusfive/internal/config"
	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
)

// DayMetaStore reads and writes the per-day JSON sidecars under meta/.
// The sidecar owns stable action ids and five-state status; the Markdown
// file owns text and completion.
type DayMetaStore struct {
	cfg *config.Config
}

// NewDayMetaStore returns a store over the configured meta directory.
func NewDayMetaStore(cfg *config.Config) *DayMetaStore {
	return &DayMetaStore{cfg: cfg}
}

// Path returns the sidecar location for a date.
func (s *DayMetaStore) Path(date domain.Date) string {
	return s.cfg.MetaFilePath(date.String())
}

// Load reads the sidecar for a date. It returns ErrNotFound when absent.
func (s *DayMetaStore) Load(date domain.Date) (*domain.DayMeta, error) {
	var meta domain.DayMeta
	found, err := loadJSON(s.Path(date), &meta)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(errors.ErrNotFound, "no day meta for %s", date)
	}
	if meta.Version == 0 {
		meta.Version = constants.DayMetaSchemaVersion
	}
	return &meta, nil
}

// LoadOrCreate reads the sidecar for a date, synthesizing one from the
// goals when no file exists yet.
func (s *DayMetaStore) LoadOrCreate(date domain.Date, goals *domain.DailyGoals, now time.Time) (*domain.DayMeta, error) {
	meta, err := s.Load(date)
	if err == nil {
		return meta, nil
	}
	if !isNotFound(err) {
		return nil, err
	}
	return domain.NewDayMeta(goals, now), nil
}

// Save writes the sidecar atomically.
func (s *DayMetaStore) Save(date domain.Date, meta *domain.DayMeta) error {
	return saveJSON(s.Path(date), meta)
}
