package storage

import (
	"os"

	"github.com/mrz1836/focusfive/internal/atomic"
	"github.com/mrz1836/focusfive/internal/config"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
	"github.com/mrz1836/focusfive/internal/markdown"
)

// yesterdayLookback is how many days back Yesterday searches for the most
// recent goals file. A longer gap means there is nothing worth carrying.
const yesterdayLookback = 7

// GoalsStore reads and writes the daily Markdown files under the goals
// directory, one file per date named YYYY-MM-DD.md.
type GoalsStore struct {
	cfg *config.Config
}

// NewGoalsStore returns a store over the configured goals directory.
func NewGoalsStore(cfg *config.Config) *GoalsStore {
	return &GoalsStore{cfg: cfg}
}

// Path returns the Markdown file location for a date.
func (s *GoalsStore) Path(date domain.Date) string {
	return s.cfg.GoalsFilePath(date.String())
}

// Exists reports whether a goals file is present for the date.
func (s *GoalsStore) Exists(date domain.Date) bool {
	_, err := os.Stat(s.Path(date))
	return err == nil
}

// Load reads and parses the goals file for a date. A missing file returns
// ErrNotFound; parse warnings are returned alongside the goals.
func (s *GoalsStore) Load(date domain.Date) (*domain.DailyGoals, []string, error) {
	path := s.Path(date)
	data, err := os.ReadFile(path) //#nosec G304 -- path is constructed from resolved config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrapf(errors.ErrNotFound, "no goals file for %s", date)
		}
		return nil, nil, errors.Wrapf(err, "read %s", path)
	}

	goals, warnings, err := markdown.Parse(data)
	if err != nil {
		return nil, warnings, errors.Wrapf(err, "parse %s", path)
	}

	// The filename is authoritative over the in-document header when the
	// two disagree; the user may have copied a file forward.
	goals.Date = date
	return goals, warnings, nil
}

// LoadOrCreate loads the goals for a date, or returns a fresh empty day
// when no file exists yet. The file itself is only created on Save.
func (s *GoalsStore) LoadOrCreate(date domain.Date) (*domain.DailyGoals, []string, error) {
	goals, warnings, err := s.Load(date)
	if err != nil {
		if isNotFound(err) {
			return domain.NewDailyGoals(date), nil, nil
		}
		return nil, warnings, err
	}
	return goals, warnings, nil
}

// Save serializes the goals and writes them atomically, returning the file
// path written.
func (s *GoalsStore) Save(goals *domain.DailyGoals) (string, error) {
	path := s.Path(goals.Date)
	if err := atomic.Write(path, markdown.Serialize(goals)); err != nil {
		return "", errors.Wrapf(err, "save goals for %s", goals.Date)
	}
	return path, nil
}

// Yesterday returns the most recent goals before today, scanning back a
// bounded number of days. It returns ErrNotFound when no prior file exists
// within the window.
func (s *GoalsStore) Yesterday(today domain.Date) (*domain.DailyGoals, domain.Date, error) {
	date := today
	for i := 0; i < yesterdayLookback; i++ {
		date = date.Prev()
		if !s.Exists(date) {
			continue
		}
		goals, _, err := s.Load(date)
		if err != nil {
			return nil, domain.Date{}, err
		}
		return goals, date, nil
	}
	return nil, domain.Date{}, errors.Wrapf(errors.ErrNotFound,
		"no goals in the %d days before %s", yesterdayLookback, today)
}
