package storage

import (
	"github.com/mrz1836/focusfive/internal/config"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
)

// ReviewStore persists saved weekly and monthly reviews under reviews/,
// one file per period id ("2025-W35" weekly, "2025-08" monthly).
type ReviewStore struct {
	cfg *config.Config
}

// NewReviewStore returns a store over the configured reviews directory.
func NewReviewStore(cfg *config.Config) *ReviewStore {
	return &ReviewStore{cfg: cfg}
}

// Path returns the file location for a period id.
func (s *ReviewStore) Path(periodID string) string {
	return s.cfg.ReviewFilePath(periodID)
}

// Load reads a saved review. It returns ErrNotFound when no review has
// been saved for the period.
func (s *ReviewStore) Load(periodID string) (*domain.Review, error) {
	var wrapped domain.ReviewData
	found, err := loadJSON(s.Path(periodID), &wrapped)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, errors.Wrapf(errors.ErrNotFound, "no review for %s", periodID)
	}
	return &wrapped.Review, nil
}

// Save writes a review atomically under its period id.
func (s *ReviewStore) Save(review *domain.Review) error {
	return saveJSON(s.Path(review.Period), domain.WrapReview(*review))
}
