package storage

import (
	"github.com/mrz1836/focusfive/internal/config"
	"github.com/mrz1836/focusfive/internal/domain"
)

// Document stores follow one pattern: an absent file yields the typed
// default, an unparseable file is an error, and saves write pretty JSON
// atomically.

// VisionStore persists the five-year vision document.
type VisionStore struct {
	cfg *config.Config
}

// NewVisionStore returns a store over vision.json.
func NewVisionStore(cfg *config.Config) *VisionStore {
	return &VisionStore{cfg: cfg}
}

// Load reads the vision, or a fresh empty one when absent.
func (s *VisionStore) Load() (*domain.FiveYearVision, error) {
	var v domain.FiveYearVision
	found, err := loadJSON(s.cfg.VisionFilePath(), &v)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.NewFiveYearVision(), nil
	}
	return &v, nil
}

// Save writes the vision atomically.
func (s *VisionStore) Save(v *domain.FiveYearVision) error {
	return saveJSON(s.cfg.VisionFilePath(), v)
}

// TemplatesStore persists the named action templates.
type TemplatesStore struct {
	cfg *config.Config
}

// NewTemplatesStore returns a store over templates.json.
func NewTemplatesStore(cfg *config.Config) *TemplatesStore {
	return &TemplatesStore{cfg: cfg}
}

// Load reads the templates, or an empty set when absent.
func (s *TemplatesStore) Load() (*domain.ActionTemplates, error) {
	var t domain.ActionTemplates
	found, err := loadJSON(s.cfg.TemplatesFilePath(), &t)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.NewActionTemplates(), nil
	}
	if t.Templates == nil {
		t.Templates = make(map[string][]string)
	}
	return &t, nil
}

// Save writes the templates atomically.
func (s *TemplatesStore) Save(t *domain.ActionTemplates) error {
	return saveJSON(s.cfg.TemplatesFilePath(), t)
}

// ObjectivesStore persists long-term objectives.
type ObjectivesStore struct {
	cfg *config.Config
}

// NewObjectivesStore returns a store over objectives.json.
func NewObjectivesStore(cfg *config.Config) *ObjectivesStore {
	return &ObjectivesStore{cfg: cfg}
}

// Load reads the objectives, or an empty versioned document when absent.
func (s *ObjectivesStore) Load() (*domain.ObjectivesData, error) {
	var d domain.ObjectivesData
	found, err := loadJSON(s.cfg.ObjectivesFilePath(), &d)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.NewObjectivesData(), nil
	}
	return &d, nil
}

// Save writes the objectives atomically.
func (s *ObjectivesStore) Save(d *domain.ObjectivesData) error {
	return saveJSON(s.cfg.ObjectivesFilePath(), d)
}

// IndicatorsStore persists indicator definitions.
type IndicatorsStore struct {
	cfg *config.Config
}

// NewIndicatorsStore returns a store over indicators.json.
func NewIndicatorsStore(cfg *config.Config) *IndicatorsStore {
	return &IndicatorsStore{cfg: cfg}
}

// Load reads the indicators, or an empty versioned document when absent.
func (s *IndicatorsStore) Load() (*domain.IndicatorsData, error) {
	var d domain.IndicatorsData
	found, err := loadJSON(s.cfg.IndicatorsFilePath(), &d)
	if err != nil {
		return nil, err
	}
	if !found {
		return domain.NewIndicatorsData(), nil
	}
	return &d, nil
}

// Save writes the indicators atomically.
func (s *IndicatorsStore) Save(d *domain.IndicatorsData) error {
	return saveJSON(s.cfg.IndicatorsFilePath(), d)
}
