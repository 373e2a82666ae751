package storage

import (
	"sort"

	"github.com/mrz1836/focusfive/internal/atomic"
	"github.com/mrz1836/focusfive/internal/clock"
	"github.com/mrz1836/focusfive/internal/config"
	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/reconcile"
)

// Component names one persisted store inside the repository.
type Component string

// Components tracked by the repository's dirty set.
const (
	ComponentGoals      Component = "goals"
	ComponentMeta       Component = "meta"
	ComponentVision     Component = "vision"
	ComponentTemplates  Component = "templates"
	ComponentObjectives Component = "objectives"
	ComponentIndicators Component = "indicators"
)

// DaySession is one loaded day: the parsed goals and their reconciled
// sidecar, plus any non-fatal parse warnings.
type DaySession struct {
	Date     domain.Date
	Goals    *domain.DailyGoals
	Meta     *domain.DayMeta
	Warnings []string
}

// Repository is the single entry point the CLI works through. It owns the
// stores, caches the loaded documents, and tracks which components have
// unsaved changes so SaveAll writes only what moved.
//
// The repository is not safe for concurrent use; the CLI is a single
// process acting for a single user.
type Repository struct {
	cfg    *config.Config
	clk    clock.Clock
	engine *reconcile.Engine

	goals        *GoalsStore
	meta         *DayMetaStore
	visionStore  *VisionStore
	tmplStore    *TemplatesStore
	objStore     *ObjectivesStore
	indStore     *IndicatorsStore
	reviews      *ReviewStore
	observations *ObservationLog

	session    *DaySession
	vision     *domain.FiveYearVision
	templates  *domain.ActionTemplates
	objectives *domain.ObjectivesData
	indicators *domain.IndicatorsData

	dirty map[Component]bool
}

// NewRepository wires a repository over the resolved configuration. It
// first sweeps temp leftovers from writes a previous run never finished.
func NewRepository(cfg *config.Config, clk clock.Clock) *Repository {
	for _, dir := range []string{cfg.DataRoot, cfg.GoalsDir, cfg.MetaDir(), cfg.ReviewsDir()} {
		atomic.SweepStale(dir, constants.TempSweepAge)
	}

	return &Repository{
		cfg:          cfg,
		clk:          clk,
		engine:       reconcile.NewEngine(clk),
		goals:        NewGoalsStore(cfg),
		meta:         NewDayMetaStore(cfg),
		visionStore:  NewVisionStore(cfg),
		tmplStore:    NewTemplatesStore(cfg),
		objStore:     NewObjectivesStore(cfg),
		indStore:     NewIndicatorsStore(cfg),
		reviews:      NewReviewStore(cfg),
		observations: NewObservationLog(cfg),
		dirty:        make(map[Component]bool),
	}
}

// Config returns the resolved filesystem layout.
func (r *Repository) Config() *config.Config {
	return r.cfg
}

// Clock returns the repository's time source.
func (r *Repository) Clock() clock.Clock {
	return r.clk
}

// Goals exposes the goals store for read-only walks (streaks, history).
func (r *Repository) Goals() *GoalsStore {
	return r.goals
}

// Reviews exposes the review store.
func (r *Repository) Reviews() *ReviewStore {
	return r.reviews
}

// Observations exposes the append-only measurement log. Appends bypass the
// dirty set because they are durable the moment they return.
func (r *Repository) Observations() *ObservationLog {
	return r.observations
}

// Engine exposes the reconciliation engine for carry-over and templates.
func (r *Repository) Engine() *reconcile.Engine {
	return r.engine
}

// LoadDay loads (or creates) the goals and sidecar for a date and
// reconciles them. The session is cached; loading a different date
// replaces it.
func (r *Repository) LoadDay(date domain.Date) (*DaySession, error) {
	if r.session != nil && r.session.Date == date {
		return r.session, nil
	}

	goals, warnings, err := r.goals.LoadOrCreate(date)
	if err != nil {
		return nil, err
	}
	meta, err := r.meta.LoadOrCreate(date, goals, r.clk.Now().UTC())
	if err != nil {
		return nil, err
	}
	r.engine.Reconcile(meta, goals)

	r.session = &DaySession{Date: date, Goals: goals, Meta: meta, Warnings: warnings}
	return r.session, nil
}

// Vision returns the cached vision document, loading it on first use.
func (r *Repository) Vision() (*domain.FiveYearVision, error) {
	if r.vision == nil {
		v, err := r.visionStore.Load()
		if err != nil {
			return nil, err
		}
		r.vision = v
	}
	return r.vision, nil
}

// Templates returns the cached templates document, loading it on first use.
func (r *Repository) Templates() (*domain.ActionTemplates, error) {
	if r.templates == nil {
		t, err := r.tmplStore.Load()
		if err != nil {
			return nil, err
		}
		r.templates = t
	}
	return r.templates, nil
}

// Objectives returns the cached objectives document, loading it on first use.
func (r *Repository) Objectives() (*domain.ObjectivesData, error) {
	if r.objectives == nil {
		d, err := r.objStore.Load()
		if err != nil {
			return nil, err
		}
		r.objectives = d
	}
	return r.objectives, nil
}

// Indicators returns the cached indicators document, loading it on first use.
func (r *Repository) Indicators() (*domain.IndicatorsData, error) {
	if r.indicators == nil {
		d, err := r.indStore.Load()
		if err != nil {
			return nil, err
		}
		r.indicators = d
	}
	return r.indicators, nil
}

// MarkDirty records that a component has unsaved changes.
func (r *Repository) MarkDirty(components ...Component) {
	for _, c := range components {
		r.dirty[c] = true
	}
}

// Dirty reports whether a component has unsaved changes.
func (r *Repository) Dirty(c Component) bool {
	return r.dirty[c]
}

// SaveError pairs a component with the failure that kept it from saving.
type SaveError struct {
	Component Component
	Err       error
}

func (e SaveError) Error() string {
	return string(e.Component) + ": " + e.Err.Error()
}

// SaveAll writes every dirty component. A failure in one store does not
// stop the others; the returned slice carries one entry per failed store,
// ordered by component name, and is nil when everything saved. Components
// that save successfully are removed from the dirty set, so a retry only
// rewrites what failed.
func (r *Repository) SaveAll() []SaveError {
	var failures []SaveError
	save := func(c Component, fn func() error) {
		if !r.dirty[c] {
			return
		}
		if err := fn(); err != nil {
			failures = append(failures, SaveError{Component: c, Err: err})
			return
		}
		delete(r.dirty, c)
	}

	if r.session != nil {
		save(ComponentGoals, func() error {
			_, err := r.goals.Save(r.session.Goals)
			return err
		})
		save(ComponentMeta, func() error {
			return r.meta.Save(r.session.Date, r.session.Meta)
		})
	}
	if r.vision != nil {
		save(ComponentVision, func() error { return r.visionStore.Save(r.vision) })
	}
	if r.templates != nil {
		save(ComponentTemplates, func() error { return r.tmplStore.Save(r.templates) })
	}
	if r.objectives != nil {
		save(ComponentObjectives, func() error { return r.objStore.Save(r.objectives) })
	}
	if r.indicators != nil {
		save(ComponentIndicators, func() error { return r.indStore.Save(r.indicators) })
	}

	sort.Slice(failures, func(i, j int) bool {
		return failures[i].Component < failures[j].Component
	})
	return failures
}
