package domain

import (
	"sort"
	"time"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/errors"
)

// ActionTemplates maps template names to ordered lists of reusable action
// texts. A template holds 1-5 texts of at most 500 codepoints each.
//
// Example JSON representation:
//
//	{
//	    "templates": {
//	        "Morning Flow": ["Hydrate", "Stretch", "Plan day"]
//	    },
//	    "created": "2025-01-01",
//	    "modified": "2025-01-15"
//	}
type ActionTemplates struct {
	// Templates maps template name to its ordered action texts.
	Templates map[string][]string `json:"templates"`

	// Created is the date the template document was first written.
	Created Date `json:"created"`

	// Modified is the date of the last edit.
	Modified Date `json:"modified"`
}

// NewActionTemplates creates an empty template set stamped with today's date.
func NewActionTemplates() *ActionTemplates {
	today := DateOf(time.Now())
	return &ActionTemplates{
		Templates: make(map[string][]string),
		Created:   today,
		Modified:  today,
	}
}

// Add inserts or replaces a template. The action list is clamped to five
// entries and each entry to 500 codepoints; truncated reports whether any
// clamping occurred. An empty name or empty list is rejected.
func (t *ActionTemplates) Add(name string, actions []string) (truncated bool, err error) {
	if name == "" {
		return false, errors.Wrap(errors.ErrEmptyValue, "template name")
	}
	if len(actions) == 0 {
		return false, errors.Wrapf(errors.ErrTemplateEmpty, "%q", name)
	}
	if len(actions) > constants.MaxTemplateActions {
		actions = actions[:constants.MaxTemplateActions]
		truncated = true
	}
	clamped := make([]string, len(actions))
	for i, text := range actions {
		var cut bool
		clamped[i], cut = ClampLength(text, constants.MaxActionLength)
		truncated = truncated || cut
	}
	if t.Templates == nil {
		t.Templates = make(map[string][]string)
	}
	t.Templates[name] = clamped
	t.Modified = DateOf(time.Now())
	return truncated, nil
}

// Remove deletes a template by name and reports whether it existed.
func (t *ActionTemplates) Remove(name string) bool {
	if _, ok := t.Templates[name]; !ok {
		return false
	}
	delete(t.Templates, name)
	t.Modified = DateOf(time.Now())
	return true
}

// Get returns the action texts for the named template.
// Returns ErrTemplateNotFound if no such template exists.
func (t *ActionTemplates) Get(name string) ([]string, error) {
	actions, ok := t.Templates[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrTemplateNotFound, "%q", name)
	}
	return actions, nil
}

// Names returns all template names sorted alphabetically.
func (t *ActionTemplates) Names() []string {
	names := make([]string, 0, len(t.Templates))
	for name := range t.Templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
