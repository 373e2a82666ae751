package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mrz1836/focusfive/internal/constants"
)

// Review is a periodic retrospective over a span of days.
//
// Example JSON representation (wrapped in ReviewData on disk):
//
//	{
//	    "id": "d4e7...",
//	    "period": "2025-W03",
//	    "start": "2025-01-13",
//	    "end": "2025-01-19",
//	    "wins": ["Shipped v1"],
//	    "challenges": ["Slept badly"],
//	    "learnings": ["Batch the calls"],
//	    "next_actions": ["Plan sprint"],
//	    "created": "2025-01-19T20:00:00Z"
//	}
type Review struct {
	// ID is the stable unique identifier.
	ID string `json:"id"`

	// Period is the review period id: "YYYY-Www" for an ISO week or
	// "YYYY-MM" for a month. It is also the review's file stem.
	Period string `json:"period"`

	// Start is the first date the review covers.
	Start Date `json:"start"`

	// End is the last date the review covers.
	End Date `json:"end"`

	// Wins lists what went well.
	Wins []string `json:"wins,omitempty"`

	// Challenges lists what was hard.
	Challenges []string `json:"challenges,omitempty"`

	// Learnings lists takeaways.
	Learnings []string `json:"learnings,omitempty"`

	// NextActions lists follow-ups for the coming period.
	NextActions []string `json:"next_actions,omitempty"`

	// Created is when the review was written (UTC).
	Created time.Time `json:"created"`
}

// ReviewData is the versioned on-disk wrapper for a review.
type ReviewData struct {
	// Version is the schema version of this document.
	Version int `json:"version"`

	// Review is the wrapped review.
	Review Review `json:"review"`
}

// WrapReview wraps a review in the current schema version.
func WrapReview(r Review) ReviewData {
	return ReviewData{Version: constants.ReviewSchemaVersion, Review: r}
}

// WeekPeriodID formats an ISO year/week pair as "YYYY-Www".
func WeekPeriodID(year, week int) string {
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthPeriodID formats a year/month pair as "YYYY-MM".
func MonthPeriodID(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// NewWeeklyReview creates a review covering the ISO week containing the
// given date.
func NewWeeklyReview(d Date) Review {
	t := d.Time()
	year, week := t.ISOWeek()

	// Walk back to Monday of the ISO week.
	start := t
	for start.Weekday() != time.Monday {
		start = start.AddDate(0, 0, -1)
	}
	end := start.AddDate(0, 0, 6)

	return Review{
		ID:      uuid.NewString(),
		Period:  WeekPeriodID(year, week),
		Start:   DateOf(start),
		End:     DateOf(end),
		Created: time.Now().UTC(),
	}
}
