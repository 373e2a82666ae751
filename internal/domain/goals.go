package domain

// DailyGoals is one day of the tracker: the date, an optional user-assigned
// day counter, and exactly three outcomes in the fixed order Work, Health,
// Family. There is exactly one DailyGoals per date.
type DailyGoals struct {
	// Date identifies the day. One DailyGoals exists per date.
	Date Date `json:"date"`

	// DayNumber is the optional user-assigned streak/day counter shown in
	// the Markdown header as "Day N".
	DayNumber int `json:"day_number,omitempty"`

	// Work is the work outcome.
	Work Outcome `json:"work"`

	// Health is the health outcome.
	Health Outcome `json:"health"`

	// Family is the family outcome.
	Family Outcome `json:"family"`
}

// NewDailyGoals creates a day with three default outcomes.
func NewDailyGoals(date Date) *DailyGoals {
	return &DailyGoals{
		Date:   date,
		Work:   NewOutcome(OutcomeWork),
		Health: NewOutcome(OutcomeHealth),
		Family: NewOutcome(OutcomeFamily),
	}
}

// Outcomes returns pointers to the three outcomes in fixed display order.
func (g *DailyGoals) Outcomes() [3]*Outcome {
	return [3]*Outcome{&g.Work, &g.Health, &g.Family}
}

// Outcome returns a pointer to the outcome of the given type.
// The type set is closed, so an unknown value returns nil.
func (g *DailyGoals) Outcome(t OutcomeType) *Outcome {
	switch t {
	case OutcomeWork:
		return &g.Work
	case OutcomeHealth:
		return &g.Health
	case OutcomeFamily:
		return &g.Family
	default:
		return nil
	}
}

// OutcomeStat is one outcome's completion count for the day.
type OutcomeStat struct {
	// Outcome names the life area.
	Outcome OutcomeType `json:"outcome"`

	// Done is the number of completed actions.
	Done int `json:"done"`

	// Total is the number of action slots.
	Total int `json:"total"`
}

// Percentage returns done*100/total with integer division, 0 when empty.
func (s OutcomeStat) Percentage() int {
	if s.Total == 0 {
		return 0
	}
	return s.Done * 100 / s.Total
}

// CompletionStats summarizes the day's progress across all outcomes.
type CompletionStats struct {
	// Completed is the number of completed actions across all outcomes.
	Completed int `json:"completed"`

	// Total is the number of action slots across all outcomes.
	Total int `json:"total"`

	// Percentage is Completed*100/Total with integer division, 0 when empty.
	Percentage int `json:"percentage"`

	// ByOutcome holds the per-outcome triples in fixed display order.
	ByOutcome [3]OutcomeStat `json:"by_outcome"`

	// Best names the outcome with the highest completion percentage.
	// Ties resolve in display order: Work, then Health, then Family.
	Best OutcomeType `json:"best"`

	// NeedsAttention lists outcomes under 50% with at least one action.
	NeedsAttention []OutcomeType `json:"needs_attention,omitempty"`
}

// Stats computes the day's completion statistics.
func (g *DailyGoals) Stats() CompletionStats {
	var stats CompletionStats
	for i, o := range g.Outcomes() {
		s := OutcomeStat{
			Outcome: o.OutcomeType,
			Done:    o.CountCompleted(),
			Total:   len(o.Actions),
		}
		stats.ByOutcome[i] = s
		stats.Completed += s.Done
		stats.Total += s.Total
	}
	if stats.Total > 0 {
		stats.Percentage = stats.Completed * 100 / stats.Total
	}

	best := stats.ByOutcome[0]
	for _, s := range stats.ByOutcome[1:] {
		// Strict comparison keeps the earlier outcome on ties.
		if s.Percentage() > best.Percentage() {
			best = s
		}
	}
	stats.Best = best.Outcome

	for _, s := range stats.ByOutcome {
		if s.Total > 0 && s.Percentage() < 50 {
			stats.NeedsAttention = append(stats.NeedsAttention, s.Outcome)
		}
	}
	return stats
}

// HasCompletedAction reports whether at least one action anywhere in the day
// is completed and has non-empty text. This is the condition the streak walk
// checks for each historical day.
func (g *DailyGoals) HasCompletedAction() bool {
	for _, o := range g.Outcomes() {
		for i := range o.Actions {
			if o.Actions[i].Completed && o.Actions[i].Text != "" {
				return true
			}
		}
	}
	return false
}
