package domain

// RitualPhase is the derived daily mode based on the wall-clock hour. The
// surrounding CLI passes the current hour; the phase determines whether
// yesterday's context (Morning) or the day's completion statistics (Evening)
// should be pre-loaded at startup.
type RitualPhase string

// Ritual phase constants.
const (
	// PhaseMorning covers hours 5 through 11: set intentions.
	PhaseMorning RitualPhase = "morning"

	// PhaseEvening covers hours 17 through 22: reflect and review.
	PhaseEvening RitualPhase = "evening"

	// PhaseNeutral covers all other hours.
	PhaseNeutral RitualPhase = "neutral"
)

// PhaseForHour derives the ritual phase from an hour in the range 0-23.
func PhaseForHour(hour int) RitualPhase {
	switch {
	case hour >= 5 && hour <= 11:
		return PhaseMorning
	case hour >= 17 && hour <= 22:
		return PhaseEvening
	default:
		return PhaseNeutral
	}
}

// Greeting returns the banner message for the phase.
func (p RitualPhase) Greeting() string {
	switch p {
	case PhaseMorning:
		return "Good Morning! Time to set today's intentions"
	case PhaseEvening:
		return "Evening Review - Reflect on your day"
	default:
		return "FocusFive - Daily Goal Tracker"
	}
}
