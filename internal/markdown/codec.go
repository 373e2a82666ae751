// Package markdown implements the bijective mapping between a day's goals
// and its human-editable Markdown file.
//
// The canonical document looks like:
//
//	# January 15, 2025 - Day 12
//
//	## Work (Goal: Ship v1)
//	- [x] Call investors
//	- [ ] Prep deck
//
//	## Health
//	- [ ] Morning run
//
//	## Family
//	- [ ] Call parents
//
// Only completion round-trips through Markdown; the five-state status and
// other structured metadata live in the day-meta sidecar. Serialization is
// deterministic: equal goals produce byte-identical documents.
package markdown

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mrz1836/focusfive/internal/constants"
	"github.com/mrz1836/focusfive/internal/domain"
	"github.com/mrz1836/focusfive/internal/errors"
)

// headerSearchLines is how many leading lines are scanned for a date header.
const headerSearchLines = 10

// Patterns for the line grammar. Bounded alternatives only; no nested
// quantifiers, so matching stays linear in input length.
var (
	dateHeaderRe = regexp.MustCompile(`^#\s*([A-Za-z]+)\s+(\d{1,2}),\s*(\d{4})`)
	dayNumberRe  = regexp.MustCompile(`Day\s+(\d+)`)
	goalRe       = regexp.MustCompile(`\(Goal:\s*([^)]+)\)`)
)

// monthsByName maps lowercase full month names and their 3-letter
// abbreviations to month values. May has no abbreviation distinct from its
// full name.
var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Parse decodes a Markdown document into a day's goals. Warnings carry
// non-fatal problems (discarded excess actions, clamped texts); the caller
// decides whether to log them.
//
// Actions constructed here carry freshly generated ids and timestamps.
// Stable identity across process restarts is the sidecar's responsibility.
func Parse(data []byte) (*domain.DailyGoals, []string, error) {
	if len(data) == 0 {
		return nil, nil, errors.ErrEmptyDocument
	}
	if !utf8.Valid(data) {
		return nil, nil, errors.ErrEncodingInvalid
	}

	lines := strings.Split(string(data), "\n")

	headerIndex, date, err := findDateHeader(lines)
	if err != nil {
		return nil, nil, err
	}

	goals := domain.NewDailyGoals(date)
	if m := dayNumberRe.FindStringSubmatch(lines[headerIndex]); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			goals.DayNumber = n
		}
	}

	var warnings []string
	var current *domain.Outcome
	var lastAction *domain.Action
	actionIndex := 0

	for lineNum := headerIndex + 1; lineNum < len(lines); lineNum++ {
		line := strings.TrimSpace(lines[lineNum])
		if line == "" {
			continue
		}

		if outcome := matchOutcomeHeader(goals, line); outcome != nil {
			outcome.Goal = extractGoal(line)
			current = outcome
			lastAction = nil
			actionIndex = 0
			continue
		}

		if completed, text, ok := parseActionLine(line); ok {
			if current == nil {
				continue // action line before any outcome header
			}
			if actionIndex >= constants.MaxActionsPerOutcome {
				warnings = append(warnings, fmt.Sprintf(
					"line %d: more than %d actions for %s, ignoring: %s",
					lineNum+1, constants.MaxActionsPerOutcome, current.OutcomeType, line))
				continue
			}

			action, truncated := domain.ActionFromMarkdown(text, completed)
			if truncated {
				warnings = append(warnings, fmt.Sprintf(
					"line %d: action text truncated to %d characters", lineNum+1, constants.MaxActionLength))
			}
			if actionIndex < len(current.Actions) {
				current.Actions[actionIndex] = action
			} else {
				current.Actions = append(current.Actions, action)
			}
			lastAction = &current.Actions[actionIndex]
			actionIndex++
			continue
		}

		if ids, ok := parseObjectiveLine(line); ok {
			if lastAction != nil {
				for _, id := range ids {
					lastAction.LinkObjective(id)
				}
			}
			continue
		}

		// Unrecognized non-blank lines are ignored.
	}

	return goals, warnings, nil
}

// findDateHeader scans the first lines of the document for a date header and
// returns its index and the parsed date.
func findDateHeader(lines []string) (int, domain.Date, error) {
	limit := len(lines)
	if limit > headerSearchLines {
		limit = headerSearchLines
	}
	var lastErr error
	for i := 0; i < limit; i++ {
		m := dateHeaderRe.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		date, err := parseHeaderDate(m[1], m[2], m[3])
		if err != nil {
			// A header-shaped line with a bad month or impossible date is
			// an error worth surfacing over the generic "no header".
			lastErr = err
			continue
		}
		return i, date, nil
	}
	if lastErr != nil {
		return 0, domain.Date{}, lastErr
	}
	return 0, domain.Date{}, errors.Wrapf(errors.ErrNoDateHeader,
		"expected '# Month D, YYYY' in first %d lines", headerSearchLines)
}

// parseHeaderDate converts captured month/day/year strings into a Date.
func parseHeaderDate(monthStr, dayStr, yearStr string) (domain.Date, error) {
	month, ok := monthsByName[strings.ToLower(monthStr)]
	if !ok {
		return domain.Date{}, errors.Wrapf(errors.ErrInvalidMonth, "%q", monthStr)
	}
	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return domain.Date{}, errors.Wrapf(errors.ErrInvalidDate, "day %q", dayStr)
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return domain.Date{}, errors.Wrapf(errors.ErrInvalidDate, "year %q", yearStr)
	}
	return domain.NewDate(year, month, day)
}

// matchOutcomeHeader returns the outcome a "## ..." line selects, or nil.
// Matching is case-insensitive on the outcome name prefix.
func matchOutcomeHeader(goals *domain.DailyGoals, line string) *domain.Outcome {
	lower := strings.ToLower(line)
	switch {
	case strings.HasPrefix(lower, "## work"):
		return &goals.Work
	case strings.HasPrefix(lower, "## health"):
		return &goals.Health
	case strings.HasPrefix(lower, "## family"):
		return &goals.Family
	default:
		return nil
	}
}

// extractGoal pulls the goal text out of a "(Goal: ...)" suffix, if present.
// The capture stops at the first ')' so goal content may not contain an
// unescaped closing parenthesis.
func extractGoal(line string) string {
	if m := goalRe.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// parseActionLine decodes a "- [x] text" line. ok is false for lines that
// are not action lines at all.
func parseActionLine(line string) (completed bool, text string, ok bool) {
	switch {
	case strings.HasPrefix(line, "- [x]"), strings.HasPrefix(line, "- [X]"):
		return true, strings.TrimSpace(line[5:]), true
	case strings.HasPrefix(line, "- [ ]"):
		return false, strings.TrimSpace(line[5:]), true
	default:
		return false, "", false
	}
}

// parseObjectiveLine decodes the indented objective metadata that may follow
// an action line: "objective: <id>" or "objectives: <id>, <id>".
func parseObjectiveLine(line string) ([]string, bool) {
	var rest string
	switch {
	case strings.HasPrefix(line, "objectives:"):
		rest = line[len("objectives:"):]
	case strings.HasPrefix(line, "objective:"):
		rest = line[len("objective:"):]
	default:
		return nil, false
	}
	var ids []string
	for _, part := range strings.Split(rest, ",") {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, true
}

// Serialize encodes a day's goals as the canonical Markdown document:
// Unix newlines, no trailing whitespace, one blank line between outcome
// sections, one trailing newline after the final section.
func Serialize(goals *domain.DailyGoals) []byte {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(headerDate(goals.Date))
	if goals.DayNumber > 0 {
		fmt.Fprintf(&b, " - Day %d", goals.DayNumber)
	}
	b.WriteString("\n\n")

	outcomes := goals.Outcomes()
	for i, o := range outcomes {
		writeOutcomeSection(&b, o)
		if i < len(outcomes)-1 {
			b.WriteString("\n")
		}
	}

	return []byte(b.String())
}

// headerDate formats a date as "January 15, 2025".
func headerDate(d domain.Date) string {
	return d.Time().Format("January 2, 2006")
}

// writeOutcomeSection emits one "## Outcome" block.
func writeOutcomeSection(b *strings.Builder, o *domain.Outcome) {
	b.WriteString("## ")
	b.WriteString(o.OutcomeType.Display())
	if o.Goal != "" {
		fmt.Fprintf(b, " (Goal: %s)", o.Goal)
	}
	b.WriteString("\n")

	for i := range o.Actions {
		a := &o.Actions[i]
		marker := "[ ]"
		if a.Completed {
			marker = "[x]"
		}
		b.WriteString("- ")
		b.WriteString(marker)
		if a.Text != "" {
			b.WriteString(" ")
			b.WriteString(a.Text)
		}
		b.WriteString("\n")

		if ids := a.AllObjectiveIDs(); len(ids) > 0 {
			if len(ids) == 1 {
				// Single id keeps the legacy "objective:" key.
				fmt.Fprintf(b, "  objective: %s\n", ids[0])
			} else {
				fmt.Fprintf(b, "  objectives: %s\n", strings.Join(ids, ", "))
			}
		}
	}
}
