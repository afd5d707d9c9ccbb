package filter

import "dbhook-notifier/internal/models"

// Decision is the outcome of matching a change event against a rule.
type Decision int

const (
	Ignore Decision = iota
	HandleInsert
	HandleOnboarding
)

func (d Decision) String() string {
	switch d {
	case HandleInsert:
		return "insert"
	case HandleOnboarding:
		return "onboarding"
	default:
		return "ignore"
	}
}

// Rule is the decision table for one notifier: which schema.table it watches,
// whether inserts are handled, and which boolean field marks an onboarding
// transition on updates. An empty OnboardingField disables the update path.
type Rule struct {
	Schema          string
	Table           string
	Inserts         bool
	OnboardingField string
}

// Decide classifies an event. An onboarding update matches only when the
// field is true in the new row and not true in the old one.
func (r Rule) Decide(ev *models.ChangeEvent) Decision {
	if ev.Schema != r.Schema || ev.Table != r.Table {
		return Ignore
	}

	switch ev.Type {
	case models.OpInsert:
		if r.Inserts {
			return HandleInsert
		}
	case models.OpUpdate:
		if r.OnboardingField != "" &&
			ev.Record.Bool(r.OnboardingField) &&
			!ev.OldRecord.Bool(r.OnboardingField) {
			return HandleOnboarding
		}
	}

	return Ignore
}
