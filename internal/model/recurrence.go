package model

import "fmt"

// Recurrence is the repeat policy of a task.
type Recurrence string

const (
	RecurNone    Recurrence = "none"
	RecurDaily   Recurrence = "daily"
	RecurWeekly  Recurrence = "weekly"
	RecurMonthly Recurrence = "monthly"
)

// ParseRecurrence maps a stored or submitted value to a Recurrence.
func ParseRecurrence(raw string) (Recurrence, error) {
	switch Recurrence(raw) {
	case RecurNone, RecurDaily, RecurWeekly, RecurMonthly:
		return Recurrence(raw), nil
	case "":
		return RecurNone, nil
	default:
		return RecurNone, fmt.Errorf("unknown recurrence %q", raw)
	}
}

// Valid reports whether r is one of the four known policies.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurNone, RecurDaily, RecurWeekly, RecurMonthly:
		return true
	}
	return false
}

// IsRepeating reports whether completing a task with this policy should
// schedule a next occurrence.
func (r Recurrence) IsRepeating() bool {
	return r.Valid() && r != RecurNone
}
