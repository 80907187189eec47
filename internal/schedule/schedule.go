// Package schedule holds the pure date and recurrence rules the reminder
// loop is built on. Nothing here touches storage or the clock; callers pass
// the current instant in.
package schedule

import (
	"fmt"
	"time"

	"taskpilot/internal/model"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// At combines a calendar date and a time of day into an instant, interpreted
// as wall-clock time in loc. All predicates in this package use the same
// interpretation, so a task never shifts between them.
func At(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	instant, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+timeOfDay, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse task datetime %q %q: %w", date, timeOfDay, err)
	}
	return instant, nil
}

// IsOverdue reports whether the task instant lies strictly before now.
func IsOverdue(date, timeOfDay string, now time.Time) (bool, error) {
	instant, err := At(date, timeOfDay, now.Location())
	if err != nil {
		return false, err
	}
	return instant.Before(now), nil
}

// IsUpcoming reports whether now falls inside the reminder window
// [instant-reminderMinutes, instant). The window is half-open: at the task
// instant itself the task is no longer upcoming, it is due.
func IsUpcoming(date, timeOfDay string, reminderMinutes int, now time.Time) (bool, error) {
	instant, err := At(date, timeOfDay, now.Location())
	if err != nil {
		return false, err
	}
	windowStart := instant.Add(-time.Duration(reminderMinutes) * time.Minute)
	return !now.Before(windowStart) && now.Before(instant), nil
}

// NextDate computes the calendar date of the occurrence after date for a
// repeating policy. Monthly additions follow time.Time.AddDate
// normalization: Jan 31 plus one month rolls over into early March rather
// than clamping to the end of February.
func NextDate(date string, recurring model.Recurrence) (string, error) {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("parse task date %q: %w", date, err)
	}

	switch recurring {
	case model.RecurDaily:
		day = day.AddDate(0, 0, 1)
	case model.RecurWeekly:
		day = day.AddDate(0, 0, 7)
	case model.RecurMonthly:
		day = day.AddDate(0, 1, 0)
	case model.RecurNone:
		return "", fmt.Errorf("task does not recur")
	default:
		return "", fmt.Errorf("unknown recurrence %q", recurring)
	}

	return day.Format(DateLayout), nil
}

// ShouldSpawnSuccessor reports whether a task is due to generate its next
// occurrence: it repeats, it has been completed, and its date is today or
// earlier. Time of day is ignored. A task with an unparseable date is never
// due; the caller treats it as skipped.
func ShouldSpawnSuccessor(t model.Task, now time.Time) bool {
	if !t.Recurring.IsRepeating() || !t.Completed {
		return false
	}

	day, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return false
	}

	year, month, dom := now.Date()
	today := time.Date(year, month, dom, 0, 0, 0, 0, time.UTC)
	return !day.After(today)
}
