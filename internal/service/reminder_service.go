package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskpilot/internal/model"
	"taskpilot/internal/notify"
	"taskpilot/internal/schedule"
)

const reminderTitle = "Task Reminder"
const summaryTitle = "Daily Agenda"

// ReminderService bridges wall-clock time to task-collection mutation. Each
// tick fires due reminders and spawns successors of completed recurring
// tasks, applying all changes as one snapshot replacement.
type ReminderService struct {
	tasks    *TaskService
	notifier notify.Notifier
	clock    Clock
}

func NewReminderService(tasks *TaskService, notifier notify.Notifier, clock Clock) *ReminderService {
	return &ReminderService{tasks: tasks, notifier: notifier, clock: clock}
}

// RunTick performs one scheduler pass. A task that cannot be evaluated
// (corrupted date or time in storage) is logged and skipped; the tick
// continues for the rest of the collection.
func (s *ReminderService) RunTick(ctx context.Context) error {
	now := s.clock.Now()

	return s.tasks.Update(ctx, func(tasks []model.Task) []model.Task {
		// Reminder pass. The notified flag only moves false to true here;
		// an edit is the one thing that re-arms it.
		for i := range tasks {
			t := &tasks[i]
			if t.Completed || t.Notified {
				continue
			}
			due, err := schedule.IsUpcoming(t.Date, t.Time, t.ReminderMinutes, now)
			if err != nil {
				log.Printf("skip reminder check for task %s: %v", t.ID, err)
				continue
			}
			if !due {
				continue
			}
			if err := s.notifier.Notify(reminderTitle, reminderBody(*t), ""); err != nil {
				log.Printf("notify task %s: %v", t.ID, err)
			}
			t.Notified = true
		}

		// Recurrence pass. Candidates come from the tick-start snapshot;
		// the existence check runs against the working slice, so a
		// successor appended earlier in this same pass counts.
		out := tasks
		for _, t := range tasks {
			if !schedule.ShouldSpawnSuccessor(t, now) {
				continue
			}
			nextDate, err := schedule.NextDate(t.Date, t.Recurring)
			if err != nil {
				log.Printf("skip successor for task %s: %v", t.ID, err)
				continue
			}
			if successorExists(out, t, nextDate) {
				continue
			}

			succ := t
			succ.ID = uuid.NewString()
			succ.Date = nextDate
			succ.Completed = false
			succ.Notified = false
			succ.CreatedAt = now
			if succ.OriginalDate == "" {
				succ.OriginalDate = t.Date
			}
			out = append(out, succ)
		}
		return out
	})
}

// successorExists reports whether the collection already holds the next
// occurrence of src: same title, time and policy on the successor date.
func successorExists(tasks []model.Task, src model.Task, nextDate string) bool {
	for _, t := range tasks {
		if t.Title == src.Title && t.Date == nextDate && t.Time == src.Time && t.Recurring == src.Recurring {
			return true
		}
	}
	return false
}

func reminderBody(t model.Task) string {
	body := fmt.Sprintf("%s starts in %d minutes", t.Title, t.ReminderMinutes)
	if t.EndTime != "" {
		body += fmt.Sprintf(" until %s", t.EndTime)
	}
	return body
}

// DailySummary builds a text agenda: today's pending tasks in start order,
// then everything overdue from earlier days.
func (s *ReminderService) DailySummary(ctx context.Context) (string, error) {
	now := s.clock.Now()
	tasks, err := s.tasks.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	today := now.Format(schedule.DateLayout)
	var dueToday []model.Task
	var overdue []model.Task

	for _, t := range tasks {
		if t.Completed {
			continue
		}
		if t.Date == today {
			dueToday = append(dueToday, t)
			continue
		}
		over, err := schedule.IsOverdue(t.Date, t.Time, now)
		if err != nil {
			log.Printf("skip summary entry for task %s: %v", t.ID, err)
			continue
		}
		if over {
			overdue = append(overdue, t)
		}
	}

	sort.SliceStable(dueToday, func(i, j int) bool {
		return dueToday[i].Time < dueToday[j].Time
	})
	sort.SliceStable(overdue, func(i, j int) bool {
		if overdue[i].Date != overdue[j].Date {
			return overdue[i].Date < overdue[j].Date
		}
		return overdue[i].Time < overdue[j].Time
	})

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("📋 Agenda for %s\n\n", now.Format("Mon, Jan 2")))

	builder.WriteString("⏰ Today\n")
	if len(dueToday) == 0 {
		builder.WriteString("— nothing scheduled\n")
	} else {
		for _, t := range dueToday {
			builder.WriteString(formatAgendaLine(t))
		}
	}

	builder.WriteString("\n⚠️ Overdue\n")
	if len(overdue) == 0 {
		builder.WriteString("— all caught up\n")
	} else {
		for _, t := range overdue {
			builder.WriteString(formatOverdueLine(t, now))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

// SendDailySummary delivers the agenda through the notifier.
func (s *ReminderService) SendDailySummary(ctx context.Context) error {
	summary, err := s.DailySummary(ctx)
	if err != nil {
		return fmt.Errorf("build daily summary: %w", err)
	}
	if err := s.notifier.Notify(summaryTitle, summary, ""); err != nil {
		return fmt.Errorf("send daily summary: %w", err)
	}
	return nil
}

func formatAgendaLine(t model.Task) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("• %s at %s", strings.TrimSpace(t.Title), schedule.FormatTime(t.Time)))
	if t.EndTime != "" {
		sb.WriteString(fmt.Sprintf(" until %s", schedule.FormatTime(t.EndTime)))
	}
	if t.Recurring.IsRepeating() {
		sb.WriteString(fmt.Sprintf(" (%s)", t.Recurring))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func formatOverdueLine(t model.Task, now time.Time) string {
	return fmt.Sprintf("• %s — %s %s\n",
		strings.TrimSpace(t.Title), schedule.FormatDate(t.Date, now), schedule.FormatTime(t.Time))
}
