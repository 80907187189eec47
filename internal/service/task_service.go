package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskpilot/internal/model"
	"taskpilot/internal/schedule"
)

// ErrNotFound is returned when an operation names a task id that is not in
// the collection.
var ErrNotFound = errors.New("task not found")

// Store is the durable home of the task collection.
type Store interface {
	Load(ctx context.Context) ([]model.Task, error)
	Replace(ctx context.Context, tasks []model.Task) error
}

// TaskInput is the payload a form submits to create or edit a task.
type TaskInput struct {
	Title           string
	Description     string
	Date            string
	Time            string
	EndTime         string
	ReminderMinutes int
	Recurring       model.Recurrence
}

// Validate enforces the form contract: title present, date and time
// well-formed, end time strictly after start, reminder non-negative,
// recurrence one of the known policies.
func (in TaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title is required")
	}
	start, err := schedule.At(in.Date, in.Time, time.Local)
	if err != nil {
		return err
	}
	if in.EndTime != "" {
		end, err := schedule.At(in.Date, in.EndTime, time.Local)
		if err != nil {
			return err
		}
		if !end.After(start) {
			return fmt.Errorf("end time %s must be after start time %s", in.EndTime, in.Time)
		}
	}
	if in.ReminderMinutes < 0 {
		return fmt.Errorf("reminder minutes must not be negative")
	}
	if !in.Recurring.Valid() {
		return fmt.Errorf("unknown recurrence %q", in.Recurring)
	}
	return nil
}

// TaskService owns every mutation of the task collection. All writes go
// through Update, which re-reads the latest snapshot under the lock before
// applying, so a user action and a scheduler tick cannot clobber each other
// with stale state.
type TaskService struct {
	store Store
	clock Clock
	mu    sync.Mutex
}

func NewTaskService(store Store, clock Clock) *TaskService {
	return &TaskService{store: store, clock: clock}
}

// Snapshot returns the current collection for read-only use.
func (s *TaskService) Snapshot(ctx context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Load(ctx)
}

// Update runs one atomic read-modify-write cycle: load the latest
// collection, apply, persist the result as a whole.
func (s *TaskService) Update(ctx context.Context, apply func(tasks []model.Task) []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	return s.store.Replace(ctx, apply(tasks))
}

// Create validates the input and appends a fresh task.
func (s *TaskService) Create(ctx context.Context, in TaskInput) (*model.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	task := model.Task{
		ID:              uuid.NewString(),
		Title:           in.Title,
		Description:     in.Description,
		Date:            in.Date,
		Time:            in.Time,
		EndTime:         in.EndTime,
		ReminderMinutes: in.ReminderMinutes,
		Recurring:       in.Recurring,
		CreatedAt:       s.clock.Now(),
	}

	if err := s.Update(ctx, func(tasks []model.Task) []model.Task {
		return append(tasks, task)
	}); err != nil {
		return nil, err
	}
	return &task, nil
}

// Edit replaces the editable fields of an existing task and clears its
// notified flag, so a changed time re-arms the reminder.
func (s *TaskService) Edit(ctx context.Context, id string, in TaskInput) (*model.Task, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var edited *model.Task
	if err := s.Update(ctx, func(tasks []model.Task) []model.Task {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}
			t := &tasks[i]
			t.Title = in.Title
			t.Description = in.Description
			t.Date = in.Date
			t.Time = in.Time
			t.EndTime = in.EndTime
			t.ReminderMinutes = in.ReminderMinutes
			t.Recurring = in.Recurring
			t.Notified = false
			copied := *t
			edited = &copied
			break
		}
		return tasks
	}); err != nil {
		return nil, err
	}
	if edited == nil {
		return nil, fmt.Errorf("edit task %s: %w", id, ErrNotFound)
	}
	return edited, nil
}

// ToggleComplete flips the completion state of a task.
func (s *TaskService) ToggleComplete(ctx context.Context, id string) (*model.Task, error) {
	var toggled *model.Task
	if err := s.Update(ctx, func(tasks []model.Task) []model.Task {
		for i := range tasks {
			if tasks[i].ID != id {
				continue
			}
			tasks[i].Completed = !tasks[i].Completed
			copied := tasks[i]
			toggled = &copied
			break
		}
		return tasks
	}); err != nil {
		return nil, err
	}
	if toggled == nil {
		return nil, fmt.Errorf("toggle task %s: %w", id, ErrNotFound)
	}
	return toggled, nil
}

// Delete removes a task completely. Recurring chains are not followed: only
// the named instance goes away.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.Update(ctx, func(tasks []model.Task) []model.Task {
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		return kept
	})
}
