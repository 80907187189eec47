package service

import (
	"context"
	"time"

	"taskpilot/internal/model"
)

// memStore is an in-memory Store double with snapshot semantics: Load hands
// out a copy, Replace keeps a copy.
type memStore struct {
	tasks   []model.Task
	loadErr error
}

func (m *memStore) Load(_ context.Context) ([]model.Task, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]model.Task(nil), m.tasks...), nil
}

func (m *memStore) Replace(_ context.Context, tasks []model.Task) error {
	m.tasks = append([]model.Task(nil), tasks...)
	return nil
}

func (m *memStore) byID(id string) (model.Task, bool) {
	for _, t := range m.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// fakeClock returns a settable instant.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

// recordingNotifier captures every notification; err, when set, is returned
// from each call.
type recordingNotifier struct {
	titles []string
	bodies []string
	err    error
}

func (n *recordingNotifier) Notify(title, body, _ string) error {
	n.titles = append(n.titles, title)
	n.bodies = append(n.bodies, body)
	return n.err
}
