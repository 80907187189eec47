// Package notify delivers user notifications. Delivery is best effort: the
// reminder loop logs failures and moves on, it never retries.
package notify

import "log"

// Notifier pushes a single notification to the user.
type Notifier interface {
	Notify(title, body, icon string) error
}

// LogNotifier writes notifications to the process log. It is the fallback
// when no delivery channel is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(title, body, _ string) error {
	log.Printf("[notify] %s: %s", title, body)
	return nil
}

// Multi fans a notification out to every channel. All channels are tried;
// the first error is returned.
type Multi []Notifier

func (m Multi) Notify(title, body, icon string) error {
	var firstErr error
	for _, n := range m {
		if err := n.Notify(title, body, icon); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
