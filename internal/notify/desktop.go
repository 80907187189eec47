package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// DesktopNotifier shows native desktop notifications.
type DesktopNotifier struct {
	// Icon is the default icon path used when the caller passes none.
	Icon string
}

func (n DesktopNotifier) Notify(title, body, icon string) error {
	if icon == "" {
		icon = n.Icon
	}
	if err := beeep.Notify(title, body, icon); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}
