package interfaces

import "context"

// INotificationDispatcher delivers outbound e-mail notifications.
//
// Delivery is best effort from the engine's point of view: a failure here never
// undoes a committed transition.
type INotificationDispatcher interface {
	Send(ctx context.Context, subject, htmlBody string, recipients []string) error
}
