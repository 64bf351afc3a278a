package notification

import (
	"context"

	"github.com/sirupsen/logrus"

	"workorder_engine/internal/usecase/interfaces"
)

// LogDispatcher writes notifications to the log instead of sending them.
// Used for local runs where no mail relay is configured.
type LogDispatcher struct {
	log logrus.FieldLogger
}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher(log logrus.FieldLogger) *LogDispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogDispatcher{log: log.WithField("component", "log_dispatcher")}
}

func (d *LogDispatcher) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.log.WithFields(logrus.Fields{
		"subject":    subject,
		"recipients": recipients,
		"body_bytes": len(htmlBody),
	}).Info("notification")
	return nil
}
