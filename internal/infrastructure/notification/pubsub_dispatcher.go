package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"workorder_engine/internal/usecase/interfaces"
)

// Message is the payload published for the mail relay.
type Message struct {
	Subject    string    `json:"subject"`
	HTMLBody   string    `json:"html_body"`
	Recipients []string  `json:"recipients"`
	SentAt     time.Time `json:"sent_at"`
}

// NewPubSubClient creates a Pub/Sub client. It uses Application Default
// Credentials unless credentialsJSON is provided.
func NewPubSubClient(ctx context.Context, projectID, credentialsJSON string) (*pubsub.Client, error) {
	if projectID == "" {
		return nil, errors.New("pubsub project id is required")
	}
	if strings.TrimSpace(credentialsJSON) != "" {
		return pubsub.NewClient(ctx, projectID, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	return pubsub.NewClient(ctx, projectID)
}

// PubSubDispatcher publishes notifications to a topic consumed by the mail relay.
type PubSubDispatcher struct {
	topic *pubsub.Topic
	log   logrus.FieldLogger
	now   func() time.Time
}

var _ interfaces.INotificationDispatcher = (*PubSubDispatcher)(nil)

func NewPubSubDispatcher(client *pubsub.Client, topicID string, log logrus.FieldLogger) *PubSubDispatcher {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &PubSubDispatcher{
		topic: client.Topic(topicID),
		log:   log.WithField("component", "pubsub_dispatcher"),
		now:   time.Now,
	}
}

func (d *PubSubDispatcher) Send(ctx context.Context, subject, htmlBody string, recipients []string) error {
	if len(recipients) == 0 {
		return nil
	}
	data, err := json.Marshal(Message{
		Subject:    subject,
		HTMLBody:   htmlBody,
		Recipients: recipients,
		SentAt:     d.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	result := d.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"kind": "email"},
	})
	id, err := result.Get(ctx)
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	d.log.WithFields(logrus.Fields{
		"message_id": id,
		"recipients": len(recipients),
	}).Debug("notification published")
	return nil
}

// Stop flushes pending publishes.
func (d *PubSubDispatcher) Stop() {
	d.topic.Stop()
}
