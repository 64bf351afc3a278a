package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/sirupsen/logrus"
)

func newTestClient(t *testing.T) (*pubsub.Client, *pstest.Server) {
	t.Helper()
	srv := pstest.NewServer()
	t.Cleanup(func() { _ = srv.Close() })
	t.Setenv("PUBSUB_EMULATOR_HOST", srv.Addr)

	client, err := pubsub.NewClient(context.Background(), "test-project")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client, srv
}

func TestPubSubDispatcher_Send(t *testing.T) {
	ctx := context.Background()
	client, srv := newTestClient(t)
	if _, err := client.CreateTopic(ctx, "work-order-mail"); err != nil {
		t.Fatalf("create topic: %v", err)
	}

	d := NewPubSubDispatcher(client, "work-order-mail", nil)
	d.now = func() time.Time { return time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC) }
	defer d.Stop()

	if err := d.Send(ctx, "Work order NFC-1 cancelled", "<p>bye</p>", []string{"ops@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := srv.Messages()
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(msgs))
	}
	if msgs[0].Attributes["kind"] != "email" {
		t.Fatalf("unexpected attributes: %v", msgs[0].Attributes)
	}
	var got Message
	if err := json.Unmarshal(msgs[0].Data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Subject != "Work order NFC-1 cancelled" || got.HTMLBody != "<p>bye</p>" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if len(got.Recipients) != 1 || got.Recipients[0] != "ops@example.com" {
		t.Fatalf("unexpected recipients: %v", got.Recipients)
	}
}

func TestPubSubDispatcher_NoRecipients(t *testing.T) {
	client, srv := newTestClient(t)
	d := NewPubSubDispatcher(client, "unused", nil)

	if err := d.Send(context.Background(), "s", "b", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(srv.Messages()); n != 0 {
		t.Fatalf("expected no messages, got %d", n)
	}
}

func TestPubSubDispatcher_MissingTopic(t *testing.T) {
	client, _ := newTestClient(t)
	d := NewPubSubDispatcher(client, "does-not-exist", nil)
	defer d.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Send(ctx, "s", "b", []string{"a@example.com"}); err == nil {
		t.Fatalf("expected error for missing topic")
	}
}

func TestNewPubSubClient_RequiresProject(t *testing.T) {
	if _, err := NewPubSubClient(context.Background(), "", ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLogDispatcher_Send(t *testing.T) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetFormatter(&logrus.JSONFormatter{})

	d := NewLogDispatcher(l)
	if err := d.Send(context.Background(), "hello", "<b>x</b>", []string{"a@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"subject":"hello"`)) {
		t.Fatalf("expected subject in log, got %s", buf.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Send(ctx, "hello", "", nil); err == nil {
		t.Fatalf("expected context error")
	}
}
