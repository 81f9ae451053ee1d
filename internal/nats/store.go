package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	streamName = "wheelr_events"

	// Event types
	EventTypeChanged = "changed"
	EventTypeScroll  = "scroll"
	EventTypeClicked = "clicked"
	EventTypePick    = "pick"

	retention = 90 * 24 * time.Hour
)

// SubjectForPicker returns the wildcard subject for every event of a picker.
// Example: "wheelr.alarm-hour.>"
func SubjectForPicker(picker string) string {
	return fmt.Sprintf("wheelr.%s.>", picker)
}

// SubjectForEvent returns the subject for one event type of a picker.
// Example: "wheelr.alarm-hour.changed"
func SubjectForEvent(picker, eventType string) string {
	return fmt.Sprintf("wheelr.%s.%s", picker, eventType)
}

// SetupStream creates or updates the stream holding all picker events.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     streamName,
		Subjects: []string{"wheelr.>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   retention,
	})
}

// Conn bundles the server, connection and stream of a running journal.
type Conn struct {
	Server *server.Server
	NC     *nats.Conn
	JS     jetstream.JetStream
	Stream jetstream.Stream
}

// Open starts an embedded server in dataDir and prepares the event stream.
func Open(ctx context.Context, dataDir string) (*Conn, error) {
	ns, err := StartEmbeddedNATS(dataDir)
	if err != nil {
		return nil, fmt.Errorf("starting journal server: %w", err)
	}
	nc, err := ConnectInProcess(ns)
	if err != nil {
		_ = Shutdown(nil, ns)
		return nil, fmt.Errorf("connecting to journal server: %w", err)
	}
	js, err := CreateJetStream(nc)
	if err != nil {
		_ = Shutdown(nc, ns)
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}
	stream, err := SetupStream(ctx, js)
	if err != nil {
		_ = Shutdown(nc, ns)
		return nil, fmt.Errorf("setting up stream: %w", err)
	}
	return &Conn{Server: ns, NC: nc, JS: js, Stream: stream}, nil
}

// Close shuts the connection and server down.
func (c *Conn) Close() error {
	return Shutdown(c.NC, c.Server)
}
