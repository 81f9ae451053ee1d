// Package journal records picker activity as events in JetStream and
// rebuilds a picker's history by replaying them.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/wheelr/internal/logger"
	"github.com/mark3labs/wheelr/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
)

var log = logger.Named("journal")

// Event is one entry of the append-only journal.
type Event struct {
	ID        string          `json:"id"`        // Stream sequence, filled in on load
	Timestamp time.Time       `json:"timestamp"` // When the event occurred
	Picker    string          `json:"picker"`    // Picker key
	Type      string          `json:"type"`      // changed, scroll, clicked, pick
	Action    string          `json:"action"`    // change, start, finish, click, accept
	Wheel     int             `json:"wheel"`     // Column index, left to right
	Meta      json.RawMessage `json:"meta,omitempty"`
	Data      string          `json:"data,omitempty"` // Printed value for picks
}

// Event actions.
const (
	ActionChange = "change"
	ActionStart  = "start"
	ActionFinish = "finish"
	ActionClick  = "click"
	ActionAccept = "accept"
)

type changeMeta struct {
	Old int `json:"old"`
	New int `json:"new"`
}

type scrollMeta struct {
	Current int `json:"current"`
}

type clickMeta struct {
	Index int `json:"index"`
}

type pickMeta struct {
	Values []int `json:"values"`
}

// Store reads and writes journal events.
type Store struct {
	js     jetstream.JetStream
	stream jetstream.Stream
}

// NewStore creates a Store on an already set up stream.
func NewStore(js jetstream.JetStream, stream jetstream.Stream) *Store {
	return &Store{js: js, stream: stream}
}

// PublishEvent appends event to the journal on wheelr.{picker}.{type}.
func (s *Store) PublishEvent(ctx context.Context, event Event) (*jetstream.PubAck, error) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	subject := nats.SubjectForEvent(event.Picker, event.Type)
	ack, err := s.js.Publish(ctx, subject, data)
	if err != nil {
		log.Error("publish to %s: %v", subject, err)
		return nil, fmt.Errorf("failed to publish event: %w", err)
	}

	log.Debug("published %s/%s wheel=%d seq=%d", event.Type, event.Action, event.Wheel, ack.Sequence)
	return ack, nil
}

// Pick is one accepted result.
type Pick struct {
	Values []int     `json:"values"`
	Text   string    `json:"text"`
	At     time.Time `json:"at"`
}

// WheelStats counts activity on one column.
type WheelStats struct {
	Changes  int `json:"changes"`
	Clicks   int `json:"clicks"`
	Gestures int `json:"gestures"`
	Current  int `json:"current"`
}

// History is the reduced state of a picker's journal.
type History struct {
	Picker   string       `json:"picker"`
	Events   int          `json:"events"`
	Changes  int          `json:"changes"`
	Clicks   int          `json:"clicks"`
	Gestures int          `json:"gestures"`
	Wheels   []WheelStats `json:"wheels"`
	Picks    []Pick       `json:"picks"`
	Last     *Pick        `json:"last,omitempty"`

	open map[int]bool
}

func (h *History) wheel(i int) *WheelStats {
	for len(h.Wheels) <= i {
		h.Wheels = append(h.Wheels, WheelStats{})
	}
	return &h.Wheels[i]
}

// Apply folds one event into the history.
func (h *History) Apply(event Event) {
	if event.Wheel < 0 {
		return
	}
	h.Events++
	switch event.Type {
	case nats.EventTypeChanged:
		var meta changeMeta
		if err := json.Unmarshal(event.Meta, &meta); err != nil {
			return
		}
		h.Changes++
		w := h.wheel(event.Wheel)
		w.Changes++
		w.Current = meta.New

	case nats.EventTypeScroll:
		// A gesture counts once its finish is seen.
		switch event.Action {
		case ActionStart:
			if h.open == nil {
				h.open = make(map[int]bool)
			}
			h.open[event.Wheel] = true
		case ActionFinish:
			if !h.open[event.Wheel] {
				return
			}
			delete(h.open, event.Wheel)
			h.Gestures++
			h.wheel(event.Wheel).Gestures++
		}

	case nats.EventTypeClicked:
		h.Clicks++
		h.wheel(event.Wheel).Clicks++

	case nats.EventTypePick:
		var meta pickMeta
		if err := json.Unmarshal(event.Meta, &meta); err != nil {
			return
		}
		h.Picks = append(h.Picks, Pick{Values: meta.Values, Text: event.Data, At: event.Timestamp})
		h.Last = &h.Picks[len(h.Picks)-1]
	}
}

// LoadHistory replays every event of picker into a History.
func (s *Store) LoadHistory(ctx context.Context, picker string) (*History, error) {
	consumer, err := s.stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		FilterSubject: nats.SubjectForPicker(picker),
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer: %w", err)
	}

	h := &History{Picker: picker, open: make(map[int]bool)}

	const batchSize = 500
	malformed := 0
	for {
		msgs, err := consumer.FetchNoWait(batchSize)
		if err != nil {
			break
		}

		n := 0
		for msg := range msgs.Messages() {
			n++
			var event Event
			if err := json.Unmarshal(msg.Data(), &event); err != nil {
				malformed++
				_ = msg.Ack()
				continue
			}
			if meta, err := msg.Metadata(); err == nil {
				event.ID = strconv.FormatUint(meta.Sequence.Stream, 10)
			}
			h.Apply(event)
			_ = msg.Ack()
		}

		if n < batchSize {
			break
		}
	}

	if malformed > 0 {
		log.Warn("skipped %d malformed events for %s", malformed, picker)
	}
	if h.Picks != nil {
		h.Last = &h.Picks[len(h.Picks)-1]
	}
	return h, nil
}

// Pickers lists the keys of every picker with journaled events, sorted.
func (s *Store) Pickers(ctx context.Context) ([]string, error) {
	info, err := s.stream.Info(ctx, jetstream.WithSubjectFilter("wheelr.>"))
	if err != nil {
		return nil, fmt.Errorf("reading stream info: %w", err)
	}

	seen := make(map[string]bool)
	var pickers []string
	for subject := range info.State.Subjects {
		parts := strings.Split(subject, ".")
		if len(parts) != 3 || seen[parts[1]] {
			continue
		}
		seen[parts[1]] = true
		pickers = append(pickers, parts[1])
	}
	slices.Sort(pickers)
	return pickers, nil
}
