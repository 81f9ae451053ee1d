package journal

import (
	"context"
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/mark3labs/wheelr/internal/nats"
	"github.com/mark3labs/wheelr/internal/wheel"
)

const queueSize = 256

// Recorder journals the listener traffic of one picker's wheels. Listener
// callbacks only enqueue; a single goroutine publishes in order, so the UI
// never waits on the stream.
type Recorder struct {
	store  *Store
	picker string
	now    func() time.Time

	queue   chan Event
	done    chan struct{}
	closeMu sync.Mutex
	closed  bool
	dropped int
}

// NewRecorder starts a recorder publishing events for picker until Close.
func NewRecorder(ctx context.Context, store *Store, picker string) *Recorder {
	r := &Recorder{
		store:  store,
		picker: picker,
		now:    time.Now,
		queue:  make(chan Event, queueSize),
		done:   make(chan struct{}),
	}
	go r.run(ctx)
	return r
}

func (r *Recorder) run(ctx context.Context) {
	defer close(r.done)
	for event := range r.queue {
		if _, err := r.store.PublishEvent(ctx, event); err != nil {
			log.Warn("dropping %s event: %v", event.Type, err)
		}
	}
}

func (r *Recorder) enqueue(event Event) {
	r.closeMu.Lock()
	defer r.closeMu.Unlock()
	if r.closed {
		return
	}
	event.Picker = r.picker
	event.Timestamp = r.now()
	select {
	case r.queue <- event:
	default:
		r.dropped++
	}
}

func (r *Recorder) enqueueMeta(typ, action string, wheelIndex int, meta any) {
	raw, err := json.Marshal(meta)
	if err != nil {
		return
	}
	r.enqueue(Event{Type: typ, Action: action, Wheel: wheelIndex, Meta: raw})
}

// Attach subscribes to e's three listener channels, tagging events with
// wheelIndex. The returned func unsubscribes.
func (r *Recorder) Attach(wheelIndex int, e *wheel.Engine) (detach func()) {
	removers := []func(){
		e.AddChangingListener(wheel.ChangedFunc(func(_ *wheel.Engine, oldIndex, newIndex int) {
			r.enqueueMeta(nats.EventTypeChanged, ActionChange, wheelIndex, changeMeta{Old: oldIndex, New: newIndex})
		})),
		e.AddScrollingListener(wheel.ScrollFuncs{
			Started: func(w *wheel.Engine) {
				r.enqueueMeta(nats.EventTypeScroll, ActionStart, wheelIndex, scrollMeta{Current: w.CurrentItem()})
			},
			Finished: func(w *wheel.Engine) {
				r.enqueueMeta(nats.EventTypeScroll, ActionFinish, wheelIndex, scrollMeta{Current: w.CurrentItem()})
			},
		}),
		e.AddClickingListener(wheel.ClickedFunc(func(_ *wheel.Engine, index int) {
			r.enqueueMeta(nats.EventTypeClicked, ActionClick, wheelIndex, clickMeta{Index: index})
		})),
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

// RecordPick journals the accepted result.
func (r *Recorder) RecordPick(values []int, text string) {
	raw, err := json.Marshal(pickMeta{Values: slices.Clone(values)})
	if err != nil {
		return
	}
	r.enqueue(Event{Type: nats.EventTypePick, Action: ActionAccept, Meta: raw, Data: text})
}

// Close stops accepting events and waits until the queue is published.
func (r *Recorder) Close() {
	r.closeMu.Lock()
	if r.closed {
		r.closeMu.Unlock()
		return
	}
	r.closed = true
	close(r.queue)
	dropped := r.dropped
	r.closeMu.Unlock()

	<-r.done
	if dropped > 0 {
		log.Warn("queue full, dropped %d events", dropped)
	}
}
