package journal

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/nats"
	"github.com/mark3labs/wheelr/internal/scroller"
	"github.com/mark3labs/wheelr/internal/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type host struct{}

func (host) Invalidate()           {}
func (host) RequestLayout()        {}
func (host) Padding() wheel.Insets { return wheel.Insets{} }
func (host) Size() (int, int)      { return 100, 200 }
func (host) RequestFrame()         {}

type row string

func (r row) Measure(wheel.MeasureSpec, wheel.MeasureSpec) {}
func (r row) MeasuredWidth() int                           { return 100 }
func (r row) MeasuredHeight() int                          { return 40 }
func (r row) Draw(c gfx.Canvas)                            { c.DrawText(gfx.Point{}, string(r), gfx.Paint{}) }

type numbers struct {
	wheel.BaseAdapter
	n int
}

func (a *numbers) ItemCount() int                          { return a.n }
func (a *numbers) ItemView(i int, _ wheel.View) wheel.View { return row(strconv.Itoa(i)) }
func (a *numbers) EmptyView(_ wheel.View) wheel.View       { return row("") }

func openStore(t *testing.T) (*Store, context.Context) {
	t.Helper()
	ctx := context.Background()
	conn, err := nats.Open(ctx, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewStore(conn.JS, conn.Stream), ctx
}

func newEngine(clock *time.Time) *wheel.Engine {
	e := wheel.New(host{}, wheel.Config{
		Interpolator: scroller.Linear,
		Now:          func() time.Time { return *clock },
	})
	e.SetAdapter(&numbers{n: 10})
	e.Measure(wheel.ExactlySpec(100), wheel.ExactlySpec(200))
	e.Layout()
	return e
}

func TestRecorderReplaysIntoHistory(t *testing.T) {
	store, ctx := openStore(t)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	hours := newEngine(&clock)
	minutes := newEngine(&clock)

	rec := NewRecorder(ctx, store, "alarm")
	rec.now = func() time.Time { return clock }
	rec.Attach(0, hours)
	detach := rec.Attach(1, minutes)

	hours.SetCurrentItem(7, false)

	// animated scroll: started, changed, finished
	minutes.Scroll(2, 100*time.Millisecond)
	clock = clock.Add(time.Second)
	minutes.Tick(clock)
	require.Equal(t, 2, minutes.CurrentItem())

	// tap two rows below the center
	minutes.OnPointerEvent(scroller.Event{Kind: scroller.Down, Y: 190, Time: clock})
	minutes.OnPointerEvent(scroller.Event{Kind: scroller.Up, Y: 190, Time: clock})

	detach()
	minutes.SetCurrentItem(9, false) // not journaled

	rec.RecordPick([]int{7, 2}, "07:02")
	rec.RecordPick([]int{7, 3}, "07:03")
	rec.Close()

	h, err := store.LoadHistory(ctx, "alarm")
	require.NoError(t, err)

	assert.Equal(t, "alarm", h.Picker)
	assert.Equal(t, 2, h.Changes)
	assert.Equal(t, 1, h.Gestures)
	assert.Equal(t, 1, h.Clicks)
	require.Len(t, h.Wheels, 2)
	assert.Equal(t, WheelStats{Changes: 1, Current: 7}, h.Wheels[0])
	assert.Equal(t, WheelStats{Changes: 1, Gestures: 1, Clicks: 1, Current: 2}, h.Wheels[1])

	require.Len(t, h.Picks, 2)
	require.NotNil(t, h.Last)
	assert.Equal(t, "07:03", h.Last.Text)
	assert.Equal(t, []int{7, 3}, h.Last.Values)
	assert.Equal(t, clock, h.Last.At.UTC())
}

func TestRecorderCloseIsIdempotent(t *testing.T) {
	store, ctx := openStore(t)
	rec := NewRecorder(ctx, store, "x")
	rec.Close()
	rec.Close()
	rec.RecordPick([]int{1}, "1") // ignored after close

	h, err := store.LoadHistory(ctx, "x")
	require.NoError(t, err)
	assert.Zero(t, h.Events)
	assert.Nil(t, h.Last)
}

func TestLoadHistorySeparatesPickers(t *testing.T) {
	store, ctx := openStore(t)

	for _, picker := range []string{"beta", "alpha", "beta"} {
		meta, _ := json.Marshal(pickMeta{Values: []int{1}})
		_, err := store.PublishEvent(ctx, Event{Picker: picker, Type: nats.EventTypePick, Action: ActionAccept, Meta: meta, Data: picker})
		require.NoError(t, err)
	}
	// raw garbage on a picker subject is skipped
	_, err := store.js.Publish(ctx, nats.SubjectForEvent("alpha", nats.EventTypeChanged), []byte("{"))
	require.NoError(t, err)

	beta, err := store.LoadHistory(ctx, "beta")
	require.NoError(t, err)
	assert.Len(t, beta.Picks, 2)

	alpha, err := store.LoadHistory(ctx, "alpha")
	require.NoError(t, err)
	assert.Len(t, alpha.Picks, 1)
	assert.Equal(t, 1, alpha.Events)

	pickers, err := store.Pickers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta"}, pickers)
}

func TestApplyIgnoresUnmatchedFinish(t *testing.T) {
	var h History
	h.Apply(Event{Type: nats.EventTypeScroll, Action: ActionFinish})
	assert.Zero(t, h.Gestures)

	h.Apply(Event{Type: nats.EventTypeScroll, Action: ActionStart, Wheel: 2})
	h.Apply(Event{Type: nats.EventTypeScroll, Action: ActionFinish, Wheel: 2})
	assert.Equal(t, 1, h.Gestures)
	require.Len(t, h.Wheels, 3)
	assert.Equal(t, 1, h.Wheels[2].Gestures)
}

func TestMarkdown(t *testing.T) {
	empty := (&History{Picker: "alarm"}).Markdown()
	assert.Contains(t, empty, "# alarm")
	assert.Contains(t, empty, "No journaled activity")

	at := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)
	h := &History{Picker: "alarm", Events: 3, Changes: 2, Wheels: []WheelStats{{Changes: 2, Current: 4}}}
	h.Picks = []Pick{{Values: []int{4}, Text: "04", At: at}}
	h.Last = &h.Picks[0]

	md := h.Markdown()
	assert.Contains(t, md, "Last pick: **04** (2026-03-01 12:30)")
	assert.Contains(t, md, "| 1 | 2 | 0 | 0 | 4 |")
	assert.Contains(t, md, "- `04` at 2026-03-01 12:30:00")
}
