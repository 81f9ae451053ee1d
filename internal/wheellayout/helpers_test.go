package wheellayout

import (
	"testing"
	"time"

	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/scroller"
	"github.com/mark3labs/wheelr/internal/wheel"
)

type host struct{}

func (host) Invalidate()           {}
func (host) RequestLayout()        {}
func (host) Padding() wheel.Insets { return wheel.Insets{} }
func (host) Size() (int, int)      { return 40, 50 }
func (host) RequestFrame()         {}

type label struct {
	text    string
	rebound int
}

func (l *label) Measure(w, _ wheel.MeasureSpec) {}
func (l *label) MeasuredWidth() int             { return 40 }
func (l *label) MeasuredHeight() int            { return 10 }
func (l *label) Draw(c gfx.Canvas)              { c.DrawText(gfx.Point{}, l.text, gfx.Paint{}) }

func labels(text string, recycled wheel.View) wheel.View {
	if l, ok := recycled.(*label); ok {
		l.text = text
		l.rebound++
		return l
	}
	return &label{text: text}
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newColumn(c *clock) *OneWheel {
	e := wheel.New(host{}, wheel.Config{Interpolator: scroller.Linear, Now: c.Now})
	return NewOneWheel(e, labels)
}

// settle scrolls w's engine by items and runs the animation to its end.
func settle(t *testing.T, c *clock, w *OneWheel, items int) {
	t.Helper()
	e := w.Engine()
	e.Measure(wheel.ExactlySpec(40), wheel.ExactlySpec(50))
	e.Layout()
	e.Scroll(items, 100*time.Millisecond)
	c.now = c.now.Add(time.Second)
	e.Tick(c.now)
	if e.IsScrolling() {
		t.Fatal("scroll did not finish")
	}
}
