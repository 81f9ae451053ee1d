package gfx

import (
	"fmt"
	"strings"
)

// Op is one recorded canvas call.
type Op struct {
	Name  string
	Rect  Rect // absolute, after translation
	Point Point
	Text  string
	Paint Paint
	Depth int
}

// String formats the op for test failure output.
func (o Op) String() string {
	switch o.Name {
	case "text":
		return fmt.Sprintf("text %v %q", o.Point, o.Text)
	case "rect", "clip", "layer":
		return fmt.Sprintf("%s %v %s", o.Name, o.Rect, o.Paint.Mode)
	default:
		return fmt.Sprintf("%s depth=%d", o.Name, o.Depth)
	}
}

type recState struct {
	dx, dy int
	clip   Rect
	layer  bool
}

// RecordingCanvas implements Canvas by recording every call with absolute
// coordinates. It performs no rasterization.
type RecordingCanvas struct {
	Ops   []Op
	stack []recState
	cur   recState
}

// NewRecordingCanvas returns a canvas whose initial clip is bounds.
func NewRecordingCanvas(bounds Rect) *RecordingCanvas {
	return &RecordingCanvas{cur: recState{clip: bounds}}
}

func (c *RecordingCanvas) Save() int {
	n := len(c.stack)
	c.stack = append(c.stack, c.cur)
	c.Ops = append(c.Ops, Op{Name: "save", Depth: n})
	return n
}

func (c *RecordingCanvas) SaveLayer(rect Rect, paint Paint) int {
	n := len(c.stack)
	c.stack = append(c.stack, c.cur)
	c.cur.layer = true
	c.Ops = append(c.Ops, Op{Name: "layer", Rect: rect.Add(Point{X: c.cur.dx, Y: c.cur.dy}), Paint: paint, Depth: n})
	return n
}

func (c *RecordingCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.Ops = append(c.Ops, Op{Name: "restore", Depth: len(c.stack)})
}

func (c *RecordingCanvas) RestoreToCount(count int) {
	for len(c.stack) > count {
		c.Restore()
	}
}

func (c *RecordingCanvas) Translate(dx, dy int) {
	c.cur.dx += dx
	c.cur.dy += dy
}

func (c *RecordingCanvas) ClipRect(rect Rect) {
	abs := rect.Add(Point{X: c.cur.dx, Y: c.cur.dy})
	c.cur.clip = c.cur.clip.Intersect(abs)
	c.Ops = append(c.Ops, Op{Name: "clip", Rect: abs})
}

func (c *RecordingCanvas) DrawRect(rect Rect, paint Paint) {
	c.Ops = append(c.Ops, Op{Name: "rect", Rect: rect.Add(Point{X: c.cur.dx, Y: c.cur.dy}), Paint: paint})
}

func (c *RecordingCanvas) DrawText(pt Point, text string, paint Paint) {
	c.Ops = append(c.Ops, Op{Name: "text", Point: pt.Add(Point{X: c.cur.dx, Y: c.cur.dy}), Text: text, Paint: paint})
}

// Depth returns the number of saved states.
func (c *RecordingCanvas) Depth() int { return len(c.stack) }

// Texts returns the recorded text ops in order.
func (c *RecordingCanvas) Texts() []Op {
	var out []Op
	for _, op := range c.Ops {
		if op.Name == "text" {
			out = append(out, op)
		}
	}
	return out
}

// Names returns the op names joined by spaces, a compact trace for asserting layer order.
func (c *RecordingCanvas) Names() string {
	names := make([]string, len(c.Ops))
	for i, op := range c.Ops {
		names[i] = op.Name
	}
	return strings.Join(names, " ")
}
