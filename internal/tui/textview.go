package tui

import (
	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/wheel"
	"github.com/mattn/go-runewidth"
)

// TextView is a wheel row showing one centered label, one terminal row high.
type TextView struct {
	text   string
	scale  int
	width  int
	height int
}

// NewTextView returns a row for text with scale virtual pixels per row.
func NewTextView(text string, scale int) *TextView {
	return &TextView{text: text, scale: max(scale, 1)}
}

// Text returns the label.
func (v *TextView) Text() string { return v.text }

func (v *TextView) Measure(width, height wheel.MeasureSpec) {
	v.width = width.Resolve(runewidth.StringWidth(v.text))
	v.height = height.Resolve(v.scale)
}

func (v *TextView) MeasuredWidth() int  { return v.width }
func (v *TextView) MeasuredHeight() int { return v.height }

func (v *TextView) Draw(c gfx.Canvas) {
	if v.text == "" {
		return
	}
	text := v.text
	w := runewidth.StringWidth(text)
	if v.width > 0 && w > v.width {
		text = runewidth.Truncate(text, v.width, "…")
		w = runewidth.StringWidth(text)
	}
	c.DrawText(gfx.Point{X: max(v.width-w, 0) / 2}, text, gfx.Paint{})
}

// TextViews returns a view factory building TextViews, rebinding recycled
// rows in place.
func TextViews(scale int) func(text string, recycled wheel.View) wheel.View {
	return func(text string, recycled wheel.View) wheel.View {
		if v, ok := recycled.(*TextView); ok {
			v.text = text
			return v
		}
		return NewTextView(text, scale)
	}
}
