package gfx

import "image/color"

// ColorDrawable fills its bounds with a single color.
type ColorDrawable struct {
	Color  color.Color
	bounds Rect
}

// NewColorDrawable returns a drawable filled with c.
func NewColorDrawable(c color.Color) *ColorDrawable {
	return &ColorDrawable{Color: c}
}

func (d *ColorDrawable) SetBounds(r Rect)     { d.bounds = r }
func (d *ColorDrawable) Bounds() Rect         { return d.bounds }
func (d *ColorDrawable) IntrinsicHeight() int { return 0 }

func (d *ColorDrawable) Draw(c Canvas) {
	if d.bounds.Empty() {
		return
	}
	c.DrawRect(d.bounds, Paint{Color: d.Color})
}

// LineDrawable is a horizontal rule with a fixed intrinsic height, used for
// the two dividers around the central slot.
type LineDrawable struct {
	Color     color.Color
	Thickness int
	bounds    Rect
}

// NewLineDrawable returns a rule of the given thickness.
func NewLineDrawable(c color.Color, thickness int) *LineDrawable {
	if thickness < 1 {
		thickness = 1
	}
	return &LineDrawable{Color: c, Thickness: thickness}
}

func (d *LineDrawable) SetBounds(r Rect)     { d.bounds = r }
func (d *LineDrawable) Bounds() Rect         { return d.bounds }
func (d *LineDrawable) IntrinsicHeight() int { return d.Thickness }

func (d *LineDrawable) Draw(c Canvas) {
	if d.bounds.Empty() {
		return
	}
	c.DrawRect(d.bounds, Paint{Color: d.Color})
}

// Orientation is the direction of a gradient's first stop to its last.
type Orientation int

const (
	TopBottom Orientation = iota
	BottomTop
)

// GradientDrawable paints a vertical multi-stop gradient as one-unit strips.
type GradientDrawable struct {
	Orientation Orientation
	Colors      []color.Color
	bounds      Rect
}

// NewGradientDrawable returns a gradient through colors in the given orientation.
func NewGradientDrawable(o Orientation, colors ...color.Color) *GradientDrawable {
	return &GradientDrawable{Orientation: o, Colors: colors}
}

func (d *GradientDrawable) SetBounds(r Rect)     { d.bounds = r }
func (d *GradientDrawable) Bounds() Rect         { return d.bounds }
func (d *GradientDrawable) IntrinsicHeight() int { return 0 }

func (d *GradientDrawable) Draw(c Canvas) {
	h := d.bounds.Dy()
	if h <= 0 || d.bounds.Dx() <= 0 || len(d.Colors) == 0 {
		return
	}
	for i := 0; i < h; i++ {
		t := 0.0
		if h > 1 {
			t = float64(i) / float64(h-1)
		}
		if d.Orientation == BottomTop {
			t = 1 - t
		}
		y := d.bounds.Min.Y + i
		c.DrawRect(R(d.bounds.Min.X, y, d.bounds.Max.X, y+1), Paint{Color: d.At(t)})
	}
}

// At returns the gradient color at position t in [0, 1] along the stops.
func (d *GradientDrawable) At(t float64) color.Color {
	n := len(d.Colors)
	switch {
	case n == 0:
		return color.Transparent
	case n == 1 || t <= 0:
		return d.Colors[0]
	case t >= 1:
		return d.Colors[n-1]
	}
	pos := t * float64(n-1)
	i := int(pos)
	return Lerp(d.Colors[i], d.Colors[i+1], pos-float64(i))
}
