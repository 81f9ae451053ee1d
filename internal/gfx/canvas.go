// Package gfx defines the drawing contract shared by the wheel engine, its
// render surface and concrete hosts.
package gfx

import (
	"image"
	"image/color"
)

// Rect is an axis-aligned rectangle in host units.
type Rect = image.Rectangle

// Point is a position in host units.
type Point = image.Point

// R is shorthand for image.Rect(x0, y0, x1, y1).
func R(x0, y0, x1, y1 int) Rect {
	return image.Rect(x0, y0, x1, y1)
}

// BlendMode selects how a paint composites onto existing content.
type BlendMode int

const (
	// SrcOver paints the source over the destination.
	SrcOver BlendMode = iota
	// SrcIn keeps the destination coverage and replaces its color with the source.
	SrcIn
)

// String returns the blend mode name.
func (m BlendMode) String() string {
	switch m {
	case SrcOver:
		return "src-over"
	case SrcIn:
		return "src-in"
	default:
		return "unknown"
	}
}

// Paint carries color and compositing information for a draw call.
type Paint struct {
	Color color.Color
	Mode  BlendMode
	Bold  bool
}

// Canvas is the host drawing surface. Coordinates are relative to the
// current translation; Save/SaveLayer push state that Restore pops.
type Canvas interface {
	// Save pushes the current translation and clip and returns the depth
	// before the push.
	Save() int
	// SaveLayer behaves like Save and additionally redirects drawing into an
	// offscreen layer bounded by rect. The layer is composited with paint on
	// restore.
	SaveLayer(rect Rect, paint Paint) int
	// Restore pops one saved state.
	Restore()
	// RestoreToCount pops saved states until the depth equals count.
	RestoreToCount(count int)
	// Translate shifts the origin.
	Translate(dx, dy int)
	// ClipRect intersects the clip with rect.
	ClipRect(rect Rect)
	// DrawRect fills rect with paint.
	DrawRect(rect Rect, paint Paint)
	// DrawText draws a single line of text with its top-left corner at pt.
	DrawText(pt Point, text string, paint Paint)
}

// Drawable is a decoration painted into its bounds.
type Drawable interface {
	SetBounds(r Rect)
	Bounds() Rect
	Draw(c Canvas)
	// IntrinsicHeight is the preferred height, or 0 when the drawable stretches.
	IntrinsicHeight() int
}
