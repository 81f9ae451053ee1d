// Package render paints a wheel engine's state onto a gfx.Canvas: the
// central slot decorations, the scrolled rows, the source-in highlight and
// the edge shadows.
package render

import (
	"image/color"

	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/wheel"
)

// Shadow alpha ramp applied by SetShadowColor, from the edge inwards.
const (
	shadowStartAlpha  = 0.9
	shadowMiddleAlpha = 0.75
	shadowEndAlpha    = 0.6
)

// Surface draws one engine. Decorations are optional; a nil drawable is skipped.
type Surface struct {
	engine *wheel.Engine

	centerBackground gfx.Drawable
	centerForeground gfx.Drawable
	divider          gfx.Drawable

	drawShadows  bool
	topShadow    *gfx.GradientDrawable
	bottomShadow *gfx.GradientDrawable

	drawHighlight  bool
	highlightColor color.Color
}

// New returns a surface for e with white shadows enabled and the highlight off.
func New(e *wheel.Engine) *Surface {
	s := &Surface{
		engine:         e,
		drawShadows:    true,
		highlightColor: color.White,
	}
	s.SetShadowColor(color.White)
	return s
}

// Engine returns the engine being drawn.
func (s *Surface) Engine() *wheel.Engine { return s.engine }

func (s *Surface) SetCenterBackground(d gfx.Drawable) { s.centerBackground = d }
func (s *Surface) SetCenterForeground(d gfx.Drawable) { s.centerForeground = d }
func (s *Surface) SetDivider(d gfx.Drawable)          { s.divider = d }
func (s *Surface) SetDrawShadows(draw bool)           { s.drawShadows = draw }
func (s *Surface) DrawShadows() bool                  { return s.drawShadows }
func (s *Surface) SetDrawHighlight(draw bool)         { s.drawHighlight = draw }
func (s *Surface) SetHighlightColor(c color.Color)    { s.highlightColor = c }

// SetShadowColors sets the three gradient stops, listed from the edge towards the center.
func (s *Surface) SetShadowColors(start, middle, end color.Color) {
	s.topShadow = gfx.NewGradientDrawable(gfx.TopBottom, start, middle, end)
	s.bottomShadow = gfx.NewGradientDrawable(gfx.BottomTop, start, middle, end)
}

// SetShadowColor derives the gradient from one color by scaling its alpha
// to 0.9, 0.75 and 0.6.
func (s *Surface) SetShadowColor(c color.Color) {
	s.SetShadowColors(
		gfx.WithAlpha(c, shadowStartAlpha),
		gfx.WithAlpha(c, shadowMiddleAlpha),
		gfx.WithAlpha(c, shadowEndAlpha),
	)
}

// Draw renders one frame. Rows are rebuilt first, so Draw is also where the
// attached window catches up with scrolling.
func (s *Surface) Draw(c gfx.Canvas) {
	e := s.engine
	if e.ItemCount() > 0 {
		e.UpdateView()
		g := e.Geometry()
		center := g.Center()

		if s.centerBackground != nil {
			s.centerBackground.SetBounds(center)
			s.centerBackground.Draw(c)
		}

		save := c.SaveLayer(g.DrawArea, gfx.Paint{})
		e.DrawItems(c, g)
		if s.drawHighlight {
			c.ClipRect(center)
			c.DrawRect(center, gfx.Paint{Color: s.highlightColor, Mode: gfx.SrcIn})
		}
		c.RestoreToCount(save)

		if s.divider != nil {
			h := s.divider.IntrinsicHeight()
			s.divider.SetBounds(gfx.R(center.Min.X, center.Min.Y, center.Max.X, center.Min.Y+h))
			s.divider.Draw(c)
			s.divider.SetBounds(gfx.R(center.Min.X, center.Max.Y-h, center.Max.X, center.Max.Y))
			s.divider.Draw(c)
		}

		if s.centerForeground != nil {
			s.centerForeground.SetBounds(center)
			s.centerForeground.Draw(c)
		}
	}

	if s.drawShadows {
		g := e.Geometry()
		area := g.DrawArea
		s.topShadow.SetBounds(gfx.R(area.Min.X, area.Min.Y, area.Max.X, g.CenterTop))
		s.topShadow.Draw(c)
		s.bottomShadow.SetBounds(gfx.R(area.Min.X, g.CenterBottom, area.Max.X, area.Max.Y))
		s.bottomShadow.Draw(c)
	}
}
