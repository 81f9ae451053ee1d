package tui

import (
	"image/color"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/tui/testfixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testFg = gfx.MustHex("#cdd6f4")
	testBg = gfx.MustHex("#1e1e2e")
	red    = gfx.MustHex("#ff0000")
)

// 10 columns, 5 rows, 4 virtual pixels per row
func newTestCanvas() *TermCanvas {
	return NewTermCanvas(10, 5, 4, testFg, testBg)
}

func TestTermCanvasTextSnapsToNearestRow(t *testing.T) {
	tests := []struct {
		y   int
		row int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{4, 1},
		{5, 1},
		{6, 2},
		{-2, 0},
	}
	for _, tt := range tests {
		c := newTestCanvas()
		c.DrawText(gfx.Point{X: 2, Y: tt.y}, "hi", gfx.Paint{})
		assert.Equal(t, "  hi      ", c.Line(tt.row), "y=%d", tt.y)
	}

	c := newTestCanvas()
	c.DrawText(gfx.Point{Y: -3}, "gone", gfx.Paint{})
	c.DrawText(gfx.Point{Y: 19}, "gone", gfx.Paint{})
	for row := range 5 {
		assert.Equal(t, "          ", c.Line(row))
	}
}

func TestTermCanvasTextColorsAndClip(t *testing.T) {
	c := newTestCanvas()
	c.DrawText(gfx.Point{}, "ab", gfx.Paint{})
	c.DrawText(gfx.Point{Y: 4}, "cd", gfx.Paint{Color: red, Bold: true})

	assert.Equal(t, testFg, c.CellAt(0, 0).Fg)
	assert.Equal(t, red, c.CellAt(1, 1).Fg)
	assert.True(t, c.CellAt(1, 1).Bold)

	save := c.Save()
	c.ClipRect(gfx.R(0, 0, 3, 20))
	c.Translate(1, 8)
	c.DrawText(gfx.Point{}, "abcdef", gfx.Paint{})
	c.RestoreToCount(save)
	assert.Equal(t, " ab       ", c.Line(2))

	c.DrawText(gfx.Point{X: 8, Y: 12}, "xyz", gfx.Paint{})
	assert.Equal(t, "        xy", c.Line(3), "text past the edge is cut")
}

func TestTermCanvasWideRunes(t *testing.T) {
	c := newTestCanvas()
	c.DrawText(gfx.Point{}, "日本", gfx.Paint{})
	assert.Equal(t, "日本      ", c.Line(0))
	assert.Equal(t, "日", c.CellAt(0, 0).Glyph)
	assert.Equal(t, "", c.CellAt(1, 0).Glyph)
}

func TestTermCanvasFills(t *testing.T) {
	c := newTestCanvas()
	c.DrawText(gfx.Point{Y: 4}, "ab", gfx.Paint{})

	// opaque: background only, glyph keeps its color
	c.DrawRect(gfx.R(0, 4, 10, 8), gfx.Paint{Color: red})
	cell := c.CellAt(0, 1)
	assert.Equal(t, "a", cell.Glyph)
	assert.Equal(t, red, cell.Bg)
	assert.Equal(t, testFg, cell.Fg)
	assert.Equal(t, testBg, c.CellAt(0, 0).Bg)

	// translucent: both colors blend towards the source
	black := color.NRGBA{A: 0x80}
	c.DrawRect(gfx.R(0, 4, 10, 8), gfx.Paint{Color: black})
	cell = c.CellAt(0, 1)
	assert.Equal(t, gfx.Over(red, black), cell.Bg)
	assert.Equal(t, gfx.Over(testFg, black), cell.Fg)

	// a rect that misses every row center paints nothing
	c.DrawRect(gfx.R(0, 0, 10, 2), gfx.Paint{Color: black})
	assert.Equal(t, testBg, c.CellAt(0, 0).Bg)

	c.DrawRect(gfx.R(0, 0, 10, 4), gfx.Paint{Color: color.Transparent})
	assert.Equal(t, testBg, c.CellAt(0, 0).Bg)
}

func TestTermCanvasThinOpaqueRectIsRule(t *testing.T) {
	c := newTestCanvas()
	c.DrawText(gfx.Point{Y: 4}, "ab", gfx.Paint{})

	// boundary between rows 1 and 2
	c.DrawRect(gfx.R(0, 8, 10, 9), gfx.Paint{Color: red})
	assert.True(t, c.CellAt(0, 1).Rule)
	assert.Equal(t, testFg, c.CellAt(0, 1).Fg, "glyph keeps its color")
	assert.True(t, c.CellAt(5, 1).Rule)
	assert.Equal(t, red, c.CellAt(5, 1).Fg)
	assert.False(t, c.CellAt(0, 2).Rule)

	// bottom edge of row 2
	c.DrawRect(gfx.R(0, 11, 10, 12), gfx.Paint{Color: red})
	assert.True(t, c.CellAt(0, 2).Rule)

	// above the first row there is nothing to underline
	c.DrawRect(gfx.R(0, 0, 10, 1), gfx.Paint{Color: red})
	assert.False(t, c.CellAt(0, 0).Rule)
}

func TestTermCanvasLayerSrcIn(t *testing.T) {
	c := newTestCanvas()
	c.DrawText(gfx.Point{}, "base", gfx.Paint{})

	save := c.SaveLayer(gfx.R(0, 0, 10, 20), gfx.Paint{})
	c.DrawText(gfx.Point{Y: 4}, "one", gfx.Paint{})
	c.DrawText(gfx.Point{Y: 8}, "two", gfx.Paint{})
	c.ClipRect(gfx.R(0, 8, 10, 12))
	c.DrawRect(gfx.R(0, 8, 10, 12), gfx.Paint{Color: red, Mode: gfx.SrcIn})

	// nothing reaches the base until the layer is restored
	assert.Equal(t, "          ", c.Line(1))
	c.RestoreToCount(save)

	assert.Equal(t, "base      ", c.Line(0))
	assert.Equal(t, "one       ", c.Line(1))
	assert.Equal(t, "two       ", c.Line(2))
	assert.Equal(t, testFg, c.CellAt(0, 0).Fg, "base content is outside the layer")
	assert.Equal(t, testFg, c.CellAt(0, 1).Fg, "outside the clip")
	assert.Equal(t, red, c.CellAt(0, 2).Fg)
	assert.Equal(t, red, c.CellAt(2, 2).Fg)
	assert.Equal(t, testBg, c.CellAt(5, 2).Bg, "empty cells keep the base background")
	assert.Equal(t, "", c.CellAt(5, 2).Glyph)
}

func TestTermCanvasLayerClipsToBounds(t *testing.T) {
	c := newTestCanvas()
	save := c.SaveLayer(gfx.R(0, 4, 10, 12), gfx.Paint{})
	c.DrawText(gfx.Point{}, "top", gfx.Paint{})
	c.DrawText(gfx.Point{Y: 4}, "mid", gfx.Paint{})
	c.RestoreToCount(save)

	assert.Equal(t, "          ", c.Line(0))
	assert.Equal(t, "mid       ", c.Line(1))
	c.Restore()
}

func TestTermCanvasBlit(t *testing.T) {
	c := newTestCanvas()
	c.DrawText(gfx.Point{X: 3}, "hello", gfx.Paint{})
	c.DrawRect(gfx.R(0, 4, 10, 8), gfx.Paint{Color: red})
	c.DrawText(gfx.Point{Y: 4}, "日本", gfx.Paint{Bold: true})

	out := testfixtures.Render(func(scr uv.Screen, _ uv.Rectangle) {
		c.Blit(scr, uv.Rect(2, 1, 10, 5))
	})
	lines := testfixtures.Lines(out)
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "     hello", lines[1])
	assert.Equal(t, "  日本", lines[2])
}
