package render

import (
	"image/color"
	"strconv"
	"testing"

	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type host struct{ w, h int }

func (h *host) Invalidate()           {}
func (h *host) RequestLayout()        {}
func (h *host) Padding() wheel.Insets { return wheel.Insets{} }
func (h *host) Size() (int, int)      { return h.w, h.h }
func (h *host) RequestFrame()         {}

type row struct {
	text  string
	width int
}

func (r *row) Measure(w, _ wheel.MeasureSpec) { r.width = w.Resolve(len(r.text)) }
func (r *row) MeasuredWidth() int             { return r.width }
func (r *row) MeasuredHeight() int            { return 40 }
func (r *row) Draw(c gfx.Canvas)              { c.DrawText(gfx.Point{}, r.text, gfx.Paint{}) }

type numbers struct {
	wheel.BaseAdapter
	n int
}

func (a *numbers) ItemCount() int { return a.n }
func (a *numbers) ItemView(i int, _ wheel.View) wheel.View {
	return &row{text: strconv.Itoa(i)}
}
func (a *numbers) EmptyView(wheel.View) wheel.View { return &row{} }

var (
	bg        = gfx.MustHex("#111111")
	fg        = gfx.MustHex("#222222")
	line      = gfx.MustHex("#333333")
	highlight = gfx.MustHex("#cba6f7")
)

func newSurface(t *testing.T, n int) (*Surface, *wheel.Engine) {
	t.Helper()
	e := wheel.New(&host{w: 100, h: 200}, wheel.Config{})
	e.SetAdapter(&numbers{n: n})
	e.SetCurrentItem(5, false)
	e.Measure(wheel.ExactlySpec(100), wheel.ExactlySpec(200))
	e.Layout()

	s := New(e)
	s.SetCenterBackground(gfx.NewColorDrawable(bg))
	s.SetCenterForeground(gfx.NewColorDrawable(fg))
	s.SetDivider(gfx.NewLineDrawable(line, 1))
	s.SetDrawHighlight(true)
	s.SetHighlightColor(highlight)
	return s, e
}

func indexOf(ops []gfx.Op, match func(gfx.Op) bool) int {
	for i, op := range ops {
		if match(op) {
			return i
		}
	}
	return -1
}

func TestDrawLayerOrder(t *testing.T) {
	s, _ := newSurface(t, 10)
	c := gfx.NewRecordingCanvas(gfx.R(0, 0, 100, 200))
	s.Draw(c)
	ops := c.Ops
	center := gfx.R(0, 80, 100, 120)

	background := indexOf(ops, func(op gfx.Op) bool { return op.Name == "rect" && op.Paint.Color == bg })
	layer := indexOf(ops, func(op gfx.Op) bool { return op.Name == "layer" })
	firstText := indexOf(ops, func(op gfx.Op) bool { return op.Name == "text" })
	srcIn := indexOf(ops, func(op gfx.Op) bool { return op.Paint.Mode == gfx.SrcIn })
	divider := indexOf(ops, func(op gfx.Op) bool { return op.Name == "rect" && op.Paint.Color == line })
	foreground := indexOf(ops, func(op gfx.Op) bool { return op.Name == "rect" && op.Paint.Color == fg })

	require.NotEqual(t, -1, background)
	assert.Equal(t, center, ops[background].Rect)
	assert.Less(t, background, layer)
	assert.Less(t, layer, firstText)
	assert.Less(t, firstText, srcIn)
	assert.Equal(t, center, ops[srcIn].Rect)
	assert.Equal(t, "clip", ops[srcIn-1].Name)
	assert.Equal(t, "restore", ops[srcIn+1].Name, "the highlight is composited with the layer")
	assert.Less(t, srcIn, divider)
	assert.Less(t, divider, foreground)
	assert.Equal(t, 0, c.Depth())

	assert.Equal(t, gfx.R(0, 80, 100, 81), ops[divider].Rect)
	assert.Equal(t, gfx.R(0, 119, 100, 120), ops[divider+1].Rect)

	// shadows follow the foreground: 80 strips above the slot and 80 below
	shadows := ops[foreground+1:]
	require.Len(t, shadows, 160)
	assert.Equal(t, gfx.R(0, 0, 100, 1), shadows[0].Rect)
	assert.Equal(t, gfx.R(0, 199, 100, 200), shadows[len(shadows)-1].Rect)
}

func TestDrawCentersCurrentRow(t *testing.T) {
	s, e := newSurface(t, 10)
	c := gfx.NewRecordingCanvas(gfx.R(0, 0, 100, 200))
	s.Draw(c)

	var texts []string
	for _, op := range c.Texts() {
		texts = append(texts, op.Text)
		if op.Text == strconv.Itoa(e.CurrentItem()) {
			assert.Equal(t, 80, op.Point.Y)
		}
	}
	assert.Equal(t, []string{"3", "4", "5", "6", "7"}, texts)
}

func TestDrawWithoutItemsOnlyShadows(t *testing.T) {
	s, _ := newSurface(t, 0)
	c := gfx.NewRecordingCanvas(gfx.R(0, 0, 100, 200))
	s.Draw(c)

	for _, op := range c.Ops {
		require.Equal(t, "rect", op.Name)
	}
	assert.Empty(t, c.Texts())
	assert.NotEmpty(t, c.Ops)

	s.SetDrawShadows(false)
	c = gfx.NewRecordingCanvas(gfx.R(0, 0, 100, 200))
	s.Draw(c)
	assert.Empty(t, c.Ops)
}

func TestHighlightDisabled(t *testing.T) {
	s, _ := newSurface(t, 10)
	s.SetDrawHighlight(false)
	c := gfx.NewRecordingCanvas(gfx.R(0, 0, 100, 200))
	s.Draw(c)
	assert.Equal(t, -1, indexOf(c.Ops, func(op gfx.Op) bool { return op.Paint.Mode == gfx.SrcIn }))
}

func TestShadowColorAlphaRamp(t *testing.T) {
	s, _ := newSurface(t, 10)
	s.SetShadowColor(color.NRGBA{R: 30, G: 30, B: 46, A: 200})

	require.Len(t, s.topShadow.Colors, 3)
	alphas := []uint8{}
	for _, c := range s.topShadow.Colors {
		alphas = append(alphas, c.(color.NRGBA).A)
	}
	assert.Equal(t, []uint8{180, 150, 120}, alphas)
	assert.Equal(t, gfx.BottomTop, s.bottomShadow.Orientation)
	assert.Equal(t, s.topShadow.Colors, s.bottomShadow.Colors)
}
