package tui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/logger"
	"github.com/mark3labs/wheelr/internal/render"
	"github.com/mark3labs/wheelr/internal/scroller"
	"github.com/mark3labs/wheelr/internal/tui/theme"
	"github.com/mark3labs/wheelr/internal/wheel"
	"github.com/mark3labs/wheelr/internal/wheellayout"
	"github.com/mattn/go-runewidth"
)

var paneLog = logger.Named("pane")

// Labeler is implemented by adapters whose rows can be searched by text.
type Labeler interface {
	ItemCount() int
	Text(index int) string
}

// Pane is one wheel column of the picker. It hosts the engine, translates
// terminal input into pointer events and scrolls, and draws the wheel
// through a render.Surface onto a TermCanvas.
type Pane struct {
	title   string
	engine  *wheel.Engine
	surface *render.Surface
	scale   int
	keys    KeyMap

	area      uv.Rectangle // whole pane, header included
	wheelArea uv.Rectangle // rows the wheel occupies

	describe func() (text, placeholder string)

	focused        bool
	needsLayout    bool
	frameRequested bool
	query          string
	searching      bool
	removeClick    func()
}

// NewPane creates a pane and its engine. Attach data through Engine() or a
// wheellayout column built on it.
func NewPane(title string, opts Options) *Pane {
	p := &Pane{
		title:       title,
		scale:       max(opts.RowScale, 1),
		keys:        DefaultKeyMap(),
		needsLayout: true,
	}
	p.engine = wheel.New(p, wheel.Config{
		VisibleItems:   opts.VisibleItems,
		Cyclic:         opts.Cyclic,
		Interpolator:   opts.Interpolator,
		FlingThreshold: opts.FlingThreshold,
	})
	p.surface = newSurface(p.engine, opts)
	p.removeClick = p.engine.AddClickingListener(wheel.ClickedFunc(func(e *wheel.Engine, index int) {
		e.SetCurrentItem(index, true)
	}))
	return p
}

func newSurface(e *wheel.Engine, opts Options) *render.Surface {
	t := theme.Current()
	s := render.New(e)
	s.SetCenterBackground(gfx.NewColorDrawable(gfx.MustHex(t.BgSurface0)))
	if opts.DrawDivider {
		s.SetDivider(gfx.NewLineDrawable(gfx.MustHex(t.BgSurface1), 1))
	}
	s.SetDrawShadows(opts.DrawShadows)
	if opts.ShadowColor != nil {
		s.SetShadowColor(opts.ShadowColor)
	} else {
		s.SetShadowColor(gfx.MustHex(t.BgBase))
	}
	s.SetDrawHighlight(opts.DrawHighlight)
	if opts.HighlightColor != nil {
		s.SetHighlightColor(opts.HighlightColor)
	} else {
		s.SetHighlightColor(gfx.MustHex(t.Primary))
	}
	return s
}

// Engine returns the wheel engine driven by this pane.
func (p *Pane) Engine() *wheel.Engine { return p.engine }

// Title returns the pane header text.
func (p *Pane) Title() string { return p.title }

// Views returns the row factory for adapters shown in this pane.
func (p *Pane) Views() wheellayout.ViewFactory { return TextViews(p.scale) }

// SetDescription installs a source for the unit label drawn right of the
// central row, aligned past placeholder.
func (p *Pane) SetDescription(fn func() (text, placeholder string)) { p.describe = fn }

// Close detaches the pane's listeners and adapter.
func (p *Pane) Close() {
	if p.removeClick != nil {
		p.removeClick()
		p.removeClick = nil
	}
	p.engine.Close()
}

// wheel.Host

func (p *Pane) Invalidate()           {}
func (p *Pane) RequestLayout()        { p.needsLayout = true }
func (p *Pane) Padding() wheel.Insets { return wheel.Insets{} }
func (p *Pane) RequestFrame()         { p.frameRequested = true }

func (p *Pane) Size() (int, int) {
	return p.wheelArea.Dx(), p.wheelArea.Dy() * p.scale
}

// SetArea places the pane. The wheel is centered vertically below the
// header row and never taller than its visible items.
func (p *Pane) SetArea(area uv.Rectangle) {
	if area == p.area {
		return
	}
	p.area = area
	inner := area
	if inner.Dy() > 0 {
		inner.Min.Y++
	}
	rows := min(p.engine.VisibleItems(), inner.Dy())
	top := inner.Min.Y + (inner.Dy()-rows)/2
	p.wheelArea = uv.Rect(inner.Min.X, top, inner.Dx(), rows)
	p.needsLayout = true
}

// Area returns the pane rectangle.
func (p *Pane) Area() uv.Rectangle { return p.area }

// WheelArea returns the rectangle the wheel is drawn into.
func (p *Pane) WheelArea() uv.Rectangle { return p.wheelArea }

func (p *Pane) layout() {
	w, h := p.Size()
	p.engine.Measure(wheel.ExactlySpec(w), wheel.ExactlySpec(h))
	p.engine.Layout()
	p.needsLayout = false
}

// SetFocused marks the pane as the keyboard target.
func (p *Pane) SetFocused(focused bool) {
	p.focused = focused
	if !focused {
		p.clearQuery()
	}
}

// Focused reports whether the pane takes keyboard input.
func (p *Pane) Focused() bool { return p.focused }

// takeFrame reports and clears a pending frame request.
func (p *Pane) takeFrame() bool {
	r := p.frameRequested
	p.frameRequested = false
	return r
}

// Query returns the type-to-jump text, and whether a search is active.
func (p *Pane) Query() (string, bool) { return p.query, p.searching }

func (p *Pane) clearQuery() {
	p.query = ""
	p.searching = false
}

// Update handles a key press for the focused pane. It reports whether the
// key was consumed.
func (p *Pane) Update(msg tea.KeyPressMsg) bool {
	if p.searching {
		return p.updateSearch(msg)
	}
	e := p.engine
	switch {
	case key.Matches(msg, p.keys.Up):
		e.Scroll(-1, 0)
	case key.Matches(msg, p.keys.Down):
		e.Scroll(1, 0)
	case key.Matches(msg, p.keys.PageUp):
		e.Scroll(-e.VisibleItems(), 0)
	case key.Matches(msg, p.keys.PageDown):
		e.Scroll(e.VisibleItems(), 0)
	case key.Matches(msg, p.keys.Home):
		e.SetCurrentItem(0, true)
	case key.Matches(msg, p.keys.End):
		e.SetCurrentItem(e.ItemCount()-1, true)
	case key.Matches(msg, p.keys.Search):
		p.searching = true
	default:
		if !printable(msg.Text) {
			return false
		}
		p.searching = true
		p.query = msg.Text
		p.jump()
	}
	return true
}

func (p *Pane) updateSearch(msg tea.KeyPressMsg) bool {
	switch msg.String() {
	case "esc":
		p.clearQuery()
	case "backspace":
		if p.query == "" {
			p.clearQuery()
			return true
		}
		r := []rune(p.query)
		p.query = string(r[:len(r)-1])
		p.jump()
	default:
		if !printable(msg.Text) {
			return false
		}
		p.query += msg.Text
		p.jump()
	}
	return true
}

func printable(s string) bool {
	return s != "" && strings.TrimSpace(s) != "" && runewidth.StringWidth(s) > 0
}

func (p *Pane) jump() {
	labels, ok := p.engine.Adapter().(Labeler)
	if !ok || p.query == "" {
		return
	}
	if i := BestMatch(p.query, labels, p.engine.CurrentItem(), p.engine.Cyclic()); i >= 0 {
		paneLog.Debug("%s: %q -> %d", p.title, p.query, i)
		p.engine.SetCurrentItem(i, true)
	}
}

// BestMatch returns the index whose label ranks best against query, using
// case- and accent-insensitive fuzzy matching. Ties go to the index nearest
// current, measured around the wheel when cyclic. It returns -1 when no
// label matches.
func BestMatch(query string, labels Labeler, current int, cyclic bool) int {
	n := labels.ItemCount()
	best, bestRank, bestDist := -1, 0, 0
	for i := range n {
		rank := fuzzy.RankMatchNormalizedFold(query, labels.Text(i))
		if rank < 0 {
			continue
		}
		dist := abs(i - current)
		if cyclic {
			dist = min(dist, n-dist)
		}
		if best < 0 || rank < bestRank || (rank == bestRank && dist < bestDist) {
			best, bestRank, bestDist = i, rank, dist
		}
	}
	return best
}

// Contains reports whether (x, y) lies inside the pane.
func (p *Pane) Contains(x, y int) bool {
	return uv.Position{X: x, Y: y}.In(p.area)
}

// Pointer feeds a mouse event at terminal row y to the engine. The row is
// mapped to the center of its virtual pixel span.
func (p *Pane) Pointer(kind scroller.EventKind, y int) {
	if p.needsLayout {
		p.layout()
	}
	vy := (y-p.wheelArea.Min.Y)*p.scale + p.scale/2
	p.engine.OnPointerEvent(scroller.Event{Kind: kind, Y: vy})
}

// Settle runs any animation to its end and stops a gesture in progress.
func (p *Pane) Settle() {
	for range 8 {
		if !p.engine.Animating() {
			break
		}
		p.engine.Tick(time.Now().Add(time.Hour))
	}
	p.engine.StopScrolling()
	p.frameRequested = false
}

// ScrollNotch animates one item per mouse wheel notch.
func (p *Pane) ScrollNotch(items int) {
	p.engine.Scroll(items, 0)
}

// Draw renders the header and the wheel into the pane's area.
func (p *Pane) Draw(scr uv.Screen) {
	if p.area.Empty() {
		return
	}
	DrawPanel(scr, p.area, p.title, p.focused)
	if p.wheelArea.Empty() {
		return
	}
	if p.needsLayout {
		p.layout()
	}

	t := theme.Current()
	canvas := NewTermCanvas(p.wheelArea.Dx(), p.wheelArea.Dy(), p.scale,
		gfx.MustHex(t.FgBase), gfx.MustHex(t.BgBase))
	p.surface.Draw(canvas)
	canvas.Blit(scr, p.wheelArea)
	p.drawDescription(scr)
}

func (p *Pane) drawDescription(scr uv.Screen) {
	if p.describe == nil || p.engine.ItemCount() == 0 {
		return
	}
	text, placeholder := p.describe()
	if text == "" {
		return
	}
	// same centering as TextView, then one column of space
	width := p.wheelArea.Dx()
	x := p.wheelArea.Min.X + (width+runewidth.StringWidth(placeholder))/2 + 1
	row := p.wheelArea.Min.Y + (p.wheelArea.Dy()-1)/2
	avail := p.wheelArea.Max.X - x
	if avail <= 0 {
		return
	}
	text = runewidth.Truncate(text, avail, "…")
	t := theme.Current()
	style := t.S().Description.Background(lipgloss.Color(t.BgSurface0))
	DrawStyled(scr, uv.Rect(x, row, runewidth.StringWidth(text), 1), style, text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
