// Package wheel implements the scroll-and-recycle engine behind a picker
// wheel: the current item, the scrolling offset with its half-item snap,
// the recycled window of attached rows, and three listener channels.
package wheel

import (
	"time"

	"github.com/mark3labs/wheelr/internal/gfx"
	"github.com/mark3labs/wheelr/internal/logger"
	"github.com/mark3labs/wheelr/internal/scroller"
)

// DefaultVisibleItems is the row count shown when none is configured.
const DefaultVisibleItems = 5

// Config holds the engine's initial settings.
type Config struct {
	VisibleItems   int                   // Rows shown in the viewport (0 = DefaultVisibleItems)
	Cyclic         bool                  // Wrap indices modulo the item count
	Interpolator   scroller.Interpolator // Easing for flings and programmatic scrolls
	FlingThreshold float64               // Release speed in px/ms that starts a fling
	MinWidth       int                   // Lower bound applied when measuring
	MinHeight      int                   // Lower bound applied when measuring
	Now            func() time.Time      // Clock for gestures and animations (nil = time.Now)
}

// Engine is a single wheel. It is not safe for concurrent use; every method
// must be called from the host's dispatch goroutine.
type Engine struct {
	host     Host
	adapter  Adapter
	observer *dataObserver
	recycler Recycler
	items    ItemsLayout
	scroller *scroller.Scroller
	log      *logger.Component

	visibleItems int
	cyclic       bool
	minWidth     int
	minHeight    int

	currentItem        int
	firstItem          int
	scrollingOffset    int
	scrollingPerformed bool
	itemHeight         int
	measuredWidth      int
	measuredHeight     int

	changing  listenerList[ChangedListener]
	scrolling listenerList[ScrollListener]
	clicking  listenerList[ClickedListener]
}

// New creates an engine drawing through host. Attach data with SetAdapter.
func New(host Host, cfg Config) *Engine {
	if cfg.VisibleItems <= 0 {
		cfg.VisibleItems = DefaultVisibleItems
	}
	e := &Engine{
		host:         host,
		log:          logger.Named("wheel"),
		visibleItems: cfg.VisibleItems,
		cyclic:       cfg.Cyclic,
		minWidth:     cfg.MinWidth,
		minHeight:    cfg.MinHeight,
	}
	e.observer = &dataObserver{e: e}
	e.scroller = scroller.New(scrollHandler{e: e}, host.RequestFrame, scroller.Config{
		FlingThreshold: cfg.FlingThreshold,
		Interpolator:   cfg.Interpolator,
		Now:            cfg.Now,
	})
	return e
}

// Adapter returns the current adapter, or nil.
func (e *Engine) Adapter() Adapter { return e.adapter }

// SetAdapter swaps the data source. Any scroll in flight is stopped and all
// rows are rebuilt.
func (e *Engine) SetAdapter(a Adapter) {
	if e.adapter != nil {
		e.adapter.UnregisterObserver(e.observer)
	}
	e.adapter = a
	if a != nil {
		a.RegisterObserver(e.observer)
		e.log.Debug("adapter set, %d items", a.ItemCount())
	}
	e.InvalidateWheel(true)
	e.clampCurrent()
	e.host.RequestLayout()
}

// Close releases the adapter subscription.
func (e *Engine) Close() {
	e.scroller.StopScrolling()
	if e.adapter != nil {
		e.adapter.UnregisterObserver(e.observer)
		e.adapter = nil
	}
}

// ItemCount returns the adapter's item count, 0 without an adapter.
func (e *Engine) ItemCount() int {
	if e.adapter == nil {
		return 0
	}
	return e.adapter.ItemCount()
}

// CurrentItem returns the index snapped to, or targeted for, the central slot.
func (e *Engine) CurrentItem() int { return e.currentItem }

// FirstItem returns the logical index of the top attached row.
func (e *Engine) FirstItem() int { return e.firstItem }

// ScrollingOffset returns the signed offset of the content from its snapped position.
func (e *Engine) ScrollingOffset() int { return e.scrollingOffset }

// IsScrolling reports whether a gesture or animation has started and not finished.
func (e *Engine) IsScrolling() bool { return e.scrollingPerformed }

// Animating reports whether the engine is waiting for Tick calls.
func (e *Engine) Animating() bool { return e.scroller.Animating() }

// Attached returns the number of rows currently attached.
func (e *Engine) Attached() int { return e.items.Len() }

func (e *Engine) VisibleItems() int { return e.visibleItems }

// SetVisibleItems changes the row count and requests a re-measure.
func (e *Engine) SetVisibleItems(n int) {
	if n <= 0 {
		n = DefaultVisibleItems
	}
	if n == e.visibleItems {
		return
	}
	e.visibleItems = n
	e.host.RequestLayout()
}

func (e *Engine) Cyclic() bool { return e.cyclic }

// SetCyclic toggles index wrapping.
func (e *Engine) SetCyclic(cyclic bool) {
	if cyclic == e.cyclic {
		return
	}
	e.cyclic = cyclic
	e.InvalidateWheel(false)
}

// SetInterpolator replaces the easing used for flings and programmatic scrolls.
func (e *Engine) SetInterpolator(i scroller.Interpolator) { e.scroller.SetInterpolator(i) }

// SetFlingThreshold replaces the release speed in px/ms that starts a fling.
func (e *Engine) SetFlingThreshold(pxPerMs float64) { e.scroller.SetFlingThreshold(pxPerMs) }

// AddChangingListener registers l and returns a func that removes it.
func (e *Engine) AddChangingListener(l ChangedListener) (remove func()) { return e.changing.add(l) }

// AddScrollingListener registers l and returns a func that removes it.
func (e *Engine) AddScrollingListener(l ScrollListener) (remove func()) { return e.scrolling.add(l) }

// AddClickingListener registers l and returns a func that removes it.
func (e *Engine) AddClickingListener(l ClickedListener) (remove func()) { return e.clicking.add(l) }

// OnPointerEvent routes a pointer event to the gesture machine. Y is
// relative to the wheel's top edge, padding included. Without data the
// event is swallowed.
func (e *Engine) OnPointerEvent(ev scroller.Event) {
	if e.ItemCount() == 0 {
		return
	}
	if ev.Kind == scroller.Up && !e.scrollingPerformed {
		e.detectClick(ev.Y)
	}
	e.scroller.OnPointerEvent(ev)
}

func (e *Engine) detectClick(y int) {
	h := e.ItemHeight()
	if h <= 0 {
		return
	}
	_, height := e.host.Size()
	distance := y - height/2
	if distance > 0 {
		distance += h / 2
	} else {
		distance -= h / 2
	}
	items := distance / h
	if items != 0 && e.isValidItemIndex(e.currentItem+items) {
		index := e.currentItem + items
		e.log.Debug("clicked %d", index)
		e.clicking.each(func(l ClickedListener) { l.OnItemClicked(e, index) })
	}
}

// Tick advances a running fling or programmatic scroll to now.
func (e *Engine) Tick(now time.Time) { e.scroller.Tick(now) }

// StopScrolling halts any gesture or animation immediately.
func (e *Engine) StopScrolling() { e.scroller.StopScrolling() }

// Scroll animates by a number of items over d (0 = default duration).
// Without data it does nothing.
func (e *Engine) Scroll(items int, d time.Duration) {
	if e.ItemCount() == 0 {
		return
	}
	distance := items*e.ItemHeight() - e.scrollingOffset
	e.scroller.Scroll(distance, d)
}

// SetCurrentItem moves to index, animated or at once. Out-of-range indices
// wrap when cyclic and are ignored otherwise; setting the current item
// again does nothing.
func (e *Engine) SetCurrentItem(index int, animated bool) {
	n := e.ItemCount()
	if n == 0 {
		return
	}
	if index < 0 || index >= n {
		if !e.cyclic {
			return
		}
		index = mod(index, n)
	}
	if index == e.currentItem {
		return
	}

	if animated {
		items := index - e.currentItem
		if e.cyclic {
			around := n + min(index, e.currentItem) - max(index, e.currentItem)
			if around < abs(items) {
				if items < 0 {
					items = around
				} else {
					items = -around
				}
			}
		}
		e.Scroll(items, 0)
		return
	}

	e.scrollingOffset = 0
	old := e.currentItem
	e.currentItem = index
	e.log.Debug("current %d -> %d", old, index)
	e.changing.each(func(l ChangedListener) { l.OnChanged(e, old, index) })
	e.host.Invalidate()
}

// InvalidateWheel drops attached rows. With clearCaches it also stops any
// scroll in flight, empties the recycler and resets the offset; otherwise
// rows are moved to the recycler for reuse.
func (e *Engine) InvalidateWheel(clearCaches bool) {
	if clearCaches {
		e.scroller.StopScrolling()
		e.recycler.ClearAll()
		e.items.removeAll()
		e.scrollingOffset = 0
	} else {
		e.recycler.RecycleItems(&e.items, e.firstItem, ItemsRange{})
	}
	e.host.Invalidate()
}

// clampCurrent keeps the current item inside a shrunken item count.
func (e *Engine) clampCurrent() {
	n := e.ItemCount()
	if n == 0 || e.currentItem < n {
		return
	}
	if e.cyclic {
		e.SetCurrentItem(mod(e.currentItem, n), false)
		return
	}
	e.SetCurrentItem(n-1, false)
}

func (e *Engine) isValidItemIndex(index int) bool {
	n := e.ItemCount()
	return n > 0 && (e.cyclic || index >= 0 && index < n)
}

// doScroll applies a scroll delta. Whole items are stepped at once; a
// remainder past half an item rolls over into one more step.
func (e *Engine) doScroll(delta int) {
	e.scrollingOffset += delta

	h := e.ItemHeight()
	n := e.ItemCount()
	if h <= 0 || n == 0 {
		e.host.Invalidate()
		return
	}
	e.clampCurrent()

	count := e.scrollingOffset / h
	pos := e.currentItem - count

	fixPos := e.scrollingOffset % h
	if abs(fixPos) <= h/2 {
		fixPos = 0
	}

	if e.cyclic {
		if fixPos > 0 {
			pos--
			count++
		} else if fixPos < 0 {
			pos++
			count--
		}
		pos = mod(pos, n)
	} else {
		switch {
		case pos < 0:
			count = e.currentItem
			pos = 0
		case pos >= n:
			count = e.currentItem - n + 1
			pos = n - 1
		case pos > 0 && fixPos > 0:
			pos--
			count++
		case pos < n-1 && fixPos < 0:
			pos++
			count--
		}
	}

	offset := e.scrollingOffset
	if pos != e.currentItem {
		e.SetCurrentItem(pos, false)
	} else {
		e.host.Invalidate()
	}

	e.scrollingOffset = offset - count*h
	if _, height := e.host.Size(); height > 0 && e.scrollingOffset > height {
		e.scrollingOffset = e.scrollingOffset%height + height
	}
}

// ItemHeight returns the row height: cached, else the first attached row's
// measured height, else the padded height split over the visible rows.
func (e *Engine) ItemHeight() int {
	if e.itemHeight != 0 {
		return e.itemHeight
	}
	if e.items.Len() > 0 {
		if h := e.items.At(0).MeasuredHeight(); h > 0 {
			e.itemHeight = h
			return h
		}
	}
	_, height := e.host.Size()
	return (height - e.host.Padding().Vertical()) / e.visibleItems
}

// ItemsRange returns the window of logical indices that should be attached.
// ok is false before the row height is known.
func (e *Engine) ItemsRange() (r ItemsRange, ok bool) {
	h := e.ItemHeight()
	if h <= 0 {
		return ItemsRange{}, false
	}
	_, height := e.host.Size()

	first := e.currentItem
	count := 1
	for count*h < height {
		first--
		count += 2
	}

	if e.scrollingOffset != 0 {
		if e.scrollingOffset > 0 {
			first--
		}
		count++

		// rows the offset already spans beyond the window
		emptyItems := e.scrollingOffset / h
		first -= emptyItems
		count += abs(emptyItems)
	}
	return ItemsRange{First: first, Count: count}, true
}

// rebuildItems syncs the attached rows with ItemsRange, recycling rows that
// left the window and adding missing rows at either end. It reports whether
// anything changed.
func (e *Engine) rebuildItems() bool {
	rng, ok := e.ItemsRange()
	if !ok {
		return false
	}

	first := e.recycler.RecycleItems(&e.items, e.firstItem, rng)
	updated := e.firstItem != first
	e.firstItem = first

	if !updated {
		updated = e.firstItem != rng.First || e.items.Len() != rng.Count
	}

	if e.firstItem > rng.First && e.firstItem <= rng.Last() {
		for i := e.firstItem - 1; i >= rng.First; i-- {
			if !e.addViewItem(i, true) {
				break
			}
			e.firstItem = i
		}
	} else {
		e.firstItem = rng.First
	}

	first = e.firstItem
	for i := e.items.Len(); i < rng.Count; i++ {
		if !e.addViewItem(e.firstItem+i, false) && e.items.Len() == 0 {
			first++
		}
	}
	e.firstItem = first

	return updated
}

func (e *Engine) addViewItem(index int, head bool) bool {
	v, empty := e.itemView(index)
	if v == nil {
		return false
	}
	if head {
		e.items.addHead(v, empty)
	} else {
		e.items.addTail(v, empty)
	}
	return true
}

func (e *Engine) itemView(index int) (v View, empty bool) {
	n := e.ItemCount()
	if n == 0 {
		return nil, false
	}
	if !e.isValidItemIndex(index) {
		return e.adapter.EmptyView(e.recycler.EmptyItem()), true
	}
	return e.adapter.ItemView(mod(index, n), e.recycler.Item()), false
}

// buildViewForMeasuring attaches the rows around the current item so the
// row height and widest row can be measured.
func (e *Engine) buildViewForMeasuring() {
	e.recycler.RecycleItems(&e.items, e.firstItem, ItemsRange{})
	half := e.visibleItems / 2
	for i := e.currentItem + half; i >= e.currentItem-half; i-- {
		if e.addViewItem(i, true) {
			e.firstItem = i
		}
	}
}

// Measure resolves the wheel's size under the given constraints: width is
// the widest row plus padding, height is visibleItems rows plus padding.
func (e *Engine) Measure(width, height MeasureSpec) (int, int) {
	e.buildViewForMeasuring()
	e.measuredWidth = e.calculateWidth(width)
	e.measuredHeight = e.calculateHeight(height)
	return e.measuredWidth, e.measuredHeight
}

// MeasuredSize returns the result of the last Measure.
func (e *Engine) MeasuredSize() (int, int) { return e.measuredWidth, e.measuredHeight }

func (e *Engine) calculateWidth(spec MeasureSpec) int {
	e.items.Measure(MeasureSpec{Mode: Unspecified, Size: spec.Size}, UnspecifiedSpec())
	width := e.items.MeasuredWidth()
	padding := e.host.Padding().Horizontal()

	if spec.Mode == Exactly {
		width = spec.Size
	} else {
		width = max(width+padding, e.minWidth)
		if spec.Mode == AtMost && spec.Size < width {
			width = spec.Size
		}
	}
	e.items.Measure(ExactlySpec(width-padding), UnspecifiedSpec())
	return width
}

func (e *Engine) calculateHeight(spec MeasureSpec) int {
	if spec.Mode == Exactly {
		return spec.Size
	}
	if e.items.Len() > 0 {
		e.itemHeight = e.items.At(0).MeasuredHeight()
	}
	desired := e.itemHeight*e.visibleItems + e.host.Padding().Vertical()
	height := max(desired, e.minHeight)
	if spec.Mode == AtMost {
		height = min(height, spec.Size)
	}
	return height
}

// Layout positions the attached rows.
func (e *Engine) Layout() {
	e.items.Layout()
}

// UpdateView rebuilds the attached window and, when it changed, re-measures
// the rows at the current width and lays them out again.
func (e *Engine) UpdateView() {
	if e.rebuildItems() {
		width, _ := e.host.Size()
		e.calculateWidth(ExactlySpec(width))
		e.items.Layout()
	}
}

// Geometry is the per-frame layout of a wheel in host units.
type Geometry struct {
	DrawArea     gfx.Rect // size minus padding
	CenterTop    int      // top edge of the central slot
	CenterBottom int      // bottom edge of the central slot
	ContentTop   int      // y of the first attached row's top edge
}

// Center returns the central slot spanning the draw area's width.
func (g Geometry) Center() gfx.Rect {
	return gfx.R(g.DrawArea.Min.X, g.CenterTop, g.DrawArea.Max.X, g.CenterBottom)
}

// Geometry computes where rows and the central slot are drawn.
func (e *Engine) Geometry() Geometry {
	width, height := e.host.Size()
	pad := e.host.Padding()
	h := e.ItemHeight()
	top := (e.currentItem-e.firstItem)*h + (h-height)/2
	return Geometry{
		DrawArea:     gfx.R(pad.Left, pad.Top, width-pad.Right, height-pad.Bottom),
		CenterTop:    height/2 - h/2,
		CenterBottom: height/2 + h/2,
		ContentTop:   -top + e.scrollingOffset,
	}
}

// DrawItems paints the attached rows at their scrolled position.
func (e *Engine) DrawItems(c gfx.Canvas, g Geometry) {
	save := c.Save()
	c.Translate(g.DrawArea.Min.X, g.ContentTop)
	e.items.Draw(c)
	c.RestoreToCount(save)
}

// scrollHandler receives scroller callbacks on behalf of the engine.
type scrollHandler struct{ e *Engine }

func (s scrollHandler) OnStarted() {
	s.e.scrollingPerformed = true
	s.e.log.Debug("scrolling started at %d", s.e.currentItem)
	s.e.scrolling.each(func(l ScrollListener) { l.OnScrollingStarted(s.e) })
}

func (s scrollHandler) OnScroll(delta int) {
	e := s.e
	e.doScroll(delta)

	_, height := e.host.Size()
	if e.scrollingOffset > height {
		e.scrollingOffset = height
		e.scroller.StopScrolling()
	} else if e.scrollingOffset < -height {
		e.scrollingOffset = -height
		e.scroller.StopScrolling()
	}
}

func (s scrollHandler) OnFinished() {
	e := s.e
	if e.scrollingPerformed {
		e.scrollingPerformed = false
		e.log.Debug("scrolling finished at %d", e.currentItem)
		e.scrolling.each(func(l ScrollListener) { l.OnScrollingFinished(e) })
	}
	e.scrollingOffset = 0
	e.host.Invalidate()
}

func (s scrollHandler) OnJustify() {
	if abs(s.e.scrollingOffset) > scroller.MinDeltaForScrolling {
		s.e.scroller.Scroll(s.e.scrollingOffset, 0)
	}
}

// dataObserver reacts to adapter notifications.
type dataObserver struct{ e *Engine }

func (o *dataObserver) OnChanged() {
	o.e.InvalidateWheel(false)
	o.e.clampCurrent()
}

func (o *dataObserver) OnInvalidated() {
	o.e.InvalidateWheel(true)
	o.e.clampCurrent()
}

func mod(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
