package wheel

import "github.com/mark3labs/wheelr/internal/gfx"

type child struct {
	view  View
	empty bool
	top   int
}

// ItemsLayout stacks attached rows vertically, top to bottom.
type ItemsLayout struct {
	children []child
	width    int
	height   int
}

// Len returns the number of attached rows.
func (l *ItemsLayout) Len() int { return len(l.children) }

// At returns the row at position i.
func (l *ItemsLayout) At(i int) View { return l.children[i].view }

// IsEmptyAt reports whether the row at position i is a filler row.
func (l *ItemsLayout) IsEmptyAt(i int) bool { return l.children[i].empty }

func (l *ItemsLayout) addHead(v View, empty bool) {
	l.children = append([]child{{view: v, empty: empty}}, l.children...)
}

func (l *ItemsLayout) addTail(v View, empty bool) {
	l.children = append(l.children, child{view: v, empty: empty})
}

func (l *ItemsLayout) removeAt(i int) child {
	c := l.children[i]
	l.children = append(l.children[:i], l.children[i+1:]...)
	return c
}

func (l *ItemsLayout) removeAll() {
	clear(l.children)
	l.children = l.children[:0]
}

// Measure measures every row with the given width constraint and an
// unconstrained height. The measured width is the widest row resolved
// against the constraint; the height is the sum of row heights.
func (l *ItemsLayout) Measure(width, height MeasureSpec) {
	w, h := 0, 0
	for _, c := range l.children {
		c.view.Measure(width, UnspecifiedSpec())
		w = max(w, c.view.MeasuredWidth())
		h += c.view.MeasuredHeight()
	}
	l.width = width.Resolve(w)
	l.height = height.Resolve(h)
}

func (l *ItemsLayout) MeasuredWidth() int  { return l.width }
func (l *ItemsLayout) MeasuredHeight() int { return l.height }

// Layout assigns each row its top offset.
func (l *ItemsLayout) Layout() {
	y := 0
	for i := range l.children {
		l.children[i].top = y
		y += l.children[i].view.MeasuredHeight()
	}
}

// Draw paints each row translated to its top offset.
func (l *ItemsLayout) Draw(c gfx.Canvas) {
	for _, ch := range l.children {
		save := c.Save()
		c.Translate(0, ch.top)
		ch.view.Draw(c)
		c.RestoreToCount(save)
	}
}
