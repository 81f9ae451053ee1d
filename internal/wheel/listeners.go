package wheel

import "slices"

// ChangedListener is notified whenever the current item changes.
type ChangedListener interface {
	OnChanged(w *Engine, oldIndex, newIndex int)
}

// ScrollListener brackets each gesture or animation.
type ScrollListener interface {
	OnScrollingStarted(w *Engine)
	OnScrollingFinished(w *Engine)
}

// ClickedListener is notified when a non-central row is tapped.
type ClickedListener interface {
	OnItemClicked(w *Engine, index int)
}

// ChangedFunc adapts a function to ChangedListener.
type ChangedFunc func(w *Engine, oldIndex, newIndex int)

func (f ChangedFunc) OnChanged(w *Engine, oldIndex, newIndex int) { f(w, oldIndex, newIndex) }

// ClickedFunc adapts a function to ClickedListener.
type ClickedFunc func(w *Engine, index int)

func (f ClickedFunc) OnItemClicked(w *Engine, index int) { f(w, index) }

// ScrollFuncs adapts a pair of functions to ScrollListener. Either may be nil.
type ScrollFuncs struct {
	Started  func(w *Engine)
	Finished func(w *Engine)
}

func (f ScrollFuncs) OnScrollingStarted(w *Engine) {
	if f.Started != nil {
		f.Started(w)
	}
}

func (f ScrollFuncs) OnScrollingFinished(w *Engine) {
	if f.Finished != nil {
		f.Finished(w)
	}
}

type entry[T any] struct {
	id       uint64
	listener T
}

// listenerList is an ordered listener list whose dispatch iterates over a
// snapshot, so listeners may add or remove listeners while being notified.
type listenerList[T any] struct {
	next    uint64
	entries []entry[T]
}

func (l *listenerList[T]) add(listener T) (remove func()) {
	l.next++
	id := l.next
	l.entries = append(l.entries, entry[T]{id: id, listener: listener})
	return func() {
		l.entries = slices.DeleteFunc(l.entries, func(e entry[T]) bool { return e.id == id })
	}
}

func (l *listenerList[T]) each(fn func(T)) {
	for _, e := range slices.Clone(l.entries) {
		fn(e.listener)
	}
}

func (l *listenerList[T]) len() int { return len(l.entries) }
