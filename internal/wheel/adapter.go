package wheel

import "slices"

// DataObserver is notified when an adapter's data changes.
type DataObserver interface {
	// OnChanged reports data that changed but kept its shape.
	OnChanged()
	// OnInvalidated reports data that needs a full rebuild.
	OnInvalidated()
}

// Adapter supplies wheel rows. Implementations must not call back into the
// engine's mutating API from ItemView or EmptyView.
type Adapter interface {
	ItemCount() int
	// ItemView builds the row for index in [0, ItemCount()). recycled is a
	// previously detached item view or nil.
	ItemView(index int, recycled View) View
	// EmptyView builds a filler row for slots outside a non-cyclic range.
	EmptyView(recycled View) View
	RegisterObserver(o DataObserver)
	UnregisterObserver(o DataObserver)
}

// BaseAdapter implements observer bookkeeping for embedding in adapters.
type BaseAdapter struct {
	observers []DataObserver
}

func (a *BaseAdapter) RegisterObserver(o DataObserver) {
	if o == nil || slices.Contains(a.observers, o) {
		return
	}
	a.observers = append(a.observers, o)
}

func (a *BaseAdapter) UnregisterObserver(o DataObserver) {
	a.observers = slices.DeleteFunc(a.observers, func(x DataObserver) bool { return x == o })
}

// Observers returns the number of registered observers.
func (a *BaseAdapter) Observers() int { return len(a.observers) }

// NotifyChanged tells observers the data changed in place.
func (a *BaseAdapter) NotifyChanged() {
	for _, o := range slices.Clone(a.observers) {
		o.OnChanged()
	}
}

// NotifyInvalidated tells observers to rebuild everything.
func (a *BaseAdapter) NotifyInvalidated() {
	for _, o := range slices.Clone(a.observers) {
		o.OnInvalidated()
	}
}
