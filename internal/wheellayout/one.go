package wheellayout

import (
	"github.com/mark3labs/wheelr/internal/logger"
	"github.com/mark3labs/wheelr/internal/wheel"
)

var log = logger.Named("layout")

// OneWheel drives one engine over integer ranges, keeping an adapter per
// range so switching back and forth reuses rows.
type OneWheel struct {
	engine *wheel.Engine
	views  ViewFactory
	config *IntConfig
	cache  map[rangeKey]*IntAdapter
}

// NewOneWheel takes over e's adapter. Rows are built with views.
func NewOneWheel(e *wheel.Engine, views ViewFactory) *OneWheel {
	w := &OneWheel{
		engine: e,
		views:  views,
		cache:  make(map[rangeKey]*IntAdapter, 5),
	}
	e.AddChangingListener(wheel.ChangedFunc(func(*wheel.Engine, int, int) {
		if a := w.Adapter(); a != nil {
			a.NotifyChanged()
		}
	}))
	return w
}

func (w *OneWheel) Engine() *wheel.Engine { return w.engine }

// Config returns the column config, or nil before SetConfig.
func (w *OneWheel) Config() *IntConfig { return w.config }

// Adapter returns the adapter in use, or nil.
func (w *OneWheel) Adapter() *IntAdapter {
	a, _ := w.engine.Adapter().(*IntAdapter)
	return a
}

// SetConfig sets the column's default range, description and formatter.
func (w *OneWheel) SetConfig(c IntConfig) {
	w.config = &c
	w.SetAdapterKey(&c.AdapterKey)
}

// Description returns the configured unit label.
func (w *OneWheel) Description() string {
	if w.config == nil {
		return ""
	}
	return w.config.Description
}

// Placeholder returns the widest label of the current range when a
// description is set, so the description can be aligned past it.
func (w *OneWheel) Placeholder() string {
	a := w.Adapter()
	if a == nil || w.Description() == "" {
		return ""
	}
	return a.LongestText()
}

// SetAdapterKey switches to key's range, or back to the configured range
// when key is nil. The current item is clamped into the new range.
func (w *OneWheel) SetAdapterKey(key *AdapterKey) {
	if key == nil {
		if w.config == nil {
			return
		}
		key = &w.config.AdapterKey
	}
	a := w.adapterFor(*key)
	w.engine.SetCyclic(key.Cyclic)
	if w.Adapter() == a {
		return
	}
	log.Debug("range %d..%d", key.Min, key.Max)
	// Clamp while the old range is attached; the engine would wrap a
	// cyclic wheel instead.
	if last := a.ItemCount() - 1; w.engine.CurrentItem() > last {
		w.engine.SetCurrentItem(last, false)
	}
	w.engine.SetAdapter(a)
	if w.engine.CurrentItem() < 0 {
		w.engine.SetCurrentItem(0, false)
	}
	a.NotifyChanged()
}

func (w *OneWheel) adapterFor(key AdapterKey) *IntAdapter {
	a, ok := w.cache[key.rangeKey()]
	if !ok {
		var f Formatter
		if w.config != nil {
			f = w.config.Formatter
		}
		a = NewIntAdapter(key.Min, key.Max, f, w.views)
		w.cache[key.rangeKey()] = a
	}
	return a
}

// Value returns the value in the central slot, 0 without a range.
func (w *OneWheel) Value() int {
	a := w.Adapter()
	if a == nil {
		return 0
	}
	return w.engine.CurrentItem() + a.Min
}

// SetValue moves to v, clamped into the current range.
func (w *OneWheel) SetValue(v int) {
	a := w.Adapter()
	if a == nil {
		return
	}
	v = min(max(v, a.Min), a.Max)
	w.engine.SetCurrentItem(v-a.Min, false)
}

// ValueIn returns Value clamped into key, or into the configured range when
// key is nil. Reading through a key guards against a linked column whose
// range has not caught up yet.
func (w *OneWheel) ValueIn(key *AdapterKey) int {
	v := w.Value()
	if key == nil {
		if w.config == nil {
			return v
		}
		key = &w.config.AdapterKey
	}
	return key.Clamp(v)
}
