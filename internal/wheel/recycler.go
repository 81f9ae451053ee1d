package wheel

// Recycler pools detached rows so adapters can rebind them. Item rows and
// filler rows are kept apart and never handed out for each other.
type Recycler struct {
	items []View
	empty []View
}

// RecycleItems detaches every row of layout whose logical index falls
// outside rng and returns the logical index of the new first row. first is
// the logical index of the layout's current first row.
func (r *Recycler) RecycleItems(layout *ItemsLayout, first int, rng ItemsRange) int {
	index := first
	for i := 0; i < layout.Len(); {
		if rng.Contains(index) {
			i++
		} else {
			c := layout.removeAt(i)
			r.put(c.view, c.empty)
			if i == 0 {
				first++
			}
		}
		index++
	}
	return first
}

func (r *Recycler) put(v View, empty bool) {
	if v == nil {
		return
	}
	if empty {
		r.empty = append(r.empty, v)
	} else {
		r.items = append(r.items, v)
	}
}

// Item pops a cached item row, or nil.
func (r *Recycler) Item() View { return pop(&r.items) }

// EmptyItem pops a cached filler row, or nil.
func (r *Recycler) EmptyItem() View { return pop(&r.empty) }

// Cached returns the pool sizes.
func (r *Recycler) Cached() (items, empty int) { return len(r.items), len(r.empty) }

// ClearAll drops both pools.
func (r *Recycler) ClearAll() {
	clear(r.items)
	clear(r.empty)
	r.items = r.items[:0]
	r.empty = r.empty[:0]
}

func pop(q *[]View) View {
	if len(*q) == 0 {
		return nil
	}
	v := (*q)[0]
	(*q)[0] = nil
	*q = (*q)[1:]
	return v
}
