package wheellayout

import (
	"maps"
	"math"

	"github.com/mark3labs/wheelr/internal/wheel"
)

// TwoWheel links two columns: whenever the first column settles, the second
// switches to the range linked to the first column's value, or back to its
// configured range when none is linked.
type TwoWheel struct {
	First, Second *OneWheel
	linkages      map[int]AdapterKey
}

// NewTwoWheel links second to first.
func NewTwoWheel(first, second *OneWheel) *TwoWheel {
	t := &TwoWheel{First: first, Second: second}
	first.Engine().AddScrollingListener(wheel.ScrollFuncs{
		Finished: func(*wheel.Engine) { t.adjustLinkage() },
	})
	return t
}

// SetConfig configures both columns. linkages maps first-column values to
// the second column's range and may be nil.
func (t *TwoWheel) SetConfig(first, second IntConfig, linkages map[int]AdapterKey) {
	t.First.SetConfig(first)
	t.Second.SetConfig(second)
	t.linkages = maps.Clone(linkages)
}

func (t *TwoWheel) linked(firstValue int) *AdapterKey {
	if k, ok := t.linkages[firstValue]; ok {
		return &k
	}
	return nil
}

func (t *TwoWheel) adjustLinkage() {
	if len(t.linkages) == 0 {
		return
	}
	t.Second.SetAdapterKey(t.linked(t.First.Value()))
}

// SetValue moves both columns, applying the linkage in between.
func (t *TwoWheel) SetValue(first, second int) {
	t.First.SetValue(first)
	t.adjustLinkage()
	t.Second.SetValue(second)
}

// Value returns both column values. The second is clamped through the
// linkage so a read during a scroll never pairs values the ranges forbid.
func (t *TwoWheel) Value() (first, second int) {
	first = t.First.Value()
	return first, t.Second.ValueIn(t.linked(first))
}

// SetFloatConfig configures the columns as integer part and tenths of
// c.Min..c.Max. The tenths range is narrowed at the two edge integers.
func (t *TwoWheel) SetFloatConfig(c FloatConfig) {
	lo, hi := tenths(c.Min), tenths(c.Max)

	first := AdapterKey{Min: lo / 10, Max: hi / 10, Cyclic: c.IntCyclic}
	second := AdapterKey{Min: 0, Max: 9, Cyclic: c.FractionCyclic}

	linkages := make(map[int]AdapterKey)
	if f := lo % 10; f > 0 {
		linkages[lo/10] = AdapterKey{Min: f, Max: 9}
	}
	if f := hi % 10; f < 9 {
		linkages[hi/10] = AdapterKey{Min: 0, Max: f}
	}

	t.SetConfig(
		first.WithDescription(c.IntDescription, c.IntFormatter),
		second.WithDescription(c.FractionDescription, c.FractionFormatter),
		linkages,
	)
}

// SetFloatValue moves to v rounded half-up to one decimal.
func (t *TwoWheel) SetFloatValue(v float64) {
	n := tenths(v)
	t.SetValue(n/10, n%10)
}

// FloatValue returns the selected value.
func (t *TwoWheel) FloatValue() float64 {
	i, f := t.Value()
	return float64(i) + float64(f)/10
}

// tenths rounds v half away from zero to one decimal and returns it in
// tenths.
func tenths(v float64) int {
	n := int(math.Floor(math.Abs(v)*10 + 0.5))
	if v < 0 {
		return -n
	}
	return n
}
