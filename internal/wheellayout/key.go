package wheellayout

import (
	"errors"
	"fmt"
)

// ErrMinAfterMax is returned when a range is configured backwards.
var ErrMinAfterMax = errors.New("min must not be greater than max")

// AdapterKey identifies an integer range. Two keys with the same bounds
// share one adapter; Cyclic only affects the wheel.
type AdapterKey struct {
	Min, Max int
	Cyclic   bool
}

// NewAdapterKey validates min <= max.
func NewAdapterKey(min, max int, cyclic bool) (AdapterKey, error) {
	if min > max {
		return AdapterKey{}, fmt.Errorf("range %d..%d: %w", min, max, ErrMinAfterMax)
	}
	return AdapterKey{Min: min, Max: max, Cyclic: cyclic}, nil
}

type rangeKey struct{ min, max int }

func (k AdapterKey) rangeKey() rangeKey { return rangeKey{k.Min, k.Max} }

// SameRange reports whether k and other select the same adapter.
func (k AdapterKey) SameRange(other AdapterKey) bool { return k.rangeKey() == other.rangeKey() }

// Clamp limits v to Min..Max.
func (k AdapterKey) Clamp(v int) int { return min(max(v, k.Min), k.Max) }

// WithDescription turns k into a column config.
func (k AdapterKey) WithDescription(description string, formatter Formatter) IntConfig {
	return IntConfig{AdapterKey: k, Description: description, Formatter: formatter}
}

// IntConfig configures one integer column.
type IntConfig struct {
	AdapterKey
	Description string    // Unit label shown next to the column, e.g. "kg"
	Formatter   Formatter // nil renders decimal
}

// NewIntConfig validates the range and builds a column config.
func NewIntConfig(min, max int, cyclic bool, description string, formatter Formatter) (IntConfig, error) {
	k, err := NewAdapterKey(min, max, cyclic)
	if err != nil {
		return IntConfig{}, err
	}
	return k.WithDescription(description, formatter), nil
}

// FloatConfig configures a two-column picker for values with one decimal.
type FloatConfig struct {
	Min, Max float64

	IntCyclic      bool
	IntDescription string
	IntFormatter   Formatter

	FractionCyclic      bool
	FractionDescription string
	FractionFormatter   Formatter
}

// NewFloatConfig validates the bounds. The fraction column wraps by default.
func NewFloatConfig(min, max float64) (FloatConfig, error) {
	if min > max {
		return FloatConfig{}, fmt.Errorf("range %g..%g: %w", min, max, ErrMinAfterMax)
	}
	if min < 0 {
		return FloatConfig{}, fmt.Errorf("range %g..%g: negative values are not supported", min, max)
	}
	return FloatConfig{Min: min, Max: max, FractionCyclic: true}, nil
}
