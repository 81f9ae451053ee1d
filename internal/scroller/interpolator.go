package scroller

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Interpolator maps elapsed animation progress in [0, 1] to distance progress in [0, 1].
type Interpolator interface {
	Interpolate(t float64) float64
}

// InterpolatorFunc adapts a plain function to Interpolator.
type InterpolatorFunc func(t float64) float64

func (f InterpolatorFunc) Interpolate(t float64) float64 { return f(t) }

var (
	// Linear moves at constant speed.
	Linear = InterpolatorFunc(func(t float64) float64 { return t })

	// Decelerate starts fast and eases out quadratically.
	Decelerate = InterpolatorFunc(func(t float64) float64 {
		return 1 - (1-t)*(1-t)
	})

	// AccelerateDecelerate eases in and out along a cosine.
	AccelerateDecelerate = InterpolatorFunc(func(t float64) float64 {
		return (math.Cos((t+1)*math.Pi) / 2) + 0.5
	})

	// Viscous approximates a fluid decelerating against drag.
	Viscous = InterpolatorFunc(viscousFluid)
)

const viscousScale = 8.0

var viscousNormalize = 1 / viscousRaw(1)

func viscousRaw(x float64) float64 {
	x *= viscousScale
	if x < 1 {
		return x - (1 - math.Exp(-x))
	}
	start := 0.36787944117 // 1/e
	x = 1 - math.Exp(1-x)
	return start + x*(1-start)
}

func viscousFluid(t float64) float64 {
	return viscousRaw(t) * viscousNormalize
}

var interpolators = map[string]Interpolator{
	"linear":                Linear,
	"decelerate":            Decelerate,
	"accelerate-decelerate": AccelerateDecelerate,
	"viscous":               Viscous,
}

// InterpolatorNames lists the names accepted by ParseInterpolator.
func InterpolatorNames() []string {
	names := make([]string, 0, len(interpolators))
	for name := range interpolators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseInterpolator resolves a configured interpolator name.
func ParseInterpolator(name string) (Interpolator, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	if key == "" {
		return Decelerate, nil
	}
	if i, ok := interpolators[key]; ok {
		return i, nil
	}
	return nil, fmt.Errorf("unknown interpolator %q (valid: %s)", name, strings.Join(InterpolatorNames(), ", "))
}
