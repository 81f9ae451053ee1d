package scroller

import "time"

// velocityWindow is how far back samples contribute to the release velocity.
const velocityWindow = 100 * time.Millisecond

type sample struct {
	at time.Time
	y  int
}

// velocityTracker estimates pointer velocity in px/ms from recent samples.
type velocityTracker struct {
	samples []sample
}

func (v *velocityTracker) reset() {
	v.samples = v.samples[:0]
}

func (v *velocityTracker) add(at time.Time, y int) {
	v.samples = append(v.samples, sample{at: at, y: y})
	cutoff := at.Add(-velocityWindow)
	drop := 0
	for drop < len(v.samples)-1 && v.samples[drop].at.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		v.samples = append(v.samples[:0], v.samples[drop:]...)
	}
}

// velocity returns the least-squares slope of y over time, in px/ms.
func (v *velocityTracker) velocity() float64 {
	n := len(v.samples)
	if n < 2 {
		return 0
	}
	origin := v.samples[0].at
	var sumT, sumY, sumTT, sumTY float64
	for _, s := range v.samples {
		t := float64(s.at.Sub(origin).Microseconds()) / 1000
		y := float64(s.y)
		sumT += t
		sumY += y
		sumTT += t * t
		sumTY += t * y
	}
	fn := float64(n)
	denom := fn*sumTT - sumT*sumT
	if denom == 0 {
		return 0
	}
	return (fn*sumTY - sumT*sumY) / denom
}
