// Package scroller turns pointer gestures and programmatic scroll requests
// into a stream of integer scroll deltas, with inertial flings and a
// post-gesture justify phase.
package scroller

import (
	"math"
	"time"
)

const (
	// MinDeltaForScrolling is the residual offset below which justify does not animate.
	MinDeltaForScrolling = 1
	// DefaultScrollDuration is used when Scroll is called with a zero duration.
	DefaultScrollDuration = 400 * time.Millisecond
	// DefaultFlingThreshold is the release speed in px/ms above which a fling starts.
	DefaultFlingThreshold = 0.5
	// DefaultDeceleration is the fling deceleration in px/ms².
	DefaultDeceleration = 0.002
	// MaxFlingDuration bounds a single fling.
	MaxFlingDuration = 2 * time.Second
)

// State is the scroller's gesture state.
type State int

const (
	Idle State = iota
	Dragging
	Flinging
	Justifying
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Flinging:
		return "flinging"
	case Justifying:
		return "justifying"
	default:
		return "unknown"
	}
}

// EventKind is the kind of a pointer event.
type EventKind int

const (
	Down EventKind = iota
	Move
	Up
	Cancel
)

// Event is a vertical pointer event. Y is in host units relative to the
// wheel's top edge.
type Event struct {
	Kind EventKind
	Y    int
	Time time.Time
}

// Listener receives scroller callbacks. All callbacks run on the caller's
// goroutine, from OnPointerEvent, Scroll, StopScrolling or Tick.
type Listener interface {
	// OnStarted is called once when a gesture or animation starts moving.
	OnStarted()
	// OnScroll reports a delta since the previous callback.
	OnScroll(delta int)
	// OnFinished is called once after the last scroll of a gesture.
	OnFinished()
	// OnJustify asks the listener to settle any residual offset, typically
	// by calling Scroll.
	OnJustify()
}

// Config tunes the scroller.
type Config struct {
	FlingThreshold float64          // px/ms; 0 = DefaultFlingThreshold
	Deceleration   float64          // px/ms²; 0 = DefaultDeceleration
	Interpolator   Interpolator     // nil = Decelerate
	Now            func() time.Time // nil = time.Now
}

type animation struct {
	start    time.Time
	duration time.Duration
	target   int
	last     int
}

// Scroller is a single-goroutine gesture and fling state machine. Animation
// frames are pulled: the scroller calls requestFrame and the host answers
// by calling Tick on the same goroutine.
type Scroller struct {
	listener     Listener
	requestFrame func()
	cfg          Config

	state     State
	performed bool
	lastY     int
	tracker   velocityTracker
	anim      animation
	gen       uint64 // bumped whenever the running animation is replaced or stopped
}

// New creates an idle scroller reporting to listener.
func New(listener Listener, requestFrame func(), cfg Config) *Scroller {
	if cfg.FlingThreshold <= 0 {
		cfg.FlingThreshold = DefaultFlingThreshold
	}
	if cfg.Deceleration <= 0 {
		cfg.Deceleration = DefaultDeceleration
	}
	if cfg.Interpolator == nil {
		cfg.Interpolator = Decelerate
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if requestFrame == nil {
		requestFrame = func() {}
	}
	return &Scroller{listener: listener, requestFrame: requestFrame, cfg: cfg}
}

// State returns the current state.
func (s *Scroller) State() State { return s.state }

// IsScrolling reports whether started has been emitted without a matching finished.
func (s *Scroller) IsScrolling() bool { return s.performed }

// Animating reports whether Tick has work to do.
func (s *Scroller) Animating() bool {
	return s.state == Flinging || s.state == Justifying
}

// SetInterpolator replaces the easing used by subsequent animations.
func (s *Scroller) SetInterpolator(i Interpolator) {
	if i == nil {
		i = Decelerate
	}
	s.cfg.Interpolator = i
}

// SetFlingThreshold replaces the release speed above which a fling starts.
func (s *Scroller) SetFlingThreshold(pxPerMs float64) {
	if pxPerMs <= 0 {
		pxPerMs = DefaultFlingThreshold
	}
	s.cfg.FlingThreshold = pxPerMs
}

// OnPointerEvent feeds one pointer event into the state machine.
func (s *Scroller) OnPointerEvent(e Event) {
	if e.Time.IsZero() {
		e.Time = s.cfg.Now()
	}
	switch e.Kind {
	case Down:
		s.stopAnimation()
		s.state = Dragging
		s.lastY = e.Y
		s.tracker.reset()
		s.tracker.add(e.Time, e.Y)

	case Move:
		if s.state != Dragging {
			return
		}
		s.tracker.add(e.Time, e.Y)
		dy := e.Y - s.lastY
		if dy == 0 {
			return
		}
		s.startScrolling()
		s.lastY = e.Y
		s.listener.OnScroll(dy)

	case Up:
		if s.state != Dragging {
			return
		}
		s.tracker.add(e.Time, e.Y)
		// a release without a drag never flings
		v := s.tracker.velocity()
		if s.performed && math.Abs(v) > s.cfg.FlingThreshold {
			s.fling(v, e.Time)
			return
		}
		s.justify()

	case Cancel:
		if s.state == Idle {
			return
		}
		s.stopAnimation()
		s.finish()
	}
}

// Scroll animates a programmatic scroll by distance over duration. The
// listener receives a total of -distance in OnScroll deltas.
func (s *Scroller) Scroll(distance int, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultScrollDuration
	}
	s.stopAnimation()
	s.state = Justifying
	s.anim = animation{start: s.cfg.Now(), duration: duration, target: distance}
	s.startScrolling()
	s.requestFrame()
}

// StopScrolling halts immediately and emits finished if a scroll was in
// flight. Calling it while idle is a no-op.
func (s *Scroller) StopScrolling() {
	s.stopAnimation()
	s.finish()
}

// Tick advances the running animation to now.
func (s *Scroller) Tick(now time.Time) {
	if !s.Animating() {
		return
	}
	gen := s.gen
	if now.IsZero() {
		now = s.cfg.Now()
	}

	p := 1.0
	if s.anim.duration > 0 {
		p = float64(now.Sub(s.anim.start)) / float64(s.anim.duration)
	}
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	cur := int(math.Round(float64(s.anim.target) * s.cfg.Interpolator.Interpolate(p)))
	if p == 1 {
		cur = s.anim.target
	}
	delta := s.anim.last - cur
	s.anim.last = cur
	if delta != 0 {
		s.listener.OnScroll(delta)
		if gen != s.gen {
			return
		}
	}

	if p < 1 {
		s.requestFrame()
		return
	}
	if s.state == Flinging {
		s.justify()
		return
	}
	s.finish()
}

func (s *Scroller) fling(velocity float64, at time.Time) {
	s.gen++
	dist := velocity * velocity / (2 * s.cfg.Deceleration)
	dur := time.Duration(math.Abs(velocity)/s.cfg.Deceleration) * time.Millisecond
	if dur > MaxFlingDuration {
		dur = MaxFlingDuration
	}
	if dur <= 0 {
		dur = time.Millisecond
	}
	target := -int(math.Round(dist))
	if velocity < 0 {
		target = -target
	}
	s.state = Flinging
	s.anim = animation{start: at, duration: dur, target: target}
	s.requestFrame()
}

// justify asks the listener to settle. If the listener does not start a
// new animation the gesture finishes.
func (s *Scroller) justify() {
	gen := s.gen
	s.state = Justifying
	s.anim = animation{}
	s.listener.OnJustify()
	if gen != s.gen {
		return
	}
	s.finish()
}

func (s *Scroller) startScrolling() {
	if !s.performed {
		s.performed = true
		s.listener.OnStarted()
	}
}

func (s *Scroller) stopAnimation() {
	s.gen++
	s.anim = animation{}
}

func (s *Scroller) finish() {
	s.state = Idle
	if s.performed {
		s.performed = false
		s.listener.OnFinished()
	}
}
