// Package spin drives the wheel's rotation tween. It has no clock of its
// own: callers pass the current time on every call, so a terminal frame
// loop and a virtual clock in tests drive it the same way.
package spin

import (
	"math"
	"math/rand/v2"
	"time"
)

const (
	// DefaultDuration is how long a spin takes.
	DefaultDuration = 3000 * time.Millisecond
	// FrameInterval is the cadence frame loops step the animator at.
	FrameInterval = 16 * time.Millisecond

	minTurns   = 2
	extraTurns = 3
)

// State is Idle or Spinning.
type State int

const (
	Idle State = iota
	Spinning
)

func (s State) String() string {
	if s == Spinning {
		return "spinning"
	}
	return "idle"
}

// Session is the transient data of one spin.
type Session struct {
	Initial  float64
	Target   float64
	Start    time.Time
	Duration time.Duration
}

// Animator owns the wheel rotation. At most one session is active at a time.
type Animator struct {
	Rotation float64
	Duration time.Duration
	// Rand returns a value in [0, 1). Nil means math/rand/v2.
	Rand func() float64

	session *Session
}

// New returns an idle animator at rotation 0.
func New() *Animator {
	return &Animator{Duration: DefaultDuration}
}

// NewSeeded returns an animator whose draws are reproducible.
func NewSeeded(seed uint64) *Animator {
	a := New()
	a.Rand = rand.New(rand.NewPCG(seed, seed)).Float64
	return a
}

func (a *Animator) State() State {
	if a.session != nil {
		return Spinning
	}
	return Idle
}

func (a *Animator) Spinning() bool { return a.session != nil }

// Session returns the active session, if any.
func (a *Animator) Session() (Session, bool) {
	if a.session == nil {
		return Session{}, false
	}
	return *a.session, true
}

// Start begins a spin over n items at time now. It does nothing and
// returns false when there is nothing to spin or a spin is running.
func (a *Animator) Start(now time.Time, n int) bool {
	if n <= 0 || a.session != nil {
		return false
	}
	d := a.Duration
	if d <= 0 {
		d = DefaultDuration
	}
	a.session = &Session{
		Initial:  a.Rotation,
		Target:   a.Rotation + Turns(a.draw())*2*math.Pi,
		Start:    now,
		Duration: d,
	}
	return true
}

// Step advances the tween to now and reports the new rotation and whether
// the spin finished. On the finishing step the session is discarded.
// Stepping while idle returns the current rotation and true.
func (a *Animator) Step(now time.Time) (float64, bool) {
	s := a.session
	if s == nil {
		return a.Rotation, true
	}
	p := Progress(now.Sub(s.Start), s.Duration)
	a.Rotation = s.Initial + (s.Target-s.Initial)*EaseOut(p)
	if p < 1 {
		return a.Rotation, false
	}
	a.Rotation = s.Target
	a.session = nil
	return a.Rotation, true
}

func (a *Animator) draw() float64 {
	if a.Rand != nil {
		return a.Rand()
	}
	return rand.Float64()
}

// Turns maps a draw r in [0, 1) to the number of full revolutions of a
// spin, 2 + 3r, which lies in [2, 5).
func Turns(r float64) float64 {
	return minTurns + extraTurns*r
}

// Progress is elapsed/d clamped to [0, 1].
func Progress(elapsed, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(d)
	return math.Max(0, math.Min(p, 1))
}

// EaseOut is the cubic ease-out curve 1-(1-t)^3.
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
