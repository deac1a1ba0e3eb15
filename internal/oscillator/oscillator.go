// Package oscillator provides periodic value generators that can be paused
// at points in their cycle without distorting the cycle's own shape.
//
// An Oscillator is defined over the active cycle: a normalized [0,1) domain
// that excludes pause time. Oscillate turns it into a Cycle over the total
// cycle (active time plus every pause), which is what a host evaluates as
// wall-clock time passes.
package oscillator

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrPausesOutOfOrder is returned by ValidatePauses when pause anchors are
// not in non-decreasing order.
var ErrPausesOutOfOrder = errors.New("pauses out of anchor order")

// Func maps progress through the active cycle to an output value.
type Func func(u float64) float64

// Pause holds the output at Value for Duration of wall-clock time.
// Anchor is a position in the active cycle, not the total cycle.
type Pause struct {
	Duration time.Duration
	Anchor   float64
	Value    float64
}

// Oscillator is an immutable active-cycle function plus its pauses.
// Combinators return new values and never modify their input.
type Oscillator struct {
	pauses []Pause
	active Func
}

// New returns an Oscillator with no pauses.
func New(active Func) Oscillator {
	return Oscillator{active: active}
}

// Active evaluates the active-cycle function directly.
func (o Oscillator) Active(u float64) float64 {
	if o.active == nil {
		return 0
	}
	return o.active(u)
}

// Pauses returns a copy of the pause list, most recently added first.
func (o Oscillator) Pauses() []Pause {
	out := make([]Pause, len(o.pauses))
	copy(out, o.pauses)
	return out
}

// Validate reports whether the pause list satisfies ValidatePauses.
func (o Oscillator) Validate() error {
	return ValidatePauses(o.pauses)
}

// Shift phase-shifts the active function by x, leaving pauses untouched.
func Shift(x float64, osc Oscillator) Oscillator {
	inner := osc.active
	return Oscillator{
		pauses: osc.pauses,
		active: func(u float64) float64 {
			if inner == nil {
				return 0
			}
			return inner(WrapToUnit(u + x))
		},
	}
}

// WithPause prepends a pause to the oscillator's pause list.
//
// Evaluation visits pauses in list order and expects ascending anchors, so
// pauses should be added from the highest anchor down.
func WithPause(d time.Duration, anchor, value float64, osc Oscillator) Oscillator {
	pauses := make([]Pause, 0, len(osc.pauses)+1)
	pauses = append(pauses, Pause{Duration: d, Anchor: anchor, Value: value})
	pauses = append(pauses, osc.pauses...)
	return Oscillator{pauses: pauses, active: osc.active}
}

// ValidatePauses checks that a multi-pause list is ordered by non-decreasing
// anchor. Anchors outside [0,1] are allowed.
func ValidatePauses(pauses []Pause) error {
	for i := 1; i < len(pauses); i++ {
		if pauses[i].Anchor < pauses[i-1].Anchor {
			return fmt.Errorf("%w: pause %d anchor %g follows anchor %g",
				ErrPausesOutOfOrder, i+1, pauses[i].Anchor, pauses[i-1].Anchor)
		}
	}
	return nil
}

// WrapToUnit maps u into [0,1).
func WrapToUnit(u float64) float64 {
	return u - math.Floor(u)
}

// Wrap is a linear ramp from start to end. It does not wrap u itself.
func Wrap(start, end float64) Oscillator {
	return New(func(u float64) float64 {
		return start + u*(end-start)
	})
}

// Wave is a raised sinusoid that begins at start, peaks at end halfway
// through the cycle and stays within [start, end].
func Wave(start, end float64) Oscillator {
	return New(func(u float64) float64 {
		return start + (end-start)*(1-math.Cos(2*math.Pi*u))/2
	})
}

// Zigzag is currently the same linear ramp as Wrap.
// TODO: make this a triangle wave once callers agree on the new shape.
func Zigzag(start, end float64) Oscillator {
	return New(func(u float64) float64 {
		return start + (end-start)*u
	})
}
