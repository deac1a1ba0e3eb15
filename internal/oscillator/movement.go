package oscillator

import "time"

// MovementKind distinguishes a fixed target from an oscillating one.
type MovementKind int

const (
	MovementTo MovementKind = iota
	MovementOrbit
)

// Movement is what an interpolation host moves toward: either a fixed value
// or an oscillating cycle.
type Movement struct {
	Kind   MovementKind
	Target float64
	Cycle  Cycle
}

// To returns a movement toward a fixed value.
func To(value float64) Movement {
	return Movement{Kind: MovementTo, Target: value}
}

// Orbit returns a movement that follows osc over activeDuration plus its pauses.
func Orbit(activeDuration time.Duration, osc Oscillator) Movement {
	return Movement{Kind: MovementOrbit, Cycle: Oscillate(activeDuration, osc)}
}

// Period is the total cycle duration of an orbit, or 0 for a fixed target.
func (m Movement) Period() time.Duration {
	if m.Kind != MovementOrbit {
		return 0
	}
	return m.Cycle.Total
}

// At returns the movement's value after elapsed wall-clock time.
func (m Movement) At(elapsed time.Duration) float64 {
	if m.Kind != MovementOrbit {
		return m.Target
	}
	return m.Cycle.At(elapsed)
}
