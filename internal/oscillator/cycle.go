package oscillator

import "time"

// Bounds is the window a pause occupies in total-cycle coordinates.
type Bounds struct {
	Start float64
	End   float64
}

// Span is the width of the window.
func (b Bounds) Span() float64 {
	return b.End - b.Start
}

// Contains reports whether u falls inside the closed window.
func (b Bounds) Contains(u float64) bool {
	return u >= b.Start && u <= b.End
}

// Cycle is an oscillator resolved against a concrete active duration.
type Cycle struct {
	// Total is the active duration plus every pause duration. Hosts divide
	// elapsed wall-clock time by Total to get the progress passed to Eval.
	Total time.Duration

	active Func
	pauses []Pause
	bounds []Bounds
}

// Oscillate resolves osc against activeDuration. It is total: with no pauses
// Eval is the active function itself, and a zero Total disables pause
// handling instead of dividing by zero.
func Oscillate(activeDuration time.Duration, osc Oscillator) Cycle {
	total := activeDuration
	for _, p := range osc.pauses {
		total += p.Duration
	}

	c := Cycle{
		Total:  total,
		active: osc.active,
	}
	if total <= 0 {
		return c
	}

	c.pauses = osc.pauses
	c.bounds = make([]Bounds, len(osc.pauses))
	for i, p := range osc.pauses {
		c.bounds[i] = pauseToBounds(p, activeDuration, total)
	}
	return c
}

// pauseToBounds places a pause in total-cycle coordinates using only its own
// anchor and duration. Earlier pauses are accounted for by Eval.
func pauseToBounds(p Pause, active, total time.Duration) Bounds {
	offset := p.Anchor * float64(active)
	return Bounds{
		Start: offset / float64(total),
		End:   (offset + float64(p.Duration)) / float64(total),
	}
}

// Bounds returns the window of each pause, in pause-list order.
func (c Cycle) Bounds() []Bounds {
	out := make([]Bounds, len(c.bounds))
	copy(out, c.bounds)
	return out
}

// Eval returns the output at total-cycle progress u.
//
// Inside a pause window the output is that pause's Value. Otherwise the
// active function receives u with the span of each elapsed pause removed.
// When a pause has elapsed and u has also reached the next pause, the gap
// between them is credited before moving on to the next pause.
func (c Cycle) Eval(u float64) float64 {
	a := u
	for i, b := range c.bounds {
		if b.Contains(u) {
			return c.pauses[i].Value
		}
		if u < b.Start {
			break
		}

		gap := 0.0
		if i+1 < len(c.bounds) {
			next := c.bounds[i+1]
			if u >= next.Start {
				gap = next.Start - b.End
			}
		}
		a = a + gap - b.Span()
	}
	if c.active == nil {
		return 0
	}
	return c.active(a)
}

// Paused reports whether u falls inside any pause window.
func (c Cycle) Paused(u float64) bool {
	for _, b := range c.bounds {
		if b.Contains(u) {
			return true
		}
	}
	return false
}

// Progress converts elapsed wall-clock time into total-cycle progress in
// [0,1). A zero Total always yields 0.
func (c Cycle) Progress(elapsed time.Duration) float64 {
	if c.Total <= 0 {
		return 0
	}
	r := elapsed % c.Total
	if r < 0 {
		r += c.Total
	}
	return float64(r) / float64(c.Total)
}

// At evaluates the cycle after elapsed wall-clock time.
func (c Cycle) At(elapsed time.Duration) float64 {
	return c.Eval(c.Progress(elapsed))
}
