// Package schedule folds declarative animation steps into a canonical timed schedule.
package schedule

import (
	"fmt"
	"time"
)

// StepKind identifies the variant of a Step.
type StepKind int

const (
	// StepWait holds the current state longer without changing it.
	StepWait StepKind = iota
	// StepTransition moves to a new target over a duration.
	StepTransition
)

// String returns the lowercase name of the step kind.
func (k StepKind) String() string {
	switch k {
	case StepWait:
		return "wait"
	case StepTransition:
		return "transition"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Step is a single instruction in an animation sequence.
// Target is only meaningful for StepTransition.
type Step[E comparable] struct {
	Kind     StepKind
	Duration time.Duration
	Target   E
}

// Wait returns a step that holds the current state for d.
func Wait[E comparable](d time.Duration) Step[E] {
	return Step[E]{Kind: StepWait, Duration: d}
}

// TransitionTo returns a step that moves to target over d.
func TransitionTo[E comparable](d time.Duration, target E) Step[E] {
	return Step[E]{Kind: StepTransition, Duration: d, Target: target}
}

// Event is a transition to a checkpoint followed by an optional hold.
type Event[E comparable] struct {
	// TransitionDuration is how long the move to Target takes.
	TransitionDuration time.Duration

	// Target is the checkpoint reached at the end of the transition.
	Target E

	// Dwell is the accumulated hold after Target is reached. Nil means no hold.
	Dwell *time.Duration
}

// DwellOrZero returns the dwell duration, or 0 when there is none.
func (e Event[E]) DwellOrZero() time.Duration {
	if e.Dwell == nil {
		return 0
	}
	return *e.Dwell
}

// Schedule is an initial delay followed by events in chronological order.
//
// Events are appended at the tail as steps are folded. Latest returns the
// event the next step merges into.
type Schedule[E comparable] struct {
	InitialDelay time.Duration
	Events       []Event[E]
}

// Build folds steps into a Schedule. It never fails; an empty step list
// yields the zero Schedule.
func Build[E comparable](steps []Step[E]) Schedule[E] {
	var s Schedule[E]
	for _, step := range steps {
		s.apply(step)
	}
	return s
}

func (s *Schedule[E]) apply(step Step[E]) {
	if len(s.Events) == 0 {
		switch step.Kind {
		case StepWait:
			// Nothing to dwell on yet.
			s.InitialDelay += step.Duration
		case StepTransition:
			s.Events = append(s.Events, Event[E]{
				TransitionDuration: step.Duration,
				Target:             step.Target,
			})
		}
		return
	}

	last := &s.Events[len(s.Events)-1]
	switch step.Kind {
	case StepWait:
		last.Dwell = AddToDwell(last.Dwell, step.Duration)
	case StepTransition:
		if step.Target == last.Target {
			// Re-targeting the same checkpoint means stay there longer.
			last.Dwell = AddToDwell(last.Dwell, step.Duration)
			return
		}
		s.Events = append(s.Events, Event[E]{
			TransitionDuration: step.Duration,
			Target:             step.Target,
		})
	}
}

// AddToDwell returns a new dwell holding existing plus d. A nil existing
// dwell is treated as absent, so the result is exactly d.
func AddToDwell(existing *time.Duration, d time.Duration) *time.Duration {
	total := d
	if existing != nil {
		total += *existing
	}
	return &total
}

// Latest returns the most recent event, if any.
func (s Schedule[E]) Latest() (Event[E], bool) {
	if len(s.Events) == 0 {
		var zero Event[E]
		return zero, false
	}
	return s.Events[len(s.Events)-1], true
}

// Length returns the full running time: initial delay plus every
// transition and dwell.
func (s Schedule[E]) Length() time.Duration {
	total := s.InitialDelay
	for _, event := range s.Events {
		total += event.TransitionDuration + event.DwellOrZero()
	}
	return total
}

// Targets returns the checkpoint of each event in chronological order.
func (s Schedule[E]) Targets() []E {
	targets := make([]E, 0, len(s.Events))
	for _, event := range s.Events {
		targets = append(targets, event.Target)
	}
	return targets
}
