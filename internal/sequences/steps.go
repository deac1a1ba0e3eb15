package sequences

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/choreo/internal/schedule"
)

// ScheduleSteps converts the sequence into schedule steps keyed by target name.
func (s *Sequence) ScheduleSteps() ([]schedule.Step[string], error) {
	if s == nil {
		return nil, fmt.Errorf("sequence is required")
	}

	steps := make([]schedule.Step[string], 0, len(s.Steps))
	for i, step := range s.Steps {
		d, err := parseStepDuration(step.Duration)
		if err != nil {
			return nil, fmt.Errorf("sequence %q step %d: %w", s.Name, i+1, err)
		}

		switch step.Type {
		case StepTypeWait:
			steps = append(steps, schedule.Wait[string](d))
		case StepTypeTransition:
			if step.Target == "" {
				return nil, fmt.Errorf("sequence %q step %d: transition target is required", s.Name, i+1)
			}
			steps = append(steps, schedule.TransitionTo(d, step.Target))
		default:
			return nil, fmt.Errorf("sequence %q step %d: unknown step type %q", s.Name, i+1, step.Type)
		}
	}
	return steps, nil
}

// Schedule folds the sequence into a schedule.
func (s *Sequence) Schedule() (schedule.Schedule[string], error) {
	steps, err := s.ScheduleSteps()
	if err != nil {
		return schedule.Schedule[string]{}, err
	}
	return schedule.Build(steps), nil
}

// HasTag reports whether the sequence carries tag, case-insensitively.
func (s *Sequence) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if strings.EqualFold(t, strings.TrimSpace(tag)) {
			return true
		}
	}
	return false
}
