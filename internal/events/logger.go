// Package events records choreo activity into the history log.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/opencode-ai/choreo/internal/models"
	"github.com/opencode-ai/choreo/internal/oscillator"
	"github.com/opencode-ai/choreo/internal/schedule"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// OscillatorSpec describes how an oscillator was assembled, for the log.
type OscillatorSpec struct {
	Shape  string
	From   float64
	To     float64
	Shift  float64
	Active time.Duration
}

// LogScheduleBuilt records that a sequence was folded into a schedule.
func LogScheduleBuilt(ctx context.Context, repo Repository, name, source string, steps int, s schedule.Schedule[string]) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("sequence name is required")
	}

	payload := models.ScheduleBuiltPayload{
		Source:         source,
		StepCount:      steps,
		InitialDelayMS: s.InitialDelay.Milliseconds(),
		LengthMS:       s.Length().Milliseconds(),
		Events:         make([]models.ScheduleEventPayload, 0, len(s.Events)),
	}
	for _, ev := range s.Events {
		item := models.ScheduleEventPayload{
			Target:       ev.Target,
			TransitionMS: ev.TransitionDuration.Milliseconds(),
		}
		if ev.Dwell != nil {
			ms := ev.Dwell.Milliseconds()
			item.DwellMS = &ms
		}
		payload.Events = append(payload.Events, item)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeScheduleBuilt,
		EntityType: models.EntityTypeSequence,
		EntityID:   name,
		Payload:    data,
	})
}

// LogOscillatorSampled records that an oscillator cycle was sampled.
func LogOscillatorSampled(ctx context.Context, repo Repository, spec OscillatorSpec, osc oscillator.Oscillator, cycle oscillator.Cycle, samples int) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if spec.Shape == "" {
		return fmt.Errorf("oscillator shape is required")
	}

	payload := models.OscillatorSampledPayload{
		Shape:    spec.Shape,
		From:     spec.From,
		To:       spec.To,
		Shift:    spec.Shift,
		ActiveMS: spec.Active.Milliseconds(),
		TotalMS:  cycle.Total.Milliseconds(),
		Samples:  samples,
	}
	for _, p := range osc.Pauses() {
		payload.Pauses = append(payload.Pauses, models.PausePayload{
			DurationMS: p.Duration.Milliseconds(),
			Anchor:     p.Anchor,
			Value:      p.Value,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal oscillator payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeOscillatorSampled,
		EntityType: models.EntityTypeOscillator,
		EntityID:   spec.Shape,
		Payload:    data,
	})
}

// LogSequenceLoaded records that a sequence definition was read.
func LogSequenceLoaded(ctx context.Context, repo Repository, name, source string, steps int) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("sequence name is required")
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeSequenceLoaded,
		EntityType: models.EntityTypeSequence,
		EntityID:   name,
		Metadata: map[string]string{
			"source": source,
			"steps":  strconv.Itoa(steps),
		},
	})
}

// LogError records a failed command against the system entity.
func LogError(ctx context.Context, repo Repository, command string, cause error) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if cause == nil {
		return nil
	}

	data, err := json.Marshal(models.ErrorPayload{Error: cause.Error(), Context: command})
	if err != nil {
		return fmt.Errorf("failed to marshal error payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeError,
		EntityType: models.EntityTypeSystem,
		EntityID:   "choreo",
		Payload:    data,
	})
}
