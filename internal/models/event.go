// Package models defines the records choreo persists.
package models

import (
	"encoding/json"
	"strings"
	"time"
)

// EventType categorizes events in the history log.
type EventType string

const (
	// Sequence events
	EventTypeSequenceLoaded EventType = "sequence.loaded"

	// Schedule events
	EventTypeScheduleBuilt EventType = "schedule.built"

	// Oscillator events
	EventTypeOscillatorSampled EventType = "oscillator.sampled"

	// System events
	EventTypeError EventType = "error"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeSequence   EntityType = "sequence"
	EntityTypeOscillator EntityType = "oscillator"
	EntityTypeSystem     EntityType = "system"
)

// Event represents an append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID names the related entity, e.g. a sequence name.
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Metadata contains additional context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(string(e.Type)) == "" {
		validation.AddMessage("type", "event type is required")
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		validation.AddMessage("entity_type", "entity_type is required")
	}
	if strings.TrimSpace(e.EntityID) == "" {
		validation.AddMessage("entity_id", "entity_id is required")
	}
	return validation.Err()
}

// ScheduleEventPayload is one event of a built schedule, in milliseconds.
type ScheduleEventPayload struct {
	Target       string `json:"target"`
	TransitionMS int64  `json:"transition_ms"`
	DwellMS      *int64 `json:"dwell_ms,omitempty"`
}

// ScheduleBuiltPayload is the payload for schedule.built events.
type ScheduleBuiltPayload struct {
	Source         string                 `json:"source,omitempty"`
	StepCount      int                    `json:"step_count"`
	InitialDelayMS int64                  `json:"initial_delay_ms"`
	LengthMS       int64                  `json:"length_ms"`
	Events         []ScheduleEventPayload `json:"events"`
}

// PausePayload describes one oscillator pause.
type PausePayload struct {
	DurationMS int64   `json:"duration_ms"`
	Anchor     float64 `json:"anchor"`
	Value      float64 `json:"value"`
}

// OscillatorSampledPayload is the payload for oscillator.sampled events.
type OscillatorSampledPayload struct {
	Shape    string         `json:"shape"`
	From     float64        `json:"from"`
	To       float64        `json:"to"`
	Shift    float64        `json:"shift,omitempty"`
	ActiveMS int64          `json:"active_ms"`
	TotalMS  int64          `json:"total_ms"`
	Pauses   []PausePayload `json:"pauses,omitempty"`
	Samples  int            `json:"samples"`
}

// ErrorPayload is the payload for error events.
type ErrorPayload struct {
	Error   string `json:"error"`
	Context string `json:"context,omitempty"`
}
