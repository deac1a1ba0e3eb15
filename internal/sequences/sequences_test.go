package sequences

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/choreo/internal/schedule"
)

func writeSequence(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write sequence: %v", err)
	}
	return path
}

func TestLoadSequence(t *testing.T) {
	path := writeSequence(t, t.TempDir(), "example.yaml", `name: example
description: Example sequence
tags: [UI]
steps:
  - type: Wait
    duration: 1s
  - type: to
    duration: 500ms
    target: " open "
  - type: hold
    duration: 2s
`)

	seq, err := LoadSequence(path)
	if err != nil {
		t.Fatalf("LoadSequence: %v", err)
	}

	if seq.Name != "example" {
		t.Fatalf("expected name example, got %q", seq.Name)
	}
	if seq.Source != path {
		t.Fatalf("expected source %q, got %q", path, seq.Source)
	}
	if seq.Steps[0].Type != StepTypeWait || seq.Steps[1].Type != StepTypeTransition || seq.Steps[2].Type != StepTypeWait {
		t.Fatalf("unexpected step types: %+v", seq.Steps)
	}
	if got := seq.Steps[1].Target; got != "open" {
		t.Fatalf("expected trimmed target open, got %q", got)
	}
	if !seq.HasTag("ui") {
		t.Fatalf("expected tag ui, got %v", seq.Tags)
	}
}

func TestLoadSequenceErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", "steps:\n  - type: wait\n    duration: 1s\n"},
		{"no steps", "name: x\n"},
		{"unknown type", "name: x\nsteps:\n  - type: jump\n    duration: 1s\n"},
		{"missing duration", "name: x\nsteps:\n  - type: wait\n"},
		{"bad duration", "name: x\nsteps:\n  - type: wait\n    duration: soon\n"},
		{"negative duration", "name: x\nsteps:\n  - type: wait\n    duration: -1s\n"},
		{"transition without target", "name: x\nsteps:\n  - type: transition\n    duration: 1s\n"},
		{"wait with target", "name: x\nsteps:\n  - type: wait\n    duration: 1s\n    target: open\n"},
		{"invalid yaml", "name: [x\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSequence(t, t.TempDir(), "bad.yaml", tt.body)
			if _, err := LoadSequence(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadSequencesFromDir(t *testing.T) {
	dir := t.TempDir()
	writeSequence(t, dir, "b.yaml", "name: beta\nsteps:\n  - type: wait\n    duration: 1s\n")
	writeSequence(t, dir, "a.yml", "name: alpha\nsteps:\n  - type: wait\n    duration: 1s\n")
	writeSequence(t, dir, "notes.txt", "ignored")

	seqs, err := LoadSequencesFromDir(dir)
	require.NoError(t, err)
	require.Len(t, seqs, 2)
	require.Equal(t, "alpha", seqs[0].Name)
	require.Equal(t, "beta", seqs[1].Name)

	missing, err := LoadSequencesFromDir(filepath.Join(dir, "missing"))
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestSequenceSchedule(t *testing.T) {
	seq := &Sequence{
		Name: "door",
		Steps: []SequenceStep{
			{Type: StepTypeWait, Duration: "1s"},
			{Type: StepTypeTransition, Duration: "2s", Target: "open"},
			{Type: StepTypeWait, Duration: "3s"},
			{Type: StepTypeTransition, Duration: "1s", Target: "open"},
			{Type: StepTypeTransition, Duration: "2s", Target: "closed"},
		},
	}

	s, err := seq.Schedule()
	require.NoError(t, err)
	require.Equal(t, time.Second, s.InitialDelay)
	require.Equal(t, []string{"open", "closed"}, s.Targets())
	require.Equal(t, 4*time.Second, s.Events[0].DwellOrZero())
	require.Nil(t, s.Events[1].Dwell)
}

func TestScheduleStepsRejectsUnnormalized(t *testing.T) {
	seq := &Sequence{Name: "x", Steps: []SequenceStep{{Type: "jump", Duration: "1s"}}}
	_, err := seq.ScheduleSteps()
	require.Error(t, err)

	var nilSeq *Sequence
	_, err = nilSeq.ScheduleSteps()
	require.Error(t, err)
}

func TestLoadBuiltinSequences(t *testing.T) {
	sequences, err := LoadBuiltinSequences()
	if err != nil {
		t.Fatalf("LoadBuiltinSequences: %v", err)
	}
	if len(sequences) < 3 {
		t.Fatalf("expected at least 3 builtin sequences, got %d", len(sequences))
	}

	for _, seq := range sequences {
		if seq.Source != "builtin" {
			t.Fatalf("expected builtin source, got %q", seq.Source)
		}
		if _, err := seq.Schedule(); err != nil {
			t.Fatalf("builtin %q does not build: %v", seq.Name, err)
		}
	}

	door := Find(sequences, "DOOR")
	require.NotNil(t, door)
	s, err := door.Schedule()
	require.NoError(t, err)
	require.Equal(t, []schedule.Event[string]{
		{TransitionDuration: 2 * time.Second, Target: "open", Dwell: ptr(4 * time.Second)},
		{TransitionDuration: 2 * time.Second, Target: "closed"},
	}, s.Events)
}

func TestLoadSequencesFromSearchPathsPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	dir := filepath.Join(project, ".choreo", "sequences")
	require.NoError(t, os.MkdirAll(dir, 0755))
	writeSequence(t, dir, "door.yaml", "name: door\nsteps:\n  - type: wait\n    duration: 9s\n")
	writeSequence(t, dir, "custom.yaml", "name: custom\nsteps:\n  - type: wait\n    duration: 1s\n")

	seqs, err := LoadSequencesFromSearchPaths(project)
	require.NoError(t, err)

	door := Find(seqs, "door")
	require.NotNil(t, door)
	require.NotEqual(t, "builtin", door.Source)
	require.NotNil(t, Find(seqs, "custom"))
	require.NotNil(t, Find(seqs, "fade"))
}

func TestResolve(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	project := t.TempDir()
	path := writeSequence(t, project, "one.yaml", "name: one\nsteps:\n  - type: wait\n    duration: 1s\n")

	seq, err := Resolve(project, path)
	require.NoError(t, err)
	require.Equal(t, "one", seq.Name)

	seq, err = Resolve(project, "fade")
	require.NoError(t, err)
	require.Equal(t, "builtin", seq.Source)

	_, err = Resolve(project, "nonexistent")
	if !errors.Is(err, ErrSequenceNotFound) {
		t.Fatalf("expected ErrSequenceNotFound, got %v", err)
	}
}

func ptr(d time.Duration) *time.Duration { return &d }
