package cli

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/choreo/internal/events"
	"github.com/opencode-ai/choreo/internal/oscillator"
)

func TestParsePause(t *testing.T) {
	osc := oscillator.Wrap(0, 10)

	p, err := parsePause("2s@0.25=7", osc)
	require.NoError(t, err)
	require.Equal(t, oscillator.Pause{Duration: 2 * time.Second, Anchor: 0.25, Value: 7}, p)

	p, err = parsePause(" 500ms @ 0.5 ", osc)
	require.NoError(t, err)
	require.Equal(t, 500*time.Millisecond, p.Duration)
	require.InDelta(t, 5.0, p.Value, 1e-9, "value defaults to the active output at the anchor")

	for _, raw := range []string{"2s", "bogus@0.5", "-1s@0.5", "1s@x", "1s@0.5=y"} {
		_, err := parsePause(raw, osc)
		require.Error(t, err, raw)
	}
}

func TestOscillatorFlagsBuildKeepsPauseOrder(t *testing.T) {
	flags := oscillatorFlags{
		shape:  "Wrap",
		from:   0,
		to:     1,
		active: 10 * time.Second,
		pauses: []string{"1s@0.2=-1", "1s@0.6=-2"},
	}

	spec, osc, err := flags.build()
	require.NoError(t, err)
	require.Equal(t, "wrap", spec.Shape)

	pauses := osc.Pauses()
	require.Len(t, pauses, 2)
	require.Equal(t, 0.2, pauses[0].Anchor)
	require.Equal(t, 0.6, pauses[1].Anchor)

	cycle := oscillator.Oscillate(spec.Active, osc)
	require.Equal(t, 12*time.Second, cycle.Total)
	require.Equal(t, -1.0, cycle.Eval(2.5/12))
}

func TestOscillatorFlagsBuildRejectsUnorderedPauses(t *testing.T) {
	flags := oscillatorFlags{
		shape:  "wave",
		to:     1,
		active: time.Second,
		pauses: []string{"1s@0.6=0", "1s@0.2=0"},
	}

	_, _, err := flags.build()
	require.Error(t, err)
	require.True(t, errors.Is(err, oscillator.ErrPausesOutOfOrder))
}

func TestOscillatorFlagsBuildErrors(t *testing.T) {
	_, _, err := (&oscillatorFlags{shape: "square", active: time.Second}).build()
	require.ErrorContains(t, err, "unknown shape")

	_, _, err = (&oscillatorFlags{shape: "wave", active: -time.Second}).build()
	require.Error(t, err)
}

func TestNewOscillationReport(t *testing.T) {
	osc := oscillator.WithPause(2*time.Second, 0.5, 1, oscillator.Wrap(0, 1))
	cycle := oscillator.Oscillate(8*time.Second, osc)

	report := newOscillationReport(events.OscillatorSpec{Shape: "wrap", To: 1, Active: 8 * time.Second}, cycle, 10)
	require.Equal(t, "10s", report.Total)
	require.Len(t, report.Samples, 10)

	// Pause window is [0.4, 0.6].
	require.False(t, report.Samples[3].Paused)
	require.True(t, report.Samples[4].Paused)
	require.True(t, report.Samples[5].Paused)
	require.Equal(t, 1.0, report.Samples[5].Value)
	require.False(t, report.Samples[7].Paused)
	require.Equal(t, "5s", report.Samples[5].At)
}

func TestShapeOscillator(t *testing.T) {
	for _, shape := range []string{"wrap", "wave", "zigzag"} {
		osc, err := shapeOscillator(shape, 2, 4)
		require.NoError(t, err, shape)
		require.InDelta(t, 2.0, osc.Active(0), 1e-9, shape)
	}
}
