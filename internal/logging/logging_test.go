package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestComponentJSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	logger := Component("schedule")
	logger.Debug().Int("events", 2).Msg("built")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "schedule", entry["component"])
	require.Equal(t, "built", entry["message"])
	require.EqualValues(t, 2, entry["events"])
}

func TestLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "error", Format: "json"}, &buf)

	logger := Component("test")
	logger.Info().Msg("hidden")
	require.Zero(t, buf.Len())
}
