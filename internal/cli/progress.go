package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/opencode-ai/choreo/internal/oscillator"
	"github.com/opencode-ai/choreo/internal/schedule"
)

// progressOutput receives progress lines; tests swap it out.
var progressOutput io.Writer = os.Stderr

// progressStep is one reported CLI step. A nil step is silent.
type progressStep struct {
	out     io.Writer
	label   string
	started time.Time
}

func startProgress(label string) *progressStep {
	if !progressEnabled() {
		return nil
	}
	fmt.Fprintf(progressOutput, "%s... ", label)
	return &progressStep{out: progressOutput, label: label, started: time.Now()}
}

// Done ends the step with a summary of what it produced.
func (p *progressStep) Done(summary string) {
	if p == nil {
		return
	}
	elapsed := formatDuration(time.Since(p.started))
	if summary = strings.TrimSpace(summary); summary == "" {
		fmt.Fprintf(p.out, "done (%s)\n", elapsed)
		return
	}
	fmt.Fprintf(p.out, "%s (%s)\n", summary, elapsed)
}

func (p *progressStep) Fail(err error) {
	if p == nil {
		return
	}
	if err != nil {
		fmt.Fprintf(p.out, "failed: %v\n", err)
		return
	}
	fmt.Fprintln(p.out, "failed")
}

func progressEnabled() bool {
	if IsJSONOutput() || IsJSONLOutput() || noProgress {
		return false
	}
	_, off := os.LookupEnv("CHOREO_NO_PROGRESS")
	return !off
}

// scheduleSummary describes a built schedule in one line.
func scheduleSummary(s schedule.Schedule[string]) string {
	noun := "events"
	if len(s.Events) == 1 {
		noun = "event"
	}
	return fmt.Sprintf("%d %s, %s long", len(s.Events), noun, s.Length())
}

// cycleSummary describes a sampled cycle in one line.
func cycleSummary(c oscillator.Cycle, samples int) string {
	pauses := len(c.Bounds())
	return fmt.Sprintf("%d samples over %s (%d paused windows)", samples, c.Total, pauses)
}

func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.String()
	case d < time.Second:
		return d.Round(10 * time.Millisecond).String()
	default:
		return d.Round(100 * time.Millisecond).String()
	}
}
