package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/choreo/internal/db"
	"github.com/opencode-ai/choreo/internal/events"
	"github.com/opencode-ai/choreo/internal/oscillator"
)

// oscillatorFlags are shared by oscillate and preview.
type oscillatorFlags struct {
	shape  string
	from   float64
	to     float64
	active time.Duration
	shift  float64
	pauses []string
}

func (f *oscillatorFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.shape, "shape", "wave", "active shape: wrap, wave or zigzag")
	flags.Float64Var(&f.from, "from", 0, "start of the output range")
	flags.Float64Var(&f.to, "to", 1, "end of the output range")
	flags.DurationVar(&f.active, "active", time.Second, "active cycle duration, excluding pauses")
	flags.Float64Var(&f.shift, "shift", 0, "phase shift of the active function")
	flags.StringArrayVar(&f.pauses, "pause", nil, "pause as duration@anchor[=value], in ascending anchor order (repeatable)")
}

// build assembles the oscillator described by the flags.
func (f *oscillatorFlags) build() (events.OscillatorSpec, oscillator.Oscillator, error) {
	spec := events.OscillatorSpec{
		Shape:  strings.ToLower(strings.TrimSpace(f.shape)),
		From:   f.from,
		To:     f.to,
		Shift:  f.shift,
		Active: f.active,
	}
	if f.active < 0 {
		return spec, oscillator.Oscillator{}, fmt.Errorf("--active must be >= 0")
	}

	osc, err := shapeOscillator(spec.Shape, f.from, f.to)
	if err != nil {
		return spec, oscillator.Oscillator{}, err
	}
	if f.shift != 0 {
		osc = oscillator.Shift(f.shift, osc)
	}

	pauses := make([]oscillator.Pause, 0, len(f.pauses))
	for _, raw := range f.pauses {
		p, err := parsePause(raw, osc)
		if err != nil {
			return spec, oscillator.Oscillator{}, err
		}
		pauses = append(pauses, p)
	}
	// WithPause prepends, so add the last flag first to keep flag order.
	for i := len(pauses) - 1; i >= 0; i-- {
		osc = oscillator.WithPause(pauses[i].Duration, pauses[i].Anchor, pauses[i].Value, osc)
	}

	if err := osc.Validate(); err != nil {
		return spec, oscillator.Oscillator{}, fmt.Errorf("--pause: %w", err)
	}
	return spec, osc, nil
}

func shapeOscillator(shape string, from, to float64) (oscillator.Oscillator, error) {
	switch shape {
	case "wrap":
		return oscillator.Wrap(from, to), nil
	case "wave":
		return oscillator.Wave(from, to), nil
	case "zigzag":
		return oscillator.Zigzag(from, to), nil
	default:
		return oscillator.Oscillator{}, fmt.Errorf("unknown shape %q (want wrap, wave or zigzag)", shape)
	}
}

// parsePause parses duration@anchor[=value]. Without a value the pause
// holds the active function's output at the anchor.
func parsePause(raw string, osc oscillator.Oscillator) (oscillator.Pause, error) {
	raw = strings.TrimSpace(raw)
	durPart, rest, ok := strings.Cut(raw, "@")
	if !ok {
		return oscillator.Pause{}, fmt.Errorf("invalid pause %q: want duration@anchor[=value]", raw)
	}

	d, err := time.ParseDuration(strings.TrimSpace(durPart))
	if err != nil {
		return oscillator.Pause{}, fmt.Errorf("invalid pause %q: %w", raw, err)
	}
	if d < 0 {
		return oscillator.Pause{}, fmt.Errorf("invalid pause %q: duration must be >= 0", raw)
	}

	anchorPart, valuePart, hasValue := strings.Cut(rest, "=")
	anchor, err := strconv.ParseFloat(strings.TrimSpace(anchorPart), 64)
	if err != nil {
		return oscillator.Pause{}, fmt.Errorf("invalid pause %q: bad anchor: %w", raw, err)
	}

	value := osc.Active(anchor)
	if hasValue {
		value, err = strconv.ParseFloat(strings.TrimSpace(valuePart), 64)
		if err != nil {
			return oscillator.Pause{}, fmt.Errorf("invalid pause %q: bad value: %w", raw, err)
		}
	}

	return oscillator.Pause{Duration: d, Anchor: anchor, Value: value}, nil
}

var (
	oscFlags   oscillatorFlags
	oscSamples int
)

func init() {
	rootCmd.AddCommand(oscillateCmd)
	oscFlags.bind(oscillateCmd)
	oscillateCmd.Flags().IntVar(&oscSamples, "samples", 0, "number of evenly spaced samples (default from config)")
}

var oscillateCmd = &cobra.Command{
	Use:   "oscillate",
	Short: "Sample a pausable oscillator over one total cycle",
	Example: `  choreo oscillate --shape wave --active 10s --pause 2s@0.5=1
  choreo oscillate --shape wrap --from 0 --to 360 --shift 0.25 --samples 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		spec, osc, err := oscFlags.build()
		if err != nil {
			recordFailure(ctx, "oscillate", err)
			return err
		}
		samples := oscSamples
		if samples <= 0 {
			samples = GetConfig().Sampling.Samples
		}

		progress := startProgress("Sampling oscillator")
		cycle := oscillator.Oscillate(spec.Active, osc)
		report := newOscillationReport(spec, cycle, samples)
		progress.Done(cycleSummary(cycle, samples))

		recordEvent(ctx, func(repo *db.EventRepository) error {
			return events.LogOscillatorSampled(ctx, repo, spec, osc, cycle, samples)
		})

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), report)
		}
		if IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), report.Samples)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Shape:  %s [%g, %g]\n", spec.Shape, spec.From, spec.To)
		fmt.Fprintf(out, "Active: %s\n", spec.Active)
		fmt.Fprintf(out, "Total:  %s\n\n", cycle.Total)

		rows := make([][]string, 0, len(report.Samples))
		for _, s := range report.Samples {
			state := ""
			if s.Paused {
				state = "paused"
			}
			rows = append(rows, []string{
				strconv.FormatFloat(s.Progress, 'f', 4, 64),
				s.At,
				strconv.FormatFloat(s.Value, 'f', 4, 64),
				formatOptional(state),
			})
		}
		return writeTable(out, []string{"PROGRESS", "AT", "VALUE", "STATE"}, rows)
	},
}

// OscillationReport is the output of `choreo oscillate`.
type OscillationReport struct {
	Shape   string              `json:"shape"`
	Active  string              `json:"active"`
	Total   string              `json:"total"`
	Samples []OscillationSample `json:"samples"`
}

// OscillationSample is one evaluation of the cycle.
type OscillationSample struct {
	Progress float64 `json:"progress"`
	At       string  `json:"at"`
	Value    float64 `json:"value"`
	Paused   bool    `json:"paused,omitempty"`
}

func newOscillationReport(spec events.OscillatorSpec, cycle oscillator.Cycle, samples int) OscillationReport {
	report := OscillationReport{
		Shape:   spec.Shape,
		Active:  spec.Active.String(),
		Total:   cycle.Total.String(),
		Samples: make([]OscillationSample, 0, samples),
	}
	for i := 0; i < samples; i++ {
		u := float64(i) / float64(samples)
		at := time.Duration(u * float64(cycle.Total))
		report.Samples = append(report.Samples, OscillationSample{
			Progress: u,
			At:       formatDuration(at),
			Value:    cycle.Eval(u),
			Paused:   cycle.Paused(u),
		})
	}
	return report
}
