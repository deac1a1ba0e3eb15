package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/choreo/internal/db"
	"github.com/opencode-ai/choreo/internal/events"
	"github.com/opencode-ai/choreo/internal/schedule"
	"github.com/opencode-ai/choreo/internal/sequences"
)

func init() {
	rootCmd.AddCommand(scheduleCmd)
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule <name|file.yaml>",
	Short: "Build the timed schedule for a sequence",
	Long: `Fold a sequence's wait and transition steps into a schedule: an initial
delay followed by one event per run of same-target transitions, each with the
hold time accumulated after it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		progress := startProgress("Building schedule")
		seq, err := sequences.Resolve(GetConfig().Sequences.Dir, args[0])
		if err != nil {
			progress.Fail(err)
			recordFailure(ctx, "schedule", err)
			return err
		}
		built, err := seq.Schedule()
		if err != nil {
			progress.Fail(err)
			recordFailure(ctx, "schedule", err)
			return err
		}
		progress.Done(scheduleSummary(built))

		logger.Debug().
			Str("sequence", seq.Name).
			Int("steps", len(seq.Steps)).
			Int("events", len(built.Events)).
			Msg("schedule built")

		recordEvent(ctx, func(repo *db.EventRepository) error {
			return events.LogScheduleBuilt(ctx, repo, seq.Name, seq.Source, len(seq.Steps), built)
		})

		report := newScheduleReport(seq.Name, built)
		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), report)
		}
		if IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), report.Events)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sequence:      %s\n", seq.Name)
		fmt.Fprintf(out, "Initial delay: %s\n", built.InitialDelay)
		fmt.Fprintf(out, "Length:        %s\n\n", built.Length())
		if len(report.Events) == 0 {
			fmt.Fprintln(out, "No events.")
			return nil
		}

		rows := make([][]string, 0, len(report.Events))
		for _, ev := range report.Events {
			rows = append(rows, []string{
				fmt.Sprintf("%d", ev.Index),
				ev.Target,
				ev.Starts,
				ev.Transition,
				formatOptional(ev.Dwell),
			})
		}
		return writeTable(out, []string{"#", "TARGET", "STARTS", "TRANSITION", "DWELL"}, rows)
	},
}

// ScheduleReport is the output of `choreo schedule`.
type ScheduleReport struct {
	Sequence     string                `json:"sequence"`
	InitialDelay string                `json:"initial_delay"`
	Length       string                `json:"length"`
	Events       []ScheduleReportEvent `json:"events"`
}

// ScheduleReportEvent is one schedule event with its start offset.
type ScheduleReportEvent struct {
	Index      int    `json:"index"`
	Target     string `json:"target"`
	Starts     string `json:"starts"`
	Transition string `json:"transition"`
	Dwell      string `json:"dwell,omitempty"`
}

func newScheduleReport(name string, s schedule.Schedule[string]) ScheduleReport {
	report := ScheduleReport{
		Sequence:     name,
		InitialDelay: s.InitialDelay.String(),
		Length:       s.Length().String(),
		Events:       make([]ScheduleReportEvent, 0, len(s.Events)),
	}

	at := s.InitialDelay
	for i, ev := range s.Events {
		item := ScheduleReportEvent{
			Index:      i + 1,
			Target:     ev.Target,
			Starts:     at.String(),
			Transition: ev.TransitionDuration.String(),
		}
		if ev.Dwell != nil {
			item.Dwell = ev.Dwell.String()
		}
		report.Events = append(report.Events, item)
		at += ev.TransitionDuration + ev.DwellOrZero()
	}
	return report
}
