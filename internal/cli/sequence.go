package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/choreo/internal/db"
	"github.com/opencode-ai/choreo/internal/events"
	"github.com/opencode-ai/choreo/internal/sequences"
)

var sequenceListTags []string

func init() {
	rootCmd.AddCommand(sequenceCmd)
	sequenceCmd.AddCommand(sequenceListCmd)
	sequenceCmd.AddCommand(sequenceShowCmd)

	sequenceListCmd.Flags().StringSliceVar(&sequenceListTags, "tag", nil, "only list sequences with any of these tags")
}

var sequenceCmd = &cobra.Command{
	Use:     "sequence",
	Aliases: []string{"seq"},
	Short:   "Inspect animation sequences",
}

var sequenceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available sequences",
	Long:  "List sequences from the project, user and system directories, then builtins.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectDir := GetConfig().Sequences.Dir
		items, err := sequences.LoadSequencesFromSearchPaths(projectDir)
		if err != nil {
			return err
		}
		items = filterSequences(items, sequenceListTags)

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), items)
		}
		if len(items) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No sequences found.")
			return nil
		}

		userDir, projDir := sequenceDirs(projectDir)
		rows := make([][]string, 0, len(items))
		for _, seq := range items {
			rows = append(rows, []string{
				seq.Name,
				strconv.Itoa(len(seq.Steps)),
				sequenceSourceLabel(seq.Source, userDir, projDir),
				formatOptional(strings.Join(seq.Tags, ",")),
				formatOptional(seq.Description),
			})
		}
		return writeTable(cmd.OutOrStdout(), []string{"NAME", "STEPS", "SOURCE", "TAGS", "DESCRIPTION"}, rows)
	},
}

var sequenceShowCmd = &cobra.Command{
	Use:   "show <name|file.yaml>",
	Short: "Show the steps of a sequence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		seq, err := sequences.Resolve(GetConfig().Sequences.Dir, args[0])
		if err != nil {
			recordFailure(ctx, "sequence show", err)
			return err
		}
		recordEvent(ctx, func(repo *db.EventRepository) error {
			return events.LogSequenceLoaded(ctx, repo, seq.Name, seq.Source, len(seq.Steps))
		})

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), seq)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", seq.Name, seq.Source)
		if seq.Description != "" {
			fmt.Fprintln(out, seq.Description)
		}
		fmt.Fprintln(out)
		for i, step := range seq.Steps {
			fmt.Fprintf(out, "%2d. %s\n", i+1, formatSequenceStep(step))
		}
		return nil
	},
}

// filterSequences keeps sequences carrying any of tags; no tags keeps all.
func filterSequences(items []*sequences.Sequence, tags []string) []*sequences.Sequence {
	if len(tags) == 0 {
		return items
	}
	out := make([]*sequences.Sequence, 0, len(items))
	for _, seq := range items {
		for _, tag := range tags {
			if seq.HasTag(tag) {
				out = append(out, seq)
				break
			}
		}
	}
	return out
}

func sequenceDirs(projectDir string) (userDir, projDir string) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		userDir = filepath.Join(home, ".config", "choreo", "sequences")
	}
	if projectDir != "" {
		projDir = filepath.Join(projectDir, ".choreo", "sequences")
	}
	return userDir, projDir
}

// sequenceSourceLabel classifies where a sequence was loaded from.
func sequenceSourceLabel(source, userDir, projectDir string) string {
	switch {
	case source == "builtin":
		return "builtin"
	case projectDir != "" && isWithin(source, projectDir):
		return "project"
	case userDir != "" && isWithin(source, userDir):
		return "user"
	default:
		return "file"
	}
}

func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func formatSequenceStep(step sequences.SequenceStep) string {
	var b strings.Builder
	switch step.Type {
	case sequences.StepTypeTransition:
		fmt.Fprintf(&b, "transition to %s over %s", step.Target, step.Duration)
	default:
		fmt.Fprintf(&b, "%s %s", step.Type, step.Duration)
	}
	if step.Note != "" {
		fmt.Fprintf(&b, " (%s)", step.Note)
	}
	return b.String()
}
