package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/choreo/internal/db"
	"github.com/opencode-ai/choreo/internal/models"
)

var (
	historyType      string
	historyEntity    string
	historyEntityID  string
	historySince     time.Duration
	historyLimit     int
	historyCursor    string
	historyOlderThan time.Duration
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyPruneCmd)

	historyCmd.Flags().StringVar(&historyType, "type", "", "filter by event type (sequence.loaded, schedule.built, oscillator.sampled, error)")
	historyCmd.Flags().StringVar(&historyEntity, "entity", "", "filter by entity type (sequence, oscillator, system)")
	historyCmd.Flags().StringVar(&historyEntityID, "id", "", "filter by entity id, e.g. a sequence name")
	historyCmd.Flags().DurationVar(&historySince, "since", 0, "only events newer than this (e.g. 1h)")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum events to show")
	historyCmd.Flags().StringVar(&historyCursor, "cursor", "", "continue after this event id")

	historyPruneCmd.Flags().DurationVar(&historyOlderThan, "older-than", 30*24*time.Hour, "delete events older than this")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded schedule builds and oscillator samplings",
	Long:  "Show events recorded with --record, oldest first.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		query, err := buildHistoryQuery(time.Now())
		if err != nil {
			return err
		}

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		page, err := db.NewEventRepository(database).Query(ctx, query)
		if err != nil {
			return err
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), page)
		}
		if IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), page.Events)
		}

		out := cmd.OutOrStdout()
		if len(page.Events) == 0 {
			fmt.Fprintln(out, "No events recorded.")
			return nil
		}

		rows := make([][]string, 0, len(page.Events))
		for _, ev := range page.Events {
			rows = append(rows, []string{
				ev.Timestamp.Local().Format("2006-01-02 15:04:05"),
				string(ev.Type),
				string(ev.EntityType),
				ev.EntityID,
				shortID(ev.ID),
			})
		}
		if err := writeTable(out, []string{"TIME", "TYPE", "ENTITY", "ID", "EVENT"}, rows); err != nil {
			return err
		}
		if page.NextCursor != "" {
			fmt.Fprintf(out, "\nMore events: choreo history --cursor %s\n", page.NextCursor)
		}
		return nil
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete old history events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if historyOlderThan <= 0 {
			return fmt.Errorf("--older-than must be positive")
		}

		database, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer database.Close()

		repo := db.NewEventRepository(database)
		deleted, err := repo.DeleteBefore(ctx, time.Now().Add(-historyOlderThan))
		if err != nil {
			return err
		}
		remaining, err := repo.Count(ctx)
		if err != nil {
			return err
		}

		logger.Info().Int64("deleted", deleted).Int("remaining", remaining).Msg("history pruned")

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]any{
				"deleted":   deleted,
				"remaining": remaining,
			})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d events, %d remaining.\n", deleted, remaining)
		return nil
	},
}

func buildHistoryQuery(now time.Time) (db.EventQuery, error) {
	query := db.EventQuery{
		Cursor: strings.TrimSpace(historyCursor),
		Limit:  historyLimit,
	}
	if query.Limit <= 0 {
		return query, fmt.Errorf("--limit must be positive")
	}

	if value := strings.TrimSpace(historyType); value != "" {
		eventType := models.EventType(strings.ToLower(value))
		if !isKnownEventType(eventType) {
			return query, fmt.Errorf("unknown event type %q", value)
		}
		query.Type = &eventType
	}
	if value := strings.TrimSpace(historyEntity); value != "" {
		entityType := models.EntityType(strings.ToLower(value))
		query.EntityType = &entityType
	}
	if value := strings.TrimSpace(historyEntityID); value != "" {
		query.EntityID = &value
	}
	if historySince > 0 {
		since := now.Add(-historySince)
		query.Since = &since
	}
	return query, nil
}

func isKnownEventType(t models.EventType) bool {
	switch t {
	case models.EventTypeSequenceLoaded, models.EventTypeScheduleBuilt,
		models.EventTypeOscillatorSampled, models.EventTypeError:
		return true
	}
	return false
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
