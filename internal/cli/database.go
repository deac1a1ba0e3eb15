package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/opencode-ai/choreo/internal/db"
	"github.com/opencode-ai/choreo/internal/events"
)

// openDatabase opens and migrates the history database.
func openDatabase(ctx context.Context) (*db.DB, error) {
	path := strings.TrimSpace(GetConfig().Database.Path)
	if path == "" {
		return nil, fmt.Errorf("history database is disabled (database.path is empty)")
	}

	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	applied, err := database.MigrateUp(ctx)
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("migrate history database: %w", err)
	}
	if applied > 0 {
		logger.Info().Int("migrations", applied).Str("path", path).Msg("history database migrated")
	}
	return database, nil
}

// recordEvent opens the history database when --record is set and runs fn
// against its event repository. Failures are logged, not returned, so
// history never blocks the primary output.
func recordEvent(ctx context.Context, fn func(repo *db.EventRepository) error) {
	if !recordHistory {
		return
	}

	database, err := openDatabase(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("history not recorded")
		return
	}
	defer database.Close()

	if err := fn(db.NewEventRepository(database)); err != nil {
		logger.Warn().Err(err).Msg("history not recorded")
	}
}

// recordFailure logs err to the history as an error event.
func recordFailure(ctx context.Context, command string, err error) {
	recordEvent(ctx, func(repo *db.EventRepository) error {
		return events.LogError(ctx, repo, command, err)
	})
}
