package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/choreo/internal/models"
)

func withHistoryFlags(t *testing.T, typ, entity, id string, since time.Duration, limit int) {
	t.Helper()
	prev := []any{historyType, historyEntity, historyEntityID, historySince, historyLimit, historyCursor}
	historyType, historyEntity, historyEntityID, historySince, historyLimit, historyCursor = typ, entity, id, since, limit, ""
	t.Cleanup(func() {
		historyType = prev[0].(string)
		historyEntity = prev[1].(string)
		historyEntityID = prev[2].(string)
		historySince = prev[3].(time.Duration)
		historyLimit = prev[4].(int)
		historyCursor = prev[5].(string)
	})
}

func TestBuildHistoryQuery(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	withHistoryFlags(t, "Schedule.Built", "sequence", "door", time.Hour, 5)

	q, err := buildHistoryQuery(now)
	require.NoError(t, err)
	require.Equal(t, 5, q.Limit)
	require.NotNil(t, q.Type)
	require.Equal(t, models.EventTypeScheduleBuilt, *q.Type)
	require.Equal(t, models.EntityTypeSequence, *q.EntityType)
	require.Equal(t, "door", *q.EntityID)
	require.Equal(t, now.Add(-time.Hour), *q.Since)
}

func TestBuildHistoryQueryDefaults(t *testing.T) {
	withHistoryFlags(t, "", "", "", 0, 20)

	q, err := buildHistoryQuery(time.Now())
	require.NoError(t, err)
	require.Nil(t, q.Type)
	require.Nil(t, q.EntityType)
	require.Nil(t, q.EntityID)
	require.Nil(t, q.Since)
}

func TestBuildHistoryQueryRejectsBadInput(t *testing.T) {
	withHistoryFlags(t, "agent.spawned", "", "", 0, 20)
	_, err := buildHistoryQuery(time.Now())
	require.ErrorContains(t, err, "unknown event type")

	withHistoryFlags(t, "", "", "", 0, 0)
	_, err = buildHistoryQuery(time.Now())
	require.Error(t, err)
}

func TestShortID(t *testing.T) {
	require.Equal(t, "abc", shortID("abc"))
	require.Equal(t, "12345678", shortID("123456789abc"))
}
