package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-booker/internal/models"
)

func TestMappersEmitUTC(t *testing.T) {
	sp := time.FixedZone("BRT", -3*3600)
	start := time.Date(2024, 1, 1, 7, 0, 0, 0, sp)
	cancelled := start.Add(time.Minute)

	r := FromReservation(&models.Reservation{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Status:      "cancelled",
		CreatedAt:   start,
		CancelledAt: &cancelled,
	})

	b, err := json.Marshal(r)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	slot := raw["slot"].(map[string]any)
	assert.Equal(t, "2024-01-01T10:00:00Z", slot["start"])
	assert.Equal(t, "2024-01-01T11:00:00Z", slot["end"])
	assert.Equal(t, "2024-01-01T10:00:00Z", raw["created_at"])
	assert.Equal(t, "2024-01-01T10:01:00Z", raw["cancelled_at"])
	assert.Nil(t, raw["notes"])

	c := FromClient(&models.Client{ID: uuid.New(), CreatedAt: start})
	assert.Equal(t, time.UTC, c.CreatedAt.Location())
}
