package reservation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/slot-booker/internal/httperr"
)

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.True(t, httperr.IsBusiness(CanCancel(StatusCancelled), httperr.CodeAlreadyCancelled))
	assert.Error(t, CanCancel(Status("completed")))
}

func TestCancelSetsTimestamp(t *testing.T) {
	s, err := NewTimeSlot(time.Now(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	r := New(uuid.New(), s, "", time.Now())
	require.Equal(t, string(StatusConfirmed), r.Status)

	now := time.Now()
	require.NoError(t, Cancel(r, now))
	assert.Equal(t, string(StatusCancelled), r.Status)
	require.NotNil(t, r.CancelledAt)
	assert.Equal(t, Normalize(now), *r.CancelledAt)

	assert.True(t, httperr.IsBusiness(Cancel(r, now), httperr.CodeAlreadyCancelled))
}
