package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RestoSuiteApp/resto-scheduler/internal/httperr"
	"github.com/RestoSuiteApp/resto-scheduler/internal/models"
)

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.True(t, httperr.IsBusiness(CanCancel(StatusCancelled), "invalid_state"))
	assert.True(t, httperr.IsBusiness(CanCancel(StatusCompleted), "invalid_state"))
}

func TestCanComplete(t *testing.T) {
	assert.NoError(t, CanComplete(StatusConfirmed))
	assert.True(t, httperr.IsBusiness(CanComplete(StatusCancelled), "invalid_state"))
	assert.True(t, httperr.IsBusiness(CanComplete(StatusCompleted), "invalid_state"))
}

func TestCancelSetsStatusAndTimestamp(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}
	now := time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC)

	require.NoError(t, Cancel(b, now))

	assert.Equal(t, string(StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)
}

func TestCancelTwiceFails(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}
	now := time.Now()

	require.NoError(t, Cancel(b, now))
	err := Cancel(b, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCompleteSetsStatusAndTimestamp(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}
	now := time.Date(2024, 3, 11, 22, 0, 0, 0, time.UTC)

	require.NoError(t, Complete(b, now))

	assert.Equal(t, string(StatusCompleted), b.Status)
	require.NotNil(t, b.CompletedAt)
	assert.Equal(t, now, *b.CompletedAt)
}

func TestCompleteCancelledFails(t *testing.T) {
	b := &models.Booking{Status: string(StatusCancelled)}
	err := Complete(b, time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
