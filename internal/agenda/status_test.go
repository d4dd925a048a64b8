package agenda

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
	"github.com/BellaEstudioDev/salon-agenda/internal/models"
)

func TestCanConfirm(t *testing.T) {
	assert.NoError(t, CanConfirm(StatusPending))

	assert.True(t, httperr.IsBusiness(CanConfirm(StatusConfirmed), "invalid_state"))
	assert.True(t, httperr.IsBusiness(CanConfirm(StatusCancelled), "invalid_state"))
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusConfirmed))

	assert.True(t, httperr.IsBusiness(CanCancel(StatusCancelled), "invalid_state"))
}

func TestConfirm(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusPending)}
	require.NoError(t, Confirm(ap, now))

	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, now, *ap.ConfirmedAt)

	// confirmar dos veces no es una transición válida
	err := Confirm(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("desde pendiente", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusPending)}
		require.NoError(t, Cancel(ap, now))

		assert.Equal(t, string(StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
	})

	t.Run("desde confirmada", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusConfirmed)}
		require.NoError(t, Cancel(ap, now))

		assert.Equal(t, string(StatusCancelled), ap.Status)
	})

	t.Run("ya cancelada", func(t *testing.T) {
		ap := &models.Appointment{Status: string(StatusCancelled)}
		err := Cancel(ap, now)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}
