package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BellaEstudioDev/salon-agenda/internal/agenda"
	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
	"github.com/BellaEstudioDev/salon-agenda/internal/models"
	"github.com/BellaEstudioDev/salon-agenda/internal/timezone"
)

func seedPending(repo *fakeRepo) {
	repo.appointments = []models.Appointment{
		{ID: 7, Date: "2026-03-10", Time: "10:00", DurationMin: 60,
			Status: string(agenda.StatusPending)},
	}
}

func TestConfirmAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedPending(repo)

	uc := NewConfirmAppointment(repo, nil, timezone.DefaultTimezone)

	ap, err := uc.Execute(context.Background(), "admin@test", 7)
	require.NoError(t, err)

	assert.Equal(t, string(agenda.StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)

	// persistido, no solo mutado en memoria
	stored, err := repo.GetAppointmentByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, string(agenda.StatusConfirmed), stored.Status)

	// segunda confirmación: transición inválida
	_, err = uc.Execute(context.Background(), "admin@test", 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestConfirmAppointment_NotFound(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConfirmAppointment(repo, nil, timezone.DefaultTimezone)

	_, err := uc.Execute(context.Background(), "admin@test", 404)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestCancelAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedPending(repo)

	confirmUC := NewConfirmAppointment(repo, nil, timezone.DefaultTimezone)
	cancelUC := NewCancelAppointment(repo, nil, timezone.DefaultTimezone)

	// cancelar vale también desde confirmada
	_, err := confirmUC.Execute(context.Background(), "admin@test", 7)
	require.NoError(t, err)

	ap, err := cancelUC.Execute(context.Background(), "admin@test", 7)
	require.NoError(t, err)
	assert.Equal(t, string(agenda.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	// cancelada es terminal
	_, err = cancelUC.Execute(context.Background(), "admin@test", 7)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestDeleteAppointment(t *testing.T) {
	repo := newFakeRepo()
	seedPending(repo)

	uc := NewDeleteAppointment(repo, nil)

	require.NoError(t, uc.Execute(context.Background(), "admin@test", 7))
	assert.Empty(t, repo.appointments)

	err := uc.Execute(context.Background(), "admin@test", 7)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestListAppointmentsByDate(t *testing.T) {
	repo := newFakeRepo()
	repo.appointments = []models.Appointment{
		{ID: 1, Date: "2026-03-10", Time: "09:00", DurationMin: 30,
			Status: string(agenda.StatusConfirmed),
			Service: models.Service{Name: "Corte"}},
		{ID: 2, Date: "2026-03-10", Time: "10:00", DurationMin: 60,
			Status: string(agenda.StatusCancelled)},
		{ID: 3, Date: "2026-03-11", Time: "09:00", DurationMin: 30,
			Status: string(agenda.StatusPending)},
	}

	uc := NewListAppointmentsByDate(repo)

	// el panel ve el día completo, canceladas incluidas
	list, err := uc.Execute(context.Background(), "2026-03-10")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Corte", list[0].ServiceName)
	assert.Equal(t, string(agenda.StatusCancelled), list[1].Status)

	_, err = uc.Execute(context.Background(), "ayer")
	assert.True(t, httperr.IsBusiness(err, "invalid_input"))
}
