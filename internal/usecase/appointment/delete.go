package appointment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BellaEstudioDev/salon-agenda/internal/agenda"
	"github.com/BellaEstudioDev/salon-agenda/internal/audit"
	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
)

type DeleteAppointment struct {
	repo  agenda.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo agenda.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute elimina el registro por completo. A diferencia de cancelar,
// la baja es terminal y vale desde cualquier estado.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor string,
	appointmentID uint,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("appointment_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}
