package appointment

import (
	"context"
	"time"

	"github.com/BellaEstudioDev/salon-agenda/internal/agenda"
	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
)

type GetAvailability struct {
	repo agenda.Repository
	grid agenda.Grid
}

func NewGetAvailability(repo agenda.Repository, grid agenda.Grid) *GetAvailability {
	return &GetAvailability{repo: repo, grid: grid}
}

// Execute devuelve la grilla completa del día con la disponibilidad para
// la duración del servicio pedido. Solo falla por servicio desconocido,
// fecha malformada o error de la base; nunca por ocupación.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in agenda.AvailabilityInput,
) ([]agenda.Slot, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, in.Date, false)
	if err != nil {
		return nil, err
	}

	return agenda.BuildDayAvailability(uc.grid, svc.DurationMin, appointments), nil
}
