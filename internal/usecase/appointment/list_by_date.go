package appointment

import (
	"context"
	"time"

	"github.com/BellaEstudioDev/salon-agenda/internal/agenda"
	"github.com/BellaEstudioDev/salon-agenda/internal/dto"
	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
)

type ListAppointmentsByDate struct {
	repo agenda.Repository
}

func NewListAppointmentsByDate(
	repo agenda.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute lista el día completo para el panel, canceladas incluidas.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, date, true)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Status:      ap.Status,
			Name:        ap.Name,
			Phone:       ap.Phone,
			ServiceName: ap.Service.Name,
			DurationMin: ap.DurationMin,
		})
	}

	return out, nil
}
