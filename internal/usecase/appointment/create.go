package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BellaEstudioDev/salon-agenda/internal/agenda"
	"github.com/BellaEstudioDev/salon-agenda/internal/audit"
	"github.com/BellaEstudioDev/salon-agenda/internal/httperr"
	"github.com/BellaEstudioDev/salon-agenda/internal/lock"
	"github.com/BellaEstudioDev/salon-agenda/internal/models"
	"github.com/BellaEstudioDev/salon-agenda/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM, alineada a la grilla

	Name  string
	Phone string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  agenda.Repository
	grid  agenda.Grid
	locks lock.Locker
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo agenda.Repository,
	grid agenda.Grid,
	locks lock.Locker,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		grid:  grid,
		locks: locks,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Un rechazo es terminal para ese request: no hay reintento automático,
// el cliente debe volver a enviar con otros parámetros.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Datos del cliente
	// --------------------------------------------------
	name := strings.TrimSpace(in.Name)
	if name == "" || len(name) > 100 {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	if !validators.IsPhoneValid(in.Phone) {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	// --------------------------------------------------
	// 2. Fecha y hora pedidas
	// --------------------------------------------------
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	startMin, err := agenda.ParseHM(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	if startMin < uc.grid.StartMinute() || startMin >= uc.grid.EndMinute() {
		return nil, httperr.ErrBusiness("out_of_hours")
	}

	// la hora debe caer exactamente sobre la grilla
	if !uc.grid.IsAligned(startMin) {
		return nil, httperr.ErrBusiness("invalid_input")
	}

	// --------------------------------------------------
	// 3. Servicio
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 4. Serialización por fecha
	// --------------------------------------------------
	release, err := uc.locks.Acquire(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	// --------------------------------------------------
	// 5. Disponibilidad, releída bajo el lock
	// --------------------------------------------------
	existing, err := uc.repo.ListAppointmentsForDate(ctx, in.Date, false)
	if err != nil {
		return nil, err
	}

	needed := uc.grid.SlotsNeeded(svc.DurationMin)

	// la corrida no puede pasarse del cierre, ocupada o no
	if startMin+needed*uc.grid.SlotMinutes() > uc.grid.EndMinute() {
		return nil, httperr.ErrBusiness("out_of_hours")
	}

	occupied := agenda.OccupiedPositions(uc.grid, existing)
	if !agenda.RunIsFree(uc.grid, occupied, startMin, needed) {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 6. Persistencia (estado centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		ServiceID:   svc.ID,
		Date:        in.Date,
		Time:        agenda.FormatHM(startMin),
		Name:        name,
		Phone:       strings.TrimSpace(in.Phone),
		Status:      string(agenda.InitialStatus()),
		DurationMin: svc.DurationMin,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		// el store también rechaza conflictos; misma respuesta para el caller
		return nil, err
	}

	// --------------------------------------------------
	// 7. Auditoría
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Actor:    "public",
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date": ap.Date,
			"time": ap.Time,
		},
	})

	return ap, nil
}
