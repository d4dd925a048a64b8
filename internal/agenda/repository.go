package agenda

import (
	"context"

	"github.com/BellaEstudioDev/salon-agenda/internal/models"
)

type Repository interface {
	// -------- Servicios (solo lectura para la agenda) --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Citas (consulta por día) --------
	// includeCancelled=false devuelve solo las citas que ocupan lugar
	// (pending y confirmed); el orden no afecta la corrección.
	ListAppointmentsForDate(
		ctx context.Context,
		date string,
		includeCancelled bool,
	) ([]models.Appointment, error)

	// -------- Citas (creación / conflicto) --------
	// CreateAppointment debe rechazar con el error de negocio slot_taken
	// si otra cita activa se superpone al momento de persistir.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Citas (cambio de estado / baja) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error
}
