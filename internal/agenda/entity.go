package agenda

import (
	"time"

	"github.com/BellaEstudioDev/salon-agenda/internal/models"
)

// ===============================
// Acciones de dominio
// ===============================

// La fecha, hora y duración de una cita nunca cambian después de creada;
// las únicas mutaciones permitidas son las transiciones de estado.

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
