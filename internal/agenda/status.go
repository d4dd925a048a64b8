package agenda

import "github.com/BellaEstudioDev/salon-agenda/internal/httperr"

// ===============================
// Estado de la cita
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validaciones
// ===============================

// CanConfirm: solo una cita pendiente puede confirmarse
func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanCancel: no hay transición de salida desde cancelled
func CanCancel(current Status) error {
	if current == StatusCancelled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus: toda reserva nueva nace pendiente
func InitialStatus() Status {
	return StatusPending
}
