package agenda

import "github.com/BellaEstudioDev/salon-agenda/internal/models"

type AvailabilityInput struct {
	ServiceID uint
	Date      string // YYYY-MM-DD
}

// Slot es una posición de la grilla con su disponibilidad para la duración
// consultada. No se persiste; se deriva por request.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// OccupiedPositions expande cada cita existente en sus slots ocupados:
// ceil(duración/paso) posiciones consecutivas desde su hora registrada.
// Los duplicados colapsan (dos citas con el mismo inicio simplemente se unen).
// No se valida la coherencia de lo almacenado: la base es la verdad.
func OccupiedPositions(g Grid, appointments []models.Appointment) map[int]struct{} {
	occupied := make(map[int]struct{})

	for _, ap := range appointments {
		start, err := ParseHM(ap.Time)
		if err != nil {
			continue
		}

		for i := 0; i < g.SlotsNeeded(ap.DurationMin); i++ {
			occupied[start+i*g.slotMin] = struct{}{}
		}
	}

	return occupied
}

// BuildDayAvailability devuelve la grilla completa del día, en orden, con
// cada posición marcada como disponible o no para una reserva de
// durationMin minutos. Puro y sin efectos: dos llamadas con los mismos
// datos producen el mismo resultado.
func BuildDayAvailability(g Grid, durationMin int, appointments []models.Appointment) []Slot {
	occupied := OccupiedPositions(g, appointments)
	needed := g.SlotsNeeded(durationMin)

	positions := g.Positions()
	slots := make([]Slot, 0, len(positions))

	for _, pos := range positions {
		slots = append(slots, Slot{
			Time:      FormatHM(pos),
			Available: RunIsFree(g, occupied, pos, needed),
		})
	}

	return slots
}

// RunIsFree verifica que los `needed` slots consecutivos desde `start`
// existan dentro de la grilla (sin pasarse del cierre) y estén libres.
func RunIsFree(g Grid, occupied map[int]struct{}, start, needed int) bool {
	if needed <= 0 {
		return false
	}

	for i := 0; i < needed; i++ {
		pos := start + i*g.slotMin

		// el slot completo debe caber antes del cierre
		if pos+g.slotMin > g.endMin {
			return false
		}

		if _, busy := occupied[pos]; busy {
			return false
		}
	}

	return true
}
