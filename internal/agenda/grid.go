package agenda

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indica una grilla mal configurada. Es fatal al arranque,
// nunca se produce por request.
var ErrInvalidConfig = errors.New("agenda: invalid grid config")

// Grid define el eje de tiempo discreto de un día de atención:
// intervalo semiabierto [start, end) con paso fijo en minutos.
// La grilla tiene la misma forma todos los días.
type Grid struct {
	startMin int
	endMin   int
	slotMin  int
}

// NewGrid valida la configuración y falla ruidosamente ante cualquier
// inconsistencia, incluida una ventana que no sea múltiplo del paso
// (preferimos el error al truncado silencioso).
func NewGrid(start, end string, slotMinutes int) (Grid, error) {
	startMin, err := ParseHM(start)
	if err != nil {
		return Grid{}, fmt.Errorf("%w: business start %q", ErrInvalidConfig, start)
	}

	endMin, err := ParseHM(end)
	if err != nil {
		return Grid{}, fmt.Errorf("%w: business end %q", ErrInvalidConfig, end)
	}

	if slotMinutes <= 0 {
		return Grid{}, fmt.Errorf("%w: slot of %d minutes", ErrInvalidConfig, slotMinutes)
	}

	if endMin <= startMin {
		return Grid{}, fmt.Errorf("%w: end %q not after start %q", ErrInvalidConfig, end, start)
	}

	if (endMin-startMin)%slotMinutes != 0 {
		return Grid{}, fmt.Errorf(
			"%w: window of %d minutes is not a multiple of the %d-minute slot",
			ErrInvalidConfig, endMin-startMin, slotMinutes,
		)
	}

	return Grid{startMin: startMin, endMin: endMin, slotMin: slotMinutes}, nil
}

func (g Grid) StartMinute() int { return g.startMin }
func (g Grid) EndMinute() int   { return g.endMin }
func (g Grid) SlotMinutes() int { return g.slotMin }

// Positions devuelve los inicios de slot del día, estrictamente crecientes,
// cubriendo exactamente [start, end).
func (g Grid) Positions() []int {
	out := make([]int, 0, (g.endMin-g.startMin)/g.slotMin)
	for cur := g.startMin; cur < g.endMin; cur += g.slotMin {
		out = append(out, cur)
	}
	return out
}

// IsAligned indica si un minuto del día cae sobre la grilla.
func (g Grid) IsAligned(minute int) bool {
	return minute >= g.startMin && (minute-g.startMin)%g.slotMin == 0
}

// IsPosition indica si un minuto es un inicio de slot válido: alineado y
// con el slot completo dentro del horario de atención.
func (g Grid) IsPosition(minute int) bool {
	return g.IsAligned(minute) && minute+g.slotMin <= g.endMin
}

// SlotsNeeded calcula cuántos slots consecutivos ocupa una duración.
// Una duración que no es múltiplo del paso redondea hacia arriba:
// el slot parcial final se reserva completo.
func (g Grid) SlotsNeeded(durationMin int) int {
	if durationMin <= 0 {
		return 0
	}
	return (durationMin + g.slotMin - 1) / g.slotMin
}

// ParseHM convierte "HH:MM" a minutos desde medianoche.
func ParseHM(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHM convierte minutos desde medianoche a "HH:MM".
func FormatHM(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
