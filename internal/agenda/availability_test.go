package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BellaEstudioDev/salon-agenda/internal/models"
)

func mustGrid(t *testing.T) Grid {
	t.Helper()
	grid, err := NewGrid("09:00", "18:00", 30)
	require.NoError(t, err)
	return grid
}

func slotByTime(t *testing.T, slots []Slot, hm string) Slot {
	t.Helper()
	for _, s := range slots {
		if s.Time == hm {
			return s
		}
	}
	t.Fatalf("slot %s no está en la grilla", hm)
	return Slot{}
}

func TestOccupiedPositions_ExpandsSpan(t *testing.T) {
	grid := mustGrid(t)

	// 90 minutos desde las 10:00 ocupan 10:00, 10:30 y 11:00
	occupied := OccupiedPositions(grid, []models.Appointment{
		{Time: "10:00", DurationMin: 90},
	})

	require.Len(t, occupied, 3)
	assert.Contains(t, occupied, 10*60)
	assert.Contains(t, occupied, 10*60+30)
	assert.Contains(t, occupied, 11*60)
}

func TestOccupiedPositions_DuplicateStartsCollapse(t *testing.T) {
	grid := mustGrid(t)

	// dos citas con el mismo inicio se honran ambas: sus spans se unen
	occupied := OccupiedPositions(grid, []models.Appointment{
		{Time: "10:00", DurationMin: 30},
		{Time: "10:00", DurationMin: 60},
	})

	require.Len(t, occupied, 2)
	assert.Contains(t, occupied, 10*60)
	assert.Contains(t, occupied, 10*60+30)
}

func TestBuildDayAvailability_EmptyDay(t *testing.T) {
	grid := mustGrid(t)

	slots := BuildDayAvailability(grid, 30, nil)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "17:30", slots[len(slots)-1].Time)

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.Time)
	}
}

func TestBuildDayAvailability_MarksSpanAndNeighbors(t *testing.T) {
	grid := mustGrid(t)

	existing := []models.Appointment{
		{Time: "10:00", DurationMin: 90}, // ocupa 10:00, 10:30, 11:00
	}

	// pedido de 60 minutos: cualquier corrida que toque el span cae
	slots := BuildDayAvailability(grid, 60, existing)

	assert.False(t, slotByTime(t, slots, "09:30").Available) // 09:30+10:00
	assert.False(t, slotByTime(t, slots, "10:00").Available)
	assert.False(t, slotByTime(t, slots, "10:30").Available)
	assert.False(t, slotByTime(t, slots, "11:00").Available) // 11:00+11:30 toca 11:00

	// fuera del alcance del span, intacto
	assert.True(t, slotByTime(t, slots, "09:00").Available) // 09:00+09:30 libre
	assert.True(t, slotByTime(t, slots, "11:30").Available)
	assert.True(t, slotByTime(t, slots, "12:00").Available)
}

func TestBuildDayAvailability_RunPastCloseNeverAvailable(t *testing.T) {
	grid := mustGrid(t)

	// 45 minutos necesitan 2 slots; a las 17:30 el segundo caería en 18:00,
	// fuera de la grilla: nunca disponible aunque esté libre
	slots := BuildDayAvailability(grid, 45, nil)

	assert.False(t, slotByTime(t, slots, "17:30").Available)
	assert.True(t, slotByTime(t, slots, "17:00").Available)
}

func TestBuildDayAvailability_LastSlotBoundary(t *testing.T) {
	grid := mustGrid(t)

	// una corrida cuyo último slot termina exactamente en el cierre está
	// disponible si nadie la ocupa
	slots := BuildDayAvailability(grid, 30, nil)
	assert.True(t, slotByTime(t, slots, "17:30").Available)

	slots = BuildDayAvailability(grid, 60, nil)
	assert.True(t, slotByTime(t, slots, "17:00").Available)
	assert.False(t, slotByTime(t, slots, "17:30").Available)
}

func TestBuildDayAvailability_FullDay(t *testing.T) {
	grid := mustGrid(t)

	// día completo: citas de 09:00 a 17:30
	var existing []models.Appointment
	for _, pos := range grid.Positions() {
		existing = append(existing, models.Appointment{
			Time:        FormatHM(pos),
			DurationMin: 30,
		})
	}

	for _, duration := range []int{30, 60, 90} {
		slots := BuildDayAvailability(grid, duration, existing)
		for _, s := range slots {
			assert.False(t, s.Available, "duración %d, slot %s", duration, s.Time)
		}
	}
}

func TestBuildDayAvailability_Idempotent(t *testing.T) {
	grid := mustGrid(t)

	existing := []models.Appointment{
		{Time: "09:00", DurationMin: 30},
		{Time: "14:00", DurationMin: 45},
	}

	first := BuildDayAvailability(grid, 60, existing)
	second := BuildDayAvailability(grid, 60, existing)

	assert.Equal(t, first, second)
}

func TestBuildDayAvailability_TrustsStoredRows(t *testing.T) {
	grid := mustGrid(t)

	// una cita con hora ilegible no rompe el cálculo; simplemente no ocupa
	existing := []models.Appointment{
		{Time: "mediodía", DurationMin: 30},
	}

	slots := BuildDayAvailability(grid, 30, existing)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}
