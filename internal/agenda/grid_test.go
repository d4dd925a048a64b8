package agenda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_Valid(t *testing.T) {
	grid, err := NewGrid("09:00", "18:00", 30)
	require.NoError(t, err)

	assert.Equal(t, 9*60, grid.StartMinute())
	assert.Equal(t, 18*60, grid.EndMinute())
	assert.Equal(t, 30, grid.SlotMinutes())
}

func TestNewGrid_InvalidConfig(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		slot  int
	}{
		{"fin antes del inicio", "18:00", "09:00", 30},
		{"fin igual al inicio", "09:00", "09:00", 30},
		{"paso cero", "09:00", "18:00", 0},
		{"paso negativo", "09:00", "18:00", -15},
		{"ventana no múltiplo del paso", "09:00", "18:10", 30},
		{"inicio malformado", "9am", "18:00", 30},
		{"fin malformado", "09:00", "25:00", 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.start, tc.end, tc.slot)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestGrid_Positions(t *testing.T) {
	grid, err := NewGrid("09:00", "18:00", 30)
	require.NoError(t, err)

	positions := grid.Positions()

	// (18-9)*60/30 = 18 posiciones, cubriendo exactamente [09:00, 18:00)
	require.Len(t, positions, 18)
	assert.Equal(t, 9*60, positions[0])
	assert.Equal(t, 17*60+30, positions[len(positions)-1])

	for i := 1; i < len(positions); i++ {
		assert.Greater(t, positions[i], positions[i-1])
		assert.Equal(t, 30, positions[i]-positions[i-1])
	}
}

func TestGrid_IsPosition(t *testing.T) {
	grid, err := NewGrid("09:00", "18:00", 30)
	require.NoError(t, err)

	assert.True(t, grid.IsPosition(9*60))
	assert.True(t, grid.IsPosition(17*60+30)) // último slot del día

	assert.False(t, grid.IsPosition(18*60))   // cierre, fuera de la grilla
	assert.False(t, grid.IsPosition(8*60+30)) // antes de abrir
	assert.False(t, grid.IsPosition(9*60+15)) // desalineado
}

func TestGrid_SlotsNeeded(t *testing.T) {
	grid, err := NewGrid("09:00", "18:00", 30)
	require.NoError(t, err)

	cases := []struct {
		duration int
		want     int
	}{
		{30, 1},
		{60, 2},
		{90, 3},
		// la duración que no es múltiplo redondea hacia arriba:
		// el slot parcial se reserva completo
		{45, 2},
		{31, 2},
		{1, 1},
		{0, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, grid.SlotsNeeded(tc.duration), "duración %d", tc.duration)
	}
}

func TestParseFormatHM(t *testing.T) {
	min, err := ParseHM("10:30")
	require.NoError(t, err)
	assert.Equal(t, 10*60+30, min)

	assert.Equal(t, "10:30", FormatHM(10*60+30))
	assert.Equal(t, "09:00", FormatHM(9*60))

	_, err = ParseHM("10.30")
	assert.Error(t, err)

	_, err = ParseHM("")
	assert.Error(t, err)
}
