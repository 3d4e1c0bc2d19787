package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulpito_backend/internals/configs"
	"pulpito_backend/internals/helpers/dbtime"
)

func TestExpandSlotsMarch2025(t *testing.T) {
	slots := []configs.SlotTemplate{
		{Weekday: "SU", Start: "19:00", Tipo: "Culto general"},
		{Weekday: "WE", Start: "20:00", End: "21:30", Tipo: "Enseñanza"},
		{Weekday: "SU", Start: "10:30", Tipo: "Escuela dominical"},
	}
	from, to := dbtime.MonthRange(2025, 3)

	occs, err := ExpandSlots(slots, from, to)
	require.NoError(t, err)
	require.Len(t, occs, 5+4+5)

	assert.Equal(t, "2025-03-02", dbtime.FormatDate(occs[0].Date))
	assert.Equal(t, "10:30", occs[0].Start.String())
	assert.Equal(t, "Escuela dominical", occs[0].Tipo)
	assert.Equal(t, "2025-03-02", dbtime.FormatDate(occs[1].Date))
	assert.Equal(t, "19:00", occs[1].Start.String())
	assert.Equal(t, "2025-03-05", dbtime.FormatDate(occs[2].Date))
	require.NotNil(t, occs[2].End)
	assert.Equal(t, "21:30", occs[2].End.String())
	assert.Equal(t, "2025-03-30", dbtime.FormatDate(occs[len(occs)-1].Date))

	for i := 1; i < len(occs); i++ {
		assert.False(t, occs[i].Date.Before(occs[i-1].Date), "ocurrencias desordenadas en %d", i)
	}
}

func TestExpandSlotsIncludesRangeBounds(t *testing.T) {
	from, _ := dbtime.ParseDate("2025-03-02")
	to, _ := dbtime.ParseDate("2025-03-09")
	occs, err := ExpandSlots([]configs.SlotTemplate{{Weekday: "SU", Start: "19:00", Tipo: "x"}}, from, to)
	require.NoError(t, err)
	require.Len(t, occs, 2)
	assert.Equal(t, "2025-03-09", dbtime.FormatDate(occs[1].Date))
}

func TestExpandSlotsErrors(t *testing.T) {
	from, to := dbtime.MonthRange(2025, 3)

	_, err := ExpandSlots([]configs.SlotTemplate{{Weekday: "XX", Start: "19:00"}}, from, to)
	assert.Error(t, err)
	_, err = ExpandSlots([]configs.SlotTemplate{{Weekday: "SU", Start: "7pm"}}, from, to)
	assert.Error(t, err)
	_, err = ExpandSlots(nil, to, from)
	assert.Error(t, err)
}
