package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodAddHoursWraps(t *testing.T) {
	cases := []struct {
		in    string
		hours int
		want  string
	}{
		{"19:00", -1, "18:00"},
		{"00:30", -1, "23:30"},
		{"23:30", 1, "00:30"},
		{"12:15", 24, "12:15"},
		{"01:00", -26, "23:00"},
	}
	for _, tc := range cases {
		got := MustParse(tc.in).AddHours(tc.hours)
		assert.Equal(t, tc.want, got.String(), "%s %+d", tc.in, tc.hours)
	}
}

func TestTodShiftRoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		start := NewTod(h, 30, 0)
		assert.True(t, start.Equal(start.AddHours(-1).AddHours(1)), "hour %d", h)
	}
}

func TestTodScanAndValue(t *testing.T) {
	var tod Tod
	require.NoError(t, tod.Scan("07:45:00"))
	assert.Equal(t, "07:45", tod.String())

	require.NoError(t, tod.Scan([]byte("19:00")))
	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "19:00:00", v)

	require.NoError(t, tod.Scan(time.Date(2025, 12, 25, 18, 5, 9, 0, time.UTC)))
	assert.Equal(t, "18:05:09", tod.String())

	assert.Error(t, tod.Scan(42))
	assert.Error(t, tod.Scan("25:00"))
}

func TestTodJSON(t *testing.T) {
	raw, err := json.Marshal(MustParse("19:00"))
	require.NoError(t, err)
	assert.JSONEq(t, `"19:00"`, string(raw))

	var tod Tod
	require.NoError(t, json.Unmarshal([]byte(`"08:15"`), &tod))
	assert.Equal(t, 8, tod.Hour())
	assert.Equal(t, 15, tod.Minute())
}

func TestTodOnKeepsDate(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	date := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	at := MustParse("00:30").AddHours(-1).On(date, loc)
	assert.Equal(t, 25, at.Day())
	assert.Equal(t, 23, at.Hour())
}

func TestDateHelpers(t *testing.T) {
	d, err := ParseDate("2025-12-25")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", FormatDate(d))

	_, err = ParseDate("25/12/2025")
	assert.Error(t, err)

	y, m, err := ParseMonth("2025-02")
	require.NoError(t, err)
	first, last := MonthRange(y, m)
	assert.Equal(t, "2025-02-01", FormatDate(first))
	assert.Equal(t, "2025-02-28", FormatDate(last))

	assert.Equal(t, "2025-12-25", FormatDate(DateOnly(time.Date(2025, 12, 25, 23, 59, 0, 0, time.UTC))))
}
