package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScheduleTemplate(t *testing.T) {
	raw := []byte(`
slots:
  - weekday: su
    start: "11:00"
    end: "13:00"
    tipo: Culto dominical
  - weekday: TH
    start: "19:00"
    tipo: " Culto de enseñanza "
`)
	tpl, err := ParseScheduleTemplate(raw)
	require.NoError(t, err)
	require.Len(t, tpl.Slots, 2)

	assert.Equal(t, "SU", tpl.Slots[0].Weekday)
	assert.Equal(t, "13:00", tpl.Slots[0].End)
	assert.Equal(t, "Culto de enseñanza", tpl.Slots[1].Tipo)
	assert.Empty(t, tpl.Slots[1].End)
}

func TestParseScheduleTemplateRejectsBadSlots(t *testing.T) {
	cases := map[string]string{
		"weekday": "slots:\n  - weekday: XX\n    start: \"10:00\"\n    tipo: A\n",
		"start":   "slots:\n  - weekday: MO\n    tipo: A\n",
		"tipo":    "slots:\n  - weekday: MO\n    start: \"10:00\"\n",
		"yaml":    "slots: [",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseScheduleTemplate([]byte(raw))
			assert.Error(t, err)
		})
	}
}

func TestLoadScheduleTemplateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plantilla.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slots:\n  - weekday: WE\n    start: \"19:30\"\n    tipo: Oración\n"), 0o644))

	tpl, err := LoadScheduleTemplate(path)
	require.NoError(t, err)
	require.Len(t, tpl.Slots, 1)
	assert.Equal(t, "WE", tpl.Slots[0].Weekday)

	_, err = LoadScheduleTemplate(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
