package configs

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SlotTemplate es una franja semanal fija de la plantilla de cultos.
type SlotTemplate struct {
	Weekday string `yaml:"weekday" json:"weekday"` // MO, TU, WE, TH, FR, SA, SU
	Start   string `yaml:"start" json:"start"`     // HH:MM
	End     string `yaml:"end,omitempty" json:"end,omitempty"`
	Tipo    string `yaml:"tipo" json:"tipo"` // nombre del tipo de culto
}

type ScheduleTemplate struct {
	Slots []SlotTemplate `yaml:"slots" json:"slots"`
}

var validWeekdays = map[string]struct{}{
	"MO": {}, "TU": {}, "WE": {}, "TH": {}, "FR": {}, "SA": {}, "SU": {},
}

// LoadScheduleTemplate lee la plantilla semanal desde un fichero YAML.
func LoadScheduleTemplate(path string) (*ScheduleTemplate, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer plantilla %q: %w", path, err)
	}
	return ParseScheduleTemplate(raw)
}

func ParseScheduleTemplate(raw []byte) (*ScheduleTemplate, error) {
	var tpl ScheduleTemplate
	if err := yaml.Unmarshal(raw, &tpl); err != nil {
		return nil, fmt.Errorf("parsear plantilla: %w", err)
	}
	for i := range tpl.Slots {
		s := &tpl.Slots[i]
		s.Weekday = strings.ToUpper(strings.TrimSpace(s.Weekday))
		s.Tipo = strings.TrimSpace(s.Tipo)
		if _, ok := validWeekdays[s.Weekday]; !ok {
			return nil, fmt.Errorf("slot %d: día de la semana inválido %q", i, s.Weekday)
		}
		if strings.TrimSpace(s.Start) == "" {
			return nil, fmt.Errorf("slot %d: falta la hora de inicio", i)
		}
		if s.Tipo == "" {
			return nil, fmt.Errorf("slot %d: falta el tipo de culto", i)
		}
	}
	return &tpl, nil
}
