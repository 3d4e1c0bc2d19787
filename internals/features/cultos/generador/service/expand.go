package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"pulpito_backend/internals/configs"
	"pulpito_backend/internals/helpers/dbtime"
)

// Occurrence es un culto concreto que produce la plantilla semanal.
type Occurrence struct {
	Date  time.Time
	Start dbtime.Tod
	End   *dbtime.Tod
	Tipo  string
}

var weekdays = map[string]rrule.Weekday{
	"MO": rrule.MO, "TU": rrule.TU, "WE": rrule.WE, "TH": rrule.TH,
	"FR": rrule.FR, "SA": rrule.SA, "SU": rrule.SU,
}

// ExpandSlots enumera las ocurrencias de cada franja en [from, to] (ambos incluidos),
// ordenadas por fecha y hora.
func ExpandSlots(slots []configs.SlotTemplate, from, to time.Time) ([]Occurrence, error) {
	from, to = dbtime.DateOnly(from), dbtime.DateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("rango invertido: %s > %s", dbtime.FormatDate(from), dbtime.FormatDate(to))
	}

	var out []Occurrence
	for i, s := range slots {
		wd, ok := weekdays[s.Weekday]
		if !ok {
			return nil, fmt.Errorf("slot %d: día de la semana inválido %q", i, s.Weekday)
		}
		start, err := dbtime.Parse(s.Start)
		if err != nil {
			return nil, fmt.Errorf("slot %d: hora de inicio inválida %q", i, s.Start)
		}
		var end *dbtime.Tod
		if s.End != "" {
			e, err := dbtime.Parse(s.End)
			if err != nil {
				return nil, fmt.Errorf("slot %d: hora de fin inválida %q", i, s.End)
			}
			end = &e
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Byweekday: []rrule.Weekday{wd},
			Dtstart:   from,
			Until:     to,
		})
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		for _, d := range rule.Between(from, to, true) {
			out = append(out, Occurrence{Date: dbtime.DateOnly(d), Start: start, End: end, Tipo: s.Tipo})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Start.Before(out[j].Start.Time)
	})
	return out, nil
}
