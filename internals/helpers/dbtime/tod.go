// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod es una hora del día (columna Postgres TIME) sin fecha ni zona.
type Tod struct{ time.Time }

// From: crea Tod desde time.Time (toma HH:mm:ss, descarta fecha y zona)
func From(t time.Time) Tod {
	return NewTod(t.Hour(), t.Minute(), t.Second())
}

func NewTod(hour, minute, second int) Tod {
	return Tod{Time: time.Date(0, 1, 1, hour, minute, second, 0, time.UTC)}
}

// Parse: crea Tod desde "HH:mm[:ss]"
func Parse(s string) (Tod, error) {
	var tt Tod
	return tt, tt.parse(s)
}

func MustParse(s string) Tod {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// AddHours desplaza la hora módulo 24h. La fecha del culto no cambia nunca.
func (t Tod) AddHours(h int) Tod {
	hour := (t.Hour() + h) % 24
	if hour < 0 {
		hour += 24
	}
	return NewTod(hour, t.Minute(), t.Second())
}

func (t Tod) Equal(o Tod) bool {
	return t.Hour() == o.Hour() && t.Minute() == o.Minute() && t.Second() == o.Second()
}

// String devuelve "HH:MM" (o "HH:MM:SS" si hay segundos).
func (t Tod) String() string {
	if t.Second() != 0 {
		return t.Format("15:04:05")
	}
	return t.Format("15:04")
}

// On combina la hora con una fecha en la zona indicada.
func (t Tod) On(date time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}

// Scan: acepta time.Time o string ("HH:MM[:SS]")
func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		*t = From(x)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 { // "HH:MM"
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return fmt.Errorf("tod: hora inválida %q", s)
	}
	t.Time = tt
	return nil
}

// Value: envía "HH:MM:SS" para que Postgres TIME lo entienda
func (t Tod) Value() (driver.Value, error) {
	if t.Time.IsZero() {
		return "00:00:00", nil
	}
	return t.Format("15:04:05"), nil
}

func (t Tod) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}

// GormDataType fija el tipo de columna para AutoMigrate.
func (Tod) GormDataType() string {
	return "time"
}
