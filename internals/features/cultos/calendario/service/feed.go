package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"golang.org/x/sync/errgroup"

	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	cultoRepo "pulpito_backend/internals/features/cultos/cultos/repository"
	festivoModel "pulpito_backend/internals/features/cultos/festivos/model"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

// Duración por defecto de un culto sin hora de fin.
const defaultCultoDuration = 90 * time.Minute

// Rango máximo del feed.
const maxFeedDays = 400

type CultoLister interface {
	List(ctx context.Context, f cultoRepo.ListFilter) ([]cultoModel.CultoModel, int64, error)
}

type HolidayLister interface {
	ListHolidays(ctx context.Context, from, to time.Time) ([]festivoModel.FestivoModel, error)
}

type Feed struct {
	cultos   CultoLister
	festivos HolidayLister
	loc      *time.Location
	name     string
	Now      func() time.Time
}

func NewFeed(cultos CultoLister, festivos HolidayLister, loc *time.Location, name string) *Feed {
	if loc == nil {
		loc = time.UTC
	}
	return &Feed{cultos: cultos, festivos: festivos, loc: loc, name: name, Now: time.Now}
}

// Build genera el iCalendar de [from, to]: un VEVENT por culto y uno de día completo
// por festivo.
func (f *Feed) Build(ctx context.Context, from, to time.Time) (string, error) {
	from, to = dbtime.DateOnly(from), dbtime.DateOnly(to)
	if to.Before(from) {
		return "", apperr.Validation("rango de fechas invertido")
	}
	if to.Sub(from) > maxFeedDays*24*time.Hour {
		return "", apperr.Validation("el rango no puede superar %d días", maxFeedDays)
	}

	var (
		cultos   []cultoModel.CultoModel
		festivos []festivoModel.FestivoModel
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, _, err := f.cultos.List(gctx, cultoRepo.ListFilter{From: from, To: to})
		cultos = rows
		return err
	})
	g.Go(func() error {
		rows, err := f.festivos.ListHolidays(gctx, from, to)
		festivos = rows
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//IDMJI//Gestor de Pulpito//ES")
	cal.SetXWRCalName(f.name)
	cal.SetXWRTimezone(f.loc.String())

	stamp := f.Now().UTC()
	for i := range cultos {
		f.addCulto(cal, &cultos[i], stamp)
	}
	for i := range festivos {
		addFestivo(cal, &festivos[i], stamp)
	}
	return cal.Serialize(), nil
}

func (f *Feed) addCulto(cal *ical.Calendar, c *cultoModel.CultoModel, stamp time.Time) {
	ev := cal.AddEvent(c.CultoID.String() + "@pulpito")
	ev.SetDtStampTime(stamp)

	start := c.CultoStartTime.On(c.CultoDate, f.loc)
	end := start.Add(defaultCultoDuration)
	if c.CultoEndTime != nil {
		end = c.CultoEndTime.On(c.CultoDate, f.loc)
		if !end.After(start) {
			end = end.Add(24 * time.Hour)
		}
	}
	ev.SetStartAt(start)
	ev.SetEndAt(end)

	summary := "Culto"
	if c.Tipo != nil {
		summary = c.Tipo.TipoCultoName
	}
	ev.SetSummary(summary)

	var desc []string
	if c.CultoIsHolidayAdjusted {
		desc = append(desc, fmt.Sprintf("Horario adelantado una hora por festivo (habitual %s).", c.CultoStartTime.AddHours(1)))
	}
	if c.CultoNotes != nil {
		desc = append(desc, *c.CultoNotes)
	}
	if len(desc) > 0 {
		ev.SetDescription(strings.Join(desc, "\n"))
	}
	if c.CultoStatus == cultoModel.CultoCancelled {
		ev.SetStatus(ical.ObjectStatusCancelled)
	} else {
		ev.SetStatus(ical.ObjectStatusConfirmed)
	}
}

func addFestivo(cal *ical.Calendar, h *festivoModel.FestivoModel, stamp time.Time) {
	ev := cal.AddEvent(h.FestivoID.String() + "@pulpito")
	ev.SetDtStampTime(stamp)
	ev.SetAllDayStartAt(h.FestivoDate)
	ev.SetAllDayEndAt(h.FestivoDate.AddDate(0, 0, 1))

	summary := "Festivo"
	if h.FestivoDescription != nil {
		summary = "Festivo: " + *h.FestivoDescription
	}
	ev.SetSummary(summary)
	ev.AddProperty(ical.ComponentPropertyCategories, string(h.FestivoCategory))
}
