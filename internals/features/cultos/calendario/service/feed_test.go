package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	cultoRepoTest "pulpito_backend/internals/features/cultos/cultos/repository/repositorytest"
	festivoModel "pulpito_backend/internals/features/cultos/festivos/model"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

type stubHolidays struct {
	rows []festivoModel.FestivoModel
	err  error
}

func (s stubHolidays) ListHolidays(ctx context.Context, from, to time.Time) ([]festivoModel.FestivoModel, error) {
	return s.rows, s.err
}

func date(s string) time.Time {
	d, err := dbtime.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildFeed(t *testing.T) {
	ctx := context.Background()
	repo := cultoRepoTest.NewMemoryRepository()
	tipoID := repo.PutTipo(tipoModel.TipoCultoModel{TipoCultoName: "Culto general"})
	notes := "Santa Cena"
	require.NoError(t, repo.Create(ctx, &cultoModel.CultoModel{
		CultoDate: date("2025-12-25"), CultoStartTime: dbtime.MustParse("18:00"),
		CultoTipoID: tipoID, CultoIsHolidayAdjusted: true, CultoNotes: &notes,
	}))
	require.NoError(t, repo.Create(ctx, &cultoModel.CultoModel{
		CultoDate: date("2025-12-28"), CultoStartTime: dbtime.MustParse("19:00"),
		CultoTipoID: tipoID, CultoStatus: cultoModel.CultoCancelled,
	}))
	desc := "Navidad"
	holidays := stubHolidays{rows: []festivoModel.FestivoModel{{
		FestivoID: uuid.New(), FestivoDate: date("2025-12-25"),
		FestivoCategory: festivoModel.FestivoNational, FestivoDescription: &desc,
	}}}

	loc, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	feed := NewFeed(repo, holidays, loc, "Cultos IDMJI")

	out, err := feed.Build(ctx, date("2025-12-01"), date("2025-12-31"))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "X-WR-CALNAME:Cultos IDMJI")
	assert.Contains(t, out, "CATEGORIES:nacional")
	assert.Contains(t, out, "STATUS:CANCELLED")

	cal, err := ical.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)
	events := cal.Events()
	require.Len(t, events, 3)

	first := events[0]
	assert.Equal(t, "Culto general", first.GetProperty(ical.ComponentPropertySummary).Value)
	start, err := first.GetStartAt()
	require.NoError(t, err)
	// 18:00 en Madrid (UTC+1 en invierno).
	assert.Equal(t, time.Date(2025, 12, 25, 17, 0, 0, 0, time.UTC), start.UTC())
	assert.Contains(t, first.GetProperty(ical.ComponentPropertyDescription).Value, "19:00")

	last := events[2]
	assert.Equal(t, "Festivo: Navidad", last.GetProperty(ical.ComponentPropertySummary).Value)
}

func TestBuildFeedValidatesRange(t *testing.T) {
	feed := NewFeed(cultoRepoTest.NewMemoryRepository(), stubHolidays{}, nil, "x")

	_, err := feed.Build(context.Background(), date("2025-12-31"), date("2025-12-01"))
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = feed.Build(context.Background(), date("2020-01-01"), date("2025-12-01"))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestBuildFeedPropagatesLoadErrors(t *testing.T) {
	boom := errors.New("db down")
	feed := NewFeed(cultoRepoTest.NewMemoryRepository(), stubHolidays{err: boom}, nil, "x")

	_, err := feed.Build(context.Background(), date("2025-12-01"), date("2025-12-31"))
	assert.ErrorIs(t, err, boom)
}
