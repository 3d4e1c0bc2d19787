package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auditService "pulpito_backend/internals/features/audit/service"
	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/cultos/repository"
	"pulpito_backend/internals/features/cultos/cultos/repository/repositorytest"
	festivoModel "pulpito_backend/internals/features/cultos/festivos/model"
	festivoService "pulpito_backend/internals/features/cultos/festivos/service"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

type fakeSyncer struct {
	holidays map[string]bool
	resynced []string
}

func (f *fakeSyncer) ListHolidays(ctx context.Context, from, to time.Time) ([]festivoModel.FestivoModel, error) {
	var out []festivoModel.FestivoModel
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if f.holidays[dbtime.FormatDate(d)] {
			out = append(out, festivoModel.FestivoModel{FestivoDate: d, FestivoCategory: festivoModel.FestivoNational})
		}
	}
	return out, nil
}

func (f *fakeSyncer) Resync(ctx context.Context, date time.Time) (*festivoService.SyncResult, error) {
	f.resynced = append(f.resynced, dbtime.FormatDate(date))
	return &festivoService.SyncResult{Date: dbtime.FormatDate(date)}, nil
}

type recordingAuditor struct{ actions []string }

func (a *recordingAuditor) RecordQuietly(ctx context.Context, e auditService.Entry) {
	a.actions = append(a.actions, e.Action)
}

func day(s string) time.Time {
	d, err := dbtime.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func setup(t *testing.T) (*Service, *repositorytest.MemoryRepository, *fakeSyncer, uuid.UUID) {
	t.Helper()
	repo := repositorytest.NewMemoryRepository()
	tipoID := repo.PutTipo(tipoModel.TipoCultoModel{
		TipoCultoName:                 "Culto general",
		TipoCultoRequiresIntroReading: true,
		TipoCultoRequiresTeaching:     true,
	})
	syncer := &fakeSyncer{holidays: map[string]bool{}}
	return New(repo, syncer, &recordingAuditor{}), repo, syncer, tipoID
}

func TestCreateCultoComputesCompletion(t *testing.T) {
	svc, _, syncer, tipoID := setup(t)
	ctx := context.Background()

	view, err := svc.Create(ctx, &cultoModel.CultoModel{
		CultoDate:      day("2025-03-02"),
		CultoStartTime: dbtime.MustParse("19:00"),
		CultoTipoID:    tipoID,
	})
	require.NoError(t, err)
	assert.Equal(t, cultoModel.CultoPlanned, view.Culto.CultoStatus)
	assert.Equal(t, Incomplete, view.Completion)
	assert.Equal(t, []tipoModel.Role{tipoModel.RoleIntroReading, tipoModel.RoleTeaching}, view.MissingRoles)
	assert.False(t, view.Culto.CultoIsHoliday)
	assert.Empty(t, syncer.resynced)

	reader, teacher := uuid.New(), uuid.New()
	view, err = svc.Update(ctx, view.Culto.CultoID, UpdateInput{
		Assignments: map[tipoModel.Role]*uuid.UUID{
			tipoModel.RoleIntroReading: &reader,
			tipoModel.RoleTeaching:     &teacher,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, Complete, view.Completion)
	assert.Empty(t, view.MissingRoles)

	view, err = svc.Update(ctx, view.Culto.CultoID, UpdateInput{
		Assignments: map[tipoModel.Role]*uuid.UUID{tipoModel.RoleTeaching: nil},
	})
	require.NoError(t, err)
	assert.Equal(t, Incomplete, view.Completion)
	assert.Equal(t, []tipoModel.Role{tipoModel.RoleTeaching}, view.MissingRoles)
}

func TestCreateCultoOnHolidayResyncsDate(t *testing.T) {
	svc, _, syncer, tipoID := setup(t)
	syncer.holidays["2025-12-25"] = true

	view, err := svc.Create(context.Background(), &cultoModel.CultoModel{
		CultoDate:      day("2025-12-25"),
		CultoStartTime: dbtime.MustParse("19:00"),
		CultoTipoID:    tipoID,
	})
	require.NoError(t, err)
	assert.True(t, view.Culto.CultoIsHoliday)
	assert.Equal(t, []string{"2025-12-25"}, syncer.resynced)
}

func TestCreateCultoRejectsUnknownTipo(t *testing.T) {
	svc, repo, _, _ := setup(t)

	_, err := svc.Create(context.Background(), &cultoModel.CultoModel{
		CultoDate:      day("2025-03-02"),
		CultoStartTime: dbtime.MustParse("19:00"),
		CultoTipoID:    uuid.New(),
	})
	assert.ErrorIs(t, err, apperr.ErrValidation)
	assert.Zero(t, repo.Len())
}

func TestMovingAdjustedCultoRestoresNormalTime(t *testing.T) {
	svc, repo, syncer, tipoID := setup(t)
	ctx := context.Background()

	c := &cultoModel.CultoModel{
		CultoDate:              day("2025-12-25"),
		CultoStartTime:         dbtime.MustParse("18:00"),
		CultoTipoID:            tipoID,
		CultoIsHolidayAdjusted: true,
	}
	require.NoError(t, repo.Create(ctx, c))

	newDate := day("2025-12-28")
	view, err := svc.Update(ctx, c.CultoID, UpdateInput{Date: &newDate})
	require.NoError(t, err)
	assert.Equal(t, "19:00", view.Culto.CultoStartTime.String())
	assert.False(t, view.Culto.CultoIsHolidayAdjusted)
	assert.Equal(t, "2025-12-28", dbtime.FormatDate(view.Culto.CultoDate))
	assert.Equal(t, []string{"2025-12-28"}, syncer.resynced)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc, repo, _, tipoID := setup(t)
	ctx := context.Background()
	c := &cultoModel.CultoModel{CultoDate: day("2025-03-02"), CultoStartTime: dbtime.MustParse("10:00"), CultoTipoID: tipoID}
	require.NoError(t, repo.Create(ctx, c))

	bad := cultoModel.CultoStatus("aplazado")
	_, err := svc.Update(ctx, c.CultoID, UpdateInput{Status: &bad})
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestListAndDelete(t *testing.T) {
	svc, repo, _, tipoID := setup(t)
	ctx := context.Background()
	for _, d := range []string{"2025-03-09", "2025-03-02", "2025-04-06"} {
		require.NoError(t, repo.Create(ctx, &cultoModel.CultoModel{
			CultoDate: day(d), CultoStartTime: dbtime.MustParse("10:00"), CultoTipoID: tipoID,
		}))
	}

	views, total, err := svc.List(ctx, repository.ListFilter{From: day("2025-03-01"), To: day("2025-03-31")})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, views, 2)
	assert.Equal(t, "2025-03-02", dbtime.FormatDate(views[0].Culto.CultoDate))
	assert.Equal(t, Incomplete, views[0].Completion)

	_, _, err = svc.List(ctx, repository.ListFilter{From: day("2025-03-31"), To: day("2025-03-01")})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	require.NoError(t, svc.Delete(ctx, views[0].Culto.CultoID))
	assert.ErrorIs(t, svc.Delete(ctx, views[0].Culto.CultoID), apperr.ErrNotFound)
	_, err = svc.Get(ctx, views[0].Culto.CultoID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestMovingCultoRecomputesHolidayFlag(t *testing.T) {
	svc, repo, syncer, tipoID := setup(t)
	ctx := context.Background()
	syncer.holidays["2025-12-25"] = true

	c := &cultoModel.CultoModel{
		CultoDate:      day("2025-12-25"),
		CultoStartTime: dbtime.MustParse("19:00"),
		CultoTipoID:    tipoID,
		CultoIsHoliday: true,
	}
	require.NoError(t, repo.Create(ctx, c))

	away := day("2025-12-27")
	view, err := svc.Update(ctx, c.CultoID, UpdateInput{Date: &away})
	require.NoError(t, err)
	assert.False(t, view.Culto.CultoIsHoliday)

	back := day("2025-12-25")
	view, err = svc.Update(ctx, c.CultoID, UpdateInput{Date: &back})
	require.NoError(t, err)
	assert.True(t, view.Culto.CultoIsHoliday)
	assert.Equal(t, []string{"2025-12-27", "2025-12-25"}, syncer.resynced)
}

func TestCreateIgnoresHolidayFlagOnOrdinaryDate(t *testing.T) {
	svc, _, _, tipoID := setup(t)

	view, err := svc.Create(context.Background(), &cultoModel.CultoModel{
		CultoDate:      day("2025-03-02"),
		CultoStartTime: dbtime.MustParse("19:00"),
		CultoTipoID:    tipoID,
		CultoIsHoliday: true,
	})
	require.NoError(t, err)
	assert.False(t, view.Culto.CultoIsHoliday)
}
