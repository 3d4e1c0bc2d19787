package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/cultos/repository/repositorytest"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/dbtime"
)

type notice struct {
	title, body string
	cultoID     uuid.UUID
}

type fakeNotifier struct {
	sent []notice
	err  error
}

func (f *fakeNotifier) Broadcast(ctx context.Context, title, body string, cultoID *uuid.UUID, tags ...string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, notice{title: title, body: body, cultoID: *cultoID})
	return nil
}

func date(s string) time.Time {
	d, err := dbtime.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestReminderNotifiesIncompleteCultosOfTomorrow(t *testing.T) {
	ctx := context.Background()
	repo := repositorytest.NewMemoryRepository()
	tipoID := repo.PutTipo(tipoModel.TipoCultoModel{
		TipoCultoName:                 "Culto general",
		TipoCultoRequiresIntroReading: true,
		TipoCultoRequiresTeaching:     true,
	})

	incomplete := &model.CultoModel{CultoDate: date("2025-03-02"), CultoStartTime: dbtime.MustParse("19:00"), CultoTipoID: tipoID, CultoStatus: model.CultoPlanned}
	require.NoError(t, repo.Create(ctx, incomplete))

	reader, teacher := uuid.New(), uuid.New()
	complete := &model.CultoModel{
		CultoDate: date("2025-03-02"), CultoStartTime: dbtime.MustParse("10:00"), CultoTipoID: tipoID, CultoStatus: model.CultoPlanned,
		CultoIntroReaderID: &reader, CultoTeacherID: &teacher,
	}
	require.NoError(t, repo.Create(ctx, complete))

	cancelled := &model.CultoModel{CultoDate: date("2025-03-02"), CultoStartTime: dbtime.MustParse("12:00"), CultoTipoID: tipoID, CultoStatus: model.CultoCancelled}
	require.NoError(t, repo.Create(ctx, cancelled))

	later := &model.CultoModel{CultoDate: date("2025-03-03"), CultoStartTime: dbtime.MustParse("19:00"), CultoTipoID: tipoID, CultoStatus: model.CultoPlanned}
	require.NoError(t, repo.Create(ctx, later))

	notifier := &fakeNotifier{}
	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	r := NewReminder(repo, notifier, madrid)
	// 23:30 UTC del día 28 ya es día 1 en Madrid.
	r.Now = func() time.Time { return time.Date(2025, 2, 28, 23, 30, 0, 0, time.UTC) }

	n, err := r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, incomplete.CultoID, notifier.sent[0].cultoID)
	assert.Contains(t, notifier.sent[0].title, "Culto general")
	assert.Equal(t, "Culto general del 2025-03-02 a las 19:00. Sin asignar: lectura de introducción, enseñanza.", notifier.sent[0].body)
}

func TestReminderReportsNotifierFailure(t *testing.T) {
	ctx := context.Background()
	repo := repositorytest.NewMemoryRepository()
	tipoID := repo.PutTipo(tipoModel.TipoCultoModel{TipoCultoName: "Oración", TipoCultoRequiresTeaching: true})
	require.NoError(t, repo.Create(ctx, &model.CultoModel{
		CultoDate: date("2025-03-02"), CultoStartTime: dbtime.MustParse("19:00"), CultoTipoID: tipoID, CultoStatus: model.CultoPlanned,
	}))

	r := NewReminder(repo, &fakeNotifier{err: errors.New("smtp caído")}, time.UTC)
	r.Now = func() time.Time { return time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC) }

	n, err := r.Run(ctx)
	assert.Error(t, err)
	assert.Zero(t, n)
	assert.Error(t, r.Job(ctx))
}
