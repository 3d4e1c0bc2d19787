package service

import (
	"context"

	"github.com/google/uuid"

	auditService "pulpito_backend/internals/features/audit/service"
	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/festivos/repository/repositorytest"
	"pulpito_backend/internals/helpers/dbtime"
)

func addCulto(s *repositorytest.MemoryStore, date, start string) uuid.UUID {
	d, err := dbtime.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return s.PutCulto(cultoModel.CultoModel{
		CultoDate:      d,
		CultoStartTime: dbtime.MustParse(start),
		CultoStatus:    cultoModel.CultoPlanned,
	})
}

type fakeNotifier struct {
	titles []string
	err    error
}

func (n *fakeNotifier) Broadcast(ctx context.Context, title, body string, cultoID *uuid.UUID, tags ...string) error {
	n.titles = append(n.titles, title)
	return n.err
}

type fakeAuditor struct {
	actions []string
}

func (a *fakeAuditor) RecordQuietly(ctx context.Context, e auditService.Entry) {
	a.actions = append(a.actions, e.Action)
}

var errStoreDown = repositorytest.ErrMemoryStoreDown
