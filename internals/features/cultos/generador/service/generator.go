package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"pulpito_backend/internals/configs"
	auditService "pulpito_backend/internals/features/audit/service"
	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	cultoRepo "pulpito_backend/internals/features/cultos/cultos/repository"
	cultoService "pulpito_backend/internals/features/cultos/cultos/service"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

type Result struct {
	Month    string   `json:"month"`
	Created  int      `json:"created"`
	Existing int      `json:"existing"`
	Resynced []string `json:"resynced"`
	Failed   []string `json:"failed_resync"`
}

type Generator struct {
	repo    cultoRepo.Repository
	syncer  cultoService.HolidaySyncer
	auditor cultoService.Auditor
	tpl     *configs.ScheduleTemplate
	log     *zap.Logger
}

// New: auditor es opcional.
func New(repo cultoRepo.Repository, syncer cultoService.HolidaySyncer, auditor cultoService.Auditor, tpl *configs.ScheduleTemplate) *Generator {
	return &Generator{repo: repo, syncer: syncer, auditor: auditor, tpl: tpl, log: zap.L().Named("generador")}
}

// Generate crea los cultos del mes según la plantilla. Es idempotente: las ocurrencias
// que ya existen se cuentan y no se duplican. Las fechas con festivos se resincronizan
// para que los cultos nuevos queden adelantados como los demás.
func (g *Generator) Generate(ctx context.Context, year int, month time.Month) (*Result, error) {
	if g.tpl == nil || len(g.tpl.Slots) == 0 {
		return nil, apperr.Validation("la plantilla de cultos está vacía")
	}
	from, to := dbtime.MonthRange(year, month)
	res := &Result{Month: from.Format("2006-01"), Resynced: []string{}, Failed: []string{}}

	occs, err := ExpandSlots(g.tpl.Slots, from, to)
	if err != nil {
		return nil, apperr.Validation("%v", err)
	}

	tipos, err := g.repo.TiposByName(ctx)
	if err != nil {
		return nil, err
	}
	var unknown []string
	for _, s := range g.tpl.Slots {
		if _, ok := tipos[s.Tipo]; !ok {
			unknown = append(unknown, s.Tipo)
		}
	}
	if len(unknown) > 0 {
		return nil, apperr.Validation("tipos de culto inexistentes: %s", strings.Join(unknown, ", "))
	}

	holidays, err := g.syncer.ListHolidays(ctx, from, to)
	if err != nil {
		return nil, err
	}
	holidayDates := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidayDates[dbtime.FormatDate(h.FestivoDate)] = true
	}

	touched := map[string]time.Time{}
	for _, o := range occs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tipo := tipos[o.Tipo]
		exists, err := g.repo.Exists(ctx, o.Date, o.Start, tipo.TipoCultoID)
		if err != nil {
			return nil, err
		}
		if exists {
			res.Existing++
			continue
		}

		key := dbtime.FormatDate(o.Date)
		c := &cultoModel.CultoModel{
			CultoDate:      o.Date,
			CultoStartTime: o.Start,
			CultoEndTime:   o.End,
			CultoTipoID:    tipo.TipoCultoID,
			CultoStatus:    cultoModel.CultoPlanned,
			CultoIsHoliday: holidayDates[key],
		}
		if err := g.repo.Create(ctx, c); err != nil {
			return nil, err
		}
		res.Created++
		if holidayDates[key] {
			touched[key] = o.Date
		}
	}

	keys := make([]string, 0, len(touched))
	for k := range touched {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sr, err := g.syncer.Resync(ctx, touched[k])
		if err != nil || sr.Partial() {
			g.log.Warn("resync incompleto tras generar", zap.String("date", k), zap.Error(err))
			res.Failed = append(res.Failed, k)
			continue
		}
		res.Resynced = append(res.Resynced, k)
	}

	g.log.Info("cultos generados",
		zap.String("month", res.Month),
		zap.Int("created", res.Created),
		zap.Int("existing", res.Existing),
		zap.Int("resynced", len(res.Resynced)),
	)
	if g.auditor != nil && res.Created > 0 {
		g.auditor.RecordQuietly(ctx, auditService.Entry{
			Action:  "culto.generate",
			Entity:  "culto",
			Details: res,
		})
	}
	return res, nil
}

func (r *Result) String() string {
	return fmt.Sprintf("%s: %d creados, %d existentes, %d fechas con festivo", r.Month, r.Created, r.Existing, len(r.Resynced))
}
