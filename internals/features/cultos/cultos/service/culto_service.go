package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	auditService "pulpito_backend/internals/features/audit/service"
	"pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/cultos/repository"
	festivoModel "pulpito_backend/internals/features/cultos/festivos/model"
	festivoService "pulpito_backend/internals/features/cultos/festivos/service"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

// HolidaySyncer es la parte de la sincronización de festivos que usan los cultos.
type HolidaySyncer interface {
	ListHolidays(ctx context.Context, from, to time.Time) ([]festivoModel.FestivoModel, error)
	Resync(ctx context.Context, date time.Time) (*festivoService.SyncResult, error)
}

type Auditor interface {
	RecordQuietly(ctx context.Context, e auditService.Entry)
}

// CultoView es un culto con su estado de completitud calculado.
type CultoView struct {
	Culto        *model.CultoModel
	Completion   Completion
	MissingRoles []tipoModel.Role
}

func newView(c *model.CultoModel) CultoView {
	return CultoView{
		Culto:        c,
		Completion:   Evaluate(c, c.Tipo),
		MissingRoles: MissingRoles(c, c.Tipo),
	}
}

// UpdateInput: los campos nil no se tocan. En Assignments una clave presente con
// valor nil quita la asignación.
type UpdateInput struct {
	Date        *time.Time
	Start       *dbtime.Tod
	End         *dbtime.Tod
	TipoID      *uuid.UUID
	Status      *model.CultoStatus
	Notes       *string
	Assignments map[tipoModel.Role]*uuid.UUID
}

type Service struct {
	repo    repository.Repository
	syncer  HolidaySyncer
	auditor Auditor
	log     *zap.Logger
}

// New: auditor es opcional.
func New(repo repository.Repository, syncer HolidaySyncer, auditor Auditor) *Service {
	return &Service{repo: repo, syncer: syncer, auditor: auditor, log: zap.L().Named("cultos")}
}

func (s *Service) List(ctx context.Context, f repository.ListFilter) ([]CultoView, int64, error) {
	if f.To.Before(f.From) {
		return nil, 0, apperr.Validation("rango de fechas invertido")
	}
	rows, total, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CultoView, 0, len(rows))
	for i := range rows {
		out = append(out, newView(&rows[i]))
	}
	return out, total, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (CultoView, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return CultoView{}, err
	}
	return newView(c), nil
}

// Create guarda el culto con el flag de festivo de su fecha y, si la fecha tiene
// festivos, lo adelanta como al resto.
func (s *Service) Create(ctx context.Context, c *model.CultoModel) (CultoView, error) {
	if c.CultoDate.IsZero() {
		return CultoView{}, apperr.Validation("fecha requerida")
	}
	if c.CultoStatus == "" {
		c.CultoStatus = model.CultoPlanned
	}
	if !c.CultoStatus.Valid() {
		return CultoView{}, apperr.Validation("estado de culto desconocido %q", c.CultoStatus)
	}
	if _, err := s.repo.GetTipo(ctx, c.CultoTipoID); err != nil {
		return CultoView{}, tipoError(err)
	}

	c.CultoDate = dbtime.DateOnly(c.CultoDate)
	c.CultoIsHolidayAdjusted = false
	holidays, err := s.syncer.ListHolidays(ctx, c.CultoDate, c.CultoDate)
	if err != nil {
		return CultoView{}, err
	}
	c.CultoIsHoliday = len(holidays) > 0

	if err := s.repo.Create(ctx, c); err != nil {
		return CultoView{}, err
	}
	if len(holidays) > 0 {
		s.resync(ctx, c.CultoDate)
	}
	s.audit(ctx, "culto.create", c.CultoID, c)
	return s.Get(ctx, c.CultoID)
}

// Update aplica los cambios. Al mover un culto a otra fecha su flag de festivo pasa a
// ser el de la fecha nueva; si estaba ajustado recupera su hora normal y después se
// aplica la regla de festivos de la fecha nueva.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (CultoView, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return CultoView{}, err
	}

	fields := map[string]any{}
	dateChanged := false
	if in.Date != nil {
		d := dbtime.DateOnly(*in.Date)
		if !d.Equal(dbtime.DateOnly(cur.CultoDate)) {
			dateChanged = true
			fields["culto_date"] = d
			holidays, err := s.syncer.ListHolidays(ctx, d, d)
			if err != nil {
				return CultoView{}, err
			}
			fields["culto_is_holiday"] = len(holidays) > 0
			if cur.CultoIsHolidayAdjusted {
				fields["culto_is_holiday_adjusted"] = false
				if in.Start == nil {
					fields["culto_start_time"] = cur.CultoStartTime.AddHours(1)
				}
			}
		}
	}
	if in.Start != nil {
		fields["culto_start_time"] = *in.Start
	}
	if in.End != nil {
		fields["culto_end_time"] = *in.End
	}
	if in.TipoID != nil {
		if _, err := s.repo.GetTipo(ctx, *in.TipoID); err != nil {
			return CultoView{}, tipoError(err)
		}
		fields["culto_tipo_id"] = *in.TipoID
	}
	if in.Status != nil {
		if !in.Status.Valid() {
			return CultoView{}, apperr.Validation("estado de culto desconocido %q", *in.Status)
		}
		fields["culto_status"] = *in.Status
	}
	if in.Notes != nil {
		fields["culto_notes"] = in.Notes
	}
	for role, who := range in.Assignments {
		col := model.AssigneeColumn(role)
		if col == "" {
			return CultoView{}, apperr.Validation("puesto desconocido %q", role)
		}
		fields[col] = who
	}

	if len(fields) == 0 {
		return newView(cur), nil
	}
	if err := s.repo.Update(ctx, id, fields); err != nil {
		return CultoView{}, err
	}
	if dateChanged {
		s.resync(ctx, fields["culto_date"].(time.Time))
	}
	s.audit(ctx, "culto.update", id, fields)
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.audit(ctx, "culto.delete", id, nil)
	return nil
}

// resync no hace fallar la operación: el culto ya está guardado y el admin puede
// reintentar con /festivos/resync.
func (s *Service) resync(ctx context.Context, date time.Time) {
	res, err := s.syncer.Resync(ctx, date)
	if err != nil {
		s.log.Warn("no se pudo aplicar el ajuste de festivo", zap.String("date", dbtime.FormatDate(date)), zap.Error(err))
		return
	}
	if res.Partial() {
		s.log.Warn("ajuste de festivo incompleto", zap.String("date", res.Date), zap.Int("failed", len(res.Failed)))
	}
}

func (s *Service) audit(ctx context.Context, action string, id uuid.UUID, details any) {
	if s.auditor == nil {
		return
	}
	s.auditor.RecordQuietly(ctx, auditService.Entry{
		Action:   action,
		Entity:   "culto",
		EntityID: &id,
		Details:  details,
	})
}

func tipoError(err error) error {
	if apperr.IsPersistence(err) {
		return err
	}
	return apperr.Validation("tipo de culto inexistente")
}
