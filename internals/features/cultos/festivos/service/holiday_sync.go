package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	auditService "pulpito_backend/internals/features/audit/service"
	"pulpito_backend/internals/features/cultos/festivos/model"
	"pulpito_backend/internals/features/cultos/festivos/repository"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

// Los cultos de un día festivo empiezan una hora antes.
const holidayShiftHours = -1

type Notifier interface {
	Broadcast(ctx context.Context, title, body string, cultoID *uuid.UUID, tags ...string) error
}

type Auditor interface {
	RecordQuietly(ctx context.Context, e auditService.Entry)
}

type ShiftFailure struct {
	CultoID uuid.UUID `json:"culto_id"`
	Error   string    `json:"error"`
}

// SyncResult detalla qué cultos se movieron, cuáles ya estaban movidos por otra
// operación concurrente (skipped) y cuáles fallaron y pueden reintentarse con Resync.
type SyncResult struct {
	Festivo           *model.FestivoModel `json:"festivo,omitempty"`
	Date              string              `json:"date"`
	Shifted           []uuid.UUID         `json:"shifted"`
	Skipped           []uuid.UUID         `json:"skipped"`
	Failed            []ShiftFailure      `json:"failed"`
	Reverted          bool                `json:"reverted"`
	RemainingHolidays int64               `json:"remaining_holidays"`
}

func newResult(date time.Time) *SyncResult {
	return &SyncResult{
		Date:    dbtime.FormatDate(date),
		Shifted: []uuid.UUID{},
		Skipped: []uuid.UUID{},
		Failed:  []ShiftFailure{},
	}
}

func (r *SyncResult) Partial() bool { return len(r.Failed) > 0 }

type AddHolidayInput struct {
	Date        time.Time
	Category    model.FestivoCategory
	Description *string
}

type HolidaySync struct {
	store    repository.Store
	notifier Notifier
	auditor  Auditor
	log      *zap.Logger
}

// NewHolidaySync: notifier y auditor son opcionales.
func NewHolidaySync(store repository.Store, notifier Notifier, auditor Auditor) *HolidaySync {
	return &HolidaySync{
		store:    store,
		notifier: notifier,
		auditor:  auditor,
		log:      zap.L().Named("festivos"),
	}
}

func (s *HolidaySync) ListHolidays(ctx context.Context, from, to time.Time) ([]model.FestivoModel, error) {
	if to.Before(from) {
		return nil, apperr.Validation("rango de fechas invertido")
	}
	return s.store.ListHolidays(ctx, dbtime.DateOnly(from), dbtime.DateOnly(to))
}

// AddHoliday registra el festivo y adelanta una hora los cultos del día que aún no
// estaban ajustados. Si falla el alta del festivo no se toca nada; los fallos por culto
// se recogen en el resultado sin abortar la operación.
func (s *HolidaySync) AddHoliday(ctx context.Context, in AddHolidayInput) (*SyncResult, error) {
	if in.Date.IsZero() {
		return nil, apperr.Validation("fecha requerida")
	}
	if !in.Category.Valid() {
		return nil, apperr.Validation("categoría de festivo desconocida %q", in.Category)
	}
	date := dbtime.DateOnly(in.Date)
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		in.Description = &d
		if d == "" {
			in.Description = nil
		}
	}

	res := newResult(date)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.LockDate(ctx, date); err != nil {
			return err
		}
		f := &model.FestivoModel{
			FestivoDate:        date,
			FestivoCategory:    in.Category,
			FestivoDescription: in.Description,
		}
		if err := tx.InsertHoliday(ctx, f); err != nil {
			return err
		}
		res.Festivo = f
		n, err := tx.CountHolidaysForDate(ctx, date)
		if err != nil {
			return err
		}
		res.RemainingHolidays = n
		return s.applyRule(ctx, tx, date, true, res)
	})
	if err != nil {
		return nil, err
	}

	s.afterSync(ctx, "festivo.create", res)
	return res, nil
}

// RemoveHoliday borra el festivo y, solo si era el último de su fecha, devuelve los
// cultos ajustados a su hora normal.
func (s *HolidaySync) RemoveHoliday(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	var res *SyncResult
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		f, err := tx.GetHoliday(ctx, id)
		if err != nil {
			return err
		}
		date := dbtime.DateOnly(f.FestivoDate)
		res = newResult(date)
		res.Festivo = f

		if err := tx.LockDate(ctx, date); err != nil {
			return err
		}
		if err := tx.DeleteHoliday(ctx, id); err != nil {
			return err
		}
		remaining, err := tx.CountHolidaysForDate(ctx, date)
		if err != nil {
			return err
		}
		res.RemainingHolidays = remaining
		if remaining > 0 {
			return nil
		}
		res.Reverted = true
		return s.applyRule(ctx, tx, date, false, res)
	})
	if err != nil {
		return nil, err
	}

	s.afterSync(ctx, "festivo.delete", res)
	return res, nil
}

// Resync vuelve a aplicar la regla para una fecha: con festivos, todos los cultos
// ajustados; sin festivos, ninguno. Sirve para reintentar los fallos de AddHoliday /
// RemoveHoliday y para cultos creados después del festivo.
func (s *HolidaySync) Resync(ctx context.Context, date time.Time) (*SyncResult, error) {
	if date.IsZero() {
		return nil, apperr.Validation("fecha requerida")
	}
	date = dbtime.DateOnly(date)
	res := newResult(date)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.LockDate(ctx, date); err != nil {
			return err
		}
		n, err := tx.CountHolidaysForDate(ctx, date)
		if err != nil {
			return err
		}
		res.RemainingHolidays = n
		res.Reverted = n == 0
		return s.applyRule(ctx, tx, date, n > 0, res)
	})
	if err != nil {
		return nil, err
	}

	if len(res.Shifted) > 0 || res.Partial() {
		s.afterSync(ctx, "festivo.resync", res)
	}
	return res, nil
}

// applyRule deja la fecha coherente con holiday: marca culto_is_holiday en todos sus
// cultos y mueve los que no tienen el ajuste que corresponde. Un fallo al marcar aborta
// la transacción; los fallos al mover cada culto no.
func (s *HolidaySync) applyRule(ctx context.Context, tx repository.Store, date time.Time, holiday bool, res *SyncResult) error {
	if _, err := tx.MarkHolidayDate(ctx, date, holiday); err != nil {
		return err
	}
	return s.shiftDate(ctx, tx, date, !holiday, res)
}

// shiftDate mueve los cultos de la fecha cuyo flag es fromAdjusted:
// false → -1h y flag a true; true → +1h y flag a false.
func (s *HolidaySync) shiftDate(ctx context.Context, tx repository.Store, date time.Time, fromAdjusted bool, res *SyncResult) error {
	delta := holidayShiftHours
	if fromAdjusted {
		delta = -holidayShiftHours
	}

	cultos, err := tx.FindCultosForDate(ctx, date, fromAdjusted)
	if err != nil {
		return err
	}
	for _, c := range cultos {
		if err := ctx.Err(); err != nil {
			return err
		}
		newStart := c.CultoStartTime.AddHours(delta)
		ok, err := tx.ShiftCulto(ctx, c.CultoID, fromAdjusted, c.CultoStartTime, newStart)
		if err != nil {
			s.log.Warn("no se pudo ajustar el horario del culto",
				zap.String("culto_id", c.CultoID.String()),
				zap.String("date", res.Date),
				zap.Error(err),
			)
			res.Failed = append(res.Failed, ShiftFailure{CultoID: c.CultoID, Error: err.Error()})
			continue
		}
		if !ok {
			res.Skipped = append(res.Skipped, c.CultoID)
			continue
		}
		res.Shifted = append(res.Shifted, c.CultoID)
	}
	return nil
}

func (s *HolidaySync) afterSync(ctx context.Context, action string, res *SyncResult) {
	s.log.Info("festivo sincronizado",
		zap.String("action", action),
		zap.String("date", res.Date),
		zap.Int("shifted", len(res.Shifted)),
		zap.Int("skipped", len(res.Skipped)),
		zap.Int("failed", len(res.Failed)),
		zap.Bool("reverted", res.Reverted),
	)

	if s.auditor != nil {
		var entityID *uuid.UUID
		if res.Festivo != nil {
			id := res.Festivo.FestivoID
			entityID = &id
		}
		s.auditor.RecordQuietly(ctx, auditService.Entry{
			Action:   action,
			Entity:   "festivo",
			EntityID: entityID,
			Details:  res,
		})
	}

	if s.notifier == nil || len(res.Shifted) == 0 {
		return
	}
	title := "Horario ajustado por festivo"
	body := fmt.Sprintf("Los cultos del %s empiezan una hora antes.", res.Date)
	if res.Reverted {
		title = "Horario normal restablecido"
		body = fmt.Sprintf("Los cultos del %s vuelven a su hora habitual.", res.Date)
	}
	if err := s.notifier.Broadcast(ctx, title, body, nil, "festivo", "horario"); err != nil {
		s.log.Warn("no se pudo crear la notificación del festivo", zap.String("date", res.Date), zap.Error(err))
	}
}
