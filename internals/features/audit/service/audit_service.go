package service

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/audit/model"
	"pulpito_backend/internals/helpers/apperr"
	helperAuth "pulpito_backend/internals/helpers/auth"
)

// Entry es una acción administrativa a registrar.
type Entry struct {
	UserID   *uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Details  any
}

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// Record guarda la entrada. Si no trae usuario, usa el del contexto de la petición.
func (s *Service) Record(ctx context.Context, e Entry) error {
	row, err := toModel(ctx, e)
	if err != nil {
		return err
	}
	return apperr.Persistence("insert audit log", s.DB.WithContext(ctx).Create(row).Error)
}

// RecordQuietly es Record para efectos secundarios: un fallo solo se registra en log.
func (s *Service) RecordQuietly(ctx context.Context, e Entry) {
	if err := s.Record(ctx, e); err != nil {
		zap.L().Warn("no se pudo registrar la auditoría",
			zap.String("action", e.Action),
			zap.String("entity", e.Entity),
			zap.Error(err),
		)
	}
}

type ListFilter struct {
	Entity   string
	EntityID *uuid.UUID
	Offset   int
	Limit    int
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]model.AuditLogModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.AuditLogModel{})
	if f.Entity != "" {
		q = q.Where("audit_log_entity = ?", f.Entity)
	}
	if f.EntityID != nil {
		q = q.Where("audit_log_entity_id = ?", *f.EntityID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Persistence("count audit logs", err)
	}

	var rows []model.AuditLogModel
	if err := q.Order("audit_log_created_at DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, apperr.Persistence("list audit logs", err)
	}
	return rows, total, nil
}

func toModel(ctx context.Context, e Entry) (*model.AuditLogModel, error) {
	if e.Action == "" || e.Entity == "" {
		return nil, apperr.Validation("auditoría sin acción o entidad")
	}
	userID := e.UserID
	if userID == nil {
		userID = helperAuth.UserIDFrom(ctx)
	}
	row := &model.AuditLogModel{
		AuditLogUserID:   userID,
		AuditLogAction:   e.Action,
		AuditLogEntity:   e.Entity,
		AuditLogEntityID: e.EntityID,
	}
	if e.Details != nil {
		raw, err := sonic.Marshal(e.Details)
		if err != nil {
			return nil, apperr.Validation("detalles de auditoría no serializables: %v", err)
		}
		row.AuditLogDetails = datatypes.JSON(raw)
	}
	return row, nil
}

// Purge borra entradas anteriores a before en lotes de batch filas y devuelve cuántas borró.
func (s *Service) Purge(ctx context.Context, before time.Time, batch int) (int64, error) {
	if batch <= 0 {
		batch = 500
	}
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		res := s.DB.WithContext(ctx).Exec(`
			DELETE FROM audit_logs
			WHERE audit_log_id IN (
				SELECT audit_log_id FROM audit_logs
				WHERE audit_log_created_at < ?
				LIMIT ?
			)`, before, batch)
		if res.Error != nil {
			return total, apperr.Persistence("purge audit logs", res.Error)
		}
		total += res.RowsAffected
		if res.RowsAffected < int64(batch) {
			return total, nil
		}
	}
}
