package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pulpito_backend/internals/features/cultos/cultos/model"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

type ListFilter struct {
	From   time.Time
	To     time.Time
	Status *model.CultoStatus
	TipoID *uuid.UUID
	Offset int
	Limit  int // 0 = sin límite
}

// Repository es el acceso a cultos que usan el servicio, el generador y el recordatorio.
type Repository interface {
	List(ctx context.Context, f ListFilter) ([]model.CultoModel, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*model.CultoModel, error)
	Create(ctx context.Context, c *model.CultoModel) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error

	GetTipo(ctx context.Context, id uuid.UUID) (*tipoModel.TipoCultoModel, error)
	TiposByName(ctx context.Context) (map[string]tipoModel.TipoCultoModel, error)
	// Exists: ya hay un culto de ese tipo en esa fecha y hora (normal o ajustada).
	Exists(ctx context.Context, date time.Time, start dbtime.Tod, tipoID uuid.UUID) (bool, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) List(ctx context.Context, f ListFilter) ([]model.CultoModel, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.CultoModel{}).
		Where("culto_date BETWEEN ? AND ?", dbtime.FormatDate(f.From), dbtime.FormatDate(f.To))
	if f.Status != nil {
		q = q.Where("culto_status = ?", *f.Status)
	}
	if f.TipoID != nil {
		q = q.Where("culto_tipo_id = ?", *f.TipoID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, apperr.Persistence("count cultos", err)
	}

	q = q.Preload("Tipo").Order("culto_date ASC, culto_start_time ASC")
	if f.Limit > 0 {
		q = q.Offset(f.Offset).Limit(f.Limit)
	}
	var rows []model.CultoModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, apperr.Persistence("list cultos", err)
	}
	return rows, total, nil
}

func (r *GormRepository) Get(ctx context.Context, id uuid.UUID) (*model.CultoModel, error) {
	var c model.CultoModel
	if err := r.db.WithContext(ctx).Preload("Tipo").First(&c, "culto_id = ?", id).Error; err != nil {
		return nil, apperr.Persistence("get culto", err)
	}
	return &c, nil
}

func (r *GormRepository) Create(ctx context.Context, c *model.CultoModel) error {
	return apperr.Persistence("insert culto", r.db.WithContext(ctx).Omit("Tipo").Create(c).Error)
}

func (r *GormRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := r.db.WithContext(ctx).Model(&model.CultoModel{}).Where("culto_id = ?", id).Updates(fields)
	if res.Error != nil {
		return apperr.Persistence("update culto", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.Persistence("update culto", apperr.ErrNotFound)
	}
	return nil
}

func (r *GormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("culto_id = ?", id).Delete(&model.CultoModel{})
	if res.Error != nil {
		return apperr.Persistence("delete culto", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.Persistence("delete culto", apperr.ErrNotFound)
	}
	return nil
}

func (r *GormRepository) GetTipo(ctx context.Context, id uuid.UUID) (*tipoModel.TipoCultoModel, error) {
	var t tipoModel.TipoCultoModel
	if err := r.db.WithContext(ctx).First(&t, "tipo_culto_id = ?", id).Error; err != nil {
		return nil, apperr.Persistence("get tipo", err)
	}
	return &t, nil
}

func (r *GormRepository) TiposByName(ctx context.Context) (map[string]tipoModel.TipoCultoModel, error) {
	var rows []tipoModel.TipoCultoModel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Persistence("list tipos", err)
	}
	out := make(map[string]tipoModel.TipoCultoModel, len(rows))
	for _, t := range rows {
		out[t.TipoCultoName] = t
	}
	return out, nil
}

func (r *GormRepository) Exists(ctx context.Context, date time.Time, start dbtime.Tod, tipoID uuid.UUID) (bool, error) {
	var n int64
	// Un culto ya adelantado por festivo sigue contando como la misma ocurrencia.
	err := r.db.WithContext(ctx).Model(&model.CultoModel{}).
		Where("culto_date = ? AND culto_tipo_id = ?", dbtime.FormatDate(date), tipoID).
		Where("(culto_start_time = ? AND NOT culto_is_holiday_adjusted) OR (culto_start_time = ? AND culto_is_holiday_adjusted)",
			start, start.AddHours(-1)).
		Count(&n).Error
	if err != nil {
		return false, apperr.Persistence("check culto", err)
	}
	return n > 0, nil
}
