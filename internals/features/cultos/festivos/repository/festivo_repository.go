package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/festivos/model"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

// Store es el acceso a datos que necesita la sincronización de festivos.
type Store interface {
	// Transaction ejecuta fn dentro de una transacción; fn recibe un Store ligado a ella.
	Transaction(ctx context.Context, fn func(Store) error) error
	// LockDate serializa las mutaciones de festivos para una fecha hasta el fin de la transacción.
	LockDate(ctx context.Context, date time.Time) error

	InsertHoliday(ctx context.Context, f *model.FestivoModel) error
	GetHoliday(ctx context.Context, id uuid.UUID) (*model.FestivoModel, error)
	DeleteHoliday(ctx context.Context, id uuid.UUID) error
	CountHolidaysForDate(ctx context.Context, date time.Time) (int64, error)
	ListHolidays(ctx context.Context, from, to time.Time) ([]model.FestivoModel, error)

	FindCultosForDate(ctx context.Context, date time.Time, adjusted bool) ([]cultoModel.CultoModel, error)
	// MarkHolidayDate pone culto_is_holiday de todos los cultos de la fecha al valor dado.
	MarkHolidayDate(ctx context.Context, date time.Time, holiday bool) (int64, error)
	// ShiftCulto es un compare-and-swap: solo actualiza si el culto sigue en el estado
	// (fromAdjusted, oldStart). Devuelve false si otro proceso ya lo movió. El flag de
	// festivo queda en !fromAdjusted.
	ShiftCulto(ctx context.Context, id uuid.UUID, fromAdjusted bool, oldStart, newStart dbtime.Tod) (bool, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Transaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) LockDate(ctx context.Context, date time.Time) error {
	key := "festivo:" + dbtime.FormatDate(date)
	err := s.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
	return apperr.Persistence("lock festivo date", err)
}

func (s *GormStore) InsertHoliday(ctx context.Context, f *model.FestivoModel) error {
	return apperr.Persistence("insert festivo", s.db.WithContext(ctx).Create(f).Error)
}

func (s *GormStore) GetHoliday(ctx context.Context, id uuid.UUID) (*model.FestivoModel, error) {
	var f model.FestivoModel
	if err := s.db.WithContext(ctx).Where("festivo_id = ?", id).First(&f).Error; err != nil {
		return nil, apperr.Persistence("get festivo", err)
	}
	return &f, nil
}

func (s *GormStore) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Where("festivo_id = ?", id).Delete(&model.FestivoModel{})
	if res.Error != nil {
		return apperr.Persistence("delete festivo", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.Persistence("delete festivo", apperr.ErrNotFound)
	}
	return nil
}

func (s *GormStore) CountHolidaysForDate(ctx context.Context, date time.Time) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.FestivoModel{}).
		Where("festivo_date = ?", dbtime.FormatDate(date)).
		Count(&n).Error
	return n, apperr.Persistence("count festivos", err)
}

func (s *GormStore) ListHolidays(ctx context.Context, from, to time.Time) ([]model.FestivoModel, error) {
	var out []model.FestivoModel
	err := s.db.WithContext(ctx).
		Where("festivo_date BETWEEN ? AND ?", dbtime.FormatDate(from), dbtime.FormatDate(to)).
		Order("festivo_date ASC, festivo_created_at ASC").
		Find(&out).Error
	return out, apperr.Persistence("list festivos", err)
}

func (s *GormStore) FindCultosForDate(ctx context.Context, date time.Time, adjusted bool) ([]cultoModel.CultoModel, error) {
	var out []cultoModel.CultoModel
	err := s.db.WithContext(ctx).
		Where("culto_date = ? AND culto_is_holiday_adjusted = ?", dbtime.FormatDate(date), adjusted).
		Order("culto_start_time ASC").
		Find(&out).Error
	return out, apperr.Persistence("find cultos for date", err)
}

func (s *GormStore) MarkHolidayDate(ctx context.Context, date time.Time, holiday bool) (int64, error) {
	res := s.db.WithContext(ctx).Model(&cultoModel.CultoModel{}).
		Where("culto_date = ? AND culto_is_holiday <> ?", dbtime.FormatDate(date), holiday).
		Update("culto_is_holiday", holiday)
	if res.Error != nil {
		return 0, apperr.Persistence("mark holiday date", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) ShiftCulto(ctx context.Context, id uuid.UUID, fromAdjusted bool, oldStart, newStart dbtime.Tod) (bool, error) {
	var affected int64
	// Transacción anidada = SAVEPOINT: un fallo aquí no aborta la transacción del festivo.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&cultoModel.CultoModel{}).
			Where("culto_id = ? AND culto_is_holiday_adjusted = ? AND culto_start_time = ?", id, fromAdjusted, oldStart).
			Updates(map[string]any{
				"culto_is_holiday":          !fromAdjusted,
				"culto_is_holiday_adjusted": !fromAdjusted,
				"culto_start_time":          newStart,
			})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, apperr.Persistence("shift culto", err)
	}
	return affected > 0, nil
}
