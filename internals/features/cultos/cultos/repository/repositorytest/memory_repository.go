// Package repositorytest ofrece un repositorio de cultos en memoria para pruebas.
package repositorytest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/cultos/repository"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

// MemoryRepository es un Repository en memoria para pruebas.
type MemoryRepository struct {
	mu     sync.Mutex
	cultos map[uuid.UUID]model.CultoModel
	tipos  map[uuid.UUID]tipoModel.TipoCultoModel

	CreateErr error
}

var _ repository.Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		cultos: map[uuid.UUID]model.CultoModel{},
		tipos:  map[uuid.UUID]tipoModel.TipoCultoModel{},
	}
}

func (r *MemoryRepository) PutTipo(t tipoModel.TipoCultoModel) uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.TipoCultoID == uuid.Nil {
		t.TipoCultoID = uuid.New()
	}
	r.tipos[t.TipoCultoID] = t
	return t.TipoCultoID
}

func (r *MemoryRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cultos)
}

func (r *MemoryRepository) withTipo(c model.CultoModel) model.CultoModel {
	if t, ok := r.tipos[c.CultoTipoID]; ok {
		c.Tipo = &t
	} else {
		c.Tipo = nil
	}
	return c
}

func (r *MemoryRepository) List(ctx context.Context, f repository.ListFilter) ([]model.CultoModel, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.CultoModel{}
	for _, c := range r.cultos {
		if c.CultoDate.Before(dbtime.DateOnly(f.From)) || c.CultoDate.After(dbtime.DateOnly(f.To)) {
			continue
		}
		if f.Status != nil && c.CultoStatus != *f.Status {
			continue
		}
		if f.TipoID != nil && c.CultoTipoID != *f.TipoID {
			continue
		}
		out = append(out, r.withTipo(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CultoDate.Equal(out[j].CultoDate) {
			return out[i].CultoDate.Before(out[j].CultoDate)
		}
		return out[i].CultoStartTime.Before(out[j].CultoStartTime.Time)
	})
	total := int64(len(out))
	if f.Limit > 0 {
		end := min(f.Offset+f.Limit, len(out))
		start := min(f.Offset, end)
		out = out[start:end]
	}
	return out, total, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id uuid.UUID) (*model.CultoModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cultos[id]
	if !ok {
		return nil, apperr.Persistence("get culto", apperr.ErrNotFound)
	}
	c = r.withTipo(c)
	return &c, nil
}

func (r *MemoryRepository) Create(ctx context.Context, c *model.CultoModel) error {
	if r.CreateErr != nil {
		return apperr.Persistence("insert culto", r.CreateErr)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if c.CultoID == uuid.Nil {
		c.CultoID = uuid.New()
	}
	if c.CultoStatus == "" {
		c.CultoStatus = model.CultoPlanned
	}
	c.CultoDate = dbtime.DateOnly(c.CultoDate)
	stored := *c
	stored.Tipo = nil
	r.cultos[c.CultoID] = stored
	return nil
}

// Update admite las columnas que escribe el servicio.
func (r *MemoryRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.cultos[id]
	if !ok {
		return apperr.Persistence("update culto", apperr.ErrNotFound)
	}
	for col, v := range fields {
		switch col {
		case "culto_date":
			c.CultoDate = dbtime.DateOnly(v.(time.Time))
		case "culto_start_time":
			c.CultoStartTime = v.(dbtime.Tod)
		case "culto_end_time":
			if t, ok := v.(dbtime.Tod); ok {
				c.CultoEndTime = &t
			} else {
				c.CultoEndTime = nil
			}
		case "culto_tipo_id":
			c.CultoTipoID = v.(uuid.UUID)
		case "culto_status":
			c.CultoStatus = v.(model.CultoStatus)
		case "culto_is_holiday":
			c.CultoIsHoliday = v.(bool)
		case "culto_is_holiday_adjusted":
			c.CultoIsHolidayAdjusted = v.(bool)
		case "culto_notes":
			c.CultoNotes, _ = v.(*string)
		default:
			for _, role := range tipoModel.AllRoles {
				if model.AssigneeColumn(role) == col {
					who, _ := v.(*uuid.UUID)
					c.SetAssignee(role, who)
				}
			}
		}
	}
	r.cultos[id] = c
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.cultos[id]; !ok {
		return apperr.Persistence("delete culto", apperr.ErrNotFound)
	}
	delete(r.cultos, id)
	return nil
}

func (r *MemoryRepository) GetTipo(ctx context.Context, id uuid.UUID) (*tipoModel.TipoCultoModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tipos[id]
	if !ok {
		return nil, apperr.Persistence("get tipo", apperr.ErrNotFound)
	}
	return &t, nil
}

func (r *MemoryRepository) TiposByName(ctx context.Context) (map[string]tipoModel.TipoCultoModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]tipoModel.TipoCultoModel, len(r.tipos))
	for _, t := range r.tipos {
		out[t.TipoCultoName] = t
	}
	return out, nil
}

func (r *MemoryRepository) Exists(ctx context.Context, date time.Time, start dbtime.Tod, tipoID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := dbtime.FormatDate(date)
	for _, c := range r.cultos {
		if dbtime.FormatDate(c.CultoDate) != key || c.CultoTipoID != tipoID {
			continue
		}
		if (!c.CultoIsHolidayAdjusted && c.CultoStartTime.Equal(start)) ||
			(c.CultoIsHolidayAdjusted && c.CultoStartTime.Equal(start.AddHours(-1))) {
			return true, nil
		}
	}
	return false, nil
}
