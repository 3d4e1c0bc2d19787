// Package repositorytest ofrece un Store de festivos en memoria para pruebas.
package repositorytest

import (
	"context"
	"errors"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	"pulpito_backend/internals/features/cultos/festivos/model"
	"pulpito_backend/internals/features/cultos/festivos/repository"
	"pulpito_backend/internals/helpers/apperr"
	"pulpito_backend/internals/helpers/dbtime"
)

// MemoryStore es un Store en memoria. Transaction restaura el estado si fn devuelve
// error. Los campos *Err y BeforeShift permiten inyectar fallos.
type MemoryStore struct {
	mu       sync.Mutex
	holidays map[uuid.UUID]model.FestivoModel
	cultos   map[uuid.UUID]cultoModel.CultoModel
	locked   []string

	InsertErr   error
	MarkErr     error
	ShiftErr    map[uuid.UUID]error
	BeforeShift func(id uuid.UUID)
}

var _ repository.Store = (*MemoryStore)(nil)

var ErrMemoryStoreDown = errors.New("store unavailable")

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		holidays: map[uuid.UUID]model.FestivoModel{},
		cultos:   map[uuid.UUID]cultoModel.CultoModel{},
		ShiftErr: map[uuid.UUID]error{},
	}
}

// PutCulto inserta o reemplaza un culto; asigna id si falta.
func (s *MemoryStore) PutCulto(c cultoModel.CultoModel) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.CultoID == uuid.Nil {
		c.CultoID = uuid.New()
	}
	c.CultoDate = dbtime.DateOnly(c.CultoDate)
	s.cultos[c.CultoID] = c
	return c.CultoID
}

func (s *MemoryStore) Culto(id uuid.UUID) cultoModel.CultoModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cultos[id]
}

// MutateCulto modifica un culto fuera de cualquier transacción (simula otro escritor).
func (s *MemoryStore) MutateCulto(id uuid.UUID, fn func(*cultoModel.CultoModel)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cultos[id]
	fn(&c)
	s.cultos[id] = c
}

func (s *MemoryStore) HolidayCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.holidays)
}

func (s *MemoryStore) LockedDates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.locked...)
}

func (s *MemoryStore) Transaction(ctx context.Context, fn func(repository.Store) error) error {
	s.mu.Lock()
	holidays := maps.Clone(s.holidays)
	cultos := maps.Clone(s.cultos)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.holidays, s.cultos = holidays, cultos
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *MemoryStore) LockDate(ctx context.Context, date time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = append(s.locked, dbtime.FormatDate(date))
	return nil
}

func (s *MemoryStore) InsertHoliday(ctx context.Context, f *model.FestivoModel) error {
	if s.InsertErr != nil {
		return apperr.Persistence("insert festivo", s.InsertErr)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f.FestivoID = uuid.New()
	f.FestivoCreatedAt = time.Now()
	s.holidays[f.FestivoID] = *f
	return nil
}

func (s *MemoryStore) GetHoliday(ctx context.Context, id uuid.UUID) (*model.FestivoModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.holidays[id]
	if !ok {
		return nil, apperr.Persistence("get festivo", apperr.ErrNotFound)
	}
	return &f, nil
}

func (s *MemoryStore) DeleteHoliday(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.holidays[id]; !ok {
		return apperr.Persistence("delete festivo", apperr.ErrNotFound)
	}
	delete(s.holidays, id)
	return nil
}

func (s *MemoryStore) CountHolidaysForDate(ctx context.Context, date time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := dbtime.FormatDate(date)
	var n int64
	for _, f := range s.holidays {
		if dbtime.FormatDate(f.FestivoDate) == key {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) ListHolidays(ctx context.Context, from, to time.Time) ([]model.FestivoModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.FestivoModel{}
	for _, f := range s.holidays {
		if !f.FestivoDate.Before(from) && !f.FestivoDate.After(to) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FestivoDate.Before(out[j].FestivoDate) })
	return out, nil
}

func (s *MemoryStore) FindCultosForDate(ctx context.Context, date time.Time, adjusted bool) ([]cultoModel.CultoModel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := dbtime.FormatDate(date)
	var out []cultoModel.CultoModel
	for _, c := range s.cultos {
		if dbtime.FormatDate(c.CultoDate) == key && c.CultoIsHolidayAdjusted == adjusted {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CultoStartTime.Before(out[j].CultoStartTime.Time) })
	return out, nil
}

func (s *MemoryStore) MarkHolidayDate(ctx context.Context, date time.Time, holiday bool) (int64, error) {
	if s.MarkErr != nil {
		return 0, apperr.Persistence("mark holiday date", s.MarkErr)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := dbtime.FormatDate(date)
	var n int64
	for id, c := range s.cultos {
		if dbtime.FormatDate(c.CultoDate) != key || c.CultoIsHoliday == holiday {
			continue
		}
		c.CultoIsHoliday = holiday
		s.cultos[id] = c
		n++
	}
	return n, nil
}

func (s *MemoryStore) ShiftCulto(ctx context.Context, id uuid.UUID, fromAdjusted bool, oldStart, newStart dbtime.Tod) (bool, error) {
	s.mu.Lock()
	injected := s.ShiftErr[id]
	s.mu.Unlock()
	if injected != nil {
		return false, apperr.Persistence("shift culto", injected)
	}
	if s.BeforeShift != nil {
		s.BeforeShift(id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cultos[id]
	if !ok || c.CultoIsHolidayAdjusted != fromAdjusted || !c.CultoStartTime.Equal(oldStart) {
		return false, nil
	}
	c.CultoIsHolidayAdjusted = !fromAdjusted
	c.CultoIsHoliday = !fromAdjusted
	c.CultoStartTime = newStart
	s.cultos[id] = c
	return true, nil
}
