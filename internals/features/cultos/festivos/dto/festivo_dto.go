package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"pulpito_backend/internals/features/cultos/festivos/model"
	"pulpito_backend/internals/features/cultos/festivos/service"
	"pulpito_backend/internals/helpers/dbtime"
)

// Request

type CreateFestivoRequest struct {
	FestivoDate        string  `json:"festivo_date" validate:"required,datetime=2006-01-02"`
	FestivoCategory    string  `json:"festivo_category" validate:"required,oneof=nacional regional local laborable"`
	FestivoDescription *string `json:"festivo_description" validate:"omitempty,max=200"`
}

func (r *CreateFestivoRequest) ToInput() (service.AddHolidayInput, error) {
	d, err := dbtime.ParseDate(r.FestivoDate)
	if err != nil {
		return service.AddHolidayInput{}, err
	}
	return service.AddHolidayInput{
		Date:        d,
		Category:    model.FestivoCategory(strings.ToLower(r.FestivoCategory)),
		Description: r.FestivoDescription,
	}, nil
}

type ResyncRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

// Response

type FestivoResponse struct {
	FestivoID          uuid.UUID `json:"festivo_id"`
	FestivoDate        string    `json:"festivo_date"`
	FestivoCategory    string    `json:"festivo_category"`
	FestivoDescription *string   `json:"festivo_description,omitempty"`
	FestivoCreatedAt   time.Time `json:"festivo_created_at"`
}

func ToFestivoResponse(m *model.FestivoModel) FestivoResponse {
	return FestivoResponse{
		FestivoID:          m.FestivoID,
		FestivoDate:        dbtime.FormatDate(m.FestivoDate),
		FestivoCategory:    string(m.FestivoCategory),
		FestivoDescription: m.FestivoDescription,
		FestivoCreatedAt:   m.FestivoCreatedAt,
	}
}

func ToFestivoResponseList(rows []model.FestivoModel) []FestivoResponse {
	out := make([]FestivoResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToFestivoResponse(&rows[i]))
	}
	return out
}

// SyncResponse es el resultado de sincronizar una fecha, con el festivo en formato de respuesta.
type SyncResponse struct {
	Festivo           *FestivoResponse       `json:"festivo,omitempty"`
	Date              string                 `json:"date"`
	Shifted           []uuid.UUID            `json:"shifted"`
	Skipped           []uuid.UUID            `json:"skipped"`
	Failed            []service.ShiftFailure `json:"failed"`
	Reverted          bool                   `json:"reverted"`
	RemainingHolidays int64                  `json:"remaining_holidays"`
	Partial           bool                   `json:"partial"`
}

func ToSyncResponse(r *service.SyncResult) SyncResponse {
	out := SyncResponse{
		Date:              r.Date,
		Shifted:           r.Shifted,
		Skipped:           r.Skipped,
		Failed:            r.Failed,
		Reverted:          r.Reverted,
		RemainingHolidays: r.RemainingHolidays,
		Partial:           r.Partial(),
	}
	if r.Festivo != nil {
		f := ToFestivoResponse(r.Festivo)
		out.Festivo = &f
	}
	return out
}
