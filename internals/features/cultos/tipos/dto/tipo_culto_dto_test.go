package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/apperr"
)

func ptr[T any](v T) *T { return &v }

func TestCreateTipoCultoToModel(t *testing.T) {
	req := CreateTipoCultoRequest{
		TipoCultoName:                 "  Culto de oración ",
		TipoCultoColor:                ptr("  "),
		TipoCultoDefaultStart:         ptr("19:00"),
		TipoCultoRequiresIntroReading: true,
		TipoCultoRequiresTeaching:     true,
	}
	m, err := req.ToModel()
	require.NoError(t, err)
	assert.Equal(t, "Culto de oración", m.TipoCultoName)
	assert.Nil(t, m.TipoCultoColor)
	require.NotNil(t, m.TipoCultoDefaultStart)
	assert.Equal(t, "19:00", m.TipoCultoDefaultStart.String())
	assert.Nil(t, m.TipoCultoDefaultEnd)

	resp := ToTipoCultoResponse(m)
	assert.Equal(t, []model.Role{model.RoleIntroReading, model.RoleTeaching}, resp.TipoCultoRequiredRoles)
}

func TestCreateTipoCultoRejectsBadTime(t *testing.T) {
	req := CreateTipoCultoRequest{TipoCultoName: "Estudio", TipoCultoDefaultEnd: ptr("7pm")}
	_, err := req.ToModel()
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestUpdateTipoCultoAppliesOnlyPresentFields(t *testing.T) {
	m := &model.TipoCultoModel{TipoCultoName: "Santa Cena", TipoCultoRequiresTeaching: true}
	req := UpdateTipoCultoRequest{
		TipoCultoRequiresTeaching:    ptr(false),
		TipoCultoRequiresTestimonies: ptr(true),
		TipoCultoDefaultStart:        ptr(""),
	}
	up, err := req.Apply(m)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"tipo_culto_requires_teaching":    false,
		"tipo_culto_requires_testimonies": true,
		"tipo_culto_default_start":        nil,
	}, up)
	assert.Equal(t, "Santa Cena", m.TipoCultoName)
	assert.False(t, m.TipoCultoRequiresTeaching)
	assert.True(t, m.TipoCultoRequiresTestimonies)
}
