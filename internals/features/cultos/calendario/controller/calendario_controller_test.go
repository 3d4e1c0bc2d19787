package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulpito_backend/internals/features/cultos/calendario/service"
	cultoRepoTest "pulpito_backend/internals/features/cultos/cultos/repository/repositorytest"
	festivoModel "pulpito_backend/internals/features/cultos/festivos/model"
)

type noHolidays struct{}

func (noHolidays) ListHolidays(ctx context.Context, from, to time.Time) ([]festivoModel.FestivoModel, error) {
	return nil, nil
}

func TestICSEndpoint(t *testing.T) {
	app := fiber.New()
	ctrl := NewCalendarioController(service.NewFeed(cultoRepoTest.NewMemoryRepository(), noHolidays{}, time.UTC, "Cultos"))
	app.Get("/calendario.ics", ctrl.ICS)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/calendario.ics?from=2025-01-01&to=2025-01-31", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), "text/calendar"))
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/calendario.ics?from=ayer", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
