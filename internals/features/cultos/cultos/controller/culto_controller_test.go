package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulpito_backend/internals/features/cultos/cultos/repository/repositorytest"
	"pulpito_backend/internals/features/cultos/cultos/service"
	festivoModel "pulpito_backend/internals/features/cultos/festivos/model"
	festivoService "pulpito_backend/internals/features/cultos/festivos/service"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	"pulpito_backend/internals/helpers/dbtime"
)

type noHolidays struct{}

func (noHolidays) ListHolidays(ctx context.Context, from, to time.Time) ([]festivoModel.FestivoModel, error) {
	return nil, nil
}

func (noHolidays) Resync(ctx context.Context, date time.Time) (*festivoService.SyncResult, error) {
	return &festivoService.SyncResult{Date: dbtime.FormatDate(date)}, nil
}

func newApp(t *testing.T) (*fiber.App, uuid.UUID) {
	t.Helper()
	repo := repositorytest.NewMemoryRepository()
	tipoID := repo.PutTipo(tipoModel.TipoCultoModel{
		TipoCultoName:             "Enseñanza",
		TipoCultoRequiresTeaching: true,
	})
	ctrl := NewCultoController(service.New(repo, noHolidays{}, nil))

	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	app.Get("/cultos", ctrl.List)
	app.Get("/cultos/:id", ctrl.Get)
	app.Get("/cultos/:id/estado", ctrl.Estado)
	app.Post("/cultos", ctrl.Create)
	app.Patch("/cultos/:id", ctrl.Update)
	app.Delete("/cultos/:id", ctrl.Delete)
	return app, tipoID
}

func call(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	require.NoError(t, sonic.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func data(body map[string]any) map[string]any {
	m, _ := body["data"].(map[string]any)
	return m
}

func TestCultoLifecycle(t *testing.T) {
	app, tipoID := newApp(t)

	status, body := call(t, app, http.MethodPost, "/cultos",
		`{"culto_date":"2025-03-02","culto_start_time":"19:00","culto_tipo_id":"`+tipoID.String()+`"}`)
	require.Equal(t, http.StatusCreated, status, body["message"])
	created := data(body)
	assert.Equal(t, "19:00", created["culto_start_time"])
	assert.Equal(t, "Enseñanza", created["culto_tipo_name"])
	assert.Equal(t, "incompleto", created["completion"])
	id := created["culto_id"].(string)

	status, body = call(t, app, http.MethodGet, "/cultos/"+id+"/estado", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []any{"teaching"}, data(body)["missing_roles"])

	teacher := uuid.NewString()
	status, body = call(t, app, http.MethodPatch, "/cultos/"+id, `{"assignments":{"teaching":"`+teacher+`"}}`)
	require.Equal(t, http.StatusOK, status, body["message"])
	assert.Equal(t, "completo", data(body)["completion"])

	status, body = call(t, app, http.MethodGet, "/cultos?from=2025-03-01&to=2025-03-31", "")
	require.Equal(t, http.StatusOK, status)
	items, _ := body["data"].([]any)
	assert.Len(t, items, 1)
	pagination, _ := body["pagination"].(map[string]any)
	assert.Equal(t, float64(1), pagination["total"])

	status, _ = call(t, app, http.MethodDelete, "/cultos/"+id, "")
	assert.Equal(t, http.StatusOK, status)
	status, body = call(t, app, http.MethodGet, "/cultos/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Culto no encontrado", body["message"])
}

func TestCreateCultoValidation(t *testing.T) {
	app, tipoID := newApp(t)

	status, body := call(t, app, http.MethodPost, "/cultos", `{"culto_start_time":"19:00"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body["error_code"])

	status, _ = call(t, app, http.MethodPost, "/cultos",
		`{"culto_date":"2025-03-02","culto_start_time":"25:00","culto_tipo_id":"`+tipoID.String()+`"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodPost, "/cultos",
		`{"culto_date":"2025-03-02","culto_start_time":"19:00","culto_tipo_id":"`+tipoID.String()+`","assignments":{"organist":null}}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListRejectsBadFilters(t *testing.T) {
	app, _ := newApp(t)

	status, _ := call(t, app, http.MethodGet, "/cultos?from=marzo", "")
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = call(t, app, http.MethodGet, "/cultos?status=aplazado", "")
	assert.Equal(t, http.StatusBadRequest, status)
}
