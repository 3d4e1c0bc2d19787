package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulpito_backend/internals/configs"
	"pulpito_backend/internals/constants"
	helperAuth "pulpito_backend/internals/helpers/auth"
)

const testSecret = "secreto-de-pruebas"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	prev := configs.JWTSecret
	configs.JWTSecret = testSecret
	t.Cleanup(func() { configs.JWTSecret = prev })

	app := fiber.New()
	app.Use(AuthMiddleware(nil))
	app.Get("/me", func(c *fiber.Ctx) error {
		id, err := helperAuth.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		ctxID := helperAuth.UserIDFrom(c.UserContext())
		if ctxID == nil || *ctxID != id {
			return fiber.ErrInternalServerError
		}
		return c.SendString(id.String() + " " + helperAuth.GetRole(c))
	})
	app.Get("/admin", RequireRole(constants.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func get(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := make([]byte, 256)
	n, _ := resp.Body.Read(buf)
	return resp.StatusCode, string(buf[:n])
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	app := newApp(t)
	userID := uuid.New()
	tok := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":       userID.String(),
		"user_role": "Admin",
		"exp":       time.Now().Add(time.Hour).Unix(),
	})

	status, body := get(t, app, "/me", tok)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, userID.String()+" admin", body)

	status, _ = get(t, app, "/admin", tok)
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestAuthMiddlewareDefaultsToUserRole(t *testing.T) {
	app := newApp(t)
	tok := sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub": uuid.NewString(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	status, body := get(t, app, "/me", tok)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, " user")

	status, _ = get(t, app, "/admin", tok)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	app := newApp(t)
	valid := jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(time.Hour).Unix()}

	cases := map[string]string{
		"sin token":      "",
		"basura":         "no-es-un-jwt",
		"otra clave":     sign(t, jwt.SigningMethodHS256, []byte("otra"), valid),
		"caducado":       sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": uuid.NewString(), "exp": time.Now().Add(-time.Hour).Unix()}),
		"sin exp":        sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": uuid.NewString()}),
		"sub no es uuid": sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "42", "exp": time.Now().Add(time.Hour).Unix()}),
		"alg none":       sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, valid),
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			status, _ := get(t, app, "/me", tok)
			assert.Equal(t, fiber.StatusUnauthorized, status)
		})
	}
}

func TestAuthMiddlewareWithoutSecret(t *testing.T) {
	app := newApp(t)
	configs.JWTSecret = ""
	status, _ := get(t, app, "/me", "x.y.z")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
