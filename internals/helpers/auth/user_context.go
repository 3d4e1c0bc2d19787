package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Claves de c.Locals que rellena el middleware JWT.
const (
	LocUserID = "user_id"
	LocRole   = "user_role"
)

type ctxKey struct{}

// WithUserID guarda el usuario autenticado en el contexto que reciben los servicios.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserIDFrom devuelve el usuario del contexto, o nil en procesos internos (cron, CLI).
func UserIDFrom(ctx context.Context) *uuid.UUID {
	if ctx == nil {
		return nil
	}
	if id, ok := ctx.Value(ctxKey{}).(uuid.UUID); ok && id != uuid.Nil {
		return &id
	}
	return nil
}

// GetUserIDFromToken lee c.Locals("user_id").
// 401 si no hay sesión, 400 si el formato es inválido.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	switch t := c.Locals(LocUserID).(type) {
	case uuid.UUID:
		if t != uuid.Nil {
			return t, nil
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			break
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "user_id inválido")
		}
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
}

func GetRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocRole).(string)
	return role
}
