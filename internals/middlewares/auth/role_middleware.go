package auth

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "pulpito_backend/internals/helpers/auth"
)

// RequireRole deja pasar solo a los roles indicados. Va detrás de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := helperAuth.GetRole(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "No tienes permiso para esta acción")
	}
}
