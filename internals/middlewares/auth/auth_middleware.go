// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pulpito_backend/internals/configs"
	"pulpito_backend/internals/constants"
	helperAuth "pulpito_backend/internals/helpers/auth"
)

// AuthMiddleware verifica el JWT del servicio de autenticación y deja usuario y rol en Locals.
// Con db != nil el rol y el estado activo salen de la tabla profiles.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	log := zap.L().Named("auth")
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Error("JWT_SECRET vacío")
			return fiber.NewError(fiber.StatusInternalServerError, "Autenticación no configurada")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("algoritmo de firma inesperado")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Debug("token rechazado", zap.Error(err))
			return fiber.NewError(fiber.StatusUnauthorized, "Token inválido o caducado")
		}
		if !claims.VerifyExpiresAt(time.Now().Unix(), true) {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sin caducidad")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token sin usuario válido")
		}
		role := extractRole(claims)

		if db != nil {
			p, err := loadProfile(db.WithContext(c.UserContext()), userID)
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				return fiber.NewError(fiber.StatusUnauthorized, "Perfil no encontrado")
			case err != nil:
				log.Error("no se pudo leer el perfil", zap.String("user_id", userID.String()), zap.Error(err))
				return fiber.NewError(fiber.StatusInternalServerError, "Error interno del servidor")
			case !p.IsActive:
				return fiber.NewError(fiber.StatusForbidden, "Tu cuenta está desactivada")
			}
			if p.Role != "" {
				role = p.Role
			}
		}
		if role == "" {
			role = constants.RoleUser
		}

		c.Locals(helperAuth.LocUserID, userID.String())
		c.Locals(helperAuth.LocRole, role)
		c.SetUserContext(helperAuth.WithUserID(c.UserContext(), userID))
		return c.Next()
	}
}
