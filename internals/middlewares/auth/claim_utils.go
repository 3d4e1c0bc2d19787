// internals/middlewares/auth/claim_utils.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "pulpito_backend/internals/features/users/profiles/model"
)

// extractBearerToken acepta "Authorization: Bearer <token>" o la cookie access_token.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		if cookieTok := c.Cookies("access_token"); cookieTok != "" {
			auth = "Bearer " + cookieTok
		}
	}
	if auth == "" {
		return "", errors.New("Falta el token de acceso")
	}

	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errors.New("Formato de token inválido")
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errors.New("Token vacío")
	}
	return tok, nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("sin sub")
	}
	id, err := uuid.Parse(strings.TrimSpace(sub))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("sub inválido")
	}
	return id, nil
}

// extractRole: user_role tiene prioridad sobre role.
func extractRole(claims jwt.MapClaims) string {
	for _, key := range []string{"user_role", "role"} {
		if s, ok := claims[key].(string); ok {
			if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
				return s
			}
		}
	}
	return ""
}

func loadProfile(db *gorm.DB, userID uuid.UUID) (*profileModel.ProfileModel, error) {
	var p profileModel.ProfileModel
	if err := db.Select("id", "role", "is_active").Where("id = ?", userID).Take(&p).Error; err != nil {
		return nil, err
	}
	p.Role = strings.ToLower(strings.TrimSpace(p.Role))
	return &p, nil
}
