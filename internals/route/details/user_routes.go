package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	auditRoute "pulpito_backend/internals/features/audit/route"
	profileRoute "pulpito_backend/internals/features/users/profiles/route"
)

// Ejemplo: /api/a/profiles, /api/a/audit
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	profileRoute.ProfileAdminRoutes(admin, db)
	auditRoute.AuditAdminRoutes(admin, db)
}
