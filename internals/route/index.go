package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pulpito_backend/internals/constants"
	authMiddleware "pulpito_backend/internals/middlewares/auth"
	routeDetails "pulpito_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes monta los grupos /api/public, /api/u (JWT) y /api/a (JWT + admin).
func SetupRoutes(app *fiber.App, db *gorm.DB, deps *routeDetails.CultosDeps) {
	startTime = time.Now()
	log := zap.L().Named("routes")

	BaseRoutes(app, db)

	public := app.Group("/api/public")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireRole(constants.RoleAdmin),
	)

	log.Info("montando rutas de cultos")
	routeDetails.CultosPublicRoutes(public, deps)
	routeDetails.CultosUserRoutes(user, db, deps)
	routeDetails.CultosAdminRoutes(admin, db, deps)

	log.Info("montando rutas de avisos y catálogo")
	routeDetails.HomeUserRoutes(user, db)
	routeDetails.HomeAdminRoutes(admin, db)

	log.Info("montando rutas de usuarios")
	routeDetails.UserAdminRoutes(admin, db)
}
