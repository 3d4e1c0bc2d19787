package details

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"pulpito_backend/internals/configs"
	auditService "pulpito_backend/internals/features/audit/service"
	calendarioRoute "pulpito_backend/internals/features/cultos/calendario/route"
	calendarioService "pulpito_backend/internals/features/cultos/calendario/service"
	cultoRepo "pulpito_backend/internals/features/cultos/cultos/repository"
	cultoRoute "pulpito_backend/internals/features/cultos/cultos/route"
	cultoService "pulpito_backend/internals/features/cultos/cultos/service"
	festivoRepo "pulpito_backend/internals/features/cultos/festivos/repository"
	festivoRoute "pulpito_backend/internals/features/cultos/festivos/route"
	festivoService "pulpito_backend/internals/features/cultos/festivos/service"
	generadorRoute "pulpito_backend/internals/features/cultos/generador/route"
	generadorService "pulpito_backend/internals/features/cultos/generador/service"
	lecturaRoute "pulpito_backend/internals/features/cultos/lecturas/route"
	tipoRoute "pulpito_backend/internals/features/cultos/tipos/route"
	notificationService "pulpito_backend/internals/features/home/notifications/service"
	"pulpito_backend/internals/middlewares"
)

// CultosDeps agrupa los servicios de cultos que comparten rutas, cron y CLI.
type CultosDeps struct {
	Repo      *cultoRepo.GormRepository
	Sync      *festivoService.HolidaySync
	Cultos    *cultoService.Service
	Generator *generadorService.Generator
	Feed      *calendarioService.Feed
	Notifier  *notificationService.Service
	Audit     *auditService.Service
}

// NewCultosDeps construye el grafo de servicios. Sin plantilla el generador responde 400.
func NewCultosDeps(db *gorm.DB) *CultosDeps {
	audit := auditService.New(db)
	notifier := notificationService.New(db)
	repo := cultoRepo.NewGormRepository(db)
	sync := festivoService.NewHolidaySync(festivoRepo.NewGormStore(db), notifier, audit)

	tpl, err := configs.LoadScheduleTemplate(configs.ScheduleTemplatePath)
	if err != nil {
		zap.L().Warn("plantilla de cultos no disponible; /cultos/generar quedará deshabilitado",
			zap.String("path", configs.ScheduleTemplatePath), zap.Error(err))
		tpl = nil
	}

	return &CultosDeps{
		Repo:      repo,
		Sync:      sync,
		Cultos:    cultoService.New(repo, sync, audit),
		Generator: generadorService.New(repo, sync, audit, tpl),
		Feed:      calendarioService.NewFeed(repo, sync, configs.Location(), "Cultos IDMJI"),
		Notifier:  notifier,
		Audit:     audit,
	}
}

// Ejemplo: /api/public/calendario.ics
func CultosPublicRoutes(public fiber.Router, d *CultosDeps) {
	public.Use("/calendario.ics", middlewares.HeavyRateLimiter())
	calendarioRoute.CalendarioPublicRoutes(public, d.Feed)
}

// Ejemplo: /api/u/cultos
func CultosUserRoutes(user fiber.Router, db *gorm.DB, d *CultosDeps) {
	tipoRoute.TipoCultoUserRoutes(user, db)
	cultoRoute.CultoUserRoutes(user, d.Cultos)
	festivoRoute.FestivoUserRoutes(user, d.Sync)
	lecturaRoute.LecturaUserRoutes(user, db)
}

// Ejemplo: /api/a/festivos
func CultosAdminRoutes(admin fiber.Router, db *gorm.DB, d *CultosDeps) {
	tipoRoute.TipoCultoAdminRoutes(admin, db)
	cultoRoute.CultoAdminRoutes(admin, d.Cultos)
	festivoRoute.FestivoAdminRoutes(admin, d.Sync)
	admin.Use("/cultos/generar", middlewares.HeavyRateLimiter())
	generadorRoute.GeneradorAdminRoutes(admin, d.Generator)
	lecturaRoute.LecturaAdminRoutes(admin, db)
}
