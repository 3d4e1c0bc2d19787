package commands

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pulpito_backend/internals/configs"
	database "pulpito_backend/internals/databases"
	auditScheduler "pulpito_backend/internals/features/audit/scheduler"
	cultoScheduler "pulpito_backend/internals/features/cultos/cultos/scheduler"
	helper "pulpito_backend/internals/helpers"
	"pulpito_backend/internals/middlewares"
	routes "pulpito_backend/internals/route"
	routeDetails "pulpito_backend/internals/route/details"
	"pulpito_backend/internals/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Arranca la API HTTP y las tareas programadas",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	log := zap.L()

	if err := openDB(); err != nil {
		return err
	}
	defer database.Close()
	database.WarmUp()

	app := fiber.New(fiber.Config{
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
		ReadTimeout:             15 * time.Second,
		WriteTimeout:            30 * time.Second,
		IdleTimeout:             90 * time.Second,
	})
	middlewares.SetupMiddlewares(app)

	deps := routeDetails.NewCultosDeps(database.DB)
	routes.SetupRoutes(app, database.DB, deps)

	cron := scheduler.New(configs.Location(), log)
	reminder := cultoScheduler.NewReminder(deps.Repo, deps.Notifier, configs.Location())
	if err := cron.Add(configs.ReminderCron, "recordatorio-puestos", reminder.Job); err != nil {
		return err
	}
	if err := cron.Add(configs.AuditCleanupCron, "limpieza-auditoria",
		auditScheduler.CleanupJob(deps.Audit, configs.AuditRetentionDays, nil)); err != nil {
		return err
	}
	cron.Start()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("escuchando", zap.String("port", configs.Port))
		errCh <- app.Listen("0.0.0.0:" + configs.Port)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("apagando servidor")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cron.Stop(shutdownCtx)
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Warn("apagado forzado", zap.Error(err))
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return serveErr
	}
	return nil
}
