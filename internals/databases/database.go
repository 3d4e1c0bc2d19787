package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pulpito_backend/internals/configs"
	auditModel "pulpito_backend/internals/features/audit/model"
	himnoModel "pulpito_backend/internals/features/catalogo/himnos/model"
	cultoModel "pulpito_backend/internals/features/cultos/cultos/model"
	festivoModel "pulpito_backend/internals/features/cultos/festivos/model"
	lecturaModel "pulpito_backend/internals/features/cultos/lecturas/model"
	tipoModel "pulpito_backend/internals/features/cultos/tipos/model"
	notificationModel "pulpito_backend/internals/features/home/notifications/model"
)

var DB *gorm.DB

// DSN arma la cadena de conexión. DATABASE_URL tiene prioridad sobre las variables DB_*.
func DSN() string {
	if raw := configs.GetEnv("DATABASE_URL"); raw != "" {
		return raw
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(configs.GetEnv("DB_USER"), configs.GetEnv("DB_PASSWORD")),
		Host:   fmt.Sprintf("%s:%s", configs.GetEnv("DB_HOST", "localhost"), configs.GetEnv("DB_PORT", "5432")),
		Path:   configs.GetEnv("DB_NAME", "pulpito"),
	}
	q := url.Values{}
	q.Set("sslmode", configs.GetEnv("DB_SSLMODE", "require"))
	q.Set("application_name", "pulpito")
	q.Set("options", "-c statement_timeout=5000")
	u.RawQuery = q.Encode()
	return u.String()
}

func ConnectDB() error {
	zap.L().Info("conectando a PostgreSQL")
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  DSN(),
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("conectar a la base de datos: %w", err)
	}
	DB = db
	zap.L().Info("base de datos conectada")
	return nil
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		zap.L().Warn("no se pudo ajustar el pool", zap.Error(err))
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUp abre la primera conexión del pool en segundo plano.
func WarmUp() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := Ping(ctx); err != nil {
			zap.L().Warn("warm-up ping fallido", zap.Error(err))
		}
	}()
}

func Ping(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("base de datos no inicializada")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Models es el orden de migración: las tablas referenciadas van antes.
func Models() []any {
	return []any{
		&tipoModel.TipoCultoModel{},
		&cultoModel.CultoModel{},
		&festivoModel.FestivoModel{},
		&lecturaModel.LecturaModel{},
		&himnoModel.HimnoModel{},
		&notificationModel.NotificationModel{},
		&notificationModel.NotificationUserModel{},
		&auditModel.AuditLogModel{},
	}
}

// Migrate crea o actualiza las tablas propias. profiles pertenece al servicio de autenticación.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("crear extensión pgcrypto: %w", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func Close() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
