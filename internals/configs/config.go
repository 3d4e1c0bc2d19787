package configs

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

var (
	AppEnv               string
	Port                 string
	JWTSecret            string
	Timezone             string
	ReminderCron         string
	AuditCleanupCron     string
	AuditRetentionDays   int
	ScheduleTemplatePath string
	CorsOrigins          []string
	RequestTimeout       time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	envSource := "system"
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err == nil {
			envSource = ".env"
		}
	}

	AppEnv = GetEnv("APP_ENV", "development")
	InitLogger(AppEnv)

	Port = GetEnv("PORT", "3000")
	JWTSecret = GetEnv("JWT_SECRET")
	Timezone = GetEnv("APP_TIMEZONE", "Europe/Madrid")
	ReminderCron = GetEnv("REMINDER_CRON", "0 20 * * *")
	AuditCleanupCron = GetEnv("AUDIT_CLEANUP_CRON", "30 3 * * *")
	AuditRetentionDays = GetEnvInt("AUDIT_RETENTION_DAYS", 365)
	ScheduleTemplatePath = GetEnv("SCHEDULE_TEMPLATE_PATH", "config/plantilla_cultos.yaml")
	CorsOrigins = splitList(GetEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"))
	RequestTimeout = time.Duration(GetEnvInt("REQUEST_TIMEOUT_SECONDS", 5)) * time.Second

	log := zap.L().With(zap.String("env_source", envSource))
	if JWTSecret == "" {
		log.Warn("JWT_SECRET no configurado; las rutas protegidas rechazarán todas las peticiones")
	}
	log.Info("configuración cargada",
		zap.String("app_env", AppEnv),
		zap.String("port", Port),
		zap.String("timezone", Timezone),
		zap.String("reminder_cron", ReminderCron),
	)
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// Location devuelve la zona horaria de la congregación; UTC si no se puede cargar.
func Location() *time.Location {
	if Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		zap.L().Warn("zona horaria inválida, usando UTC", zap.String("timezone", Timezone), zap.Error(err))
		return time.UTC
	}
	return loc
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
