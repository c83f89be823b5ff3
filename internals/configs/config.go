package configs

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

var (
	Port              string
	DBPath            string
	UploadDir         string
	SnapshotDir       string
	AppTimezone       string
	JWTSecret         string
	AuthEnforce       bool
	MaxUploadMB       int
	UploadMaxAge      time.Duration
	UploadCleanupCron string
	CorsAllowOrigins  string
	DBLogLevel        string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Println("[WARN] .env file not found, using system environment")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] Running in production, using system environment")
	}

	Port = GetEnv("PORT", "5001")
	DBPath = GetEnv("DB_PATH", "./db/invigleye.db")
	UploadDir = GetEnv("UPLOAD_DIR", "./uploads")
	SnapshotDir = GetEnv("SNAPSHOT_DIR", "./snapshots")
	AppTimezone = GetEnv("APP_TIMEZONE")
	JWTSecret = GetEnv("JWT_SECRET")
	AuthEnforce = GetEnvBool("AUTH_ENFORCE", false)
	MaxUploadMB = GetEnvInt("MAX_UPLOAD_MB", 5)
	UploadMaxAge = time.Duration(GetEnvInt("UPLOAD_MAX_AGE_MINUTES", 60)) * time.Minute
	UploadCleanupCron = GetEnv("UPLOAD_CLEANUP_CRON", "@every 30m")
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", "*")
	DBLogLevel = GetEnv("DB_LOG_LEVEL", "warn")

	if JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set, login tokens use an insecure development secret")
		JWTSecret = "invigleye-dev-secret"
	}
	if AuthEnforce {
		log.Println("[INFO] AUTH_ENFORCE enabled, API routes require a bearer token")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if (!exists || value == "") && len(defaultValue) > 0 {
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
		log.Printf("[WARN] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      parseLogLevel(DBLogLevel),
	}
}

func parseLogLevel(s string) gormLogger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "silent":
		return gormLogger.Silent
	case "error":
		return gormLogger.Error
	case "info":
		return gormLogger.Info
	default:
		return gormLogger.Warn
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	nl := *l
	nl.LogLevel = level
	return &nl
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && err != gormLogger.ErrRecordNotFound:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
