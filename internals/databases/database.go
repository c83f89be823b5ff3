package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"invigileye_backend/internals/configs"
	attendanceModel "invigileye_backend/internals/features/exams/attendance/model"
	examModel "invigileye_backend/internals/features/exams/exams/model"
	alertModel "invigileye_backend/internals/features/monitoring/alerts/model"
	requestModel "invigileye_backend/internals/features/monitoring/requests/model"
	userModel "invigileye_backend/internals/features/users/user/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Printf("🔌 Opening SQLite database at %s ...", configs.DBPath)

	db, err := Open(configs.DBPath)
	if err != nil {
		log.Fatalf("❌ Failed to open DB: %v", err)
	}
	DB = db
	log.Println("✅ DB connected.")
}

// Open opens (creating if needed) the sqlite file at path with foreign keys on.
func Open(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)

	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
}

func TunePool() {
	tunePool(DB)
}

// One connection: sqlite has a single writer and exam admission relies on
// transactions running one at a time.
func tunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxIdleTime(0)
	sqlDB.SetConnMaxLifetime(0)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := ping(); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Migrate creates the tables and the uniqueness indexes the exam scheduler relies on.
func Migrate(db *gorm.DB) error {
	tunePool(db)

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&examModel.ExamModel{},
		&examModel.StudentModel{},
		&attendanceModel.AttendanceModel{},
		&requestModel.RequestModel{},
		&alertModel.AlertModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	stmts := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ix_attendance_exam_roll ON attendance (exam_id, roll_number)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_exams_room_slot ON exams (venue, exam_date, exam_time, COALESCE(section, ''))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_exams_class_slot ON exams (title, exam_date, exam_time)`,
		`CREATE INDEX IF NOT EXISTS ix_alerts_created_at ON alerts (created_at DESC)`,
	}
	for _, s := range stmts {
		if err := db.Exec(s).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
