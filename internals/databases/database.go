package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	attemptmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/attempts/model"
	candidatemodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/candidates/model"
	departmentmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/departments/model"
	exammodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/examinations/model"
	gradingmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/screening/grading/model"
	authmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/auth/model"
	subjectmodel "github.com/codewithemperor/electronic-screening-scoring-system-sub001/internals/features/reference/subjects/model"
)

var DB *gorm.DB

func ConnectDB() {
	log.Println("connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=screening&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // transaction pooling (PgBouncer) safe
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}
	DB = db
	log.Println("DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate creates/updates the screening tables. The composite unique index
// on test_attempts is part of the model tags; AutoMigrate installs it so the
// assignment idempotency guarantee is enforced by the database itself.
func Migrate() {
	if err := DB.AutoMigrate(
		&authmodel.AdminModel{},
		&subjectmodel.SubjectModel{},
		&gradingmodel.GradingRuleModel{},
		&departmentmodel.DepartmentModel{},
		&exammodel.ExaminationModel{},
		&exammodel.QuestionModel{},
		&candidatemodel.CandidateModel{},
		&candidatemodel.OLevelResultModel{},
		&attemptmodel.TestAttemptModel{},
	); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("migration complete.")
}

func Ping() error {
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
