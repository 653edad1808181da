package databases

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/configs"
	courseModel "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/courses/model"
	discussionModel "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/lms/discussions/model"
	userModel "github.com/Lin-myatAung/Supportive-And-Efficient-Learning-System/internals/features/users/auth/model"
)

var DB *gorm.DB

// =======================
// DATABASE CONNECTOR
// =======================
func ConnectDB() {
	dbUser := configs.GetEnv("DB_USER", "postgres")
	dbPassword := configs.GetEnv("DB_PASSWORD", "postgres")
	dbHost := configs.GetEnv("DB_HOST", "127.0.0.1")
	dbPort := configs.GetEnv("DB_PORT", "5432")
	dbName := configs.GetEnv("DB_NAME", "my_lms")
	dbSSL := configs.GetEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		dbUser, dbPassword, dbHost, dbPort, dbName, dbSSL)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] failed to connect to database: %v", err)
	}

	DB = db
	log.Println("[INFO] database connected")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tuning skipped: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// Migrate creates the three tables the surface touches. Courses themselves
// are only ever written by the seeder and the lesson routes.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&courseModel.CourseModel{},
		&discussionModel.DiscussionModel{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] migrations applied")
}
