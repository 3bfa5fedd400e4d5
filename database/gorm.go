package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/agentdesk-backend/config"
	"github.com/agentdesk-backend/models"
)

var DB *gorm.DB

// Models returns every entity the store migrates, status lookup tables first
// so that foreign keys resolve during seeding.
func Models() []interface{} {
	return []interface{}{
		&models.ChatStatus{},
		&models.TaskStatus{},
		&models.User{},
		&models.Project{},
		&models.Chat{},
		&models.Task{},
	}
}

// Initialize sets up the GORM database connection
func Initialize() {
	dbURL := config.DatabaseURL()

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	var err error
	DB, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("Failed to get SQL DB: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Auto migrate models
	if err := DB.AutoMigrate(Models()...); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	log.Println("✅ Connected to database")
}
