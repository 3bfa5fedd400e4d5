package database

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitializeInMemory points the global DB at a fresh in-memory SQLite
// database and migrates the schema. The name keeps shared-cache databases
// isolated between callers; tests pass their own test name.
func InitializeInMemory(name string) error {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to open in-memory database: %w", err)
	}

	// A single connection keeps the shared-cache database alive
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate in-memory database: %w", err)
	}

	DB = db
	return nil
}
