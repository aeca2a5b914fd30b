package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hockeylive/backend/internal/config"
	"github.com/hockeylive/backend/internal/models"
)

var DB *gorm.DB

// Connect opens the PostgreSQL connection and stores the global handle.
func Connect(cfg *config.Config) error {
	logMode := gormlogger.Silent
	if cfg.Server.Env == "development" {
		logMode = gormlogger.Info
	}

	var err error
	DB, err = gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logMode),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

// Migrate runs schema auto-migration for all persisted models.
func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.UserToken{},
		&models.Team{},
		&models.Player{},
		&models.TeamMembership{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
