package database

import (
	"fmt"

	"whatsapp-template-linter/internal/config"
	"whatsapp-template-linter/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitGorm opens the configured database (sqlite file by default,
// postgres when DB_DRIVER=postgres) and migrates the linter tables.
func InitGorm(cfg *config.Config) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		logrus.Fatalf("Failed to connect to database (%s): %v", cfg.DBDriver, err)
	}

	if err := DB.AutoMigrate(
		&models.LintRun{},
		&models.TemplateDraft{},
	); err != nil {
		logrus.Fatalf("Failed to run auto-migration: %v", err)
	}

	logrus.Infof("Database initialized (%s)", cfg.DBDriver)
}
