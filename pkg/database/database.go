package database

import (
	"fmt"
	"log"

	"inventory-service/internal/model"
	"inventory-service/pkg/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var db *gorm.DB

// InitDB opens the connection pool and runs migrations. The handle is built
// once at startup and shared by reference; nothing mutates it afterwards.
func InitDB(appConfig *config.Config) error {
	var err error

	// Configure GORM logger
	logLevel := logger.Error
	if appConfig.Server.Env == "development" {
		logLevel = logger.Info
	}

	// Configure Postgres options
	pgConfig := postgres.Config{
		DSN:                  appConfig.DB.GetDSN(),
		PreferSimpleProtocol: true, // Disables implicit prepared statement usage
	}

	// Open connection
	db, err = gorm.Open(postgres.New(pgConfig), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		return err
	}

	// Get generic database object SQL
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Failed to get database object: %v", err)
		return err
	}

	// Set connection pool settings from config
	sqlDB.SetMaxIdleConns(appConfig.DB.MaxIdleConns)
	sqlDB.SetMaxOpenConns(appConfig.DB.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(appConfig.DB.ConnMaxLifetime)

	// Run migrations
	if err := db.AutoMigrate(&model.Product{}, &model.ProductHistory{}); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return db
}
