package database

import (
	"fmt"
	"log"
	"time"

	"github.com/mehran282/off-board-v1/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database connection. The handle is injected into the
// store adapter and the tools explicitly; there is no package-level
// singleton.
func Connect(cfg *config.DatabaseConfig, queries *QueryLogger) (*gorm.DB, error) {
	// Configure GORM with custom logger
	var gormLogger logger.Interface
	if queries == nil {
		// No query log requested
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = &CustomGormLogger{
			Interface: logger.Default.LogMode(logger.Warn),
			Queries:   queries,
		}
	}

	gormConfig := &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
		QueryFields: true,
	}

	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established successfully")
	return db, nil
}

// CheckConnection pings the database.
func CheckConnection(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close closes the database connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
