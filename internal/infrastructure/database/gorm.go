package database

import (
	"fmt"
	"time"

	"trade_credit/internal/infrastructure/config"
	"trade_credit/internal/infrastructure/logger"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenGorm connects to the SQL store selected by storage.driver.
func OpenGorm(cfg *config.Config, zapLogger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		dialector = postgres.Open(cfg.PostgresDSN())
	case config.StorageSQLite:
		dialector = sqlite.Open(cfg.Database.SQLitePath)
	default:
		return nil, fmt.Errorf("storage driver %q is not a SQL driver", cfg.Storage.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.NewGormLogger(zapLogger, logger.MapGormLogLevel(cfg.Log.Level)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if cfg.Storage.Driver == config.StorageSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
