// cmd/logsim/database.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/logsim/internal/config"
	"github.com/dangerclosesec/logsim/internal/domain"
	"github.com/dangerclosesec/logsim/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	level := logger.Warn
	if verbose {
		level = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// openRepository returns the run store, or nil when the database is
// disabled. Callers that cannot work without a store pass required.
func openRepository(cfg *config.Config, required bool) (repository.ParseRunRepositoryIface, error) {
	if !cfg.Database.Enabled {
		if required {
			return nil, fmt.Errorf("%w: set database.enabled or DB_ENABLED=true", domain.ErrStoreDisabled)
		}
		return nil, nil
	}

	db, err := setupDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}

	return repository.NewParseRunRepository(db), nil
}
