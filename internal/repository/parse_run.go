// internal/repository/parse_run.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/logsim/internal/domain"
	"github.com/dangerclosesec/logsim/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParseRunRepositoryIface interface {
	Create(ctx context.Context, run *model.ParseRun) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ParseRun, error)
	Query(ctx context.Context, params QueryParams) ([]model.ParseRun, int64, error)
	Migrate(ctx context.Context) error
}

// ParseRunRepository handles database operations for parse runs
type ParseRunRepository struct {
	db *gorm.DB
}

// NewParseRunRepository creates a new ParseRunRepository
func NewParseRunRepository(db *gorm.DB) *ParseRunRepository {
	return &ParseRunRepository{db: db}
}

// Migrate creates or updates the parse_runs table
func (r *ParseRunRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&model.ParseRun{}); err != nil {
		return fmt.Errorf("failed to migrate parse runs: %w", err)
	}
	return nil
}

// Create inserts a new parse run
func (r *ParseRunRepository) Create(ctx context.Context, run *model.ParseRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(run)
	if result.Error != nil {
		return fmt.Errorf("failed to create parse run: %w", result.Error)
	}

	return nil
}

// FindByID retrieves a parse run by its ID
func (r *ParseRunRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.ParseRun, error) {
	var run model.ParseRun
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&run)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to find parse run: %w", result.Error)
	}

	return &run, nil
}

// QueryParams holds parameters for querying parse runs
type QueryParams struct {
	Source    string
	Success   *bool
	StartTime time.Time
	EndTime   time.Time
	Limit     int
	Offset    int
}

// Query retrieves parse runs based on the provided query parameters
func (r *ParseRunRepository) Query(ctx context.Context, params QueryParams) ([]model.ParseRun, int64, error) {
	var runs []model.ParseRun
	var count int64

	query := r.db.WithContext(ctx).Model(&model.ParseRun{})

	if params.Source != "" {
		query = query.Where("source = ?", params.Source)
	}
	if params.Success != nil {
		query = query.Where("success = ?", *params.Success)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("created_at >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("created_at <= ?", params.EndTime)
	}

	// Get total count for pagination
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count parse runs: %w", err)
	}

	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	} else {
		query = query.Limit(100) // Default limit
	}

	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}

	result := query.Order("created_at DESC").Find(&runs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query parse runs: %w", result.Error)
	}

	return runs, count, nil
}
