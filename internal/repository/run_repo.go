package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nwatkins/driftloop/internal/domain"
)

// RunRepository persists loop runs and their variants.
type RunRepository struct {
	db *gorm.DB
}

// NewRunRepository creates a repository bound to db.
func NewRunRepository(db *gorm.DB) *RunRepository {
	return &RunRepository{db: db}
}

// CreateRun inserts a new run record.
func (r *RunRepository) CreateRun(ctx context.Context, run *domain.LoopRun) error {
	return r.db.WithContext(ctx).Create(run).Error
}

// SaveRun updates an existing run record.
func (r *RunRepository) SaveRun(ctx context.Context, run *domain.LoopRun) error {
	return r.db.WithContext(ctx).Save(run).Error
}

// CreateVariant inserts a variant record.
func (r *RunRepository) CreateVariant(ctx context.Context, v *domain.LoopVariant) error {
	return r.db.WithContext(ctx).Create(v).Error
}

// SaveVariant updates a variant record.
func (r *RunRepository) SaveVariant(ctx context.Context, v *domain.LoopVariant) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// GetRun retrieves a run with its variants.
func (r *RunRepository) GetRun(ctx context.Context, id string) (*domain.LoopRun, error) {
	var run domain.LoopRun
	if err := r.db.WithContext(ctx).Preload("Variants").First(&run, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

// ListRecent returns the most recent runs, newest first, without variants.
func (r *RunRepository) ListRecent(ctx context.Context, limit int) ([]domain.LoopRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var runs []domain.LoopRun
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
