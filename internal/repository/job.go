package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

var ErrJobNotFound = errors.New("generation job not found")

// JobRepository handles the dispatcher's bookkeeping rows.
type JobRepository struct {
	db *DB
}

func NewJobRepository(db *DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *model.GenerationJob) error {
	if err := r.db.GORM.WithContext(ctx).Create(job).Error; err != nil {
		return fmt.Errorf("failed to create generation job: %w", err)
	}
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.GenerationJob, error) {
	var job model.GenerationJob
	err := r.db.GORM.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get generation job: %w", err)
	}
	return &job, nil
}

func (r *JobRepository) MarkRunning(ctx context.Context, id uuid.UUID) error {
	return r.db.GORM.WithContext(ctx).
		Model(&model.GenerationJob{}).
		Where("id = ?", id).
		Update("status", model.JobRunning).Error
}

func (r *JobRepository) MarkSucceeded(ctx context.Context, id, versionID uuid.UUID, completedAt time.Time) error {
	return r.db.GORM.WithContext(ctx).
		Model(&model.GenerationJob{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       model.JobSucceeded,
			"version_id":   versionID,
			"completed_at": completedAt,
		}).Error
}

func (r *JobRepository) MarkFailed(ctx context.Context, id uuid.UUID, cause error, completedAt time.Time) error {
	return r.db.GORM.WithContext(ctx).
		Model(&model.GenerationJob{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       model.JobFailed,
			"error":        cause.Error(),
			"completed_at": completedAt,
		}).Error
}
