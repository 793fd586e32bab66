package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

var ErrVersionNotFound = errors.New("schedule version not found")

// VersionRepository handles schedule version persistence.
type VersionRepository struct {
	db *DB
}

func NewVersionRepository(db *DB) *VersionRepository {
	return &VersionRepository{db: db}
}

func (r *VersionRepository) Create(ctx context.Context, version *model.ScheduleVersion) error {
	if err := r.db.GORM.WithContext(ctx).Create(version).Error; err != nil {
		return fmt.Errorf("failed to create schedule version: %w", err)
	}
	return nil
}

func (r *VersionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ScheduleVersion, error) {
	var version model.ScheduleVersion
	err := r.db.GORM.WithContext(ctx).First(&version, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVersionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule version: %w", err)
	}
	return &version, nil
}

func (r *VersionRepository) ListByPeriod(ctx context.Context, periodID uuid.UUID) ([]model.ScheduleVersion, error) {
	var versions []model.ScheduleVersion
	err := r.db.GORM.WithContext(ctx).
		Where("period_id = ?", periodID).
		Order("generated_at DESC").
		Find(&versions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule versions: %w", err)
	}
	return versions, nil
}

// Publish flips a version from DRAFT to PUBLISHED. It does not touch any
// sibling version: spec.md's non-goals exclude re-optimizing a partially
// edited schedule, so publishing never cascades.
func (r *VersionRepository) Publish(ctx context.Context, id uuid.UUID) error {
	result := r.db.GORM.WithContext(ctx).
		Model(&model.ScheduleVersion{}).
		Where("id = ? AND status = ?", id, model.VersionDraft).
		Update("status", model.VersionPublished)
	if result.Error != nil {
		return fmt.Errorf("failed to publish schedule version: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrVersionNotFound
	}
	return nil
}
