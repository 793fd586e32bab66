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

var ErrTimeOffNotFound = errors.New("time off block not found")

// TimeOffRepository handles approved time-off block persistence.
type TimeOffRepository struct {
	db *DB
}

func NewTimeOffRepository(db *DB) *TimeOffRepository {
	return &TimeOffRepository{db: db}
}

func (r *TimeOffRepository) Create(ctx context.Context, block *model.TimeOffRecord) error {
	if err := r.db.GORM.WithContext(ctx).Create(block).Error; err != nil {
		return fmt.Errorf("failed to create time off block: %w", err)
	}
	return nil
}

func (r *TimeOffRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.TimeOffRecord, error) {
	var block model.TimeOffRecord
	err := r.db.GORM.WithContext(ctx).First(&block, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTimeOffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get time off block: %w", err)
	}
	return &block, nil
}

func (r *TimeOffRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.TimeOffStatus) error {
	result := r.db.GORM.WithContext(ctx).
		Model(&model.TimeOffRecord{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update time off status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTimeOffNotFound
	}
	return nil
}

// ListApprovedOverlapping returns every approved time-off block whose
// window intersects [from, to].
func (r *TimeOffRepository) ListApprovedOverlapping(ctx context.Context, from, to time.Time) ([]model.TimeOffRecord, error) {
	var blocks []model.TimeOffRecord
	err := r.db.GORM.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND end_date >= ?", model.TimeOffApproved, to, from).
		Order("start_date ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list approved time off blocks: %w", err)
	}
	return blocks, nil
}

func (r *TimeOffRepository) List(ctx context.Context) ([]model.TimeOffRecord, error) {
	var blocks []model.TimeOffRecord
	err := r.db.GORM.WithContext(ctx).Order("start_date ASC").Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list time off blocks: %w", err)
	}
	return blocks, nil
}
