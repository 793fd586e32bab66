package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

var ErrPeriodNotFound = errors.New("schedule period not found")

// PeriodRepository handles schedule period persistence.
type PeriodRepository struct {
	db *DB
}

func NewPeriodRepository(db *DB) *PeriodRepository {
	return &PeriodRepository{db: db}
}

func (r *PeriodRepository) Create(ctx context.Context, period *model.SchedulePeriod) error {
	if err := r.db.GORM.WithContext(ctx).Create(period).Error; err != nil {
		return fmt.Errorf("failed to create schedule period: %w", err)
	}
	return nil
}

func (r *PeriodRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.SchedulePeriod, error) {
	var period model.SchedulePeriod
	err := r.db.GORM.WithContext(ctx).First(&period, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPeriodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule period: %w", err)
	}
	return &period, nil
}

func (r *PeriodRepository) List(ctx context.Context) ([]model.SchedulePeriod, error) {
	var periods []model.SchedulePeriod
	err := r.db.GORM.WithContext(ctx).Order("start_date DESC").Find(&periods).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule periods: %w", err)
	}
	return periods, nil
}
