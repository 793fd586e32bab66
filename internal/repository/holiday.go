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

var ErrHolidayNotFound = errors.New("holiday not found")

// HolidayRepository handles hospital-flagged holiday persistence.
type HolidayRepository struct {
	db *DB
}

func NewHolidayRepository(db *DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

func (r *HolidayRepository) Create(ctx context.Context, h *model.HolidayRecord) error {
	if err := r.db.GORM.WithContext(ctx).Create(h).Error; err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}
	return nil
}

func (r *HolidayRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.HolidayRecord, error) {
	var h model.HolidayRecord
	err := r.db.GORM.WithContext(ctx).First(&h, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holiday: %w", err)
	}
	return &h, nil
}

func (r *HolidayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.GORM.WithContext(ctx).Delete(&model.HolidayRecord{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete holiday: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

// ListOverlapping returns every holiday in [from, to].
func (r *HolidayRepository) ListOverlapping(ctx context.Context, from, to time.Time) ([]model.HolidayRecord, error) {
	var holidays []model.HolidayRecord
	err := r.db.GORM.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&holidays).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	return holidays, nil
}

// ListByYear returns every holiday in a calendar year.
func (r *HolidayRepository) ListByYear(ctx context.Context, year int) ([]model.HolidayRecord, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return r.ListOverlapping(ctx, from, to)
}

// Upsert creates a holiday or, if one already exists on its date, leaves
// the existing row untouched. Used when seeding a generated calendar.
func (r *HolidayRepository) Upsert(ctx context.Context, h *model.HolidayRecord) error {
	return r.db.GORM.WithContext(ctx).
		Where("date = ?", h.Date).
		FirstOrCreate(h).Error
}
