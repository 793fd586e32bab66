package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

var ErrResidentNotFound = errors.New("resident not found")

// ResidentRepository handles resident roster persistence.
type ResidentRepository struct {
	db *DB
}

func NewResidentRepository(db *DB) *ResidentRepository {
	return &ResidentRepository{db: db}
}

func (r *ResidentRepository) Create(ctx context.Context, resident *model.ResidentRecord) error {
	if err := r.db.GORM.WithContext(ctx).Create(resident).Error; err != nil {
		return fmt.Errorf("failed to create resident: %w", err)
	}
	return nil
}

func (r *ResidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.ResidentRecord, error) {
	var resident model.ResidentRecord
	err := r.db.GORM.WithContext(ctx).First(&resident, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResidentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}
	return &resident, nil
}

func (r *ResidentRepository) Update(ctx context.Context, resident *model.ResidentRecord) error {
	if err := r.db.GORM.WithContext(ctx).Save(resident).Error; err != nil {
		return fmt.Errorf("failed to update resident: %w", err)
	}
	return nil
}

// ListActive returns every active resident, the roster a solve draws from.
func (r *ResidentRepository) ListActive(ctx context.Context) ([]model.ResidentRecord, error) {
	var residents []model.ResidentRecord
	err := r.db.GORM.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&residents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active residents: %w", err)
	}
	return residents, nil
}

func (r *ResidentRepository) List(ctx context.Context) ([]model.ResidentRecord, error) {
	var residents []model.ResidentRecord
	err := r.db.GORM.WithContext(ctx).Order("name ASC").Find(&residents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list residents: %w", err)
	}
	return residents, nil
}
