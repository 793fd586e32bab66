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

var ErrRequestNotFound = errors.New("request not found")

// RequestRepository handles resident preference request persistence.
type RequestRepository struct {
	db *DB
}

func NewRequestRepository(db *DB) *RequestRepository {
	return &RequestRepository{db: db}
}

func (r *RequestRepository) Create(ctx context.Context, req *model.RequestRecord) error {
	if err := r.db.GORM.WithContext(ctx).Create(req).Error; err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.RequestRecord, error) {
	var req model.RequestRecord
	err := r.db.GORM.WithContext(ctx).First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return &req, nil
}

func (r *RequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error {
	result := r.db.GORM.WithContext(ctx).
		Model(&model.RequestRecord{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update request status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// ListApprovedOverlapping returns every approved request whose window
// intersects [from, to], the set a solve for that period draws from.
func (r *RequestRepository) ListApprovedOverlapping(ctx context.Context, from, to time.Time) ([]model.RequestRecord, error) {
	var requests []model.RequestRecord
	err := r.db.GORM.WithContext(ctx).
		Where("status = ? AND start_date <= ? AND end_date >= ?", model.RequestApproved, to, from).
		Order("start_date ASC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list approved requests: %w", err)
	}
	return requests, nil
}

func (r *RequestRepository) List(ctx context.Context) ([]model.RequestRecord, error) {
	var requests []model.RequestRecord
	err := r.db.GORM.WithContext(ctx).Order("start_date ASC").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}
