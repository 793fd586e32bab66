package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

var ErrTimeOffDateRangeInvalid = errors.New("time off end date must not precede start date")

type timeOffRepository interface {
	Create(ctx context.Context, block *model.TimeOffRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.TimeOffRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.TimeOffStatus) error
	ListApprovedOverlapping(ctx context.Context, from, to time.Time) ([]model.TimeOffRecord, error)
	List(ctx context.Context) ([]model.TimeOffRecord, error)
}

// TimeOffService is thin CRUD plus an approval step; only approved blocks
// ever reach a ScheduleService.GenerateVersion call.
type TimeOffService struct {
	repo timeOffRepository
}

func NewTimeOffService(repo timeOffRepository) *TimeOffService {
	return &TimeOffService{repo: repo}
}

type CreateTimeOffInput struct {
	ResidentID uuid.UUID
	StartDate  time.Time
	EndDate    time.Time
	BlockType  string
}

func (s *TimeOffService) Create(ctx context.Context, input CreateTimeOffInput) (*model.TimeOffRecord, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrTimeOffDateRangeInvalid
	}
	if input.BlockType == "" {
		input.BlockType = "BT_DAY"
	}

	block := &model.TimeOffRecord{
		ResidentID: input.ResidentID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		BlockType:  input.BlockType,
		Status:     model.TimeOffPending,
	}
	if err := s.repo.Create(ctx, block); err != nil {
		return nil, err
	}
	return block, nil
}

func (s *TimeOffService) Approve(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, model.TimeOffApproved)
}

func (s *TimeOffService) Deny(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, model.TimeOffDenied)
}

func (s *TimeOffService) GetByID(ctx context.Context, id uuid.UUID) (*model.TimeOffRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *TimeOffService) List(ctx context.Context) ([]model.TimeOffRecord, error) {
	return s.repo.List(ctx)
}
