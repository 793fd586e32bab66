package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

var (
	ErrRequestDateRangeInvalid = errors.New("request end date must not precede start date")
	ErrRequestKindInvalid      = errors.New("request kind is not recognized")
)

var validRequestKinds = map[string]bool{"PREFER_CALL": true, "AVOID_CALL": true, "WEEKEND_OFF": true}

type requestRepository interface {
	Create(ctx context.Context, req *model.RequestRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.RequestRecord, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.RequestStatus) error
	ListApprovedOverlapping(ctx context.Context, from, to time.Time) ([]model.RequestRecord, error)
	List(ctx context.Context) ([]model.RequestRecord, error)
}

// RequestService is thin CRUD plus an approval step; only approved requests
// ever reach a ScheduleService.GenerateVersion call.
type RequestService struct {
	repo requestRepository
}

func NewRequestService(repo requestRepository) *RequestService {
	return &RequestService{repo: repo}
}

type CreateRequestInput struct {
	ResidentID uuid.UUID
	Kind       string
	StartDate  time.Time
	EndDate    time.Time
}

func (s *RequestService) Create(ctx context.Context, input CreateRequestInput) (*model.RequestRecord, error) {
	if !validRequestKinds[input.Kind] {
		return nil, ErrRequestKindInvalid
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrRequestDateRangeInvalid
	}

	req := &model.RequestRecord{
		ResidentID: input.ResidentID,
		Kind:       input.Kind,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Status:     model.RequestPending,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *RequestService) Approve(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, model.RequestApproved)
}

func (s *RequestService) Deny(ctx context.Context, id uuid.UUID) error {
	return s.repo.UpdateStatus(ctx, id, model.RequestDenied)
}

func (s *RequestService) GetByID(ctx context.Context, id uuid.UUID) (*model.RequestRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RequestService) List(ctx context.Context) ([]model.RequestRecord, error) {
	return s.repo.List(ctx)
}
