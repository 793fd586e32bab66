package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

var (
	ErrResidentNameRequired = errors.New("resident name is required")
	ErrResidentTierInvalid  = errors.New("resident tier must be between 0 and 3")
)

type residentRepository interface {
	Create(ctx context.Context, resident *model.ResidentRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.ResidentRecord, error)
	Update(ctx context.Context, resident *model.ResidentRecord) error
	ListActive(ctx context.Context) ([]model.ResidentRecord, error)
	List(ctx context.Context) ([]model.ResidentRecord, error)
}

// ResidentService is thin CRUD over the roster; all scheduling semantics
// live in scheduler.Generate, not here.
type ResidentService struct {
	repo residentRepository
}

func NewResidentService(repo residentRepository) *ResidentService {
	return &ResidentService{repo: repo}
}

type CreateResidentInput struct {
	Name              string
	Tier              int
	OBMonthsCompleted int
}

func (s *ResidentService) Create(ctx context.Context, input CreateResidentInput) (*model.ResidentRecord, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrResidentNameRequired
	}
	if input.Tier < 0 || input.Tier > 3 {
		return nil, ErrResidentTierInvalid
	}

	resident := &model.ResidentRecord{
		Name:              name,
		Tier:              input.Tier,
		OBMonthsCompleted: input.OBMonthsCompleted,
		Active:            true,
	}
	if err := s.repo.Create(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

type UpdateResidentInput struct {
	Name              *string
	Tier              *int
	OBMonthsCompleted *int
	Active            *bool
}

func (s *ResidentService) Update(ctx context.Context, id uuid.UUID, input UpdateResidentInput) (*model.ResidentRecord, error) {
	resident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrResidentNameRequired
		}
		resident.Name = name
	}
	if input.Tier != nil {
		if *input.Tier < 0 || *input.Tier > 3 {
			return nil, ErrResidentTierInvalid
		}
		resident.Tier = *input.Tier
	}
	if input.OBMonthsCompleted != nil {
		resident.OBMonthsCompleted = *input.OBMonthsCompleted
	}
	if input.Active != nil {
		resident.Active = *input.Active
	}

	if err := s.repo.Update(ctx, resident); err != nil {
		return nil, err
	}
	return resident, nil
}

func (s *ResidentService) GetByID(ctx context.Context, id uuid.UUID) (*model.ResidentRecord, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ResidentService) List(ctx context.Context) ([]model.ResidentRecord, error) {
	return s.repo.List(ctx)
}

func (s *ResidentService) ListActive(ctx context.Context) ([]model.ResidentRecord, error) {
	return s.repo.ListActive(ctx)
}
