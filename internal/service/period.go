package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
	"github.com/dfberenson/ob-resident-scheduler/internal/scheduler"
)

var (
	ErrPeriodLabelRequired      = errors.New("period label is required")
	ErrPeriodDateRangeInvalid   = errors.New("period end date must not precede start date")
	ErrPeriodConstraintsInvalid = errors.New("period constraints override is not valid")
)

type periodRepository interface {
	Create(ctx context.Context, period *model.SchedulePeriod) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.SchedulePeriod, error)
	List(ctx context.Context) ([]model.SchedulePeriod, error)
}

// PeriodService is thin CRUD over planning horizons.
type PeriodService struct {
	repo periodRepository
}

func NewPeriodService(repo periodRepository) *PeriodService {
	return &PeriodService{repo: repo}
}

type CreatePeriodInput struct {
	Label       string
	StartDate   time.Time
	EndDate     time.Time
	Constraints json.RawMessage // optional partial scheduler.Constraints override
}

func (s *PeriodService) Create(ctx context.Context, input CreatePeriodInput) (*model.SchedulePeriod, error) {
	label := strings.TrimSpace(input.Label)
	if label == "" {
		return nil, ErrPeriodLabelRequired
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, ErrPeriodDateRangeInvalid
	}

	period := &model.SchedulePeriod{Label: label, StartDate: input.StartDate, EndDate: input.EndDate}

	if len(input.Constraints) > 0 {
		var c scheduler.Constraints
		if err := json.Unmarshal(input.Constraints, &c); err != nil {
			return nil, ErrPeriodConstraintsInvalid
		}
		period.Constraints = datatypes.JSON(input.Constraints)
	}

	if err := s.repo.Create(ctx, period); err != nil {
		return nil, err
	}
	return period, nil
}

func (s *PeriodService) GetByID(ctx context.Context, id uuid.UUID) (*model.SchedulePeriod, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PeriodService) List(ctx context.Context) ([]model.SchedulePeriod, error) {
	return s.repo.List(ctx)
}
