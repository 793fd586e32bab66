package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

type jobRepository interface {
	Create(ctx context.Context, job *model.GenerationJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.GenerationJob, error)
}

// jobDispatcher is the subset of worker.Dispatcher JobService needs; kept as
// an interface so tests can substitute a stub instead of a real gocron pool.
type jobDispatcher interface {
	Dispatch(periodID, jobID uuid.UUID) error
}

// JobService records a generation request and hands it to the background
// dispatcher; it never runs a solve itself.
type JobService struct {
	repo       jobRepository
	periodRepo periodRepository
	dispatcher jobDispatcher
}

func NewJobService(repo jobRepository, periodRepo periodRepository, dispatcher jobDispatcher) *JobService {
	return &JobService{repo: repo, periodRepo: periodRepo, dispatcher: dispatcher}
}

// Enqueue validates periodID exists, writes a QUEUED GenerationJob row, and
// dispatches it. The job completes asynchronously; callers poll GetByID.
func (s *JobService) Enqueue(ctx context.Context, periodID uuid.UUID) (*model.GenerationJob, error) {
	if _, err := s.periodRepo.GetByID(ctx, periodID); err != nil {
		return nil, fmt.Errorf("loading period: %w", err)
	}

	job := &model.GenerationJob{
		PeriodID:    periodID,
		Status:      model.JobQueued,
		RequestedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("persisting generation job: %w", err)
	}

	if err := s.dispatcher.Dispatch(periodID, job.ID); err != nil {
		return nil, fmt.Errorf("dispatching generation job: %w", err)
	}

	return job, nil
}

func (s *JobService) GetByID(ctx context.Context, id uuid.UUID) (*model.GenerationJob, error) {
	return s.repo.GetByID(ctx, id)
}
