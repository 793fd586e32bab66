// Package worker dispatches schedule-generation requests onto a bounded
// background pool, so an HTTP caller never blocks on a multi-second solve.
package worker

import (
	"context"
	"sync"
	"time"

	gocron "github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
)

// ScheduleGenerator is the subset of service.ScheduleService the dispatcher
// needs; kept as an interface so tests can substitute a stub.
type ScheduleGenerator interface {
	GenerateVersion(ctx context.Context, periodID uuid.UUID) (*model.ScheduleVersion, error)
}

// JobRecorder is the subset of repository.JobRepository the dispatcher
// needs to keep its bookkeeping row current.
type JobRecorder interface {
	MarkRunning(ctx context.Context, id uuid.UUID) error
	MarkSucceeded(ctx context.Context, id, versionID uuid.UUID, completedAt time.Time) error
	MarkFailed(ctx context.Context, id uuid.UUID, cause error, completedAt time.Time) error
}

// Dispatcher runs at most one generation per period at a time, capped
// overall by maxConcurrent in-flight solves.
type Dispatcher struct {
	cron      gocron.Scheduler
	scheduler ScheduleGenerator
	jobs      JobRecorder

	sem chan struct{}

	mu          sync.Mutex
	periodLocks map[uuid.UUID]*sync.Mutex
}

// NewDispatcher builds a Dispatcher backed by a gocron scheduler running in
// UTC; maxConcurrent bounds how many solves may run at once across all
// periods.
func NewDispatcher(scheduler ScheduleGenerator, jobs JobRecorder, maxConcurrent int) (*Dispatcher, error) {
	cron, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	d := &Dispatcher{
		cron:        cron,
		scheduler:   scheduler,
		jobs:        jobs,
		sem:         make(chan struct{}, maxConcurrent),
		periodLocks: make(map[uuid.UUID]*sync.Mutex),
	}
	cron.Start()
	return d, nil
}

// Dispatch enqueues one generation for periodID under jobID, running
// immediately on the pool. Two dispatches for the same periodID never run
// concurrently; dispatches for independent periods do.
func (d *Dispatcher) Dispatch(periodID, jobID uuid.UUID) error {
	_, err := d.cron.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartImmediately()),
		gocron.NewTask(d.run, periodID, jobID),
	)
	return err
}

func (d *Dispatcher) run(periodID, jobID uuid.UUID) {
	d.sem <- struct{}{}
	defer func() { <-d.sem }()

	lock := d.periodLock(periodID)
	lock.Lock()
	defer lock.Unlock()

	ctx := context.Background()

	if err := d.jobs.MarkRunning(ctx, jobID); err != nil {
		log.Error().Err(err).Str("job_id", jobID.String()).Msg("failed to mark job running")
	}

	version, err := d.scheduler.GenerateVersion(ctx, periodID)
	completedAt := time.Now().UTC()
	if err != nil {
		log.Error().Err(err).Str("period_id", periodID.String()).Msg("schedule generation failed")
		if markErr := d.jobs.MarkFailed(ctx, jobID, err, completedAt); markErr != nil {
			log.Error().Err(markErr).Str("job_id", jobID.String()).Msg("failed to mark job failed")
		}
		return
	}

	if err := d.jobs.MarkSucceeded(ctx, jobID, version.ID, completedAt); err != nil {
		log.Error().Err(err).Str("job_id", jobID.String()).Msg("failed to mark job succeeded")
	}
}

func (d *Dispatcher) periodLock(periodID uuid.UUID) *sync.Mutex {
	d.mu.Lock()
	defer d.mu.Unlock()

	lock, ok := d.periodLocks[periodID]
	if !ok {
		lock = &sync.Mutex{}
		d.periodLocks[periodID] = lock
	}
	return lock
}

// Shutdown stops the underlying cron scheduler.
func (d *Dispatcher) Shutdown() error {
	return d.cron.Shutdown()
}
