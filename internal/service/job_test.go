package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
	"github.com/dfberenson/ob-resident-scheduler/internal/repository"
	"github.com/dfberenson/ob-resident-scheduler/internal/service"
	"github.com/dfberenson/ob-resident-scheduler/internal/testutil"
)

type stubDispatcher struct {
	dispatched []uuid.UUID
	err        error
}

func (d *stubDispatcher) Dispatch(periodID, jobID uuid.UUID) error {
	if d.err != nil {
		return d.err
	}
	d.dispatched = append(d.dispatched, jobID)
	return nil
}

func TestJobService_Enqueue_RejectsUnknownPeriod(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewJobService(repository.NewJobRepository(db), repository.NewPeriodRepository(db), &stubDispatcher{})

	_, err := svc.Enqueue(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestJobService_Enqueue_PersistsAndDispatches(t *testing.T) {
	db := testutil.SetupTestDB(t)
	periodRepo := repository.NewPeriodRepository(db)
	dispatcher := &stubDispatcher{}
	svc := service.NewJobService(repository.NewJobRepository(db), periodRepo, dispatcher)
	ctx := context.Background()

	period := &model.SchedulePeriod{
		Label:     "May 2026",
		StartDate: time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.May, 31, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, periodRepo.Create(ctx, period))

	job, err := svc.Enqueue(ctx, period.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobQueued, job.Status)
	assert.Contains(t, dispatcher.dispatched, job.ID)

	fetched, err := svc.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, fetched.ID)
}
