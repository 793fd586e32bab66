package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
	"github.com/dfberenson/ob-resident-scheduler/internal/repository"
	"github.com/dfberenson/ob-resident-scheduler/internal/testutil"
)

func TestJobRepository_CreateAndMarkRunning(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewJobRepository(db)
	ctx := context.Background()

	job := &model.GenerationJob{PeriodID: uuid.New(), Status: model.JobQueued, RequestedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, job))

	require.NoError(t, repo.MarkRunning(ctx, job.ID))

	fetched, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobRunning, fetched.Status)
}

func TestJobRepository_MarkSucceeded(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewJobRepository(db)
	ctx := context.Background()

	job := &model.GenerationJob{PeriodID: uuid.New(), Status: model.JobRunning, RequestedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, job))

	versionID := uuid.New()
	completedAt := time.Now().UTC()
	require.NoError(t, repo.MarkSucceeded(ctx, job.ID, versionID, completedAt))

	fetched, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobSucceeded, fetched.Status)
	require.NotNil(t, fetched.VersionID)
	assert.Equal(t, versionID, *fetched.VersionID)
}

func TestJobRepository_MarkFailed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewJobRepository(db)
	ctx := context.Background()

	job := &model.GenerationJob{PeriodID: uuid.New(), Status: model.JobRunning, RequestedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, job))

	require.NoError(t, repo.MarkFailed(ctx, job.ID, errors.New("solver timed out"), time.Now().UTC()))

	fetched, err := repo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, model.JobFailed, fetched.Status)
	assert.Equal(t, "solver timed out", fetched.Error)
}

func TestJobRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewJobRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrJobNotFound)
}
