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

func TestTimeOffService_Create_RejectsInvertedDateRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewTimeOffService(repository.NewTimeOffRepository(db))

	_, err := svc.Create(context.Background(), service.CreateTimeOffInput{
		ResidentID: uuid.New(),
		StartDate:  time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, service.ErrTimeOffDateRangeInvalid)
}

func TestTimeOffService_Create_DefaultsBlockType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewTimeOffService(repository.NewTimeOffRepository(db))
	ctx := context.Background()

	block, err := svc.Create(ctx, service.CreateTimeOffInput{
		ResidentID: uuid.New(),
		StartDate:  time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "BT_DAY", block.BlockType)
	assert.Equal(t, model.TimeOffPending, block.Status)
}

func TestTimeOffService_ApproveAndDeny(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewTimeOffService(repository.NewTimeOffRepository(db))
	ctx := context.Background()

	block, err := svc.Create(ctx, service.CreateTimeOffInput{
		ResidentID: uuid.New(),
		StartDate:  time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, time.June, 7, 0, 0, 0, 0, time.UTC),
		BlockType:  "BT_WEEK",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, block.ID))
	fetched, err := svc.GetByID(ctx, block.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TimeOffApproved, fetched.Status)

	require.NoError(t, svc.Deny(ctx, block.ID))
	fetched, err = svc.GetByID(ctx, block.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TimeOffDenied, fetched.Status)
}
