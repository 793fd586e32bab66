package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfberenson/ob-resident-scheduler/internal/repository"
	"github.com/dfberenson/ob-resident-scheduler/internal/service"
	"github.com/dfberenson/ob-resident-scheduler/internal/testutil"
)

func TestPeriodService_Create_RejectsBlankLabel(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewPeriodService(repository.NewPeriodRepository(db))

	_, err := svc.Create(context.Background(), service.CreatePeriodInput{
		Label:     "  ",
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, service.ErrPeriodLabelRequired)
}

func TestPeriodService_Create_RejectsInvertedDateRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewPeriodService(repository.NewPeriodRepository(db))

	_, err := svc.Create(context.Background(), service.CreatePeriodInput{
		Label:     "March 2026",
		StartDate: time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, service.ErrPeriodDateRangeInvalid)
}

func TestPeriodService_CreateAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewPeriodService(repository.NewPeriodRepository(db))
	ctx := context.Background()

	period, err := svc.Create(ctx, service.CreatePeriodInput{
		Label:     "March 2026",
		StartDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, period.ID)
	require.NoError(t, err)
	assert.Equal(t, "March 2026", fetched.Label)
}

func TestPeriodService_Create_RejectsMalformedConstraints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewPeriodService(repository.NewPeriodRepository(db))

	_, err := svc.Create(context.Background(), service.CreatePeriodInput{
		Label:       "March 2026",
		StartDate:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC),
		Constraints: []byte(`{"weights": "not-an-object"}`),
	})
	assert.ErrorIs(t, err, service.ErrPeriodConstraintsInvalid)
}

func TestPeriodService_Create_PersistsConstraintsOverride(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := service.NewPeriodService(repository.NewPeriodRepository(db))
	ctx := context.Background()

	raw := []byte(`{"weights":{"Understaff":2000,"Call":20,"Weekend":5,"Request":10}}`)
	period, err := svc.Create(ctx, service.CreatePeriodInput{
		Label:       "April 2026",
		StartDate:   time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC),
		Constraints: raw,
	})
	require.NoError(t, err)

	fetched, err := svc.GetByID(ctx, period.ID)
	require.NoError(t, err)
	require.NotEmpty(t, fetched.Constraints)
	assert.JSONEq(t, string(raw), string(fetched.Constraints))
}
