package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
	"github.com/dfberenson/ob-resident-scheduler/internal/repository"
	"github.com/dfberenson/ob-resident-scheduler/internal/testutil"
)

func TestHolidayRepository_CreateGetDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewHolidayRepository(db)
	ctx := context.Background()

	h := &model.HolidayRecord{Date: time.Date(2026, time.July, 4, 0, 0, 0, 0, time.UTC), Name: "Independence Day"}
	require.NoError(t, repo.Create(ctx, h))

	fetched, err := repo.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Independence Day", fetched.Name)

	require.NoError(t, repo.Delete(ctx, h.ID))
	_, err = repo.GetByID(ctx, h.ID)
	assert.ErrorIs(t, err, repository.ErrHolidayNotFound)
}

func TestHolidayRepository_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewHolidayRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrHolidayNotFound)
}

func TestHolidayRepository_ListByYear(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewHolidayRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.HolidayRecord{Date: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), Name: "New Year's Day"}))
	require.NoError(t, repo.Create(ctx, &model.HolidayRecord{Date: time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC), Name: "Christmas Day"}))

	results, err := repo.ListByYear(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "New Year's Day", results[0].Name)
}

func TestHolidayRepository_Upsert_LeavesExistingUntouched(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewHolidayRepository(db)
	ctx := context.Background()

	date := time.Date(2026, time.December, 25, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &model.HolidayRecord{Date: date, Name: "Christmas Day"}))

	dup := &model.HolidayRecord{Date: date, Name: "Xmas"}
	require.NoError(t, repo.Upsert(ctx, dup))

	results, err := repo.ListByYear(ctx, 2026)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Christmas Day", results[0].Name)
}
