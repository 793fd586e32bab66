// Package testutil provides isolated database handles for repository and
// service tests.
package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/dfberenson/ob-resident-scheduler/internal/model"
	"github.com/dfberenson/ob-resident-scheduler/internal/repository"
)

// SetupTestDB opens a fresh in-memory SQLite database, migrates every model
// this service owns, and registers cleanup. Unlike the Postgres-backed
// suite this pattern is adapted from, there is no shared database to
// truncate between tests: each test gets its own in-memory instance, so
// isolation comes from that rather than a rolled-back transaction.
func SetupTestDB(t *testing.T) *repository.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&model.ResidentRecord{},
		&model.RequestRecord{},
		&model.TimeOffRecord{},
		&model.HolidayRecord{},
		&model.SchedulePeriod{},
		&model.ScheduleVersion{},
		&model.GenerationJob{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	db := &repository.DB{GORM: gormDB}

	t.Cleanup(func() {
		sqlDB, err := gormDB.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
