package model

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is a generation job's lifecycle state.
type JobStatus string

const (
	JobQueued    JobStatus = "QUEUED"
	JobRunning   JobStatus = "RUNNING"
	JobSucceeded JobStatus = "SUCCEEDED"
	JobFailed    JobStatus = "FAILED"
)

// GenerationJob is the dispatcher's bookkeeping row for one async
// generation request.
type GenerationJob struct {
	BaseModel
	PeriodID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"period_id"`
	Status      JobStatus  `gorm:"type:varchar(16);not null;default:'QUEUED'" json:"status"`
	VersionID   *uuid.UUID `gorm:"type:uuid" json:"version_id,omitempty"`
	Error       string     `gorm:"type:text" json:"error,omitempty"`
	RequestedAt time.Time  `gorm:"not null" json:"requested_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (GenerationJob) TableName() string {
	return "generation_jobs"
}
