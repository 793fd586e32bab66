package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VersionStatus is a schedule version's publication state.
type VersionStatus string

const (
	VersionDraft     VersionStatus = "DRAFT"
	VersionPublished VersionStatus = "PUBLISHED"
)

// ScheduleVersion is one solve's output for a period, versioned so a period
// can be regenerated without destroying history. Assignments, Alerts,
// Fairness and UnmetRequests hold the JSON-serialized scheduler.GenerationOutput
// fields verbatim. ObjectiveNote is a free-text column; GenerateVersion
// does not fill it, so generated versions carry an empty note.
type ScheduleVersion struct {
	BaseModel
	PeriodID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"period_id"`
	Status        VersionStatus  `gorm:"type:varchar(16);not null;default:'DRAFT'" json:"status"`
	GeneratedAt   time.Time      `gorm:"not null" json:"generated_at"`
	Assignments   datatypes.JSON `gorm:"type:jsonb;not null" json:"assignments"`
	Alerts        datatypes.JSON `gorm:"type:jsonb;not null" json:"alerts"`
	Fairness      datatypes.JSON `gorm:"type:jsonb;not null" json:"fairness"`
	UnmetRequests datatypes.JSON `gorm:"type:jsonb;not null" json:"unmet_requests"`
	ObjectiveNote string         `gorm:"type:text" json:"objective_note"`
}

func (ScheduleVersion) TableName() string {
	return "schedule_versions"
}
