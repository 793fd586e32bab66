package model

import (
	"time"

	"gorm.io/datatypes"
)

// SchedulePeriod is one planning horizon, typically a calendar month.
// Constraints, when set, is a JSON-serialized partial override of
// scheduler.Constraints applied only to solves of this period; a nil/empty
// value means the engine's defaults apply unmodified.
type SchedulePeriod struct {
	BaseModel
	Label       string         `gorm:"type:varchar(255);not null" json:"label"`
	StartDate   time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time      `gorm:"type:date;not null" json:"end_date"`
	Constraints datatypes.JSON `gorm:"type:jsonb" json:"constraints,omitempty"`
}

func (SchedulePeriod) TableName() string {
	return "schedule_periods"
}
