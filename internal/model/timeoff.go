package model

import (
	"time"

	"github.com/google/uuid"
)

// TimeOffStatus mirrors RequestStatus; only TimeOffApproved blocks reach a
// solve.
type TimeOffStatus string

const (
	TimeOffPending  TimeOffStatus = "pending"
	TimeOffApproved TimeOffStatus = "approved"
	TimeOffDenied   TimeOffStatus = "denied"
)

// TimeOffRecord is an approved (or pending) block of days a resident is
// unavailable for a scheduled shift.
type TimeOffRecord struct {
	BaseModel
	ResidentID uuid.UUID     `gorm:"type:uuid;not null;index" json:"resident_id"`
	StartDate  time.Time     `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time     `gorm:"type:date;not null" json:"end_date"`
	BlockType  string        `gorm:"type:varchar(32);not null;default:'BT_DAY'" json:"block_type"`
	Status     TimeOffStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
}

func (TimeOffRecord) TableName() string {
	return "time_off_blocks"
}
