package model

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the approval lifecycle for a resident preference request.
// Only RequestApproved requests reach a solve.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestDenied   RequestStatus = "denied"
)

// RequestRecord is a resident's preference over a date window.
type RequestRecord struct {
	BaseModel
	ResidentID uuid.UUID     `gorm:"type:uuid;not null;index" json:"resident_id"`
	Kind       string        `gorm:"type:varchar(32);not null" json:"kind"`
	StartDate  time.Time     `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time     `gorm:"type:date;not null" json:"end_date"`
	Status     RequestStatus `gorm:"type:varchar(16);not null;default:'pending'" json:"status"`
}

func (RequestRecord) TableName() string {
	return "requests"
}
