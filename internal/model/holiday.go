package model

import "time"

// HolidayRecord is one hospital-flagged holiday. Only flagged holidays are
// ever handed to a solve; the full generated US federal calendar from
// internal/holiday is a candidate list the holiday service writes rows
// from, not a source the engine reads directly.
type HolidayRecord struct {
	BaseModel
	Date         time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Jurisdiction string    `gorm:"type:varchar(32)" json:"jurisdiction,omitempty"`
}

func (HolidayRecord) TableName() string {
	return "holidays"
}
