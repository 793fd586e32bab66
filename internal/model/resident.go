package model

// ResidentRecord is the persisted roster entry. Tier and OBMonthsCompleted
// feed the engine's eligibility rules verbatim; nothing else on the record
// is read by a solve.
type ResidentRecord struct {
	BaseModel
	Name              string `gorm:"type:varchar(255);not null" json:"name"`
	Tier              int    `gorm:"not null" json:"tier"`
	OBMonthsCompleted int    `gorm:"not null;default:0" json:"ob_months_completed"`
	Active            bool   `gorm:"not null;default:true" json:"active"`
}

func (ResidentRecord) TableName() string {
	return "residents"
}
