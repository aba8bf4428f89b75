package entity

import "time"

// Inspection status values
const (
	InspectionApproved = "approved"
	InspectionPending  = "pending"
	InspectionRejected = "rejected"
)

// Inspection is a colorimetric check of a dyed lot against its target shade.
// DeltaE is nil until a measurement is taken.
type Inspection struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Date      string    `json:"date" gorm:"size:16;not null"`
	Color     string    `json:"color" gorm:"size:64;not null"`
	Client    string    `json:"client" gorm:"size:128;not null"`
	LotNo     string    `json:"lotNo" gorm:"size:64;not null"`
	DeltaE    *float64  `json:"deltaE"`
	Status    string    `json:"status" gorm:"size:16;not null;default:pending"`
	Notes     string    `json:"notes" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Inspection) TableName() string {
	return "inspections"
}
