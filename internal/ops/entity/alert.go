package entity

import "time"

// Alert types
const (
	AlertCritical = "critical"
	AlertWarning  = "warning"
	AlertInfo     = "info"
)

// Alert categories
const (
	AlertCatInventory   = "inventory"
	AlertCatMachine     = "machine"
	AlertCatQuality     = "quality"
	AlertCatProduction  = "production"
	AlertCatMaintenance = "maintenance"
)

// Alert is a notification shown on the dashboard. RelatedID is an informal
// back-reference to the record that caused it, not an enforced relation.
type Alert struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	Type       string    `json:"type" gorm:"size:16;not null"`
	Category   string    `json:"category" gorm:"size:16;not null;index:idx_alerts_cause"`
	Title      string    `json:"title" gorm:"size:128;not null"`
	Message    string    `json:"message" gorm:"type:text;not null"`
	Read       bool      `json:"read" gorm:"not null;default:false"`
	Actionable bool      `json:"actionable" gorm:"not null;default:false"`
	RelatedID  string    `json:"relatedId" gorm:"size:64;index:idx_alerts_cause"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Alert) TableName() string {
	return "alerts"
}
