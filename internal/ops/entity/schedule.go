package entity

import "time"

// Schedule priority values
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Schedule status values
const (
	ScheduleScheduled  = "scheduled"
	ScheduleInProgress = "in-progress"
	ScheduleCompleted  = "completed"
	ScheduleCancelled  = "cancelled"
)

// Schedule is one planned production slot on the calendar.
type Schedule struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Date      string    `json:"date" gorm:"size:16;not null;index"`
	Time      string    `json:"time" gorm:"size:16;not null"`
	Machine   string    `json:"machine" gorm:"size:32;not null"`
	Party     string    `json:"party" gorm:"size:128;not null"`
	Color     string    `json:"color" gorm:"size:64;not null"`
	LotNo     string    `json:"lotNo" gorm:"size:64;not null"`
	Quantity  string    `json:"quantity" gorm:"size:32;not null"`
	Duration  string    `json:"duration" gorm:"size:32;not null"`
	Priority  string    `json:"priority" gorm:"size:16;not null;default:medium"`
	Status    string    `json:"status" gorm:"size:16;not null;default:scheduled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Schedule) TableName() string {
	return "schedules"
}
