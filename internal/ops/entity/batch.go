package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// Batch status values
const (
	BatchCompleted  = "completed"
	BatchRejected   = "rejected"
	BatchInProgress = "in-progress"
)

// RecipeItem is one dye or chemical dosage in a batch recipe.
type RecipeItem struct {
	Name string `json:"name"`
	Qty  string `json:"qty"`
}

// Recipe holds the dyes and chemicals used for a batch.
type Recipe struct {
	Dyes      []RecipeItem `json:"dyes"`
	Chemicals []RecipeItem `json:"chemicals"`
}

func (r Recipe) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *Recipe) Scan(value interface{}) error {
	if value == nil {
		*r = Recipe{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, r)
}

// Stage is one named step of the dyeing process.
type Stage struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Temp     string `json:"temp"`
}

// StageList is the ordered process stages of a batch.
type StageList []Stage

func (s StageList) Value() (driver.Value, error) {
	if s == nil {
		s = StageList{}
	}
	return json.Marshal(s)
}

func (s *StageList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, ok := value.(string); ok {
			bytes = []byte(str)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, s)
}

// Batch is a completed or in-flight dyeing run.
type Batch struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	BatchID    string    `json:"batchId" gorm:"size:32;not null;uniqueIndex"`
	Date       string    `json:"date" gorm:"size:16;not null"`
	Machine    string    `json:"machine" gorm:"size:32;not null"`
	Party      string    `json:"party" gorm:"size:128;not null"`
	Color      string    `json:"color" gorm:"size:64;not null"`
	LotNo      string    `json:"lotNo" gorm:"size:64;not null"`
	Quantity   string    `json:"quantity" gorm:"size:32;not null"`
	Duration   string    `json:"duration" gorm:"size:32;not null"`
	Status     string    `json:"status" gorm:"size:16;not null;default:in-progress"`
	Efficiency float64   `json:"efficiency" gorm:"not null;default:0"`
	DeltaE     *float64  `json:"deltaE"`
	Operator   string    `json:"operator" gorm:"size:128;not null"`
	Recipe     Recipe    `json:"recipe" gorm:"type:jsonb"`
	Stages     StageList `json:"stages" gorm:"type:jsonb"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (Batch) TableName() string {
	return "batches"
}
