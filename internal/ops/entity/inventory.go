package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"math"
	"time"

	"gorm.io/gorm"
)

// Inventory categories
const (
	CategoryDye      = "Dye"
	CategoryChemical = "Chemical"
)

// Stock tiers derived from the fill percentage.
const (
	StockOK       = "ok"
	StockLow      = "low"
	StockCritical = "critical"
)

var (
	ErrInvalidCapacity = errors.New("maxCapacity must be greater than zero")
	ErrNegativeStock   = errors.New("stock cannot be negative")
)

// WeeklyUsage records consumption per working day. The dyehouse runs a
// six-day week, Sunday through Friday.
type WeeklyUsage struct {
	Sun float64 `json:"sun"`
	Mon float64 `json:"mon"`
	Tue float64 `json:"tue"`
	Wed float64 `json:"wed"`
	Thu float64 `json:"thu"`
	Fri float64 `json:"fri"`
}

func (w WeeklyUsage) Value() (driver.Value, error) {
	return json.Marshal(w)
}

func (w *WeeklyUsage) Scan(value interface{}) error {
	if value == nil {
		*w = WeeklyUsage{}
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
	return json.Unmarshal(bytes, w)
}

// Set records the usage for one weekday. Returns false for an unknown day.
func (w *WeeklyUsage) Set(day string, amount float64) bool {
	switch day {
	case "sun":
		w.Sun = amount
	case "mon":
		w.Mon = amount
	case "tue":
		w.Tue = amount
	case "wed":
		w.Wed = amount
	case "thu":
		w.Thu = amount
	case "fri":
		w.Fri = amount
	default:
		return false
	}
	return true
}

// InventoryItem is a dye or chemical in stock. StockLevel and Status are
// derived from Stock and MaxCapacity on every save; client-supplied values
// for either are discarded.
type InventoryItem struct {
	ID           string      `json:"id" gorm:"primaryKey;size:36"`
	Name         string      `json:"name" gorm:"size:128;not null;uniqueIndex"`
	Category     string      `json:"category" gorm:"size:16;not null"`
	Stock        float64     `json:"stock" gorm:"not null"`
	MinThreshold float64     `json:"minThreshold" gorm:"not null;default:100"`
	MaxCapacity  float64     `json:"maxCapacity" gorm:"not null;default:500"`
	WeeklyUsage  WeeklyUsage `json:"weeklyUsage" gorm:"type:jsonb"`
	Status       string      `json:"status" gorm:"size:16;not null;default:ok"`
	StockLevel   int         `json:"stockLevel" gorm:"not null"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// Recalculate derives StockLevel and Status from Stock and MaxCapacity.
func (i *InventoryItem) Recalculate() error {
	if i.MaxCapacity <= 0 {
		return ErrInvalidCapacity
	}
	if i.Stock < 0 {
		return ErrNegativeStock
	}
	i.StockLevel = int(math.Round(i.Stock / i.MaxCapacity * 100))
	switch {
	case i.StockLevel <= 20:
		i.Status = StockCritical
	case i.StockLevel <= 50:
		i.Status = StockLow
	default:
		i.Status = StockOK
	}
	return nil
}

// BeforeSave keeps the derived fields consistent on every write path.
func (i *InventoryItem) BeforeSave(tx *gorm.DB) error {
	return i.Recalculate()
}
