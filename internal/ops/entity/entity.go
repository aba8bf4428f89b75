package entity

import "gorm.io/gorm"

// AutoMigrate creates or updates all dashboard tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Machine{},
		&Batch{},
		&Schedule{},
		&InventoryItem{},
		&Inspection{},
		&Alert{},
	)
}
