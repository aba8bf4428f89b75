package repository

import "gorm.io/gorm"

// Repositories is the collection of data-access objects for the dashboard.
type Repositories struct {
	Machine    *MachineRepository
	Batch      *BatchRepository
	Schedule   *ScheduleRepository
	Inventory  *InventoryRepository
	Inspection *InspectionRepository
	Alert      *AlertRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Machine:    NewMachineRepository(db),
		Batch:      NewBatchRepository(db),
		Schedule:   NewScheduleRepository(db),
		Inventory:  NewInventoryRepository(db),
		Inspection: NewInspectionRepository(db),
		Alert:      NewAlertRepository(db),
	}
}
