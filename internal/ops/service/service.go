package service

import "github.com/premiertex/dyehouse/internal/ops/repository"

// Services is the collection of business services for the dashboard.
type Services struct {
	Machine    *MachineService
	Batch      *BatchService
	Schedule   *ScheduleService
	Inventory  *InventoryService
	Inspection *InspectionService
	Alert      *AlertService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Machine:    NewMachineService(repos.Machine),
		Batch:      NewBatchService(repos.Batch),
		Schedule:   NewScheduleService(repos.Schedule),
		Inventory:  NewInventoryService(repos.Inventory),
		Inspection: NewInspectionService(repos.Inspection),
		Alert:      NewAlertService(repos.Alert, repos.Inventory, repos.Machine),
	}
}
