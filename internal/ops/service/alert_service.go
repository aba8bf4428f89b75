package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"github.com/premiertex/dyehouse/internal/ops/repository"
)

// EfficiencyThreshold is the running-machine efficiency below which the
// generator raises a warning. Machines at exactly 0 are skipped: a freshly
// assigned job reports 0 until its first reading, and alerting on it would
// page someone for a machine that just started.
const EfficiencyThreshold = 85

type AlertService struct {
	repo      *repository.AlertRepository
	inventory *repository.InventoryRepository
	machines  *repository.MachineRepository
}

func NewAlertService(repo *repository.AlertRepository, inventory *repository.InventoryRepository, machines *repository.MachineRepository) *AlertService {
	return &AlertService{repo: repo, inventory: inventory, machines: machines}
}

func (s *AlertService) List(params repository.AlertListParams) ([]entity.Alert, error) {
	return s.repo.List(params)
}

func (s *AlertService) Get(id string) (*entity.Alert, error) {
	return s.repo.GetByID(id)
}

type AlertCreateRequest struct {
	Type       string `json:"type" binding:"required,oneof=critical warning info"`
	Category   string `json:"category" binding:"required,oneof=inventory machine quality production maintenance"`
	Title      string `json:"title" binding:"required"`
	Message    string `json:"message" binding:"required"`
	Actionable bool   `json:"actionable"`
	RelatedID  string `json:"relatedId"`
}

func (s *AlertService) Create(req AlertCreateRequest) (*entity.Alert, error) {
	a := &entity.Alert{
		ID:         uuid.New().String(),
		Type:       req.Type,
		Category:   req.Category,
		Title:      req.Title,
		Message:    req.Message,
		Actionable: req.Actionable,
		RelatedID:  req.RelatedID,
	}
	if err := s.repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AlertService) MarkRead(id string) (*entity.Alert, error) {
	a, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	a.Read = true
	if err := s.repo.Save(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AlertService) Delete(id string) error {
	return s.repo.Delete(id)
}

// Generate scans inventory and machines for threshold breaches and inserts
// an alert for each cause that does not already have an unread one. The
// first store error aborts the run; alerts inserted before the error stay
// (best effort, not transactional), and re-running is safe since open causes
// are skipped. Two concurrent runs can race the existence check and both
// insert; that duplicate is accepted rather than guarded.
func (s *AlertService) Generate() ([]entity.Alert, error) {
	created := []entity.Alert{}

	lowStock, err := s.inventory.ListLowStock()
	if err != nil {
		return nil, err
	}
	for _, item := range lowStock {
		exists, err := s.repo.HasUnread(entity.AlertCatInventory, item.ID)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		alertType := entity.AlertWarning
		title := "Low Stock Level"
		if item.Status == entity.StockCritical {
			alertType = entity.AlertCritical
			title = "Critical Stock Level"
		}
		a := entity.Alert{
			ID:         uuid.New().String(),
			Type:       alertType,
			Category:   entity.AlertCatInventory,
			Title:      title,
			Message:    fmt.Sprintf("%s is at %d%% stock level (%v kg remaining)", item.Name, item.StockLevel, item.Stock),
			Actionable: true,
			RelatedID:  item.ID,
		}
		if err := s.repo.Create(&a); err != nil {
			return created, err
		}
		created = append(created, a)
	}

	machines, err := s.machines.List()
	if err != nil {
		return created, err
	}
	for _, m := range machines {
		if m.Status != entity.MachineRunning {
			continue
		}
		if m.Efficiency <= 0 || m.Efficiency >= EfficiencyThreshold {
			continue
		}
		exists, err := s.repo.HasUnread(entity.AlertCatMachine, m.ID)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		a := entity.Alert{
			ID:         uuid.New().String(),
			Type:       entity.AlertWarning,
			Category:   entity.AlertCatMachine,
			Title:      "Machine Efficiency Drop",
			Message:    fmt.Sprintf("%s efficiency dropped to %v%% - below threshold", m.Name, m.Efficiency),
			Actionable: true,
			RelatedID:  m.ID,
		}
		if err := s.repo.Create(&a); err != nil {
			return created, err
		}
		created = append(created, a)
	}

	return created, nil
}
