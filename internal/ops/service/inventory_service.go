package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"github.com/premiertex/dyehouse/internal/ops/repository"
)

type InventoryService struct {
	repo *repository.InventoryRepository
}

func NewInventoryService(repo *repository.InventoryRepository) *InventoryService {
	return &InventoryService{repo: repo}
}

func (s *InventoryService) List(category string) ([]entity.InventoryItem, error) {
	return s.repo.List(category)
}

func (s *InventoryService) LowStock() ([]entity.InventoryItem, error) {
	return s.repo.ListLowStock()
}

func (s *InventoryService) Get(id string) (*entity.InventoryItem, error) {
	return s.repo.GetByID(id)
}

type InventoryCreateRequest struct {
	Name         string              `json:"name" binding:"required"`
	Category     string              `json:"category" binding:"required,oneof=Dye Chemical"`
	Stock        float64             `json:"stock" binding:"gte=0"`
	MinThreshold *float64            `json:"minThreshold"`
	MaxCapacity  *float64            `json:"maxCapacity" binding:"omitempty,gt=0"`
	WeeklyUsage  *entity.WeeklyUsage `json:"weeklyUsage"`
}

func (s *InventoryService) Create(req InventoryCreateRequest) (*entity.InventoryItem, error) {
	item := &entity.InventoryItem{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Category:     req.Category,
		Stock:        req.Stock,
		MinThreshold: 100,
		MaxCapacity:  500,
	}
	if req.MinThreshold != nil {
		item.MinThreshold = *req.MinThreshold
	}
	if req.MaxCapacity != nil {
		item.MaxCapacity = *req.MaxCapacity
	}
	if req.WeeklyUsage != nil {
		item.WeeklyUsage = *req.WeeklyUsage
	}
	// StockLevel and Status are derived in the BeforeSave hook.
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

type InventoryUpdateRequest struct {
	Name         *string             `json:"name"`
	Category     *string             `json:"category" binding:"omitempty,oneof=Dye Chemical"`
	Stock        *float64            `json:"stock" binding:"omitempty,gte=0"`
	MinThreshold *float64            `json:"minThreshold"`
	MaxCapacity  *float64            `json:"maxCapacity" binding:"omitempty,gt=0"`
	WeeklyUsage  *entity.WeeklyUsage `json:"weeklyUsage"`
}

// Update applies the client-settable fields and saves, which re-derives
// StockLevel and Status. Client-supplied values for the derived fields are
// never accepted.
func (s *InventoryService) Update(id string, req InventoryUpdateRequest) (*entity.InventoryItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Stock != nil {
		item.Stock = *req.Stock
	}
	if req.MinThreshold != nil {
		item.MinThreshold = *req.MinThreshold
	}
	if req.MaxCapacity != nil {
		item.MaxCapacity = *req.MaxCapacity
	}
	if req.WeeklyUsage != nil {
		item.WeeklyUsage = *req.WeeklyUsage
	}
	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

type UsageRequest struct {
	Day    string  `json:"day" binding:"required"`
	Amount float64 `json:"amount" binding:"gte=0"`
}

// RecordUsage records one weekday's consumption and decrements stock by the
// same amount. Drawing more than is in stock fails validation on save.
func (s *InventoryService) RecordUsage(id string, req UsageRequest) (*entity.InventoryItem, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !item.WeeklyUsage.Set(req.Day, req.Amount) {
		return nil, fmt.Errorf("invalid day %q", req.Day)
	}
	item.Stock -= req.Amount
	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *InventoryService) Delete(id string) error {
	return s.repo.Delete(id)
}
