package service

import (
	"github.com/google/uuid"
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"github.com/premiertex/dyehouse/internal/ops/repository"
)

type InspectionService struct {
	repo *repository.InspectionRepository
}

func NewInspectionService(repo *repository.InspectionRepository) *InspectionService {
	return &InspectionService{repo: repo}
}

func (s *InspectionService) List(status string) ([]entity.Inspection, error) {
	return s.repo.List(status)
}

func (s *InspectionService) Get(id string) (*entity.Inspection, error) {
	return s.repo.GetByID(id)
}

func (s *InspectionService) Stats() (InspectionStats, error) {
	inspections, err := s.repo.ListAll()
	if err != nil {
		return InspectionStats{}, err
	}
	return ComputeInspectionStats(inspections), nil
}

type InspectionCreateRequest struct {
	Date   string   `json:"date" binding:"required"`
	Color  string   `json:"color" binding:"required"`
	Client string   `json:"client" binding:"required"`
	LotNo  string   `json:"lotNo" binding:"required"`
	DeltaE *float64 `json:"deltaE" binding:"omitempty,gte=0"`
	Status string   `json:"status" binding:"omitempty,oneof=approved pending rejected"`
	Notes  string   `json:"notes"`
}

func (s *InspectionService) Create(req InspectionCreateRequest) (*entity.Inspection, error) {
	status := req.Status
	if status == "" {
		status = entity.InspectionPending
	}
	i := &entity.Inspection{
		ID:     uuid.New().String(),
		Date:   req.Date,
		Color:  req.Color,
		Client: req.Client,
		LotNo:  req.LotNo,
		DeltaE: req.DeltaE,
		Status: status,
		Notes:  req.Notes,
	}
	if err := s.repo.Create(i); err != nil {
		return nil, err
	}
	return i, nil
}

type InspectionUpdateRequest struct {
	Date   *string  `json:"date"`
	Color  *string  `json:"color"`
	Client *string  `json:"client"`
	LotNo  *string  `json:"lotNo"`
	DeltaE *float64 `json:"deltaE" binding:"omitempty,gte=0"`
	Status *string  `json:"status" binding:"omitempty,oneof=approved pending rejected"`
	Notes  *string  `json:"notes"`
}

func (s *InspectionService) Update(id string, req InspectionUpdateRequest) (*entity.Inspection, error) {
	i, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		i.Date = *req.Date
	}
	if req.Color != nil {
		i.Color = *req.Color
	}
	if req.Client != nil {
		i.Client = *req.Client
	}
	if req.LotNo != nil {
		i.LotNo = *req.LotNo
	}
	if req.DeltaE != nil {
		i.DeltaE = req.DeltaE
	}
	if req.Status != nil {
		i.Status = *req.Status
	}
	if req.Notes != nil {
		i.Notes = *req.Notes
	}
	if err := s.repo.Save(i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *InspectionService) Delete(id string) error {
	return s.repo.Delete(id)
}
