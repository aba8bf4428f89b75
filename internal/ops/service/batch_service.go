package service

import (
	"github.com/google/uuid"
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"github.com/premiertex/dyehouse/internal/ops/repository"
)

type BatchService struct {
	repo *repository.BatchRepository
}

func NewBatchService(repo *repository.BatchRepository) *BatchService {
	return &BatchService{repo: repo}
}

func (s *BatchService) List(params repository.BatchListParams) ([]entity.Batch, error) {
	return s.repo.List(params)
}

func (s *BatchService) Get(id string) (*entity.Batch, error) {
	return s.repo.GetByID(id)
}

func (s *BatchService) Stats() (BatchStats, error) {
	batches, err := s.repo.ListAll()
	if err != nil {
		return BatchStats{}, err
	}
	return ComputeBatchStats(batches), nil
}

type BatchCreateRequest struct {
	BatchID    string           `json:"batchId" binding:"required"`
	Date       string           `json:"date" binding:"required"`
	Machine    string           `json:"machine" binding:"required"`
	Party      string           `json:"party" binding:"required"`
	Color      string           `json:"color" binding:"required"`
	LotNo      string           `json:"lotNo" binding:"required"`
	Quantity   string           `json:"quantity" binding:"required"`
	Duration   string           `json:"duration" binding:"required"`
	Status     string           `json:"status" binding:"omitempty,oneof=completed rejected in-progress"`
	Efficiency float64          `json:"efficiency" binding:"omitempty,gte=0,lte=100"`
	DeltaE     *float64         `json:"deltaE" binding:"omitempty,gte=0"`
	Operator   string           `json:"operator" binding:"required"`
	Recipe     entity.Recipe    `json:"recipe"`
	Stages     entity.StageList `json:"stages"`
}

func (s *BatchService) Create(req BatchCreateRequest) (*entity.Batch, error) {
	status := req.Status
	if status == "" {
		status = entity.BatchInProgress
	}
	b := &entity.Batch{
		ID:         uuid.New().String(),
		BatchID:    req.BatchID,
		Date:       req.Date,
		Machine:    req.Machine,
		Party:      req.Party,
		Color:      req.Color,
		LotNo:      req.LotNo,
		Quantity:   req.Quantity,
		Duration:   req.Duration,
		Status:     status,
		Efficiency: req.Efficiency,
		DeltaE:     req.DeltaE,
		Operator:   req.Operator,
		Recipe:     req.Recipe,
		Stages:     req.Stages,
	}
	if err := s.repo.Create(b); err != nil {
		return nil, err
	}
	return b, nil
}

type BatchUpdateRequest struct {
	Date       *string           `json:"date"`
	Machine    *string           `json:"machine"`
	Party      *string           `json:"party"`
	Color      *string           `json:"color"`
	LotNo      *string           `json:"lotNo"`
	Quantity   *string           `json:"quantity"`
	Duration   *string           `json:"duration"`
	Status     *string           `json:"status" binding:"omitempty,oneof=completed rejected in-progress"`
	Efficiency *float64          `json:"efficiency" binding:"omitempty,gte=0,lte=100"`
	DeltaE     *float64          `json:"deltaE" binding:"omitempty,gte=0"`
	Operator   *string           `json:"operator"`
	Recipe     *entity.Recipe    `json:"recipe"`
	Stages     *entity.StageList `json:"stages"`
}

func (s *BatchService) Update(id string, req BatchUpdateRequest) (*entity.Batch, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		b.Date = *req.Date
	}
	if req.Machine != nil {
		b.Machine = *req.Machine
	}
	if req.Party != nil {
		b.Party = *req.Party
	}
	if req.Color != nil {
		b.Color = *req.Color
	}
	if req.LotNo != nil {
		b.LotNo = *req.LotNo
	}
	if req.Quantity != nil {
		b.Quantity = *req.Quantity
	}
	if req.Duration != nil {
		b.Duration = *req.Duration
	}
	if req.Status != nil {
		b.Status = *req.Status
	}
	if req.Efficiency != nil {
		b.Efficiency = *req.Efficiency
	}
	if req.DeltaE != nil {
		b.DeltaE = req.DeltaE
	}
	if req.Operator != nil {
		b.Operator = *req.Operator
	}
	if req.Recipe != nil {
		b.Recipe = *req.Recipe
	}
	if req.Stages != nil {
		b.Stages = *req.Stages
	}
	if err := s.repo.Save(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BatchService) Delete(id string) error {
	return s.repo.Delete(id)
}
