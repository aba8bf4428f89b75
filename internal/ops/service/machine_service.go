package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"github.com/premiertex/dyehouse/internal/ops/repository"
)

type MachineService struct {
	repo *repository.MachineRepository
}

func NewMachineService(repo *repository.MachineRepository) *MachineService {
	return &MachineService{repo: repo}
}

func (s *MachineService) List() ([]entity.Machine, error) {
	return s.repo.List()
}

func (s *MachineService) Get(id string) (*entity.Machine, error) {
	return s.repo.GetByID(id)
}

func (s *MachineService) Stats() (MachineStats, error) {
	machines, err := s.repo.List()
	if err != nil {
		return MachineStats{}, err
	}
	return ComputeMachineStats(machines), nil
}

type MachineCreateRequest struct {
	MachineID  string  `json:"machineId" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Status     string  `json:"status" binding:"omitempty,oneof=running idle maintenance"`
	Party      string  `json:"party"`
	Color      string  `json:"color"`
	LotNo      string  `json:"lotNo"`
	Quantity   string  `json:"quantity"`
	Stage      string  `json:"stage"`
	Efficiency float64 `json:"efficiency" binding:"omitempty,gte=0,lte=100"`
	Runtime    string  `json:"runtime"`
}

func (s *MachineService) Create(req MachineCreateRequest) (*entity.Machine, error) {
	status := req.Status
	if status == "" {
		status = entity.MachineIdle
	}
	m := &entity.Machine{
		ID:         uuid.New().String(),
		MachineID:  req.MachineID,
		Name:       req.Name,
		Status:     status,
		Party:      req.Party,
		Color:      req.Color,
		LotNo:      req.LotNo,
		Quantity:   req.Quantity,
		Stage:      req.Stage,
		Efficiency: req.Efficiency,
		Runtime:    req.Runtime,
	}
	if err := s.repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

type MachineUpdateRequest struct {
	Name       *string  `json:"name"`
	Status     *string  `json:"status" binding:"omitempty,oneof=running idle maintenance"`
	Party      *string  `json:"party"`
	Color      *string  `json:"color"`
	LotNo      *string  `json:"lotNo"`
	Quantity   *string  `json:"quantity"`
	Stage      *string  `json:"stage"`
	Efficiency *float64 `json:"efficiency" binding:"omitempty,gte=0,lte=100"`
	Runtime    *string  `json:"runtime"`
}

func (s *MachineService) Update(id string, req MachineUpdateRequest) (*entity.Machine, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Status != nil {
		m.Status = *req.Status
	}
	if req.Party != nil {
		m.Party = *req.Party
	}
	if req.Color != nil {
		m.Color = *req.Color
	}
	if req.LotNo != nil {
		m.LotNo = *req.LotNo
	}
	if req.Quantity != nil {
		m.Quantity = *req.Quantity
	}
	if req.Stage != nil {
		m.Stage = *req.Stage
	}
	if req.Efficiency != nil {
		m.Efficiency = *req.Efficiency
	}
	if req.Runtime != nil {
		m.Runtime = *req.Runtime
	}
	if err := s.repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

type AssignJobRequest struct {
	Party    string `json:"party" binding:"required"`
	Color    string `json:"color" binding:"required"`
	LotNo    string `json:"lotNo" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
	Stage    string `json:"stage"`
}

// AssignJob moves the machine into the running state with the given job.
// There is no transition guard: re-assigning a running machine overwrites
// its current job.
func (s *MachineService) AssignJob(id string, req AssignJobRequest) (*entity.Machine, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	m.AssignJob(req.Party, req.Color, req.LotNo, req.Quantity, req.Stage, time.Now())
	if err := s.repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

// CompleteJob returns the machine to idle. Calling it on an idle machine
// re-applies the blank state and is harmless.
func (s *MachineService) CompleteJob(id string) (*entity.Machine, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	m.CompleteJob()
	if err := s.repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MachineService) Delete(id string) error {
	return s.repo.Delete(id)
}
