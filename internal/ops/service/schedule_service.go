package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"github.com/premiertex/dyehouse/internal/ops/repository"
)

type ScheduleService struct {
	repo *repository.ScheduleRepository
}

func NewScheduleService(repo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) List(params repository.ScheduleListParams) ([]entity.Schedule, error) {
	return s.repo.List(params)
}

func (s *ScheduleService) Get(id string) (*entity.Schedule, error) {
	return s.repo.GetByID(id)
}

// WeekView returns the schedules for the seven consecutive calendar days
// starting at the given date.
func (s *ScheduleService) WeekView(start time.Time) ([]entity.Schedule, error) {
	dates := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return s.repo.ListByDates(dates)
}

type ScheduleCreateRequest struct {
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
	Machine  string `json:"machine" binding:"required"`
	Party    string `json:"party" binding:"required"`
	Color    string `json:"color" binding:"required"`
	LotNo    string `json:"lotNo" binding:"required"`
	Quantity string `json:"quantity" binding:"required"`
	Duration string `json:"duration" binding:"required"`
	Priority string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Status   string `json:"status" binding:"omitempty,oneof=scheduled in-progress completed cancelled"`
}

func (s *ScheduleService) Create(req ScheduleCreateRequest) (*entity.Schedule, error) {
	priority := req.Priority
	if priority == "" {
		priority = entity.PriorityMedium
	}
	status := req.Status
	if status == "" {
		status = entity.ScheduleScheduled
	}
	sched := &entity.Schedule{
		ID:       uuid.New().String(),
		Date:     req.Date,
		Time:     req.Time,
		Machine:  req.Machine,
		Party:    req.Party,
		Color:    req.Color,
		LotNo:    req.LotNo,
		Quantity: req.Quantity,
		Duration: req.Duration,
		Priority: priority,
		Status:   status,
	}
	if err := s.repo.Create(sched); err != nil {
		return nil, err
	}
	return sched, nil
}

type ScheduleUpdateRequest struct {
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Machine  *string `json:"machine"`
	Party    *string `json:"party"`
	Color    *string `json:"color"`
	LotNo    *string `json:"lotNo"`
	Quantity *string `json:"quantity"`
	Duration *string `json:"duration"`
	Priority *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	Status   *string `json:"status" binding:"omitempty,oneof=scheduled in-progress completed cancelled"`
}

func (s *ScheduleService) Update(id string, req ScheduleUpdateRequest) (*entity.Schedule, error) {
	sched, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Date != nil {
		sched.Date = *req.Date
	}
	if req.Time != nil {
		sched.Time = *req.Time
	}
	if req.Machine != nil {
		sched.Machine = *req.Machine
	}
	if req.Party != nil {
		sched.Party = *req.Party
	}
	if req.Color != nil {
		sched.Color = *req.Color
	}
	if req.LotNo != nil {
		sched.LotNo = *req.LotNo
	}
	if req.Quantity != nil {
		sched.Quantity = *req.Quantity
	}
	if req.Duration != nil {
		sched.Duration = *req.Duration
	}
	if req.Priority != nil {
		sched.Priority = *req.Priority
	}
	if req.Status != nil {
		sched.Status = *req.Status
	}
	if err := s.repo.Save(sched); err != nil {
		return nil, err
	}
	return sched, nil
}

func (s *ScheduleService) Delete(id string) error {
	return s.repo.Delete(id)
}
