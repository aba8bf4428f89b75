package repository

import (
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

type ScheduleListParams struct {
	Date   string
	Status string
}

func (r *ScheduleRepository) List(params ScheduleListParams) ([]entity.Schedule, error) {
	query := r.db.Model(&entity.Schedule{})
	if params.Date != "" {
		query = query.Where("date = ?", params.Date)
	}
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	var schedules []entity.Schedule
	err := query.Order("date ASC, time ASC").Find(&schedules).Error
	return schedules, err
}

// ListByDates returns schedules falling on any of the given calendar dates,
// used by the week view.
func (r *ScheduleRepository) ListByDates(dates []string) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := r.db.Where("date IN ?", dates).
		Order("date ASC, time ASC").Find(&schedules).Error
	return schedules, err
}

func (r *ScheduleRepository) GetByID(id string) (*entity.Schedule, error) {
	var s entity.Schedule
	if err := r.db.Where("id = ?", id).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScheduleRepository) Create(s *entity.Schedule) error {
	return r.db.Create(s).Error
}

func (r *ScheduleRepository) Save(s *entity.Schedule) error {
	return r.db.Save(s).Error
}

func (r *ScheduleRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entity.Schedule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
