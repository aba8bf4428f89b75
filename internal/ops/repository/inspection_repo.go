package repository

import (
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"gorm.io/gorm"
)

type InspectionRepository struct {
	db *gorm.DB
}

func NewInspectionRepository(db *gorm.DB) *InspectionRepository {
	return &InspectionRepository{db: db}
}

func (r *InspectionRepository) List(status string) ([]entity.Inspection, error) {
	query := r.db.Model(&entity.Inspection{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var inspections []entity.Inspection
	err := query.Order("created_at DESC").Find(&inspections).Error
	return inspections, err
}

// ListAll returns the full collection for the statistics scan.
func (r *InspectionRepository) ListAll() ([]entity.Inspection, error) {
	var inspections []entity.Inspection
	err := r.db.Find(&inspections).Error
	return inspections, err
}

func (r *InspectionRepository) GetByID(id string) (*entity.Inspection, error) {
	var i entity.Inspection
	if err := r.db.Where("id = ?", id).First(&i).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *InspectionRepository) Create(i *entity.Inspection) error {
	return r.db.Create(i).Error
}

func (r *InspectionRepository) Save(i *entity.Inspection) error {
	return r.db.Save(i).Error
}

func (r *InspectionRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entity.Inspection{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
