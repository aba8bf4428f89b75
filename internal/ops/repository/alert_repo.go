package repository

import (
	"errors"

	"github.com/premiertex/dyehouse/internal/ops/entity"
	"gorm.io/gorm"
)

type AlertRepository struct {
	db *gorm.DB
}

func NewAlertRepository(db *gorm.DB) *AlertRepository {
	return &AlertRepository{db: db}
}

type AlertListParams struct {
	Type     string
	Category string
	Read     *bool
}

func (r *AlertRepository) List(params AlertListParams) ([]entity.Alert, error) {
	query := r.db.Model(&entity.Alert{})
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.Read != nil {
		query = query.Where("read = ?", *params.Read)
	}
	var alerts []entity.Alert
	err := query.Order("created_at DESC").Find(&alerts).Error
	return alerts, err
}

func (r *AlertRepository) GetByID(id string) (*entity.Alert, error) {
	var a entity.Alert
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// HasUnread reports whether an open alert already exists for the given cause.
// The alert generator uses this to avoid stacking duplicates.
func (r *AlertRepository) HasUnread(category, relatedID string) (bool, error) {
	var a entity.Alert
	err := r.db.Where("category = ? AND related_id = ? AND read = ?", category, relatedID, false).
		First(&a).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *AlertRepository) Create(a *entity.Alert) error {
	return r.db.Create(a).Error
}

func (r *AlertRepository) Save(a *entity.Alert) error {
	return r.db.Save(a).Error
}

func (r *AlertRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entity.Alert{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
