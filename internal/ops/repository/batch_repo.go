package repository

import (
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"gorm.io/gorm"
)

type BatchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

type BatchListParams struct {
	Status    string
	Party     string
	StartDate string
	EndDate   string
}

func (r *BatchRepository) List(params BatchListParams) ([]entity.Batch, error) {
	query := r.db.Model(&entity.Batch{})
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.Party != "" {
		query = query.Where("party = ?", params.Party)
	}
	if params.StartDate != "" {
		query = query.Where("date >= ?", params.StartDate)
	}
	if params.EndDate != "" {
		query = query.Where("date <= ?", params.EndDate)
	}
	var batches []entity.Batch
	err := query.Order("created_at DESC").Find(&batches).Error
	return batches, err
}

// ListAll returns the full collection for the statistics scan.
func (r *BatchRepository) ListAll() ([]entity.Batch, error) {
	var batches []entity.Batch
	err := r.db.Find(&batches).Error
	return batches, err
}

func (r *BatchRepository) GetByID(id string) (*entity.Batch, error) {
	var b entity.Batch
	if err := r.db.Where("id = ?", id).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BatchRepository) Create(b *entity.Batch) error {
	return r.db.Create(b).Error
}

func (r *BatchRepository) Save(b *entity.Batch) error {
	return r.db.Save(b).Error
}

func (r *BatchRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entity.Batch{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
