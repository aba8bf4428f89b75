package repository

import (
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) List(category string) ([]entity.InventoryItem, error) {
	query := r.db.Model(&entity.InventoryItem{})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	var items []entity.InventoryItem
	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

// ListLowStock returns items in the low or critical tier, emptiest first.
func (r *InventoryRepository) ListLowStock() ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := r.db.Where("status IN ?", []string{entity.StockLow, entity.StockCritical}).
		Order("stock_level ASC").Find(&items).Error
	return items, err
}

func (r *InventoryRepository) GetByID(id string) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	if err := r.db.Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *InventoryRepository) Create(item *entity.InventoryItem) error {
	return r.db.Create(item).Error
}

func (r *InventoryRepository) Save(item *entity.InventoryItem) error {
	return r.db.Save(item).Error
}

func (r *InventoryRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entity.InventoryItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
