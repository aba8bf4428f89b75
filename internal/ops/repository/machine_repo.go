package repository

import (
	"github.com/premiertex/dyehouse/internal/ops/entity"
	"gorm.io/gorm"
)

type MachineRepository struct {
	db *gorm.DB
}

func NewMachineRepository(db *gorm.DB) *MachineRepository {
	return &MachineRepository{db: db}
}

// List returns all machines ordered by their floor identifier.
func (r *MachineRepository) List() ([]entity.Machine, error) {
	var machines []entity.Machine
	err := r.db.Order("machine_id ASC").Find(&machines).Error
	return machines, err
}

func (r *MachineRepository) GetByID(id string) (*entity.Machine, error) {
	var m entity.Machine
	if err := r.db.Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MachineRepository) Create(m *entity.Machine) error {
	return r.db.Create(m).Error
}

func (r *MachineRepository) Save(m *entity.Machine) error {
	return r.db.Save(m).Error
}

func (r *MachineRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entity.Machine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
