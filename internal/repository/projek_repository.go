package repository

import (
	"laporkerja-backend/internal/model"

	"gorm.io/gorm"
)

type ProjekRepository interface {
	Create(projek *model.Projek) error
	GetByID(id string) (*model.Projek, error)
	GetAll(search string) ([]model.Projek, error)
	Update(projek *model.Projek) error
	SoftDelete(id string) error
}

type projekRepository struct {
	db *gorm.DB
}

func NewProjekRepository(db *gorm.DB) ProjekRepository {
	return &projekRepository{db}
}

func (r *projekRepository) Create(projek *model.Projek) error {
	return r.db.Create(projek).Error
}

func (r *projekRepository) GetByID(id string) (*model.Projek, error) {
	var projek model.Projek
	err := r.db.Where("id_projek = ? AND status_projek <> 0", id).First(&projek).Error
	if err != nil {
		return nil, err
	}
	return &projek, nil
}

func (r *projekRepository) GetAll(search string) ([]model.Projek, error) {
	list := []model.Projek{}
	query := r.db.Where("status_projek <> 0")
	if search != "" {
		query = query.Where("projek LIKE ?", "%"+search+"%")
	}
	err := query.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *projekRepository) Update(projek *model.Projek) error {
	return r.db.Save(projek).Error
}

func (r *projekRepository) SoftDelete(id string) error {
	return r.db.Model(&model.Projek{}).
		Where("id_projek = ?", id).
		Update("status_projek", model.StatusNonaktif).Error
}
