package repository

import (
	"laporkerja-backend/internal/model"

	"gorm.io/gorm"
)

type JabatanRepository interface {
	Create(jabatan *model.Jabatan) error
	GetByID(id string) (*model.Jabatan, error)
	GetAll(search string, parent string) ([]model.Jabatan, error)
	GetByParent(parentID string) ([]model.Jabatan, error)
	GetByParentIn(parentIDs []string) ([]model.Jabatan, error)
	Update(jabatan *model.Jabatan) error
}

type jabatanRepository struct {
	db *gorm.DB
}

func NewJabatanRepository(db *gorm.DB) JabatanRepository {
	return &jabatanRepository{db}
}

func (r *jabatanRepository) Create(jabatan *model.Jabatan) error {
	return r.db.Create(jabatan).Error
}

func (r *jabatanRepository) GetByID(id string) (*model.Jabatan, error) {
	var jabatan model.Jabatan
	err := r.db.Where("id_jabatan = ?", id).First(&jabatan).Error
	if err != nil {
		return nil, err
	}
	return &jabatan, nil
}

func (r *jabatanRepository) GetAll(search string, parent string) ([]model.Jabatan, error) {
	var list []model.Jabatan
	query := r.db.Preload("ParentJabatan").Order("level ASC")
	if parent != "" {
		query = query.Where("parent = ?", parent)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("jabatan LIKE ? OR divisi LIKE ?", like, like)
	}
	err := query.Find(&list).Error
	return list, err
}

// GetByParent mengambil jabatan anak langsung dari satu parent. Dipakai
// per-level oleh traversal pohon organisasi.
func (r *jabatanRepository) GetByParent(parentID string) ([]model.Jabatan, error) {
	var list []model.Jabatan
	err := r.db.Where("parent = ?", parentID).Find(&list).Error
	return list, err
}

func (r *jabatanRepository) GetByParentIn(parentIDs []string) ([]model.Jabatan, error) {
	var list []model.Jabatan
	if len(parentIDs) == 0 {
		return list, nil
	}
	err := r.db.Where("parent IN ?", parentIDs).Find(&list).Error
	return list, err
}

func (r *jabatanRepository) Update(jabatan *model.Jabatan) error {
	return r.db.Save(jabatan).Error
}
