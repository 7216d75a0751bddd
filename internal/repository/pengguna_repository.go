package repository

import (
	"laporkerja-backend/internal/model"

	"gorm.io/gorm"
)

type PenggunaRepository interface {
	Create(pengguna *model.Pengguna) error
	GetByID(id string) (*model.Pengguna, error)
	GetByEmail(email string) (*model.Pengguna, error)
	GetAll(search string) ([]model.Pengguna, error)
	Update(pengguna *model.Pengguna) error
	SoftDelete(id string) error

	// Mode bawahan: berdasarkan himpunan jabatan (subtree penuh) atau
	// berdasarkan parent jabatan (anak langsung). Hanya pengguna aktif.
	GetAktifByJabatanIDs(jabatanIDs []string) ([]model.Pengguna, error)
	GetAktifByJabatanParent(parentID string) ([]model.Pengguna, error)
	GetByJabatanID(jabatanID string) ([]model.Pengguna, error)
}

type penggunaRepository struct {
	db *gorm.DB
}

func NewPenggunaRepository(db *gorm.DB) PenggunaRepository {
	return &penggunaRepository{db}
}

func (r *penggunaRepository) Create(pengguna *model.Pengguna) error {
	return r.db.Create(pengguna).Error
}

func (r *penggunaRepository) GetByID(id string) (*model.Pengguna, error) {
	var pengguna model.Pengguna
	err := r.db.Preload("Jabatan").Where("id_pengguna = ?", id).First(&pengguna).Error
	if err != nil {
		return nil, err
	}
	return &pengguna, nil
}

func (r *penggunaRepository) GetByEmail(email string) (*model.Pengguna, error) {
	var pengguna model.Pengguna
	err := r.db.Preload("Jabatan").
		Where("email = ? AND status_pengguna <> ?", email, model.StatusNonaktif).
		First(&pengguna).Error
	if err != nil {
		return nil, err
	}
	return &pengguna, nil
}

func (r *penggunaRepository) GetAll(search string) ([]model.Pengguna, error) {
	var list []model.Pengguna
	query := r.db.Preload("Jabatan").Where("status_pengguna <> ?", model.StatusNonaktif)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("nama LIKE ? OR email LIKE ?", like, like)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *penggunaRepository) Update(pengguna *model.Pengguna) error {
	return r.db.Save(pengguna).Error
}

func (r *penggunaRepository) SoftDelete(id string) error {
	return r.db.Model(&model.Pengguna{}).
		Where("id_pengguna = ?", id).
		Update("status_pengguna", model.StatusNonaktif).Error
}

func (r *penggunaRepository) GetAktifByJabatanIDs(jabatanIDs []string) ([]model.Pengguna, error) {
	list := []model.Pengguna{}
	if len(jabatanIDs) == 0 {
		return list, nil
	}
	err := r.db.Preload("Jabatan").
		Where("id_jabatan IN ? AND status_pengguna <> ?", jabatanIDs, model.StatusNonaktif).
		Find(&list).Error
	return list, err
}

func (r *penggunaRepository) GetAktifByJabatanParent(parentID string) ([]model.Pengguna, error) {
	list := []model.Pengguna{}
	err := r.db.Preload("Jabatan").
		Joins("JOIN jabatan ON jabatan.id_jabatan = pengguna.id_jabatan").
		Where("jabatan.parent = ? AND pengguna.status_pengguna <> ?", parentID, model.StatusNonaktif).
		Find(&list).Error
	return list, err
}

func (r *penggunaRepository) GetByJabatanID(jabatanID string) ([]model.Pengguna, error) {
	var list []model.Pengguna
	err := r.db.Where("id_jabatan = ?", jabatanID).Find(&list).Error
	return list, err
}
