package repository

import (
	"laporkerja-backend/internal/model"

	"gorm.io/gorm"
)

type KomentarRepository interface {
	Create(komentar *model.Komentar) error
	GetByLaporan(laporanID string) ([]model.Komentar, error)
	SoftDelete(id string) error
}

type komentarRepository struct {
	db *gorm.DB
}

func NewKomentarRepository(db *gorm.DB) KomentarRepository {
	return &komentarRepository{db}
}

func (r *komentarRepository) Create(komentar *model.Komentar) error {
	return r.db.Create(komentar).Error
}

func (r *komentarRepository) GetByLaporan(laporanID string) ([]model.Komentar, error) {
	list := []model.Komentar{}
	err := r.db.Preload("Pengguna").
		Where("id_laporan = ? AND status_komentar <> 0", laporanID).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *komentarRepository) SoftDelete(id string) error {
	return r.db.Model(&model.Komentar{}).
		Where("id_komentar = ?", id).
		Update("status_komentar", model.StatusNonaktif).Error
}
