package repository

import (
	"time"

	"laporkerja-backend/internal/model"

	"gorm.io/gorm"
)

type LaporanHarianRepository interface {
	CreateWithDetails(laporan *model.LaporanHarian, details []model.LaporanHarianDetail) error
	GetByID(id string) (*model.LaporanHarian, error)
	GetByPengguna(penggunaID string) ([]model.LaporanHarian, error)
	GetPublishedByPenggunaAndPeriode(penggunaIDs []string, awal, akhir time.Time) ([]model.LaporanHarian, error)
	Update(laporan *model.LaporanHarian) error
	SetReviewed(id string) error
	SetKendalaSelesai(id string, selesai int8) error
	SoftDelete(id string) error
}

type laporanHarianRepository struct {
	db *gorm.DB
}

func NewLaporanHarianRepository(db *gorm.DB) LaporanHarianRepository {
	return &laporanHarianRepository{db}
}

// CreateWithDetails menyimpan laporan dan baris detailnya dalam satu
// transaksi; keduanya berhasil atau keduanya batal.
func (r *laporanHarianRepository) CreateWithDetails(laporan *model.LaporanHarian, details []model.LaporanHarianDetail) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(laporan).Error; err != nil {
			return err
		}
		if len(details) > 0 {
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *laporanHarianRepository) GetByID(id string) (*model.LaporanHarian, error) {
	var laporan model.LaporanHarian
	err := r.db.Preload("DetailLaporan").Preload("Projek").Preload("Pengguna").
		Where("id_laporan = ? AND status <> 0", id).
		First(&laporan).Error
	if err != nil {
		return nil, err
	}
	return &laporan, nil
}

func (r *laporanHarianRepository) GetByPengguna(penggunaID string) ([]model.LaporanHarian, error) {
	list := []model.LaporanHarian{}
	err := r.db.Preload("DetailLaporan").
		Where("id_pengguna = ? AND status <> 0", penggunaID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *laporanHarianRepository) GetPublishedByPenggunaAndPeriode(penggunaIDs []string, awal, akhir time.Time) ([]model.LaporanHarian, error) {
	list := []model.LaporanHarian{}
	if len(penggunaIDs) == 0 {
		return list, nil
	}
	err := r.db.Preload("DetailLaporan").
		Where("id_pengguna IN ? AND status_laporan = ?", penggunaIDs, model.LaporanPublish).
		Where("created_at BETWEEN ? AND ?", awal, akhir).
		Order("created_at ASC").
		Find(&list).Error
	return list, err
}

func (r *laporanHarianRepository) Update(laporan *model.LaporanHarian) error {
	return r.db.Save(laporan).Error
}

func (r *laporanHarianRepository) SetReviewed(id string) error {
	return r.db.Model(&model.LaporanHarian{}).
		Where("id_laporan = ?", id).
		Update("sudah_direview", 1).Error
}

func (r *laporanHarianRepository) SetKendalaSelesai(id string, selesai int8) error {
	return r.db.Model(&model.LaporanHarian{}).
		Where("id_laporan = ?", id).
		Update("kendala_selesai", selesai).Error
}

func (r *laporanHarianRepository) SoftDelete(id string) error {
	return r.db.Model(&model.LaporanHarian{}).
		Where("id_laporan = ?", id).
		Update("status", model.StatusNonaktif).Error
}
