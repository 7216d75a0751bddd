package repository

import (
	"time"

	"laporkerja-backend/internal/model"

	"gorm.io/gorm"
)

// ListLaporanMingguanFilter menyaring daftar laporan mingguan. Level 2 dan
// 3 hanya melihat laporan miliknya sendiri (scoping di service).
type ListLaporanMingguanFilter struct {
	Search       string
	PeriodeAwal  *time.Time
	PeriodeAkhir *time.Time
	NamaPengguna string
	IDPengguna   string
	Offset       int
	Limit        int
}

type LaporanMingguanRepository interface {
	SaveWithDetails(laporan *model.LaporanMingguan, details []model.LaporanMingguanDetail) error
	CountByJabatanAndPeriode(jabatanID string, awalBulan, akhirBulan time.Time) (int64, error)
	NamaJabatanByPengguna(penggunaID string) (string, error)
	FindAll(filter ListLaporanMingguanFilter) ([]model.LaporanMingguan, error)
	Count(filter ListLaporanMingguanFilter) (int64, error)
	DetailRows(laporanMingguanID string) ([]model.LaporanMingguanDetail, error)
}

type laporanMingguanRepository struct {
	db *gorm.DB
}

func NewLaporanMingguanRepository(db *gorm.DB) LaporanMingguanRepository {
	return &laporanMingguanRepository{db}
}

// SaveWithDetails menyimpan header laporan mingguan lalu bulk insert baris
// link detailnya dalam satu transaksi.
func (r *laporanMingguanRepository) SaveWithDetails(laporan *model.LaporanMingguan, details []model.LaporanMingguanDetail) error {
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

// CountByJabatanAndPeriode menghitung laporan mingguan yang dibuat oleh
// pemegang jabatan tertentu dalam satu bulan kalender; dasar nomor urut
// judul.
func (r *laporanMingguanRepository) CountByJabatanAndPeriode(jabatanID string, awalBulan, akhirBulan time.Time) (int64, error) {
	var count int64
	sub := r.db.Model(&model.Pengguna{}).Select("id_pengguna").Where("id_jabatan = ?", jabatanID)
	err := r.db.Model(&model.LaporanMingguan{}).
		Where("id_pengguna IN (?)", sub).
		Where("periode_awal >= ? AND periode_awal <= ?", awalBulan, akhirBulan).
		Count(&count).Error
	return count, err
}

func (r *laporanMingguanRepository) NamaJabatanByPengguna(penggunaID string) (string, error) {
	var pengguna model.Pengguna
	err := r.db.Preload("Jabatan").Where("id_pengguna = ?", penggunaID).First(&pengguna).Error
	if err != nil {
		return "", err
	}
	if pengguna.Jabatan == nil {
		return "", nil
	}
	return pengguna.Jabatan.Jabatan, nil
}

func (r *laporanMingguanRepository) FindAll(filter ListLaporanMingguanFilter) ([]model.LaporanMingguan, error) {
	list := []model.LaporanMingguan{}
	query := r.applyFilter(r.db.Model(&model.LaporanMingguan{}), filter).
		Preload("Pengguna.Jabatan").
		Order("laporan_mingguan.created_at DESC")
	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}
	err := query.Find(&list).Error
	return list, err
}

func (r *laporanMingguanRepository) Count(filter ListLaporanMingguanFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.Model(&model.LaporanMingguan{}), filter).Count(&count).Error
	return count, err
}

func (r *laporanMingguanRepository) applyFilter(query *gorm.DB, filter ListLaporanMingguanFilter) *gorm.DB {
	if filter.IDPengguna != "" {
		query = query.Where("laporan_mingguan.id_pengguna = ?", filter.IDPengguna)
	}
	if filter.PeriodeAwal != nil && filter.PeriodeAkhir != nil {
		query = query.Where("periode_awal >= ? AND periode_akhir <= ?", filter.PeriodeAwal, filter.PeriodeAkhir)
	}
	if filter.NamaPengguna != "" {
		query = query.Joins("JOIN pengguna ON pengguna.id_pengguna = laporan_mingguan.id_pengguna").
			Where("pengguna.nama LIKE ?", "%"+filter.NamaPengguna+"%")
	}
	if filter.Search != "" {
		query = query.Where(`judul LIKE ? OR EXISTS (
			SELECT 1 FROM laporan_mingguan_detail
			JOIN laporan_harian_detail ON laporan_harian_detail.id_harian_detail = laporan_mingguan_detail.id_harian_detail
			WHERE laporan_mingguan_detail.id_laporan_mingguan = laporan_mingguan.id_laporan_mingguan
			AND laporan_harian_detail.isi_konten LIKE ?)`,
			"%"+filter.Search+"%", "%"+filter.Search+"%")
	}
	return query
}

// DetailRows mengambil seluruh baris link beserta laporan harian sumber,
// detailnya, dan header laporan mingguannya.
func (r *laporanMingguanRepository) DetailRows(laporanMingguanID string) ([]model.LaporanMingguanDetail, error) {
	rows := []model.LaporanMingguanDetail{}
	err := r.db.Preload("LaporanMingguan").
		Preload("LaporanHarian.Pengguna").
		Preload("LaporanHarian.DetailLaporan").
		Where("id_laporan_mingguan = ?", laporanMingguanID).
		Find(&rows).Error
	return rows, err
}
