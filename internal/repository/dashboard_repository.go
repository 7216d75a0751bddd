package repository

import (
	"time"

	"laporkerja-backend/internal/model"

	"gorm.io/gorm"
)

// ReviewCountRow: partisi laporan publish aktif berdasarkan flag review.
type ReviewCountRow struct {
	TotalLaporan int64
	SudahReview  int64
	BelumReview  int64
}

type StatusLaporanRow struct {
	Draft   int64
	Publish int64
}

// KendalaCountRow: hasil GROUP BY COALESCE(kendala_selesai, -1).
// KendalaStatus -1 = tidak ada kendala, 0 = belum selesai, 1 = sudah.
type KendalaCountRow struct {
	KendalaStatus int
	Total         int64
}

type KendalaListRow struct {
	IDLaporan      string
	Judul          string
	KendalaSelesai *int8
	IsiKonten      *string
	NamaProjek     *string
	CreatedAt      time.Time
}

// TaskStatRow: agregat task aktif — jumlah per status dan jumlah bobot per
// status, dipakai untuk persentase penyelesaian proporsional.
type TaskStatRow struct {
	IDProjek      string
	IDTarget      string
	TotalTask     int64
	TotalBobot    int64
	BobotBelum    int64
	BobotBerjalan int64
	BobotKendala  int64
	BobotSelesai  int64
	Belum         int64
	Berjalan      int64
	Kendala       int64
	Selesai       int64
}

type LaporanStatRow struct {
	IDPengguna   string
	TotalLaporan int64
	SudahReview  int64
	BelumReview  int64
	TotalKendala int64
}

type ProjekRow struct {
	IDProjek   string
	NamaProjek string
}

type DashboardRepository interface {
	ReviewCounts(penggunaIDs []string) (ReviewCountRow, error)
	StatusLaporan(penggunaID string) (StatusLaporanRow, error)
	ListKendala(penggunaID string) ([]KendalaListRow, error)
	KendalaCounts(penggunaID string) ([]KendalaCountRow, error)
	TaskStatsByTarget(penggunaID string) (TaskStatRow, error)
	TaskStatsPerProjekByTarget(penggunaID string) ([]TaskStatRow, error)
	ProjekDikerjakan(penggunaID string) ([]ProjekRow, error)
	ProjekByPemilik(penggunaID string) ([]ProjekRow, error)
	TaskStatsByProjek(projekIDs []string) ([]TaskStatRow, error)
	LaporanStats(penggunaIDs []string) (LaporanStatRow, error)
	LaporanStatsPerPengguna(penggunaIDs []string) ([]LaporanStatRow, error)
	TaskStatsPerTarget(penggunaIDs []string) ([]TaskStatRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

const taskStatSelect = `
	COUNT(id_task) AS total_task,
	COALESCE(SUM(bobot), 0) AS total_bobot,
	COALESCE(SUM(CASE WHEN status_selesai = 0 THEN bobot ELSE 0 END), 0) AS bobot_belum,
	COALESCE(SUM(CASE WHEN status_selesai = 1 THEN bobot ELSE 0 END), 0) AS bobot_berjalan,
	COALESCE(SUM(CASE WHEN status_selesai = 2 THEN bobot ELSE 0 END), 0) AS bobot_kendala,
	COALESCE(SUM(CASE WHEN status_selesai = 3 THEN bobot ELSE 0 END), 0) AS bobot_selesai,
	COALESCE(SUM(CASE WHEN status_selesai = 0 THEN 1 ELSE 0 END), 0) AS belum,
	COALESCE(SUM(CASE WHEN status_selesai = 1 THEN 1 ELSE 0 END), 0) AS berjalan,
	COALESCE(SUM(CASE WHEN status_selesai = 2 THEN 1 ELSE 0 END), 0) AS kendala,
	COALESCE(SUM(CASE WHEN status_selesai = 3 THEN 1 ELSE 0 END), 0) AS selesai`

func (r *dashboardRepository) ReviewCounts(penggunaIDs []string) (ReviewCountRow, error) {
	var row ReviewCountRow
	if len(penggunaIDs) == 0 {
		return row, nil
	}
	err := r.db.Model(&model.LaporanHarian{}).
		Select(`COUNT(id_laporan) AS total_laporan,
			COALESCE(SUM(CASE WHEN sudah_direview = 1 THEN 1 ELSE 0 END), 0) AS sudah_review,
			COALESCE(SUM(CASE WHEN sudah_direview = 0 THEN 1 ELSE 0 END), 0) AS belum_review`).
		Where("id_pengguna IN ? AND status <> 0 AND status_laporan <> ?", penggunaIDs, model.LaporanDraft).
		Scan(&row).Error
	return row, err
}

func (r *dashboardRepository) StatusLaporan(penggunaID string) (StatusLaporanRow, error) {
	var row StatusLaporanRow
	err := r.db.Model(&model.LaporanHarian{}).
		Select(`COALESCE(SUM(CASE WHEN status_laporan = 'draft' THEN 1 ELSE 0 END), 0) AS draft,
			COALESCE(SUM(CASE WHEN status_laporan = 'publish' THEN 1 ELSE 0 END), 0) AS publish`).
		Where("id_pengguna = ? AND status <> 0", penggunaID).
		Scan(&row).Error
	return row, err
}

func (r *dashboardRepository) ListKendala(penggunaID string) ([]KendalaListRow, error) {
	rows := []KendalaListRow{}
	err := r.db.Model(&model.LaporanHarian{}).
		Select(`laporan_harian.id_laporan, laporan_harian.judul, laporan_harian.kendala_selesai,
			laporan_harian.created_at, laporan_harian_detail.isi_konten, projek.projek AS nama_projek`).
		Joins(`LEFT JOIN laporan_harian_detail ON laporan_harian_detail.id_laporan = laporan_harian.id_laporan
			AND laporan_harian_detail.konten = ?`, model.KontenKendala).
		Joins("LEFT JOIN projek ON projek.id_projek = laporan_harian.id_projek").
		Where("laporan_harian.id_pengguna = ? AND laporan_harian.kendala_selesai = 0", penggunaID).
		Where("laporan_harian.status <> 0 AND laporan_harian.status_laporan <> ?", model.LaporanDraft).
		Order("laporan_harian.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) KendalaCounts(penggunaID string) ([]KendalaCountRow, error) {
	rows := []KendalaCountRow{}
	err := r.db.Model(&model.LaporanHarian{}).
		Select("COALESCE(kendala_selesai, -1) AS kendala_status, COUNT(*) AS total").
		Where("id_pengguna = ? AND status <> 0 AND status_laporan <> ?", penggunaID, model.LaporanDraft).
		Group("COALESCE(kendala_selesai, -1)").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) TaskStatsByTarget(penggunaID string) (TaskStatRow, error) {
	var row TaskStatRow
	err := r.db.Model(&model.Task{}).
		Select(taskStatSelect).
		Where("id_target = ? AND status_task <> 0", penggunaID).
		Scan(&row).Error
	return row, err
}

func (r *dashboardRepository) TaskStatsPerProjekByTarget(penggunaID string) ([]TaskStatRow, error) {
	rows := []TaskStatRow{}
	err := r.db.Model(&model.Task{}).
		Select("id_projek, "+taskStatSelect).
		Where("id_target = ? AND status_task <> 0", penggunaID).
		Group("id_projek").
		Scan(&rows).Error
	return rows, err
}

// ProjekDikerjakan mengambil projek tempat pengguna punya task aktif,
// urut kemunculan pertama; dedup dilakukan pemanggil.
func (r *dashboardRepository) ProjekDikerjakan(penggunaID string) ([]ProjekRow, error) {
	rows := []ProjekRow{}
	err := r.db.Model(&model.Task{}).
		Select("task.id_projek, projek.projek AS nama_projek").
		Joins("JOIN projek ON projek.id_projek = task.id_projek").
		Where("task.id_target = ? AND task.status_task <> 0", penggunaID).
		Order("task.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) ProjekByPemilik(penggunaID string) ([]ProjekRow, error) {
	rows := []ProjekRow{}
	err := r.db.Model(&model.Projek{}).
		Select("id_projek, projek AS nama_projek").
		Where("id_pengguna = ? AND status_projek <> 0", penggunaID).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) TaskStatsByProjek(projekIDs []string) ([]TaskStatRow, error) {
	rows := []TaskStatRow{}
	if len(projekIDs) == 0 {
		return rows, nil
	}
	err := r.db.Model(&model.Task{}).
		Select("id_projek, "+taskStatSelect).
		Where("id_projek IN ? AND status_task <> 0", projekIDs).
		Group("id_projek").
		Scan(&rows).Error
	return rows, err
}

// LaporanStats adalah agregat tunggal (tanpa group) atas satu himpunan
// pengguna; dipakai dashboard direktur per atasan.
func (r *dashboardRepository) LaporanStats(penggunaIDs []string) (LaporanStatRow, error) {
	var row LaporanStatRow
	if len(penggunaIDs) == 0 {
		return row, nil
	}
	err := r.db.Model(&model.LaporanHarian{}).
		Select(`COUNT(id_laporan) AS total_laporan,
			COALESCE(SUM(CASE WHEN sudah_direview = 1 THEN 1 ELSE 0 END), 0) AS sudah_review,
			COALESCE(SUM(CASE WHEN sudah_direview = 0 THEN 1 ELSE 0 END), 0) AS belum_review,
			COALESCE(SUM(CASE WHEN kendala_selesai = 0 THEN 1 ELSE 0 END), 0) AS total_kendala`).
		Where("id_pengguna IN ? AND status <> 0 AND status_laporan <> ?", penggunaIDs, model.LaporanDraft).
		Scan(&row).Error
	return row, err
}

func (r *dashboardRepository) LaporanStatsPerPengguna(penggunaIDs []string) ([]LaporanStatRow, error) {
	rows := []LaporanStatRow{}
	if len(penggunaIDs) == 0 {
		return rows, nil
	}
	err := r.db.Model(&model.LaporanHarian{}).
		Select(`id_pengguna,
			COUNT(id_laporan) AS total_laporan,
			COALESCE(SUM(CASE WHEN sudah_direview = 1 THEN 1 ELSE 0 END), 0) AS sudah_review,
			COALESCE(SUM(CASE WHEN sudah_direview = 0 THEN 1 ELSE 0 END), 0) AS belum_review,
			COALESCE(SUM(CASE WHEN kendala_selesai = 0 THEN 1 ELSE 0 END), 0) AS total_kendala`).
		Where("id_pengguna IN ? AND status <> 0 AND status_laporan <> ?", penggunaIDs, model.LaporanDraft).
		Group("id_pengguna").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) TaskStatsPerTarget(penggunaIDs []string) ([]TaskStatRow, error) {
	rows := []TaskStatRow{}
	if len(penggunaIDs) == 0 {
		return rows, nil
	}
	err := r.db.Model(&model.Task{}).
		Select("id_target, "+taskStatSelect).
		Where("id_target IN ? AND status_task <> 0", penggunaIDs).
		Group("id_target").
		Scan(&rows).Error
	return rows, err
}
