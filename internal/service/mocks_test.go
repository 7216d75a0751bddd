package service

import (
	"time"

	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Mock repository untuk pengujian service tanpa database.

type mockJabatanRepo struct{ mock.Mock }

func (m *mockJabatanRepo) Create(jabatan *model.Jabatan) error {
	return m.Called(jabatan).Error(0)
}

func (m *mockJabatanRepo) GetByID(id string) (*model.Jabatan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Jabatan), args.Error(1)
}

func (m *mockJabatanRepo) GetAll(search string, parent string) ([]model.Jabatan, error) {
	args := m.Called(search, parent)
	return args.Get(0).([]model.Jabatan), args.Error(1)
}

func (m *mockJabatanRepo) GetByParent(parentID string) ([]model.Jabatan, error) {
	args := m.Called(parentID)
	return args.Get(0).([]model.Jabatan), args.Error(1)
}

func (m *mockJabatanRepo) GetByParentIn(parentIDs []string) ([]model.Jabatan, error) {
	args := m.Called(parentIDs)
	return args.Get(0).([]model.Jabatan), args.Error(1)
}

func (m *mockJabatanRepo) Update(jabatan *model.Jabatan) error {
	return m.Called(jabatan).Error(0)
}

type mockPenggunaRepo struct{ mock.Mock }

func (m *mockPenggunaRepo) Create(pengguna *model.Pengguna) error {
	return m.Called(pengguna).Error(0)
}

func (m *mockPenggunaRepo) GetByID(id string) (*model.Pengguna, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pengguna), args.Error(1)
}

func (m *mockPenggunaRepo) GetByEmail(email string) (*model.Pengguna, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pengguna), args.Error(1)
}

func (m *mockPenggunaRepo) GetAll(search string) ([]model.Pengguna, error) {
	args := m.Called(search)
	return args.Get(0).([]model.Pengguna), args.Error(1)
}

func (m *mockPenggunaRepo) Update(pengguna *model.Pengguna) error {
	return m.Called(pengguna).Error(0)
}

func (m *mockPenggunaRepo) SoftDelete(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockPenggunaRepo) GetAktifByJabatanIDs(jabatanIDs []string) ([]model.Pengguna, error) {
	args := m.Called(jabatanIDs)
	return args.Get(0).([]model.Pengguna), args.Error(1)
}

func (m *mockPenggunaRepo) GetAktifByJabatanParent(parentID string) ([]model.Pengguna, error) {
	args := m.Called(parentID)
	return args.Get(0).([]model.Pengguna), args.Error(1)
}

func (m *mockPenggunaRepo) GetByJabatanID(jabatanID string) ([]model.Pengguna, error) {
	args := m.Called(jabatanID)
	return args.Get(0).([]model.Pengguna), args.Error(1)
}

type mockDashboardRepo struct{ mock.Mock }

func (m *mockDashboardRepo) ReviewCounts(penggunaIDs []string) (repository.ReviewCountRow, error) {
	args := m.Called(penggunaIDs)
	return args.Get(0).(repository.ReviewCountRow), args.Error(1)
}

func (m *mockDashboardRepo) StatusLaporan(penggunaID string) (repository.StatusLaporanRow, error) {
	args := m.Called(penggunaID)
	return args.Get(0).(repository.StatusLaporanRow), args.Error(1)
}

func (m *mockDashboardRepo) ListKendala(penggunaID string) ([]repository.KendalaListRow, error) {
	args := m.Called(penggunaID)
	return args.Get(0).([]repository.KendalaListRow), args.Error(1)
}

func (m *mockDashboardRepo) KendalaCounts(penggunaID string) ([]repository.KendalaCountRow, error) {
	args := m.Called(penggunaID)
	return args.Get(0).([]repository.KendalaCountRow), args.Error(1)
}

func (m *mockDashboardRepo) TaskStatsByTarget(penggunaID string) (repository.TaskStatRow, error) {
	args := m.Called(penggunaID)
	return args.Get(0).(repository.TaskStatRow), args.Error(1)
}

func (m *mockDashboardRepo) TaskStatsPerProjekByTarget(penggunaID string) ([]repository.TaskStatRow, error) {
	args := m.Called(penggunaID)
	return args.Get(0).([]repository.TaskStatRow), args.Error(1)
}

func (m *mockDashboardRepo) ProjekDikerjakan(penggunaID string) ([]repository.ProjekRow, error) {
	args := m.Called(penggunaID)
	return args.Get(0).([]repository.ProjekRow), args.Error(1)
}

func (m *mockDashboardRepo) ProjekByPemilik(penggunaID string) ([]repository.ProjekRow, error) {
	args := m.Called(penggunaID)
	return args.Get(0).([]repository.ProjekRow), args.Error(1)
}

func (m *mockDashboardRepo) TaskStatsByProjek(projekIDs []string) ([]repository.TaskStatRow, error) {
	args := m.Called(projekIDs)
	return args.Get(0).([]repository.TaskStatRow), args.Error(1)
}

func (m *mockDashboardRepo) LaporanStats(penggunaIDs []string) (repository.LaporanStatRow, error) {
	args := m.Called(penggunaIDs)
	return args.Get(0).(repository.LaporanStatRow), args.Error(1)
}

func (m *mockDashboardRepo) LaporanStatsPerPengguna(penggunaIDs []string) ([]repository.LaporanStatRow, error) {
	args := m.Called(penggunaIDs)
	return args.Get(0).([]repository.LaporanStatRow), args.Error(1)
}

func (m *mockDashboardRepo) TaskStatsPerTarget(penggunaIDs []string) ([]repository.TaskStatRow, error) {
	args := m.Called(penggunaIDs)
	return args.Get(0).([]repository.TaskStatRow), args.Error(1)
}

type mockLaporanHarianRepo struct{ mock.Mock }

func (m *mockLaporanHarianRepo) CreateWithDetails(laporan *model.LaporanHarian, details []model.LaporanHarianDetail) error {
	return m.Called(laporan, details).Error(0)
}

func (m *mockLaporanHarianRepo) GetByID(id string) (*model.LaporanHarian, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LaporanHarian), args.Error(1)
}

func (m *mockLaporanHarianRepo) GetByPengguna(penggunaID string) ([]model.LaporanHarian, error) {
	args := m.Called(penggunaID)
	return args.Get(0).([]model.LaporanHarian), args.Error(1)
}

func (m *mockLaporanHarianRepo) GetPublishedByPenggunaAndPeriode(penggunaIDs []string, awal, akhir time.Time) ([]model.LaporanHarian, error) {
	args := m.Called(penggunaIDs, awal, akhir)
	return args.Get(0).([]model.LaporanHarian), args.Error(1)
}

func (m *mockLaporanHarianRepo) Update(laporan *model.LaporanHarian) error {
	return m.Called(laporan).Error(0)
}

func (m *mockLaporanHarianRepo) SetReviewed(id string) error {
	return m.Called(id).Error(0)
}

func (m *mockLaporanHarianRepo) SetKendalaSelesai(id string, selesai int8) error {
	return m.Called(id, selesai).Error(0)
}

func (m *mockLaporanHarianRepo) SoftDelete(id string) error {
	return m.Called(id).Error(0)
}

type mockLaporanMingguanRepo struct{ mock.Mock }

func (m *mockLaporanMingguanRepo) SaveWithDetails(laporan *model.LaporanMingguan, details []model.LaporanMingguanDetail) error {
	return m.Called(laporan, details).Error(0)
}

func (m *mockLaporanMingguanRepo) CountByJabatanAndPeriode(jabatanID string, awalBulan, akhirBulan time.Time) (int64, error) {
	args := m.Called(jabatanID, awalBulan, akhirBulan)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLaporanMingguanRepo) NamaJabatanByPengguna(penggunaID string) (string, error) {
	args := m.Called(penggunaID)
	return args.String(0), args.Error(1)
}

func (m *mockLaporanMingguanRepo) FindAll(filter repository.ListLaporanMingguanFilter) ([]model.LaporanMingguan, error) {
	args := m.Called(filter)
	return args.Get(0).([]model.LaporanMingguan), args.Error(1)
}

func (m *mockLaporanMingguanRepo) Count(filter repository.ListLaporanMingguanFilter) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLaporanMingguanRepo) DetailRows(laporanMingguanID string) ([]model.LaporanMingguanDetail, error) {
	args := m.Called(laporanMingguanID)
	return args.Get(0).([]model.LaporanMingguanDetail), args.Error(1)
}
