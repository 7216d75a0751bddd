package service

import (
	"testing"
	"time"

	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func tanggal(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func orgDenganBawahan(jabatanID string, bawahan []model.Pengguna) *OrganisasiService {
	jabatanRepo := new(mockJabatanRepo)
	jabatanRepo.On("GetByParent", jabatanID).Return([]model.Jabatan{{IDJabatan: jabatanID + "-anak"}}, nil)
	jabatanRepo.On("GetByParent", jabatanID+"-anak").Return([]model.Jabatan{}, nil)

	penggunaRepo := new(mockPenggunaRepo)
	penggunaRepo.On("GetAktifByJabatanIDs", []string{jabatanID + "-anak"}).Return(bawahan, nil)

	return NewOrganisasiService(jabatanRepo, penggunaRepo)
}

func TestGenerateLaporanMingguan(t *testing.T) {
	repo := new(mockLaporanMingguanRepo)
	repo.On("NamaJabatanByPengguna", "atasan-1").Return("Manager Teknologi", nil)
	// Sudah ada 1 laporan bulan ini -> yang baru jadi ke-2.
	repo.On("CountByJabatanAndPeriode", "jab-1", mock.Anything, mock.Anything).Return(int64(1), nil)
	repo.On("SaveWithDetails", mock.Anything, mock.Anything).Return(nil)

	harianRepo := new(mockLaporanHarianRepo)
	harianRepo.On("GetPublishedByPenggunaAndPeriode", []string{"u1"}, mock.Anything, mock.Anything).
		Return([]model.LaporanHarian{
			{
				IDLaporan: "l1",
				DetailLaporan: []model.LaporanHarianDetail{
					{IDHarianDetail: "d1", Konten: model.KontenSelesai, IsiKonten: "Fix bug"},
					{IDHarianDetail: "d2", Konten: model.KontenRencana, IsiKonten: "Deploy"},
				},
			},
		}, nil)

	org := orgDenganBawahan("jab-1", []model.Pengguna{{IDPengguna: "u1"}})
	svc := NewLaporanMingguanService(repo, harianRepo, org, nil)

	hasil, err := svc.Generate("atasan-1", "jab-1", tanggal("2025-03-03"), tanggal("2025-03-07"))

	assert.NoError(t, err)
	assert.Equal(t, "Laporan Mingguan Manager Teknologi Maret ke-2", hasil.Judul)
	assert.Equal(t, "2025-03-03", hasil.PeriodeMulai)
	assert.Equal(t, "2025-03-07", hasil.PeriodeSelesai)
	assert.NotEmpty(t, hasil.IDLaporanMingguan)

	// Satu baris link per pasangan (laporan, detail).
	simpan := repo.Calls[len(repo.Calls)-1]
	details := simpan.Arguments.Get(1).([]model.LaporanMingguanDetail)
	assert.Len(t, details, 2)
	assert.Equal(t, "l1", details[0].IDLaporan)
	assert.Equal(t, "d1", details[0].IDHarianDetail)
}

func TestGenerateTanpaBawahan(t *testing.T) {
	repo := new(mockLaporanMingguanRepo)
	repo.On("NamaJabatanByPengguna", "atasan-1").Return("Manager Teknologi", nil)
	repo.On("CountByJabatanAndPeriode", "jab-1", mock.Anything, mock.Anything).Return(int64(0), nil)

	org := orgDenganBawahan("jab-1", []model.Pengguna{})
	svc := NewLaporanMingguanService(repo, new(mockLaporanHarianRepo), org, nil)

	_, err := svc.Generate("atasan-1", "jab-1", tanggal("2025-03-03"), tanggal("2025-03-07"))

	assert.ErrorIs(t, err, helper.ErrNotFound)
	repo.AssertNotCalled(t, "SaveWithDetails", mock.Anything, mock.Anything)
}

func TestGenerateTanpaJabatan(t *testing.T) {
	repo := new(mockLaporanMingguanRepo)
	repo.On("NamaJabatanByPengguna", "yatim").Return("", nil)

	svc := NewLaporanMingguanService(repo, new(mockLaporanHarianRepo), nil, nil)
	_, err := svc.Generate("yatim", "jab-1", tanggal("2025-03-03"), tanggal("2025-03-07"))

	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestGeneratePenggunaTidakAda(t *testing.T) {
	repo := new(mockLaporanMingguanRepo)
	repo.On("NamaJabatanByPengguna", "hilang").Return("", gorm.ErrRecordNotFound)

	svc := NewLaporanMingguanService(repo, new(mockLaporanHarianRepo), nil, nil)
	_, err := svc.Generate("hilang", "jab-1", tanggal("2025-03-03"), tanggal("2025-03-07"))

	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestRingkasanDedup(t *testing.T) {
	mingguan := &model.LaporanMingguan{
		IDLaporanMingguan: "m1",
		Judul:             "Laporan Mingguan Manager Teknologi Maret ke-1",
		PeriodeAwal:       tanggal("2025-03-03"),
		PeriodeAkhir:      tanggal("2025-03-07"),
	}
	repo := new(mockLaporanMingguanRepo)
	repo.On("DetailRows", "m1").Return([]model.LaporanMingguanDetail{
		{
			LaporanMingguan: mingguan,
			LaporanHarian: &model.LaporanHarian{
				IDLaporan: "l1",
				DetailLaporan: []model.LaporanHarianDetail{
					{Konten: model.KontenSelesai, IsiKonten: "Fixed login bug"},
					{Konten: model.KontenKendala, IsiKonten: "Server lambat"},
				},
			},
		},
		{
			LaporanMingguan: mingguan,
			LaporanHarian: &model.LaporanHarian{
				IDLaporan: "l2",
				DetailLaporan: []model.LaporanHarianDetail{
					{Konten: model.KontenSelesai, IsiKonten: "Fixed login bug"},
					{Konten: model.KontenSelesai, IsiKonten: "Tambah endpoint"},
				},
			},
		},
	}, nil)

	svc := NewLaporanMingguanService(repo, new(mockLaporanHarianRepo), nil, nil)
	ringkasan, err := svc.Ringkasan("m1")

	assert.NoError(t, err)
	assert.Equal(t, "Laporan Mingguan Manager Teknologi Maret ke-1", ringkasan.Judul)
	assert.Equal(t, "2025-03-03 s.d 2025-03-07", ringkasan.Periode)
	// Teks identik hanya sekali, urut kemunculan pertama.
	assert.Equal(t, []string{"Fixed login bug", "Tambah endpoint"}, ringkasan.Selesai)
	assert.Equal(t, []string{"Server lambat"}, ringkasan.Kendala)
	assert.Empty(t, ringkasan.Rencana)
}

func TestRingkasanTidakDitemukan(t *testing.T) {
	repo := new(mockLaporanMingguanRepo)
	repo.On("DetailRows", "kosong").Return([]model.LaporanMingguanDetail{}, nil)

	svc := NewLaporanMingguanService(repo, new(mockLaporanHarianRepo), nil, nil)
	_, err := svc.Ringkasan("kosong")

	assert.ErrorIs(t, err, helper.ErrNotFound)
}

func TestGetAllScopingLevel(t *testing.T) {
	// Level 2 dan 3 hanya melihat laporan miliknya sendiri.
	for _, level := range []int{2, 3} {
		repo := new(mockLaporanMingguanRepo)
		repo.On("FindAll", mock.Anything).Return([]model.LaporanMingguan{}, nil)
		repo.On("Count", mock.Anything).Return(int64(0), nil)

		svc := NewLaporanMingguanService(repo, new(mockLaporanHarianRepo), nil, nil)
		hasil, err := svc.GetAll("atasan-1", level, 1, 7, repository.ListLaporanMingguanFilter{})

		assert.NoError(t, err)
		assert.Equal(t, int64(0), hasil.Page.TotalRecordCount)
		filter := repo.Calls[0].Arguments.Get(0).(repository.ListLaporanMingguanFilter)
		assert.Equal(t, "atasan-1", filter.IDPengguna)
	}
}

func TestGetAllTanpaScopingDirektur(t *testing.T) {
	repo := new(mockLaporanMingguanRepo)
	repo.On("FindAll", mock.Anything).Return([]model.LaporanMingguan{}, nil)
	repo.On("Count", mock.Anything).Return(int64(0), nil)

	svc := NewLaporanMingguanService(repo, new(mockLaporanHarianRepo), nil, nil)
	_, err := svc.GetAll("direktur-1", 1, 1, 7, repository.ListLaporanMingguanFilter{})

	assert.NoError(t, err)
	filter := repo.Calls[0].Arguments.Get(0).(repository.ListLaporanMingguanFilter)
	assert.Empty(t, filter.IDPengguna)
}

func TestDetailByIDKelompokPerLaporan(t *testing.T) {
	mingguan := &model.LaporanMingguan{IDLaporanMingguan: "m1", Judul: "Mingguan"}
	harian := &model.LaporanHarian{
		IDLaporan: "l1",
		Judul:     "Harian Senin",
		Pengguna:  &model.Pengguna{Nama: "Budi"},
		DetailLaporan: []model.LaporanHarianDetail{
			{IDHarianDetail: "d1", Konten: model.KontenSelesai, IsiKonten: "A"},
			{IDHarianDetail: "d2", Konten: model.KontenRencana, IsiKonten: "B"},
		},
	}
	repo := new(mockLaporanMingguanRepo)
	// Dua baris link ke laporan yang sama: grup jadi satu, detail tidak dobel.
	repo.On("DetailRows", "m1").Return([]model.LaporanMingguanDetail{
		{LaporanMingguan: mingguan, LaporanHarian: harian, IDHarianDetail: "d1"},
		{LaporanMingguan: mingguan, LaporanHarian: harian, IDHarianDetail: "d2"},
	}, nil)

	svc := NewLaporanMingguanService(repo, new(mockLaporanHarianRepo), nil, nil)
	hasil, err := svc.DetailByID("m1")

	assert.NoError(t, err)
	assert.Len(t, hasil.Detail, 1)
	assert.Equal(t, "Harian Senin", hasil.Detail[0].JudulLaporan)
	assert.Equal(t, "Budi", hasil.Detail[0].NamaPengguna)
	assert.Len(t, hasil.Detail[0].DetailKonten, 2)
}
