package service

import (
	"testing"

	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/stretchr/testify/assert"
)

func int8Ptr(v int8) *int8 { return &v }

func TestPersen(t *testing.T) {
	tests := []struct {
		nama   string
		bagian int64
		total  int64
		want   int
	}{
		{"setengah", 5, 10, 50},
		{"dibulatkan ke atas", 1, 3, 33},
		{"dibulatkan", 2, 3, 67},
		{"total nol", 3, 0, 0},
		{"penuh", 10, 10, 100},
	}
	for _, tt := range tests {
		t.Run(tt.nama, func(t *testing.T) {
			assert.Equal(t, tt.want, persen(tt.bagian, tt.total))
		})
	}
}

func TestHitungTaskStatsBerbobot(t *testing.T) {
	// Bobot [10 20 30]: selesai 30, sisanya 30 -> 50% / 50%.
	row := repository.TaskStatRow{
		TotalTask:     3,
		TotalBobot:    60,
		BobotBelum:    10,
		BobotBerjalan: 20,
		BobotSelesai:  30,
		Belum:         1,
		Berjalan:      1,
		Selesai:       1,
	}
	stats := hitungTaskStats(row)

	assert.Equal(t, int64(60), stats.TotalBobot)
	assert.Equal(t, int64(30), stats.BobotSelesai)
	assert.Equal(t, int64(30), stats.BobotBelum)
	assert.Equal(t, 50, stats.PersentaseSelesai)
	assert.Equal(t, 50, stats.PersentaseBelum)
	assert.Equal(t, int64(1), stats.DetailStatus.Selesai)
	assert.Equal(t, int64(1), stats.DetailStatus.BelumDetail.Berjalan)
}

func TestHitungTaskStatsTanpaTask(t *testing.T) {
	// Total bobot dipaksa minimal 1 agar persentase tidak membagi nol.
	stats := hitungTaskStats(repository.TaskStatRow{})

	assert.Equal(t, int64(1), stats.TotalBobot)
	assert.Equal(t, 0, stats.PersentaseSelesai)
	assert.Equal(t, 0, stats.PersentaseBelum)
}

func TestTotalLaporanDanReview(t *testing.T) {
	repo := new(mockDashboardRepo)
	repo.On("ReviewCounts", []string{"u1"}).Return(repository.ReviewCountRow{
		TotalLaporan: 10, SudahReview: 4, BelumReview: 6,
	}, nil)

	svc := NewDashboardService(repo, new(mockPenggunaRepo), new(mockJabatanRepo), nil)
	hasil, err := svc.TotalLaporanDanReview("u1")

	assert.NoError(t, err)
	assert.Equal(t, int64(10), hasil.TotalLaporan)
	assert.Equal(t, int64(4), hasil.SudahReview)
	assert.Equal(t, int64(6), hasil.BelumReview)
}

func TestStatusLaporanPengguna(t *testing.T) {
	repo := new(mockDashboardRepo)
	repo.On("StatusLaporan", "u1").Return(repository.StatusLaporanRow{Draft: 3, Publish: 7}, nil)

	svc := NewDashboardService(repo, new(mockPenggunaRepo), new(mockJabatanRepo), nil)
	hasil, err := svc.StatusLaporanPengguna("u1")

	assert.NoError(t, err)
	assert.Equal(t, int64(10), hasil.Total)
}

func TestListKendalaPlaceholder(t *testing.T) {
	// Konten kendala dan projek yang NULL tampil sebagai "-".
	repo := new(mockDashboardRepo)
	repo.On("ListKendala", "u1").Return([]repository.KendalaListRow{
		{IDLaporan: "l1", Judul: "Harian 1", KendalaSelesai: int8Ptr(0)},
		{IDLaporan: "l2", Judul: "Harian 2", KendalaSelesai: int8Ptr(0), IsiKonten: strPtr("API timeout"), NamaProjek: strPtr("Projek X")},
	}, nil)

	svc := NewDashboardService(repo, new(mockPenggunaRepo), new(mockJabatanRepo), nil)
	items, err := svc.ListKendala("u1")

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "-", items[0].Kendala)
	assert.Equal(t, "-", items[0].Projek)
	assert.Equal(t, "Belum Selesai", items[0].StatusKendala)
	assert.Equal(t, "API timeout", items[1].Kendala)
	assert.Equal(t, "Projek X", items[1].Projek)
}

func TestInformasiKendalaTriState(t *testing.T) {
	repo := new(mockDashboardRepo)
	repo.On("KendalaCounts", "u1").Return([]repository.KendalaCountRow{
		{KendalaStatus: -1, Total: 5},
		{KendalaStatus: 0, Total: 2},
		{KendalaStatus: 1, Total: 3},
	}, nil)

	svc := NewDashboardService(repo, new(mockPenggunaRepo), new(mockJabatanRepo), nil)
	info, err := svc.InformasiKendalaPengguna("u1")

	assert.NoError(t, err)
	assert.Equal(t, int64(5), info.TidakAda)
	assert.Equal(t, int64(2), info.BelumSelesai)
	assert.Equal(t, int64(3), info.SudahSelesai)
}

func TestPresentaseTaskDedupProjek(t *testing.T) {
	repo := new(mockDashboardRepo)
	repo.On("ProjekDikerjakan", "u1").Return([]repository.ProjekRow{
		{IDProjek: "p1", NamaProjek: "Alpha"},
		{IDProjek: "p2", NamaProjek: "Beta"},
		{IDProjek: "p1", NamaProjek: "Alpha"},
	}, nil)
	repo.On("TaskStatsPerProjekByTarget", "u1").Return([]repository.TaskStatRow{
		{IDProjek: "p1", TotalTask: 2, TotalBobot: 10, BobotSelesai: 10, Selesai: 2},
	}, nil)

	svc := NewDashboardService(repo, new(mockPenggunaRepo), new(mockJabatanRepo), nil)
	items, err := svc.PresentaseTask("u1")

	assert.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].IDProjek)
	assert.Equal(t, 100, items[0].PersentaseSelesai)
	// Projek tanpa baris statistik tetap tampil nol-terisi.
	assert.Equal(t, "p2", items[1].IDProjek)
	assert.Equal(t, int64(1), items[1].TotalBobot)
	assert.Equal(t, 0, items[1].PersentaseSelesai)
}

func TestDaftarBawahanZeroFill(t *testing.T) {
	penggunaRepo := new(mockPenggunaRepo)
	penggunaRepo.On("GetAktifByJabatanParent", "jab-atasan").Return([]model.Pengguna{
		{IDPengguna: "u1", Nama: "Budi", Jabatan: &model.Jabatan{Jabatan: "Staf Backend", Divisi: "Teknologi"}},
		{IDPengguna: "u2", Nama: "Sari"},
	}, nil)

	repo := new(mockDashboardRepo)
	repo.On("LaporanStatsPerPengguna", []string{"u1", "u2"}).Return([]repository.LaporanStatRow{
		{IDPengguna: "u1", TotalLaporan: 4, SudahReview: 2, BelumReview: 2, TotalKendala: 1},
	}, nil)
	repo.On("TaskStatsPerTarget", []string{"u1", "u2"}).Return([]repository.TaskStatRow{
		{IDTarget: "u1", TotalTask: 2, TotalBobot: 20, BobotSelesai: 20, Selesai: 2},
	}, nil)

	svc := NewDashboardService(repo, penggunaRepo, new(mockJabatanRepo), nil)
	items, err := svc.DaftarBawahan("jab-atasan", "")

	assert.NoError(t, err)
	assert.Len(t, items, 2)

	assert.Equal(t, "Budi", items[0].Nama)
	assert.Equal(t, "Staf Backend", items[0].Jabatan)
	assert.Equal(t, 50, items[0].Laporan.PersentaseSudah)
	assert.Equal(t, 100, items[0].Task.PersentaseBobotSelesai)

	// Bawahan tanpa laporan dan task: statistik nol, bukan hilang.
	assert.Equal(t, "Sari", items[1].Nama)
	assert.Equal(t, int64(0), items[1].Laporan.Total)
	assert.Equal(t, int64(1), items[1].Task.TotalBobot)
	assert.Equal(t, 0, items[1].Task.PersentaseBobotSelesai)
}

func TestTotalLaporanBawahanTanpaBawahan(t *testing.T) {
	jabatanRepo := new(mockJabatanRepo)
	jabatanRepo.On("GetByParent", "jab-x").Return([]model.Jabatan{}, nil)

	penggunaRepo := new(mockPenggunaRepo)
	penggunaRepo.On("GetAktifByJabatanIDs", []string{}).Return([]model.Pengguna{}, nil)

	org := NewOrganisasiService(jabatanRepo, penggunaRepo)
	svc := NewDashboardService(new(mockDashboardRepo), penggunaRepo, jabatanRepo, org)

	hasil, err := svc.TotalLaporanBawahan("jab-x", "")

	assert.NoError(t, err)
	assert.Equal(t, LaporanBawahan{}, hasil)
}

func TestDaftarAtasan(t *testing.T) {
	jabatanRepo := new(mockJabatanRepo)
	jabatanRepo.On("GetByParent", "jab-direktur").Return([]model.Jabatan{
		{IDJabatan: "jab-m1", Jabatan: "Manager Teknologi"},
	}, nil)
	jabatanRepo.On("GetByParent", "jab-m1").Return([]model.Jabatan{}, nil)

	penggunaRepo := new(mockPenggunaRepo)
	penggunaRepo.On("GetAktifByJabatanIDs", []string{"jab-m1"}).Return([]model.Pengguna{
		{IDPengguna: "m1", Nama: "Andi", IDJabatan: strPtr("jab-m1"), Jabatan: &model.Jabatan{Jabatan: "Manager Teknologi"}},
	}, nil)
	penggunaRepo.On("GetAktifByJabatanIDs", []string{}).Return([]model.Pengguna{}, nil)

	repo := new(mockDashboardRepo)
	repo.On("LaporanStats", []string{}).Return(repository.LaporanStatRow{}, nil)

	org := NewOrganisasiService(jabatanRepo, penggunaRepo)
	svc := NewDashboardService(repo, penggunaRepo, jabatanRepo, org)

	items, err := svc.DaftarAtasan("jab-direktur")

	assert.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, "Andi", items[0].Nama)
	assert.Equal(t, "Manager Teknologi", items[0].Jabatan)
}

func TestDashboardBawahanByIDTidakDitemukan(t *testing.T) {
	penggunaRepo := new(mockPenggunaRepo)
	penggunaRepo.On("GetByID", "hilang").Return(nil, assert.AnError)

	svc := NewDashboardService(new(mockDashboardRepo), penggunaRepo, new(mockJabatanRepo), nil)
	_, err := svc.DashboardBawahanByID("hilang")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tidak ditemukan")
}
