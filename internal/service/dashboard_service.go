package service

import (
	"fmt"
	"math"
	"time"

	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/repository"

	"golang.org/x/sync/errgroup"
)

// ===== bentuk hasil per view (selalu utuh, nol saat kosong) =====

type TotalLaporanReview struct {
	TotalLaporan int64 `json:"total_laporan"`
	SudahReview  int64 `json:"sudah_review"`
	BelumReview  int64 `json:"belum_review"`
}

type StatusLaporan struct {
	Draft   int64 `json:"draft"`
	Publish int64 `json:"publish"`
	Total   int64 `json:"total"`
}

type KendalaItem struct {
	IDLaporan     string    `json:"id_laporan"`
	Judul         string    `json:"judul"`
	Kendala       string    `json:"kendala"`
	Projek        string    `json:"projek"`
	StatusKendala string    `json:"status_kendala"`
	Tanggal       time.Time `json:"tanggal"`
}

type InformasiKendala struct {
	TidakAda     int64 `json:"tidak_ada"`
	BelumSelesai int64 `json:"belum_selesai"`
	SudahSelesai int64 `json:"sudah_selesai"`
}

type BelumDetail struct {
	Belum    int64 `json:"belum"`
	Berjalan int64 `json:"berjalan"`
	Kendala  int64 `json:"kendala"`
}

type DetailStatus struct {
	Selesai     int64       `json:"selesai"`
	BelumDetail BelumDetail `json:"belum_detail"`
}

// TaskStats: penyelesaian berbobot. PersentaseSelesai + PersentaseBelum
// boleh tidak tepat 100 karena dibulatkan masing-masing.
type TaskStats struct {
	TotalTask         int64        `json:"total_task"`
	TotalBobot        int64        `json:"total_bobot"`
	BobotSelesai      int64        `json:"bobot_selesai"`
	BobotBelum        int64        `json:"bobot_belum"`
	PersentaseSelesai int          `json:"persentase_selesai"`
	PersentaseBelum   int          `json:"persentase_belum"`
	DetailStatus      DetailStatus `json:"detail_status"`
}

type PresentaseProjekItem struct {
	IDProjek   string `json:"id_projek"`
	NamaProjek string `json:"nama_projek"`
	TaskStats
}

type StatusTaskCounts struct {
	Selesai  int64 `json:"selesai"`
	Belum    int64 `json:"belum"`
	Berjalan int64 `json:"berjalan"`
	Kendala  int64 `json:"kendala"`
}

type InfoProjekItem struct {
	IDProjek               string           `json:"id_projek"`
	NamaProjek             string           `json:"nama_projek"`
	TotalTask              int64            `json:"total_task"`
	TotalBobot             int64            `json:"total_bobot"`
	BobotSelesai           int64            `json:"bobot_selesai"`
	BobotBelum             int64            `json:"bobot_belum"`
	PersentaseBobotSelesai int              `json:"persentase_bobot_selesai"`
	PersentaseBobotBelum   int              `json:"persentase_bobot_belum"`
	DetailStatusTask       StatusTaskCounts `json:"detail_status_task"`
}

type LaporanBawahan struct {
	TotalLaporan    int64 `json:"total_laporan"`
	SudahReview     int64 `json:"sudah_review"`
	BelumReview     int64 `json:"belum_review"`
	PersentaseSudah int   `json:"persentase_sudah"`
	PersentaseBelum int   `json:"persentase_belum"`
}

type BawahanLaporanStat struct {
	Total           int64 `json:"total"`
	SudahReview     int64 `json:"sudah_review"`
	BelumReview     int64 `json:"belum_review"`
	TotalKendala    int64 `json:"total_kendala"`
	PersentaseSudah int   `json:"persentase_sudah"`
	PersentaseBelum int   `json:"persentase_belum"`
}

type BawahanTaskStat struct {
	TotalTask              int64            `json:"total_task"`
	TotalBobot             int64            `json:"total_bobot"`
	BobotSelesai           int64            `json:"bobot_selesai"`
	BobotBelum             int64            `json:"bobot_belum"`
	PersentaseBobotSelesai int              `json:"persentase_bobot_selesai"`
	PersentaseBobotBelum   int              `json:"persentase_bobot_belum"`
	DetailStatusTask       StatusTaskCounts `json:"detail_status_task"`
}

type BawahanItem struct {
	IDPengguna string             `json:"id_pengguna"`
	Nama       string             `json:"nama"`
	Jabatan    string             `json:"jabatan"`
	Divisi     string             `json:"divisi"`
	Laporan    BawahanLaporanStat `json:"laporan"`
	Task       BawahanTaskStat    `json:"task"`
}

type AtasanItem struct {
	IDPengguna      string `json:"id_pengguna"`
	Nama            string `json:"nama"`
	Jabatan         string `json:"jabatan"`
	TotalLaporan    int64  `json:"total_laporan"`
	SudahReview     int64  `json:"sudah_review"`
	BelumReview     int64  `json:"belum_review"`
	TotalKendala    int64  `json:"total_kendala"`
	PersentaseSudah int    `json:"persentase_sudah"`
	PersentaseBelum int    `json:"persentase_belum"`
}

// DashboardAtasan: payload drill-down direktur -> satu atasan.
type DashboardAtasan struct {
	LaporanBawahan  LaporanBawahan   `json:"laporan_bawahan"`
	DaftarBawahan   []BawahanItem    `json:"daftar_bawahan"`
	InformasiProjek []InfoProjekItem `json:"informasi_projek"`
}

// DashboardKaryawan: payload drill-down atasan -> satu bawahan; juga
// dipakai view karyawan atas dirinya sendiri.
type DashboardKaryawan struct {
	TotalReview      TotalLaporanReview     `json:"total_review"`
	StatusLaporan    StatusLaporan          `json:"status_laporan"`
	ListKendala      []KendalaItem          `json:"list_kendala"`
	InformasiKendala InformasiKendala       `json:"informasi_kendala"`
	PresentaseTask   []PresentaseProjekItem `json:"presentase_task"`
	TaskStatus       TaskStats              `json:"task_status"`
}

// DashboardService merakit statistik laporan dan task menjadi view per
// peran: karyawan, atasan, dan direktur, termasuk drill-down dengan
// identitas tersubstitusi.
type DashboardService struct {
	dashboardRepo repository.DashboardRepository
	penggunaRepo  repository.PenggunaRepository
	jabatanRepo   repository.JabatanRepository
	org           *OrganisasiService
}

func NewDashboardService(
	dashboardRepo repository.DashboardRepository,
	penggunaRepo repository.PenggunaRepository,
	jabatanRepo repository.JabatanRepository,
	org *OrganisasiService,
) *DashboardService {
	return &DashboardService{
		dashboardRepo: dashboardRepo,
		penggunaRepo:  penggunaRepo,
		jabatanRepo:   jabatanRepo,
		org:           org,
	}
}

func persen(bagian, total int64) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(bagian) / float64(total) * 100))
}

// hitungTaskStats menurunkan persentase berbobot dari satu baris agregat.
// Total bobot minimal 1 untuk menghindari pembagian nol.
func hitungTaskStats(row repository.TaskStatRow) TaskStats {
	totalBobot := row.TotalBobot
	if totalBobot == 0 {
		totalBobot = 1
	}
	bobotBelum := row.BobotBelum + row.BobotBerjalan + row.BobotKendala
	return TaskStats{
		TotalTask:         row.TotalTask,
		TotalBobot:        totalBobot,
		BobotSelesai:      row.BobotSelesai,
		BobotBelum:        bobotBelum,
		PersentaseSelesai: persen(row.BobotSelesai, totalBobot),
		PersentaseBelum:   persen(bobotBelum, totalBobot),
		DetailStatus: DetailStatus{
			Selesai: row.Selesai,
			BelumDetail: BelumDetail{
				Belum:    row.Belum,
				Berjalan: row.Berjalan,
				Kendala:  row.Kendala,
			},
		},
	}
}

// ===== DASHBOARD KARYAWAN =====

func (s *DashboardService) TotalLaporanDanReview(penggunaID string) (TotalLaporanReview, error) {
	row, err := s.dashboardRepo.ReviewCounts([]string{penggunaID})
	if err != nil {
		return TotalLaporanReview{}, fmt.Errorf("gagal mengambil data total laporan dan review: %w", helper.ErrQuery)
	}
	return TotalLaporanReview{
		TotalLaporan: row.TotalLaporan,
		SudahReview:  row.SudahReview,
		BelumReview:  row.BelumReview,
	}, nil
}

func (s *DashboardService) StatusLaporanPengguna(penggunaID string) (StatusLaporan, error) {
	row, err := s.dashboardRepo.StatusLaporan(penggunaID)
	if err != nil {
		return StatusLaporan{}, fmt.Errorf("gagal mengambil data status laporan: %w", helper.ErrQuery)
	}
	return StatusLaporan{
		Draft:   row.Draft,
		Publish: row.Publish,
		Total:   row.Draft + row.Publish,
	}, nil
}

func (s *DashboardService) ListKendala(penggunaID string) ([]KendalaItem, error) {
	rows, err := s.dashboardRepo.ListKendala(penggunaID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar kendala: %w", helper.ErrQuery)
	}
	items := make([]KendalaItem, 0, len(rows))
	for _, row := range rows {
		kendala := "-"
		if row.IsiKonten != nil && *row.IsiKonten != "" {
			kendala = *row.IsiKonten
		}
		projek := "-"
		if row.NamaProjek != nil && *row.NamaProjek != "" {
			projek = *row.NamaProjek
		}
		status := "Selesai"
		if row.KendalaSelesai != nil && *row.KendalaSelesai == 0 {
			status = "Belum Selesai"
		}
		items = append(items, KendalaItem{
			IDLaporan:     row.IDLaporan,
			Judul:         row.Judul,
			Kendala:       kendala,
			Projek:        projek,
			StatusKendala: status,
			Tanggal:       row.CreatedAt,
		})
	}
	return items, nil
}

func (s *DashboardService) InformasiKendalaPengguna(penggunaID string) (InformasiKendala, error) {
	rows, err := s.dashboardRepo.KendalaCounts(penggunaID)
	if err != nil {
		return InformasiKendala{}, fmt.Errorf("gagal mengambil informasi kendala: %w", helper.ErrQuery)
	}
	info := InformasiKendala{}
	for _, row := range rows {
		switch row.KendalaStatus {
		case -1:
			info.TidakAda = row.Total
		case 0:
			info.BelumSelesai = row.Total
		case 1:
			info.SudahSelesai = row.Total
		}
	}
	return info, nil
}

// PresentaseTask merinci penyelesaian berbobot per projek tempat pengguna
// punya task aktif, urut kemunculan pertama tanpa duplikat projek.
func (s *DashboardService) PresentaseTask(penggunaID string) ([]PresentaseProjekItem, error) {
	projekRows, err := s.dashboardRepo.ProjekDikerjakan(penggunaID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data penyelesaian task per projek: %w", helper.ErrQuery)
	}
	if len(projekRows) == 0 {
		return []PresentaseProjekItem{}, nil
	}

	seen := map[string]bool{}
	unik := make([]repository.ProjekRow, 0, len(projekRows))
	for _, p := range projekRows {
		if seen[p.IDProjek] {
			continue
		}
		seen[p.IDProjek] = true
		unik = append(unik, p)
	}

	statRows, err := s.dashboardRepo.TaskStatsPerProjekByTarget(penggunaID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data penyelesaian task per projek: %w", helper.ErrQuery)
	}
	statMap := map[string]repository.TaskStatRow{}
	for _, row := range statRows {
		statMap[row.IDProjek] = row
	}

	items := make([]PresentaseProjekItem, 0, len(unik))
	for _, p := range unik {
		nama := p.NamaProjek
		if nama == "" {
			nama = "-"
		}
		items = append(items, PresentaseProjekItem{
			IDProjek:   p.IDProjek,
			NamaProjek: nama,
			TaskStats:  hitungTaskStats(statMap[p.IDProjek]),
		})
	}
	return items, nil
}

func (s *DashboardService) TotalTaskStatus(penggunaID string) (TaskStats, error) {
	row, err := s.dashboardRepo.TaskStatsByTarget(penggunaID)
	if err != nil {
		return TaskStats{}, fmt.Errorf("gagal mengambil data statistik task: %w", helper.ErrQuery)
	}
	return hitungTaskStats(row), nil
}

// ===== DASHBOARD ATASAN =====

// TotalLaporanBawahan mengagregasi status review laporan seluruh bawahan.
// jabatanParent mempersempit ke satu cabang; kosong berarti subtree penuh.
func (s *DashboardService) TotalLaporanBawahan(jabatanID, jabatanParent string) (LaporanBawahan, error) {
	penggunaIDs, err := s.org.BawahanPengguna(jabatanID, jabatanParent, false)
	if err != nil {
		return LaporanBawahan{}, fmt.Errorf("gagal mengambil data total laporan bawahan: %w", helper.ErrQuery)
	}
	if len(penggunaIDs) == 0 {
		return LaporanBawahan{}, nil
	}
	row, err := s.dashboardRepo.ReviewCounts(penggunaIDs)
	if err != nil {
		return LaporanBawahan{}, fmt.Errorf("gagal mengambil data total laporan bawahan: %w", helper.ErrQuery)
	}
	return LaporanBawahan{
		TotalLaporan:    row.TotalLaporan,
		SudahReview:     row.SudahReview,
		BelumReview:     row.BelumReview,
		PersentaseSudah: persen(row.SudahReview, row.TotalLaporan),
		PersentaseBelum: persen(row.BelumReview, row.TotalLaporan),
	}, nil
}

// DaftarBawahan menggabungkan statistik laporan dan task per bawahan
// langsung, dilengkapi nama, jabatan, dan divisinya.
func (s *DashboardService) DaftarBawahan(jabatanID, jabatanParent string) ([]BawahanItem, error) {
	parent := jabatanID
	if jabatanParent != "" {
		parent = jabatanParent
	}
	bawahan, err := s.penggunaRepo.GetAktifByJabatanParent(parent)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar bawahan dengan statistik: %w", helper.ErrQuery)
	}
	if len(bawahan) == 0 {
		return []BawahanItem{}, nil
	}

	ids := make([]string, 0, len(bawahan))
	for _, b := range bawahan {
		ids = append(ids, b.IDPengguna)
	}

	laporanRows, err := s.dashboardRepo.LaporanStatsPerPengguna(ids)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar bawahan dengan statistik: %w", helper.ErrQuery)
	}
	taskRows, err := s.dashboardRepo.TaskStatsPerTarget(ids)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar bawahan dengan statistik: %w", helper.ErrQuery)
	}

	laporanMap := map[string]repository.LaporanStatRow{}
	for _, row := range laporanRows {
		laporanMap[row.IDPengguna] = row
	}
	taskMap := map[string]repository.TaskStatRow{}
	for _, row := range taskRows {
		taskMap[row.IDTarget] = row
	}

	items := make([]BawahanItem, 0, len(bawahan))
	for _, b := range bawahan {
		laporan := laporanMap[b.IDPengguna]
		task := taskMap[b.IDPengguna]

		totalBobot := task.TotalBobot
		if totalBobot == 0 {
			totalBobot = 1
		}
		bobotBelum := task.BobotBelum + task.BobotBerjalan + task.BobotKendala

		item := BawahanItem{
			IDPengguna: b.IDPengguna,
			Nama:       b.Nama,
			Laporan: BawahanLaporanStat{
				Total:           laporan.TotalLaporan,
				SudahReview:     laporan.SudahReview,
				BelumReview:     laporan.BelumReview,
				TotalKendala:    laporan.TotalKendala,
				PersentaseSudah: persen(laporan.SudahReview, laporan.TotalLaporan),
				PersentaseBelum: persen(laporan.BelumReview, laporan.TotalLaporan),
			},
			Task: BawahanTaskStat{
				TotalTask:              task.TotalTask,
				TotalBobot:             totalBobot,
				BobotSelesai:           task.BobotSelesai,
				BobotBelum:             bobotBelum,
				PersentaseBobotSelesai: persen(task.BobotSelesai, totalBobot),
				PersentaseBobotBelum:   persen(bobotBelum, totalBobot),
				DetailStatusTask: StatusTaskCounts{
					Selesai:  task.Selesai,
					Belum:    task.Belum,
					Berjalan: task.Berjalan,
					Kendala:  task.Kendala,
				},
			},
		}
		if b.Jabatan != nil {
			item.Jabatan = b.Jabatan.Jabatan
			item.Divisi = b.Jabatan.Divisi
		}
		items = append(items, item)
	}
	return items, nil
}

// InformasiProjek merinci penyelesaian task per projek yang dibuat oleh
// pengguna, nol-terisi untuk projek tanpa task aktif.
func (s *DashboardService) InformasiProjek(penggunaID string) ([]InfoProjekItem, error) {
	projekRows, err := s.dashboardRepo.ProjekByPemilik(penggunaID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil informasi projek atasan: %w", helper.ErrQuery)
	}
	if len(projekRows) == 0 {
		return []InfoProjekItem{}, nil
	}

	ids := make([]string, 0, len(projekRows))
	for _, p := range projekRows {
		ids = append(ids, p.IDProjek)
	}
	statRows, err := s.dashboardRepo.TaskStatsByProjek(ids)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil informasi projek atasan: %w", helper.ErrQuery)
	}
	statMap := map[string]repository.TaskStatRow{}
	for _, row := range statRows {
		statMap[row.IDProjek] = row
	}

	items := make([]InfoProjekItem, 0, len(projekRows))
	for _, p := range projekRows {
		stat := statMap[p.IDProjek]
		totalBobot := stat.TotalBobot
		if totalBobot == 0 {
			totalBobot = 1
		}
		bobotBelum := stat.BobotBelum + stat.BobotBerjalan + stat.BobotKendala
		items = append(items, InfoProjekItem{
			IDProjek:               p.IDProjek,
			NamaProjek:             p.NamaProjek,
			TotalTask:              stat.TotalTask,
			TotalBobot:             totalBobot,
			BobotSelesai:           stat.BobotSelesai,
			BobotBelum:             bobotBelum,
			PersentaseBobotSelesai: persen(stat.BobotSelesai, totalBobot),
			PersentaseBobotBelum:   persen(bobotBelum, totalBobot),
			DetailStatusTask: StatusTaskCounts{
				Selesai:  stat.Selesai,
				Belum:    stat.Belum,
				Berjalan: stat.Berjalan,
				Kendala:  stat.Kendala,
			},
		})
	}
	return items, nil
}

// ===== DASHBOARD DIREKTUR =====

// DaftarAtasan mendata atasan yang jabatannya tepat di bawah jabatan
// direktur, masing-masing dengan statistik laporan seluruh bawahannya.
func (s *DashboardService) DaftarAtasan(jabatanDirekturID string) ([]AtasanItem, error) {
	jabatanList, err := s.jabatanRepo.GetByParent(jabatanDirekturID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar atasan dengan statistik laporan: %w", helper.ErrQuery)
	}
	if len(jabatanList) == 0 {
		return []AtasanItem{}, nil
	}

	jabatanIDs := make([]string, 0, len(jabatanList))
	for _, j := range jabatanList {
		jabatanIDs = append(jabatanIDs, j.IDJabatan)
	}
	atasan, err := s.penggunaRepo.GetAktifByJabatanIDs(jabatanIDs)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar atasan dengan statistik laporan: %w", helper.ErrQuery)
	}
	if len(atasan) == 0 {
		return []AtasanItem{}, nil
	}

	items := make([]AtasanItem, len(atasan))
	g := new(errgroup.Group)
	for i, a := range atasan {
		i, a := i, a
		g.Go(func() error {
			item := AtasanItem{
				IDPengguna: a.IDPengguna,
				Nama:       a.Nama,
				Jabatan:    "-",
			}
			if a.Jabatan != nil {
				item.Jabatan = a.Jabatan.Jabatan
			}
			if a.IDJabatan != nil {
				bawahanIDs, err := s.org.BawahanPengguna(*a.IDJabatan, "", false)
				if err != nil {
					return err
				}
				stats, err := s.dashboardRepo.LaporanStats(bawahanIDs)
				if err != nil {
					return err
				}
				item.TotalLaporan = stats.TotalLaporan
				item.SudahReview = stats.SudahReview
				item.BelumReview = stats.BelumReview
				item.TotalKendala = stats.TotalKendala
				item.PersentaseSudah = persen(stats.SudahReview, stats.TotalLaporan)
				item.PersentaseBelum = persen(stats.BelumReview, stats.TotalLaporan)
			}
			items[i] = item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("gagal mengambil daftar atasan dengan statistik laporan: %w", helper.ErrQuery)
	}
	return items, nil
}

// ===== DRILL DOWN =====

// DashboardAtasanByID menjalankan view atasan seolah dipanggil oleh atasan
// target: jabatan target disubstitusikan lalu ketiga statistik diambil
// paralel dan gagal-cepat.
func (s *DashboardService) DashboardAtasanByID(penggunaAtasanID string) (*DashboardAtasan, error) {
	atasan, err := s.penggunaRepo.GetByID(penggunaAtasanID)
	if err != nil {
		return nil, fmt.Errorf("atasan tidak ditemukan: %w", helper.ErrNotFound)
	}
	if atasan.IDJabatan == nil {
		return nil, fmt.Errorf("atasan tidak memiliki jabatan: %w", helper.ErrNotFound)
	}
	jabatanID := *atasan.IDJabatan

	var hasil DashboardAtasan
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		hasil.LaporanBawahan, err = s.TotalLaporanBawahan(jabatanID, jabatanID)
		return err
	})
	g.Go(func() error {
		var err error
		hasil.DaftarBawahan, err = s.DaftarBawahan(jabatanID, "")
		return err
	})
	g.Go(func() error {
		var err error
		hasil.InformasiProjek, err = s.InformasiProjek(penggunaAtasanID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &hasil, nil
}

// DashboardBawahanByID menjalankan keenam statistik karyawan atas bawahan
// target, paralel dan gagal-cepat.
func (s *DashboardService) DashboardBawahanByID(penggunaBawahanID string) (*DashboardKaryawan, error) {
	if _, err := s.penggunaRepo.GetByID(penggunaBawahanID); err != nil {
		return nil, fmt.Errorf("bawahan tidak ditemukan: %w", helper.ErrNotFound)
	}

	var hasil DashboardKaryawan
	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		hasil.TotalReview, err = s.TotalLaporanDanReview(penggunaBawahanID)
		return err
	})
	g.Go(func() error {
		var err error
		hasil.StatusLaporan, err = s.StatusLaporanPengguna(penggunaBawahanID)
		return err
	})
	g.Go(func() error {
		var err error
		hasil.ListKendala, err = s.ListKendala(penggunaBawahanID)
		return err
	})
	g.Go(func() error {
		var err error
		hasil.InformasiKendala, err = s.InformasiKendalaPengguna(penggunaBawahanID)
		return err
	})
	g.Go(func() error {
		var err error
		hasil.PresentaseTask, err = s.PresentaseTask(penggunaBawahanID)
		return err
	})
	g.Go(func() error {
		var err error
		hasil.TaskStatus, err = s.TotalTaskStatus(penggunaBawahanID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &hasil, nil
}
