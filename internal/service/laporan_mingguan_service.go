package service

import (
	"errors"
	"fmt"
	"time"

	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var namaBulan = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

type GenerateLaporanMingguanResult struct {
	Message           string `json:"message"`
	IDLaporanMingguan string `json:"id_laporan_mingguan"`
	Judul             string `json:"judul"`
	PeriodeMulai      string `json:"periode_mulai"`
	PeriodeSelesai    string `json:"periode_selesai"`
}

type RingkasanLaporanMingguan struct {
	Judul   string   `json:"judul"`
	Periode string   `json:"periode"`
	Selesai []string `json:"selesai"`
	Kendala []string `json:"kendala"`
	Rencana []string `json:"rencana"`
}

type LaporanMingguanRingkas struct {
	IDLaporanMingguan string    `json:"id_laporan_mingguan"`
	IDPengguna        string    `json:"id_pengguna"`
	Judul             string    `json:"judul"`
	PeriodeAwal       time.Time `json:"periode_awal"`
	PeriodeAkhir      time.Time `json:"periode_akhir"`
	Pengguna          string    `json:"pengguna"`
	Jabatan           string    `json:"jabatan"`
}

type PageInfo struct {
	TotalRecordCount int64 `json:"total_record_count"`
	BatchNumber      int   `json:"batch_number"`
	BatchSize        int   `json:"batch_size"`
	MaxBatchSize     int   `json:"max_batch_size"`
}

type DaftarLaporanMingguan struct {
	Page    PageInfo                 `json:"page"`
	Records []LaporanMingguanRingkas `json:"records"`
}

type DetailKonten struct {
	IDHarianDetail string `json:"id_harian_detail"`
	Konten         string `json:"konten"`
	IsiKonten      string `json:"isi_konten"`
}

type DetailLaporanHarian struct {
	IDLaporan      string         `json:"id_laporan"`
	TanggalLaporan time.Time      `json:"tanggal_laporan"`
	JudulLaporan   string         `json:"judul_laporan"`
	NamaPengguna   string         `json:"nama_pengguna"`
	DetailKonten   []DetailKonten `json:"detail_konten"`
}

type DetailLaporanMingguan struct {
	Mingguan LaporanMingguanRingkas `json:"mingguan"`
	Detail   []DetailLaporanHarian  `json:"detail"`
}

// LaporanMingguanService membangkitkan laporan mingguan dari laporan
// harian bawahan dan menyajikan sisi bacanya (daftar, detail, ringkasan).
type LaporanMingguanService struct {
	repo        repository.LaporanMingguanRepository
	laporanRepo repository.LaporanHarianRepository
	org         *OrganisasiService
	email       *EmailService
}

func NewLaporanMingguanService(
	repo repository.LaporanMingguanRepository,
	laporanRepo repository.LaporanHarianRepository,
	org *OrganisasiService,
	email *EmailService,
) *LaporanMingguanService {
	return &LaporanMingguanService{repo: repo, laporanRepo: laporanRepo, org: org, email: email}
}

// Generate membuat satu laporan mingguan untuk atasan:
//  1. nama jabatan pemanggil (NotFound jika tidak ada),
//  2. nomor urut = jumlah laporan mingguan jabatan ini pada bulan kalender
//     periode awal + 1,
//  3. judul "Laporan Mingguan <jabatan> <bulan> ke-<n>",
//  4. seluruh bawahan via resolver hierarki (NotFound jika kosong),
//  5. laporan harian publish bawahan dalam [awal 00:00:00, akhir 23:59:59],
//  6. satu baris link per pasangan (laporan, detail) tanpa dedup,
//  7. header + link disimpan dalam satu transaksi.
func (s *LaporanMingguanService) Generate(penggunaID, jabatanID string, periodeAwal, periodeAkhir time.Time) (*GenerateLaporanMingguanResult, error) {
	awal := time.Date(periodeAwal.Year(), periodeAwal.Month(), periodeAwal.Day(), 0, 0, 0, 0, periodeAwal.Location())
	akhir := time.Date(periodeAkhir.Year(), periodeAkhir.Month(), periodeAkhir.Day(), 23, 59, 59, 0, periodeAkhir.Location())

	namaJabatan, err := s.repo.NamaJabatanByPengguna(penggunaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("jabatan tidak ditemukan untuk pengguna ini: %w", helper.ErrNotFound)
		}
		return nil, fmt.Errorf("gagal membuat laporan mingguan: %w", helper.ErrQuery)
	}
	if namaJabatan == "" {
		return nil, fmt.Errorf("jabatan tidak ditemukan untuk pengguna ini: %w", helper.ErrNotFound)
	}

	awalBulan := time.Date(awal.Year(), awal.Month(), 1, 0, 0, 0, 0, awal.Location())
	akhirBulan := awalBulan.AddDate(0, 1, 0).Add(-time.Second)
	jumlahSebelumnya, err := s.repo.CountByJabatanAndPeriode(jabatanID, awalBulan, akhirBulan)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat laporan mingguan: %w", helper.ErrQuery)
	}
	mingguKe := jumlahSebelumnya + 1
	judul := fmt.Sprintf("Laporan Mingguan %s %s ke-%d", namaJabatan, namaBulan[awal.Month()-1], mingguKe)

	bawahanIDs, err := s.org.BawahanPengguna(jabatanID, "", false)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat laporan mingguan: %w", helper.ErrQuery)
	}
	if len(bawahanIDs) == 0 {
		return nil, fmt.Errorf("tidak ditemukan pengguna bawahan: %w", helper.ErrNotFound)
	}

	laporanList, err := s.laporanRepo.GetPublishedByPenggunaAndPeriode(bawahanIDs, awal, akhir)
	if err != nil {
		return nil, fmt.Errorf("gagal membuat laporan mingguan: %w", helper.ErrQuery)
	}

	laporanMingguan := model.LaporanMingguan{
		IDLaporanMingguan: uuid.Must(uuid.NewV7()).String(),
		IDPengguna:        penggunaID,
		Judul:             judul,
		PeriodeAwal:       awal,
		PeriodeAkhir:      akhir,
	}

	details := []model.LaporanMingguanDetail{}
	for _, laporan := range laporanList {
		for _, detail := range laporan.DetailLaporan {
			details = append(details, model.LaporanMingguanDetail{
				IDMingguanDetail:  uuid.Must(uuid.NewV7()).String(),
				IDLaporanMingguan: laporanMingguan.IDLaporanMingguan,
				IDLaporan:         laporan.IDLaporan,
				IDHarianDetail:    detail.IDHarianDetail,
			})
		}
	}

	if err := s.repo.SaveWithDetails(&laporanMingguan, details); err != nil {
		return nil, fmt.Errorf("gagal membuat laporan mingguan: %w", helper.ErrQuery)
	}

	if s.email != nil {
		s.email.KirimNotifikasiLaporanMingguan(penggunaID, judul)
	}

	return &GenerateLaporanMingguanResult{
		Message:           "Laporan mingguan berhasil dibuat",
		IDLaporanMingguan: laporanMingguan.IDLaporanMingguan,
		Judul:             judul,
		PeriodeMulai:      awal.Format("2006-01-02"),
		PeriodeSelesai:    akhir.Format("2006-01-02"),
	}, nil
}

// Ringkasan mengelompokkan isi konten seluruh detail sumber berdasarkan
// jenisnya. Teks identik hanya muncul sekali per kelompok, urut kemunculan
// pertama.
func (s *LaporanMingguanService) Ringkasan(laporanMingguanID string) (*RingkasanLaporanMingguan, error) {
	rows, err := s.repo.DetailRows(laporanMingguanID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil ringkasan laporan mingguan: %w", helper.ErrQuery)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("data tidak ditemukan: %w", helper.ErrNotFound)
	}

	mingguan := rows[0].LaporanMingguan
	ringkasan := &RingkasanLaporanMingguan{
		Selesai: []string{},
		Kendala: []string{},
		Rencana: []string{},
	}
	if mingguan != nil {
		ringkasan.Judul = mingguan.Judul
		ringkasan.Periode = fmt.Sprintf("%s s.d %s",
			mingguan.PeriodeAwal.Format("2006-01-02"),
			mingguan.PeriodeAkhir.Format("2006-01-02"))
	}

	seen := map[string]map[string]bool{
		model.KontenSelesai: {},
		model.KontenKendala: {},
		model.KontenRencana: {},
	}
	for _, row := range rows {
		if row.LaporanHarian == nil {
			continue
		}
		for _, detail := range row.LaporanHarian.DetailLaporan {
			group, ok := seen[detail.Konten]
			if !ok || group[detail.IsiKonten] {
				continue
			}
			group[detail.IsiKonten] = true
			switch detail.Konten {
			case model.KontenSelesai:
				ringkasan.Selesai = append(ringkasan.Selesai, detail.IsiKonten)
			case model.KontenKendala:
				ringkasan.Kendala = append(ringkasan.Kendala, detail.IsiKonten)
			case model.KontenRencana:
				ringkasan.Rencana = append(ringkasan.Rencana, detail.IsiKonten)
			}
		}
	}
	return ringkasan, nil
}

// GetAll mengembalikan daftar laporan mingguan berhalaman. Level 2 dan 3
// hanya melihat laporan miliknya sendiri.
func (s *LaporanMingguanService) GetAll(penggunaID string, level int, pageNumber, pageSize int, filter repository.ListLaporanMingguanFilter) (*DaftarLaporanMingguan, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 7
	}
	if level == 2 || level == 3 {
		filter.IDPengguna = penggunaID
	}
	filter.Offset = (pageNumber - 1) * pageSize
	filter.Limit = pageSize

	list, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data laporan mingguan: %w", helper.ErrQuery)
	}
	total, err := s.repo.Count(filter)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil data laporan mingguan: %w", helper.ErrQuery)
	}

	records := make([]LaporanMingguanRingkas, 0, len(list))
	for _, item := range list {
		records = append(records, ringkasLaporanMingguan(&item))
	}
	return &DaftarLaporanMingguan{
		Page: PageInfo{
			TotalRecordCount: total,
			BatchNumber:      pageNumber,
			BatchSize:        len(records),
			MaxBatchSize:     pageSize,
		},
		Records: records,
	}, nil
}

// DetailByID mengelompokkan baris link per laporan harian sumber, tiap
// laporan dengan detail kontennya tanpa duplikat id detail.
func (s *LaporanMingguanService) DetailByID(laporanMingguanID string) (*DetailLaporanMingguan, error) {
	rows, err := s.repo.DetailRows(laporanMingguanID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil detail laporan mingguan: %w", helper.ErrQuery)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("data tidak ditemukan: %w", helper.ErrNotFound)
	}

	urutan := []string{}
	grouped := map[string]*DetailLaporanHarian{}
	seenDetail := map[string]map[string]bool{}

	for _, row := range rows {
		laporan := row.LaporanHarian
		if laporan == nil {
			continue
		}
		entry, ok := grouped[laporan.IDLaporan]
		if !ok {
			entry = &DetailLaporanHarian{
				IDLaporan:      laporan.IDLaporan,
				TanggalLaporan: laporan.CreatedAt,
				JudulLaporan:   laporan.Judul,
				DetailKonten:   []DetailKonten{},
			}
			if laporan.Pengguna != nil {
				entry.NamaPengguna = laporan.Pengguna.Nama
			}
			grouped[laporan.IDLaporan] = entry
			seenDetail[laporan.IDLaporan] = map[string]bool{}
			urutan = append(urutan, laporan.IDLaporan)
		}
		for _, detail := range laporan.DetailLaporan {
			if seenDetail[laporan.IDLaporan][detail.IDHarianDetail] {
				continue
			}
			seenDetail[laporan.IDLaporan][detail.IDHarianDetail] = true
			entry.DetailKonten = append(entry.DetailKonten, DetailKonten{
				IDHarianDetail: detail.IDHarianDetail,
				Konten:         detail.Konten,
				IsiKonten:      detail.IsiKonten,
			})
		}
	}

	detailList := make([]DetailLaporanHarian, 0, len(urutan))
	for _, id := range urutan {
		detailList = append(detailList, *grouped[id])
	}

	hasil := &DetailLaporanMingguan{Detail: detailList}
	if rows[0].LaporanMingguan != nil {
		hasil.Mingguan = ringkasLaporanMingguan(rows[0].LaporanMingguan)
	}
	return hasil, nil
}

func ringkasLaporanMingguan(item *model.LaporanMingguan) LaporanMingguanRingkas {
	ringkas := LaporanMingguanRingkas{
		IDLaporanMingguan: item.IDLaporanMingguan,
		IDPengguna:        item.IDPengguna,
		Judul:             item.Judul,
		PeriodeAwal:       item.PeriodeAwal,
		PeriodeAkhir:      item.PeriodeAkhir,
	}
	if item.Pengguna != nil {
		ringkas.Pengguna = item.Pengguna.Nama
		if item.Pengguna.Jabatan != nil {
			ringkas.Jabatan = item.Pengguna.Jabatan.Jabatan
		}
	}
	return ringkas
}
