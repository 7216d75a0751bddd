package service

import (
	"errors"
	"fmt"

	"laporkerja-backend/internal/helper"
	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DetailKontenInput adalah satu baris isi laporan yang dikirim klien.
type DetailKontenInput struct {
	Konten    string `json:"konten" validate:"required,oneof=selesai kendala rencana"`
	IsiKonten string `json:"isi_konten" validate:"required"`
}

type BuatLaporanHarianInput struct {
	IDProjek      *string             `json:"id_projek"`
	Judul         string              `json:"judul" validate:"required,max=36"`
	StatusLaporan string              `json:"status_laporan" validate:"required,oneof=draft publish"`
	Detail        []DetailKontenInput `json:"detail" validate:"required,min=1,dive"`
}

// LaporanHarianService mengelola siklus hidup laporan harian: buat beserta
// detail, publish, review oleh atasan, dan penandaan kendala selesai.
type LaporanHarianService struct {
	repo repository.LaporanHarianRepository
}

func NewLaporanHarianService(repo repository.LaporanHarianRepository) *LaporanHarianService {
	return &LaporanHarianService{repo: repo}
}

// Create menyimpan laporan beserta detailnya dalam satu transaksi. Kalau
// ada detail berjenis kendala, kendala_selesai di-set 0 (belum selesai);
// kalau tidak ada, dibiarkan NULL.
func (s *LaporanHarianService) Create(penggunaID string, input BuatLaporanHarianInput) (*model.LaporanHarian, error) {
	laporan := model.LaporanHarian{
		IDLaporan:     uuid.Must(uuid.NewV7()).String(),
		IDPengguna:    penggunaID,
		IDProjek:      input.IDProjek,
		Judul:         input.Judul,
		StatusLaporan: input.StatusLaporan,
		Status:        model.StatusAktif,
	}

	details := make([]model.LaporanHarianDetail, 0, len(input.Detail))
	for _, d := range input.Detail {
		if d.Konten == model.KontenKendala && laporan.KendalaSelesai == nil {
			belum := int8(0)
			laporan.KendalaSelesai = &belum
		}
		details = append(details, model.LaporanHarianDetail{
			IDHarianDetail: uuid.Must(uuid.NewV7()).String(),
			IDLaporan:      laporan.IDLaporan,
			Konten:         d.Konten,
			IsiKonten:      d.IsiKonten,
		})
	}

	if err := s.repo.CreateWithDetails(&laporan, details); err != nil {
		return nil, fmt.Errorf("gagal menyimpan laporan harian: %w", helper.ErrQuery)
	}
	laporan.DetailLaporan = details
	return &laporan, nil
}

func (s *LaporanHarianService) GetByID(id string) (*model.LaporanHarian, error) {
	laporan, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("laporan tidak ditemukan: %w", helper.ErrNotFound)
		}
		return nil, fmt.Errorf("gagal mengambil laporan harian: %w", helper.ErrQuery)
	}
	return laporan, nil
}

func (s *LaporanHarianService) GetByPengguna(penggunaID string) ([]model.LaporanHarian, error) {
	list, err := s.repo.GetByPengguna(penggunaID)
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil laporan harian: %w", helper.ErrQuery)
	}
	return list, nil
}

// Publish mengubah draft menjadi publish. Laporan yang sudah publish tidak
// bisa kembali jadi draft.
func (s *LaporanHarianService) Publish(id, penggunaID string) (*model.LaporanHarian, error) {
	laporan, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if laporan.IDPengguna != penggunaID {
		return nil, fmt.Errorf("laporan bukan milik pengguna ini: %w", helper.ErrValidation)
	}
	if laporan.StatusLaporan == model.LaporanPublish {
		return laporan, nil
	}
	laporan.StatusLaporan = model.LaporanPublish
	if err := s.repo.Update(laporan); err != nil {
		return nil, fmt.Errorf("gagal mempublikasikan laporan: %w", helper.ErrQuery)
	}
	return laporan, nil
}

// Review menandai laporan publish sudah direview atasan.
func (s *LaporanHarianService) Review(id string) error {
	laporan, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if laporan.StatusLaporan != model.LaporanPublish {
		return fmt.Errorf("laporan draft tidak bisa direview: %w", helper.ErrValidation)
	}
	if err := s.repo.SetReviewed(id); err != nil {
		return fmt.Errorf("gagal mereview laporan: %w", helper.ErrQuery)
	}
	return nil
}

// TandaiKendalaSelesai menutup kendala pada laporan yang memilikinya.
func (s *LaporanHarianService) TandaiKendalaSelesai(id string) error {
	laporan, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if laporan.KendalaSelesai == nil {
		return fmt.Errorf("laporan ini tidak memiliki kendala: %w", helper.ErrValidation)
	}
	if err := s.repo.SetKendalaSelesai(id, 1); err != nil {
		return fmt.Errorf("gagal memperbarui status kendala: %w", helper.ErrQuery)
	}
	return nil
}

func (s *LaporanHarianService) Delete(id, penggunaID string) error {
	laporan, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if laporan.IDPengguna != penggunaID {
		return fmt.Errorf("laporan bukan milik pengguna ini: %w", helper.ErrValidation)
	}
	if err := s.repo.SoftDelete(id); err != nil {
		return fmt.Errorf("gagal menghapus laporan: %w", helper.ErrQuery)
	}
	return nil
}
