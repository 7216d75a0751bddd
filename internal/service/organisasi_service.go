package service

import (
	"fmt"

	"laporkerja-backend/internal/model"
	"laporkerja-backend/internal/repository"
)

// OrganisasiService menelusuri pohon jabatan dan menurunkannya ke himpunan
// pengguna bawahan. Semua komponen dashboard dan laporan mingguan
// bergantung padanya.
type OrganisasiService struct {
	jabatanRepo  repository.JabatanRepository
	penggunaRepo repository.PenggunaRepository
}

func NewOrganisasiService(jabatanRepo repository.JabatanRepository, penggunaRepo repository.PenggunaRepository) *OrganisasiService {
	return &OrganisasiService{jabatanRepo: jabatanRepo, penggunaRepo: penggunaRepo}
}

// TurunanJabatan mengembalikan semua id jabatan di bawah root pada
// kedalaman berapa pun, tanpa root itu sendiri. Traversal memakai worklist
// dengan visited set: kalau data parent membentuk siklus, id yang sudah
// dikunjungi tidak diproses ulang sehingga traversal tetap berhenti.
func (s *OrganisasiService) TurunanJabatan(rootID string) ([]string, error) {
	turunan := []string{}
	visited := map[string]bool{rootID: true}
	antrian := []string{rootID}

	for len(antrian) > 0 {
		current := antrian[0]
		antrian = antrian[1:]

		children, err := s.jabatanRepo.GetByParent(current)
		if err != nil {
			return nil, fmt.Errorf("gagal mengambil jabatan turunan: %w", err)
		}
		for _, child := range children {
			if visited[child.IDJabatan] {
				continue
			}
			visited[child.IDJabatan] = true
			turunan = append(turunan, child.IDJabatan)
			antrian = append(antrian, child.IDJabatan)
		}
	}
	return turunan, nil
}

// BawahanPengguna mengembalikan id pengguna bawahan dalam tiga mode:
//   - hanyaLangsung: pengguna pada jabatan yang parent-nya tepat jabatanID
//   - jabatanParent terisi: pengguna pada jabatan anak dari jabatanParent
//     (dipakai drill-down satu cabang)
//   - default: seluruh subtree di bawah jabatanID pada kedalaman berapa pun
//
// Hanya pengguna aktif yang dihitung. Hasil selalu slice, tidak pernah nil.
func (s *OrganisasiService) BawahanPengguna(jabatanID string, jabatanParent string, hanyaLangsung bool) ([]string, error) {
	var bawahan []model.Pengguna
	var err error

	switch {
	case hanyaLangsung:
		bawahan, err = s.penggunaRepo.GetAktifByJabatanParent(jabatanID)
	case jabatanParent != "":
		bawahan, err = s.penggunaRepo.GetAktifByJabatanParent(jabatanParent)
	default:
		var turunan []string
		turunan, err = s.TurunanJabatan(jabatanID)
		if err != nil {
			return nil, err
		}
		bawahan, err = s.penggunaRepo.GetAktifByJabatanIDs(turunan)
	}
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil pengguna bawahan: %w", err)
	}

	ids := make([]string, 0, len(bawahan))
	for _, p := range bawahan {
		ids = append(ids, p.IDPengguna)
	}
	return ids, nil
}
