package model

import "time"

// Status lifecycle laporan harian.
const (
	LaporanDraft   = "draft"
	LaporanPublish = "publish"
)

// Jenis konten detail laporan harian.
const (
	KontenSelesai = "selesai"
	KontenKendala = "kendala"
	KontenRencana = "rencana"
)

// LaporanHarian adalah laporan kerja harian karyawan.
// KendalaSelesai tri-state: nil = tidak ada kendala, 0 = belum selesai,
// 1 = sudah selesai. Jangan diringkas jadi boolean.
type LaporanHarian struct {
	IDLaporan      string    `json:"id_laporan" gorm:"column:id_laporan;type:char(36);primaryKey"`
	IDPengguna     string    `json:"id_pengguna" gorm:"column:id_pengguna;type:char(36)"`
	IDProjek       *string   `json:"id_projek" gorm:"column:id_projek;type:char(36)"`
	Judul          string    `json:"judul" gorm:"type:varchar(36)"`
	StatusLaporan  string    `json:"status_laporan" gorm:"type:varchar(10)"`
	Status         int8      `json:"status"`
	SudahDireview  int8      `json:"sudah_direview"`
	KendalaSelesai *int8     `json:"kendala_selesai"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relasi
	Pengguna      *Pengguna             `json:"pengguna,omitempty" gorm:"foreignKey:IDPengguna;references:IDPengguna"`
	Projek        *Projek               `json:"projek,omitempty" gorm:"foreignKey:IDProjek;references:IDProjek"`
	DetailLaporan []LaporanHarianDetail `json:"detail_laporan,omitempty" gorm:"foreignKey:IDLaporan"`
	Komentar      []Komentar            `json:"komentar,omitempty" gorm:"foreignKey:IDLaporan"`
	Lampiran      []Lampiran            `json:"lampiran,omitempty" gorm:"foreignKey:IDLaporan"`
}

func (LaporanHarian) TableName() string { return "laporan_harian" }

type LaporanHarianDetail struct {
	IDHarianDetail string    `json:"id_harian_detail" gorm:"column:id_harian_detail;type:char(36);primaryKey"`
	IDLaporan      string    `json:"id_laporan" gorm:"column:id_laporan;type:char(36)"`
	Konten         string    `json:"konten" gorm:"type:varchar(10)"`
	IsiKonten      string    `json:"isi_konten" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (LaporanHarianDetail) TableName() string { return "laporan_harian_detail" }
