package model

import "time"

// LaporanMingguan adalah rollup laporan harian bawahan dalam satu periode,
// dibuat on-demand oleh atasan.
type LaporanMingguan struct {
	IDLaporanMingguan string    `json:"id_laporan_mingguan" gorm:"column:id_laporan_mingguan;type:char(36);primaryKey"`
	IDPengguna        string    `json:"id_pengguna" gorm:"column:id_pengguna;type:char(36)"`
	Judul             string    `json:"judul" gorm:"type:varchar(100)"`
	PeriodeAwal       time.Time `json:"periode_awal" gorm:"type:date"`
	PeriodeAkhir      time.Time `json:"periode_akhir" gorm:"type:date"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relasi
	Pengguna              *Pengguna               `json:"pengguna,omitempty" gorm:"foreignKey:IDPengguna;references:IDPengguna"`
	DetailLaporanMingguan []LaporanMingguanDetail `json:"detail_laporan_mingguan,omitempty" gorm:"foreignKey:IDLaporanMingguan"`
}

func (LaporanMingguan) TableName() string { return "laporan_mingguan" }

// LaporanMingguanDetail menghubungkan laporan mingguan ke baris detail
// laporan harian sumbernya (join many-to-many).
type LaporanMingguanDetail struct {
	IDMingguanDetail  string    `json:"id_mingguan_detail" gorm:"column:id_mingguan_detail;type:char(36);primaryKey"`
	IDLaporanMingguan string    `json:"id_laporan_mingguan" gorm:"column:id_laporan_mingguan;type:char(36)"`
	IDLaporan         string    `json:"id_laporan" gorm:"column:id_laporan;type:char(36)"`
	IDHarianDetail    string    `json:"id_harian_detail" gorm:"column:id_harian_detail;type:char(36)"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relasi
	LaporanMingguan *LaporanMingguan `json:"laporan_mingguan,omitempty" gorm:"foreignKey:IDLaporanMingguan;references:IDLaporanMingguan"`
	LaporanHarian   *LaporanHarian   `json:"laporan_harian,omitempty" gorm:"foreignKey:IDLaporan;references:IDLaporan"`
}

func (LaporanMingguanDetail) TableName() string { return "laporan_mingguan_detail" }
