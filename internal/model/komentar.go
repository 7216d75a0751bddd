package model

import "time"

// Komentar pada laporan harian. IDBalas menunjuk komentar induk untuk
// balasan berantai.
type Komentar struct {
	IDKomentar     string    `json:"id_komentar" gorm:"column:id_komentar;type:char(36);primaryKey"`
	IDPengguna     string    `json:"id_pengguna" gorm:"column:id_pengguna;type:char(36)"`
	IDLaporan      string    `json:"id_laporan" gorm:"column:id_laporan;type:char(36)"`
	IDBalas        *string   `json:"id_balas" gorm:"column:id_balas;type:char(36)"`
	Komentar       string    `json:"komentar" gorm:"type:text"`
	StatusKomentar int8      `json:"status_komentar"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relasi
	Pengguna *Pengguna `json:"pengguna,omitempty" gorm:"foreignKey:IDPengguna;references:IDPengguna"`
	Balasan  *Komentar `json:"balasan,omitempty" gorm:"foreignKey:IDBalas;references:IDKomentar"`
}

func (Komentar) TableName() string { return "komentar" }
