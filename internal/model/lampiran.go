package model

import "time"

// Lampiran menyimpan metadata berkas yang dilampirkan ke laporan harian.
// Penyimpanan berkas fisiknya di luar tanggung jawab backend ini.
type Lampiran struct {
	IDLampiran     string    `json:"id_lampiran" gorm:"column:id_lampiran;type:char(36);primaryKey"`
	IDLaporan      string    `json:"id_laporan" gorm:"column:id_laporan;type:char(36)"`
	NamaLampiran   string    `json:"nama_lampiran" gorm:"type:text"`
	LampiranLabel  string    `json:"lampiran_label" gorm:"type:text"`
	StatusLampiran int8      `json:"status_lampiran"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Lampiran) TableName() string { return "lampiran" }
