package model

import "time"

// Jabatan membentuk pohon organisasi lewat kolom parent (self-reference).
// Root tidak punya parent. Level 0 = super admin, 1 = direktur,
// 2-3 = atasan, >= 4 = karyawan.
type Jabatan struct {
	IDJabatan string    `json:"id_jabatan" gorm:"column:id_jabatan;type:char(36);primaryKey"`
	Jabatan   string    `json:"jabatan" gorm:"type:varchar(36)"`
	Divisi    string    `json:"divisi" gorm:"type:varchar(36)"`
	Parent    *string   `json:"parent" gorm:"column:parent;type:char(36)"`
	Level     int8      `json:"level"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relasi
	ParentJabatan *Jabatan   `json:"parent_jabatan,omitempty" gorm:"foreignKey:Parent;references:IDJabatan"`
	Pengguna      []Pengguna `json:"pengguna,omitempty" gorm:"foreignKey:IDJabatan"`
}

func (Jabatan) TableName() string { return "jabatan" }
