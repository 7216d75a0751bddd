package model

import "time"

// Status aktif untuk seluruh entitas bertipe soft-delete (0 = nonaktif).
const (
	StatusNonaktif int8 = 0
	StatusAktif    int8 = 1
)

type Pengguna struct {
	IDPengguna     string    `json:"id_pengguna" gorm:"column:id_pengguna;type:char(36);primaryKey"`
	Nama           string    `json:"nama" gorm:"type:varchar(255)"`
	IDJabatan      *string   `json:"id_jabatan" gorm:"column:id_jabatan;type:char(36)"`
	Email          string    `json:"email" gorm:"type:varchar(60)"`
	Telepon        string    `json:"telepon" gorm:"type:varchar(12)"`
	Password       string    `json:"-" gorm:"type:varchar(255)"`
	StatusPengguna int8      `json:"status_pengguna"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relasi
	Jabatan *Jabatan `json:"jabatan,omitempty" gorm:"foreignKey:IDJabatan;references:IDJabatan"`
}

func (Pengguna) TableName() string { return "pengguna" }
