package model

import "time"

type Projek struct {
	IDProjek     string    `json:"id_projek" gorm:"column:id_projek;type:char(36);primaryKey"`
	Projek       string    `json:"projek" gorm:"type:text"`
	IDPengguna   string    `json:"id_pengguna" gorm:"column:id_pengguna;type:char(36)"`
	StatusProjek int8      `json:"status_projek"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relasi
	Pengguna *Pengguna `json:"pengguna,omitempty" gorm:"foreignKey:IDPengguna;references:IDPengguna"`
	Task     []Task    `json:"task,omitempty" gorm:"foreignKey:IDProjek"`
}

func (Projek) TableName() string { return "projek" }
