package model

import "time"

// Status penyelesaian task (kolom status_selesai).
const (
	TaskBelum    int8 = 0
	TaskBerjalan int8 = 1
	TaskKendala  int8 = 2
	TaskSelesai  int8 = 3
)

// Task adalah pekerjaan berbobot yang ditugaskan ke seorang pengguna
// (id_target). Bobot dipakai untuk persentase penyelesaian proporsional.
type Task struct {
	IDTask        string     `json:"id_task" gorm:"column:id_task;type:char(36);primaryKey"`
	IDProjek      string     `json:"id_projek" gorm:"column:id_projek;type:char(36);not null"`
	IDLaporan     *string    `json:"id_laporan" gorm:"column:id_laporan;type:char(36)"`
	IDTarget      string     `json:"id_target" gorm:"column:id_target;type:char(36);not null"`
	Task          string     `json:"task" gorm:"type:text;not null"`
	StatusSelesai int8       `json:"status_selesai"`
	StatusTask    int8       `json:"status_task"`
	Bobot         int        `json:"bobot"`
	Deadline      *time.Time `json:"deadline"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relasi
	Projek   *Projek   `json:"projek,omitempty" gorm:"foreignKey:IDProjek;references:IDProjek"`
	Pengguna *Pengguna `json:"pengguna,omitempty" gorm:"foreignKey:IDTarget;references:IDPengguna"`
}

func (Task) TableName() string { return "task" }
