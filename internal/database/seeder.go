package database

import (
	"log"

	"laporkerja-backend/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll mengisi pohon jabatan awal dan akun-akun contoh. Aman dijalankan
// berulang: baris yang sudah ada tidak dibuat ulang.
func SeedAll(db *gorm.DB) {
	// 1. Pohon jabatan: direktur -> manager -> staf
	direktur := seedJabatan(db, "Direktur Utama", "Direksi", nil, 1)
	manTeknologi := seedJabatan(db, "Manager Teknologi", "Teknologi", &direktur.IDJabatan, 2)
	manOperasional := seedJabatan(db, "Manager Operasional", "Operasional", &direktur.IDJabatan, 2)
	stafBackend := seedJabatan(db, "Staf Backend", "Teknologi", &manTeknologi.IDJabatan, 4)
	seedJabatan(db, "Staf Frontend", "Teknologi", &manTeknologi.IDJabatan, 4)
	seedJabatan(db, "Staf Lapangan", "Operasional", &manOperasional.IDJabatan, 4)

	// 2. Akun contoh, password seragam "rahasia123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.DefaultCost)

	seedPengguna(db, "Direktur Utama", "direktur@laporkerja.id", &direktur.IDJabatan, string(hashed))
	seedPengguna(db, "Andi Manager", "andi@laporkerja.id", &manTeknologi.IDJabatan, string(hashed))
	seedPengguna(db, "Budi Staf", "budi@laporkerja.id", &stafBackend.IDJabatan, string(hashed))

	log.Println("Seeding selesai!")
}

func seedJabatan(db *gorm.DB, nama, divisi string, parent *string, level int8) model.Jabatan {
	var jabatan model.Jabatan
	err := db.Where("jabatan = ?", nama).First(&jabatan).Error
	if err == nil {
		return jabatan
	}
	jabatan = model.Jabatan{
		IDJabatan: uuid.Must(uuid.NewV7()).String(),
		Jabatan:   nama,
		Divisi:    divisi,
		Parent:    parent,
		Level:     level,
	}
	if err := db.Create(&jabatan).Error; err != nil {
		log.Printf("Gagal seed jabatan %s: %v", nama, err)
	}
	return jabatan
}

func seedPengguna(db *gorm.DB, nama, email string, jabatanID *string, password string) {
	var pengguna model.Pengguna
	if err := db.Where("email = ?", email).First(&pengguna).Error; err == nil {
		return
	}
	pengguna = model.Pengguna{
		IDPengguna:     uuid.Must(uuid.NewV7()).String(),
		Nama:           nama,
		IDJabatan:      jabatanID,
		Email:          email,
		Password:       password,
		StatusPengguna: model.StatusAktif,
	}
	if err := db.Create(&pengguna).Error; err != nil {
		log.Printf("Gagal seed pengguna %s: %v", email, err)
	}
}
