package config

import (
	"fmt"
	"laporkerja-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "lapor_kerja"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: membuat tabel berdasarkan struct di folder model
	db.AutoMigrate(&model.Jabatan{})
	db.AutoMigrate(&model.Pengguna{})
	db.AutoMigrate(&model.Projek{})
	db.AutoMigrate(&model.LaporanHarian{})
	db.AutoMigrate(&model.LaporanHarianDetail{})
	db.AutoMigrate(&model.LaporanMingguan{})
	db.AutoMigrate(&model.LaporanMingguanDetail{})
	db.AutoMigrate(&model.Task{})
	db.AutoMigrate(&model.Komentar{})
	db.AutoMigrate(&model.Lampiran{})

	DB = db
}
