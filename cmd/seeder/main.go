package main

import (
	"fmt"
	"log"

	"laporkerja-backend/config"
	"laporkerja-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("Memulai database seeding...")

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()
	database.SeedAll(config.DB)

	fmt.Println("Seeding selesai!")
}
