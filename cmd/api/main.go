package main

import (
	"fmt"

	"laporkerja-backend/config"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Middleware global
	app.Use(cors.New())
	app.Use(logger.New())

	// Store token yang dicabut saat logout, dipakai bersama semua route.
	tokenStore := middleware.NewMemoryTokenStore()

	routes.SetupAuthRoutes(app, config.DB, tokenStore)
	routes.SetupJabatanRoutes(app, config.DB, tokenStore)
	routes.SetupPenggunaRoutes(app, config.DB, tokenStore)
	routes.SetupLaporanRoutes(app, config.DB, tokenStore)
	routes.SetupDashboardRoutes(app, config.DB, tokenStore)
	routes.SetupProjekRoutes(app, config.DB, tokenStore)
	routes.SetupTaskRoutes(app, config.DB, tokenStore)
	routes.SetupKomentarRoutes(app, config.DB, tokenStore)

	port := config.GetEnv("APP_PORT", "3000")
	fmt.Println("Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
