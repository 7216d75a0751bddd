package routes

import (
	"laporkerja-backend/internal/handler"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/repository"
	"laporkerja-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLaporanRoutes(app *fiber.App, db *gorm.DB, store middleware.TokenStore) {
	jabatanRepo := repository.NewJabatanRepository(db)
	penggunaRepo := repository.NewPenggunaRepository(db)
	harianRepo := repository.NewLaporanHarianRepository(db)
	mingguanRepo := repository.NewLaporanMingguanRepository(db)

	org := service.NewOrganisasiService(jabatanRepo, penggunaRepo)
	email := service.NewEmailService(penggunaRepo)
	harianSvc := service.NewLaporanHarianService(harianRepo)
	mingguanSvc := service.NewLaporanMingguanService(mingguanRepo, harianRepo, org, email)

	harianHdl := handler.NewLaporanHarianHandler(harianSvc)
	mingguanHdl := handler.NewLaporanMingguanHandler(mingguanSvc)

	api := app.Group("/laporan/v1", middleware.Auth(store))

	// Laporan harian
	api.Post("/", harianHdl.Create)
	api.Get("/", harianHdl.GetAll)
	api.Get("/harian/:id", harianHdl.GetByID)
	api.Put("/harian/:id/publish", harianHdl.Publish)
	api.Put("/harian/:id/review", harianHdl.Review)
	api.Put("/harian/:id/kendala-selesai", harianHdl.KendalaSelesai)
	api.Delete("/harian/:id", harianHdl.Delete)

	// Laporan mingguan
	api.Post("/generate-mingguan", mingguanHdl.Generate)
	api.Get("/mingguan", mingguanHdl.GetAll)
	api.Get("/mingguan/:id", mingguanHdl.Detail)
	api.Get("/mingguan/:id/ringkasan", mingguanHdl.Ringkasan)
}
