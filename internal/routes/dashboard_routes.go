package routes

import (
	"laporkerja-backend/internal/handler"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/repository"
	"laporkerja-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB, store middleware.TokenStore) {
	jabatanRepo := repository.NewJabatanRepository(db)
	penggunaRepo := repository.NewPenggunaRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	org := service.NewOrganisasiService(jabatanRepo, penggunaRepo)
	svc := service.NewDashboardService(dashboardRepo, penggunaRepo, jabatanRepo, org)
	hdl := handler.NewDashboardHandler(svc)

	api := app.Group("/dashboard/v1", middleware.Auth(store))

	karyawan := api.Group("/karyawan")
	karyawan.Get("/total-review", hdl.TotalReview)
	karyawan.Get("/status-laporan", hdl.StatusLaporan)
	karyawan.Get("/list-kendala", hdl.ListKendala)
	karyawan.Get("/informasi-kendala", hdl.InformasiKendala)
	karyawan.Get("/presentase-task", hdl.PresentaseTask)
	karyawan.Get("/task-status", hdl.TaskStatus)

	atasan := api.Group("/atasan")
	atasan.Get("/total-laporan-bawahan", hdl.TotalLaporanBawahan)
	atasan.Get("/daftar-bawahan", hdl.DaftarBawahan)
	atasan.Get("/informasi-projek", hdl.InformasiProjek)
	atasan.Get("/bawahan/:id", hdl.DashboardBawahanByID)

	direktur := api.Group("/direktur")
	direktur.Get("/daftar-atasan", hdl.DaftarAtasan)
	direktur.Get("/atasan/:id", hdl.DashboardAtasanByID)
}
