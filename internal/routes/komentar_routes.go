package routes

import (
	"laporkerja-backend/internal/handler"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupKomentarRoutes(app *fiber.App, db *gorm.DB, store middleware.TokenStore) {
	repo := repository.NewKomentarRepository(db)
	hdl := handler.NewKomentarHandler(repo)

	api := app.Group("/komentar/v1", middleware.Auth(store))
	api.Post("/", hdl.Create)
	api.Get("/laporan/:id", hdl.GetByLaporan)
	api.Delete("/:id", hdl.Delete)
}
