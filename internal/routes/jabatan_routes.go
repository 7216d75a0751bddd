package routes

import (
	"laporkerja-backend/internal/handler"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJabatanRoutes(app *fiber.App, db *gorm.DB, store middleware.TokenStore) {
	repo := repository.NewJabatanRepository(db)
	hdl := handler.NewJabatanHandler(repo)

	api := app.Group("/jabatan/v1", middleware.Auth(store))
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
}
