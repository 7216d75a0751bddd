package routes

import (
	"laporkerja-backend/internal/handler"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPenggunaRoutes(app *fiber.App, db *gorm.DB, store middleware.TokenStore) {
	repo := repository.NewPenggunaRepository(db)
	hdl := handler.NewPenggunaHandler(repo)

	api := app.Group("/pengguna/v1", middleware.Auth(store))
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetAll)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
