package routes

import (
	"laporkerja-backend/internal/handler"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupTaskRoutes(app *fiber.App, db *gorm.DB, store middleware.TokenStore) {
	repo := repository.NewTaskRepository(db)
	hdl := handler.NewTaskHandler(repo)

	api := app.Group("/task/v1", middleware.Auth(store))
	api.Post("/", hdl.Create)
	api.Get("/", hdl.GetMilikSaya)
	api.Put("/:id/status", hdl.UbahStatus)
	api.Delete("/:id", hdl.Delete)
}
