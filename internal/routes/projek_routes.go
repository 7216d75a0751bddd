package routes

import (
	"laporkerja-backend/internal/handler"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProjekRoutes(app *fiber.App, db *gorm.DB, store middleware.TokenStore) {
	projekRepo := repository.NewProjekRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	projekHdl := handler.NewProjekHandler(projekRepo)
	taskHdl := handler.NewTaskHandler(taskRepo)

	api := app.Group("/projek/v1", middleware.Auth(store))
	api.Post("/", projekHdl.Create)
	api.Get("/", projekHdl.GetAll)
	api.Get("/:id", projekHdl.GetByID)
	api.Put("/:id", projekHdl.Update)
	api.Delete("/:id", projekHdl.Delete)
	api.Get("/:id/task", taskHdl.GetByProjek)
}
