package routes

import (
	"laporkerja-backend/internal/handler"
	"laporkerja-backend/internal/middleware"
	"laporkerja-backend/internal/repository"
	"laporkerja-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB, store middleware.TokenStore) {
	repo := repository.NewPenggunaRepository(db)
	email := service.NewEmailService(repo)
	hdl := handler.NewAuthHandler(repo, store, email)

	api := app.Group("/auth/v1")
	api.Post("/login", hdl.Login)
	api.Post("/lupa-password", hdl.LupaPassword)
	api.Post("/logout", middleware.Auth(store), hdl.Logout)
	api.Get("/profile", middleware.Auth(store), hdl.Profile)
	api.Put("/ubah-password", middleware.Auth(store), hdl.UbahPassword)
}
