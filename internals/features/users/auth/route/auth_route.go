package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"ibt_backend/internals/features/users/auth/controller"
	"ibt_backend/internals/middlewares"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

// AuthRoutes mounts login on the app directly (no JWT), the rest behind it.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
	auth.Post("/logout", authMiddleware.AuthMiddleware(), ctrl.Logout)
}
