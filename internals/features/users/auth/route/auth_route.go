package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "quizku_backend/internals/features/users/auth/controller"
	middlewares "quizku_backend/internals/middlewares"
)

// AuthRoutes mendaftarkan halaman & aksi login/register/logout.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/login", authController.LoginPage)
	app.Post("/login", middlewares.LoginRateLimiter(), func(c *fiber.Ctx) error {
		return authController.Login(db, c)
	})

	app.Get("/register", authController.RegisterPage)
	app.Post("/register", middlewares.RegisterRateLimiter(), func(c *fiber.Ctx) error {
		return authController.Register(db, c)
	})

	app.Get("/logout", authController.Logout)
}
