package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global dalam urutan yang benar.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
