package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "quizku_backend/internals/features/quizzes/submissions/controller"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

// SubmissionRoutes mendaftarkan submit kuis & halaman profil (wajib login).
func SubmissionRoutes(app *fiber.App, db *gorm.DB) {
	app.Post("/submit-quiz", authMiddleware.RequireUser(), func(c *fiber.Ctx) error {
		return submissionController.SubmitQuiz(db, c)
	})
	app.Get("/profile", authMiddleware.RequireUser(), func(c *fiber.Ctx) error {
		return submissionController.Profile(db, c)
	})
}
