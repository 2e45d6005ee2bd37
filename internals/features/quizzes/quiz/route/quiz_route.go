package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	quizController "quizku_backend/internals/features/quizzes/quiz/controller"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

// QuizRoutes mendaftarkan halaman daftar kuis & detail kuis (wajib login).
func QuizRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/quizzes", authMiddleware.RequireUser(), func(c *fiber.Ctx) error {
		return quizController.ListQuizzes(db, c)
	})
	app.Get("/quiz/:id", authMiddleware.RequireUser(), func(c *fiber.Ctx) error {
		return quizController.ShowQuiz(db, c)
	})
}
