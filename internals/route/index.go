// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeController "quizku_backend/internals/features/home/controller"
	quizRoute "quizku_backend/internals/features/quizzes/quiz/route"
	submissionRoute "quizku_backend/internals/features/quizzes/submissions/route"
	authRoute "quizku_backend/internals/features/users/auth/route"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Identitas di-resolve untuk semua route; route privat menambah RequireUser.
	app.Use(authMiddleware.LoadUser(db))

	app.Get("/", homeController.Landing)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up QuizRoutes...")
	quizRoute.QuizRoutes(app, db)

	log.Println("[INFO] Setting up SubmissionRoutes...")
	submissionRoute.SubmissionRoutes(app, db)
}
