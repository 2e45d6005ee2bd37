package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	quizDTO "quizku_backend/internals/features/quizzes/quiz/dto"
	quizRepo "quizku_backend/internals/features/quizzes/quiz/repository"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

/* ==========================
   LIST QUIZZES
========================== */

func ListQuizzes(db *gorm.DB, c *fiber.Ctx) error {
	quizzes, err := quizRepo.ListActiveQuizzes(db)
	if err != nil {
		log.Printf("[ERROR] list quizzes: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load quizzes")
	}

	return c.Render("quizzes", fiber.Map{
		"User":    authMiddleware.CurrentUser(c),
		"Quizzes": quizzes,
	})
}

/* ==========================
   QUIZ DETAIL (soal + opsi)
========================== */

func ShowQuiz(db *gorm.DB, c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
	}

	quiz, err := quizRepo.FindQuizByID(db, quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		log.Printf("[ERROR] find quiz: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load quiz")
	}

	questions, err := quizRepo.QuestionsByQuizID(db, quizID)
	if err != nil {
		log.Printf("[ERROR] load questions: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load quiz")
	}
	options, err := quizRepo.OptionsByQuizID(db, quizID)
	if err != nil {
		log.Printf("[ERROR] load options: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load quiz")
	}

	return c.Render("quiz", fiber.Map{
		"User":      authMiddleware.CurrentUser(c),
		"Quiz":      quiz,
		"Questions": quizDTO.BuildQuestionViews(questions, options),
	})
}
