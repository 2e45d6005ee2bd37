package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	quizRepo "quizku_backend/internals/features/quizzes/quiz/repository"
	report "quizku_backend/internals/features/quizzes/report"
	submissionModel "quizku_backend/internals/features/quizzes/submissions/model"
	resultRepo "quizku_backend/internals/features/quizzes/submissions/repository"
	submissionService "quizku_backend/internals/features/quizzes/submissions/service"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

/* ==========================
   SUBMIT QUIZ
========================== */

func SubmitQuiz(db *gorm.DB, c *fiber.Ctx) error {
	user := authMiddleware.CurrentUser(c)

	rawQuizID := strings.TrimSpace(c.FormValue("quiz_id"))
	if rawQuizID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Quiz ID missing")
	}
	quizID, err := uuid.Parse(rawQuizID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid quiz ID")
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

	// Kumpulkan jawaban form: satu field radio per soal, "question_<uuid>".
	answers := make(map[string]string, len(questions))
	for _, q := range questions {
		if v := c.FormValue("question_" + q.QuestionID.String()); v != "" {
			answers[q.QuestionID.String()] = v
		}
	}

	score, total := submissionService.Grade(questions, answers)
	percentage := submissionService.Percentage(score, total)

	snapshot, err := json.Marshal(answers)
	if err != nil {
		snapshot = []byte("{}")
	}
	result := submissionModel.QuizResultModel{
		QuizResultUserID:  user.ID,
		QuizResultQuizID:  quiz.QuizID,
		QuizResultScore:   score,
		QuizResultAnswers: datatypes.JSON(snapshot),
	}
	if err := resultRepo.CreateResult(db, &result); err != nil {
		log.Printf("[ERROR] save result: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to save result")
	}

	// Label kepribadian + results log hanya untuk kuis kepribadian.
	personality := ""
	if quiz.QuizTitle == submissionService.PersonalityQuizTitle {
		personality = submissionService.PersonalityFor(score)
		if err := report.Append(report.Entry{
			Username:    user.UserName,
			QuizTitle:   quiz.QuizTitle,
			Score:       score,
			Total:       total,
			Percentage:  percentage,
			Personality: personality,
		}); err != nil {
			// Gagal tulis log bukan alasan menggagalkan submit.
			log.Printf("[WARN] append results log: %v", err)
		}
	}

	return c.Render("result", fiber.Map{
		"User":        user,
		"QuizTitle":   quiz.QuizTitle,
		"Score":       score,
		"Total":       total,
		"Percentage":  percentage,
		"Personality": personality,
	})
}

/* ==========================
   PROFILE (riwayat + statistik)
========================== */

const profileRecentLimit = 5

func Profile(db *gorm.DB, c *fiber.Ctx) error {
	user := authMiddleware.CurrentUser(c)

	results, err := resultRepo.RecentResultsByUser(db, user.ID, profileRecentLimit)
	if err != nil {
		log.Printf("[ERROR] load results: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
	}
	stats, err := resultRepo.StatsByUser(db, user.ID)
	if err != nil {
		log.Printf("[ERROR] load stats: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load profile")
	}

	return c.Render("profile", fiber.Map{
		"User":         user,
		"Results":      results,
		"TotalQuizzes": stats.TotalAttempts,
		"BestScore":    stats.BestScore,
	})
}
