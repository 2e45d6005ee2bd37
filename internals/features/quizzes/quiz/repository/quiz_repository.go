package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
)

// ListActiveQuizzes mengembalikan semua kuis aktif untuk halaman daftar.
func ListActiveQuizzes(db *gorm.DB) ([]quizModel.QuizModel, error) {
	var quizzes []quizModel.QuizModel
	err := db.
		Where("quiz_is_active = ?", true).
		Order("quiz_created_at ASC").
		Find(&quizzes).Error
	return quizzes, err
}

// FindQuizByID mencari satu kuis; gorm.ErrRecordNotFound kalau tidak ada.
func FindQuizByID(db *gorm.DB, quizID uuid.UUID) (*quizModel.QuizModel, error) {
	var quiz quizModel.QuizModel
	if err := db.Where("quiz_id = ?", quizID).First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// QuestionsByQuizID mengembalikan semua soal milik satu kuis.
func QuestionsByQuizID(db *gorm.DB, quizID uuid.UUID) ([]quizModel.QuestionModel, error) {
	var questions []quizModel.QuestionModel
	err := db.
		Where("question_quiz_id = ?", quizID).
		Order("question_created_at ASC").
		Find(&questions).Error
	return questions, err
}

// OptionsByQuizID mengembalikan semua opsi untuk soal-soal dalam satu kuis
// dalam satu query (hindari N+1 per soal).
func OptionsByQuizID(db *gorm.DB, quizID uuid.UUID) ([]quizModel.OptionModel, error) {
	var options []quizModel.OptionModel
	err := db.
		Where("option_question_id IN (?)",
			db.Model(&quizModel.QuestionModel{}).
				Select("question_id").
				Where("question_quiz_id = ?", quizID),
		).
		Find(&options).Error
	return options, err
}

// CountQuizzes dipakai guard seeding saat startup.
func CountQuizzes(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&quizModel.QuizModel{}).Count(&count).Error
	return count, err
}
