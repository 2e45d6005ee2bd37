package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	submissionModel "quizku_backend/internals/features/quizzes/submissions/model"
)

// ResultRow hasil join untuk halaman profil.
type ResultRow struct {
	QuizTitle string    `gorm:"column:quiz_title"`
	Score     int       `gorm:"column:quiz_result_score"`
	TakenAt   time.Time `gorm:"column:quiz_result_created_at"`
}

// CreateResult menyimpan satu hasil pengerjaan (append-only, bukan upsert).
func CreateResult(db *gorm.DB, result *submissionModel.QuizResultModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(result).Error
	})
}

// RecentResultsByUser mengembalikan maksimal limit hasil terbaru milik user,
// terbaru duluan, beserta judul kuisnya.
func RecentResultsByUser(db *gorm.DB, userID uuid.UUID, limit int) ([]ResultRow, error) {
	var rows []ResultRow
	err := db.Table("quiz_results").
		Select("quizzes.quiz_title, quiz_results.quiz_result_score, quiz_results.quiz_result_created_at").
		Joins("JOIN quizzes ON quizzes.quiz_id = quiz_results.quiz_result_quiz_id").
		Where("quiz_results.quiz_result_user_id = ?", userID).
		Order("quiz_results.quiz_result_created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// UserStats statistik agregat untuk profil.
type UserStats struct {
	TotalAttempts int64 `gorm:"column:total_attempts"`
	BestScore     int   `gorm:"column:best_score"`
}

// StatsByUser menghitung jumlah pengerjaan & skor terbaik di semua hasil.
func StatsByUser(db *gorm.DB, userID uuid.UUID) (UserStats, error) {
	var stats UserStats
	err := db.Table("quiz_results").
		Select("COUNT(*) AS total_attempts, COALESCE(MAX(quiz_result_score), 0) AS best_score").
		Where("quiz_result_user_id = ?", userID).
		Scan(&stats).Error
	return stats, err
}
