package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizResultModel riwayat pengerjaan kuis: append-only, boleh ada banyak baris
// untuk pasangan (user, quiz) yang sama. Skor selalu 0..jumlah soal.
type QuizResultModel struct {
	QuizResultID     uuid.UUID `gorm:"column:quiz_result_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_result_id"`
	QuizResultUserID uuid.UUID `gorm:"column:quiz_result_user_id;type:uuid;not null;index" json:"quiz_result_user_id"`
	QuizResultQuizID uuid.UUID `gorm:"column:quiz_result_quiz_id;type:uuid;not null;index" json:"quiz_result_quiz_id"`
	QuizResultScore  int       `gorm:"column:quiz_result_score;not null" json:"quiz_result_score"`

	// Snapshot jawaban terkirim {question_id: submitted_text}, untuk audit.
	QuizResultAnswers datatypes.JSON `gorm:"column:quiz_result_answers;type:jsonb" json:"quiz_result_answers,omitempty"`

	QuizResultCreatedAt time.Time `gorm:"column:quiz_result_created_at;not null;autoCreateTime" json:"quiz_result_created_at"`
}

func (QuizResultModel) TableName() string { return "quiz_results" }
