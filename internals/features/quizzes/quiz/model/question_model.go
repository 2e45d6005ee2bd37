package model

import (
	"time"

	"github.com/google/uuid"
)

// QuestionModel menyimpan teks soal beserta jawaban benar sebagai free text.
// Penilaian membandingkan jawaban terkirim dengan QuestionCorrectAnswer persis
// (case-sensitive). Teks opsi harus unik per soal; dua opsi dengan teks sama
// tidak bisa dibedakan saat dinilai.
type QuestionModel struct {
	QuestionID            uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionQuizID        uuid.UUID `gorm:"column:question_quiz_id;type:uuid;not null;index" json:"question_quiz_id"`
	QuestionText          string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionCorrectAnswer string    `gorm:"column:question_correct_answer;type:text;not null" json:"question_correct_answer"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
}

func (QuestionModel) TableName() string { return "questions" }
