package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizModel struct {
	QuizID          uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizTitle       string    `gorm:"column:quiz_title;type:varchar(180);not null" json:"quiz_title"`
	QuizDescription string    `gorm:"column:quiz_description;type:text" json:"quiz_description"`
	QuizIsActive    bool      `gorm:"column:quiz_is_active;not null;default:true" json:"quiz_is_active"`

	QuizCreatedAt time.Time `gorm:"column:quiz_created_at;not null;autoCreateTime" json:"quiz_created_at"`
	QuizUpdatedAt time.Time `gorm:"column:quiz_updated_at;not null;autoUpdateTime" json:"quiz_updated_at"`
}

// TableName overrides the table name used by GORM.
func (QuizModel) TableName() string {
	return "quizzes"
}
