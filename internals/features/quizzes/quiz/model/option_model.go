package model

import (
	"github.com/google/uuid"
)

type OptionModel struct {
	OptionID         uuid.UUID `gorm:"column:option_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"option_id"`
	OptionQuestionID uuid.UUID `gorm:"column:option_question_id;type:uuid;not null;index" json:"option_question_id"`
	OptionText       string    `gorm:"column:option_text;type:text;not null" json:"option_text"`
}

func (OptionModel) TableName() string { return "options" }
