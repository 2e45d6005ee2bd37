package dto

import (
	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
)

// OptionView satu pilihan jawaban untuk form radio.
type OptionView struct {
	Text string
}

// QuestionView soal + opsinya, siap dirender. Field radio di form bernama
// "question_<ID>" dan mengirimkan teks opsi yang dipilih.
type QuestionView struct {
	ID      string
	Text    string
	Options []OptionView
}

// BuildQuestionViews menggabungkan soal dengan opsinya masing-masing.
func BuildQuestionViews(questions []quizModel.QuestionModel, options []quizModel.OptionModel) []QuestionView {
	byQuestion := make(map[string][]OptionView, len(questions))
	for _, o := range options {
		key := o.OptionQuestionID.String()
		byQuestion[key] = append(byQuestion[key], OptionView{Text: o.OptionText})
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, QuestionView{
			ID:      q.QuestionID.String(),
			Text:    q.QuestionText,
			Options: byQuestion[q.QuestionID.String()],
		})
	}
	return views
}
