package dto

import (
	"testing"

	"github.com/google/uuid"

	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
)

func TestBuildQuestionViews(t *testing.T) {
	q1 := quizModel.QuestionModel{QuestionID: uuid.New(), QuestionText: "Soal satu"}
	q2 := quizModel.QuestionModel{QuestionID: uuid.New(), QuestionText: "Soal dua"}

	options := []quizModel.OptionModel{
		{OptionQuestionID: q1.QuestionID, OptionText: "a"},
		{OptionQuestionID: q2.QuestionID, OptionText: "c"},
		{OptionQuestionID: q1.QuestionID, OptionText: "b"},
		{OptionQuestionID: q2.QuestionID, OptionText: "d"},
	}

	views := BuildQuestionViews([]quizModel.QuestionModel{q1, q2}, options)

	if len(views) != 2 {
		t.Fatalf("jumlah view = %d, want 2", len(views))
	}

	// Urutan view mengikuti urutan soal, bukan urutan opsi.
	if views[0].ID != q1.QuestionID.String() || views[1].ID != q2.QuestionID.String() {
		t.Errorf("urutan soal berubah: %s, %s", views[0].ID, views[1].ID)
	}

	if len(views[0].Options) != 2 || views[0].Options[0].Text != "a" || views[0].Options[1].Text != "b" {
		t.Errorf("opsi soal satu salah: %+v", views[0].Options)
	}
	if len(views[1].Options) != 2 || views[1].Options[0].Text != "c" || views[1].Options[1].Text != "d" {
		t.Errorf("opsi soal dua salah: %+v", views[1].Options)
	}
}

func TestBuildQuestionViewsNoOptions(t *testing.T) {
	q := quizModel.QuestionModel{QuestionID: uuid.New(), QuestionText: "Soal yatim"}

	views := BuildQuestionViews([]quizModel.QuestionModel{q}, nil)
	if len(views) != 1 {
		t.Fatalf("jumlah view = %d, want 1", len(views))
	}
	if len(views[0].Options) != 0 {
		t.Errorf("soal tanpa opsi dapat %d opsi", len(views[0].Options))
	}
}
