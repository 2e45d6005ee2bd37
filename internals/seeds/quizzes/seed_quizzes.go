package quizzes

import (
	_ "embed"
	"fmt"
	"log"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
	quizRepo "quizku_backend/internals/features/quizzes/quiz/repository"
)

//go:embed data_quizzes.yaml
var fixtureYAML []byte

// QuestionFixture satu soal pada fixture seed.
type QuestionFixture struct {
	Text          string   `yaml:"text"`
	CorrectAnswer string   `yaml:"correct_answer"`
	Options       []string `yaml:"options"`
}

// QuizFixture satu kuis pada fixture seed.
type QuizFixture struct {
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Questions   []QuestionFixture `yaml:"questions"`
}

type fixtureFile struct {
	Quizzes []QuizFixture `yaml:"quizzes"`
}

// LoadFixture membaca fixture yang di-embed.
func LoadFixture() ([]QuizFixture, error) {
	var file fixtureFile
	if err := yaml.Unmarshal(fixtureYAML, &file); err != nil {
		return nil, fmt.Errorf("parse fixture kuis: %w", err)
	}
	return file.Quizzes, nil
}

// SeedQuizzes memuat kuis contoh sekali saat startup. Idempotent karena
// dijaga cek jumlah baris; seluruh insert berjalan dalam satu transaksi.
func SeedQuizzes(db *gorm.DB) error {
	count, err := quizRepo.CountQuizzes(db)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("[INFO] Seed kuis dilewati, tabel sudah terisi")
		return nil
	}

	fixtures, err := LoadFixture()
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		for _, qf := range fixtures {
			quiz := quizModel.QuizModel{
				QuizTitle:       qf.Title,
				QuizDescription: qf.Description,
				QuizIsActive:    true,
			}
			if err := tx.Create(&quiz).Error; err != nil {
				return err
			}

			for _, question := range qf.Questions {
				q := quizModel.QuestionModel{
					QuestionQuizID:        quiz.QuizID,
					QuestionText:          question.Text,
					QuestionCorrectAnswer: question.CorrectAnswer,
				}
				if err := tx.Create(&q).Error; err != nil {
					return err
				}

				for _, optionText := range question.Options {
					o := quizModel.OptionModel{
						OptionQuestionID: q.QuestionID,
						OptionText:       optionText,
					}
					if err := tx.Create(&o).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Seed kuis selesai (%d kuis).", len(fixtures))
	return nil
}
