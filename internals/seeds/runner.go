package seeds

import (
	"log"

	"gorm.io/gorm"

	quizzes "quizku_backend/internals/seeds/quizzes"
)

// RunAllSeeds menjalankan semua seeder saat startup, sebelum server listen.
func RunAllSeeds(db *gorm.DB) {
	if err := quizzes.SeedQuizzes(db); err != nil {
		log.Fatalf("❌ Seed kuis gagal: %v", err)
	}
}
