package service

import (
	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
)

// PersonalityQuizTitle judul kuis yang hasilnya diberi label kepribadian.
// Harus sama persis dengan judul pada fixture seed.
const PersonalityQuizTitle = "What kind of student are you?"

// Label band kepribadian, dari skor tertinggi ke terendah.
const (
	PersonalityEnergetic  = "A cheerful, energetic student — nothing has worn you out yet! 😊"
	PersonalitySerious    = "A serious student, steadily preparing for the exams! 📚"
	PersonalityThoughtful = "\"Tired, but summer is near\" — a thoughtful senior with a lot on your mind! 🤔"
	PersonalityExhausted  = "Your motto: \"Just let me graduate already!\" You have been running on three hours of sleep for years 😅"
)

// Grade menilai jawaban terkirim terhadap kunci jawaban: satu poin per soal
// yang teks jawabannya sama persis (case-sensitive, tanpa normalisasi).
// Soal yang tidak dijawab dihitung salah, bukan error. Kunci map = question_id.
func Grade(questions []quizModel.QuestionModel, answers map[string]string) (score, total int) {
	total = len(questions)
	for _, q := range questions {
		if submitted, ok := answers[q.QuestionID.String()]; ok && submitted == q.QuestionCorrectAnswer {
			score++
		}
	}
	return score, total
}

// Percentage = floor(score/total*100); 0 kalau total 0 (hindari div-by-zero).
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return score * 100 / total
}

// PersonalityFor memetakan skor ke empat band tetap. Band inklusif, tidak
// tumpang tindih, menutup seluruh rentang skor; band teratas terbuka ke atas.
func PersonalityFor(score int) string {
	switch {
	case score >= 8:
		return PersonalityEnergetic
	case score >= 5:
		return PersonalitySerious
	case score >= 3:
		return PersonalityThoughtful
	default:
		return PersonalityExhausted
	}
}
