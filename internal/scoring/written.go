// Package scoring holds the exam scoring and reporting rules as pure
// functions over the domain models. Nothing in here touches the
// database or mutates shared state; services load the inputs, call in,
// and persist what comes back.
package scoring

import "ujikom_backend/internal/model"

// WrittenResult is the outcome of grading one written-exam submission.
type WrittenResult struct {
	RawScore       int `json:"skorTertulis"`
	CorrectCount   int `json:"jawabanBenar"`
	IncorrectCount int `json:"jawabanSalah"`
	QuestionCount  int `json:"jumlahSoal"`
}

// GradeWritten grades a submission against the participant's question
// set. An unanswered or wrongly answered question counts as incorrect;
// QuestionCount is the size of the question set, not of the answer map.
// An empty question set grades to all zeros, which callers must keep
// distinct from "exam not taken" (null fields).
func GradeWritten(questions []model.Question, answers map[uint]string) WrittenResult {
	res := WrittenResult{QuestionCount: len(questions)}
	for _, q := range questions {
		if answers[q.ID] == q.JawabanBenar {
			res.RawScore += q.Nilai
			res.CorrectCount++
		} else {
			res.IncorrectCount++
		}
	}
	return res
}

// MaxPoints sums the point values of a question set.
func MaxPoints(questions []model.Question) int {
	total := 0
	for _, q := range questions {
		total += q.Nilai
	}
	return total
}

// WrittenPercent converts a raw written score to 0-100 against the
// question set's maximum. A set worth zero points yields 0.
func WrittenPercent(rawScore int, questions []model.Question) float64 {
	max := MaxPoints(questions)
	if max <= 0 {
		return 0
	}
	return float64(rawScore) / float64(max) * 100
}
