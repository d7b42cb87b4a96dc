package scoring

import (
	"testing"

	"ujikom_backend/internal/model"
)

func q(id uint, nilai int, benar string) model.Question {
	return model.Question{
		BaseModel:    model.BaseModel{ID: id},
		IDP:          "ENGINE-01",
		Grade:        "M1",
		Nilai:        nilai,
		Pertanyaan:   "soal",
		Pilihan:      []string{"a", "b", "c", "d"},
		JawabanBenar: benar,
	}
}

func TestGradeWrittenAllCorrect(t *testing.T) {
	questions := []model.Question{q(1, 10, "C"), q(2, 15, "B")}
	answers := map[uint]string{1: "C", 2: "B"}

	res := GradeWritten(questions, answers)
	if res.RawScore != 25 {
		t.Errorf("RawScore = %d, want 25", res.RawScore)
	}
	if res.CorrectCount != 2 || res.IncorrectCount != 0 {
		t.Errorf("counts = %d/%d, want 2/0", res.CorrectCount, res.IncorrectCount)
	}
	if res.QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2", res.QuestionCount)
	}
	if got := WrittenPercent(res.RawScore, questions); got != 100 {
		t.Errorf("WrittenPercent = %v, want 100", got)
	}
}

func TestGradeWrittenUnansweredCountsIncorrect(t *testing.T) {
	questions := []model.Question{q(1, 10, "A"), q(2, 10, "B"), q(3, 5, "C")}
	answers := map[uint]string{1: "A"} // 2 and 3 unanswered

	res := GradeWritten(questions, answers)
	if res.RawScore != 10 {
		t.Errorf("RawScore = %d, want 10", res.RawScore)
	}
	if res.CorrectCount != 1 || res.IncorrectCount != 2 {
		t.Errorf("counts = %d/%d, want 1/2", res.CorrectCount, res.IncorrectCount)
	}
	if res.QuestionCount != 3 {
		t.Errorf("QuestionCount = %d, want 3", res.QuestionCount)
	}
}

func TestGradeWrittenBounds(t *testing.T) {
	questions := []model.Question{q(1, 10, "A"), q(2, 20, "B"), q(3, 5, "D")}
	cases := []map[uint]string{
		nil,
		{1: "B", 2: "A", 3: "C"},
		{1: "A"},
		{1: "A", 2: "B", 3: "D"},
		{1: "A", 2: "C", 3: "D", 99: "A"},
	}
	max := MaxPoints(questions)
	for i, answers := range cases {
		res := GradeWritten(questions, answers)
		if res.RawScore < 0 || res.RawScore > max {
			t.Errorf("case %d: RawScore %d outside [0,%d]", i, res.RawScore, max)
		}
		if res.CorrectCount+res.IncorrectCount != len(questions) {
			t.Errorf("case %d: correct+incorrect = %d, want %d", i, res.CorrectCount+res.IncorrectCount, len(questions))
		}
	}
}

func TestGradeWrittenEmptySet(t *testing.T) {
	res := GradeWritten(nil, map[uint]string{1: "A"})
	if res != (WrittenResult{}) {
		t.Errorf("empty set graded to %+v, want zero value", res)
	}
	if got := WrittenPercent(0, nil); got != 0 {
		t.Errorf("WrittenPercent on empty set = %v, want 0", got)
	}
}
