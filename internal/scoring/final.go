package scoring

import (
	"fmt"

	"ujikom_backend/internal/model"
)

// Category classifies a participant's final standing.
type Category string

const (
	CategoryLulus           Category = "lulus"
	CategoryDipertimbangkan Category = "dipertimbangkan"
	CategoryTidakLulus      Category = "tidakLulus"
	CategoryBelumSelesai    Category = "belumSelesai"
)

// Label returns the display text for a category.
func (c Category) Label() string {
	switch c {
	case CategoryLulus:
		return "Lulus"
	case CategoryDipertimbangkan:
		return "Dipertimbangkan"
	case CategoryTidakLulus:
		return "Tidak Lulus"
	default:
		return "Belum Selesai"
	}
}

// Scheme is a named pass/consider threshold pair. Two schemes appear in
// the legacy material; which one applies is a deployment decision, so
// the active pair comes from configuration rather than a constant
// baked into call sites.
type Scheme struct {
	Pass     float64
	Consider float64
}

var (
	// SchemeStandard is the pair the legacy report surfaces apply.
	SchemeStandard = Scheme{Pass: 70, Consider: 68}
	// SchemeStrict is the alternative pair found in the legacy exam
	// views; selectable via configuration.
	SchemeStrict = Scheme{Pass: 75, Consider: 70}
)

// Weights splits the final score between the written and interview
// components. They are expected to sum to 1.
type Weights struct {
	Tertulis  float64
	Interview float64
}

var DefaultWeights = Weights{Tertulis: 0.25, Interview: 0.75}

// FinalScore combines the written percentage and the interview score.
// completed is false while the interview has not been finalized; the
// score is undefined (zero) in that case.
func FinalScore(writtenPercent float64, skorInterview *int, w Weights) (final float64, completed bool) {
	if skorInterview == nil {
		return 0, false
	}
	return writtenPercent*w.Tertulis + float64(*skorInterview)*w.Interview, true
}

// Classify maps a final score to its category. Every completed result
// lands in exactly one of lulus/dipertimbangkan/tidakLulus; an
// unfinished one is always belumSelesai regardless of score.
func Classify(final float64, completed bool, s Scheme) Category {
	if !completed {
		return CategoryBelumSelesai
	}
	if final >= s.Pass {
		return CategoryLulus
	}
	if final >= s.Consider {
		return CategoryDipertimbangkan
	}
	return CategoryTidakLulus
}

// NextGradeSentinel is the promotion target when the current grade is
// last in (or absent from) the ordered grade list.
const NextGradeSentinel = "ke jenjang selanjutnya"

// NextGrade resolves the promotion target from the ordered grade list.
func NextGrade(current string, grades []string) string {
	for i, g := range grades {
		if g == current && i < len(grades)-1 {
			return grades[i+1]
		}
	}
	return NextGradeSentinel
}

// Recommendation renders the promotion recommendation sentence for a
// completed result.
func Recommendation(cat Category, gradeTujuan string) string {
	switch cat {
	case CategoryLulus:
		return fmt.Sprintf("PESERTA DINYATAKAN LULUS DAN DIREKOMENDASIKAN UNTUK NAIK KE GRADE %s.", gradeTujuan)
	case CategoryDipertimbangkan:
		return fmt.Sprintf("PESERTA DIPERTIMBANGKAN UNTUK NAIK KE GRADE %s.", gradeTujuan)
	default:
		return fmt.Sprintf("PESERTA TIDAK DIREKOMENDASIKAN NAIK KE GRADE %s.", gradeTujuan)
	}
}

// ParticipantFinal computes one participant's written percentage, final
// score and category from their result and the full question bank.
func ParticipantFinal(peserta *model.User, result *model.ExamResult, soal []model.Question, w Weights, s Scheme) (writtenPercent, final float64, cat Category) {
	pool := QuestionsFor(peserta, soal)
	raw := 0
	if result != nil && result.SkorTertulis != nil {
		raw = *result.SkorTertulis
	}
	writtenPercent = WrittenPercent(raw, pool)
	var skorInterview *int
	if result != nil {
		skorInterview = result.SkorInterview
	}
	final, completed := FinalScore(writtenPercent, skorInterview, w)
	return writtenPercent, final, Classify(final, completed, s)
}

// QuestionsFor filters the bank down to the participant's IDP+grade pool.
func QuestionsFor(peserta *model.User, soal []model.Question) []model.Question {
	var pool []model.Question
	for _, q := range soal {
		if q.IDP == peserta.IDP && q.Grade == peserta.Grade {
			pool = append(pool, q)
		}
	}
	return pool
}
