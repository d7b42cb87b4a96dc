package scoring

import (
	"math"

	"ujikom_backend/internal/model"
)

// Qualitative notes derived from an item rating. Brackets are
// half-open: [0,56) [56,65) [65,75) [75,80) [80,100].
const (
	NoteTidakMemahami   = "Peserta tidak memahami"
	NotePernahMendengar = "Peserta pernah mendengar tapi belum memahami"
	NoteCukupMemahami   = "Peserta cukup memahami"
	NoteSudahMemahami   = "Peserta sudah memahami"
	NoteSangatMemahami  = "Peserta sudah sangat memahami"
)

// CatatanOtomatis maps a numeric rating to its qualitative note.
func CatatanOtomatis(nilai float64) string {
	switch {
	case nilai < 56:
		return NoteTidakMemahami
	case nilai < 65:
		return NotePernahMendengar
	case nilai < 75:
		return NoteCukupMemahami
	case nilai < 80:
		return NoteSudahMemahami
	default:
		return NoteSangatMemahami
	}
}

// NoteForRating is CatatanOtomatis for a nullable rating: an unscored
// item has a blank note.
func NoteForRating(nilai *float64) string {
	if nilai == nil {
		return ""
	}
	return CatatanOtomatis(*nilai)
}

// AspectAverage returns the mean rating of the aspect's scored items.
// ok is false when no item has a rating, in which case the aspect is
// excluded from the overall score (not treated as zero).
func AspectAverage(items []model.InterviewItem) (avg float64, ok bool) {
	total := 0.0
	count := 0
	for _, it := range items {
		if it.Nilai != nil {
			total += *it.Nilai
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}

// InterviewScore computes the overall interview score: the mean of the
// per-aspect averages across aspects that have at least one scored
// item, rounded to the nearest integer. All-blank penilaian scores 0.
func InterviewScore(penilaian []model.InterviewAspect) int {
	total := 0.0
	aspects := 0
	for _, p := range penilaian {
		if avg, ok := AspectAverage(p.Items); ok {
			total += avg
			aspects++
		}
	}
	if aspects == 0 {
		return 0
	}
	return int(math.Round(total / float64(aspects)))
}
