package scoring

import (
	"testing"

	"ujikom_backend/internal/model"
)

func ptr(v float64) *float64 { return &v }

func item(nilai *float64) model.InterviewItem {
	return model.InterviewItem{Pertanyaan: "pertanyaan", Nilai: nilai, Catatan: NoteForRating(nilai)}
}

func TestCatatanOtomatisBrackets(t *testing.T) {
	cases := []struct {
		nilai float64
		want  string
	}{
		{0, NoteTidakMemahami},
		{55, NoteTidakMemahami},
		{56, NotePernahMendengar},
		{60, NotePernahMendengar},
		{64, NotePernahMendengar},
		{65, NoteCukupMemahami},
		{74, NoteCukupMemahami},
		{75, NoteSudahMemahami},
		{79, NoteSudahMemahami},
		{80, NoteSangatMemahami},
		{90, NoteSangatMemahami},
		{100, NoteSangatMemahami},
	}
	for _, c := range cases {
		if got := CatatanOtomatis(c.nilai); got != c.want {
			t.Errorf("CatatanOtomatis(%v) = %q, want %q", c.nilai, got, c.want)
		}
	}
}

func TestNoteForRatingBlank(t *testing.T) {
	if got := NoteForRating(nil); got != "" {
		t.Errorf("NoteForRating(nil) = %q, want blank", got)
	}
	if got := NoteForRating(ptr(90)); got != NoteSangatMemahami {
		t.Errorf("NoteForRating(90) = %q, want %q", got, NoteSangatMemahami)
	}
}

func TestAspectAverage(t *testing.T) {
	items := []model.InterviewItem{item(ptr(90)), item(nil), item(ptr(80))}
	avg, ok := AspectAverage(items)
	if !ok || avg != 85 {
		t.Errorf("AspectAverage = %v/%v, want 85/true", avg, ok)
	}

	if _, ok := AspectAverage([]model.InterviewItem{item(nil)}); ok {
		t.Error("aspect with only blank items reported as scored")
	}
	if _, ok := AspectAverage(nil); ok {
		t.Error("empty aspect reported as scored")
	}
}

func TestInterviewScoreExcludesEmptyAspects(t *testing.T) {
	penilaian := []model.InterviewAspect{
		{Aspek: "Aspek Safety", Items: []model.InterviewItem{item(ptr(90))}},
		{Aspek: "Aspek Teknik", Items: []model.InterviewItem{item(ptr(85)), item(ptr(85))}},
		{Aspek: "Aspek Maintenance Management"},
		{Aspek: "Aspek HPU WAY", Items: []model.InterviewItem{item(nil)}},
	}
	// Mean of 90 and 85, not dragged down by the two unscored aspects.
	if got := InterviewScore(penilaian); got != 88 {
		t.Errorf("InterviewScore = %d, want 88", got)
	}
}

func TestInterviewScoreRounding(t *testing.T) {
	penilaian := []model.InterviewAspect{
		{Aspek: "Aspek Safety", Items: []model.InterviewItem{item(ptr(90))}},
		{Aspek: "Aspek Teknik", Items: []model.InterviewItem{item(ptr(85))}},
	}
	if got := InterviewScore(penilaian); got != 88 { // 87.5 rounds up
		t.Errorf("InterviewScore = %d, want 88", got)
	}

	if got := InterviewScore(nil); got != 0 {
		t.Errorf("InterviewScore(nil) = %d, want 0", got)
	}
}
