package scoring

import (
	"strings"
	"testing"

	"ujikom_backend/internal/model"
)

func intPtr(v int) *int { return &v }

func TestFinalScoreWeighting(t *testing.T) {
	// W=80, I=88 -> 0.25*80 + 0.75*88 = 86
	final, completed := FinalScore(80, intPtr(88), DefaultWeights)
	if !completed {
		t.Fatal("result with interview score reported as not completed")
	}
	if final != 86 {
		t.Errorf("final = %v, want 86", final)
	}
	if got := Classify(final, completed, SchemeStrict); got != CategoryLulus {
		t.Errorf("Classify(86, strict) = %q, want lulus", got)
	}
	if got := Classify(final, completed, SchemeStandard); got != CategoryLulus {
		t.Errorf("Classify(86, standard) = %q, want lulus", got)
	}
}

func TestFinalScoreRange(t *testing.T) {
	for w := 0; w <= 100; w += 25 {
		for i := 0; i <= 100; i += 25 {
			final, _ := FinalScore(float64(w), intPtr(i), DefaultWeights)
			if final < 0 || final > 100 {
				t.Errorf("FinalScore(%d,%d) = %v outside [0,100]", w, i, final)
			}
		}
	}
}

func TestClassifyTotality(t *testing.T) {
	for _, s := range []Scheme{SchemeStandard, SchemeStrict} {
		for f := 0.0; f <= 100; f += 0.5 {
			switch Classify(f, true, s) {
			case CategoryLulus, CategoryDipertimbangkan, CategoryTidakLulus:
			default:
				t.Fatalf("Classify(%v, completed) returned no category", f)
			}
		}
	}
	if got := Classify(95, false, SchemeStandard); got != CategoryBelumSelesai {
		t.Errorf("incomplete result classified %q, want belumSelesai", got)
	}
}

func TestClassifyThresholdEdges(t *testing.T) {
	cases := []struct {
		final float64
		s     Scheme
		want  Category
	}{
		{70, SchemeStandard, CategoryLulus},
		{69.99, SchemeStandard, CategoryDipertimbangkan},
		{68, SchemeStandard, CategoryDipertimbangkan},
		{67.99, SchemeStandard, CategoryTidakLulus},
		{75, SchemeStrict, CategoryLulus},
		{74.99, SchemeStrict, CategoryDipertimbangkan},
		{70, SchemeStrict, CategoryDipertimbangkan},
		{69.99, SchemeStrict, CategoryTidakLulus},
	}
	for _, c := range cases {
		if got := Classify(c.final, true, c.s); got != c.want {
			t.Errorf("Classify(%v, %+v) = %q, want %q", c.final, c.s, got, c.want)
		}
	}
}

func TestNextGrade(t *testing.T) {
	grades := []string{"M1", "M2", "M3", "Foreman"}
	cases := []struct {
		current, want string
	}{
		{"M1", "M2"},
		{"M3", "Foreman"},
		{"Foreman", NextGradeSentinel},
		{"unknown", NextGradeSentinel},
	}
	for _, c := range cases {
		if got := NextGrade(c.current, grades); got != c.want {
			t.Errorf("NextGrade(%q) = %q, want %q", c.current, got, c.want)
		}
	}
}

func TestRecommendationTexts(t *testing.T) {
	if got := Recommendation(CategoryLulus, "Foreman"); !strings.Contains(got, "DIREKOMENDASIKAN UNTUK NAIK KE GRADE Foreman") {
		t.Errorf("lulus recommendation = %q", got)
	}
	if got := Recommendation(CategoryDipertimbangkan, "M2"); !strings.Contains(got, "DIPERTIMBANGKAN") {
		t.Errorf("dipertimbangkan recommendation = %q", got)
	}
	if got := Recommendation(CategoryTidakLulus, "M2"); !strings.Contains(got, "TIDAK DIREKOMENDASIKAN") {
		t.Errorf("tidakLulus recommendation = %q", got)
	}
}

func TestParticipantFinal(t *testing.T) {
	peserta := &model.User{
		BaseModel: model.BaseModel{ID: 3},
		Role:      model.RolePeserta,
		Grade:     "M1",
		IDP:       "ENGINE-01",
	}
	soal := []model.Question{
		q(1, 10, "C"),
		q(2, 15, "B"),
		{BaseModel: model.BaseModel{ID: 3}, IDP: "ELECTRICAL-01", Grade: "M2", Nilai: 50, JawabanBenar: "A"},
	}
	result := &model.ExamResult{
		PesertaID:     3,
		SkorTertulis:  intPtr(20),
		SkorInterview: intPtr(88),
	}

	percent, final, cat := ParticipantFinal(peserta, result, soal, DefaultWeights, SchemeStandard)
	if percent != 80 {
		t.Errorf("writtenPercent = %v, want 80 (20 of 25, other-pool question ignored)", percent)
	}
	if final != 86 {
		t.Errorf("final = %v, want 86", final)
	}
	if cat != CategoryLulus {
		t.Errorf("category = %q, want lulus", cat)
	}

	// No interview yet: final is undefined, category belumSelesai.
	_, _, cat = ParticipantFinal(peserta, &model.ExamResult{PesertaID: 3, SkorTertulis: intPtr(25)}, soal, DefaultWeights, SchemeStandard)
	if cat != CategoryBelumSelesai {
		t.Errorf("category without interview = %q, want belumSelesai", cat)
	}

	// Missing result behaves like an unfinished one.
	_, _, cat = ParticipantFinal(peserta, nil, soal, DefaultWeights, SchemeStandard)
	if cat != CategoryBelumSelesai {
		t.Errorf("category without result = %q, want belumSelesai", cat)
	}
}
