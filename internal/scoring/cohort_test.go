package scoring

import (
	"math"
	"reflect"
	"testing"

	"ujikom_backend/internal/model"
)

func peserta(id uint, nama, grade, section, idp string) model.User {
	return model.User{
		BaseModel: model.BaseModel{ID: id},
		NIK:       nama,
		Nama:      nama,
		Role:      model.RolePeserta,
		Grade:     grade,
		JobSite:   "Site A",
		Section:   section,
		IDP:       idp,
	}
}

func interviewed(pesertaID uint, skor int, penilaian []model.InterviewAspect) *model.ExamResult {
	return &model.ExamResult{
		PesertaID:     pesertaID,
		SkorTertulis:  intPtr(0),
		JumlahSoal:    intPtr(0),
		JawabanBenar:  intPtr(0),
		JawabanSalah:  intPtr(0),
		SkorInterview: intPtr(skor),
		Penilaian:     penilaian,
	}
}

func testCohortInput() CohortInput {
	aspek := func(name string, nilai float64) model.InterviewAspect {
		return model.InterviewAspect{Aspek: name, Items: []model.InterviewItem{item(ptr(nilai))}}
	}
	return CohortInput{
		JobSite: "Semua",
		Peserta: []model.User{
			peserta(1, "budi", "M1", "Engine Assembly", "ENGINE-01"),
			peserta(2, "citra", "M2", "Quality Control", "ELECTRICAL-01"),
			peserta(3, "dewi", "M1", "Engine Assembly", "ENGINE-01"),
			peserta(4, "eko", "M3", "Body Repair", "CHASSIS-01"),
		},
		Results: map[uint]*model.ExamResult{
			// No questions in the bank, so final = 0.75 * interview.
			1: interviewed(1, 95, []model.InterviewAspect{aspek("Aspek Safety", 90), aspek("Aspek Teknik", 80)}),
			2: interviewed(2, 96, []model.InterviewAspect{aspek("Aspek Safety", 70), aspek("Aspek Teknik", 60)}),
			3: interviewed(3, 91, nil), // 68.25 -> dipertimbangkan
			4: {PesertaID: 4},          // exam not taken, interview pending
		},
		Aspects: model.DefaultAspects,
		Weights: DefaultWeights,
		Scheme:  SchemeStandard,
	}
}

func TestCohortStatusCountsAndRates(t *testing.T) {
	in := testCohortInput()
	r := BuildCohortReport(in)

	if r.TotalPeserta != 4 {
		t.Errorf("TotalPeserta = %d, want 4", r.TotalPeserta)
	}
	want := StatusCounts{Lulus: 2, Dipertimbangkan: 1, BelumSelesai: 1}
	if r.StatusCounts != want {
		t.Errorf("StatusCounts = %+v, want %+v", r.StatusCounts, want)
	}
	if r.StatusCounts.Total() != len(in.Peserta) {
		t.Errorf("status counts sum to %d, want %d", r.StatusCounts.Total(), len(in.Peserta))
	}
	// 2 of 3 completed passed.
	if r.PassRate != 66.67 {
		t.Errorf("PassRate = %v, want 66.67", r.PassRate)
	}
	// (71.25 + 72 + 68.25) / 3
	if r.AvgScore != 70.5 {
		t.Errorf("AvgScore = %v, want 70.5", r.AvgScore)
	}
}

func TestCohortDetailedResultsSorted(t *testing.T) {
	r := BuildCohortReport(testCohortInput())
	if len(r.DetailedResults) != 4 {
		t.Fatalf("DetailedResults has %d rows, want 4", len(r.DetailedResults))
	}
	for i := 1; i < len(r.DetailedResults); i++ {
		if r.DetailedResults[i-1].NilaiAkhir < r.DetailedResults[i].NilaiAkhir {
			t.Errorf("row %d (%v) sorted above row %d (%v)",
				i, r.DetailedResults[i].NilaiAkhir, i-1, r.DetailedResults[i-1].NilaiAkhir)
		}
	}
	if r.DetailedResults[0].Peserta.ID != 2 {
		t.Errorf("top row is peserta %d, want 2", r.DetailedResults[0].Peserta.ID)
	}
	if last := r.DetailedResults[3]; last.Status != CategoryBelumSelesai {
		t.Errorf("bottom row status = %q, want belumSelesai", last.Status)
	}
}

func TestCohortAspectRatiosNormalized(t *testing.T) {
	r := BuildCohortReport(testCohortInput())

	sum := 0.0
	for _, a := range r.AspectScores {
		sum += a.Ratio
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("aspect ratios sum to %v, want 100", sum)
	}

	// Safety: (90+70)/2 = 80, Teknik: (80+60)/2 = 70.
	byName := map[string]AspectScore{}
	for _, a := range r.AspectScores {
		byName[a.Aspek] = a
	}
	if got := byName["Aspek Safety"].Average; got != 80 {
		t.Errorf("Safety average = %v, want 80", got)
	}
	if got := byName["Aspek Teknik"].Average; got != 70 {
		t.Errorf("Teknik average = %v, want 70", got)
	}
	if got := byName["Aspek HPU WAY"].Ratio; got != 0 {
		t.Errorf("unscored aspect ratio = %v, want 0", got)
	}
}

func TestCohortAspectRatiosAllZero(t *testing.T) {
	in := testCohortInput()
	for _, res := range in.Results {
		res.Penilaian = nil
	}
	r := BuildCohortReport(in)
	for _, a := range r.AspectScores {
		if a.Ratio != 0 {
			t.Errorf("ratio for %s = %v, want 0 when no aspect data", a.Aspek, a.Ratio)
		}
	}
}

func TestCohortDistributionExcludesUnfinished(t *testing.T) {
	r := BuildCohortReport(testCohortInput())

	grade := r.Distribution[DimGrade]
	if grade["M1"] == nil || grade["M1"].Lulus != 1 || grade["M1"].Dipertimbangkan != 1 {
		t.Errorf("grade M1 bucket = %+v, want 1 lulus / 1 dipertimbangkan", grade["M1"])
	}
	// Peserta 4 never finished; its grade bucket stays empty.
	if c := grade["M3"]; c != nil && c.Total() != 0 {
		t.Errorf("grade M3 bucket = %+v, want no completed outcomes", c)
	}
	if idp := r.Distribution[DimIDP]["ELECTRICAL-01"]; idp == nil || idp.Lulus != 1 {
		t.Errorf("idp ELECTRICAL-01 bucket = %+v, want 1 lulus", idp)
	}
}

func TestCohortIdempotent(t *testing.T) {
	a := BuildCohortReport(testCohortInput())
	b := BuildCohortReport(testCohortInput())
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input produced different cohort reports")
	}
}

func TestCohortEmptyPopulation(t *testing.T) {
	r := BuildCohortReport(CohortInput{JobSite: "Site C", Aspects: model.DefaultAspects, Weights: DefaultWeights, Scheme: SchemeStandard})
	if r.TotalPeserta != 0 || r.AvgScore != 0 || r.PassRate != 0 {
		t.Errorf("empty cohort = %+v, want zeros", r)
	}
	if len(r.DetailedResults) != 0 {
		t.Errorf("empty cohort has %d detail rows", len(r.DetailedResults))
	}
}
