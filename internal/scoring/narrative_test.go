package scoring

import (
	"errors"
	"strings"
	"testing"

	"ujikom_backend/internal/model"
)

func namedItem(pertanyaan string, nilai float64) model.InterviewItem {
	return model.InterviewItem{Pertanyaan: pertanyaan, Nilai: ptr(nilai)}
}

func TestInterviewAnalysisEmpty(t *testing.T) {
	_, _, _, err := InterviewAnalysis("budi", nil)
	if !errors.Is(err, ErrPenilaianKosong) {
		t.Fatalf("err = %v, want ErrPenilaianKosong", err)
	}

	// An item without a rating or without a question does not count.
	penilaian := []model.InterviewAspect{{
		Aspek: "Aspek Safety",
		Items: []model.InterviewItem{
			{Pertanyaan: "APD dasar", Nilai: nil},
			{Pertanyaan: "   ", Nilai: ptr(80)},
		},
	}}
	if _, _, _, err := InterviewAnalysis("budi", penilaian); !errors.Is(err, ErrPenilaianKosong) {
		t.Fatalf("err = %v, want ErrPenilaianKosong", err)
	}
}

func TestInterviewAnalysisSelectsStrengthsAndWeaknesses(t *testing.T) {
	penilaian := []model.InterviewAspect{
		{Aspek: "Aspek Safety", Items: []model.InterviewItem{
			namedItem("APD dasar", 90),
			namedItem("LOTO", 85),
			namedItem("Izin kerja", 78),
			namedItem("Pelaporan insiden", 76),
		}},
		{Aspek: "Aspek Teknik", Items: []model.InterviewItem{
			namedItem("Membaca skematik", 65),
			namedItem("Kalibrasi alat", 55),
			namedItem("Troubleshooting dasar", 69),
		}},
	}

	ringkasan, keunggulan, saran, err := InterviewAnalysis("budi", penilaian)
	if err != nil {
		t.Fatalf("InterviewAnalysis: %v", err)
	}

	// Top three of the >= 75 items, best first.
	for _, want := range []string{"APD dasar", "LOTO", "Izin kerja"} {
		if !strings.Contains(keunggulan, want) {
			t.Errorf("keunggulan missing %q:\n%s", want, keunggulan)
		}
	}
	if strings.Contains(keunggulan, "Pelaporan insiden") {
		t.Errorf("keunggulan lists a fourth item:\n%s", keunggulan)
	}

	// All three < 70 items, weakest first.
	if !strings.Contains(saran, "Kalibrasi alat") || !strings.Contains(saran, "Membaca skematik") || !strings.Contains(saran, "Troubleshooting dasar") {
		t.Errorf("saran missing weak items:\n%s", saran)
	}
	if first := strings.Index(saran, "Kalibrasi alat"); first > strings.Index(saran, "Membaca skematik") {
		t.Errorf("weakest item not listed first:\n%s", saran)
	}

	// Safety avg 82.25 vs Teknik avg 63: spread > 10 names both aspects.
	if !strings.Contains(ringkasan, "budi") {
		t.Errorf("ringkasan missing participant name:\n%s", ringkasan)
	}
	if !strings.Contains(ringkasan, "Aspek Safety") || !strings.Contains(ringkasan, "Aspek Teknik") {
		t.Errorf("ringkasan missing aspect comparison:\n%s", ringkasan)
	}
}

func TestInterviewAnalysisBalancedFallbacks(t *testing.T) {
	penilaian := []model.InterviewAspect{{
		Aspek: "Aspek Safety",
		Items: []model.InterviewItem{namedItem("APD dasar", 72), namedItem("LOTO", 73)},
	}}

	ringkasan, keunggulan, saran, err := InterviewAnalysis("citra", penilaian)
	if err != nil {
		t.Fatalf("InterviewAnalysis: %v", err)
	}
	if !strings.Contains(keunggulan, "cukup merata") {
		t.Errorf("keunggulan fallback missing:\n%s", keunggulan)
	}
	if !strings.Contains(saran, "tidak ada area kelemahan yang signifikan") {
		t.Errorf("saran fallback missing:\n%s", saran)
	}
	if !strings.Contains(ringkasan, "seimbang") {
		t.Errorf("ringkasan should report balanced performance:\n%s", ringkasan)
	}
}

func TestCohortConclusion(t *testing.T) {
	r := BuildCohortReport(testCohortInput())
	text := CohortConclusion(r)

	for _, want := range []string{
		"Job Site **Semua**",
		"rata-rata skor akhir 70.50%",
		"tingkat kelulusan 66.67%",
		"**Aspek Safety** (rata-rata skor 80.0)",
		"**Aspek Teknik** (rata-rata skor 70.0)",
		"**Rekomendasi Strategis:**",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("conclusion missing %q:\n%s", want, text)
		}
	}

	// Same report, same narrative.
	if again := CohortConclusion(BuildCohortReport(testCohortInput())); again != text {
		t.Error("conclusion differs between identical reports")
	}
}

func TestCohortConclusionNoParticipants(t *testing.T) {
	text := CohortConclusion(&CohortReport{JobSite: "Site C"})
	if text != "Tidak ada data peserta untuk dianalisis pada Job Site ini." {
		t.Errorf("empty-site conclusion = %q", text)
	}
}

func TestCohortConclusionNoInterviewData(t *testing.T) {
	in := testCohortInput()
	for _, res := range in.Results {
		res.Penilaian = nil
	}
	text := CohortConclusion(BuildCohortReport(in))
	if !strings.Contains(text, "Data interview belum cukup") {
		t.Errorf("conclusion missing insufficient-data wording:\n%s", text)
	}
}

func TestAnalyzeDistributionOrdering(t *testing.T) {
	dist := map[string]*DistCounts{
		"M1": {Lulus: 3},
		"M2": {Lulus: 1, TidakLulus: 2},
		"M3": {},
	}
	text := analyzeDistribution(dist, "Grade")
	if !strings.Contains(text, "performa tertinggi ditunjukkan oleh **M1**") {
		t.Errorf("top group wrong:\n%s", text)
	}
	if !strings.Contains(text, "**M2** menunjukkan tantangan terbesar") {
		t.Errorf("bottom group wrong:\n%s", text)
	}

	if got := analyzeDistribution(map[string]*DistCounts{}, "Section"); !strings.Contains(got, "Tidak ada data kelulusan") {
		t.Errorf("empty distribution fallback = %q", got)
	}
}
