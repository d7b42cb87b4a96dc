package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"ujikom_backend/internal/model"
)

// ErrPenilaianKosong is returned when an interview analysis is requested
// before any item has a question and a rating.
var ErrPenilaianKosong = errors.New("penilaian belum diisi")

// InterviewAnalysis builds the templated ringkasan, keunggulan and
// saran texts for one participant's interview: up to three strong items
// (rating >= 75), up to three weak items (rating < 70, ties broken by
// original item order), and a summary comparing the strongest and
// weakest aspect.
func InterviewAnalysis(nama string, penilaian []model.InterviewAspect) (ringkasan, keunggulan, saran string, err error) {
	type scoredItem struct {
		pertanyaan string
		aspek      string
		nilai      float64
	}

	var valid []scoredItem
	for _, p := range penilaian {
		for _, it := range p.Items {
			if it.Nilai != nil && strings.TrimSpace(it.Pertanyaan) != "" {
				valid = append(valid, scoredItem{pertanyaan: it.Pertanyaan, aspek: p.Aspek, nilai: *it.Nilai})
			}
		}
	}
	if len(valid) == 0 {
		return "", "", "", ErrPenilaianKosong
	}

	sorted := make([]scoredItem, len(valid))
	copy(sorted, valid)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].nilai > sorted[j].nilai })

	var strengths []scoredItem
	for _, it := range sorted {
		if len(strengths) == 3 {
			break
		}
		if it.nilai >= 75 {
			strengths = append(strengths, it)
		}
	}

	// The three lowest-rated items, weakest first.
	var weaknesses []scoredItem
	for i := len(sorted) - 1; i >= 0 && len(weaknesses) < 3; i-- {
		if sorted[i].nilai < 70 {
			weaknesses = append(weaknesses, sorted[i])
		}
	}

	if len(strengths) > 0 {
		var b strings.Builder
		b.WriteString("Peserta menunjukkan pemahaman yang baik pada beberapa area kunci:\n")
		for i, it := range strengths {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "- Pemahaman kuat pada topik %q (%s) dengan nilai %g.", it.pertanyaan, it.aspek, it.nilai)
		}
		keunggulan = b.String()
	} else {
		keunggulan = "Peserta menunjukkan pemahaman yang cukup merata di berbagai aspek yang diujikan."
	}

	if len(weaknesses) > 0 {
		var b strings.Builder
		b.WriteString("Area yang memerlukan pengembangan lebih lanjut:\n")
		for i, it := range weaknesses {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "- Perlu peningkatan pemahaman pada topik %q (%s) yang mendapat nilai %g.", it.pertanyaan, it.aspek, it.nilai)
		}
		saran = b.String()
	} else {
		saran = "Secara umum, tidak ada area kelemahan yang signifikan. Disarankan untuk terus memperdalam pengetahuan secara menyeluruh."
	}

	type aspekAvg struct {
		aspek string
		score float64
	}
	var averages []aspekAvg
	for _, p := range penilaian {
		if avg, ok := AspectAverage(p.Items); ok {
			averages = append(averages, aspekAvg{aspek: p.Aspek, score: round2(avg)})
		}
	}
	sort.SliceStable(averages, func(i, j int) bool { return averages[i].score > averages[j].score })

	var b strings.Builder
	fmt.Fprintf(&b, "Peserta, %s, telah menyelesaikan sesi interview. ", nama)
	if len(averages) > 0 {
		strongest := averages[0]
		weakest := averages[len(averages)-1]
		fmt.Fprintf(&b, "Analisis menunjukkan kompetensi terkuat pada %s dengan skor rata-rata %.0f. ", strongest.aspek, strongest.score)
		if strongest.score > weakest.score+10 {
			fmt.Fprintf(&b, "Sebaliknya, area yang paling membutuhkan perhatian adalah %s (skor %.0f). ", weakest.aspek, weakest.score)
		} else {
			b.WriteString("Performa cukup seimbang di semua aspek. ")
		}
	} else {
		b.WriteString("Data penilaian belum cukup untuk membuat ringkasan analitis. ")
	}
	b.WriteString("Rekomendasi pengembangan telah diidentifikasi untuk meningkatkan performa di masa depan.")
	ringkasan = b.String()

	return ringkasan, keunggulan, saran, nil
}

// CohortConclusion renders the narrative analysis block of a site
// report. It degrades to explicit insufficient-data wording instead of
// dividing by zero or emitting empty lists.
func CohortConclusion(r *CohortReport) string {
	if r.TotalPeserta == 0 {
		return "Tidak ada data peserta untuk dianalisis pada Job Site ini."
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		"Analisis komprehensif untuk Job Site **%s** menunjukkan gambaran performa yang beragam. Dengan **rata-rata skor akhir %.2f%%** dan **tingkat kelulusan %.2f%%**, terdapat beberapa area kunci yang memerlukan perhatian.\n\n",
		r.JobSite, r.AvgScore, r.PassRate)

	var scored []AspectScore
	for _, a := range r.AspectScores {
		if a.Average > 0 {
			scored = append(scored, a)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Average > scored[j].Average })

	if len(scored) > 0 {
		strongest := scored[0]
		weakest := scored[len(scored)-1]
		fmt.Fprintf(&b,
			"**Kekuatan Utama & Area Pengembangan:**\nDari sisi interview, kompetensi terkuat secara kolektif berada pada **%s** (rata-rata skor %.1f). Ini mengindikasikan fondasi yang solid di area tersebut. Sebaliknya, **%s** (rata-rata skor %.1f) menjadi area pengembangan prioritas yang membutuhkan intervensi strategis seperti pelatihan atau mentoring.\n\n",
			strongest.Aspek, strongest.Average, weakest.Aspek, weakest.Average)
	} else {
		b.WriteString("**Kekuatan Utama & Area Pengembangan:**\nData interview belum cukup untuk analisis mendalam. Penilaian lebih lanjut diperlukan untuk mengidentifikasi kekuatan dan kelemahan kompetensi.\n\n")
	}

	fmt.Fprintf(&b, "**Distribusi Performa:**\n- %s\n- %s\n- %s\n\n",
		analyzeDistribution(r.Distribution[DimGrade], "Grade"),
		analyzeDistribution(r.Distribution[DimSection], "Section"),
		analyzeDistribution(r.Distribution[DimIDP], "IDP"))

	weakestArea := "yang teridentifikasi lemah"
	if len(scored) > 0 {
		weakestArea = scored[len(scored)-1].Aspek
	}
	topGroup := "teratas"
	if entries := sortedDistEntries(r.Distribution[DimGrade]); len(entries) > 0 {
		topGroup = entries[0].name
	}
	fmt.Fprintf(&b,
		"**Rekomendasi Strategis:**\nBerdasarkan data ini, direkomendasikan untuk: \n1. Mengalokasikan sumber daya pelatihan untuk memperkuat area **%s**.\n2. Melakukan *best practice sharing* dari kelompok dengan performa tertinggi (misal: dari Grade/Section/IDP **%s**) ke kelompok lain.\n3. Mengevaluasi kembali materi uji atau metode pengajaran untuk area dengan tingkat kelulusan terendah.",
		weakestArea, topGroup)

	return b.String()
}

type distEntry struct {
	name   string
	counts DistCounts
}

// sortedDistEntries returns the buckets that have at least one
// completed outcome, ordered by pass rate descending. Ties fall back to
// name order so the narrative stays deterministic.
func sortedDistEntries(dist map[string]*DistCounts) []distEntry {
	var entries []distEntry
	for name, c := range dist {
		if c != nil && c.Total() > 0 {
			entries = append(entries, distEntry{name: name, counts: *c})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		ri, rj := entries[i].counts.PassRate(), entries[j].counts.PassRate()
		if ri != rj {
			return ri > rj
		}
		return entries[i].name < entries[j].name
	})
	return entries
}

func analyzeDistribution(dist map[string]*DistCounts, category string) string {
	entries := sortedDistEntries(dist)
	if len(entries) == 0 {
		return fmt.Sprintf("Tidak ada data kelulusan untuk dianalisis berdasarkan %s.", category)
	}

	top := entries[0]
	bottom := entries[len(entries)-1]

	text := fmt.Sprintf("Berdasarkan **%s**, performa tertinggi ditunjukkan oleh **%s**, dengan tingkat kelulusan yang menonjol. ", category, top.name)
	if top.name != bottom.name {
		text += fmt.Sprintf("Sementara itu, **%s** menunjukkan tantangan terbesar dan memerlukan perhatian khusus untuk peningkatan.", bottom.name)
	}
	return text
}
