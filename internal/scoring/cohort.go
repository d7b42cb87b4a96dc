package scoring

import (
	"math"
	"sort"

	"ujikom_backend/internal/model"
)

// Distribution dimension keys.
const (
	DimGrade   = "grade"
	DimSection = "section"
	DimIDP     = "idp"
)

var Dimensions = []string{DimGrade, DimSection, DimIDP}

type StatusCounts struct {
	Lulus           int `json:"lulus"`
	Dipertimbangkan int `json:"dipertimbangkan"`
	TidakLulus      int `json:"tidakLulus"`
	BelumSelesai    int `json:"belumSelesai"`
}

func (c StatusCounts) Total() int {
	return c.Lulus + c.Dipertimbangkan + c.TidakLulus + c.BelumSelesai
}

// AspectScore carries the running aggregation for one interview aspect:
// the sum and count of per-participant aspect averages, the resulting
// mean, and its contribution ratio across all aspect means.
type AspectScore struct {
	Aspek   string  `json:"aspek"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Ratio   float64 `json:"ratio"`
}

// DistCounts tallies completed outcomes for one category value of a
// distribution dimension. Unfinished participants are excluded here.
type DistCounts struct {
	Lulus           int `json:"lulus"`
	Dipertimbangkan int `json:"dipertimbangkan"`
	TidakLulus      int `json:"tidakLulus"`
}

func (d DistCounts) Total() int {
	return d.Lulus + d.Dipertimbangkan + d.TidakLulus
}

// PassRate is lulus over all completed outcomes in the bucket, 0-1.
func (d DistCounts) PassRate() float64 {
	if d.Total() == 0 {
		return 0
	}
	return float64(d.Lulus) / float64(d.Total())
}

// ParticipantRow pairs a participant with their computed standing.
type ParticipantRow struct {
	Peserta    model.User `json:"peserta"`
	NilaiAkhir float64    `json:"nilaiAkhir"`
	Status     Category   `json:"status"`
}

// CohortInput is the full state a cohort aggregation reads. Results is
// keyed by participant ID; Aspects is the canonical aspect order.
type CohortInput struct {
	JobSite string
	Peserta []model.User
	Results map[uint]*model.ExamResult
	Soal    []model.Question
	Aspects []string
	Weights Weights
	Scheme  Scheme
}

type CohortReport struct {
	JobSite         string                            `json:"jobSite"`
	TotalPeserta    int                               `json:"totalPeserta"`
	AvgScore        float64                           `json:"avgScore"`
	PassRate        float64                           `json:"passRate"`
	StatusCounts    StatusCounts                      `json:"statusCounts"`
	AspectScores    []AspectScore                     `json:"aspectScores"`
	Distribution    map[string]map[string]*DistCounts `json:"distribution"`
	DetailedResults []ParticipantRow                  `json:"detailedResults"`
}

// BuildCohortReport aggregates a (pre-filtered) participant population
// into cohort statistics. The same input always produces the same
// output: the detail table uses a stable sort and every derived number
// uses fixed rounding.
func BuildCohortReport(in CohortInput) *CohortReport {
	r := &CohortReport{
		JobSite:      in.JobSite,
		TotalPeserta: len(in.Peserta),
		Distribution: map[string]map[string]*DistCounts{
			DimGrade:   {},
			DimSection: {},
			DimIDP:     {},
		},
	}

	aspectIndex := make(map[string]int, len(in.Aspects))
	for _, aspek := range in.Aspects {
		aspectIndex[aspek] = len(r.AspectScores)
		r.AspectScores = append(r.AspectScores, AspectScore{Aspek: aspek})
	}

	totalNilai := 0.0
	selesai := 0

	for i := range in.Peserta {
		peserta := &in.Peserta[i]
		result := in.Results[peserta.ID]

		_, nilaiAkhir, cat := ParticipantFinal(peserta, result, in.Soal, in.Weights, in.Scheme)

		switch cat {
		case CategoryLulus:
			r.StatusCounts.Lulus++
		case CategoryDipertimbangkan:
			r.StatusCounts.Dipertimbangkan++
		case CategoryTidakLulus:
			r.StatusCounts.TidakLulus++
		default:
			r.StatusCounts.BelumSelesai++
		}

		r.DetailedResults = append(r.DetailedResults, ParticipantRow{
			Peserta:    *peserta,
			NilaiAkhir: round2(nilaiAkhir),
			Status:     cat,
		})

		if cat != CategoryBelumSelesai {
			totalNilai += nilaiAkhir
			selesai++
		}

		for dim, value := range map[string]string{
			DimGrade:   peserta.Grade,
			DimSection: peserta.Section,
			DimIDP:     peserta.IDP,
		} {
			bucket := r.Distribution[dim][value]
			if bucket == nil {
				bucket = &DistCounts{}
				r.Distribution[dim][value] = bucket
			}
			switch cat {
			case CategoryLulus:
				bucket.Lulus++
			case CategoryDipertimbangkan:
				bucket.Dipertimbangkan++
			case CategoryTidakLulus:
				bucket.TidakLulus++
			}
		}

		if result != nil && result.SkorInterview != nil {
			for _, p := range result.Penilaian {
				idx, known := aspectIndex[p.Aspek]
				if !known {
					continue
				}
				if avg, ok := AspectAverage(p.Items); ok {
					r.AspectScores[idx].Total += avg
					r.AspectScores[idx].Count++
				}
			}
		}
	}

	if selesai > 0 {
		r.AvgScore = round2(totalNilai / float64(selesai))
		r.PassRate = round2(float64(r.StatusCounts.Lulus) / float64(selesai) * 100)
	}

	totalOfAverages := 0.0
	for i := range r.AspectScores {
		if r.AspectScores[i].Count > 0 {
			r.AspectScores[i].Average = r.AspectScores[i].Total / float64(r.AspectScores[i].Count)
		}
		totalOfAverages += r.AspectScores[i].Average
	}
	if totalOfAverages > 0 {
		for i := range r.AspectScores {
			r.AspectScores[i].Ratio = r.AspectScores[i].Average / totalOfAverages * 100
		}
	}

	sort.SliceStable(r.DetailedResults, func(i, j int) bool {
		return r.DetailedResults[i].NilaiAkhir > r.DetailedResults[j].NilaiAkhir
	})

	return r
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
