package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"ujikom_backend/internal/config"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/repository"
	"ujikom_backend/internal/scoring"
	"ujikom_backend/internal/util"
	"ujikom_backend/pkg/logger"
	"ujikom_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// siteReportTTL bounds how stale a cached cohort report can get.
const siteReportTTL = 60 * time.Second

type ReportService struct {
	UserRepo     *repository.UserRepository
	QuestionRepo *repository.QuestionRepository
	ResultRepo   *repository.ExamResultRepository
	MasterRepo   *repository.MasterDataRepository
	Redis        *redis.Client
	Cfg          *config.Config
}

func NewReportService(userRepo *repository.UserRepository, questionRepo *repository.QuestionRepository, resultRepo *repository.ExamResultRepository, masterRepo *repository.MasterDataRepository, rdb *redis.Client, cfg *config.Config) *ReportService {
	return &ReportService{
		UserRepo:     userRepo,
		QuestionRepo: questionRepo,
		ResultRepo:   resultRepo,
		MasterRepo:   masterRepo,
		Redis:        rdb,
		Cfg:          cfg,
	}
}

// ChartSeries is a labels + values pair ready for a bar or doughnut
// chart on the client.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type SiteReport struct {
	Report      *scoring.CohortReport `json:"report"`
	Conclusion  string                `json:"conclusion"`
	AspectChart ChartSeries           `json:"aspectChart"`
	StatusChart ChartSeries           `json:"statusChart"`
	GeneratedAt time.Time             `json:"generatedAt"`
	Aspects     []scoring.AspectScore `json:"aspects"`
	Scheme      scoring.Scheme        `json:"scheme"`
}

// AspectAverageRow is one aspect's mean on a participant report.
type AspectAverageRow struct {
	Aspek   string  `json:"aspek"`
	Average float64 `json:"average"`
}

// ParticipantReport is the printable per-participant result sheet.
type ParticipantReport struct {
	Peserta   model.User `json:"peserta"`
	MasaKerja string     `json:"masaKerja"`

	SkorTertulis   *int    `json:"skorTertulis"`
	PersenTertulis float64 `json:"persenTertulis"`
	JumlahSoal     *int    `json:"jumlahSoal"`
	JawabanBenar   *int    `json:"jawabanBenar"`
	JawabanSalah   *int    `json:"jawabanSalah"`

	SkorInterview    *int                      `json:"skorInterview"`
	TanggalInterview string                    `json:"tanggalInterview"`
	Penguji          []model.InterviewExaminer `json:"penguji"`
	AspectAverages   []AspectAverageRow        `json:"aspectAverages"`

	NilaiAkhir  float64 `json:"nilaiAkhir"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"statusLabel"`
	Rekomendasi string  `json:"rekomendasi"`

	Ringkasan  string `json:"ringkasan"`
	Keunggulan string `json:"keunggulan"`
	Saran      string `json:"saran"`
}

func (s *ReportService) scheme() scoring.Scheme {
	sc := s.Cfg.ScoringSettings()
	if sc.Scheme == "strict" {
		return scoring.SchemeStrict
	}
	return scoring.Scheme{
		Pass:     sc.PassThreshold,
		Consider: sc.ConsiderThreshold,
	}
}

func (s *ReportService) weights() scoring.Weights {
	sc := s.Cfg.ScoringSettings()
	return scoring.Weights{
		Tertulis:  sc.WrittenWeight,
		Interview: sc.InterviewWeight,
	}
}

// BuildSiteReport aggregates one job site (or "Semua" for all sites the
// caller may see) into the cohort report, narrative conclusion and
// chart series. Results are cached briefly in Redis.
func (s *ReportService) BuildSiteReport(ctx context.Context, jobSite string, claims *util.Claims) (*SiteReport, error) {
	if jobSite == "" {
		jobSite = "Semua"
	}
	if claims != nil && jobSite != "Semua" && !claims.CanAccessSite(jobSite) {
		return nil, util.ErrPermissionDenied
	}

	cacheKey := s.cacheKey(jobSite, claims)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var report SiteReport
			if err := json.Unmarshal([]byte(cached), &report); err == nil {
				monitoring.ReportBuilds.WithLabelValues("hit").Inc()
				return &report, nil
			}
		}
	}
	monitoring.ReportBuilds.WithLabelValues("miss").Inc()

	var allowed []string
	if claims != nil && !claims.IsMasterAdmin() {
		allowed = claims.JobSites
	}
	peserta, err := s.UserRepo.FindParticipants(jobSite, allowed)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(peserta))
	for i := range peserta {
		ids[i] = peserta[i].ID
	}
	results, err := s.ResultRepo.FindByPesertaIDs(ids)
	if err != nil {
		return nil, err
	}

	soal, err := s.QuestionRepo.FindAll("", "")
	if err != nil {
		return nil, err
	}

	cohort := scoring.BuildCohortReport(scoring.CohortInput{
		JobSite: jobSite,
		Peserta: peserta,
		Results: results,
		Soal:    soal,
		Aspects: model.DefaultAspects,
		Weights: s.weights(),
		Scheme:  s.scheme(),
	})

	report := &SiteReport{
		Report:      cohort,
		Conclusion:  scoring.CohortConclusion(cohort),
		GeneratedAt: time.Now(),
		Aspects:     cohort.AspectScores,
		Scheme:      s.scheme(),
	}
	for _, a := range cohort.AspectScores {
		report.AspectChart.Labels = append(report.AspectChart.Labels, a.Aspek)
		report.AspectChart.Values = append(report.AspectChart.Values, a.Ratio)
	}
	report.StatusChart = ChartSeries{
		Labels: []string{
			scoring.CategoryLulus.Label(),
			scoring.CategoryDipertimbangkan.Label(),
			scoring.CategoryTidakLulus.Label(),
			scoring.CategoryBelumSelesai.Label(),
		},
		Values: []float64{
			float64(cohort.StatusCounts.Lulus),
			float64(cohort.StatusCounts.Dipertimbangkan),
			float64(cohort.StatusCounts.TidakLulus),
			float64(cohort.StatusCounts.BelumSelesai),
		},
	}

	if s.Redis != nil {
		payload, err := json.Marshal(report)
		if err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, siteReportTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache site report", zap.Error(err))
			}
		}
	}

	return report, nil
}

// BuildParticipantReport assembles the per-participant result sheet:
// biodata, written breakdown, interview detail and the final standing
// with its recommendation text.
func (s *ReportService) BuildParticipantReport(pesertaID uint, claims *util.Claims) (*ParticipantReport, error) {
	peserta, err := s.UserRepo.FindByID(pesertaID)
	if err != nil || peserta.Role != model.RolePeserta {
		return nil, util.ErrPesertaNotFound
	}
	if err := ensureSiteAccess(claims, peserta.JobSite); err != nil {
		return nil, err
	}

	result, err := s.ResultRepo.FindByPesertaID(pesertaID)
	if err != nil {
		return nil, util.ErrHasilNotFound
	}

	soal, err := s.QuestionRepo.FindPool(peserta.IDP, peserta.Grade)
	if err != nil {
		return nil, err
	}

	persen, nilaiAkhir, cat := scoring.ParticipantFinal(peserta, result, soal, s.weights(), s.scheme())

	grades, err := s.MasterRepo.FindByCategory(model.CategoryGrade)
	if err != nil {
		return nil, err
	}
	gradeTujuan := scoring.NextGrade(peserta.Grade, grades)

	report := &ParticipantReport{
		Peserta:          *peserta,
		MasaKerja:        util.MasaKerja(peserta.TanggalBergabung, time.Now()),
		SkorTertulis:     result.SkorTertulis,
		PersenTertulis:   persen,
		JumlahSoal:       result.JumlahSoal,
		JawabanBenar:     result.JawabanBenar,
		JawabanSalah:     result.JawabanSalah,
		SkorInterview:    result.SkorInterview,
		TanggalInterview: result.TanggalInterview,
		Penguji:          result.Penguji,
		NilaiAkhir:       nilaiAkhir,
		Status:           string(cat),
		StatusLabel:      cat.Label(),
		Rekomendasi:      scoring.Recommendation(cat, gradeTujuan),
		Ringkasan:        result.Ringkasan,
		Keunggulan:       result.Keunggulan,
		Saran:            result.Saran,
	}

	for _, p := range result.Penilaian {
		if avg, ok := scoring.AspectAverage(p.Items); ok {
			report.AspectAverages = append(report.AspectAverages, AspectAverageRow{Aspek: p.Aspek, Average: avg})
		}
	}

	return report, nil
}

// cacheKey scopes cached reports by site and, for regular admins, by
// their sorted site list, so two admins never see each other's slice
// and the same site set always maps to one entry.
func (s *ReportService) cacheKey(jobSite string, claims *util.Claims) string {
	scope := "all"
	if claims != nil && !claims.IsMasterAdmin() {
		sites := append([]string(nil), claims.JobSites...)
		sort.Strings(sites)
		scope = strings.Join(sites, ",")
	}
	return fmt.Sprintf("report:site:%s:%s", jobSite, scope)
}
