package service

import (
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/repository"
	"ujikom_backend/internal/scoring"
	"ujikom_backend/internal/util"
)

type InterviewService struct {
	UserRepo   *repository.UserRepository
	ResultRepo *repository.ExamResultRepository
}

func NewInterviewService(userRepo *repository.UserRepository, resultRepo *repository.ExamResultRepository) *InterviewService {
	return &InterviewService{
		UserRepo:   userRepo,
		ResultRepo: resultRepo,
	}
}

// ensureSiteAccess rejects callers whose job-site scope does not cover
// the participant's site.
func ensureSiteAccess(claims *util.Claims, jobSite string) error {
	if claims != nil && !claims.CanAccessSite(jobSite) {
		return util.ErrPermissionDenied
	}
	return nil
}

// GetDetail loads a participant's interview sheet, seeding the default
// aspect structure the first time it is opened so the scoring UI always
// has the canonical aspects to fill in.
func (s *InterviewService) GetDetail(pesertaID uint, claims *util.Claims) (*model.ExamResult, error) {
	peserta, err := s.UserRepo.FindByID(pesertaID)
	if err != nil {
		return nil, util.ErrPesertaNotFound
	}
	if err := ensureSiteAccess(claims, peserta.JobSite); err != nil {
		return nil, err
	}

	result, err := s.ResultRepo.FindByPesertaID(pesertaID)
	if err != nil {
		return nil, util.ErrHasilNotFound
	}

	if !result.InterviewInitialized() {
		penilaian := make([]model.InterviewAspect, 0, len(model.DefaultAspects))
		for _, aspek := range model.DefaultAspects {
			penilaian = append(penilaian, model.InterviewAspect{
				Aspek: aspek,
				Items: []model.InterviewItem{{Pertanyaan: ""}},
			})
		}
		if err := s.ResultRepo.SaveInterview(result, result.Penguji, penilaian); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// SaveInput is the full interview sheet as submitted by the scoring UI.
type SaveInput struct {
	TanggalInterview string
	Penguji          []model.InterviewExaminer
	Penilaian        []model.InterviewAspect
	Ringkasan        string
	Keunggulan       string
	Saran            string
}

// Save replaces the interview sheet. Every rating is validated to
// 0-100 and its note bracket recomputed server-side; the interview
// score is refreshed from the aspect averages.
func (s *InterviewService) Save(pesertaID uint, in SaveInput, claims *util.Claims) (*model.ExamResult, error) {
	peserta, err := s.UserRepo.FindByID(pesertaID)
	if err != nil {
		return nil, util.ErrPesertaNotFound
	}
	if err := ensureSiteAccess(claims, peserta.JobSite); err != nil {
		return nil, err
	}

	result, err := s.ResultRepo.FindByPesertaID(pesertaID)
	if err != nil {
		return nil, util.ErrHasilNotFound
	}

	for ai := range in.Penilaian {
		for ii := range in.Penilaian[ai].Items {
			item := &in.Penilaian[ai].Items[ii]
			if item.Nilai != nil && (*item.Nilai < 0 || *item.Nilai > 100) {
				return nil, util.ErrNilaiDiLuarRentang
			}
			item.Catatan = scoring.NoteForRating(item.Nilai)
		}
	}

	skor := scoring.InterviewScore(in.Penilaian)
	result.SkorInterview = &skor
	if in.TanggalInterview != "" {
		result.TanggalInterview = in.TanggalInterview
	}
	result.Ringkasan = in.Ringkasan
	result.Keunggulan = in.Keunggulan
	result.Saran = in.Saran

	if err := s.ResultRepo.SaveInterview(result, in.Penguji, in.Penilaian); err != nil {
		return nil, err
	}
	return result, nil
}

// Analysis holds generated narrative texts for the scoring UI to review
// before saving.
type Analysis struct {
	Ringkasan  string `json:"ringkasan"`
	Keunggulan string `json:"keunggulan"`
	Saran      string `json:"saran"`
}

// Analyze generates the templated summary, strengths and suggestions
// from the saved interview sheet. Nothing is persisted; the texts are
// stored when the sheet is saved.
func (s *InterviewService) Analyze(pesertaID uint, claims *util.Claims) (*Analysis, error) {
	peserta, err := s.UserRepo.FindByID(pesertaID)
	if err != nil {
		return nil, util.ErrPesertaNotFound
	}
	if err := ensureSiteAccess(claims, peserta.JobSite); err != nil {
		return nil, err
	}

	result, err := s.ResultRepo.FindByPesertaID(pesertaID)
	if err != nil {
		return nil, util.ErrHasilNotFound
	}

	ringkasan, keunggulan, saran, err := scoring.InterviewAnalysis(peserta.Nama, result.Penilaian)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Ringkasan:  ringkasan,
		Keunggulan: keunggulan,
		Saran:      saran,
	}, nil
}
