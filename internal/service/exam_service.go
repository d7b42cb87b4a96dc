package service

import (
	"fmt"
	"ujikom_backend/internal/config"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/repository"
	"ujikom_backend/internal/scoring"
	"ujikom_backend/internal/util"
	"ujikom_backend/pkg/monitoring"
)

type ExamService struct {
	UserRepo     *repository.UserRepository
	QuestionRepo *repository.QuestionRepository
	ResultRepo   *repository.ExamResultRepository
	Cfg          *config.Config
}

func NewExamService(userRepo *repository.UserRepository, questionRepo *repository.QuestionRepository, resultRepo *repository.ExamResultRepository, cfg *config.Config) *ExamService {
	return &ExamService{
		UserRepo:     userRepo,
		QuestionRepo: questionRepo,
		ResultRepo:   resultRepo,
		Cfg:          cfg,
	}
}

// ExamQuestion is a bank question with the answer key stripped, as
// served to a participant taking the exam.
type ExamQuestion struct {
	ID         uint     `json:"id"`
	Pertanyaan string   `json:"pertanyaan"`
	Pilihan    []string `json:"pilihan"`
	Gambar     string   `json:"gambar,omitempty"`
}

type ExamPaper struct {
	DurationMinutes int            `json:"durationMinutes"`
	Questions       []ExamQuestion `json:"questions"`
}

// SubmitOutcome is what the participant sees right after submitting.
type SubmitOutcome struct {
	SkorTertulis int     `json:"skorTertulis"`
	JumlahSoal   int     `json:"jumlahSoal"`
	JawabanBenar int     `json:"jawabanBenar"`
	JawabanSalah int     `json:"jawabanSalah"`
	Persen       float64 `json:"persen"`
}

// GetPaper returns the participant's question pool without answer keys.
// Fails when the pool for their IDP + grade combination is empty.
func (s *ExamService) GetPaper(pesertaID uint) (*ExamPaper, error) {
	peserta, err := s.UserRepo.FindByID(pesertaID)
	if err != nil || peserta.Role != model.RolePeserta {
		return nil, util.ErrPesertaNotFound
	}

	result, err := s.ResultRepo.FindByPesertaID(pesertaID)
	if err != nil {
		return nil, util.ErrHasilNotFound
	}
	if result.WrittenTaken() {
		return nil, util.ErrUjianSudahSelesai
	}

	questions, err := s.QuestionRepo.FindPool(peserta.IDP, peserta.Grade)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrSoalTidakTersedia
	}

	paper := &ExamPaper{DurationMinutes: s.Cfg.ExamSettings().DurationMinutes}
	for _, q := range questions {
		paper.Questions = append(paper.Questions, ExamQuestion{
			ID:         q.ID,
			Pertanyaan: q.Pertanyaan,
			Pilihan:    q.Pilihan,
			Gambar:     q.Gambar,
		})
	}
	return paper, nil
}

// Submit grades the participant's answers and stores the written
// fields. With validate set (manual submit) every question must be
// answered; the timer-expiry path submits whatever is there.
func (s *ExamService) Submit(pesertaID uint, answers map[uint]string, validate bool) (*SubmitOutcome, error) {
	peserta, err := s.UserRepo.FindByID(pesertaID)
	if err != nil || peserta.Role != model.RolePeserta {
		return nil, util.ErrPesertaNotFound
	}

	result, err := s.ResultRepo.FindByPesertaID(pesertaID)
	if err != nil {
		return nil, util.ErrHasilNotFound
	}
	if result.WrittenTaken() {
		return nil, util.ErrUjianSudahSelesai
	}

	questions, err := s.QuestionRepo.FindPool(peserta.IDP, peserta.Grade)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, util.ErrSoalTidakTersedia
	}

	if validate {
		unanswered := 0
		for _, q := range questions {
			if answers[q.ID] == "" {
				unanswered++
			}
		}
		if unanswered > 0 {
			return nil, fmt.Errorf("%d soal belum dijawab", unanswered)
		}
	}

	graded := scoring.GradeWritten(questions, answers)

	result.SkorTertulis = &graded.RawScore
	result.JumlahSoal = &graded.QuestionCount
	result.JawabanBenar = &graded.CorrectCount
	result.JawabanSalah = &graded.IncorrectCount
	if err := s.ResultRepo.Update(result); err != nil {
		return nil, err
	}

	trigger := "auto"
	if validate {
		trigger = "manual"
	}
	monitoring.ExamSubmissions.WithLabelValues(trigger).Inc()

	return &SubmitOutcome{
		SkorTertulis: graded.RawScore,
		JumlahSoal:   graded.QuestionCount,
		JawabanBenar: graded.CorrectCount,
		JawabanSalah: graded.IncorrectCount,
		Persen:       scoring.WrittenPercent(graded.RawScore, questions),
	}, nil
}
