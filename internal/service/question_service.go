package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/repository"
	"ujikom_backend/internal/util"
	"ujikom_backend/pkg/logger"

	"go.uber.org/zap"
)

type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
	Storage      *StorageService
}

func NewQuestionService(questionRepo *repository.QuestionRepository, storage *StorageService) *QuestionService {
	return &QuestionService{
		QuestionRepo: questionRepo,
		Storage:      storage,
	}
}

// QuestionImportRow is one bank question from a bulk upload.
type QuestionImportRow struct {
	IDP          string `json:"idp" binding:"required"`
	Grade        string `json:"grade" binding:"required"`
	Nilai        int    `json:"nilai"`
	Pertanyaan   string `json:"pertanyaan" binding:"required"`
	PilihanA     string `json:"pilihanA"`
	PilihanB     string `json:"pilihanB"`
	PilihanC     string `json:"pilihanC"`
	PilihanD     string `json:"pilihanD"`
	JawabanBenar string `json:"jawabanBenar" binding:"required"`
	Gambar       string `json:"gambar"`
}

func (s *QuestionService) List(idp, grade string) ([]model.Question, error) {
	return s.QuestionRepo.FindAll(idp, grade)
}

func (s *QuestionService) Get(id uint) (*model.Question, error) {
	q, err := s.QuestionRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrSoalNotFound
	}
	return q, nil
}

func (s *QuestionService) Create(q *model.Question) error {
	if err := validateQuestion(q); err != nil {
		return err
	}
	return s.QuestionRepo.Create(q)
}

func (s *QuestionService) Update(ctx context.Context, id uint, updated *model.Question) (*model.Question, error) {
	q, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	oldImage := q.Gambar
	mergeQuestion(q, updated)

	if err := validateQuestion(q); err != nil {
		return nil, err
	}
	if err := s.QuestionRepo.Update(q); err != nil {
		return nil, err
	}
	if oldImage != "" && oldImage != q.Gambar {
		s.removeImage(ctx, oldImage)
	}
	return q, nil
}

func (s *QuestionService) Delete(ctx context.Context, id uint) error {
	q, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.QuestionRepo.Delete(id); err != nil {
		return err
	}
	if q.Gambar != "" {
		s.removeImage(ctx, q.Gambar)
	}
	return nil
}

// DeleteByIDP clears a whole question pool, e.g. before re-importing.
func (s *QuestionService) DeleteByIDP(idp string) (int64, error) {
	return s.QuestionRepo.DeleteByIDP(idp)
}

// BulkImport creates questions from uploaded rows. The four choice
// columns are collapsed into the choice list; blank trailing choices
// are dropped.
func (s *QuestionService) BulkImport(rows []QuestionImportRow) (*ImportSummary, error) {
	summary := &ImportSummary{}
	var batch []model.Question

	for i, row := range rows {
		pilihan := collectChoices(row.PilihanA, row.PilihanB, row.PilihanC, row.PilihanD)
		q := model.Question{
			IDP:          row.IDP,
			Grade:        row.Grade,
			Nilai:        row.Nilai,
			Pertanyaan:   strings.TrimSpace(row.Pertanyaan),
			Pilihan:      pilihan,
			JawabanBenar: strings.ToUpper(strings.TrimSpace(row.JawabanBenar)),
			Gambar:       row.Gambar,
		}
		if q.Nilai <= 0 {
			q.Nilai = 1
		}
		if err := validateQuestion(&q); err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, ImportError{Row: i + 1, Message: err.Error()})
			continue
		}
		batch = append(batch, q)
	}

	if err := s.QuestionRepo.CreateBatch(batch); err != nil {
		return nil, err
	}
	summary.Created = len(batch)
	return summary, nil
}

// UploadImage stores a question illustration and returns its URL.
func (s *QuestionService) UploadImage(ctx context.Context, originalName string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		return "", fmt.Errorf("format gambar %s tidak didukung", ext)
	}

	filename := fmt.Sprintf("questions/%d%s", time.Now().UnixNano(), ext)
	return s.Storage.Upload(ctx, filename, reader, size, contentType)
}

// mergeQuestion overwrites every editable field, Gambar included: an
// empty Gambar in the update clears the illustration.
func mergeQuestion(dst, src *model.Question) {
	dst.IDP = src.IDP
	dst.Grade = src.Grade
	dst.Nilai = src.Nilai
	dst.Pertanyaan = src.Pertanyaan
	dst.Pilihan = src.Pilihan
	dst.JawabanBenar = src.JawabanBenar
	dst.Gambar = src.Gambar
}

// imageObjectKey recovers the storage object key from an illustration
// URL. Uploaded images always live under the questions/ prefix; a URL
// without it (e.g. an external link) yields "".
func imageObjectKey(url string) string {
	if i := strings.Index(url, "questions/"); i >= 0 {
		return url[i:]
	}
	return ""
}

// removeImage drops a no-longer-referenced illustration from storage.
// Failures are logged, not surfaced: the question change has already
// been committed.
func (s *QuestionService) removeImage(ctx context.Context, url string) {
	key := imageObjectKey(url)
	if key == "" {
		return
	}
	if err := s.Storage.Delete(ctx, key); err != nil {
		logger.Log.Warn("Failed to delete question image", zap.String("key", key), zap.Error(err))
	}
}

func collectChoices(choices ...string) []string {
	var out []string
	for _, c := range choices {
		c = strings.TrimSpace(c)
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func validateQuestion(q *model.Question) error {
	if q.IDP == "" || q.Grade == "" {
		return fmt.Errorf("IDP dan grade wajib diisi")
	}
	if strings.TrimSpace(q.Pertanyaan) == "" {
		return fmt.Errorf("pertanyaan wajib diisi")
	}
	if q.Nilai <= 0 {
		return fmt.Errorf("nilai soal harus lebih dari 0")
	}
	if len(q.Pilihan) < 2 {
		return fmt.Errorf("soal membutuhkan minimal 2 pilihan")
	}

	// The answer key must point at one of the existing choices.
	for i := range q.Pilihan {
		if q.JawabanBenar == model.ChoiceLabel(i) {
			return nil
		}
	}
	return fmt.Errorf("jawaban benar %q tidak menunjuk pilihan yang ada", q.JawabanBenar)
}
