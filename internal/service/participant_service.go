package service

import (
	"fmt"
	"strings"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/repository"
	"ujikom_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ParticipantService struct {
	UserRepo   *repository.UserRepository
	ResultRepo *repository.ExamResultRepository
	MasterRepo *repository.MasterDataRepository
}

func NewParticipantService(userRepo *repository.UserRepository, resultRepo *repository.ExamResultRepository, masterRepo *repository.MasterDataRepository) *ParticipantService {
	return &ParticipantService{
		UserRepo:   userRepo,
		ResultRepo: resultRepo,
		MasterRepo: masterRepo,
	}
}

// ImportRow is one participant from a bulk upload, already parsed out
// of the spreadsheet by the client.
type ImportRow struct {
	NIK              string `json:"nik" binding:"required"`
	Nama             string `json:"nama" binding:"required"`
	Jabatan          string `json:"jabatan"`
	Grade            string `json:"grade" binding:"required"`
	JobSite          string `json:"jobSite" binding:"required"`
	Section          string `json:"section" binding:"required"`
	TempatLahir      string `json:"tempatLahir"`
	TanggalLahir     string `json:"tanggalLahir"`
	IDP              string `json:"idp" binding:"required"`
	TahunUjikom      int    `json:"tahunUjikom"`
	TanggalBergabung string `json:"tanggalBergabung"`
	Password         string `json:"password"`
}

// ImportError reports why one uploaded row was rejected.
type ImportError struct {
	Row     int    `json:"row"`
	NIK     string `json:"nik"`
	Message string `json:"message"`
}

type ImportSummary struct {
	Created int           `json:"created"`
	Skipped int           `json:"skipped"`
	Errors  []ImportError `json:"errors"`
}

func (s *ParticipantService) List(jobSite string, page, limit int, claims *util.Claims) ([]model.User, int64, error) {
	var allowed []string
	if claims != nil && !claims.IsMasterAdmin() {
		allowed = claims.JobSites
	}
	if jobSite != "" && jobSite != "Semua" && claims != nil && !claims.CanAccessSite(jobSite) {
		return nil, 0, util.ErrPermissionDenied
	}
	return s.UserRepo.FindParticipantsPage(jobSite, allowed, page, limit)
}

func (s *ParticipantService) Get(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil || user.Role != model.RolePeserta {
		return nil, util.ErrPesertaNotFound
	}
	return user, nil
}

// Create registers a participant and their empty exam result in one
// step, so every participant always has a result row to hang scores on.
func (s *ParticipantService) Create(p *model.User, claims *util.Claims) (*model.User, error) {
	if err := ensureSiteAccess(claims, p.JobSite); err != nil {
		return nil, err
	}
	if err := s.validateMasterFields(p); err != nil {
		return nil, err
	}

	_, err := s.UserRepo.FindByNIK(p.NIK)
	if err == nil {
		return nil, util.ErrNIKTerdaftar
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	if p.Password == "" {
		p.Password = "12345"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	p.Password = string(hashed)
	p.Role = model.RolePeserta

	if err := s.UserRepo.Create(p); err != nil {
		return nil, err
	}
	if err := s.ResultRepo.Create(&model.ExamResult{PesertaID: p.ID}); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ParticipantService) Update(id uint, updated *model.User, newPassword string, claims *util.Claims) (*model.User, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := ensureSiteAccess(claims, p.JobSite); err != nil {
		return nil, err
	}

	if updated.NIK != "" && updated.NIK != p.NIK {
		if _, err := s.UserRepo.FindByNIK(updated.NIK); err == nil {
			return nil, util.ErrNIKTerdaftar
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		p.NIK = updated.NIK
	}
	if updated.Nama != "" {
		p.Nama = updated.Nama
	}
	if updated.Jabatan != "" {
		p.Jabatan = updated.Jabatan
	}
	if updated.Grade != "" {
		p.Grade = updated.Grade
	}
	if updated.JobSite != "" {
		if err := ensureSiteAccess(claims, updated.JobSite); err != nil {
			return nil, err
		}
		p.JobSite = updated.JobSite
	}
	if updated.Section != "" {
		p.Section = updated.Section
	}
	if updated.IDP != "" {
		p.IDP = updated.IDP
	}
	if updated.TahunUjikom != 0 {
		p.TahunUjikom = updated.TahunUjikom
	}
	if updated.TempatLahir != "" {
		p.TempatLahir = updated.TempatLahir
	}
	if updated.TanggalLahir != "" {
		p.TanggalLahir = updated.TanggalLahir
	}
	if updated.TanggalBergabung != "" {
		p.TanggalBergabung = updated.TanggalBergabung
	}
	if newPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		p.Password = string(hashed)
	}

	if err := s.validateMasterFields(p); err != nil {
		return nil, err
	}
	if err := s.UserRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a participant together with their exam result and
// interview rows.
func (s *ParticipantService) Delete(id uint, claims *util.Claims) error {
	p, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := ensureSiteAccess(claims, p.JobSite); err != nil {
		return err
	}
	return s.UserRepo.DeleteWithResult(id)
}

// BulkImport creates participants from uploaded rows. Rows that fail
// validation are reported and skipped; valid rows are still created.
func (s *ParticipantService) BulkImport(rows []ImportRow, claims *util.Claims) (*ImportSummary, error) {
	summary := &ImportSummary{}

	for i, row := range rows {
		p := &model.User{
			NIK:              strings.TrimSpace(row.NIK),
			Nama:             strings.TrimSpace(row.Nama),
			Jabatan:          row.Jabatan,
			Grade:            row.Grade,
			JobSite:          row.JobSite,
			Section:          row.Section,
			TempatLahir:      row.TempatLahir,
			TanggalLahir:     row.TanggalLahir,
			IDP:              row.IDP,
			TahunUjikom:      row.TahunUjikom,
			TanggalBergabung: row.TanggalBergabung,
			Password:         row.Password,
		}
		if p.NIK == "" || p.Nama == "" {
			summary.Skipped++
			summary.Errors = append(summary.Errors, ImportError{Row: i + 1, NIK: row.NIK, Message: "NIK dan nama wajib diisi"})
			continue
		}

		if _, err := s.Create(p, claims); err != nil {
			summary.Skipped++
			summary.Errors = append(summary.Errors, ImportError{Row: i + 1, NIK: row.NIK, Message: err.Error()})
			continue
		}
		summary.Created++
	}

	return summary, nil
}

// validateMasterFields checks every classification field against the
// master option lists.
func (s *ParticipantService) validateMasterFields(p *model.User) error {
	checks := []struct {
		category string
		value    string
		label    string
	}{
		{model.CategoryGrade, p.Grade, "grade"},
		{model.CategoryJobSite, p.JobSite, "job site"},
		{model.CategorySection, p.Section, "section"},
		{model.CategoryIDP, p.IDP, "IDP"},
	}
	for _, check := range checks {
		if check.value == "" {
			return fmt.Errorf("%s wajib diisi", check.label)
		}
		ok, err := s.MasterRepo.Exists(check.category, check.value)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s %q tidak terdaftar di data master", check.label, check.value)
		}
	}
	if p.Jabatan != "" {
		ok, err := s.MasterRepo.Exists(model.CategoryJabatan, p.Jabatan)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("jabatan %q tidak terdaftar di data master", p.Jabatan)
		}
	}
	return nil
}
