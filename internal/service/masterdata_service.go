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
)

// participantColumn maps an option category to the users column that
// references it, for in-use checks before deletion.
var participantColumn = map[string]string{
	model.CategoryIDP:     "idp",
	model.CategoryGrade:   "grade",
	model.CategorySection: "section",
	model.CategoryJabatan: "jabatan",
	model.CategoryJobSite: "job_site",
}

type MasterDataService struct {
	MasterRepo *repository.MasterDataRepository
	UserRepo   *repository.UserRepository
	Storage    *StorageService
}

func NewMasterDataService(masterRepo *repository.MasterDataRepository, userRepo *repository.UserRepository, storage *StorageService) *MasterDataService {
	return &MasterDataService{
		MasterRepo: masterRepo,
		UserRepo:   userRepo,
		Storage:    storage,
	}
}

func (s *MasterDataService) ListAll() (map[string][]string, error) {
	return s.MasterRepo.FindAll()
}

func (s *MasterDataService) AddOption(category, value string) error {
	if !validCategory(category) {
		return util.ErrKategoriTidakValid
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("nilai opsi wajib diisi")
	}

	exists, err := s.MasterRepo.Exists(category, value)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("opsi %q sudah ada di kategori %s", value, category)
	}

	values, err := s.MasterRepo.FindByCategory(category)
	if err != nil {
		return err
	}
	return s.MasterRepo.Create(&model.MasterOption{
		Category: category,
		Value:    value,
		Urutan:   len(values),
	})
}

// ReplaceList swaps a category's whole option list for the given
// ordered values. Values a participant still holds cannot be dropped.
func (s *MasterDataService) ReplaceList(category string, values []string) error {
	if !validCategory(category) {
		return util.ErrKategoriTidakValid
	}

	cleaned := make([]string, 0, len(values))
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			return fmt.Errorf("nilai opsi wajib diisi")
		}
		if seen[v] {
			return fmt.Errorf("opsi %q duplikat di kategori %s", v, category)
		}
		seen[v] = true
		cleaned = append(cleaned, v)
	}

	if column, tracked := participantColumn[category]; tracked {
		current, err := s.MasterRepo.FindByCategory(category)
		if err != nil {
			return err
		}
		for _, v := range current {
			if seen[v] {
				continue
			}
			count, err := s.UserRepo.CountByField(column, v)
			if err != nil {
				return err
			}
			if count > 0 {
				return util.ErrMasterDataDipakai
			}
		}
	}

	return s.MasterRepo.ReplaceCategory(category, cleaned)
}

// DeleteOption removes one option value. Deletion is refused while any
// participant still holds the value, so reports never dangle.
func (s *MasterDataService) DeleteOption(category, value string) error {
	if !validCategory(category) {
		return util.ErrKategoriTidakValid
	}

	if column, tracked := participantColumn[category]; tracked {
		count, err := s.UserRepo.CountByField(column, value)
		if err != nil {
			return err
		}
		if count > 0 {
			return util.ErrMasterDataDipakai
		}
	}

	deleted, err := s.MasterRepo.Delete(category, value)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return util.ErrMasterDataNotFound
	}
	return nil
}

func (s *MasterDataService) GetLogo() (string, error) {
	return s.MasterRepo.GetSetting(model.SettingLogo)
}

// UploadLogo stores the organization logo and records its URL.
func (s *MasterDataService) UploadLogo(ctx context.Context, originalName string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".svg", ".webp":
	default:
		return "", fmt.Errorf("format logo %s tidak didukung", ext)
	}

	filename := fmt.Sprintf("branding/logo-%d%s", time.Now().UnixNano(), ext)
	url, err := s.Storage.Upload(ctx, filename, reader, size, contentType)
	if err != nil {
		return "", err
	}
	if err := s.MasterRepo.SetSetting(model.SettingLogo, url); err != nil {
		return "", err
	}
	return url, nil
}

func validCategory(category string) bool {
	for _, c := range model.MasterCategories {
		if c == category {
			return true
		}
	}
	return false
}
