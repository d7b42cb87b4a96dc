package service

import (
	"ujikom_backend/internal/config"
	"ujikom_backend/internal/model"
	"ujikom_backend/internal/repository"
	"ujikom_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Login authenticates by NIK and returns a signed token plus the
// account. Participants and admins share the same login.
func (s *AuthService) Login(nik, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByNIK(nik)
	if err != nil {
		return "", nil, util.ErrNIKAtauSandiSalah
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrNIKAtauSandiSalah
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}

// CreateAdmin registers a new admin account. Only master admins may
// call this (enforced at the controller).
func (s *AuthService) CreateAdmin(admin *model.User) error {
	_, err := s.UserRepo.FindByNIK(admin.NIK)
	if err == nil {
		return util.ErrNIKTerdaftar
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin.Password = string(hashed)
	admin.Role = model.RoleAdmin
	if admin.Peran == "" {
		admin.Peran = model.PeranAdminBiasa
	}
	return s.UserRepo.Create(admin)
}

func (s *AuthService) ListAdmins() ([]model.User, error) {
	return s.UserRepo.FindAdmins()
}

// UpdateAdmin updates profile fields and optionally the password.
func (s *AuthService) UpdateAdmin(id uint, updated *model.User, newPassword string) (*model.User, error) {
	admin, err := s.UserRepo.FindByID(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if admin.Role != model.RoleAdmin {
		return nil, util.ErrUserNotFound
	}

	if updated.NIK != "" && updated.NIK != admin.NIK {
		if _, err := s.UserRepo.FindByNIK(updated.NIK); err == nil {
			return nil, util.ErrNIKTerdaftar
		} else if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		admin.NIK = updated.NIK
	}
	if updated.Nama != "" {
		admin.Nama = updated.Nama
	}
	if updated.Jabatan != "" {
		admin.Jabatan = updated.Jabatan
	}
	if updated.Peran != "" {
		// Demoting the last master admin would lock everyone out.
		if admin.Peran == model.PeranMasterAdmin && updated.Peran != model.PeranMasterAdmin {
			count, err := s.UserRepo.CountMasterAdmins()
			if err != nil {
				return nil, err
			}
			if count <= 1 {
				return nil, util.ErrMasterAdminTerakhir
			}
		}
		admin.Peran = updated.Peran
	}
	if updated.JobSites != nil {
		admin.JobSites = updated.JobSites
	}
	if newPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		admin.Password = string(hashed)
	}

	if err := s.UserRepo.Update(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AuthService) DeleteAdmin(id uint) error {
	admin, err := s.UserRepo.FindByID(id)
	if err != nil || admin.Role != model.RoleAdmin {
		return util.ErrUserNotFound
	}

	if admin.Peran == model.PeranMasterAdmin {
		count, err := s.UserRepo.CountMasterAdmins()
		if err != nil {
			return err
		}
		if count <= 1 {
			return util.ErrMasterAdminTerakhir
		}
	}
	return s.UserRepo.DeleteWithResult(id)
}
