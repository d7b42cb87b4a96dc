package repository

import (
	"ujikom_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByNIK(nik string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("nik = ?", nik).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

// FindParticipants lists participants, optionally restricted to one job
// site and to the sites an admin is allowed to see.
func (r *UserRepository) FindParticipants(jobSite string, allowedSites []string) ([]model.User, error) {
	var users []model.User
	err := r.participantQuery(jobSite, allowedSites).Order("nama ASC").Find(&users).Error
	return users, err
}

// FindParticipantsPage returns one page of participants plus the total
// count matching the filter.
func (r *UserRepository) FindParticipantsPage(jobSite string, allowedSites []string, page, limit int) ([]model.User, int64, error) {
	q := r.participantQuery(jobSite, allowedSites)

	var total int64
	if err := q.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []model.User
	err := q.Order("nama ASC").Offset((page - 1) * limit).Limit(limit).Find(&users).Error
	return users, total, err
}

func (r *UserRepository) participantQuery(jobSite string, allowedSites []string) *gorm.DB {
	q := r.DB.Where("role = ?", model.RolePeserta)
	if jobSite != "" && jobSite != "Semua" {
		q = q.Where("job_site = ?", jobSite)
	}
	if len(allowedSites) > 0 {
		q = q.Where("job_site IN ?", allowedSites)
	}
	return q
}

func (r *UserRepository) FindAdmins() ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("role = ?", model.RoleAdmin).Order("nama ASC").Find(&users).Error
	return users, err
}

func (r *UserRepository) CountMasterAdmins() (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("role = ? AND peran = ?", model.RoleAdmin, model.PeranMasterAdmin).
		Count(&count).Error
	return count, err
}

// CountByField counts participants still holding the given master-data
// value. Used to block deleting an option that is in use.
func (r *UserRepository) CountByField(column, value string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.User{}).
		Where("role = ?", model.RolePeserta).
		Where(column+" = ?", value).
		Count(&count).Error
	return count, err
}

// DeleteWithResult removes a user and their exam result, including the
// interview rows hanging off it, in one transaction.
func (r *UserRepository) DeleteWithResult(userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var result model.ExamResult
		err := tx.Where("peserta_id = ?", userID).First(&result).Error
		if err == nil {
			if err := deleteInterviewRows(tx, result.ID); err != nil {
				return err
			}
			if err := tx.Delete(&result).Error; err != nil {
				return err
			}
		} else if err != gorm.ErrRecordNotFound {
			return err
		}
		return tx.Delete(&model.User{}, userID).Error
	})
}
