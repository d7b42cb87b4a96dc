package repository

import (
	"ujikom_backend/internal/model"

	"gorm.io/gorm"
)

type MasterDataRepository struct {
	DB *gorm.DB
}

func NewMasterDataRepository(db *gorm.DB) *MasterDataRepository {
	return &MasterDataRepository{DB: db}
}

// FindAll returns every option list keyed by category, each in its
// configured order.
func (r *MasterDataRepository) FindAll() (map[string][]string, error) {
	var options []model.MasterOption
	err := r.DB.Order("category ASC, urutan ASC, id ASC").Find(&options).Error
	if err != nil {
		return nil, err
	}

	lists := make(map[string][]string, len(model.MasterCategories))
	for _, category := range model.MasterCategories {
		lists[category] = []string{}
	}
	for _, o := range options {
		lists[o.Category] = append(lists[o.Category], o.Value)
	}
	return lists, nil
}

func (r *MasterDataRepository) FindByCategory(category string) ([]string, error) {
	var values []string
	err := r.DB.Model(&model.MasterOption{}).
		Where("category = ?", category).
		Order("urutan ASC, id ASC").
		Pluck("value", &values).Error
	return values, err
}

func (r *MasterDataRepository) Exists(category, value string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.MasterOption{}).
		Where("category = ? AND value = ?", category, value).
		Count(&count).Error
	return count > 0, err
}

func (r *MasterDataRepository) Create(option *model.MasterOption) error {
	return r.DB.Create(option).Error
}

// ReplaceCategory swaps a whole option list for new ordered values in
// one transaction.
func (r *MasterDataRepository) ReplaceCategory(category string, values []string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category = ?", category).
			Delete(&model.MasterOption{}).Error; err != nil {
			return err
		}
		for i, v := range values {
			option := model.MasterOption{Category: category, Value: v, Urutan: i}
			if err := tx.Create(&option).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MasterDataRepository) Delete(category, value string) (int64, error) {
	res := r.DB.Where("category = ? AND value = ?", category, value).
		Delete(&model.MasterOption{})
	return res.RowsAffected, res.Error
}

func (r *MasterDataRepository) GetSetting(key string) (string, error) {
	var setting model.Setting
	err := r.DB.Where("`key` = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (r *MasterDataRepository) SetSetting(key, value string) error {
	var setting model.Setting
	err := r.DB.Where("`key` = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(&model.Setting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	setting.Value = value
	return r.DB.Save(&setting).Error
}
