package repository

import (
	"ujikom_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(question *model.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) CreateBatch(questions []model.Question) error {
	if len(questions) == 0 {
		return nil
	}
	return r.DB.Create(&questions).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	return &question, err
}

func (r *QuestionRepository) Update(question *model.Question) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}

func (r *QuestionRepository) DeleteByIDP(idp string) (int64, error) {
	res := r.DB.Where("idp = ?", idp).Delete(&model.Question{})
	return res.RowsAffected, res.Error
}

// FindAll lists questions, optionally filtered by IDP and/or grade.
func (r *QuestionRepository) FindAll(idp, grade string) ([]model.Question, error) {
	q := r.DB.Model(&model.Question{})
	if idp != "" {
		q = q.Where("idp = ?", idp)
	}
	if grade != "" {
		q = q.Where("grade = ?", grade)
	}

	var questions []model.Question
	err := q.Order("id ASC").Find(&questions).Error
	return questions, err
}

// FindPool returns the exam pool for one IDP + grade combination.
func (r *QuestionRepository) FindPool(idp, grade string) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("idp = ? AND grade = ?", idp, grade).
		Order("id ASC").
		Find(&questions).Error
	return questions, err
}
