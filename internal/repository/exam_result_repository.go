package repository

import (
	"ujikom_backend/internal/model"

	"gorm.io/gorm"
)

type ExamResultRepository struct {
	DB *gorm.DB
}

func NewExamResultRepository(db *gorm.DB) *ExamResultRepository {
	return &ExamResultRepository{DB: db}
}

func (r *ExamResultRepository) Create(result *model.ExamResult) error {
	return r.DB.Create(result).Error
}

func (r *ExamResultRepository) Update(result *model.ExamResult) error {
	return r.DB.Omit("Penguji", "Penilaian").Save(result).Error
}

// FindByPesertaID loads a participant's result with examiners, aspects
// and items in their display order.
func (r *ExamResultRepository) FindByPesertaID(pesertaID uint) (*model.ExamResult, error) {
	var result model.ExamResult
	err := r.DB.
		Preload("Penguji", func(db *gorm.DB) *gorm.DB { return db.Order("urutan ASC") }).
		Preload("Penilaian", func(db *gorm.DB) *gorm.DB { return db.Order("urutan ASC") }).
		Preload("Penilaian.Items", func(db *gorm.DB) *gorm.DB { return db.Order("urutan ASC") }).
		Where("peserta_id = ?", pesertaID).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindByPesertaIDs loads every result for the given participants, keyed
// by participant ID. Missing results are simply absent from the map.
func (r *ExamResultRepository) FindByPesertaIDs(pesertaIDs []uint) (map[uint]*model.ExamResult, error) {
	if len(pesertaIDs) == 0 {
		return map[uint]*model.ExamResult{}, nil
	}

	var results []model.ExamResult
	err := r.DB.
		Preload("Penguji", func(db *gorm.DB) *gorm.DB { return db.Order("urutan ASC") }).
		Preload("Penilaian", func(db *gorm.DB) *gorm.DB { return db.Order("urutan ASC") }).
		Preload("Penilaian.Items", func(db *gorm.DB) *gorm.DB { return db.Order("urutan ASC") }).
		Where("peserta_id IN ?", pesertaIDs).
		Find(&results).Error
	if err != nil {
		return nil, err
	}

	byPeserta := make(map[uint]*model.ExamResult, len(results))
	for i := range results {
		byPeserta[results[i].PesertaID] = &results[i]
	}
	return byPeserta, nil
}

// SaveInterview replaces a result's examiner and aspect rows and
// updates the interview fields, atomically. The old rows are removed
// first so re-saving is idempotent.
func (r *ExamResultRepository) SaveInterview(result *model.ExamResult, penguji []model.InterviewExaminer, penilaian []model.InterviewAspect) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := deleteInterviewRows(tx, result.ID); err != nil {
			return err
		}

		for i := range penguji {
			penguji[i].BaseModel = model.BaseModel{}
			penguji[i].ResultID = result.ID
			penguji[i].Urutan = i
			if err := tx.Create(&penguji[i]).Error; err != nil {
				return err
			}
		}

		for i := range penilaian {
			items := penilaian[i].Items
			penilaian[i].BaseModel = model.BaseModel{}
			penilaian[i].ResultID = result.ID
			penilaian[i].Urutan = i
			penilaian[i].Items = nil
			if err := tx.Create(&penilaian[i]).Error; err != nil {
				return err
			}
			for j := range items {
				items[j].BaseModel = model.BaseModel{}
				items[j].AspectID = penilaian[i].ID
				items[j].Urutan = j
				if err := tx.Create(&items[j]).Error; err != nil {
					return err
				}
			}
			penilaian[i].Items = items
		}

		result.Penguji = penguji
		result.Penilaian = penilaian
		return tx.Omit("Penguji", "Penilaian").Save(result).Error
	})
}

// deleteInterviewRows hard-deletes the examiner, aspect and item rows
// belonging to one result.
func deleteInterviewRows(tx *gorm.DB, resultID uint) error {
	var aspectIDs []uint
	if err := tx.Model(&model.InterviewAspect{}).
		Where("result_id = ?", resultID).
		Pluck("id", &aspectIDs).Error; err != nil {
		return err
	}
	if len(aspectIDs) > 0 {
		if err := tx.Unscoped().Where("aspect_id IN ?", aspectIDs).Delete(&model.InterviewItem{}).Error; err != nil {
			return err
		}
	}
	if err := tx.Unscoped().Where("result_id = ?", resultID).Delete(&model.InterviewAspect{}).Error; err != nil {
		return err
	}
	return tx.Unscoped().Where("result_id = ?", resultID).Delete(&model.InterviewExaminer{}).Error
}
