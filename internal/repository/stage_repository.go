package repository

import (
	"errors"
	"lsv_backend/internal/model"
	"lsv_backend/internal/util"

	"gorm.io/gorm"
)

type StageRepository struct {
	DB *gorm.DB
}

func NewStageRepository(db *gorm.DB) *StageRepository {
	return &StageRepository{DB: db}
}

func (r *StageRepository) Create(stage *model.Stage) error {
	return r.DB.Create(stage).Error
}

func (r *StageRepository) FindByID(id string) (*model.Stage, error) {
	var stage model.Stage
	err := r.DB.First(&stage, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

func (r *StageRepository) FindByNameInLanguage(name, languageID string) (*model.Stage, error) {
	var stage model.Stage
	err := r.DB.Where("name = ? AND language_id = ?", name, languageID).First(&stage).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrStageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stage, nil
}

func (r *StageRepository) FindByLanguage(languageID string, pagination util.Pagination) ([]model.Stage, int64, error) {
	var stages []model.Stage
	var total int64

	base := r.DB.Model(&model.Stage{}).Where("language_id = ?", languageID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, err := pagination.OrderClause(map[string]string{
		"name":      "name",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}, "name")
	if err != nil {
		return nil, 0, err
	}

	err = r.DB.Where("language_id = ?", languageID).
		Order(order).
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&stages).Error
	return stages, total, err
}

// FindByLanguageWithLessons loads every stage of a language with its
// lessons, ordered by name. Used by the stage progress calculation.
func (r *StageRepository) FindByLanguageWithLessons(languageID string) ([]model.Stage, error) {
	var stages []model.Stage
	err := r.DB.Preload("Lessons").
		Where("language_id = ?", languageID).
		Order("name ASC").
		Find(&stages).Error
	return stages, err
}

func (r *StageRepository) Update(stage *model.Stage) error {
	return r.DB.Save(stage).Error
}

func (r *StageRepository) Delete(id string) error {
	return r.DB.Delete(&model.Stage{}, "id = ?", id).Error
}
