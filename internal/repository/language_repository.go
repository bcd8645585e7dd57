package repository

import (
	"errors"
	"lsv_backend/internal/model"
	"lsv_backend/internal/util"

	"gorm.io/gorm"
)

type LanguageRepository struct {
	DB *gorm.DB
}

func NewLanguageRepository(db *gorm.DB) *LanguageRepository {
	return &LanguageRepository{DB: db}
}

func (r *LanguageRepository) Create(language *model.Language) error {
	return r.DB.Create(language).Error
}

func (r *LanguageRepository) FindByID(id string) (*model.Language, error) {
	var language model.Language
	err := r.DB.First(&language, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLanguageNotFound
	}
	if err != nil {
		return nil, err
	}
	return &language, nil
}

func (r *LanguageRepository) FindAll(pagination util.Pagination) ([]model.Language, int64, error) {
	var languages []model.Language
	var total int64

	if err := r.DB.Model(&model.Language{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, err := pagination.OrderClause(map[string]string{
		"name":      "name",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}, "created_at")
	if err != nil {
		return nil, 0, err
	}

	err = r.DB.Order(order).
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&languages).Error
	return languages, total, err
}

func (r *LanguageRepository) Update(language *model.Language) error {
	return r.DB.Save(language).Error
}

func (r *LanguageRepository) Delete(id string) error {
	return r.DB.Delete(&model.Language{}, "id = ?", id).Error
}
