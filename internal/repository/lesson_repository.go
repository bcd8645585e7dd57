package repository

import (
	"errors"
	"lsv_backend/internal/model"
	"lsv_backend/internal/util"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

func (r *LessonRepository) Create(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *LessonRepository) FindByID(id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// FindByIDWithQuizzes loads a lesson with its full quiz graph, correctness
// flags included. Callers exposing this to learners must project through
// PublicView first.
func (r *LessonRepository) FindByIDWithQuizzes(id string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Preload("Quizzes.Questions.Options").First(&lesson, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) FindByNameInLanguage(name, languageID string) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.Where("name = ? AND language_id = ?", name, languageID).First(&lesson).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

// FindByLanguage pages lessons of a language, optionally narrowed to one
// stage. Pagination and the total count are at the lesson level; an unknown
// language simply yields an empty page.
func (r *LessonRepository) FindByLanguage(languageID, stageID string, pagination util.Pagination) ([]model.Lesson, int64, error) {
	var lessons []model.Lesson
	var total int64

	where := r.DB.Model(&model.Lesson{}).Where("language_id = ?", languageID)
	if stageID != "" {
		where = where.Where("stage_id = ?", stageID)
	}
	if err := where.Count(&total).Error; err != nil {
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

	query := r.DB.Where("language_id = ?", languageID)
	if stageID != "" {
		query = query.Where("stage_id = ?", stageID)
	}
	err = query.Order(order).
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&lessons).Error
	return lessons, total, err
}

// FindQuizzesByLessonIDs returns the quizzes of the given lessons. Used by
// the progress aggregation to expand a page of lessons into quiz ids.
func (r *LessonRepository) FindQuizzesByLessonIDs(lessonIDs []string) ([]model.Quiz, error) {
	if len(lessonIDs) == 0 {
		return nil, nil
	}
	var quizzes []model.Quiz
	err := r.DB.Where("lesson_id IN ?", lessonIDs).Find(&quizzes).Error
	return quizzes, err
}

func (r *LessonRepository) Update(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *LessonRepository) Delete(id string) error {
	return r.DB.Delete(&model.Lesson{}, "id = ?", id).Error
}
