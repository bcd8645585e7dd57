package repository

import (
	"errors"
	"lsv_backend/internal/model"
	"lsv_backend/internal/util"

	"gorm.io/gorm"
)

type UserLessonRepository struct {
	DB *gorm.DB
}

func NewUserLessonRepository(db *gorm.DB) *UserLessonRepository {
	return &UserLessonRepository{DB: db}
}

func (r *UserLessonRepository) Create(userLesson *model.UserLesson) error {
	return r.DB.Create(userLesson).Error
}

func (r *UserLessonRepository) FindByUserAndLesson(userID, lessonID string) (*model.UserLesson, error) {
	var userLesson model.UserLesson
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&userLesson).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &userLesson, nil
}

func (r *UserLessonRepository) FindByUserID(userID string, pagination util.Pagination) ([]model.UserLesson, int64, error) {
	var userLessons []model.UserLesson
	var total int64

	base := r.DB.Model(&model.UserLesson{}).Where("user_id = ?", userID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, err := pagination.OrderClause(map[string]string{
		"createdAt":   "created_at",
		"title":       "title",
		"isCompleted": "is_completed",
	}, "created_at")
	if err != nil {
		return nil, 0, err
	}

	err = r.DB.Where("user_id = ?", userID).
		Order(order).
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&userLessons).Error
	return userLessons, total, err
}

func (r *UserLessonRepository) Update(userLesson *model.UserLesson) error {
	return r.DB.Save(userLesson).Error
}
