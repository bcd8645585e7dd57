package service

import (
	"errors"
	"time"

	"lsv_backend/internal/model"
	"lsv_backend/internal/repository"
	"lsv_backend/internal/util"
)

type UserLessonService struct {
	UserLessons *repository.UserLessonRepository
	Lessons     *repository.LessonRepository
	Users       *repository.UserRepository
}

func NewUserLessonService(
	userLessons *repository.UserLessonRepository,
	lessons *repository.LessonRepository,
	users *repository.UserRepository,
) *UserLessonService {
	return &UserLessonService{
		UserLessons: userLessons,
		Lessons:     lessons,
		Users:       users,
	}
}

// StartLesson records that the user opened a lesson. Idempotent: a second
// start returns the existing record untouched.
func (s *UserLessonService) StartLesson(userID, lessonID string) (*model.UserLesson, error) {
	if _, err := s.Users.FindByID(userID); err != nil {
		return nil, err
	}
	lesson, err := s.Lessons.FindByID(lessonID)
	if err != nil {
		return nil, err
	}

	existing, err := s.UserLessons.FindByUserAndLesson(userID, lessonID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, util.ErrLessonNotFound) {
		return nil, err
	}

	userLesson := &model.UserLesson{
		Title:    lesson.Name,
		UserID:   userID,
		LessonID: lessonID,
	}
	if err := s.UserLessons.Create(userLesson); err != nil {
		return nil, err
	}
	return userLesson, nil
}

// SetLessonCompletion marks the record complete or reopens it. Completing
// stamps CompletedAt; reopening clears it.
func (s *UserLessonService) SetLessonCompletion(userID, lessonID string, completed bool) (*model.UserLesson, error) {
	userLesson, err := s.UserLessons.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		return nil, err
	}

	userLesson.IsCompleted = completed
	if completed {
		now := time.Now()
		userLesson.CompletedAt = &now
	} else {
		userLesson.CompletedAt = nil
	}

	if err := s.UserLessons.Update(userLesson); err != nil {
		return nil, err
	}
	return userLesson, nil
}

func (s *UserLessonService) GetUserLessons(userID string, pagination util.Pagination) ([]model.UserLesson, int64, error) {
	if err := pagination.Normalize(); err != nil {
		return nil, 0, err
	}
	if _, err := s.Users.FindByID(userID); err != nil {
		return nil, 0, err
	}
	return s.UserLessons.FindByUserID(userID, pagination)
}
