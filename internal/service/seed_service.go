package service

import (
	"lsv_backend/internal/model"
	"lsv_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedService populates an empty database with a small demo graph for
// local development: one admin, one learner, one language with a stage,
// a lesson and a three-question quiz. It refuses to run if any language
// already exists.
type SeedService struct {
	DB *gorm.DB
}

func NewSeedService(db *gorm.DB) *SeedService {
	return &SeedService{DB: db}
}

func (s *SeedService) Run() error {
	var count int64
	if err := s.DB.Model(&model.Language{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Log.Info("seed skipped, database already has languages", zap.Int64("count", count))
		return nil
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		adminHash, err := bcrypt.GenerateFromPassword([]byte("admin-password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		userHash, err := bcrypt.GenerateFromPassword([]byte("learner-password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		admin := &model.User{
			Email:        "admin@example.com",
			HashPassword: string(adminHash),
			FirstName:    "Site",
			LastName:     "Admin",
			Role:         model.RoleAdmin,
		}
		learner := &model.User{
			Email:        "learner@example.com",
			HashPassword: string(userHash),
			FirstName:    "Demo",
			LastName:     "Learner",
			Role:         model.RoleUser,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		if err := tx.Create(learner).Error; err != nil {
			return err
		}

		language := &model.Language{
			Name:        "LSV",
			Description: "Venezuelan Sign Language",
		}
		if err := tx.Create(language).Error; err != nil {
			return err
		}

		stage := &model.Stage{
			Name:        "Basics",
			Description: "Alphabet and greetings",
			LanguageID:  language.ID,
		}
		if err := tx.Create(stage).Error; err != nil {
			return err
		}

		lesson := &model.Lesson{
			Name:        "Greetings",
			Description: "Everyday greetings",
			Content:     "hello, goodbye, thank you",
			LanguageID:  language.ID,
			StageID:     stage.ID,
		}
		if err := tx.Create(lesson).Error; err != nil {
			return err
		}

		quiz := &model.Quiz{
			LessonID: lesson.ID,
			Questions: []model.Question{
				{
					Text: "Which sign means hello?",
					Options: []model.Option{
						{Text: "Open palm wave", IsCorrect: true},
						{Text: "Closed fist"},
						{Text: "Crossed arms"},
					},
				},
				{
					Text: "Which sign means thank you?",
					Options: []model.Option{
						{Text: "Chin-out palm", IsCorrect: true},
						{Text: "Thumbs down"},
					},
				},
				{
					Text: "Which sign means goodbye?",
					Options: []model.Option{
						{Text: "Finger wiggle wave", IsCorrect: true},
						{Text: "Tap on shoulder"},
					},
				},
			},
		}
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}

		logger.Log.Info("seeded demo data",
			zap.String("language", language.ID),
			zap.String("lesson", lesson.ID),
			zap.String("quiz", quiz.ID))
		return nil
	})
}
