// Package testutil provides an in-memory database and fixture helpers for
// service and repository tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"lsv_backend/internal/model"
	"lsv_backend/pkg/database"
	"lsv_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB opens a fresh in-memory sqlite database, migrated with the full
// schema. The database is private to the test: the DSN is keyed by test
// name and shared-cache keeps every pooled connection on the same store.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// A single connection keeps the in-memory store alive for the whole test.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func SeedUser(t *testing.T, db *gorm.DB, email, firstName, lastName string) *model.User {
	t.Helper()
	user := &model.User{
		Email:        email,
		HashPassword: "x",
		FirstName:    firstName,
		LastName:     lastName,
		Role:         model.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

func SeedLanguage(t *testing.T, db *gorm.DB, name string) *model.Language {
	t.Helper()
	language := &model.Language{Name: name}
	if err := db.Create(language).Error; err != nil {
		t.Fatalf("failed to seed language %s: %v", name, err)
	}
	return language
}

func SeedStage(t *testing.T, db *gorm.DB, languageID, name string) *model.Stage {
	t.Helper()
	stage := &model.Stage{Name: name, LanguageID: languageID}
	if err := db.Create(stage).Error; err != nil {
		t.Fatalf("failed to seed stage %s: %v", name, err)
	}
	return stage
}

func SeedLesson(t *testing.T, db *gorm.DB, languageID, stageID, name string) *model.Lesson {
	t.Helper()
	lesson := &model.Lesson{Name: name, LanguageID: languageID, StageID: stageID}
	if err := db.Create(lesson).Error; err != nil {
		t.Fatalf("failed to seed lesson %s: %v", name, err)
	}
	return lesson
}

// SeedQuiz creates a quiz with n questions, each with one correct and one
// wrong option. Returns the quiz reloaded with its full question graph.
func SeedQuiz(t *testing.T, db *gorm.DB, lessonID string, questions int) *model.Quiz {
	t.Helper()
	quiz := &model.Quiz{LessonID: lessonID}
	for i := 0; i < questions; i++ {
		quiz.Questions = append(quiz.Questions, model.Question{
			Text: fmt.Sprintf("question %d", i+1),
			Options: []model.Option{
				{Text: "right", IsCorrect: true},
				{Text: "wrong"},
			},
		})
	}
	if err := db.Create(quiz).Error; err != nil {
		t.Fatalf("failed to seed quiz: %v", err)
	}

	var loaded model.Quiz
	if err := db.Preload("Questions.Options").First(&loaded, "id = ?", quiz.ID).Error; err != nil {
		t.Fatalf("failed to reload quiz: %v", err)
	}
	return &loaded
}

// CorrectAnswers builds a full-marks answer sheet for a seeded quiz.
func CorrectAnswers(quiz *model.Quiz) []model.AnswerEntry {
	answers := make([]model.AnswerEntry, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		for _, option := range question.Options {
			if option.IsCorrect {
				answers = append(answers, model.AnswerEntry{
					QuestionID: question.ID,
					OptionID:   option.ID,
				})
			}
		}
	}
	return answers
}

// WrongAnswers picks an incorrect option for every question.
func WrongAnswers(quiz *model.Quiz) []model.AnswerEntry {
	answers := make([]model.AnswerEntry, 0, len(quiz.Questions))
	for _, question := range quiz.Questions {
		for _, option := range question.Options {
			if !option.IsCorrect {
				answers = append(answers, model.AnswerEntry{
					QuestionID: question.ID,
					OptionID:   option.ID,
				})
				break
			}
		}
	}
	return answers
}

func SeedSubmission(t *testing.T, db *gorm.DB, userID, quizID string, score int, submittedAt time.Time) *model.QuizSubmission {
	t.Helper()
	raw, _ := json.Marshal([]model.AnswerEntry{})
	submission := &model.QuizSubmission{
		UserID:      userID,
		QuizID:      quizID,
		Answers:     raw,
		Score:       score,
		SubmittedAt: submittedAt,
	}
	if err := db.Create(submission).Error; err != nil {
		t.Fatalf("failed to seed submission: %v", err)
	}
	return submission
}
