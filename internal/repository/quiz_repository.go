package repository

import (
	"errors"
	"lsv_backend/internal/model"
	"lsv_backend/internal/util"

	"gorm.io/gorm"
)

type QuizRepository struct {
	DB *gorm.DB
}

func NewQuizRepository(db *gorm.DB) *QuizRepository {
	return &QuizRepository{DB: db}
}

func (r *QuizRepository) FindByID(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.First(&quiz, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindByIDWithQuestions loads the full question/option graph, including the
// correctness flags. The grader derives its answer key from this; learner
// payloads must go through PublicView.
func (r *QuizRepository) FindByIDWithQuestions(id string) (*model.Quiz, error) {
	var quiz model.Quiz
	err := r.DB.Preload("Questions.Options").First(&quiz, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

// FindAnswerKey is the grader-only projection of a quiz.
func (r *QuizRepository) FindAnswerKey(id string) (*model.AnswerKey, error) {
	quiz, err := r.FindByIDWithQuestions(id)
	if err != nil {
		return nil, err
	}
	return quiz.AnswerKeyView(), nil
}

// CreateWithQuestionsAndOptions persists a quiz graph in one transaction.
func (r *QuizRepository) CreateWithQuestionsAndOptions(quiz *model.Quiz) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		questions := quiz.Questions
		quiz.Questions = nil
		if err := tx.Create(quiz).Error; err != nil {
			return err
		}

		for i := range questions {
			options := questions[i].Options
			questions[i].Options = nil
			questions[i].QuizID = quiz.ID
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
			for j := range options {
				options[j].QuestionID = questions[i].ID
				if err := tx.Create(&options[j]).Error; err != nil {
					return err
				}
			}
			questions[i].Options = options
		}
		quiz.Questions = questions
		return nil
	})
}

func (r *QuizRepository) ListByLanguage(languageID string, pagination util.Pagination) ([]model.Quiz, int64, error) {
	var quizzes []model.Quiz
	var total int64

	base := r.DB.Model(&model.Quiz{}).
		Joins("JOIN lessons ON lessons.id = quizzes.lesson_id").
		Where("lessons.language_id = ? AND lessons.deleted_at IS NULL", languageID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order, err := pagination.OrderClause(map[string]string{
		"createdAt": "quizzes.created_at",
		"updatedAt": "quizzes.updated_at",
	}, "quizzes.created_at")
	if err != nil {
		return nil, 0, err
	}

	err = r.DB.
		Joins("JOIN lessons ON lessons.id = quizzes.lesson_id").
		Where("lessons.language_id = ? AND lessons.deleted_at IS NULL", languageID).
		Order(order).
		Offset(pagination.Offset()).
		Limit(pagination.Limit).
		Find(&quizzes).Error
	return quizzes, total, err
}

func (r *QuizRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var questionIDs []string
		if err := tx.Model(&model.Question{}).Where("quiz_id = ?", id).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Delete(&model.Option{}, "question_id IN ?", questionIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&model.Question{}, "id IN ?", questionIDs).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Quiz{}, "id = ?", id).Error
	})
}
