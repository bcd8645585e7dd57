package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerEntry is the learner's chosen option for one question.
type AnswerEntry struct {
	QuestionID string `json:"questionId" binding:"required"`
	OptionID   string `json:"optionId" binding:"required"`
}

// QuizSubmission is one graded attempt at a quiz. Rows are append-only:
// never updated or deleted, only superseded by newer submissions.
// swagger:model QuizSubmission
type QuizSubmission struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID      string          `gorm:"index;type:varchar(36);not null" json:"userId"`
	QuizID      string          `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Answers     json.RawMessage `gorm:"type:json" json:"answers"`
	Score       int             `gorm:"not null" json:"score"`
	SubmittedAt time.Time       `gorm:"autoCreateTime" json:"submittedAt"`
}

func (QuizSubmission) TableName() string {
	return "quiz_submissions"
}

func (s *QuizSubmission) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return
}

// DecodedAnswers unmarshals the stored answers payload.
func (s *QuizSubmission) DecodedAnswers() ([]AnswerEntry, error) {
	if len(s.Answers) == 0 {
		return nil, nil
	}
	var entries []AnswerEntry
	if err := json.Unmarshal(s.Answers, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
