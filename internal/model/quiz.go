package model

// swagger:model Quiz
type Quiz struct {
	UUIDBase
	LessonID  string     `gorm:"index;type:varchar(36);not null" json:"lessonId"`
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// swagger:model Question
type Question struct {
	UUIDBase
	QuizID  string   `gorm:"index;type:varchar(36);not null" json:"quizId"`
	Text    string   `gorm:"type:text;not null" json:"text"`
	Options []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// Option carries the hidden IsCorrect flag. It is never serialized directly
// to learners: pre-submission payloads go through the Public* projections
// below, the grader reads it through AnswerKey only.
// swagger:model Option
type Option struct {
	UUIDBase
	QuestionID string `gorm:"index;type:varchar(36);not null" json:"questionId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	IsCorrect  bool   `gorm:"default:false" json:"-"`
}

func (Option) TableName() string {
	return "options"
}

// Public projections: what a learner sees before submitting.

// swagger:model PublicOption
type PublicOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// swagger:model PublicQuestion
type PublicQuestion struct {
	ID      string         `json:"id"`
	Text    string         `json:"text"`
	Options []PublicOption `json:"options"`
}

// swagger:model PublicQuiz
type PublicQuiz struct {
	ID        string           `json:"id"`
	LessonID  string           `json:"lessonId"`
	Questions []PublicQuestion `json:"questions"`
}

// PublicView strips correctness from the question/option graph.
func (q *Quiz) PublicView() *PublicQuiz {
	view := &PublicQuiz{
		ID:        q.ID,
		LessonID:  q.LessonID,
		Questions: make([]PublicQuestion, 0, len(q.Questions)),
	}
	for _, question := range q.Questions {
		pq := PublicQuestion{
			ID:      question.ID,
			Text:    question.Text,
			Options: make([]PublicOption, 0, len(question.Options)),
		}
		for _, option := range question.Options {
			pq.Options = append(pq.Options, PublicOption{ID: option.ID, Text: option.Text})
		}
		view.Questions = append(view.Questions, pq)
	}
	return view
}

// AnswerKey is the grader-internal projection: one correct option per
// gradable question. Questions with zero or multiple correct options are
// excluded (the create path rejects such quizzes, the key tolerates legacy
// rows).
type AnswerKey struct {
	QuizID        string
	CorrectOption map[string]string // questionID -> correct optionID
}

func (q *Quiz) AnswerKeyView() *AnswerKey {
	key := &AnswerKey{
		QuizID:        q.ID,
		CorrectOption: make(map[string]string, len(q.Questions)),
	}
	for _, question := range q.Questions {
		correct := ""
		count := 0
		for _, option := range question.Options {
			if option.IsCorrect {
				correct = option.ID
				count++
			}
		}
		if count == 1 {
			key.CorrectOption[question.ID] = correct
		}
	}
	return key
}
