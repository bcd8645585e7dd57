package model

import "time"

// PassingScore is the single completion threshold: a lesson counts as
// completed once any of its quizzes has a submission scoring at least this.
// Stage progress and the passed-lesson set both derive from it so the two
// views can never disagree.
const PassingScore = 80

// SubmissionSummary is one attempt as exposed inside progress views.
type SubmissionSummary struct {
	SubmissionID string        `json:"submissionId"`
	Score        int           `json:"score"`
	SubmittedAt  time.Time     `json:"submittedAt"`
	Answers      []AnswerEntry `json:"answers"`
}

// LessonProgress is derived on read from the user's submissions; it is
// never persisted.
// swagger:model LessonProgress
type LessonProgress struct {
	LessonID    string              `json:"lessonId"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	MaxScore    int                 `json:"maxScore"`
	Submissions []SubmissionSummary `json:"submissions"`
}

// swagger:model StageProgress
type StageProgress struct {
	StageID          string  `json:"stageId"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	TotalLessons     int     `json:"totalLessons"`
	CompletedLessons int     `json:"completedLessons"`
	Progress         float64 `json:"progress"`
}

// swagger:model LeaderboardEntry
type LeaderboardEntry struct {
	UserID     string `json:"userId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	TotalScore int    `json:"totalScore"`
}
