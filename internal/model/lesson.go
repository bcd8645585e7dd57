package model

import "time"

// swagger:model Lesson
type Lesson struct {
	UUIDBase
	Name        string `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Content     string `gorm:"type:text" json:"content"`
	LanguageID  string `gorm:"index;type:varchar(36);not null" json:"languageId"`
	StageID     string `gorm:"index;type:varchar(36)" json:"stageId"`
	Quizzes     []Quiz `gorm:"foreignKey:LessonID" json:"quizzes,omitempty"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// UserLesson tracks a user having started (and possibly completed) a lesson.
// swagger:model UserLesson
type UserLesson struct {
	UUIDBase
	Title       string     `gorm:"size:255" json:"title"`
	IsCompleted bool       `gorm:"default:false" json:"isCompleted"`
	CompletedAt *time.Time `json:"completedAt"`
	UserID      string     `gorm:"index;type:varchar(36);not null" json:"userId"`
	LessonID    string     `gorm:"index;type:varchar(36);not null" json:"lessonId"`
}

func (UserLesson) TableName() string {
	return "user_lessons"
}
