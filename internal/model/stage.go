package model

// Stage groups lessons within a language and is the unit of coarse-grained
// completion percentage.
// swagger:model Stage
type Stage struct {
	UUIDBase
	Name        string   `gorm:"size:255;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	LanguageID  string   `gorm:"index;type:varchar(36);not null" json:"languageId"`
	Lessons     []Lesson `gorm:"foreignKey:StageID" json:"lessons,omitempty"`
}

func (Stage) TableName() string {
	return "stages"
}
