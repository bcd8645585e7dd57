package model

// swagger:model Language
type Language struct {
	UUIDBase
	Name        string   `gorm:"uniqueIndex;size:255;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Stages      []Stage  `gorm:"foreignKey:LanguageID" json:"stages,omitempty"`
	Lessons     []Lesson `gorm:"foreignKey:LanguageID" json:"lessons,omitempty"`
}

func (Language) TableName() string {
	return "languages"
}
