package model

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// swagger:model User
type User struct {
	UUIDBase
	Email         string   `gorm:"uniqueIndex;size:255;not null" json:"email"`
	GoogleID      string   `gorm:"size:255" json:"-"`
	HashPassword  string   `gorm:"size:255" json:"-"`
	FirstName     string   `gorm:"size:100;not null" json:"firstName"`
	LastName      string   `gorm:"size:100" json:"lastName"`
	Age           int      `json:"age,omitempty"`
	IsRightHanded *bool    `json:"isRightHanded,omitempty"`
	Role          UserRole `gorm:"size:20;default:'user'" json:"role"`
}

func (User) TableName() string {
	return "users"
}
