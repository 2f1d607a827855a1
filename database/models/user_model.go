package models

// User mirrors the identity managed by the external auth provider. The row is
// synced on login and referenced by team memberships.
type User struct {
	Model
	FarcasterID *string `json:"farcasterId" gorm:"type:text;uniqueIndex"`
	Name        string  `json:"name" gorm:"type:text;not null"`
	Username    *string `json:"username" gorm:"type:text"`
	ImageURL    *string `json:"imageUrl" gorm:"type:text"`
	Bio         *string `json:"bio" gorm:"type:text"`

	Projects []UserProject `json:"projects" gorm:"foreignKey:UserID"`
}

func (m User) TableName() string {
	return "users"
}
