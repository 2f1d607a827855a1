package models

import "github.com/google/uuid"

type TeamRole string

const (
	TeamRoleAdmin  TeamRole = "admin"
	TeamRoleMember TeamRole = "member"
)

func (r TeamRole) Valid() bool {
	return r == TeamRoleAdmin || r == TeamRoleMember
}

// UserProject is the membership join between users and projects. A (user,
// project) pair exists at most once; changing a role is an update of the
// existing row, never a second insert.
type UserProject struct {
	Model
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_project"`
	User      User      `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	ProjectID uuid.UUID `json:"projectId" gorm:"type:uuid;not null;uniqueIndex:idx_user_project"`
	Project   Project   `json:"-" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;"`
	Role      TeamRole  `json:"role" gorm:"type:text;not null;default:'member'"`
}

func (m UserProject) TableName() string {
	return "user_projects"
}
