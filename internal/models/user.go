package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is one of four fixed identity classes controlling route access.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleHRManager   Role = "hr_manager"
	RoleHRStaff     Role = "hr_staff"
	RoleInterviewer Role = "interviewer"
)

// ValidRole reports whether r is one of the enumerated roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleHRManager, RoleHRStaff, RoleInterviewer:
		return true
	}
	return false
}

// Permission is an optional fine-grained grant attached to a user on top of
// their role.
type Permission struct {
	Resource string   `json:"resource"`
	Actions  []string `json:"actions"`
}

// User is an HR dashboard account. Username and email are unique across all
// users; the password is stored only as a bcrypt hash.
type User struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string       `gorm:"uniqueIndex;not null" json:"username"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"not null" json:"-"`
	Role         Role         `gorm:"type:varchar(20);not null;default:hr_staff" json:"role"`
	FirstName    string       `gorm:"not null" json:"firstName"`
	LastName     string       `gorm:"not null" json:"lastName"`
	Department   string       `gorm:"not null" json:"department"`
	IsActive     bool         `gorm:"default:true" json:"isActive"`
	LastLogin    *time.Time   `json:"lastLogin,omitempty"`
	Permissions  []Permission `gorm:"serializer:json" json:"permissions,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
