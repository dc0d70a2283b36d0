package models

import "time"

// Role identifies the authorization level of a user account.
type Role string

// The placement portal recognises exactly three roles.
const (
	RoleStudent     Role = "STUDENT"
	RoleCoordinator Role = "DEPT_COORDINATOR"
	RoleAdmin       Role = "ADMIN"
)

// Valid reports whether the role is one of the known constants.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleCoordinator, RoleAdmin:
		return true
	}
	return false
}

// User represents an account able to authenticate against the portal.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Email      string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"size:255;not null" json:"-"`
	Role       Role      `gorm:"size:32;not null;index" json:"role"`
	Department string    `gorm:"size:128" json:"department,omitempty"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedBy  *uint     `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
