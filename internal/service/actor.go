package service

import "github.com/noah-isme/placement-go-api/internal/models"

// Actor identifies the authenticated caller of a service operation. Services
// never re-validate credentials; they only check role and department
// relationships.
type Actor struct {
	ID         uint
	Role       models.Role
	Department string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

// IsCoordinator reports whether the actor holds the coordinator role.
func (a Actor) IsCoordinator() bool { return a.Role == models.RoleCoordinator }

// IsStudent reports whether the actor holds the student role.
func (a Actor) IsStudent() bool { return a.Role == models.RoleStudent }
