package models

import (
	"time"

	"gorm.io/datatypes"
)

// ApplicationStatus is the review state of a student's application.
type ApplicationStatus string

const (
	ApplicationStatusApplied     ApplicationStatus = "Applied"
	ApplicationStatusShortlisted ApplicationStatus = "Shortlisted"
	ApplicationStatusRejected    ApplicationStatus = "Rejected"
	ApplicationStatusSelected    ApplicationStatus = "Selected"
	ApplicationStatusPending     ApplicationStatus = "Pending"
)

// Valid reports whether the status is one of the known constants.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusApplied, ApplicationStatusShortlisted,
		ApplicationStatusRejected, ApplicationStatusSelected,
		ApplicationStatusPending:
		return true
	}
	return false
}

// ApplicationDocument references an uploaded supporting document.
type ApplicationDocument struct {
	Type     string `json:"type,omitempty"`
	URL      string `json:"url,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}

// Application is a (student, drive) pair, unique together. Duplicate
// submissions are rejected, never upserted.
type Application struct {
	ID        uint                                      `gorm:"primaryKey" json:"id"`
	StudentID uint                                      `gorm:"not null;uniqueIndex:idx_student_drive;index" json:"student_id"`
	DriveID   uint                                      `gorm:"not null;uniqueIndex:idx_student_drive;index" json:"drive_id"`
	Status    ApplicationStatus                         `gorm:"size:32;not null;default:Applied" json:"status"`
	Documents datatypes.JSONType[[]ApplicationDocument] `json:"documents"`
	CreatedAt time.Time                                 `json:"created_at"`
	UpdatedAt time.Time                                 `json:"updated_at"`
}
