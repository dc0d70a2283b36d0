package models

import "time"

// Resource is departmental study material shared by coordinators.
type Resource struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	URL          string    `gorm:"size:512" json:"url,omitempty"`
	Type         string    `gorm:"size:64;default:general" json:"type"`
	Department   string    `gorm:"size:128;index" json:"department,omitempty"`
	UploadedByID uint      `gorm:"not null;index" json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
