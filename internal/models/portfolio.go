package models

import "time"

// Project is a student portfolio project rendered on the resume.
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	TechStack   string    `gorm:"size:512" json:"tech_stack,omitempty"`
	GithubLink  string    `gorm:"size:512" json:"github_link,omitempty"`
	LiveLink    string    `gorm:"size:512" json:"live_link,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Experience is a work-history entry on a student profile.
type Experience struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	UserID           uint       `gorm:"not null;index" json:"user_id"`
	JobTitle         string     `gorm:"size:255;not null" json:"job_title"`
	CompanyName      string     `gorm:"size:255;not null" json:"company_name"`
	JobLocation      string     `gorm:"size:255" json:"job_location,omitempty"`
	Description      string     `gorm:"type:text" json:"description,omitempty"`
	StartDate        time.Time  `gorm:"not null" json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	CurrentlyWorking bool       `gorm:"not null;default:false" json:"currently_working"`
	ProofURL         string     `gorm:"size:512" json:"proof_url,omitempty"`
	ProofPublicID    string     `gorm:"size:255" json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Accomplishment is an award or achievement listed on the resume.
type Accomplishment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Issuer      string    `gorm:"size:255" json:"issuer,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Certificate is an uploaded certification document.
type Certificate struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Organization  string     `gorm:"size:255" json:"organization,omitempty"`
	IssueDate     *time.Time `json:"issue_date,omitempty"`
	CredentialID  string     `gorm:"size:255" json:"credential_id,omitempty"`
	CredentialURL string     `gorm:"size:512" json:"credential_url,omitempty"`
	FileURL       string     `gorm:"size:512" json:"file_url,omitempty"`
	FilePublicID  string     `gorm:"size:255" json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
