package models

import (
	"time"

	"gorm.io/datatypes"
)

// DriveStatus is the lifecycle state of a placement drive.
type DriveStatus string

const (
	DriveStatusDraft  DriveStatus = "Draft"
	DriveStatusActive DriveStatus = "Active"
	DriveStatusClosed DriveStatus = "Closed"
)

// WorkMode describes where the offered job is performed.
type WorkMode string

const (
	WorkModeOnsite WorkMode = "Onsite"
	WorkModeRemote WorkMode = "Remote"
	WorkModeHybrid WorkMode = "Hybrid"
)

// ShareCriteria is the eligibility filter persisted on a drive after a
// criteria-based share. All fields are optional; absence means the axis is
// unconstrained.
type ShareCriteria struct {
	MinCGPA        *float64 `json:"min_cgpa,omitempty"`
	MaxCGPA        *float64 `json:"max_cgpa,omitempty"`
	Branches       []string `json:"branches,omitempty"`
	Programs       []string `json:"programs,omitempty"`
	PassoutYears   []string `json:"passout_years,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
}

// Empty reports whether no axis carries a constraint.
func (c ShareCriteria) Empty() bool {
	return c.MinCGPA == nil && c.MaxCGPA == nil &&
		len(c.Branches) == 0 && len(c.Programs) == 0 &&
		len(c.PassoutYears) == 0 && len(c.RequiredSkills) == 0
}

// Drive represents a job posting created by an administrator.
type Drive struct {
	ID                  uint                              `gorm:"primaryKey" json:"id"`
	CompanyName         string                            `gorm:"size:255;not null" json:"company_name"`
	JobRole             string                            `gorm:"size:255;not null" json:"job_role"`
	JobDescription      string                            `gorm:"type:text;not null" json:"job_description"`
	Location            string                            `gorm:"size:255;not null" json:"location"`
	Stipend             string                            `gorm:"size:128" json:"stipend,omitempty"`
	Salary              string                            `gorm:"size:128" json:"salary,omitempty"`
	ExperienceRequired  string                            `gorm:"size:255" json:"experience_required,omitempty"`
	Qualification       string                            `gorm:"size:255" json:"qualification,omitempty"`
	EligibilityCriteria string                            `gorm:"type:text" json:"eligibility_criteria,omitempty"`
	Shift               string                            `gorm:"size:128" json:"shift,omitempty"`
	WorkMode            WorkMode                          `gorm:"size:32" json:"work_mode,omitempty"`
	ApplicationLink     string                            `gorm:"size:512" json:"application_link,omitempty"`
	Department          string                            `gorm:"size:128;index" json:"department,omitempty"`
	Status              DriveStatus                       `gorm:"size:32;not null;default:Draft;index" json:"status"`
	ShareCriteria       datatypes.JSONType[ShareCriteria] `json:"share_criteria"`
	ApplicationDeadline *time.Time                        `json:"application_deadline,omitempty"`
	CreatedByID         uint                              `gorm:"not null;index" json:"created_by"`
	CreatedAt           time.Time                         `json:"created_at"`
	UpdatedAt           time.Time                         `json:"updated_at"`
	Assignments         []DriveAssignment                 `json:"assignments,omitempty"`
	Shares              []DriveShare                      `json:"shares,omitempty"`
}

// DriveAssignment hands a coordinator responsibility for a drive. The
// composite unique index makes repeat assignment a no-op at the store level.
type DriveAssignment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DriveID       uint      `gorm:"not null;uniqueIndex:idx_drive_coordinator" json:"drive_id"`
	CoordinatorID uint      `gorm:"not null;uniqueIndex:idx_drive_coordinator;index" json:"coordinator_id"`
	Department    string    `gorm:"size:128" json:"department,omitempty"`
	AssignedAt    time.Time `gorm:"not null" json:"assigned_at"`
}

// DriveShare grants a student visibility of a drive. The composite unique
// index makes the share operation add-if-absent under concurrent callers.
type DriveShare struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DriveID   uint      `gorm:"not null;uniqueIndex:idx_drive_student" json:"drive_id"`
	StudentID uint      `gorm:"not null;uniqueIndex:idx_drive_student;index" json:"student_id"`
	SharedAt  time.Time `gorm:"not null" json:"shared_at"`
}
