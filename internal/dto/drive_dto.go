package dto

import (
	"time"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// DriveCreateRequest is the admin payload to create a drive.
type DriveCreateRequest struct {
	CompanyName         string     `json:"company_name" validate:"required,max=255"`
	JobRole             string     `json:"job_role" validate:"required,max=255"`
	JobDescription      string     `json:"job_description" validate:"required"`
	Location            string     `json:"location" validate:"required,max=255"`
	Stipend             string     `json:"stipend" validate:"omitempty,max=128"`
	Salary              string     `json:"salary" validate:"omitempty,max=128"`
	ExperienceRequired  string     `json:"experience_required" validate:"omitempty,max=255"`
	Qualification       string     `json:"qualification" validate:"omitempty,max=255"`
	EligibilityCriteria string     `json:"eligibility_criteria"`
	Shift               string     `json:"shift" validate:"omitempty,max=128"`
	WorkMode            string     `json:"work_mode" validate:"omitempty,oneof=Onsite Remote Hybrid"`
	ApplicationLink     string     `json:"application_link" validate:"omitempty,url,max=512"`
	Department          string     `json:"department" validate:"omitempty,max=128"`
	Status              string     `json:"status" validate:"omitempty,oneof=Draft Active Closed"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
}

// DriveUpdateRequest patches an existing drive; nil fields are left untouched.
type DriveUpdateRequest struct {
	CompanyName         *string    `json:"company_name" validate:"omitempty,max=255"`
	JobRole             *string    `json:"job_role" validate:"omitempty,max=255"`
	JobDescription      *string    `json:"job_description"`
	Location            *string    `json:"location" validate:"omitempty,max=255"`
	Stipend             *string    `json:"stipend" validate:"omitempty,max=128"`
	Salary              *string    `json:"salary" validate:"omitempty,max=128"`
	ExperienceRequired  *string    `json:"experience_required" validate:"omitempty,max=255"`
	Qualification       *string    `json:"qualification" validate:"omitempty,max=255"`
	EligibilityCriteria *string    `json:"eligibility_criteria"`
	Shift               *string    `json:"shift" validate:"omitempty,max=128"`
	WorkMode            *string    `json:"work_mode" validate:"omitempty,oneof=Onsite Remote Hybrid"`
	ApplicationLink     *string    `json:"application_link" validate:"omitempty,url,max=512"`
	Department          *string    `json:"department" validate:"omitempty,max=128"`
	Status              *string    `json:"status" validate:"omitempty,oneof=Draft Active Closed"`
	ApplicationDeadline *time.Time `json:"application_deadline"`
}

// DriveAssignRequest hands a drive to a coordinator.
type DriveAssignRequest struct {
	CoordinatorID uint   `json:"coordinator_id" validate:"required"`
	Department    string `json:"department" validate:"omitempty,max=128"`
}

// DriveShareRequest shares a drive either with an explicit student list or
// with every student matching the criteria.
type DriveShareRequest struct {
	StudentIDs []uint                `json:"student_ids" validate:"omitempty,dive,required"`
	Criteria   *models.ShareCriteria `json:"criteria"`
}

// DriveAssignmentResponse is one coordinator assignment on a drive.
type DriveAssignmentResponse struct {
	CoordinatorID uint      `json:"coordinator_id"`
	Department    string    `json:"department,omitempty"`
	AssignedAt    time.Time `json:"assigned_at"`
}

// DriveShareEntryResponse is one student share on a drive.
type DriveShareEntryResponse struct {
	StudentID uint      `json:"student_id"`
	SharedAt  time.Time `json:"shared_at"`
}

// DriveResponse is the serialized representation of a drive.
type DriveResponse struct {
	ID                  uint                      `json:"id"`
	CompanyName         string                    `json:"company_name"`
	JobRole             string                    `json:"job_role"`
	JobDescription      string                    `json:"job_description"`
	Location            string                    `json:"location"`
	Stipend             string                    `json:"stipend,omitempty"`
	Salary              string                    `json:"salary,omitempty"`
	ExperienceRequired  string                    `json:"experience_required,omitempty"`
	Qualification       string                    `json:"qualification,omitempty"`
	EligibilityCriteria string                    `json:"eligibility_criteria,omitempty"`
	Shift               string                    `json:"shift,omitempty"`
	WorkMode            models.WorkMode           `json:"work_mode,omitempty"`
	ApplicationLink     string                    `json:"application_link,omitempty"`
	Department          string                    `json:"department,omitempty"`
	Status              models.DriveStatus        `json:"status"`
	ShareCriteria       *models.ShareCriteria     `json:"share_criteria,omitempty"`
	ApplicationDeadline *time.Time                `json:"application_deadline,omitempty"`
	CreatedBy           uint                      `json:"created_by"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
	AssignedTo          []DriveAssignmentResponse `json:"assigned_to"`
	SharedWith          []DriveShareEntryResponse `json:"shared_with"`
}

// DriveShareResponse wraps the updated drive with the share delta size.
type DriveShareResponse struct {
	Drive       DriveResponse `json:"drive"`
	SharedCount int           `json:"shared_count"`
}

// NewDriveResponse converts a drive model into a DTO.
func NewDriveResponse(drive models.Drive) DriveResponse {
	assigned := make([]DriveAssignmentResponse, 0, len(drive.Assignments))
	for _, assignment := range drive.Assignments {
		assigned = append(assigned, DriveAssignmentResponse{
			CoordinatorID: assignment.CoordinatorID,
			Department:    assignment.Department,
			AssignedAt:    assignment.AssignedAt,
		})
	}

	shared := make([]DriveShareEntryResponse, 0, len(drive.Shares))
	for _, share := range drive.Shares {
		shared = append(shared, DriveShareEntryResponse{
			StudentID: share.StudentID,
			SharedAt:  share.SharedAt,
		})
	}

	// Drives never shared by criteria carry no filter; leave the field out
	// instead of serializing an all-empty object.
	var criteria *models.ShareCriteria
	if data := drive.ShareCriteria.Data(); !data.Empty() {
		criteria = &data
	}

	return DriveResponse{
		ID:                  drive.ID,
		CompanyName:         drive.CompanyName,
		JobRole:             drive.JobRole,
		JobDescription:      drive.JobDescription,
		Location:            drive.Location,
		Stipend:             drive.Stipend,
		Salary:              drive.Salary,
		ExperienceRequired:  drive.ExperienceRequired,
		Qualification:       drive.Qualification,
		EligibilityCriteria: drive.EligibilityCriteria,
		Shift:               drive.Shift,
		WorkMode:            drive.WorkMode,
		ApplicationLink:     drive.ApplicationLink,
		Department:          drive.Department,
		Status:              drive.Status,
		ShareCriteria:       criteria,
		ApplicationDeadline: drive.ApplicationDeadline,
		CreatedBy:           drive.CreatedByID,
		CreatedAt:           drive.CreatedAt,
		UpdatedAt:           drive.UpdatedAt,
		AssignedTo:          assigned,
		SharedWith:          shared,
	}
}

// NewDriveResponseSlice converts a slice of drives into DTOs.
func NewDriveResponseSlice(drives []models.Drive) []DriveResponse {
	out := make([]DriveResponse, 0, len(drives))
	for _, drive := range drives {
		out = append(out, NewDriveResponse(drive))
	}
	return out
}
