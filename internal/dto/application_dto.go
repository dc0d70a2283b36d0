package dto

import (
	"time"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// ApplicationCreateRequest submits an application to an active drive.
type ApplicationCreateRequest struct {
	DriveID   uint                         `json:"drive_id" validate:"required"`
	Documents []models.ApplicationDocument `json:"documents" validate:"omitempty,dive"`
}

// ApplicationStatusRequest moves an application to a new review state.
type ApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Applied Shortlisted Rejected Selected Pending"`
}

// ApplicationResponse is the serialized representation of an application.
type ApplicationResponse struct {
	ID        uint                         `json:"id"`
	StudentID uint                         `json:"student_id"`
	DriveID   uint                         `json:"drive_id"`
	Status    models.ApplicationStatus     `json:"status"`
	Documents []models.ApplicationDocument `json:"documents"`
	CreatedAt time.Time                    `json:"created_at"`
	UpdatedAt time.Time                    `json:"updated_at"`
}

// NewApplicationResponse converts an application model into a DTO.
func NewApplicationResponse(application models.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        application.ID,
		StudentID: application.StudentID,
		DriveID:   application.DriveID,
		Status:    application.Status,
		Documents: application.Documents.Data(),
		CreatedAt: application.CreatedAt,
		UpdatedAt: application.UpdatedAt,
	}
}

// NewApplicationResponseSlice converts a slice of applications into DTOs.
func NewApplicationResponseSlice(applications []models.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		out = append(out, NewApplicationResponse(application))
	}
	return out
}
