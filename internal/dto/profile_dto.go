package dto

import (
	"time"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// BasicDetailsUpdateRequest replaces the personal section of a profile.
type BasicDetailsUpdateRequest struct {
	FullName         string         `json:"full_name" validate:"omitempty,max=255"`
	DateOfBirth      string         `json:"date_of_birth" validate:"omitempty,max=32"`
	Gender           string         `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	CurrentCollege   string         `json:"current_college" validate:"omitempty,max=255"`
	PermanentAddress models.Address `json:"permanent_address"`
	CurrentAddress   models.Address `json:"current_address"`
}

// EducationUpdateRequest replaces the education section of a profile.
type EducationUpdateRequest struct {
	Current  models.CurrentEducation `json:"current"`
	ClassX   models.SchoolRecord     `json:"class_x"`
	ClassXII models.SchoolRecord     `json:"class_xii"`
}

// SkillSectionPayload is one named group of skills in an update request.
type SkillSectionPayload struct {
	Name  string   `json:"name" validate:"omitempty,max=128"`
	Items []string `json:"items" validate:"dive,max=128"`
}

// SkillsUpdateRequest replaces all skill sections on a profile.
type SkillsUpdateRequest struct {
	Sections []SkillSectionPayload `json:"sections" validate:"required,dive"`
}

// ProfileResponse is the serialized representation of a student profile.
type ProfileResponse struct {
	ID           uint                     `json:"id"`
	UserID       uint                     `json:"user_id"`
	BasicDetails models.BasicDetails      `json:"basic_details"`
	Education    models.Education         `json:"education"`
	Skills       models.SkillSet          `json:"skills"`
	PhotoURL     string                   `json:"photo_url,omitempty"`
	Completion   models.ProfileCompletion `json:"completion"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// NewProfileResponse converts a profile model into a DTO.
func NewProfileResponse(profile models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:           profile.ID,
		UserID:       profile.UserID,
		BasicDetails: profile.BasicDetails.Data(),
		Education:    profile.Education.Data(),
		Skills:       profile.Skills.Data(),
		PhotoURL:     profile.PhotoURL,
		Completion:   profile.Completion.Data(),
		CreatedAt:    profile.CreatedAt,
		UpdatedAt:    profile.UpdatedAt,
	}
}
