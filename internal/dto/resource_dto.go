package dto

import (
	"time"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// ResourceCreateRequest publishes study material to a department.
type ResourceCreateRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"omitempty,url,max=512"`
	Type        string `json:"type" validate:"omitempty,max=64"`
	Department  string `json:"department" validate:"omitempty,max=128"`
}

// ResourceResponse is the serialized representation of a resource.
type ResourceResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
	Type        string    `json:"type"`
	Department  string    `json:"department,omitempty"`
	UploadedBy  uint      `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewResourceResponse converts a resource model into a DTO.
func NewResourceResponse(resource models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          resource.ID,
		Title:       resource.Title,
		Description: resource.Description,
		URL:         resource.URL,
		Type:        resource.Type,
		Department:  resource.Department,
		UploadedBy:  resource.UploadedByID,
		CreatedAt:   resource.CreatedAt,
	}
}

// NewResourceResponseSlice converts a slice of resources into DTOs.
func NewResourceResponseSlice(resources []models.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for _, resource := range resources {
		out = append(out, NewResourceResponse(resource))
	}
	return out
}
