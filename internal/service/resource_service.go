package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

// ResourceService handles departmental study material published by staff.
type ResourceService interface {
	Create(ctx context.Context, actor Actor, req dto.ResourceCreateRequest) (dto.ResourceResponse, error)
	List(ctx context.Context, actor Actor) ([]dto.ResourceResponse, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type resourceService struct {
	resources repository.ResourceRepository
	logger    zerolog.Logger
}

// NewResourceService constructs the resource service.
func NewResourceService(resources repository.ResourceRepository, logger zerolog.Logger) ResourceService {
	return &resourceService{
		resources: resources,
		logger:    logger.With().Str("component", "resource_service").Logger(),
	}
}

// Create publishes a resource. Coordinators always publish into their own
// department; only admins can target an arbitrary one.
func (s *resourceService) Create(ctx context.Context, actor Actor, req dto.ResourceCreateRequest) (dto.ResourceResponse, error) {
	if actor.IsStudent() {
		return dto.ResourceResponse{}, ForbiddenError("students cannot publish resources")
	}

	department := req.Department
	if actor.IsCoordinator() {
		department = actor.Department
	}

	resourceType := req.Type
	if resourceType == "" {
		resourceType = "general"
	}

	resource := models.Resource{
		Title:        req.Title,
		Description:  req.Description,
		URL:          req.URL,
		Type:         resourceType,
		Department:   department,
		UploadedByID: actor.ID,
	}

	if err := s.resources.Create(ctx, &resource); err != nil {
		return dto.ResourceResponse{}, err
	}

	s.logger.Info().
		Uint("resource_id", resource.ID).
		Str("department", resource.Department).
		Msg("resource published")

	return dto.NewResourceResponse(resource), nil
}

func (s *resourceService) List(ctx context.Context, actor Actor) ([]dto.ResourceResponse, error) {
	var (
		resources []models.Resource
		err       error
	)

	switch {
	case actor.IsAdmin():
		resources, err = s.resources.ListAll(ctx)
	case actor.IsCoordinator():
		resources, err = s.resources.ListByDepartment(ctx, actor.Department)
	default:
		resources, err = s.resources.ListForStudent(ctx, actor.Department)
	}
	if err != nil {
		return nil, err
	}

	return dto.NewResourceResponseSlice(resources), nil
}

// Delete removes a resource. Admins can delete anything; coordinators only
// what they uploaded themselves.
func (s *resourceService) Delete(ctx context.Context, actor Actor, id uint) error {
	if actor.IsStudent() {
		return ForbiddenError("students cannot delete resources")
	}

	resource, err := s.resources.FindByID(ctx, id)
	if err != nil {
		return notFoundOr(err, "resource %d not found", id)
	}

	if !actor.IsAdmin() && resource.UploadedByID != actor.ID {
		return ForbiddenError("resource %d was uploaded by someone else", id)
	}

	return s.resources.Delete(ctx, id)
}
