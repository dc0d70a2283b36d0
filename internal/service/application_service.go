package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/observability"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

// ApplicationService handles drive applications: students submit, staff
// review and move them through statuses.
type ApplicationService interface {
	Apply(ctx context.Context, actor Actor, req dto.ApplicationCreateRequest) (dto.ApplicationResponse, error)
	ListMine(ctx context.Context, actor Actor) ([]dto.ApplicationResponse, error)
	ListForReview(ctx context.Context, actor Actor, driveID uint) ([]dto.ApplicationResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, id uint, req dto.ApplicationStatusRequest) (dto.ApplicationResponse, error)
}

type applicationService struct {
	applications  repository.ApplicationRepository
	drives        repository.DriveRepository
	notifications NotificationService
	logger        zerolog.Logger
}

// NewApplicationService constructs the application service.
func NewApplicationService(
	applications repository.ApplicationRepository,
	drives repository.DriveRepository,
	notifications NotificationService,
	logger zerolog.Logger,
) ApplicationService {
	return &applicationService{
		applications:  applications,
		drives:        drives,
		notifications: notifications,
		logger:        logger.With().Str("component", "application_service").Logger(),
	}
}

// Apply submits a student's application. A student can apply to a drive at
// most once; the unique (student, drive) index backs the pre-check against
// concurrent double-submits.
func (s *applicationService) Apply(ctx context.Context, actor Actor, req dto.ApplicationCreateRequest) (dto.ApplicationResponse, error) {
	if !actor.IsStudent() {
		return dto.ApplicationResponse{}, ForbiddenError("only students can apply to drives")
	}

	drive, err := s.drives.FindByID(ctx, req.DriveID)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.ApplicationResponse{}, NotFoundError("drive %d not found", req.DriveID)
		}
		return dto.ApplicationResponse{}, err
	}
	if drive.Status != models.DriveStatusActive {
		return dto.ApplicationResponse{}, ValidationError("drive %d is not accepting applications", drive.ID)
	}

	if _, err := s.applications.FindByStudentAndDrive(ctx, actor.ID, drive.ID); err == nil {
		return dto.ApplicationResponse{}, ValidationError("you have already applied to this drive")
	} else if !isRecordNotFound(err) {
		return dto.ApplicationResponse{}, err
	}

	application := models.Application{
		StudentID: actor.ID,
		DriveID:   drive.ID,
		Status:    models.ApplicationStatusApplied,
		Documents: datatypes.NewJSONType(req.Documents),
	}

	if err := s.applications.Create(ctx, &application); err != nil {
		return dto.ApplicationResponse{}, err
	}

	observability.ApplicationsSubmittedTotal().Inc()
	s.logger.Info().
		Uint("student_id", actor.ID).
		Uint("drive_id", drive.ID).
		Msg("application submitted")

	if err := s.notifyStatus(ctx, application, drive,
		"Application Submitted",
		fmt.Sprintf("Your application for %s at %s has been received.", drive.JobRole, drive.CompanyName)); err != nil {
		return dto.ApplicationResponse{}, err
	}
	if err := s.notifyCoordinators(ctx, application, drive); err != nil {
		return dto.ApplicationResponse{}, err
	}

	return dto.NewApplicationResponse(application), nil
}

func (s *applicationService) notifyCoordinators(ctx context.Context, application models.Application, drive models.Drive) error {
	link := fmt.Sprintf("/drives/%d/applications", drive.ID)
	message := fmt.Sprintf("A new application arrived for %s at %s.", drive.JobRole, drive.CompanyName)
	for _, assignment := range drive.Assignments {
		if _, err := s.notifications.Notify(ctx, assignment.CoordinatorID, "New Application", message, models.NotificationTypeApplication, link); err != nil {
			return err
		}
	}
	return nil
}

func (s *applicationService) ListMine(ctx context.Context, actor Actor) ([]dto.ApplicationResponse, error) {
	applications, err := s.applications.ListByStudent(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewApplicationResponseSlice(applications), nil
}

// ListForReview returns applications visible to staff. driveID narrows the
// listing to one drive; zero means every drive the actor can review.
func (s *applicationService) ListForReview(ctx context.Context, actor Actor, driveID uint) ([]dto.ApplicationResponse, error) {
	if actor.IsStudent() {
		return nil, ForbiddenError("students cannot review applications")
	}

	if driveID != 0 {
		if err := s.checkReviewAccess(ctx, actor, driveID); err != nil {
			return nil, err
		}
		applications, err := s.applications.ListByDriveIDs(ctx, []uint{driveID})
		if err != nil {
			return nil, err
		}
		return dto.NewApplicationResponseSlice(applications), nil
	}

	if actor.IsAdmin() {
		applications, err := s.applications.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return dto.NewApplicationResponseSlice(applications), nil
	}

	driveIDs, err := s.drives.ListIDsAssignedTo(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	applications, err := s.applications.ListByDriveIDs(ctx, driveIDs)
	if err != nil {
		return nil, err
	}
	return dto.NewApplicationResponseSlice(applications), nil
}

func (s *applicationService) checkReviewAccess(ctx context.Context, actor Actor, driveID uint) error {
	if actor.IsAdmin() {
		return nil
	}

	drive, err := s.drives.FindByID(ctx, driveID)
	if err != nil {
		if isRecordNotFound(err) {
			return NotFoundError("drive %d not found", driveID)
		}
		return err
	}

	for _, assignment := range drive.Assignments {
		if assignment.CoordinatorID == actor.ID {
			return nil
		}
	}
	return ForbiddenError("drive %d is not assigned to you", driveID)
}

// UpdateStatus moves an application to any valid status. Transitions are
// deliberately unconstrained so staff can correct mistakes, e.g. re-shortlist
// a rejected candidate.
func (s *applicationService) UpdateStatus(ctx context.Context, actor Actor, id uint, req dto.ApplicationStatusRequest) (dto.ApplicationResponse, error) {
	if actor.IsStudent() {
		return dto.ApplicationResponse{}, ForbiddenError("students cannot change application status")
	}

	status := models.ApplicationStatus(req.Status)
	if !status.Valid() {
		return dto.ApplicationResponse{}, ValidationError("unknown application status %q", req.Status)
	}

	application, err := s.applications.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.ApplicationResponse{}, NotFoundError("application %d not found", id)
		}
		return dto.ApplicationResponse{}, err
	}

	if err := s.checkReviewAccess(ctx, actor, application.DriveID); err != nil {
		return dto.ApplicationResponse{}, err
	}

	application.Status = status
	if err := s.applications.Save(ctx, &application); err != nil {
		return dto.ApplicationResponse{}, err
	}

	// The student hears about every status write, changed or not.
	drive, err := s.drives.FindByID(ctx, application.DriveID)
	if err != nil {
		return dto.ApplicationResponse{}, err
	}
	if err := s.notifyStatus(ctx, application, drive,
		"Application status updated",
		fmt.Sprintf("Your application for %s at %s is now %s.", drive.JobRole, drive.CompanyName, status)); err != nil {
		return dto.ApplicationResponse{}, err
	}

	return dto.NewApplicationResponse(application), nil
}

func (s *applicationService) notifyStatus(ctx context.Context, application models.Application, drive models.Drive, title, message string) error {
	link := fmt.Sprintf("/applications/%d", application.ID)
	_, err := s.notifications.Notify(ctx, application.StudentID, title, message, models.NotificationTypeApplication, link)
	return err
}
