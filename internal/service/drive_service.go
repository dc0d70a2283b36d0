package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/observability"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

// DriveService manages placement drives: CRUD, coordinator assignment and
// sharing drives with students.
type DriveService interface {
	Create(ctx context.Context, actor Actor, req dto.DriveCreateRequest) (dto.DriveResponse, error)
	Get(ctx context.Context, actor Actor, id uint) (dto.DriveResponse, error)
	List(ctx context.Context, actor Actor) ([]dto.DriveResponse, error)
	Update(ctx context.Context, actor Actor, id uint, req dto.DriveUpdateRequest) (dto.DriveResponse, error)
	Delete(ctx context.Context, actor Actor, id uint) error
	Assign(ctx context.Context, actor Actor, driveID uint, req dto.DriveAssignRequest) (dto.DriveResponse, error)
	Share(ctx context.Context, actor Actor, driveID uint, req dto.DriveShareRequest) (dto.DriveShareResponse, error)
}

type driveService struct {
	drives        repository.DriveRepository
	users         repository.UserRepository
	profiles      repository.ProfileRepository
	notifications NotificationService
	mailer        Mailer
	logger        zerolog.Logger
	tracer        trace.Tracer
}

// NewDriveService constructs the drive service. The mailer may be nil when
// SMTP is not configured.
func NewDriveService(
	drives repository.DriveRepository,
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	notifications NotificationService,
	mailer Mailer,
	logger zerolog.Logger,
) DriveService {
	return &driveService{
		drives:        drives,
		users:         users,
		profiles:      profiles,
		notifications: notifications,
		mailer:        mailer,
		logger:        logger.With().Str("component", "drive_service").Logger(),
		tracer:        otel.Tracer("github.com/noah-isme/placement-go-api/internal/service/drive"),
	}
}

func (s *driveService) Create(ctx context.Context, actor Actor, req dto.DriveCreateRequest) (dto.DriveResponse, error) {
	if !actor.IsAdmin() {
		return dto.DriveResponse{}, ForbiddenError("only admins can create drives")
	}

	status := models.DriveStatus(req.Status)
	if status == "" {
		status = models.DriveStatusDraft
	}

	drive := models.Drive{
		CompanyName:         req.CompanyName,
		JobRole:             req.JobRole,
		JobDescription:      req.JobDescription,
		Location:            req.Location,
		Stipend:             req.Stipend,
		Salary:              req.Salary,
		ExperienceRequired:  req.ExperienceRequired,
		Qualification:       req.Qualification,
		EligibilityCriteria: req.EligibilityCriteria,
		Shift:               req.Shift,
		WorkMode:            models.WorkMode(req.WorkMode),
		ApplicationLink:     req.ApplicationLink,
		Department:          req.Department,
		Status:              status,
		ApplicationDeadline: req.ApplicationDeadline,
		CreatedByID:         actor.ID,
	}

	if err := s.drives.Create(ctx, &drive); err != nil {
		return dto.DriveResponse{}, err
	}

	s.logger.Info().Uint("drive_id", drive.ID).Str("company", drive.CompanyName).Msg("drive created")

	return dto.NewDriveResponse(drive), nil
}

func (s *driveService) Get(ctx context.Context, actor Actor, id uint) (dto.DriveResponse, error) {
	drive, err := s.drives.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.DriveResponse{}, NotFoundError("drive %d not found", id)
		}
		return dto.DriveResponse{}, err
	}

	if actor.IsStudent() && !s.visibleToStudent(drive, actor) {
		return dto.DriveResponse{}, NotFoundError("drive %d not found", id)
	}

	return dto.NewDriveResponse(drive), nil
}

// visibleToStudent reproduces the listing rules for a single drive: students
// only see active drives shared with them or assigned to their department.
func (s *driveService) visibleToStudent(drive models.Drive, actor Actor) bool {
	if drive.Status != models.DriveStatusActive {
		return false
	}
	for _, share := range drive.Shares {
		if share.StudentID == actor.ID {
			return true
		}
	}
	for _, assignment := range drive.Assignments {
		if assignment.Department != "" && assignment.Department == actor.Department {
			return true
		}
	}
	return false
}

func (s *driveService) List(ctx context.Context, actor Actor) ([]dto.DriveResponse, error) {
	var (
		drives []models.Drive
		err    error
	)

	switch {
	case actor.IsAdmin():
		drives, err = s.drives.ListAll(ctx)
	case actor.IsCoordinator():
		drives, err = s.drives.ListForCoordinator(ctx, actor.ID, actor.Department)
	default:
		drives, err = s.drives.ListForStudent(ctx, actor.ID, actor.Department)
	}
	if err != nil {
		return nil, err
	}

	return dto.NewDriveResponseSlice(drives), nil
}

func (s *driveService) Update(ctx context.Context, actor Actor, id uint, req dto.DriveUpdateRequest) (dto.DriveResponse, error) {
	if !actor.IsAdmin() {
		return dto.DriveResponse{}, ForbiddenError("only admins can update drives")
	}

	drive, err := s.drives.FindByID(ctx, id)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.DriveResponse{}, NotFoundError("drive %d not found", id)
		}
		return dto.DriveResponse{}, err
	}

	applyDriveUpdate(&drive, req)

	if err := s.drives.Update(ctx, &drive); err != nil {
		return dto.DriveResponse{}, err
	}

	return dto.NewDriveResponse(drive), nil
}

func applyDriveUpdate(drive *models.Drive, req dto.DriveUpdateRequest) {
	if req.CompanyName != nil {
		drive.CompanyName = *req.CompanyName
	}
	if req.JobRole != nil {
		drive.JobRole = *req.JobRole
	}
	if req.JobDescription != nil {
		drive.JobDescription = *req.JobDescription
	}
	if req.Location != nil {
		drive.Location = *req.Location
	}
	if req.Stipend != nil {
		drive.Stipend = *req.Stipend
	}
	if req.Salary != nil {
		drive.Salary = *req.Salary
	}
	if req.ExperienceRequired != nil {
		drive.ExperienceRequired = *req.ExperienceRequired
	}
	if req.Qualification != nil {
		drive.Qualification = *req.Qualification
	}
	if req.EligibilityCriteria != nil {
		drive.EligibilityCriteria = *req.EligibilityCriteria
	}
	if req.Shift != nil {
		drive.Shift = *req.Shift
	}
	if req.WorkMode != nil {
		drive.WorkMode = models.WorkMode(*req.WorkMode)
	}
	if req.ApplicationLink != nil {
		drive.ApplicationLink = *req.ApplicationLink
	}
	if req.Department != nil {
		drive.Department = *req.Department
	}
	if req.Status != nil {
		drive.Status = models.DriveStatus(*req.Status)
	}
	if req.ApplicationDeadline != nil {
		drive.ApplicationDeadline = req.ApplicationDeadline
	}
}

func (s *driveService) Delete(ctx context.Context, actor Actor, id uint) error {
	if !actor.IsAdmin() {
		return ForbiddenError("only admins can delete drives")
	}

	if err := s.drives.Delete(ctx, id); err != nil {
		if isRecordNotFound(err) {
			return NotFoundError("drive %d not found", id)
		}
		return err
	}

	s.logger.Info().Uint("drive_id", id).Msg("drive deleted")
	return nil
}

// Assign hands a drive to a coordinator. Repeating an assignment is a no-op:
// the store skips the duplicate row and no second notification goes out.
func (s *driveService) Assign(ctx context.Context, actor Actor, driveID uint, req dto.DriveAssignRequest) (dto.DriveResponse, error) {
	if !actor.IsAdmin() {
		return dto.DriveResponse{}, ForbiddenError("only admins can assign drives")
	}

	drive, err := s.drives.FindByID(ctx, driveID)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.DriveResponse{}, NotFoundError("drive %d not found", driveID)
		}
		return dto.DriveResponse{}, err
	}

	coordinator, err := s.users.FindByID(ctx, req.CoordinatorID)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.DriveResponse{}, NotFoundError("coordinator %d not found", req.CoordinatorID)
		}
		return dto.DriveResponse{}, err
	}
	if coordinator.Role != models.RoleCoordinator {
		return dto.DriveResponse{}, ValidationError("user %d is not a coordinator", req.CoordinatorID)
	}

	department := req.Department
	if department == "" {
		department = coordinator.Department
	}

	assignment := models.DriveAssignment{
		DriveID:       drive.ID,
		CoordinatorID: coordinator.ID,
		Department:    department,
		AssignedAt:    time.Now().UTC(),
	}

	added, err := s.drives.AddAssignment(ctx, &assignment)
	if err != nil {
		return dto.DriveResponse{}, err
	}

	if added {
		if err := s.notifyAssignment(ctx, drive, coordinator); err != nil {
			return dto.DriveResponse{}, err
		}
	}

	updated, err := s.drives.FindByID(ctx, drive.ID)
	if err != nil {
		return dto.DriveResponse{}, err
	}

	return dto.NewDriveResponse(updated), nil
}

// notifyAssignment records the in-app notification and then emails the
// coordinator. The notification write is part of the assignment; only the
// email is best-effort.
func (s *driveService) notifyAssignment(ctx context.Context, drive models.Drive, coordinator models.User) error {
	title := "New Drive Assigned"
	message := fmt.Sprintf("You are now coordinating the %s drive for %s.", drive.JobRole, drive.CompanyName)
	link := fmt.Sprintf("/drives/%d", drive.ID)

	if _, err := s.notifications.Notify(ctx, coordinator.ID, title, message, models.NotificationTypeDrive, link); err != nil {
		return err
	}

	if s.mailer == nil {
		return nil
	}
	subject := fmt.Sprintf("New drive assigned: %s", drive.CompanyName)
	body := fmt.Sprintf("Hello %s,\n\nThe %s drive for %s has been assigned to you. Please log in to review it.\n", coordinator.Name, drive.JobRole, drive.CompanyName)
	if err := s.mailer.Send(ctx, coordinator.Email, subject, body); err != nil {
		s.logger.Warn().Err(err).Str("email", coordinator.Email).Msg("failed to email coordinator about assignment")
	}
	return nil
}

// Share grants students visibility of a drive, either via an explicit ID list
// or by filtering every student against the supplied criteria. Students
// already on the drive are skipped; only the new ones are notified.
func (s *driveService) Share(ctx context.Context, actor Actor, driveID uint, req dto.DriveShareRequest) (dto.DriveShareResponse, error) {
	started := time.Now()

	spanCtx, span := s.tracer.Start(ctx, "drives.share", trace.WithAttributes(
		attribute.Int("drive.id", int(driveID)),
		attribute.Int("share.explicit_ids", len(req.StudentIDs)),
	))
	defer span.End()

	drive, err := s.drives.FindByID(spanCtx, driveID)
	if err != nil {
		if isRecordNotFound(err) {
			return dto.DriveShareResponse{}, NotFoundError("drive %d not found", driveID)
		}
		return dto.DriveShareResponse{}, err
	}

	if !s.canShare(drive, actor) {
		return dto.DriveShareResponse{}, ForbiddenError("drive %d is not assigned to you", driveID)
	}

	mode := "explicit"
	var candidates []Candidate
	switch {
	case len(req.StudentIDs) > 0:
		candidates, err = s.resolveExplicit(spanCtx, req.StudentIDs)
	case req.Criteria != nil:
		mode = "criteria"
		candidates, err = s.resolveByCriteria(spanCtx, *req.Criteria)
	default:
		// Neither a student list nor criteria: nothing to add.
		return dto.DriveShareResponse{Drive: dto.NewDriveResponse(drive), SharedCount: 0}, nil
	}
	if err != nil {
		return dto.DriveShareResponse{}, err
	}

	existing := make(map[uint]struct{}, len(drive.Shares))
	for _, share := range drive.Shares {
		existing[share.StudentID] = struct{}{}
	}

	now := time.Now().UTC()
	newShares := make([]models.DriveShare, 0, len(candidates))
	newStudents := make([]models.User, 0, len(candidates))
	for _, candidate := range candidates {
		if _, already := existing[candidate.User.ID]; already {
			continue
		}
		newShares = append(newShares, models.DriveShare{
			DriveID:   drive.ID,
			StudentID: candidate.User.ID,
			SharedAt:  now,
		})
		newStudents = append(newStudents, candidate.User)
	}

	added, err := s.drives.AddShares(spanCtx, newShares)
	if err != nil {
		return dto.DriveShareResponse{}, err
	}

	if mode == "criteria" {
		drive.ShareCriteria = datatypes.NewJSONType(*req.Criteria)
		if err := s.drives.Update(spanCtx, &drive); err != nil {
			return dto.DriveShareResponse{}, err
		}
	}

	for _, student := range newStudents {
		if err := s.notifyShare(spanCtx, drive, student); err != nil {
			return dto.DriveShareResponse{}, err
		}
	}

	updated, err := s.drives.FindByID(spanCtx, drive.ID)
	if err != nil {
		return dto.DriveShareResponse{}, err
	}

	observability.DrivesSharedTotal().WithLabelValues(mode).Add(float64(added))
	observability.ShareLatency().Observe(time.Since(started).Seconds())
	span.SetAttributes(attribute.Int64("share.added", added))

	s.logger.Info().
		Uint("drive_id", drive.ID).
		Str("mode", mode).
		Int("candidates", len(candidates)).
		Int64("added", added).
		Msg("drive shared")

	return dto.DriveShareResponse{
		Drive:       dto.NewDriveResponse(updated),
		SharedCount: len(newStudents),
	}, nil
}

// canShare allows admins, the drive's department coordinators and explicitly
// assigned coordinators.
func (s *driveService) canShare(drive models.Drive, actor Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	if !actor.IsCoordinator() {
		return false
	}
	if drive.Department != "" && drive.Department == actor.Department {
		return true
	}
	for _, assignment := range drive.Assignments {
		if assignment.CoordinatorID == actor.ID {
			return true
		}
	}
	return false
}

func (s *driveService) resolveExplicit(ctx context.Context, studentIDs []uint) ([]Candidate, error) {
	students, err := s.users.FindByIDs(ctx, studentIDs, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, ValidationError("none of the given ids belong to students")
	}

	candidates := make([]Candidate, 0, len(students))
	for _, student := range students {
		candidates = append(candidates, Candidate{User: student})
	}
	return candidates, nil
}

// resolveByCriteria filters the whole student body, not one department:
// drives routinely cut across branches.
func (s *driveService) resolveByCriteria(ctx context.Context, criteria models.ShareCriteria) ([]Candidate, error) {
	students, err := s.users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(students))
	for _, student := range students {
		ids = append(ids, student.ID)
	}

	profiles, err := s.profiles.ListByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byUser := make(map[uint]*models.Profile, len(profiles))
	for i := range profiles {
		byUser[profiles[i].UserID] = &profiles[i]
	}

	candidates := make([]Candidate, 0, len(students))
	for _, student := range students {
		candidates = append(candidates, Candidate{User: student, Profile: byUser[student.ID]})
	}

	return FilterEligible(candidates, criteria), nil
}

func (s *driveService) notifyShare(ctx context.Context, drive models.Drive, student models.User) error {
	title := "New Drive Shared"
	message := fmt.Sprintf("%s is hiring for %s. Check the drive details and apply before the deadline.", drive.CompanyName, drive.JobRole)
	link := fmt.Sprintf("/drives/%d", drive.ID)

	_, err := s.notifications.Notify(ctx, student.ID, title, message, models.NotificationTypeDrive, link)
	return err
}
