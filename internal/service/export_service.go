package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
	"github.com/noah-isme/placement-go-api/pkg/export"
)

const (
	rosterCacheKey = "exports:roster:csv"
	rosterCacheTTL = 5 * time.Minute
)

// ExportService produces downloadable datasets for staff.
type ExportService interface {
	StudentRosterCSV(ctx context.Context, actor Actor) ([]byte, error)
	DriveApplicationsCSV(ctx context.Context, actor Actor, driveID uint) ([]byte, error)
	RosterCache
}

type exportService struct {
	users        repository.UserRepository
	profiles     repository.ProfileRepository
	drives       repository.DriveRepository
	applications repository.ApplicationRepository
	redis        *redis.Client
	exporter     *export.CSVExporter
	logger       zerolog.Logger
}

// NewExportService constructs the export service. The redis client is
// optional; without it every export is rebuilt on demand.
func NewExportService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	drives repository.DriveRepository,
	applications repository.ApplicationRepository,
	redisClient *redis.Client,
	logger zerolog.Logger,
) ExportService {
	return &exportService{
		users:        users,
		profiles:     profiles,
		drives:       drives,
		applications: applications,
		redis:        redisClient,
		exporter:     export.NewCSVExporter(),
		logger:       logger.With().Str("component", "export_service").Logger(),
	}
}

// StudentRosterCSV renders every student with their headline profile fields.
// The rendered bytes are cached in redis; profile writes invalidate the key.
func (s *exportService) StudentRosterCSV(ctx context.Context, actor Actor) ([]byte, error) {
	if actor.IsStudent() {
		return nil, ForbiddenError("students cannot export the roster")
	}

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, rosterCacheKey).Bytes(); err == nil {
			return cached, nil
		}
	}

	students, err := s.users.ListByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(students))
	for _, student := range students {
		ids = append(ids, student.ID)
	}
	profiles, err := s.profiles.ListByUserIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byUser := make(map[uint]models.Profile, len(profiles))
	for _, profile := range profiles {
		byUser[profile.UserID] = profile
	}

	headers := []string{"ID", "Name", "Email", "Department", "Program", "Branch", "Passout Batch", "CGPA", "Profile %"}
	rows := make([]map[string]string, 0, len(students))
	for _, student := range students {
		row := map[string]string{
			"ID":         fmt.Sprint(student.ID),
			"Name":       student.Name,
			"Email":      student.Email,
			"Department": student.Department,
		}
		if profile, ok := byUser[student.ID]; ok {
			current := profile.Education.Data().Current
			row["Program"] = current.Program
			row["Branch"] = current.Branch
			row["Passout Batch"] = current.PassoutBatch
			if current.CGPA != nil {
				row["CGPA"] = fmt.Sprintf("%.2f", *current.CGPA)
			}
			row["Profile %"] = fmt.Sprint(profile.Completion.Data().Overall)
		}
		rows = append(rows, row)
	}

	content, err := s.exporter.Render(export.Dataset{Headers: headers, Rows: rows})
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, rosterCacheKey, content, rosterCacheTTL).Err(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache roster export")
		}
	}

	return content, nil
}

// DriveApplicationsCSV renders every application on one drive.
func (s *exportService) DriveApplicationsCSV(ctx context.Context, actor Actor, driveID uint) ([]byte, error) {
	if actor.IsStudent() {
		return nil, ForbiddenError("students cannot export applications")
	}

	drive, err := s.drives.FindByID(ctx, driveID)
	if err != nil {
		return nil, notFoundOr(err, "drive %d not found", driveID)
	}

	if !actor.IsAdmin() && !assignedTo(drive, actor) {
		return nil, ForbiddenError("drive %d is not assigned to you", driveID)
	}

	applications, err := s.applications.ListByDriveIDs(ctx, []uint{driveID})
	if err != nil {
		return nil, err
	}

	studentIDs := make([]uint, 0, len(applications))
	for _, application := range applications {
		studentIDs = append(studentIDs, application.StudentID)
	}
	students, err := s.users.FindByIDs(ctx, studentIDs, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.User, len(students))
	for _, student := range students {
		byID[student.ID] = student
	}

	headers := []string{"Application ID", "Student", "Email", "Status", "Applied At"}
	rows := make([]map[string]string, 0, len(applications))
	for _, application := range applications {
		student := byID[application.StudentID]
		rows = append(rows, map[string]string{
			"Application ID": fmt.Sprint(application.ID),
			"Student":        student.Name,
			"Email":          student.Email,
			"Status":         string(application.Status),
			"Applied At":     application.CreatedAt.Format(time.RFC3339),
		})
	}

	s.logger.Info().
		Uint("drive_id", driveID).
		Str("company", strings.TrimSpace(drive.CompanyName)).
		Int("applications", len(rows)).
		Msg("drive applications exported")

	return s.exporter.Render(export.Dataset{Headers: headers, Rows: rows})
}

// Invalidate drops the cached roster export after a profile write.
func (s *exportService) Invalidate(ctx context.Context) {
	if s.redis == nil {
		return
	}
	if err := s.redis.Del(ctx, rosterCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate roster export cache")
	}
}

func assignedTo(drive models.Drive, actor Actor) bool {
	for _, assignment := range drive.Assignments {
		if assignment.CoordinatorID == actor.ID {
			return true
		}
	}
	return false
}
