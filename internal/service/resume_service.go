package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
	"github.com/noah-isme/placement-go-api/pkg/export"
)

// ResumeService assembles a student's profile and portfolio into a PDF.
type ResumeService interface {
	Generate(ctx context.Context, actor Actor) (content []byte, filename string, err error)
}

type resumeService struct {
	users     repository.UserRepository
	profiles  repository.ProfileRepository
	portfolio repository.PortfolioRepository
	renderer  *export.ResumePDFExporter
	logger    zerolog.Logger
}

// NewResumeService constructs the resume service.
func NewResumeService(
	users repository.UserRepository,
	profiles repository.ProfileRepository,
	portfolio repository.PortfolioRepository,
	logger zerolog.Logger,
) ResumeService {
	return &resumeService{
		users:     users,
		profiles:  profiles,
		portfolio: portfolio,
		renderer:  export.NewResumePDFExporter(),
		logger:    logger.With().Str("component", "resume_service").Logger(),
	}
}

// Generate renders the caller's resume. Portfolio sections that fail to load
// are skipped rather than failing the whole document.
func (s *resumeService) Generate(ctx context.Context, actor Actor) ([]byte, string, error) {
	if !actor.IsStudent() {
		return nil, "", ForbiddenError("only students can generate resumes")
	}

	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, "", notFoundOr(err, "user %d not found", actor.ID)
	}

	profile, err := s.profiles.FindByUserID(ctx, actor.ID)
	if err != nil && !isRecordNotFound(err) {
		return nil, "", err
	}

	resume := export.Resume{
		Name:       user.Name,
		Email:      user.Email,
		Department: user.Department,
	}

	if name := profile.BasicDetails.Data().FullName; name != "" {
		resume.Name = name
	}

	resume.Education = buildEducation(profile.Education.Data())
	resume.Skills = profile.Skills.Data().Flatten()

	if projects, err := s.portfolio.ListProjects(ctx, actor.ID); err == nil {
		for _, project := range projects {
			resume.Projects = append(resume.Projects, export.ResumeProject{
				Title:       project.Title,
				TechStack:   project.TechStack,
				Description: project.Description,
				Link:        project.GithubLink,
			})
		}
	} else {
		s.logger.Warn().Err(err).Uint("user_id", actor.ID).Msg("skipping projects section")
	}

	if experiences, err := s.portfolio.ListExperiences(ctx, actor.ID); err == nil {
		for _, experience := range experiences {
			resume.Experiences = append(resume.Experiences, export.ResumeExperience{
				Title:       experience.JobTitle,
				Company:     experience.CompanyName,
				Location:    experience.JobLocation,
				Start:       experience.StartDate,
				End:         experience.EndDate,
				Current:     experience.CurrentlyWorking,
				Description: experience.Description,
			})
		}
	} else {
		s.logger.Warn().Err(err).Uint("user_id", actor.ID).Msg("skipping experience section")
	}

	if accomplishments, err := s.portfolio.ListAccomplishments(ctx, actor.ID); err == nil {
		for _, accomplishment := range accomplishments {
			detail := accomplishment.Description
			if accomplishment.Issuer != "" {
				if detail != "" {
					detail = accomplishment.Issuer + " - " + detail
				} else {
					detail = accomplishment.Issuer
				}
			}
			resume.Accomplishments = append(resume.Accomplishments, export.ResumeEntry{
				Title:  accomplishment.Title,
				Detail: detail,
			})
		}
	} else {
		s.logger.Warn().Err(err).Uint("user_id", actor.ID).Msg("skipping accomplishments section")
	}

	if certificates, err := s.portfolio.ListCertificates(ctx, actor.ID); err == nil {
		for _, certificate := range certificates {
			resume.Certificates = append(resume.Certificates, export.ResumeEntry{
				Title:  certificate.Name,
				Detail: certificate.Organization,
			})
		}
	} else {
		s.logger.Warn().Err(err).Uint("user_id", actor.ID).Msg("skipping certificates section")
	}

	content, err := s.renderer.Render(resume)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("resume-%s.pdf", slugify(resume.Name))
	return content, filename, nil
}

func buildEducation(education models.Education) []export.ResumeEducation {
	var rows []export.ResumeEducation

	current := education.Current
	if current.InstitutionName != "" || current.Program != "" {
		row := export.ResumeEducation{
			Institution: current.InstitutionName,
			Degree:      strings.TrimSpace(fmt.Sprintf("%s %s", current.Program, current.Branch)),
			Detail:      current.PassoutBatch,
		}
		if current.CGPA != nil {
			row.Score = fmt.Sprintf("CGPA %.2f", *current.CGPA)
		}
		rows = append(rows, row)
	}

	school := []struct {
		label  string
		record models.SchoolRecord
	}{
		{"Class XII", education.ClassXII},
		{"Class X", education.ClassX},
	}
	for _, entry := range school {
		label, record := entry.label, entry.record
		if record.Institution == "" {
			continue
		}
		row := export.ResumeEducation{
			Institution: record.Institution,
			Degree:      label,
			Detail:      record.Board,
		}
		if record.Percentage != nil {
			row.Score = fmt.Sprintf("%.1f%%", *record.Percentage)
		}
		rows = append(rows, row)
	}

	return rows
}

func slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	if slug == "" {
		slug = "student"
	}
	return slug
}
