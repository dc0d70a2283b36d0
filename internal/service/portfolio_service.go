package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/noah-isme/placement-go-api/internal/dto"
	"github.com/noah-isme/placement-go-api/internal/models"
	"github.com/noah-isme/placement-go-api/internal/repository"
)

// PortfolioService manages the resume building blocks a student owns. Every
// mutation is restricted to the owning student; lookups that miss or belong
// to someone else both surface as not found.
type PortfolioService interface {
	CreateProject(ctx context.Context, actor Actor, req dto.ProjectRequest) (models.Project, error)
	ListProjects(ctx context.Context, actor Actor) ([]models.Project, error)
	UpdateProject(ctx context.Context, actor Actor, id uint, req dto.ProjectRequest) (models.Project, error)
	DeleteProject(ctx context.Context, actor Actor, id uint) error

	CreateExperience(ctx context.Context, actor Actor, req dto.ExperienceRequest) (models.Experience, error)
	ListExperiences(ctx context.Context, actor Actor) ([]models.Experience, error)
	UpdateExperience(ctx context.Context, actor Actor, id uint, req dto.ExperienceRequest) (models.Experience, error)
	DeleteExperience(ctx context.Context, actor Actor, id uint) error

	CreateAccomplishment(ctx context.Context, actor Actor, req dto.AccomplishmentRequest) (models.Accomplishment, error)
	ListAccomplishments(ctx context.Context, actor Actor) ([]models.Accomplishment, error)
	UpdateAccomplishment(ctx context.Context, actor Actor, id uint, req dto.AccomplishmentRequest) (models.Accomplishment, error)
	DeleteAccomplishment(ctx context.Context, actor Actor, id uint) error

	CreateCertificate(ctx context.Context, actor Actor, req dto.CertificateRequest) (models.Certificate, error)
	ListCertificates(ctx context.Context, actor Actor) ([]models.Certificate, error)
	UpdateCertificate(ctx context.Context, actor Actor, id uint, req dto.CertificateRequest) (models.Certificate, error)
	DeleteCertificate(ctx context.Context, actor Actor, id uint) error
}

type portfolioService struct {
	portfolio repository.PortfolioRepository
	logger    zerolog.Logger
}

// NewPortfolioService constructs the portfolio service.
func NewPortfolioService(portfolio repository.PortfolioRepository, logger zerolog.Logger) PortfolioService {
	return &portfolioService{
		portfolio: portfolio,
		logger:    logger.With().Str("component", "portfolio_service").Logger(),
	}
}

func (s *portfolioService) CreateProject(ctx context.Context, actor Actor, req dto.ProjectRequest) (models.Project, error) {
	if !actor.IsStudent() {
		return models.Project{}, ForbiddenError("only students maintain portfolios")
	}

	project := models.Project{UserID: actor.ID}
	req.ApplyProject(&project)

	if err := s.portfolio.CreateProject(ctx, &project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *portfolioService) ListProjects(ctx context.Context, actor Actor) ([]models.Project, error) {
	return s.portfolio.ListProjects(ctx, actor.ID)
}

func (s *portfolioService) UpdateProject(ctx context.Context, actor Actor, id uint, req dto.ProjectRequest) (models.Project, error) {
	project, err := s.portfolio.FindProject(ctx, id)
	if err != nil {
		return models.Project{}, notFoundOr(err, "project %d not found", id)
	}
	if project.UserID != actor.ID {
		return models.Project{}, NotFoundError("project %d not found", id)
	}

	req.ApplyProject(&project)
	if err := s.portfolio.SaveProject(ctx, &project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (s *portfolioService) DeleteProject(ctx context.Context, actor Actor, id uint) error {
	project, err := s.portfolio.FindProject(ctx, id)
	if err != nil {
		return notFoundOr(err, "project %d not found", id)
	}
	if project.UserID != actor.ID {
		return NotFoundError("project %d not found", id)
	}
	return s.portfolio.DeleteProject(ctx, id)
}

func (s *portfolioService) CreateExperience(ctx context.Context, actor Actor, req dto.ExperienceRequest) (models.Experience, error) {
	if !actor.IsStudent() {
		return models.Experience{}, ForbiddenError("only students maintain portfolios")
	}
	if err := validateExperienceDates(req); err != nil {
		return models.Experience{}, err
	}

	experience := models.Experience{UserID: actor.ID}
	req.ApplyExperience(&experience)

	if err := s.portfolio.CreateExperience(ctx, &experience); err != nil {
		return models.Experience{}, err
	}
	return experience, nil
}

func (s *portfolioService) ListExperiences(ctx context.Context, actor Actor) ([]models.Experience, error) {
	return s.portfolio.ListExperiences(ctx, actor.ID)
}

func (s *portfolioService) UpdateExperience(ctx context.Context, actor Actor, id uint, req dto.ExperienceRequest) (models.Experience, error) {
	if err := validateExperienceDates(req); err != nil {
		return models.Experience{}, err
	}

	experience, err := s.portfolio.FindExperience(ctx, id)
	if err != nil {
		return models.Experience{}, notFoundOr(err, "experience %d not found", id)
	}
	if experience.UserID != actor.ID {
		return models.Experience{}, NotFoundError("experience %d not found", id)
	}

	req.ApplyExperience(&experience)
	if err := s.portfolio.SaveExperience(ctx, &experience); err != nil {
		return models.Experience{}, err
	}
	return experience, nil
}

func (s *portfolioService) DeleteExperience(ctx context.Context, actor Actor, id uint) error {
	experience, err := s.portfolio.FindExperience(ctx, id)
	if err != nil {
		return notFoundOr(err, "experience %d not found", id)
	}
	if experience.UserID != actor.ID {
		return NotFoundError("experience %d not found", id)
	}
	return s.portfolio.DeleteExperience(ctx, id)
}

func validateExperienceDates(req dto.ExperienceRequest) error {
	if req.CurrentlyWorking && req.EndDate != nil {
		return ValidationError("a current position cannot have an end date")
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return ValidationError("end date is before start date")
	}
	return nil
}

func (s *portfolioService) CreateAccomplishment(ctx context.Context, actor Actor, req dto.AccomplishmentRequest) (models.Accomplishment, error) {
	if !actor.IsStudent() {
		return models.Accomplishment{}, ForbiddenError("only students maintain portfolios")
	}

	accomplishment := models.Accomplishment{UserID: actor.ID}
	req.ApplyAccomplishment(&accomplishment)

	if err := s.portfolio.CreateAccomplishment(ctx, &accomplishment); err != nil {
		return models.Accomplishment{}, err
	}
	return accomplishment, nil
}

func (s *portfolioService) ListAccomplishments(ctx context.Context, actor Actor) ([]models.Accomplishment, error) {
	return s.portfolio.ListAccomplishments(ctx, actor.ID)
}

func (s *portfolioService) UpdateAccomplishment(ctx context.Context, actor Actor, id uint, req dto.AccomplishmentRequest) (models.Accomplishment, error) {
	accomplishment, err := s.portfolio.FindAccomplishment(ctx, id)
	if err != nil {
		return models.Accomplishment{}, notFoundOr(err, "accomplishment %d not found", id)
	}
	if accomplishment.UserID != actor.ID {
		return models.Accomplishment{}, NotFoundError("accomplishment %d not found", id)
	}

	req.ApplyAccomplishment(&accomplishment)
	if err := s.portfolio.SaveAccomplishment(ctx, &accomplishment); err != nil {
		return models.Accomplishment{}, err
	}
	return accomplishment, nil
}

func (s *portfolioService) DeleteAccomplishment(ctx context.Context, actor Actor, id uint) error {
	accomplishment, err := s.portfolio.FindAccomplishment(ctx, id)
	if err != nil {
		return notFoundOr(err, "accomplishment %d not found", id)
	}
	if accomplishment.UserID != actor.ID {
		return NotFoundError("accomplishment %d not found", id)
	}
	return s.portfolio.DeleteAccomplishment(ctx, id)
}

func (s *portfolioService) CreateCertificate(ctx context.Context, actor Actor, req dto.CertificateRequest) (models.Certificate, error) {
	if !actor.IsStudent() {
		return models.Certificate{}, ForbiddenError("only students maintain portfolios")
	}

	certificate := models.Certificate{UserID: actor.ID}
	req.ApplyCertificate(&certificate)

	if err := s.portfolio.CreateCertificate(ctx, &certificate); err != nil {
		return models.Certificate{}, err
	}
	return certificate, nil
}

func (s *portfolioService) ListCertificates(ctx context.Context, actor Actor) ([]models.Certificate, error) {
	return s.portfolio.ListCertificates(ctx, actor.ID)
}

func (s *portfolioService) UpdateCertificate(ctx context.Context, actor Actor, id uint, req dto.CertificateRequest) (models.Certificate, error) {
	certificate, err := s.portfolio.FindCertificate(ctx, id)
	if err != nil {
		return models.Certificate{}, notFoundOr(err, "certificate %d not found", id)
	}
	if certificate.UserID != actor.ID {
		return models.Certificate{}, NotFoundError("certificate %d not found", id)
	}

	req.ApplyCertificate(&certificate)
	if err := s.portfolio.SaveCertificate(ctx, &certificate); err != nil {
		return models.Certificate{}, err
	}
	return certificate, nil
}

func (s *portfolioService) DeleteCertificate(ctx context.Context, actor Actor, id uint) error {
	certificate, err := s.portfolio.FindCertificate(ctx, id)
	if err != nil {
		return notFoundOr(err, "certificate %d not found", id)
	}
	if certificate.UserID != actor.ID {
		return NotFoundError("certificate %d not found", id)
	}
	return s.portfolio.DeleteCertificate(ctx, id)
}
