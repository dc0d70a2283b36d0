package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// PortfolioRepository handles persistence for the resume building blocks a
// student owns: projects, experiences, accomplishments and certificates.
type PortfolioRepository interface {
	CreateProject(ctx context.Context, project *models.Project) error
	FindProject(ctx context.Context, id uint) (models.Project, error)
	ListProjects(ctx context.Context, userID uint) ([]models.Project, error)
	SaveProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id uint) error

	CreateExperience(ctx context.Context, experience *models.Experience) error
	FindExperience(ctx context.Context, id uint) (models.Experience, error)
	ListExperiences(ctx context.Context, userID uint) ([]models.Experience, error)
	SaveExperience(ctx context.Context, experience *models.Experience) error
	DeleteExperience(ctx context.Context, id uint) error

	CreateAccomplishment(ctx context.Context, accomplishment *models.Accomplishment) error
	FindAccomplishment(ctx context.Context, id uint) (models.Accomplishment, error)
	ListAccomplishments(ctx context.Context, userID uint) ([]models.Accomplishment, error)
	SaveAccomplishment(ctx context.Context, accomplishment *models.Accomplishment) error
	DeleteAccomplishment(ctx context.Context, id uint) error

	CreateCertificate(ctx context.Context, certificate *models.Certificate) error
	FindCertificate(ctx context.Context, id uint) (models.Certificate, error)
	ListCertificates(ctx context.Context, userID uint) ([]models.Certificate, error)
	SaveCertificate(ctx context.Context, certificate *models.Certificate) error
	DeleteCertificate(ctx context.Context, id uint) error
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository constructs a repository backed by GORM.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) CreateProject(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

func (r *portfolioRepository) FindProject(ctx context.Context, id uint) (models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (r *portfolioRepository) ListProjects(ctx context.Context, userID uint) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *portfolioRepository) SaveProject(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

func (r *portfolioRepository) DeleteProject(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Project{}, id)
}

func (r *portfolioRepository) CreateExperience(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Create(experience).Error
}

func (r *portfolioRepository) FindExperience(ctx context.Context, id uint) (models.Experience, error) {
	var experience models.Experience
	if err := r.db.WithContext(ctx).First(&experience, id).Error; err != nil {
		return models.Experience{}, err
	}
	return experience, nil
}

func (r *portfolioRepository) ListExperiences(ctx context.Context, userID uint) ([]models.Experience, error) {
	var experiences []models.Experience
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&experiences).Error; err != nil {
		return nil, err
	}
	return experiences, nil
}

func (r *portfolioRepository) SaveExperience(ctx context.Context, experience *models.Experience) error {
	return r.db.WithContext(ctx).Save(experience).Error
}

func (r *portfolioRepository) DeleteExperience(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Experience{}, id)
}

func (r *portfolioRepository) CreateAccomplishment(ctx context.Context, accomplishment *models.Accomplishment) error {
	return r.db.WithContext(ctx).Create(accomplishment).Error
}

func (r *portfolioRepository) FindAccomplishment(ctx context.Context, id uint) (models.Accomplishment, error) {
	var accomplishment models.Accomplishment
	if err := r.db.WithContext(ctx).First(&accomplishment, id).Error; err != nil {
		return models.Accomplishment{}, err
	}
	return accomplishment, nil
}

func (r *portfolioRepository) ListAccomplishments(ctx context.Context, userID uint) ([]models.Accomplishment, error) {
	var accomplishments []models.Accomplishment
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&accomplishments).Error; err != nil {
		return nil, err
	}
	return accomplishments, nil
}

func (r *portfolioRepository) SaveAccomplishment(ctx context.Context, accomplishment *models.Accomplishment) error {
	return r.db.WithContext(ctx).Save(accomplishment).Error
}

func (r *portfolioRepository) DeleteAccomplishment(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Accomplishment{}, id)
}

func (r *portfolioRepository) CreateCertificate(ctx context.Context, certificate *models.Certificate) error {
	return r.db.WithContext(ctx).Create(certificate).Error
}

func (r *portfolioRepository) FindCertificate(ctx context.Context, id uint) (models.Certificate, error) {
	var certificate models.Certificate
	if err := r.db.WithContext(ctx).First(&certificate, id).Error; err != nil {
		return models.Certificate{}, err
	}
	return certificate, nil
}

func (r *portfolioRepository) ListCertificates(ctx context.Context, userID uint) ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&certificates).Error; err != nil {
		return nil, err
	}
	return certificates, nil
}

func (r *portfolioRepository) SaveCertificate(ctx context.Context, certificate *models.Certificate) error {
	return r.db.WithContext(ctx).Save(certificate).Error
}

func (r *portfolioRepository) DeleteCertificate(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Certificate{}, id)
}

func deleteByID(db *gorm.DB, model interface{}, id uint) error {
	result := db.Delete(model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
