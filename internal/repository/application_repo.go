package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// ApplicationRepository handles persistence for drive applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	FindByID(ctx context.Context, id uint) (models.Application, error)
	FindByStudentAndDrive(ctx context.Context, studentID, driveID uint) (models.Application, error)
	ListByStudent(ctx context.Context, studentID uint) ([]models.Application, error)
	ListByDriveIDs(ctx context.Context, driveIDs []uint) ([]models.Application, error)
	ListAll(ctx context.Context) ([]models.Application, error)
	Save(ctx context.Context, application *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository constructs a repository backed by GORM.
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *applicationRepository) FindByID(ctx context.Context, id uint) (models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).First(&application, id).Error; err != nil {
		return models.Application{}, err
	}
	return application, nil
}

func (r *applicationRepository) FindByStudentAndDrive(ctx context.Context, studentID, driveID uint) (models.Application, error) {
	var application models.Application
	if err := r.db.WithContext(ctx).
		Where("student_id = ? AND drive_id = ?", studentID, driveID).
		First(&application).Error; err != nil {
		return models.Application{}, err
	}
	return application, nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uint) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListByDriveIDs(ctx context.Context, driveIDs []uint) ([]models.Application, error) {
	if len(driveIDs) == 0 {
		return nil, nil
	}

	var applications []models.Application
	if err := r.db.WithContext(ctx).
		Where("drive_id IN ?", driveIDs).
		Order("created_at DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) ListAll(ctx context.Context) ([]models.Application, error) {
	var applications []models.Application
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *applicationRepository) Save(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}
