package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// ResourceRepository handles persistence for departmental resources.
type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	FindByID(ctx context.Context, id uint) (models.Resource, error)
	ListForStudent(ctx context.Context, department string) ([]models.Resource, error)
	ListByDepartment(ctx context.Context, department string) ([]models.Resource, error)
	ListAll(ctx context.Context) ([]models.Resource, error)
	Delete(ctx context.Context, id uint) error
}

type resourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository constructs a repository backed by GORM.
func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	return r.db.WithContext(ctx).Create(resource).Error
}

func (r *resourceRepository) FindByID(ctx context.Context, id uint) (models.Resource, error) {
	var resource models.Resource
	if err := r.db.WithContext(ctx).First(&resource, id).Error; err != nil {
		return models.Resource{}, err
	}
	return resource, nil
}

// ListForStudent returns the department's resources along with material not
// tied to any department.
func (r *resourceRepository) ListForStudent(ctx context.Context, department string) ([]models.Resource, error) {
	var resources []models.Resource
	if err := r.db.WithContext(ctx).
		Where("department = ? OR department = '' OR type = ?", department, "general").
		Order("created_at DESC").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) ListByDepartment(ctx context.Context, department string) ([]models.Resource, error) {
	var resources []models.Resource
	if err := r.db.WithContext(ctx).
		Where("department = ?", department).
		Order("created_at DESC").
		Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) ListAll(ctx context.Context) ([]models.Resource, error) {
	var resources []models.Resource
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Resource{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
