package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/noah-isme/placement-go-api/internal/models"
)

// DriveRepository handles persistence for placement drives and their
// assignment/share sub-lists.
type DriveRepository interface {
	Create(ctx context.Context, drive *models.Drive) error
	FindByID(ctx context.Context, id uint) (models.Drive, error)
	ListAll(ctx context.Context) ([]models.Drive, error)
	ListForStudent(ctx context.Context, studentID uint, department string) ([]models.Drive, error)
	ListForCoordinator(ctx context.Context, coordinatorID uint, department string) ([]models.Drive, error)
	ListIDsAssignedTo(ctx context.Context, coordinatorID uint) ([]uint, error)
	Update(ctx context.Context, drive *models.Drive) error
	Delete(ctx context.Context, id uint) error
	AddAssignment(ctx context.Context, assignment *models.DriveAssignment) (bool, error)
	AddShares(ctx context.Context, shares []models.DriveShare) (int64, error)
}

type driveRepository struct {
	db *gorm.DB
}

// NewDriveRepository constructs a repository backed by GORM.
func NewDriveRepository(db *gorm.DB) DriveRepository {
	return &driveRepository{db: db}
}

func (r *driveRepository) Create(ctx context.Context, drive *models.Drive) error {
	return r.db.WithContext(ctx).Create(drive).Error
}

func (r *driveRepository) FindByID(ctx context.Context, id uint) (models.Drive, error) {
	var drive models.Drive
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Preload("Shares").
		First(&drive, id).Error; err != nil {
		return models.Drive{}, err
	}
	return drive, nil
}

func (r *driveRepository) ListAll(ctx context.Context) ([]models.Drive, error) {
	var drives []models.Drive
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Preload("Shares").
		Order("created_at DESC").
		Find(&drives).Error; err != nil {
		return nil, err
	}
	return drives, nil
}

func (r *driveRepository) ListForStudent(ctx context.Context, studentID uint, department string) ([]models.Drive, error) {
	sharedIDs := r.db.Model(&models.DriveShare{}).
		Select("drive_id").
		Where("student_id = ?", studentID)
	departmentIDs := r.db.Model(&models.DriveAssignment{}).
		Select("drive_id").
		Where("department = ?", department)

	var drives []models.Drive
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Where("status = ?", models.DriveStatusActive).
		Where("id IN (?) OR id IN (?)", sharedIDs, departmentIDs).
		Order("created_at DESC").
		Find(&drives).Error; err != nil {
		return nil, err
	}
	return drives, nil
}

func (r *driveRepository) ListForCoordinator(ctx context.Context, coordinatorID uint, department string) ([]models.Drive, error) {
	assignedIDs := r.db.Model(&models.DriveAssignment{}).
		Select("drive_id").
		Where("coordinator_id = ? OR department = ?", coordinatorID, department)

	var drives []models.Drive
	if err := r.db.WithContext(ctx).
		Preload("Assignments").
		Preload("Shares").
		Where("department = ? OR id IN (?)", department, assignedIDs).
		Order("created_at DESC").
		Find(&drives).Error; err != nil {
		return nil, err
	}
	return drives, nil
}

func (r *driveRepository) ListIDsAssignedTo(ctx context.Context, coordinatorID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.DriveAssignment{}).
		Where("coordinator_id = ?", coordinatorID).
		Pluck("drive_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *driveRepository) Update(ctx context.Context, drive *models.Drive) error {
	return r.db.WithContext(ctx).Omit("Assignments", "Shares").Save(drive).Error
}

func (r *driveRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Drive{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddAssignment inserts the assignment unless the (drive, coordinator) pair
// already exists. Returns true when a row was actually inserted.
func (r *driveRepository) AddAssignment(ctx context.Context, assignment *models.DriveAssignment) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(assignment)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AddShares inserts the given share rows, silently skipping students already
// present on the drive, and reports how many rows were actually added.
func (r *driveRepository) AddShares(ctx context.Context, shares []models.DriveShare) (int64, error) {
	if len(shares) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&shares)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
