package repositories

import (
	"context"

	"careerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create creates a new application. Under a duplicate-apply race the compound
// unique index rejects the insert and the error surfaces as
// gorm.ErrDuplicatedKey.
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// GetByID gets an application with its job and applicant
func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Preload("Job").
		First(&application, id).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// GetByUserAndJob gets the application a user submitted to a job, if any
func (r *applicationRepository) GetByUserAndJob(ctx context.Context, userID, jobID uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// Update updates an application
func (r *applicationRepository) Update(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Save(application).Error
}

// ListByJob lists applications for a job, most recent first
func (r *applicationRepository) ListByJob(ctx context.Context, jobID uint, offset, limit int) ([]*models.Application, int64, error) {
	var applications []*models.Application
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Application{}).Where("job_id = ?", jobID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Preload("Job").
		Where("job_id = ?", jobID).
		Order("applied_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&applications).Error

	return applications, total, err
}

// ListByUser lists a user's applications, most recent first
func (r *applicationRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Application, int64, error) {
	var applications []*models.Application
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Application{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("applied_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&applications).Error

	return applications, total, err
}

// ListRecentByEmployer lists the latest applications across all jobs owned by
// an employer (dashboard)
func (r *applicationRepository) ListRecentByEmployer(ctx context.Context, employerID uint, limit int) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Preload("Job").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.employer_id = ?", employerID).
		Order("applications.applied_date DESC").
		Limit(limit).
		Find(&applications).Error
	return applications, err
}

// ListRecent lists the latest applications system-wide (admin overview)
func (r *applicationRepository) ListRecent(ctx context.Context, limit int) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Applicant").
		Preload("Job").
		Order("applied_date DESC").
		Limit(limit).
		Find(&applications).Error
	return applications, err
}

// ExistsByUserAndJob checks whether the user already applied to the job
func (r *applicationRepository) ExistsByUserAndJob(ctx context.Context, userID, jobID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}
