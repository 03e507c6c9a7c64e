package repositories

import (
	"context"
	"strings"
	"time"

	"careerhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// jobRepository implements JobRepository interface
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create creates a new job
func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID gets a job by ID with its employer. Inactive jobs still resolve;
// visibility filtering belongs to the search path only.
func (r *jobRepository) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).
		Preload("Employer").
		First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Update updates a job
func (r *jobRepository) Update(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes a job and cascades to its applications. Both deletes commit
// atomically so no orphan application can survive a partial failure.
func (r *jobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, id).Error
	})
}

// applyFilter chains the search criteria onto a query. The active-only base
// predicate always comes first; keyword matches any of title, company or
// description, case-insensitively.
func applyFilter(q *gorm.DB, filter JobFilter) *gorm.DB {
	q = q.Where("is_active = ?", true)

	if filter.Keywords != "" {
		kw := "%" + strings.ToLower(filter.Keywords) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?)", kw, kw, kw)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.JobType != "" {
		q = q.Where("job_type = ?", filter.JobType)
	}

	return q
}

// Search returns active jobs matching the filter, newest first, paginated.
// An offset beyond the data set yields an empty page, not an error.
func (r *jobRepository) Search(ctx context.Context, filter JobFilter, offset, limit int) ([]*models.Job, int64, error) {
	var jobs []*models.Job
	var total int64

	if err := applyFilter(r.db.WithContext(ctx).Model(&models.Job{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyFilter(r.db.WithContext(ctx), filter).
		Preload("Employer").
		Order("posted_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error

	return jobs, total, err
}

// ListByEmployer lists jobs owned by an employer, newest first
func (r *jobRepository) ListByEmployer(ctx context.Context, employerID uint, offset, limit int) ([]*models.Job, int64, error) {
	var jobs []*models.Job
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Job{}).Where("employer_id = ?", employerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("posted_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&jobs).Error

	return jobs, total, err
}

// ListRecentActive lists the most recently posted active jobs (landing page)
func (r *jobRepository) ListRecentActive(ctx context.Context, limit int) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("posted_date DESC").
		Limit(limit).
		Find(&jobs).Error
	return jobs, err
}

// ListAll lists every job, newest first (admin overview)
func (r *jobRepository) ListAll(ctx context.Context) ([]*models.Job, error) {
	var jobs []*models.Job
	err := r.db.WithContext(ctx).
		Order("posted_date DESC").
		Find(&jobs).Error
	return jobs, err
}

// CountActive counts active jobs
func (r *jobRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Job{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// DeactivateExpired flips the active flag on jobs whose deadline has passed
// (nightly maintenance)
func (r *jobRepository) DeactivateExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("is_active = ?", true).
		Where("deadline IS NOT NULL AND deadline < ?", time.Now()).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
