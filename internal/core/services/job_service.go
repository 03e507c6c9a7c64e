package services

import (
	"context"
	"errors"
	"log"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/pagination"

	"gorm.io/gorm"
)

// Job service errors
var (
	ErrJobNotFound        = errors.New("job not found")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidJobType     = errors.New("invalid job type")
	ErrInvalidSalaryRange = errors.New("minimum salary exceeds maximum salary")
)

// pageSize is the fixed page size for all listings.
const pageSize = pagination.PageSize

// recentJobsLimit is how many jobs the landing page shows.
const recentJobsLimit = 6

// JobService handles job catalog business logic
type JobService struct {
	jobRepo repositories.JobRepository
}

// NewJobService creates a new job service
func NewJobService(jobRepo repositories.JobRepository) *JobService {
	return &JobService{jobRepo: jobRepo}
}

// JobInput represents create/update job input
type JobInput struct {
	Title        string     `json:"title"`
	Company      string     `json:"company"`
	Description  string     `json:"description"`
	Requirements string     `json:"requirements,omitempty"`
	SalaryMin    *int       `json:"salary_min,omitempty"`
	SalaryMax    *int       `json:"salary_max,omitempty"`
	Location     string     `json:"location"`
	Category     string     `json:"category"`
	JobType      string     `json:"job_type"`
	Deadline     *time.Time `json:"deadline,omitempty"`
}

// validate parses the closed enumerations and checks the salary bounds.
func (in *JobInput) validate() (domain.Category, domain.JobType, error) {
	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return "", "", ErrInvalidCategory
	}

	jobType, err := domain.ParseJobType(in.JobType)
	if err != nil {
		return "", "", ErrInvalidJobType
	}

	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return "", "", ErrInvalidSalaryRange
	}

	return category, jobType, nil
}

// Create creates a new job posting owned by the actor
func (s *JobService) Create(ctx context.Context, actor domain.Actor, input *JobInput) (*models.Job, error) {
	if !domain.CanPostJob(actor) {
		return nil, ErrPermissionDenied
	}

	category, jobType, err := input.validate()
	if err != nil {
		return nil, err
	}

	job := &models.Job{
		Title:        input.Title,
		Company:      input.Company,
		Description:  input.Description,
		Requirements: input.Requirements,
		SalaryMin:    input.SalaryMin,
		SalaryMax:    input.SalaryMax,
		Location:     input.Location,
		Category:     category,
		JobType:      jobType,
		Deadline:     input.Deadline,
		IsActive:     true,
		EmployerID:   actor.ID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	log.Printf("✅ Job posted: %q by user %d", job.Title, actor.ID)
	return job, nil
}

// GetByID gets a job by ID. Inactive jobs still resolve by id; only the
// search path hides them.
func (s *JobService) GetByID(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// Update updates a job owned by the actor (or any job for an admin)
func (s *JobService) Update(ctx context.Context, actor domain.Actor, id uint, input *JobInput) (*models.Job, error) {
	job, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanManageJob(actor, job.EmployerID) {
		return nil, ErrPermissionDenied
	}

	category, jobType, err := input.validate()
	if err != nil {
		return nil, err
	}

	job.Title = input.Title
	job.Company = input.Company
	job.Description = input.Description
	job.Requirements = input.Requirements
	job.SalaryMin = input.SalaryMin
	job.SalaryMax = input.SalaryMax
	job.Location = input.Location
	job.Category = category
	job.JobType = jobType
	job.Deadline = input.Deadline

	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// Delete deletes a job and all of its applications
func (s *JobService) Delete(ctx context.Context, actor domain.Actor, id uint) error {
	job, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.CanManageJob(actor, job.EmployerID) {
		return ErrPermissionDenied
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("🗑️ Job deleted: %d (with its applications)", id)
	return nil
}

// ToggleActive flips a job's visibility flag (admin moderation)
func (s *JobService) ToggleActive(ctx context.Context, actor domain.Actor, id uint) (*models.Job, error) {
	if !domain.CanToggleJobStatus(actor) {
		return nil, ErrPermissionDenied
	}

	job, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job.IsActive = !job.IsActive
	if err := s.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	return job, nil
}

// SearchInput represents job search input
type SearchInput struct {
	Keywords string
	Location string
	Category string
	JobType  string
	Page     int
}

// JobListOutput represents a paginated job listing
type JobListOutput struct {
	Jobs       []*models.JobResponse `json:"jobs"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"total_pages"`
}

// Search searches active jobs, newest first. Category and job type values
// outside the closed enumerations match nothing rather than erroring, the
// same as any other non-matching filter.
func (s *JobService) Search(ctx context.Context, input *SearchInput) (*JobListOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	offset := (input.Page - 1) * pageSize

	filter := repositories.JobFilter{
		Keywords: input.Keywords,
		Location: input.Location,
		Category: domain.Category(input.Category),
		JobType:  domain.JobType(input.JobType),
	}

	jobs, total, err := s.jobRepo.Search(ctx, filter, offset, pageSize)
	if err != nil {
		return nil, err
	}

	return newJobListOutput(jobs, total, input.Page), nil
}

// ListMyJobs lists the actor's own postings, newest first
func (s *JobService) ListMyJobs(ctx context.Context, actor domain.Actor, page int) (*JobListOutput, error) {
	if !domain.CanListOwnJobs(actor) {
		return nil, ErrPermissionDenied
	}

	if page < 1 {
		page = 1
	}

	jobs, total, err := s.jobRepo.ListByEmployer(ctx, actor.ID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return newJobListOutput(jobs, total, page), nil
}

// HomeOutput represents the landing page payload
type HomeOutput struct {
	RecentJobs []*models.JobResponse `json:"recent_jobs"`
	JobCount   int64                 `json:"job_count"`
}

// Home returns the most recent active jobs and the active-job count
func (s *JobService) Home(ctx context.Context) (*HomeOutput, error) {
	jobs, err := s.jobRepo.ListRecentActive(ctx, recentJobsLimit)
	if err != nil {
		return nil, err
	}

	count, err := s.jobRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &HomeOutput{
		RecentJobs: toJobResponses(jobs),
		JobCount:   count,
	}, nil
}

func toJobResponses(jobs []*models.Job) []*models.JobResponse {
	out := make([]*models.JobResponse, len(jobs))
	for i, job := range jobs {
		out[i] = job.ToResponse()
	}
	return out
}

func newJobListOutput(jobs []*models.Job, total int64, page int) *JobListOutput {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &JobListOutput{
		Jobs:       toJobResponses(jobs),
		Total:      total,
		Page:       page,
		Limit:      pageSize,
		TotalPages: totalPages,
	}
}
