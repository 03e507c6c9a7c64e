package services

import (
	"context"
	"errors"
	"log"
	"time"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/domain"

	"gorm.io/gorm"
)

// Application service errors
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAlreadyApplied      = errors.New("you have already applied to this job")
	ErrInvalidStatus       = errors.New("invalid application status")
)

// ApplicationService handles the application ledger business logic
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
	}
}

// ApplyInput represents job application input
type ApplyInput struct {
	CoverLetter string `json:"cover_letter,omitempty"`
	ResumeText  string `json:"resume_text,omitempty"`
}

// Apply submits an application from the actor to a job. One application per
// (user, job) pair; a duplicate is rejected whether it hits the pre-check or
// the unique index under a race.
func (s *ApplicationService) Apply(ctx context.Context, actor domain.Actor, jobID uint, input *ApplyInput) (*models.Application, error) {
	if !domain.CanApply(actor) {
		return nil, ErrPermissionDenied
	}

	// The job must exist, but an inactive one can still be applied to by id.
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	exists, err := s.applicationRepo.ExistsByUserAndJob(ctx, actor.ID, jobID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	application := &models.Application{
		UserID:      actor.ID,
		JobID:       jobID,
		CoverLetter: input.CoverLetter,
		ResumeText:  input.ResumeText,
		Status:      domain.StatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}

	log.Printf("✅ Application submitted: user %d → job %d", actor.ID, jobID)
	return application, nil
}

// GetByID gets an application by ID. Only the applicant, the owning
// employer, or an admin may see it.
func (s *ApplicationService) GetByID(ctx context.Context, actor domain.Actor, id uint) (*models.Application, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if application.UserID != actor.ID &&
		!domain.CanUpdateApplicationStatus(actor, application.Job.EmployerID) {
		return nil, ErrPermissionDenied
	}

	return application, nil
}

// UpdateStatus moves an application to any of the review states. Re-review
// is allowed: an accepted application can later be rejected and vice versa.
// The reviewed timestamp refreshes on every change.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor domain.Actor, id uint, status string) (*models.Application, error) {
	newStatus, err := domain.ParseApplicationStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if !domain.CanUpdateApplicationStatus(actor, application.Job.EmployerID) {
		return nil, ErrPermissionDenied
	}

	application.Status = newStatus
	now := time.Now()
	application.ReviewedDate = &now

	if err := s.applicationRepo.Update(ctx, application); err != nil {
		return nil, err
	}

	return application, nil
}

// ApplicationListOutput represents a paginated application listing
type ApplicationListOutput struct {
	Applications []*models.ApplicationResponse `json:"applications"`
	Total        int64                         `json:"total"`
	Page         int                           `json:"page"`
	Limit        int                           `json:"limit"`
	TotalPages   int                           `json:"total_pages"`
}

// ListForJob lists applications to a job for the owning employer (or admin)
func (s *ApplicationService) ListForJob(ctx context.Context, actor domain.Actor, jobID uint, page int) (*ApplicationListOutput, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if !domain.CanViewJobApplications(actor, job.EmployerID) {
		return nil, ErrPermissionDenied
	}

	if page < 1 {
		page = 1
	}

	applications, total, err := s.applicationRepo.ListByJob(ctx, jobID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return newApplicationListOutput(applications, total, page), nil
}

// ListMine lists the actor's own applications, most recent first
func (s *ApplicationService) ListMine(ctx context.Context, actor domain.Actor, page int) (*ApplicationListOutput, error) {
	if !domain.CanListOwnApplications(actor) {
		return nil, ErrPermissionDenied
	}

	if page < 1 {
		page = 1
	}

	applications, total, err := s.applicationRepo.ListByUser(ctx, actor.ID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	return newApplicationListOutput(applications, total, page), nil
}

// GetByViewer returns the viewer's own application to a job, or nil when
// they never applied. The job detail page uses this to show the apply state.
func (s *ApplicationService) GetByViewer(ctx context.Context, userID, jobID uint) (*models.Application, error) {
	application, err := s.applicationRepo.GetByUserAndJob(ctx, userID, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return application, nil
}

func toApplicationResponses(applications []*models.Application) []*models.ApplicationResponse {
	out := make([]*models.ApplicationResponse, len(applications))
	for i, application := range applications {
		out[i] = application.ToResponse()
	}
	return out
}

func newApplicationListOutput(applications []*models.Application, total int64, page int) *ApplicationListOutput {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	return &ApplicationListOutput{
		Applications: toApplicationResponses(applications),
		Total:        total,
		Page:         page,
		Limit:        pageSize,
		TotalPages:   totalPages,
	}
}
