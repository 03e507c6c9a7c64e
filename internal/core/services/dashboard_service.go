package services

import (
	"context"
	"fmt"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/domain"

	"gorm.io/gorm"
)

// dashboardRecentLimit is how many recent items each dashboard section shows.
const dashboardRecentLimit = 5

// overviewRecentApplications is how many recent applications the admin
// overview lists alongside the full user and job tables.
const overviewRecentApplications = 20

// DashboardService assembles the role-specific dashboard payloads
type DashboardService struct {
	db              *gorm.DB
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	db *gorm.DB,
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
) *DashboardService {
	return &DashboardService{
		db:              db,
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
	}
}

// SeekerDashboard is the job seeker's dashboard payload
type SeekerDashboard struct {
	Role               domain.Role                   `json:"role"`
	TotalApplications  int64                         `json:"total_applications"`
	RecentApplications []*models.ApplicationResponse `json:"recent_applications"`
}

// EmployerDashboard is the employer's dashboard payload
type EmployerDashboard struct {
	Role               domain.Role                   `json:"role"`
	TotalJobs          int64                         `json:"total_jobs"`
	RecentJobs         []*models.JobResponse         `json:"recent_jobs"`
	RecentApplications []*models.ApplicationResponse `json:"recent_applications"`
}

// AdminDashboard is the admin's dashboard payload
type AdminDashboard struct {
	Role              domain.Role            `json:"role"`
	TotalUsers        int64                  `json:"total_users"`
	TotalJobs         int64                  `json:"total_jobs"`
	TotalApplications int64                  `json:"total_applications"`
	RecentUsers       []*models.UserResponse `json:"recent_users"`
}

// GetDashboard builds the dashboard for the actor's role
func (s *DashboardService) GetDashboard(ctx context.Context, actor domain.Actor) (any, error) {
	switch actor.Role {
	case domain.RoleJobSeeker:
		return s.seekerDashboard(ctx, actor.ID)
	case domain.RoleEmployer:
		return s.employerDashboard(ctx, actor.ID)
	case domain.RoleAdmin:
		return s.adminDashboard(ctx)
	}
	return nil, fmt.Errorf("unknown role %q", actor.Role)
}

func (s *DashboardService) seekerDashboard(ctx context.Context, userID uint) (*SeekerDashboard, error) {
	applications, total, err := s.applicationRepo.ListByUser(ctx, userID, 0, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	return &SeekerDashboard{
		Role:               domain.RoleJobSeeker,
		TotalApplications:  total,
		RecentApplications: toApplicationResponses(applications),
	}, nil
}

func (s *DashboardService) employerDashboard(ctx context.Context, employerID uint) (*EmployerDashboard, error) {
	jobs, total, err := s.jobRepo.ListByEmployer(ctx, employerID, 0, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.ListRecentByEmployer(ctx, employerID, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	return &EmployerDashboard{
		Role:               domain.RoleEmployer,
		TotalJobs:          total,
		RecentJobs:         toJobResponses(jobs),
		RecentApplications: toApplicationResponses(applications),
	}, nil
}

func (s *DashboardService) adminDashboard(ctx context.Context) (*AdminDashboard, error) {
	dashboard := &AdminDashboard{Role: domain.RoleAdmin}

	counts := []struct {
		model any
		dest  *int64
	}{
		{&models.User{}, &dashboard.TotalUsers},
		{&models.Job{}, &dashboard.TotalJobs},
		{&models.Application{}, &dashboard.TotalApplications},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	users, err := s.userRepo.ListRecent(ctx, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	dashboard.RecentUsers = toUserResponses(users)

	return dashboard, nil
}

// AdminOverview is the moderation panel payload: every user, every job and
// the latest applications.
type AdminOverview struct {
	Users              []*models.UserResponse        `json:"users"`
	Jobs               []*models.JobResponse         `json:"jobs"`
	RecentApplications []*models.ApplicationResponse `json:"recent_applications"`
}

// GetOverview builds the admin moderation overview
func (s *DashboardService) GetOverview(ctx context.Context, actor domain.Actor) (*AdminOverview, error) {
	if !domain.CanAccessAdminPanel(actor) {
		return nil, ErrPermissionDenied
	}

	var users []*models.User
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	applications, err := s.applicationRepo.ListRecent(ctx, overviewRecentApplications)
	if err != nil {
		return nil, err
	}

	return &AdminOverview{
		Users:              toUserResponses(users),
		Jobs:               toJobResponses(jobs),
		RecentApplications: toApplicationResponses(applications),
	}, nil
}
