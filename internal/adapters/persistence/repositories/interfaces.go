package repositories

import (
	"context"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/core/domain"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ListRecent(ctx context.Context, limit int) ([]*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// JobFilter carries the optional search criteria for the job catalog.
// Zero values mean "no filter"; all supplied filters are ANDed.
type JobFilter struct {
	Keywords string
	Location string
	Category domain.Category
	JobType  domain.JobType
}

// JobRepository defines job repository interface
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id uint) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	// Delete removes the job and all of its applications in one transaction.
	Delete(ctx context.Context, id uint) error
	// Search returns active jobs matching the filter, newest first.
	Search(ctx context.Context, filter JobFilter, offset, limit int) ([]*models.Job, int64, error)
	ListByEmployer(ctx context.Context, employerID uint, offset, limit int) ([]*models.Job, int64, error)
	ListRecentActive(ctx context.Context, limit int) ([]*models.Job, error)
	ListAll(ctx context.Context) ([]*models.Job, error)
	CountActive(ctx context.Context) (int64, error)
	DeactivateExpired(ctx context.Context) (int64, error)
}

// ApplicationRepository defines application repository interface
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	GetByUserAndJob(ctx context.Context, userID, jobID uint) (*models.Application, error)
	Update(ctx context.Context, application *models.Application) error
	ListByJob(ctx context.Context, jobID uint, offset, limit int) ([]*models.Application, int64, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]*models.Application, int64, error)
	ListRecentByEmployer(ctx context.Context, employerID uint, limit int) ([]*models.Application, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Application, error)
	ExistsByUserAndJob(ctx context.Context, userID, jobID uint) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	Revoke(ctx context.Context, id uint) error
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) (int64, error)
}
