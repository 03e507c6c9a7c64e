package services

import (
	"context"
	"errors"
	"log"

	"careerhub/internal/adapters/persistence/models"
	"careerhub/internal/adapters/persistence/repositories"
	"careerhub/internal/core/domain"
	"careerhub/internal/pkg/password"

	"gorm.io/gorm"
)

// User service errors
var (
	ErrEmailTaken       = errors.New("email already in use")
	ErrWrongPassword    = errors.New("current password is incorrect")
	ErrCannotToggleSelf = errors.New("cannot change your own account status")
)

// UserService handles profile and account moderation business logic
type UserService struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// GetProfile gets a user's own profile
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfileInput represents profile update input. Username and role are
// immutable; email changes re-check uniqueness.
type UpdateProfileInput struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Location    string `json:"location,omitempty"`
}

// UpdateProfile updates the actor's own profile
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) (*models.User, error) {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Email != "" && input.Email != user.Email {
		exists, err := s.userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrEmailTaken
		}
		user.Email = input.Email
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.CompanyName != "" {
		user.CompanyName = &input.CompanyName
	}
	if input.Phone != "" {
		user.Phone = &input.Phone
	}
	if input.Location != "" {
		user.Location = &input.Location
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// ChangePasswordInput represents password change input
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// ChangePassword changes the actor's password and revokes every refresh
// token, forcing other sessions to log in again.
func (s *UserService) ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error {
	user, err := s.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if !password.Verify(input.CurrentPassword, user.Password) {
		return ErrWrongPassword
	}

	if err := password.Validate(input.NewPassword); err != nil {
		return err
	}

	hashed, err := password.Hash(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashed
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	if err := s.refreshTokenRepo.RevokeAllByUserID(ctx, userID); err != nil {
		return err
	}

	log.Printf("🔑 Password changed for user %d", userID)
	return nil
}

// ListUsers lists all users for the admin panel
func (s *UserService) ListUsers(ctx context.Context, actor domain.Actor, page int) ([]*models.UserResponse, int64, error) {
	if !domain.CanAccessAdminPanel(actor) {
		return nil, 0, ErrPermissionDenied
	}

	if page < 1 {
		page = 1
	}

	users, total, err := s.userRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	return toUserResponses(users), total, nil
}

// ToggleActive flips a user's active flag (admin moderation). Admins can
// never toggle themselves, so the system cannot lose its last admin by
// accident.
func (s *UserService) ToggleActive(ctx context.Context, actor domain.Actor, targetID uint) (*models.User, error) {
	if actor.Role == domain.RoleAdmin && actor.ID == targetID {
		return nil, ErrCannotToggleSelf
	}
	if !domain.CanToggleUserStatus(actor, targetID) {
		return nil, ErrPermissionDenied
	}

	user, err := s.GetProfile(ctx, targetID)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	// A deactivated user should not be able to ride out existing sessions.
	if !user.IsActive {
		if err := s.refreshTokenRepo.RevokeAllByUserID(ctx, targetID); err != nil {
			return nil, err
		}
	}

	log.Printf("⚖️ User %d active=%t (by admin %d)", targetID, user.IsActive, actor.ID)
	return user, nil
}

func toUserResponses(users []*models.User) []*models.UserResponse {
	out := make([]*models.UserResponse, len(users))
	for i, user := range users {
		out[i] = user.ToResponse()
	}
	return out
}
