package service

import (
	"context"

	"github.com/forgo/roam/api/internal/model"
)

// ProfileUserRepository defines user storage for the profile service
type ProfileUserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	UpdatePrivacy(ctx context.Context, userID string, isPrivate bool, settings model.PrivacySettings) error
	UpdateProfile(ctx context.Context, userID string, displayName, birthday *string) error
}

// UserService handles profile reads and privacy settings
type UserService struct {
	users ProfileUserRepository
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	Users ProfileUserRepository
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{users: cfg.Users}
}

// GetProfile retrieves a user's public profile, shaped by the owner's
// privacy settings. Owners requesting themselves get the full record.
func (s *UserService) GetProfile(ctx context.Context, viewerID, userID string) (*model.UserPublic, *model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrUserNotFound
	}

	if viewerID == userID {
		return user.ToPublic(), user, nil
	}
	return user.ToPublic(), nil, nil
}

// UpdateProfile applies the requested profile changes to the caller's
// account. Absent fields keep their current value.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *model.UpdateProfileRequest) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.Birthday != nil {
		if !model.ValidBirthday(*req.Birthday) {
			return nil, ErrInvalidBirthday
		}
		user.Birthday = req.Birthday
	}
	if req.DisplayName != nil {
		user.DisplayName = req.DisplayName
	}

	if err := s.users.UpdateProfile(ctx, userID, user.DisplayName, user.Birthday); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePrivacy applies the requested privacy changes to the caller's
// account. Absent fields keep their current value.
func (s *UserService) UpdatePrivacy(ctx context.Context, userID string, req *model.UpdatePrivacyRequest) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	isPrivate := user.IsPrivate
	settings := user.PrivacySettings

	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}
	if req.ShowFollowLists != nil {
		settings.ShowFollowLists = *req.ShowFollowLists
	}
	if req.ShowStats != nil {
		settings.ShowStats = *req.ShowStats
	}
	if req.ShowCompletedActivities != nil {
		settings.ShowCompletedActivities = *req.ShowCompletedActivities
	}
	if req.AllowTwinSearch != nil {
		settings.AllowTwinSearch = *req.AllowTwinSearch
	}

	if err := s.users.UpdatePrivacy(ctx, userID, isPrivate, settings); err != nil {
		return nil, err
	}

	user.IsPrivate = isPrivate
	user.PrivacySettings = settings
	return user, nil
}
