package service

import (
	"context"
	"log/slog"

	"github.com/forgo/roam/api/internal/model"
)

// FollowUserRepository defines the user storage needed by the follow graph
type FollowUserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	AddFollowEdge(ctx context.Context, followerID, targetID string) error
	RemoveFollowEdge(ctx context.Context, followerID, targetID string) error
}

// FollowNotificationRepository defines notification storage for follow events
type FollowNotificationRepository interface {
	Create(ctx context.Context, n *model.Notification) error
}

// FollowService maintains the symmetric follow graph: for any pair (A, B),
// B in A.following iff A in B.followers. Both legs of every edge mutation
// execute in one store transaction, so the persisted state is never
// asymmetric; the reconciler job covers edges damaged by external writers.
type FollowService struct {
	users         FollowUserRepository
	notifications FollowNotificationRepository
}

// FollowServiceConfig holds configuration for the follow service
type FollowServiceConfig struct {
	Users         FollowUserRepository
	Notifications FollowNotificationRepository
}

// NewFollowService creates a new follow service
func NewFollowService(cfg FollowServiceConfig) *FollowService {
	return &FollowService{
		users:         cfg.Users,
		notifications: cfg.Notifications,
	}
}

// ToggleFollow follows the target if not yet followed, otherwise unfollows.
// Returns true when the caller is following the target afterwards.
func (s *FollowService) ToggleFollow(ctx context.Context, followerID, targetID string) (bool, error) {
	if followerID == targetID {
		return false, ErrCannotFollowSelf
	}

	follower, err := s.users.GetByID(ctx, followerID)
	if err != nil {
		return false, err
	}
	if follower == nil {
		return false, ErrUserNotFound
	}

	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, ErrUserNotFound
	}

	if follower.IsFollowing(targetID) {
		if err := s.users.RemoveFollowEdge(ctx, followerID, targetID); err != nil {
			return true, err
		}
		// No notification on unfollow
		return false, nil
	}

	if err := s.users.AddFollowEdge(ctx, followerID, targetID); err != nil {
		return false, err
	}

	// The edge is the unit of work; the notification is a courtesy and
	// must not undo a committed follow.
	notification := &model.Notification{
		Type:        model.NotificationNewFollower,
		RecipientID: targetID,
		SenderID:    followerID,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		slog.Warn("failed to create follow notification",
			slog.String("follower_id", followerID),
			slog.String("target_id", targetID),
			slog.String("error", err.Error()),
		)
	}

	return true, nil
}

// RemoveFollower removes followerID from the caller's follower list and the
// caller from the ex-follower's following list. Only the list owner may do
// this, and it emits no notification.
func (s *FollowService) RemoveFollower(ctx context.Context, callerID, ownerID, followerID string) error {
	if callerID != ownerID {
		return ErrNotFollowListOwner
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return ErrUserNotFound
	}

	follower, err := s.users.GetByID(ctx, followerID)
	if err != nil {
		return err
	}
	if follower == nil {
		return ErrUserNotFound
	}

	// Removing an edge that does not exist is a no-op; the removal is
	// idempotent on both legs.
	return s.users.RemoveFollowEdge(ctx, followerID, ownerID)
}
