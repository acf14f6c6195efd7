package service

import (
	"context"

	"github.com/forgo/roam/api/internal/model"
)

// NotificationStoreRepository defines notification storage for the
// notification service
type NotificationStoreRepository interface {
	ListForRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*model.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) error
}

// NotificationService handles a user's notification queue
type NotificationService struct {
	notifications NotificationStoreRepository
}

// NotificationServiceConfig holds configuration for the notification service
type NotificationServiceConfig struct {
	Notifications NotificationStoreRepository
}

// NewNotificationService creates a new notification service
func NewNotificationService(cfg NotificationServiceConfig) *NotificationService {
	return &NotificationService{notifications: cfg.Notifications}
}

// List retrieves the caller's notifications, newest first
func (s *NotificationService) List(ctx context.Context, callerID string, limit, offset int) ([]*model.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.notifications.ListForRecipient(ctx, callerID, limit, offset)
}

// MarkAllRead flags the caller's entire queue as read. Invoked when the
// notification view opens; rows are otherwise immutable.
func (s *NotificationService) MarkAllRead(ctx context.Context, callerID string) error {
	return s.notifications.MarkAllRead(ctx, callerID)
}
