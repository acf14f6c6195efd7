package repository

import (
	"context"
	"errors"

	"github.com/forgo/roam/api/internal/database"
	"github.com/forgo/roam/api/internal/model"
)

// NotificationRepository handles notification data access
type NotificationRepository struct {
	db database.Database
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create appends a notification to the recipient's queue
func (r *NotificationRepository) Create(ctx context.Context, n *model.Notification) error {
	result, err := r.db.Query(ctx, createNotificationQuery, createNotificationVars(n))
	if err != nil {
		return err
	}

	if rows, ok := extractQueryResults(result); ok && len(rows) > 0 {
		if data, ok := rows[0].(map[string]interface{}); ok {
			n.ID = extractRecordID(data["id"])
			n.CreatedOn = getTime(data, "created_on")
		}
	}
	return nil
}

// GetByID retrieves a notification by ID. Returns nil when it does not exist.
func (r *NotificationRepository) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, database.ErrQuery
	}
	return notificationFromRecord(data), nil
}

// ListForRecipient retrieves a user's notifications, newest first
func (r *NotificationRepository) ListForRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*model.Notification, error) {
	query := `
		SELECT * FROM notification
		WHERE recipient = type::record($recipient_id)
		ORDER BY created_on DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"recipient_id": recipientID,
		"limit":        limit,
		"offset":       offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseNotificationsResult(result)
}

// MarkAllRead flags every unread notification for the recipient as read.
// Invoked when the recipient opens their notification view.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	query := `
		UPDATE notification SET read = true
		WHERE recipient = type::record($recipient_id) AND read = false
	`
	vars := map[string]interface{}{"recipient_id": recipientID}
	return r.db.Execute(ctx, query, vars)
}

// RateInvites retrieves the rate_experience notifications held by a user
// for a specific adventure. An empty result means the user has no standing
// invitation to rate that adventure's author.
func (r *NotificationRepository) RateInvites(ctx context.Context, recipientID, adventureID string) ([]*model.Notification, error) {
	query := `
		SELECT * FROM notification
		WHERE recipient = type::record($recipient_id)
		AND adventure = type::record($adventure_id)
		AND type = $type
	`
	vars := map[string]interface{}{
		"recipient_id": recipientID,
		"adventure_id": adventureID,
		"type":         string(model.NotificationRateExperience),
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseNotificationsResult(result)
}

// createNotificationQuery is shared with the workflow repository so
// notification writes inside transitions stay in one transaction.
const createNotificationQuery = `
	CREATE notification CONTENT {
		type: $type,
		recipient: type::record($recipient_id),
		sender: type::record($sender_id),
		adventure: IF $adventure_id != NONE THEN type::record($adventure_id) ELSE NONE END,
		read: false,
		created_on: time::now()
	}
`

func createNotificationVars(n *model.Notification) map[string]interface{} {
	var adventureID interface{}
	if n.AdventureID != nil {
		adventureID = *n.AdventureID
	}
	return map[string]interface{}{
		"type":         string(n.Type),
		"recipient_id": n.RecipientID,
		"sender_id":    n.SenderID,
		"adventure_id": adventureID,
	}
}

// parseNotificationsResult converts a SurrealDB result set to Notifications
func parseNotificationsResult(result interface{}) ([]*model.Notification, error) {
	rows, ok := extractQueryResults(result)
	if !ok {
		return []*model.Notification{}, nil
	}

	notifications := make([]*model.Notification, 0, len(rows))
	for _, row := range rows {
		if data, ok := row.(map[string]interface{}); ok {
			notifications = append(notifications, notificationFromRecord(data))
		}
	}
	return notifications, nil
}

// notificationFromRecord maps a raw record to the model type
func notificationFromRecord(data map[string]interface{}) *model.Notification {
	n := &model.Notification{
		ID:          extractRecordID(data["id"]),
		Type:        model.NotificationType(getString(data, "type")),
		RecipientID: extractRecordID(data["recipient"]),
		SenderID:    extractRecordID(data["sender"]),
		Read:        getBool(data, "read"),
		CreatedOn:   getTime(data, "created_on"),
	}
	if adventureID := extractRecordID(data["adventure"]); adventureID != "" {
		n.AdventureID = &adventureID
	}
	return n
}
