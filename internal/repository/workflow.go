package repository

import (
	"context"

	"github.com/forgo/roam/api/internal/database"
	"github.com/forgo/roam/api/internal/model"
)

// WorkflowRepository persists attendance workflow transitions. Every method
// is one atomic batch: the activity-log change and the notification writes
// it implies land together or not at all, which is what lets the service
// layer treat each transition as a single logical unit.
type WorkflowRepository struct {
	db database.Database
}

// NewWorkflowRepository creates a new workflow repository
func NewWorkflowRepository(db database.Database) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

// MarkDone writes the attendee's updated activity log and the
// attendance_request notification for the author
func (r *WorkflowRepository) MarkDone(ctx context.Context, attendeeID string, log model.ActivityLog, request *model.Notification) error {
	batch := database.NewAtomicBatch()
	addActivityLogWrite(batch, attendeeID, log)
	batch.Add(createNotificationQuery, createNotificationVars(request))
	return batch.Execute(ctx, r.db)
}

// Confirm writes the attendee's updated activity log, consumes the actioned
// attendance_request, and emits the attendance_confirmed and rate_experience
// notifications to the attendee
func (r *WorkflowRepository) Confirm(ctx context.Context, attendeeID string, log model.ActivityLog, requestID string, confirmed, rateInvite *model.Notification) error {
	batch := database.NewAtomicBatch()
	addActivityLogWrite(batch, attendeeID, log)
	batch.Add(
		`DELETE type::record($notification_id)`,
		map[string]interface{}{"notification_id": requestID},
	)
	batch.Add(createNotificationQuery, createNotificationVars(confirmed))
	batch.Add(createNotificationQuery, createNotificationVars(rateInvite))
	return batch.Execute(ctx, r.db)
}

// Deny writes the attendee's activity log with the entry removed and
// consumes the actioned attendance_request. No notification goes to the
// attendee; denial is silent.
func (r *WorkflowRepository) Deny(ctx context.Context, attendeeID string, log model.ActivityLog, requestID string) error {
	batch := database.NewAtomicBatch()
	addActivityLogWrite(batch, attendeeID, log)
	batch.Add(
		`DELETE type::record($notification_id)`,
		map[string]interface{}{"notification_id": requestID},
	)
	return batch.Execute(ctx, r.db)
}

// ApplyRating writes the author's new rating aggregate and consumes the
// attendee's rate_experience invitations for the adventure
func (r *WorkflowRepository) ApplyRating(ctx context.Context, authorID string, average float64, count int, inviteIDs []string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`UPDATE type::record($author_id) SET average_rating = $average, total_ratings = $count, updated_on = time::now()`,
		map[string]interface{}{"author_id": authorID, "average": average, "count": count},
	)
	for _, id := range inviteIDs {
		batch.Add(
			`DELETE type::record($notification_id)`,
			map[string]interface{}{"notification_id": id},
		)
	}
	return batch.Execute(ctx, r.db)
}

// addActivityLogWrite appends the full-map activity log write. The log is
// small (one key per adventure the user attended) and the service re-reads
// state immediately before each transition, so a whole-field write is the
// simplest correct representation of the map.
func addActivityLogWrite(batch *database.AtomicBatch, userID string, log model.ActivityLog) {
	entries := make(map[string]interface{}, len(log))
	for adventureID, status := range log {
		entries[adventureID] = string(status)
	}
	batch.Add(
		`UPDATE type::record($user_id) SET activity_log = $log, updated_on = time::now()`,
		map[string]interface{}{"user_id": userID, "log": entries},
	)
}
