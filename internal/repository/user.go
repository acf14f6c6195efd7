package repository

import (
	"context"
	"errors"

	"github.com/forgo/roam/api/internal/database"
	"github.com/forgo/roam/api/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID. Returns nil when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUserResult(result)
}

// Create creates a new user record
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			username: $username,
			display_name: $display_name,
			is_private: $is_private,
			privacy_settings: $privacy_settings,
			birthday: $birthday,
			following: [],
			followers: [],
			activity_log: {},
			total_ratings: 0,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"username":     user.Username,
		"display_name": user.DisplayName,
		"is_private":   user.IsPrivate,
		"privacy_settings": map[string]interface{}{
			"show_follow_lists":         user.PrivacySettings.ShowFollowLists,
			"show_stats":                user.PrivacySettings.ShowStats,
			"show_completed_activities": user.PrivacySettings.ShowCompletedActivities,
			"allow_twin_search":         user.PrivacySettings.AllowTwinSearch,
		},
		"birthday": user.Birthday,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	if rows, ok := extractQueryResults(result); ok && len(rows) > 0 {
		if data, ok := rows[0].(map[string]interface{}); ok {
			user.ID = extractRecordID(data["id"])
			user.CreatedOn = getTime(data, "created_on")
			user.UpdatedOn = getTime(data, "updated_on")
		}
	}
	return nil
}

// AddFollowEdge records follower following target: both legs of the edge
// land in one transaction. array::union keeps the legs idempotent, so a
// reconciler re-issuing a leg is safe.
func (r *UserRepository) AddFollowEdge(ctx context.Context, followerID, targetID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`UPDATE type::record($follower) SET following = array::union(following, [$target]), updated_on = time::now()`,
		map[string]interface{}{"follower": followerID, "target": targetID},
	)
	batch.Add(
		`UPDATE type::record($target) SET followers = array::union(followers, [$follower]), updated_on = time::now()`,
		map[string]interface{}{"follower": followerID, "target": targetID},
	)
	return batch.Execute(ctx, r.db)
}

// RemoveFollowEdge removes the edge follower -> target, both legs atomically
func (r *UserRepository) RemoveFollowEdge(ctx context.Context, followerID, targetID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(
		`UPDATE type::record($follower) SET following = array::complement(following, [$target]), updated_on = time::now()`,
		map[string]interface{}{"follower": followerID, "target": targetID},
	)
	batch.Add(
		`UPDATE type::record($target) SET followers = array::complement(followers, [$follower]), updated_on = time::now()`,
		map[string]interface{}{"follower": followerID, "target": targetID},
	)
	return batch.Execute(ctx, r.db)
}

// UpdatePrivacy replaces the user's privacy fields
func (r *UserRepository) UpdatePrivacy(ctx context.Context, userID string, isPrivate bool, settings model.PrivacySettings) error {
	query := `
		UPDATE type::record($id) SET
			is_private = $is_private,
			privacy_settings = $privacy_settings,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":         userID,
		"is_private": isPrivate,
		"privacy_settings": map[string]interface{}{
			"show_follow_lists":         settings.ShowFollowLists,
			"show_stats":                settings.ShowStats,
			"show_completed_activities": settings.ShowCompletedActivities,
			"allow_twin_search":         settings.AllowTwinSearch,
		},
	}
	return r.db.Execute(ctx, query, vars)
}

// UpdateProfile replaces the user's display name and birthday
func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, displayName, birthday *string) error {
	query := `
		UPDATE type::record($id) SET
			display_name = $display_name,
			birthday = $birthday,
			updated_on = time::now()
	`
	vars := map[string]interface{}{
		"id":           userID,
		"display_name": displayName,
		"birthday":     birthday,
	}
	return r.db.Execute(ctx, query, vars)
}

// ListTwinCandidates retrieves users with a birthday set who opted in to
// twin search. The viewer is excluded server-side.
func (r *UserRepository) ListTwinCandidates(ctx context.Context, viewerID string) ([]*model.User, error) {
	query := `
		SELECT * FROM user
		WHERE id != type::record($viewer)
		AND birthday != NONE
		AND privacy_settings.allow_twin_search = true
	`
	vars := map[string]interface{}{"viewer": viewerID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseUsersResult(result)
}

// List retrieves every user record. Used by the follow reconciler sweep;
// not exposed through the API.
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	result, err := r.db.Query(ctx, `SELECT * FROM user`, nil)
	if err != nil {
		return nil, err
	}
	return parseUsersResult(result)
}

// GetMany retrieves a batch of users keyed by id. Missing ids are simply
// absent from the result.
func (r *UserRepository) GetMany(ctx context.Context, ids []string) (map[string]*model.User, error) {
	if len(ids) == 0 {
		return map[string]*model.User{}, nil
	}

	out := make(map[string]*model.User, len(ids))
	for _, id := range ids {
		if _, seen := out[id]; seen {
			continue
		}
		user, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user != nil {
			out[id] = user
		}
	}
	return out, nil
}

// parseUserResult converts a single SurrealDB row to a User
func parseUserResult(result interface{}) (*model.User, error) {
	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, database.ErrQuery
	}
	return userFromRecord(data), nil
}

// parseUsersResult converts a SurrealDB result set to Users
func parseUsersResult(result interface{}) ([]*model.User, error) {
	rows, ok := extractQueryResults(result)
	if !ok {
		return []*model.User{}, nil
	}

	users := make([]*model.User, 0, len(rows))
	for _, row := range rows {
		if data, ok := row.(map[string]interface{}); ok {
			users = append(users, userFromRecord(data))
		}
	}
	return users, nil
}

// userFromRecord maps a raw record to the model type
func userFromRecord(data map[string]interface{}) *model.User {
	user := &model.User{
		ID:          extractRecordID(data["id"]),
		Username:    getStringPtr(data, "username"),
		DisplayName: getStringPtr(data, "display_name"),
		IsPrivate:   getBool(data, "is_private"),
		Birthday:    getStringPtr(data, "birthday"),
		Following:   model.NewIDSet(getIDSlice(data, "following")...),
		Followers:   model.NewIDSet(getIDSlice(data, "followers")...),
		ActivityLog: model.ActivityLog{},
		TotalRatings: getInt(data, "total_ratings"),
		AverageRating: getFloatPtr(data, "average_rating"),
		CreatedOn:   getTime(data, "created_on"),
		UpdatedOn:   getTime(data, "updated_on"),
	}

	if settings, ok := data["privacy_settings"].(map[string]interface{}); ok {
		user.PrivacySettings = model.PrivacySettings{
			ShowFollowLists:         getBool(settings, "show_follow_lists"),
			ShowStats:               getBool(settings, "show_stats"),
			ShowCompletedActivities: getBool(settings, "show_completed_activities"),
			AllowTwinSearch:         getBool(settings, "allow_twin_search"),
		}
	}

	for adventureID, status := range getStatusMap(data, "activity_log") {
		user.ActivityLog[adventureID] = model.ActivityStatus(status)
	}

	return user
}
