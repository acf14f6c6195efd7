package repository

import (
	"context"
	"errors"

	"github.com/forgo/roam/api/internal/database"
	"github.com/forgo/roam/api/internal/model"
)

// AdventureRepository handles adventure data access
type AdventureRepository struct {
	db database.Database
}

// NewAdventureRepository creates a new adventure repository
func NewAdventureRepository(db database.Database) *AdventureRepository {
	return &AdventureRepository{db: db}
}

// Create creates a new adventure
func (r *AdventureRepository) Create(ctx context.Context, adventure *model.Adventure) error {
	query := `
		CREATE adventure CONTENT {
			author: type::record($author_id),
			title: $title,
			description: $description,
			privacy: $privacy,
			start_date: $start_date,
			end_date: $end_date,
			location: $location,
			interested_users: [],
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"author_id":   adventure.AuthorID,
		"title":       adventure.Title,
		"description": adventure.Description,
		"privacy":     string(adventure.Privacy),
		"start_date":  adventure.StartDate,
		"end_date":    adventure.EndDate,
		"location":    adventure.Location,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	if rows, ok := extractQueryResults(result); ok && len(rows) > 0 {
		if data, ok := rows[0].(map[string]interface{}); ok {
			adventure.ID = extractRecordID(data["id"])
			adventure.CreatedOn = getTime(data, "created_on")
			adventure.UpdatedOn = getTime(data, "updated_on")
		}
	}
	return nil
}

// GetByID retrieves an adventure by ID. Returns nil when it does not exist.
func (r *AdventureRepository) GetByID(ctx context.Context, id string) (*model.Adventure, error) {
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
	return adventureFromRecord(data), nil
}

// ListRecent retrieves the newest adventures across all authors. The feed
// service filters this set per viewer; privacy is never applied here.
func (r *AdventureRepository) ListRecent(ctx context.Context, limit, offset int) ([]*model.Adventure, error) {
	query := `
		SELECT * FROM adventure
		ORDER BY start_date DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseAdventuresResult(result)
}

// ListByAuthor retrieves adventures authored by a user, newest first
func (r *AdventureRepository) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*model.Adventure, error) {
	query := `
		SELECT * FROM adventure
		WHERE author = type::record($author_id)
		ORDER BY start_date DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"author_id": authorID,
		"limit":     limit,
		"offset":    offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseAdventuresResult(result)
}

// SetInterested adds or removes a user on the adventure's interested set
func (r *AdventureRepository) SetInterested(ctx context.Context, adventureID, userID string, interested bool) error {
	op := "array::union(interested_users, [$user])"
	if !interested {
		op = "array::complement(interested_users, [$user])"
	}
	query := `UPDATE type::record($id) SET interested_users = ` + op + `, updated_on = time::now()`
	vars := map[string]interface{}{
		"id":   adventureID,
		"user": userID,
	}
	return r.db.Execute(ctx, query, vars)
}

// parseAdventuresResult converts a SurrealDB result set to Adventures
func parseAdventuresResult(result interface{}) ([]*model.Adventure, error) {
	rows, ok := extractQueryResults(result)
	if !ok {
		return []*model.Adventure{}, nil
	}

	adventures := make([]*model.Adventure, 0, len(rows))
	for _, row := range rows {
		if data, ok := row.(map[string]interface{}); ok {
			adventures = append(adventures, adventureFromRecord(data))
		}
	}
	return adventures, nil
}

// adventureFromRecord maps a raw record to the model type
func adventureFromRecord(data map[string]interface{}) *model.Adventure {
	return &model.Adventure{
		ID:              extractRecordID(data["id"]),
		AuthorID:        extractRecordID(data["author"]),
		Title:           getString(data, "title"),
		Description:     getStringPtr(data, "description"),
		Privacy:         model.AdventurePrivacy(getString(data, "privacy")),
		StartDate:       getTime(data, "start_date"),
		EndDate:         getTimePtr(data, "end_date"),
		Location:        getStringPtr(data, "location"),
		InterestedUsers: model.NewIDSet(getIDSlice(data, "interested_users")...),
		CreatedOn:       getTime(data, "created_on"),
		UpdatedOn:       getTime(data, "updated_on"),
	}
}
