package service

import (
	"context"

	"github.com/forgo/roam/api/internal/model"
)

// AdventureStoreRepository defines adventure storage for the adventure service
type AdventureStoreRepository interface {
	Create(ctx context.Context, adventure *model.Adventure) error
	GetByID(ctx context.Context, id string) (*model.Adventure, error)
	ListRecent(ctx context.Context, limit, offset int) ([]*model.Adventure, error)
	ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*model.Adventure, error)
	SetInterested(ctx context.Context, adventureID, userID string, interested bool) error
}

// AdventureUserRepository defines the user lookups the feed needs
type AdventureUserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetMany(ctx context.Context, ids []string) (map[string]*model.User, error)
}

// AdventureService handles adventure publishing and viewer-scoped reads.
// Every read path funnels through the visibility evaluator; nothing leaves
// this service that the viewer is not allowed to see.
type AdventureService struct {
	adventures AdventureStoreRepository
	users      AdventureUserRepository
}

// AdventureServiceConfig holds configuration for the adventure service
type AdventureServiceConfig struct {
	Adventures AdventureStoreRepository
	Users      AdventureUserRepository
}

// NewAdventureService creates a new adventure service
func NewAdventureService(cfg AdventureServiceConfig) *AdventureService {
	return &AdventureService{
		adventures: cfg.Adventures,
		users:      cfg.Users,
	}
}

// Create publishes a new adventure for the author
func (s *AdventureService) Create(ctx context.Context, authorID string, req *model.CreateAdventureRequest) (*model.Adventure, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if len(req.Title) > model.MaxAdventureTitleLength {
		return nil, ErrTitleTooLong
	}
	if req.Description != nil && len(*req.Description) > model.MaxAdventureDescLength {
		return nil, ErrDescriptionLong
	}
	if !model.ValidAdventurePrivacy(req.Privacy) {
		return nil, ErrInvalidPrivacy
	}
	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidTimeRange
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	adventure := &model.Adventure{
		AuthorID:        authorID,
		Title:           req.Title,
		Description:     req.Description,
		Privacy:         req.Privacy,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Location:        req.Location,
		InterestedUsers: model.NewIDSet(),
	}
	if err := s.adventures.Create(ctx, adventure); err != nil {
		return nil, err
	}
	return adventure, nil
}

// Get retrieves an adventure as seen by the viewer. viewerID may be empty
// for guests. An adventure the viewer may not see is reported as not found
// rather than forbidden, so its existence leaks nothing.
func (s *AdventureService) Get(ctx context.Context, viewerID, adventureID string) (*model.Adventure, error) {
	adventure, err := s.adventures.GetByID(ctx, adventureID)
	if err != nil {
		return nil, err
	}
	if adventure == nil {
		return nil, ErrAdventureNotFound
	}

	viewer, author, err := s.viewerAndAuthor(ctx, viewerID, adventure.AuthorID)
	if err != nil {
		return nil, err
	}
	if !IsVisible(viewer, adventure, author) {
		return nil, ErrAdventureNotFound
	}
	return adventure, nil
}

// Feed retrieves the newest adventures the viewer may see. viewerID may be
// empty for guests.
func (s *AdventureService) Feed(ctx context.Context, viewerID string, limit, offset int) ([]*model.Adventure, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	adventures, err := s.adventures.ListRecent(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	var viewer *model.User
	if viewerID != "" {
		viewer, err = s.users.GetByID(ctx, viewerID)
		if err != nil {
			return nil, err
		}
	}

	authorIDs := make([]string, 0, len(adventures))
	for _, adventure := range adventures {
		authorIDs = append(authorIDs, adventure.AuthorID)
	}
	authors, err := s.users.GetMany(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	return FilterFeed(viewer, adventures, authors), nil
}

// ListByAuthor retrieves an author's adventures as seen by the viewer
func (s *AdventureService) ListByAuthor(ctx context.Context, viewerID, authorID string, limit, offset int) ([]*model.Adventure, error) {
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	viewer, author, err := s.viewerAndAuthor(ctx, viewerID, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	adventures, err := s.adventures.ListByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, err
	}

	authors := map[string]*model.User{authorID: author}
	return FilterFeed(viewer, adventures, authors), nil
}

// SetInterested toggles the caller on the adventure's interested list.
// The caller must be able to see the adventure.
func (s *AdventureService) SetInterested(ctx context.Context, callerID, adventureID string, interested bool) error {
	if _, err := s.Get(ctx, callerID, adventureID); err != nil {
		return err
	}
	return s.adventures.SetInterested(ctx, adventureID, callerID, interested)
}

// viewerAndAuthor loads the optional viewer and the author record
func (s *AdventureService) viewerAndAuthor(ctx context.Context, viewerID, authorID string) (*model.User, *model.User, error) {
	var viewer *model.User
	if viewerID != "" {
		var err error
		viewer, err = s.users.GetByID(ctx, viewerID)
		if err != nil {
			return nil, nil, err
		}
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, nil, err
	}
	return viewer, author, nil
}
