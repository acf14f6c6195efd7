package service

import (
	"context"
	"time"

	"github.com/forgo/roam/api/internal/model"
)

// mockUserRepo implements the user repository interfaces with overridable
// function fields. Unset fields fall back to an in-memory map.
type mockUserRepo struct {
	users map[string]*model.User

	getByIDFn            func(ctx context.Context, id string) (*model.User, error)
	addFollowEdgeFn      func(ctx context.Context, followerID, targetID string) error
	removeFollowEdgeFn   func(ctx context.Context, followerID, targetID string) error
	updatePrivacyFn      func(ctx context.Context, userID string, isPrivate bool, settings model.PrivacySettings) error
	updateProfileFn      func(ctx context.Context, userID string, displayName, birthday *string) error
	listTwinCandidatesFn func(ctx context.Context, viewerID string) ([]*model.User, error)
}

func newMockUserRepo(users ...*model.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return m.users[id], nil
}

func (m *mockUserRepo) GetMany(ctx context.Context, ids []string) (map[string]*model.User, error) {
	out := make(map[string]*model.User)
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out[id] = u
		}
	}
	return out, nil
}

func (m *mockUserRepo) AddFollowEdge(ctx context.Context, followerID, targetID string) error {
	if m.addFollowEdgeFn != nil {
		return m.addFollowEdgeFn(ctx, followerID, targetID)
	}
	m.users[followerID].Following.Add(targetID)
	m.users[targetID].Followers.Add(followerID)
	return nil
}

func (m *mockUserRepo) RemoveFollowEdge(ctx context.Context, followerID, targetID string) error {
	if m.removeFollowEdgeFn != nil {
		return m.removeFollowEdgeFn(ctx, followerID, targetID)
	}
	m.users[followerID].Following.Remove(targetID)
	m.users[targetID].Followers.Remove(followerID)
	return nil
}

func (m *mockUserRepo) UpdatePrivacy(ctx context.Context, userID string, isPrivate bool, settings model.PrivacySettings) error {
	if m.updatePrivacyFn != nil {
		return m.updatePrivacyFn(ctx, userID, isPrivate, settings)
	}
	u := m.users[userID]
	u.IsPrivate = isPrivate
	u.PrivacySettings = settings
	return nil
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, userID string, displayName, birthday *string) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, displayName, birthday)
	}
	u := m.users[userID]
	u.DisplayName = displayName
	u.Birthday = birthday
	return nil
}

func (m *mockUserRepo) ListTwinCandidates(ctx context.Context, viewerID string) ([]*model.User, error) {
	if m.listTwinCandidatesFn != nil {
		return m.listTwinCandidatesFn(ctx, viewerID)
	}
	out := make([]*model.User, 0)
	for _, u := range m.users {
		if u.ID == viewerID || u.Birthday == nil || !u.PrivacySettings.AllowTwinSearch {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// mockAdventureRepo implements adventure storage with function fields
type mockAdventureRepo struct {
	adventures map[string]*model.Adventure

	createFn        func(ctx context.Context, adventure *model.Adventure) error
	getByIDFn       func(ctx context.Context, id string) (*model.Adventure, error)
	listRecentFn    func(ctx context.Context, limit, offset int) ([]*model.Adventure, error)
	setInterestedFn func(ctx context.Context, adventureID, userID string, interested bool) error
}

func newMockAdventureRepo(adventures ...*model.Adventure) *mockAdventureRepo {
	m := &mockAdventureRepo{adventures: make(map[string]*model.Adventure)}
	for _, a := range adventures {
		m.adventures[a.ID] = a
	}
	return m
}

func (m *mockAdventureRepo) Create(ctx context.Context, adventure *model.Adventure) error {
	if m.createFn != nil {
		return m.createFn(ctx, adventure)
	}
	if adventure.ID == "" {
		adventure.ID = "adventure:generated"
	}
	m.adventures[adventure.ID] = adventure
	return nil
}

func (m *mockAdventureRepo) GetByID(ctx context.Context, id string) (*model.Adventure, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return m.adventures[id], nil
}

func (m *mockAdventureRepo) ListRecent(ctx context.Context, limit, offset int) ([]*model.Adventure, error) {
	if m.listRecentFn != nil {
		return m.listRecentFn(ctx, limit, offset)
	}
	out := make([]*model.Adventure, 0, len(m.adventures))
	for _, a := range m.adventures {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAdventureRepo) ListByAuthor(ctx context.Context, authorID string, limit, offset int) ([]*model.Adventure, error) {
	out := make([]*model.Adventure, 0)
	for _, a := range m.adventures {
		if a.AuthorID == authorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAdventureRepo) SetInterested(ctx context.Context, adventureID, userID string, interested bool) error {
	if m.setInterestedFn != nil {
		return m.setInterestedFn(ctx, adventureID, userID, interested)
	}
	if interested {
		m.adventures[adventureID].InterestedUsers.Add(userID)
	} else {
		m.adventures[adventureID].InterestedUsers.Remove(userID)
	}
	return nil
}

// mockNotificationRepo implements notification storage with function fields
type mockNotificationRepo struct {
	notifications map[string]*model.Notification
	created       []*model.Notification

	createFn      func(ctx context.Context, n *model.Notification) error
	getByIDFn     func(ctx context.Context, id string) (*model.Notification, error)
	rateInvitesFn func(ctx context.Context, recipientID, adventureID string) ([]*model.Notification, error)
}

func newMockNotificationRepo(notifications ...*model.Notification) *mockNotificationRepo {
	m := &mockNotificationRepo{notifications: make(map[string]*model.Notification)}
	for _, n := range notifications {
		m.notifications[n.ID] = n
	}
	return m
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *model.Notification) error {
	if m.createFn != nil {
		return m.createFn(ctx, n)
	}
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepo) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return m.notifications[id], nil
}

func (m *mockNotificationRepo) RateInvites(ctx context.Context, recipientID, adventureID string) ([]*model.Notification, error) {
	if m.rateInvitesFn != nil {
		return m.rateInvitesFn(ctx, recipientID, adventureID)
	}
	out := make([]*model.Notification, 0)
	for _, n := range m.notifications {
		if n.Type == model.NotificationRateExperience && n.RecipientID == recipientID &&
			n.AdventureID != nil && *n.AdventureID == adventureID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) ListForRecipient(ctx context.Context, recipientID string, limit, offset int) ([]*model.Notification, error) {
	out := make([]*model.Notification, 0)
	for _, n := range m.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) error {
	for _, n := range m.notifications {
		if n.RecipientID == recipientID {
			n.Read = true
		}
	}
	return nil
}

// mockWorkflowRepo records workflow transitions so tests can assert on the
// exact batch the service would commit
type mockWorkflowRepo struct {
	markDoneFn    func(ctx context.Context, attendeeID string, log model.ActivityLog, request *model.Notification) error
	confirmFn     func(ctx context.Context, attendeeID string, log model.ActivityLog, requestID string, confirmed, rateInvite *model.Notification) error
	denyFn        func(ctx context.Context, attendeeID string, log model.ActivityLog, requestID string) error
	applyRatingFn func(ctx context.Context, authorID string, average float64, count int, inviteIDs []string) error
}

func (m *mockWorkflowRepo) MarkDone(ctx context.Context, attendeeID string, log model.ActivityLog, request *model.Notification) error {
	if m.markDoneFn != nil {
		return m.markDoneFn(ctx, attendeeID, log, request)
	}
	return nil
}

func (m *mockWorkflowRepo) Confirm(ctx context.Context, attendeeID string, log model.ActivityLog, requestID string, confirmed, rateInvite *model.Notification) error {
	if m.confirmFn != nil {
		return m.confirmFn(ctx, attendeeID, log, requestID, confirmed, rateInvite)
	}
	return nil
}

func (m *mockWorkflowRepo) Deny(ctx context.Context, attendeeID string, log model.ActivityLog, requestID string) error {
	if m.denyFn != nil {
		return m.denyFn(ctx, attendeeID, log, requestID)
	}
	return nil
}

func (m *mockWorkflowRepo) ApplyRating(ctx context.Context, authorID string, average float64, count int, inviteIDs []string) error {
	if m.applyRatingFn != nil {
		return m.applyRatingFn(ctx, authorID, average, count, inviteIDs)
	}
	return nil
}

// Test data builders

func testUser(id string) *model.User {
	return &model.User{
		ID:              id,
		Username:        strPtr(id),
		PrivacySettings: model.DefaultPrivacySettings(),
		Following:       model.NewIDSet(),
		Followers:       model.NewIDSet(),
		ActivityLog:     make(model.ActivityLog),
	}
}

func testAdventure(id, authorID string, privacy model.AdventurePrivacy) *model.Adventure {
	return &model.Adventure{
		ID:              id,
		AuthorID:        authorID,
		Title:           "Test Adventure",
		Privacy:         privacy,
		StartDate:       time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		InterestedUsers: model.NewIDSet(),
	}
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
