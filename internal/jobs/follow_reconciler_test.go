package jobs

import (
	"context"
	"testing"

	"github.com/forgo/roam/api/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users    map[string]*model.User
	repaired [][2]string
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*model.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*model.User, error) {
	out := make([]*model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) AddFollowEdge(ctx context.Context, followerID, targetID string) error {
	r.repaired = append(r.repaired, [2]string{followerID, targetID})
	r.users[followerID].Following.Add(targetID)
	r.users[targetID].Followers.Add(followerID)
	return nil
}

func user(id string) *model.User {
	return &model.User{
		ID:        id,
		Following: model.NewIDSet(),
		Followers: model.NewIDSet(),
	}
}

func TestRunOnce_RepairsMissingBackwardLeg(t *testing.T) {
	// alice.following has bob, but bob.followers lost alice
	alice := user("user:alice")
	bob := user("user:bob")
	alice.Following.Add(bob.ID)

	repo := newFakeUserRepo(alice, bob)
	reconciler := NewFollowReconciler(repo, nil, 0)

	require.NoError(t, reconciler.RunOnce(context.Background()))

	require.Len(t, repo.repaired, 1)
	assert.Equal(t, [2]string{alice.ID, bob.ID}, repo.repaired[0])
	assert.True(t, bob.IsFollowedBy(alice.ID))
}

func TestRunOnce_RepairsMissingForwardLeg(t *testing.T) {
	// bob.followers has alice, but alice.following lost bob
	alice := user("user:alice")
	bob := user("user:bob")
	bob.Followers.Add(alice.ID)

	repo := newFakeUserRepo(alice, bob)
	reconciler := NewFollowReconciler(repo, nil, 0)

	require.NoError(t, reconciler.RunOnce(context.Background()))

	require.Len(t, repo.repaired, 1)
	assert.Equal(t, [2]string{alice.ID, bob.ID}, repo.repaired[0])
	assert.True(t, alice.IsFollowing(bob.ID))
}

func TestRunOnce_SymmetricGraphUntouched(t *testing.T) {
	alice := user("user:alice")
	bob := user("user:bob")
	alice.Following.Add(bob.ID)
	bob.Followers.Add(alice.ID)

	repo := newFakeUserRepo(alice, bob)
	reconciler := NewFollowReconciler(repo, nil, 0)

	require.NoError(t, reconciler.RunOnce(context.Background()))
	assert.Empty(t, repo.repaired)
}

func TestRunOnce_RepairsEachEdgeOnce(t *testing.T) {
	// Half edges in both directions between the same pair must not be
	// double-repaired
	alice := user("user:alice")
	bob := user("user:bob")
	alice.Following.Add(bob.ID)

	repo := newFakeUserRepo(alice, bob)
	reconciler := NewFollowReconciler(repo, nil, 0)

	require.NoError(t, reconciler.RunOnce(context.Background()))
	require.NoError(t, reconciler.RunOnce(context.Background()))

	assert.Len(t, repo.repaired, 1, "second sweep should find nothing to repair")
}

func TestReconcileChanged_RepairsAroundOneUser(t *testing.T) {
	alice := user("user:alice")
	bob := user("user:bob")
	carol := user("user:carol")
	// alice -> bob half edge, carol -> alice half edge
	alice.Following.Add(bob.ID)
	alice.Followers.Add(carol.ID)

	repo := newFakeUserRepo(alice, bob, carol)
	reconciler := NewFollowReconciler(repo, nil, 0)

	reconciler.reconcileChanged(context.Background(), alice.ID)

	assert.Len(t, repo.repaired, 2)
	assert.True(t, bob.IsFollowedBy(alice.ID))
	assert.True(t, carol.IsFollowing(alice.ID))
}

func TestStartStop(t *testing.T) {
	repo := newFakeUserRepo()
	reconciler := NewFollowReconciler(repo, nil, 0)

	reconciler.Start()
	assert.True(t, reconciler.IsRunning())

	reconciler.Stop()
	assert.False(t, reconciler.IsRunning())
}
