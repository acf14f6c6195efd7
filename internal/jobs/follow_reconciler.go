package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/forgo/roam/api/internal/database"
	"github.com/forgo/roam/api/internal/model"
	"github.com/forgo/roam/api/internal/observability"
)

// ReconcilerUserRepository defines the user storage the reconciler needs
type ReconcilerUserRepository interface {
	List(ctx context.Context) ([]*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	AddFollowEdge(ctx context.Context, followerID, targetID string) error
}

// FollowReconciler repairs asymmetric follow edges. The API only ever
// writes both legs of an edge in one transaction, so asymmetry means an
// external writer touched a follow list directly. Repair policy: a half
// edge becomes a full edge, since AddFollowEdge is idempotent on the leg
// that survived.
//
// Two detection paths feed the same repair: a periodic full sweep, and
// live change events on the user table when the store supports them.
type FollowReconciler struct {
	users      ReconcilerUserRepository
	subscriber database.Subscriber
	interval   time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	running    bool
	mu         sync.Mutex
}

// NewFollowReconciler creates a new follow reconciler. subscriber may be
// nil, leaving only the periodic sweep.
func NewFollowReconciler(users ReconcilerUserRepository, subscriber database.Subscriber, interval time.Duration) *FollowReconciler {
	if interval == 0 {
		interval = 5 * time.Minute
	}
	return &FollowReconciler{
		users:      users,
		subscriber: subscriber,
		interval:   interval,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the reconciler
func (p *FollowReconciler) Start() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	p.mu.Unlock()

	p.wg.Add(1)
	go p.run()

	if p.subscriber != nil {
		p.wg.Add(1)
		go p.watch()
	}

	slog.Info("follow reconciler started", slog.Duration("interval", p.interval))
}

// Stop gracefully stops the reconciler
func (p *FollowReconciler) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.mu.Unlock()

	close(p.stopCh)
	p.wg.Wait()
	slog.Info("follow reconciler stopped")
}

// IsRunning returns whether the reconciler is running
func (p *FollowReconciler) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}

// run is the periodic sweep loop
func (p *FollowReconciler) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.sweep()
		case <-p.stopCh:
			return
		}
	}
}

// watch consumes live change events on the user table
func (p *FollowReconciler) watch() {
	defer p.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.subscriber.Subscribe(ctx, "user")
	if err != nil {
		slog.Warn("follow reconciler: live subscription unavailable, sweep only",
			slog.String("error", err.Error()))
		<-p.stopCh
		return
	}

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Action == database.ChangeDelete {
				continue
			}
			if data, ok := event.Data.(map[string]interface{}); ok {
				p.reconcileChanged(ctx, recordID(data["id"]))
			}
		case <-p.stopCh:
			return
		}
	}
}

// RunOnce performs one full sweep (for testing or manual trigger)
func (p *FollowReconciler) RunOnce(ctx context.Context) error {
	users, err := p.users.List(ctx)
	if err != nil {
		return err
	}

	index := make(map[string]*model.User, len(users))
	for _, u := range users {
		index[u.ID] = u
	}

	for _, u := range users {
		p.repairUser(ctx, u, index)
	}
	return nil
}

func (p *FollowReconciler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := p.RunOnce(ctx); err != nil {
		slog.Error("follow reconciler sweep failed", slog.String("error", err.Error()))
	}
}

// reconcileChanged re-reads the changed user and its counterparts and
// repairs any half edges touching it
func (p *FollowReconciler) reconcileChanged(ctx context.Context, userID string) {
	if userID == "" {
		return
	}

	user, err := p.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		return
	}

	for _, targetID := range user.Following.Values() {
		target, err := p.users.GetByID(ctx, targetID)
		if err != nil || target == nil {
			continue
		}
		if !target.IsFollowedBy(user.ID) {
			p.repair(ctx, user.ID, targetID)
		}
	}
	for _, followerID := range user.Followers.Values() {
		follower, err := p.users.GetByID(ctx, followerID)
		if err != nil || follower == nil {
			continue
		}
		if !follower.IsFollowing(user.ID) {
			p.repair(ctx, followerID, user.ID)
		}
	}
}

// repairUser checks the forward legs of one user against the index
func (p *FollowReconciler) repairUser(ctx context.Context, user *model.User, index map[string]*model.User) {
	for _, targetID := range user.Following.Values() {
		target, ok := index[targetID]
		if !ok {
			continue
		}
		if !target.IsFollowedBy(user.ID) {
			p.repair(ctx, user.ID, targetID)
			// Keep the in-memory index consistent so the reverse pass
			// does not re-report the same edge
			target.Followers.Add(user.ID)
		}
	}
	for _, followerID := range user.Followers.Values() {
		follower, ok := index[followerID]
		if !ok {
			continue
		}
		if !follower.IsFollowing(user.ID) {
			p.repair(ctx, followerID, user.ID)
			follower.Following.Add(user.ID)
		}
	}
}

func (p *FollowReconciler) repair(ctx context.Context, followerID, targetID string) {
	if err := p.users.AddFollowEdge(ctx, followerID, targetID); err != nil {
		slog.Error("follow edge repair failed",
			slog.String("follower_id", followerID),
			slog.String("target_id", targetID),
			slog.String("error", err.Error()),
		)
		return
	}

	observability.RecordFollowRepair()
	slog.Warn("repaired asymmetric follow edge",
		slog.String("follower_id", followerID),
		slog.String("target_id", targetID),
	)
}

// recordID renders a raw record id value from a change event as a string
func recordID(v interface{}) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	default:
		return fmt.Sprintf("%v", id)
	}
}
