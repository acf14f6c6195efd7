package service

import (
	"context"
	"sort"

	"github.com/forgo/roam/api/internal/model"
)

// TwinMode selects how birthdays are compared
type TwinMode string

const (
	TwinModeExact       TwinMode = "exact"         // Full YYYY-MM-DD equality
	TwinModeDayAndMonth TwinMode = "day_and_month" // MM-DD equality only
)

// ValidTwinMode reports whether m is a known comparison mode
func ValidTwinMode(m TwinMode) bool {
	return m == TwinModeExact || m == TwinModeDayAndMonth
}

// FindTwins filters candidates to the viewer's birthday twins. Candidates
// without a birthday, without the twin-search opt-in, or equal to the viewer
// are skipped. The viewer must have a birthday set.
//
// Results are sorted by username (then id) purely for deterministic output;
// no ordering is semantically required.
func FindTwins(viewer *model.User, candidates []*model.User, mode TwinMode) ([]*model.User, error) {
	if !ValidTwinMode(mode) {
		return nil, ErrInvalidTwinMode
	}
	if viewer.Birthday == nil {
		return nil, ErrMissingBirthday
	}

	twins := make([]*model.User, 0)
	for _, candidate := range candidates {
		if candidate.ID == viewer.ID {
			continue
		}
		if candidate.Birthday == nil {
			continue
		}
		if !candidate.PrivacySettings.AllowTwinSearch {
			continue
		}

		match := false
		switch mode {
		case TwinModeExact:
			match = *candidate.Birthday == *viewer.Birthday
		case TwinModeDayAndMonth:
			match = birthdaysShareMonthDay(viewer, candidate)
		}
		if match {
			twins = append(twins, candidate)
		}
	}

	sort.Slice(twins, func(i, j int) bool {
		a, b := twins[i], twins[j]
		an, bn := "", ""
		if a.Username != nil {
			an = *a.Username
		}
		if b.Username != nil {
			bn = *b.Username
		}
		if an != bn {
			return an < bn
		}
		return a.ID < b.ID
	})
	return twins, nil
}

// TwinUserRepository defines the user storage needed for twin search
type TwinUserRepository interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	ListTwinCandidates(ctx context.Context, viewerID string) ([]*model.User, error)
}

// TwinService handles birthday twin lookups
type TwinService struct {
	users TwinUserRepository
}

// TwinServiceConfig holds configuration for the twin service
type TwinServiceConfig struct {
	Users TwinUserRepository
}

// NewTwinService creates a new twin service
func NewTwinService(cfg TwinServiceConfig) *TwinService {
	return &TwinService{users: cfg.Users}
}

// FindTwins retrieves the viewer's birthday twins among opted-in users
func (s *TwinService) FindTwins(ctx context.Context, viewerID string, mode TwinMode) ([]*model.User, error) {
	if !ValidTwinMode(mode) {
		return nil, ErrInvalidTwinMode
	}

	viewer, err := s.users.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer == nil {
		return nil, ErrUserNotFound
	}
	if viewer.Birthday == nil {
		return nil, ErrMissingBirthday
	}

	candidates, err := s.users.ListTwinCandidates(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	return FindTwins(viewer, candidates, mode)
}
