package availability

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/shiftease/shiftease-web/internal/domain/user"
	"github.com/shiftease/shiftease-web/internal/policy"
	"github.com/shiftease/shiftease-web/internal/session"
)

type Service struct {
	users user.Gateway
}

func NewService(users user.Gateway) *Service {
	return &Service{users: users}
}

// Editable reports whether the viewer may change the target user's
// availability. Viewing your own record is read-only; editing somebody
// else's requires the elevated capability.
func Editable(viewer session.Session, targetUserID string) bool {
	return viewer.UserID != targetUserID && viewer.Can(policy.CapAvailabilityEditOthers)
}

// List returns the user's entries in Monday..Sunday display order
// regardless of insertion order.
func (s *Service) List(ctx context.Context, userID string) ([]user.AvailabilityEntry, error) {
	entries, err := s.users.Availability(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SortByDay(entries), nil
}

// SortByDay orders entries by the fixed day-of-week sequence. Unknown
// day values sink to the end. The sort is stable.
func SortByDay(entries []user.AvailabilityEntry) []user.AvailabilityEntry {
	rank := make(map[string]int, len(user.DaysOfWeek))
	for i, day := range user.DaysOfWeek {
		rank[day] = i
	}

	sorted := make([]user.AvailabilityEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, iok := rank[sorted[i].Day]
		rj, jok := rank[sorted[j].Day]
		if !iok {
			ri = len(user.DaysOfWeek)
		}
		if !jok {
			rj = len(user.DaysOfWeek)
		}
		return ri < rj
	})
	return sorted
}

// Add creates an entry, generating the row id on this side the way the
// availability form always has. The server keeps or replaces the id.
func (s *Service) Add(ctx context.Context, userID string, req user.AvailabilityRequest) ([]user.AvailabilityEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.ID = uuid.NewString()

	entries, err := s.users.AddAvailability(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return SortByDay(entries), nil
}

func (s *Service) Update(ctx context.Context, userID, entryID string, req user.AvailabilityRequest) ([]user.AvailabilityEntry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.users.UpdateAvailability(ctx, userID, entryID, req)
	if err != nil {
		return nil, err
	}
	return SortByDay(entries), nil
}

func (s *Service) Delete(ctx context.Context, userID, entryID string) ([]user.AvailabilityEntry, error) {
	entries, err := s.users.DeleteAvailability(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	return SortByDay(entries), nil
}
