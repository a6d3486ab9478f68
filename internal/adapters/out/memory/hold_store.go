package memory

import (
	"context"
	"sync"
	"time"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/ports"
	"boxoffice/internal/pkg/errs"
)

type hold struct {
	sessionID kernel.UUID
	expiresAt time.Time
}

// HoldStore keeps seat holds in memory with explicit expiry timestamps.
// Expired holds are dropped lazily on access and in bulk by PurgeExpired,
// which the hold expiration job calls on a schedule.
type HoldStore struct {
	mu    sync.Mutex
	holds map[string]hold
	now   func() time.Time
}

// NewHoldStore creates an empty in-memory seat hold store.
func NewHoldStore() *HoldStore {
	return &HoldStore{
		holds: make(map[string]hold),
		now:   time.Now,
	}
}

// Place reserves the seat for the session until the TTL elapses.
func (s *HoldStore) Place(_ context.Context, seat kernel.SeatID, sessionID kernel.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := seat.String()
	if existing, ok := s.holds[key]; ok && existing.expiresAt.After(s.now()) {
		if !existing.sessionID.IsEqual(sessionID) {
			return ports.ErrSeatAlreadyHeld
		}
	}

	s.holds[key] = hold{sessionID: sessionID, expiresAt: s.now().Add(ttl)}
	return nil
}

// Release drops the session's hold on the seat.
func (s *HoldStore) Release(_ context.Context, seat kernel.SeatID, sessionID kernel.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := seat.String()
	if existing, ok := s.holds[key]; ok && existing.sessionID.IsEqual(sessionID) {
		delete(s.holds, key)
	}

	return nil
}

// ReleaseAll drops the session's holds on every given seat.
func (s *HoldStore) ReleaseAll(ctx context.Context, seats []kernel.SeatID, sessionID kernel.UUID) error {
	for _, seat := range seats {
		if err := s.Release(ctx, seat, sessionID); err != nil {
			return err
		}
	}

	return nil
}

// Holder returns the session currently holding the seat.
func (s *HoldStore) Holder(_ context.Context, seat kernel.SeatID) (kernel.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.holds[seat.String()]
	if !ok || !existing.expiresAt.After(s.now()) {
		return kernel.UUID{}, errs.NewObjectNotFoundError("seat hold", seat.String())
	}

	return existing.sessionID, nil
}

// PurgeExpired removes every expired hold and reports how many were dropped.
func (s *HoldStore) PurgeExpired(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	purged := 0
	now := s.now()
	for key, existing := range s.holds {
		if !existing.expiresAt.After(now) {
			delete(s.holds, key)
			purged++
		}
	}

	return purged, nil
}
