// Package redisstore implements the seat hold store on Redis. Hold expiry
// rides on Redis key TTLs, so abandoned holds disappear without any
// sweeping on our side.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/ports"
	"boxoffice/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const holdNS = "boxoffice:v1:holds"

func keyHold(seat kernel.SeatID) string {
	return fmt.Sprintf("%s:%s", holdNS, seat.String())
}

// HoldStore keeps seat holds as Redis keys: one key per held seat, value
// is the holding session's ID, TTL is the hold lifetime.
type HoldStore struct {
	rdb *redis.Client
}

// NewHoldStore creates a Redis-backed seat hold store.
func NewHoldStore(rdb *redis.Client) *HoldStore {
	return &HoldStore{rdb: rdb}
}

// Place reserves the seat with SETNX semantics. When the key already
// exists it either refreshes the TTL (same session) or reports the
// conflict (another session).
func (s *HoldStore) Place(ctx context.Context, seat kernel.SeatID, sessionID kernel.UUID, ttl time.Duration) error {
	ok, err := s.rdb.SetNX(ctx, keyHold(seat), sessionID.String(), ttl).Result()
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	holder, err := s.rdb.Get(ctx, keyHold(seat)).Result()
	if errors.Is(err, redis.Nil) {
		// The competing hold expired between SETNX and GET; retry once.
		ok, err = s.rdb.SetNX(ctx, keyHold(seat), sessionID.String(), ttl).Result()
		if err != nil {
			return err
		}
		if !ok {
			return ports.ErrSeatAlreadyHeld
		}
		return nil
	}
	if err != nil {
		return err
	}

	if holder != sessionID.String() {
		return ports.ErrSeatAlreadyHeld
	}

	return s.rdb.Expire(ctx, keyHold(seat), ttl).Err()
}

// Release drops the hold if this session owns it.
func (s *HoldStore) Release(ctx context.Context, seat kernel.SeatID, sessionID kernel.UUID) error {
	holder, err := s.rdb.Get(ctx, keyHold(seat)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}

	if holder != sessionID.String() {
		return nil
	}

	return s.rdb.Del(ctx, keyHold(seat)).Err()
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

// Holder returns the session holding the seat.
func (s *HoldStore) Holder(ctx context.Context, seat kernel.SeatID) (kernel.UUID, error) {
	holder, err := s.rdb.Get(ctx, keyHold(seat)).Result()
	if errors.Is(err, redis.Nil) {
		return kernel.UUID{}, errs.NewObjectNotFoundError("seat hold", seat.String())
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromString(holder)
}

// PurgeExpired is a no-op: Redis drops expired keys on its own.
func (s *HoldStore) PurgeExpired(_ context.Context) (int, error) {
	return 0, nil
}
