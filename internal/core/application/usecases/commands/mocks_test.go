package commands_test

import (
	"context"
	"time"

	"boxoffice/internal/core/application/usecases/commands"
	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/core/domain/model/session"
	"boxoffice/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Add(ctx context.Context, s *session.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockSessionStore) GetAll(ctx context.Context) ([]*session.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*session.Session), args.Error(1)
}

type MockSeatRepository struct{ mock.Mock }

func (m *MockSeatRepository) MarkSold(ctx context.Context, orderID kernel.UUID, seats []kernel.SeatID) error {
	args := m.Called(ctx, orderID, seats)
	return args.Error(0)
}

func (m *MockSeatRepository) UnmarkSold(ctx context.Context, seats []kernel.SeatID) error {
	args := m.Called(ctx, seats)
	return args.Error(0)
}

func (m *MockSeatRepository) IsSold(ctx context.Context, seat kernel.SeatID) (bool, error) {
	args := m.Called(ctx, seat)
	return args.Bool(0), args.Error(1)
}

func (m *MockSeatRepository) GetAllSold(ctx context.Context) ([]kernel.SeatID, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.SeatID), args.Error(1)
}

type MockSeatHoldStore struct{ mock.Mock }

func (m *MockSeatHoldStore) Place(ctx context.Context, seat kernel.SeatID, sessionID kernel.UUID, ttl time.Duration) error {
	args := m.Called(ctx, seat, sessionID, ttl)
	return args.Error(0)
}

func (m *MockSeatHoldStore) Release(ctx context.Context, seat kernel.SeatID, sessionID kernel.UUID) error {
	args := m.Called(ctx, seat, sessionID)
	return args.Error(0)
}

func (m *MockSeatHoldStore) ReleaseAll(ctx context.Context, seats []kernel.SeatID, sessionID kernel.UUID) error {
	args := m.Called(ctx, seats, sessionID)
	return args.Error(0)
}

func (m *MockSeatHoldStore) Holder(ctx context.Context, seat kernel.SeatID) (kernel.UUID, error) {
	args := m.Called(ctx, seat)
	return args.Get(0).(kernel.UUID), args.Error(1)
}

func (m *MockSeatHoldStore) PurgeExpired(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockSeatUoW struct{ mock.Mock }

func (m *MockSeatUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSeatUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSeatUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSeatUoW) SeatRepository() ports.SeatRepository {
	args := m.Called()
	return args.Get(0).(ports.SeatRepository)
}

type MockSeatUoWFactory struct{ mock.Mock }

func (m *MockSeatUoWFactory) Create() commands.SeatUoW {
	args := m.Called()
	return args.Get(0).(commands.SeatUoW)
}

type MockOrderProcessor struct{ mock.Mock }

func (m *MockOrderProcessor) Submit(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderCompleted(ctx context.Context, event ports.OrderCompletedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
