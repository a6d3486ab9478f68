package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"boxoffice/internal/core/application/usecases/commands"
	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func completeOrder(t *testing.T) func(args mock.Arguments) {
	t.Helper()
	return func(args mock.Arguments) {
		o := args.Get(1).(*order.Order)
		require.NoError(t, o.StartValidation())
		require.NoError(t, o.StartPricing())
		require.NoError(t, o.StartDiscounts())
		require.NoError(t, o.StartPayment())
		require.NoError(t, o.MarkPaid())
		require.NoError(t, o.Complete())
	}
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	s := mustSession(t)
	require.NoError(t, s.SelectSeat(mustSeat(t, "A1")))
	cmd, err := commands.NewSubmitOrderCommand(s.ID(), "card", "", nil)
	require.NoError(t, err)

	store := new(MockSessionStore)
	store.On("Get", ctx, s.ID()).Return(s, nil).Once()
	processor := new(MockOrderProcessor)
	processor.On("Submit", ctx, mock.AnythingOfType("*order.Order")).
		Run(completeOrder(t)).Return(nil).Once()
	holds := new(MockSeatHoldStore)
	holds.On("ReleaseAll", ctx, mock.Anything, s.ID()).Return(nil).Once()
	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderCompleted", ctx, mock.AnythingOfType("ports.OrderCompletedEvent")).
		Return(nil).Once()

	h := commands.NewSubmitOrderCommandHandler(store, processor, holds, publisher, testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, s.CurrentOrder())
	assert.Equal(t, order.Completed, s.CurrentOrder().Status())
	processor.AssertExpectations(t)
	holds.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_PublishedEventCarriesSeats(t *testing.T) {
	ctx := t.Context()
	s := mustSession(t)
	require.NoError(t, s.SelectSeat(mustSeat(t, "A1")))
	require.NoError(t, s.SelectSeat(mustSeat(t, "B2")))
	cmd, err := commands.NewSubmitOrderCommand(s.ID(), "card", "", nil)
	require.NoError(t, err)

	store := new(MockSessionStore)
	store.On("Get", ctx, s.ID()).Return(s, nil).Once()
	processor := new(MockOrderProcessor)
	processor.On("Submit", ctx, mock.Anything).Run(completeOrder(t)).Return(nil).Once()
	holds := new(MockSeatHoldStore)
	holds.On("ReleaseAll", ctx, mock.Anything, s.ID()).Return(nil).Once()

	var published ports.OrderCompletedEvent
	publisher := new(MockEventPublisher)
	publisher.On("PublishOrderCompleted", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(ports.OrderCompletedEvent)
		}).Return(nil).Once()

	h := commands.NewSubmitOrderCommandHandler(store, processor, holds, publisher, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, []string{"A1", "B2"}, published.Seats)
	assert.Equal(t, s.ID().String(), published.SessionID)
	assert.False(t, published.CompletedAt.IsZero())
}

func TestSubmitOrderCommandHandler_Handle_FailedRunKeepsOrder(t *testing.T) {
	ctx := t.Context()
	s := mustSession(t)
	require.NoError(t, s.SelectSeat(mustSeat(t, "A1")))
	cmd, err := commands.NewSubmitOrderCommand(s.ID(), "card", "", nil)
	require.NoError(t, err)

	store := new(MockSessionStore)
	store.On("Get", ctx, s.ID()).Return(s, nil).Once()
	processor := new(MockOrderProcessor)
	processor.On("Submit", ctx, mock.Anything).Run(func(args mock.Arguments) {
		o := args.Get(1).(*order.Order)
		require.NoError(t, o.StartValidation())
		require.NoError(t, o.Fail("insufficient stock or seats"))
	}).Return(nil).Once()

	// No hold or publisher expectations: a failed run must not touch them.
	h := commands.NewSubmitOrderCommandHandler(store, processor,
		new(MockSeatHoldStore), new(MockEventPublisher), testLogger())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, s.CurrentOrder())
	assert.Equal(t, order.Failed, s.CurrentOrder().Status())
	assert.Equal(t, "insufficient stock or seats", s.CurrentOrder().ErrorMessage())
}

func TestSubmitOrderCommandHandler_Handle_EmptySelection(t *testing.T) {
	ctx := t.Context()
	s := mustSession(t)
	cmd, err := commands.NewSubmitOrderCommand(s.ID(), "card", "", nil)
	require.NoError(t, err)

	store := new(MockSessionStore)
	store.On("Get", ctx, s.ID()).Return(s, nil).Once()

	h := commands.NewSubmitOrderCommandHandler(store, new(MockOrderProcessor),
		new(MockSeatHoldStore), new(MockEventPublisher), testLogger())
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderHasNoItems)
}

func TestSubmitOrderCommandHandler_Handle_SessionNotFound(t *testing.T) {
	ctx := t.Context()
	s := mustSession(t)
	cmd, err := commands.NewSubmitOrderCommand(s.ID(), "card", "", nil)
	require.NoError(t, err)

	store := new(MockSessionStore)
	store.On("Get", ctx, s.ID()).Return(nil, errors.New("session not found")).Once()

	h := commands.NewSubmitOrderCommandHandler(store, new(MockOrderProcessor),
		new(MockSeatHoldStore), new(MockEventPublisher), testLogger())
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
}

func TestNewSubmitOrderCommand_MissingPaymentMethod(t *testing.T) {
	s := mustSession(t)

	_, err := commands.NewSubmitOrderCommand(s.ID(), "", "", nil)

	require.ErrorIs(t, err, commands.ErrPaymentMethodIsRequired)
}
