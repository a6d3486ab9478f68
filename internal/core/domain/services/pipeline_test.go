package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/order"
	"boxoffice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAvailabilityChecker struct{ mock.Mock }

func (m *MockAvailabilityChecker) CheckAvailability(ctx context.Context, seats []kernel.SeatID) (bool, error) {
	args := m.Called(ctx, seats)
	return args.Bool(0), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) Charge(ctx context.Context, paymentMethod string, amount float64) error {
	args := m.Called(ctx, paymentMethod, amount)
	return args.Error(0)
}

type MockTicketIssuer struct{ mock.Mock }

func (m *MockTicketIssuer) Issue(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockStockCommitter struct{ mock.Mock }

func (m *MockStockCommitter) Commit(ctx context.Context, orderID kernel.UUID, seats []kernel.SeatID) error {
	args := m.Called(ctx, orderID, seats)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ticket(t *testing.T, seat string) order.TicketItem {
	t.Helper()
	seatID, err := kernel.SeatIDFromString(seat)
	require.NoError(t, err)
	item, err := order.NewTicketItem(seatID, order.DefaultTicketPrice)
	require.NoError(t, err)
	return item
}

func concession(t *testing.T, name string, quantity int, unitPrice float64) order.ConcessionItem {
	t.Helper()
	item, err := order.NewConcessionItem(name, quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func newOrder(t *testing.T, tickets []order.TicketItem, concessions []order.ConcessionItem, paymentMethod, coupon string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), tickets, concessions, paymentMethod, coupon)
	require.NoError(t, err)
	return o
}

func allowAll() *MockAvailabilityChecker {
	checker := new(MockAvailabilityChecker)
	checker.On("CheckAvailability", mock.Anything, mock.Anything).Return(true, nil)
	return checker
}

func TestPipeline_Submit(t *testing.T) {
	t.Run("should complete a plain card order", func(t *testing.T) {
		tickets := []order.TicketItem{ticket(t, "A1"), ticket(t, "A2")}
		o := newOrder(t, tickets, nil, "card", "")

		gateway := new(MockPaymentGateway)
		gateway.On("Charge", mock.Anything, "card", 23800.0).Return(nil).Once()
		issuer := new(MockTicketIssuer)
		issuer.On("Issue", mock.Anything, o).Return(nil).Once()
		committer := new(MockStockCommitter)
		committer.On("Commit", mock.Anything, o.ID(), o.SeatIDs()).Return(nil).Once()

		pipeline := services.NewDefaultPipeline(testLogger(), allowAll(), gateway, issuer, committer)
		require.NoError(t, pipeline.Submit(t.Context(), o))

		assert.Equal(t, order.Completed, o.Status())
		assert.InDelta(t, 20000.0, o.Subtotal(), 1e-9)
		assert.InDelta(t, 3800.0, o.Tax(), 1e-9)
		assert.InDelta(t, 0.0, o.Discount(), 1e-9)
		assert.InDelta(t, 23800.0, o.Total(), 1e-9)
		gateway.AssertExpectations(t)
		issuer.AssertExpectations(t)
		committer.AssertExpectations(t)
	})

	t.Run("should stack coupon and concession discounts", func(t *testing.T) {
		tickets := []order.TicketItem{ticket(t, "B1")}
		concessions := []order.ConcessionItem{concession(t, "popcorn", 2, 5000)}
		o := newOrder(t, tickets, concessions, "card", services.CouponCode)

		// subtotal 20000, tax 3800, coupon takes 4000, concessions take 2.
		gateway := new(MockPaymentGateway)
		gateway.On("Charge", mock.Anything, "card", mock.Anything).Return(nil).Once()
		issuer := new(MockTicketIssuer)
		issuer.On("Issue", mock.Anything, o).Return(nil).Once()
		committer := new(MockStockCommitter)
		committer.On("Commit", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		pipeline := services.NewDefaultPipeline(testLogger(), allowAll(), gateway, issuer, committer)
		require.NoError(t, pipeline.Submit(t.Context(), o))

		assert.Equal(t, order.Completed, o.Status())
		assert.InDelta(t, 4002.0, o.Discount(), 1e-9)
		assert.InDelta(t, 19798.0, o.Total(), 1e-9)
	})

	t.Run("should fail on unavailable seats without touching the gateway", func(t *testing.T) {
		o := newOrder(t, []order.TicketItem{ticket(t, "A1")}, nil, "card", "")

		checker := new(MockAvailabilityChecker)
		checker.On("CheckAvailability", mock.Anything, o.SeatIDs()).Return(false, nil).Once()

		pipeline := services.NewDefaultPipeline(testLogger(), checker,
			new(MockPaymentGateway), new(MockTicketIssuer), new(MockStockCommitter))
		require.NoError(t, pipeline.Submit(t.Context(), o))

		assert.Equal(t, order.Failed, o.Status())
		assert.Equal(t, "insufficient stock or seats", o.ErrorMessage())
		checker.AssertExpectations(t)
	})

	t.Run("should fail when the availability check errors", func(t *testing.T) {
		o := newOrder(t, []order.TicketItem{ticket(t, "A1")}, nil, "card", "")

		checker := new(MockAvailabilityChecker)
		checker.On("CheckAvailability", mock.Anything, mock.Anything).
			Return(false, errors.New("inventory unreachable")).Once()

		pipeline := services.NewDefaultPipeline(testLogger(), checker,
			new(MockPaymentGateway), new(MockTicketIssuer), new(MockStockCommitter))
		require.NoError(t, pipeline.Submit(t.Context(), o))

		assert.Equal(t, order.Failed, o.Status())
		assert.Equal(t, "availability check failed: inventory unreachable", o.ErrorMessage())
	})

	t.Run("should fail on declined payment without issuing tickets", func(t *testing.T) {
		o := newOrder(t, []order.TicketItem{ticket(t, "A1")}, nil, "Tarjeta rechazada", "")

		gateway := new(MockPaymentGateway)
		gateway.On("Charge", mock.Anything, "Tarjeta rechazada", mock.Anything).
			Return(errors.New("Tarjeta rechazada")).Once()

		pipeline := services.NewDefaultPipeline(testLogger(), allowAll(), gateway,
			new(MockTicketIssuer), new(MockStockCommitter))
		require.NoError(t, pipeline.Submit(t.Context(), o))

		assert.Equal(t, order.Failed, o.Status())
		assert.Equal(t, "payment declined: Tarjeta rechazada", o.ErrorMessage())
		gateway.AssertExpectations(t)
	})

	t.Run("should skip the charge when discounts cover the total", func(t *testing.T) {
		concessions := []order.ConcessionItem{concession(t, "soda", 1, 2.0)}
		o := newOrder(t, nil, concessions, "card", services.CouponCode)

		// subtotal 2.00, tax 0.38, coupon 0.40 and flat 2.00 push the
		// total below zero; no gateway expectations are set on purpose.
		pipeline := services.NewDefaultPipeline(testLogger(), allowAll(),
			new(MockPaymentGateway), new(MockTicketIssuer), new(MockStockCommitter))
		require.NoError(t, pipeline.Submit(t.Context(), o))

		assert.Equal(t, order.Completed, o.Status())
		assert.LessOrEqual(t, o.Total(), 0.0)
	})

	t.Run("should not run any stage on an already failed order", func(t *testing.T) {
		o := newOrder(t, []order.TicketItem{ticket(t, "A1")}, nil, "card", "")
		require.NoError(t, o.StartValidation())
		require.NoError(t, o.Fail("manual failure"))

		pipeline := services.NewDefaultPipeline(testLogger(), new(MockAvailabilityChecker),
			new(MockPaymentGateway), new(MockTicketIssuer), new(MockStockCommitter))
		require.NoError(t, pipeline.Submit(t.Context(), o))

		assert.Equal(t, order.Failed, o.Status())
		assert.Equal(t, "manual failure", o.ErrorMessage())
	})

	t.Run("should reject an order that bypassed the constructor", func(t *testing.T) {
		pipeline := services.NewDefaultPipeline(testLogger(), new(MockAvailabilityChecker),
			new(MockPaymentGateway), new(MockTicketIssuer), new(MockStockCommitter))

		err := pipeline.Submit(t.Context(), &order.Order{})

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should complete a concession-only order without inventory calls", func(t *testing.T) {
		concessions := []order.ConcessionItem{concession(t, "nachos", 1, 8000)}
		o := newOrder(t, nil, concessions, "card", "")

		checker := new(MockAvailabilityChecker)
		checker.On("CheckAvailability", mock.Anything, mock.Anything).Return(true, nil).Once()
		gateway := new(MockPaymentGateway)
		gateway.On("Charge", mock.Anything, "card", mock.Anything).Return(nil).Once()

		pipeline := services.NewDefaultPipeline(testLogger(), checker, gateway,
			new(MockTicketIssuer), new(MockStockCommitter))
		require.NoError(t, pipeline.Submit(t.Context(), o))

		assert.Equal(t, order.Completed, o.Status())
	})
}
