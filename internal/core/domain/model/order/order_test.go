package order_test

import (
	"testing"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTicket(t *testing.T, seat string, price float64) order.TicketItem {
	t.Helper()
	seatID, err := kernel.SeatIDFromString(seat)
	require.NoError(t, err)
	item, err := order.NewTicketItem(seatID, price)
	require.NoError(t, err)
	return item
}

func mustConcession(t *testing.T, name string, quantity int, unitPrice float64) order.ConcessionItem {
	t.Helper()
	item, err := order.NewConcessionItem(name, quantity, unitPrice)
	require.NoError(t, err)
	return item
}

func newPaidOrder(t *testing.T, paymentMethod string) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		[]order.TicketItem{mustTicket(t, "A1", order.DefaultTicketPrice)},
		nil,
		paymentMethod,
		"",
	)
	require.NoError(t, err)
	require.NoError(t, o.StartValidation())
	require.NoError(t, o.StartPricing())
	require.NoError(t, o.StartDiscounts())
	require.NoError(t, o.StartPayment())
	require.NoError(t, o.MarkPaid())
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	ticket := mustTicket(t, "A1", order.DefaultTicketPrice)

	t.Run("should create valid order in Pending status", func(t *testing.T) {
		o, err := order.NewOrder(validID, []order.TicketItem{ticket}, nil, "card", "CINE20")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "card", o.PaymentMethod())
		assert.Equal(t, "CINE20", o.Coupon())
		assert.Empty(t, o.ErrorMessage())
		assert.Zero(t, o.Total())
	})

	t.Run("should accept concession-only orders", func(t *testing.T) {
		popcorn := mustConcession(t, "popcorn", 2, 5)

		o, err := order.NewOrder(validID, nil, []order.ConcessionItem{popcorn}, "card", "")

		require.NoError(t, err)
		assert.Empty(t, o.Tickets())
		assert.Len(t, o.Concessions(), 1)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, []order.TicketItem{ticket}, nil, "card", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with no items at all", func(t *testing.T) {
		o, err := order.NewOrder(validID, nil, nil, "card", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should fail with empty payment method", func(t *testing.T) {
		o, err := order.NewOrder(validID, []order.TicketItem{ticket}, nil, "", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "payment method")
	})

	t.Run("should reject zero-value line items", func(t *testing.T) {
		o, err := order.NewOrder(validID, []order.TicketItem{{}}, nil, "card", "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrTicketItemIsNotConstructed)
	})

	t.Run("should copy item slices defensively", func(t *testing.T) {
		tickets := []order.TicketItem{ticket}
		o, err := order.NewOrder(validID, tickets, nil, "card", "")
		require.NoError(t, err)

		tickets[0] = order.TicketItem{}

		require.NoError(t, o.Tickets()[0].Validate())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject nil and zero-value orders", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
		require.ErrorIs(t, (&order.Order{}).Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Pricing(t *testing.T) {
	t.Run("should record pricing only while calculating prices", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(),
			[]order.TicketItem{mustTicket(t, "A1", 10000), mustTicket(t, "A2", 10000)},
			nil, "card", "")
		require.NoError(t, err)

		require.Error(t, o.SetPricing(20000, 3800))

		require.NoError(t, o.StartValidation())
		require.NoError(t, o.StartPricing())
		require.NoError(t, o.SetPricing(20000, 3800))

		assert.InDelta(t, 20000.0, o.Subtotal(), 1e-9)
		assert.InDelta(t, 3800.0, o.Tax(), 1e-9)
		assert.InDelta(t, 23800.0, o.Total(), 1e-9)
	})

	t.Run("should deduct discount from total only while applying discounts", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(),
			[]order.TicketItem{mustTicket(t, "A1", 10000)}, nil, "card", "")
		require.NoError(t, err)
		require.NoError(t, o.StartValidation())
		require.NoError(t, o.StartPricing())
		require.NoError(t, o.SetPricing(10000, 1900))

		require.Error(t, o.ApplyDiscount(2000))

		require.NoError(t, o.StartDiscounts())
		require.NoError(t, o.ApplyDiscount(2000))

		assert.InDelta(t, 2000.0, o.Discount(), 1e-9)
		assert.InDelta(t, 9900.0, o.Total(), 1e-9)
	})

	t.Run("should accumulate successive discounts", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(),
			[]order.TicketItem{mustTicket(t, "A1", 10000), mustTicket(t, "A2", 10000)},
			nil, "card", "CINE20")
		require.NoError(t, err)
		require.NoError(t, o.StartValidation())
		require.NoError(t, o.StartPricing())
		require.NoError(t, o.SetPricing(20010, 3801.9))
		require.NoError(t, o.StartDiscounts())

		require.NoError(t, o.ApplyDiscount(4002))
		require.NoError(t, o.ApplyDiscount(2))

		assert.InDelta(t, 4004.0, o.Discount(), 1e-9)
		assert.InDelta(t, 19807.9, o.Total(), 1e-9)
	})
}

func TestOrder_Fail(t *testing.T) {
	t.Run("should store message and move to Failed", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(),
			[]order.TicketItem{mustTicket(t, "A1", 10000)}, nil, "card", "")
		require.NoError(t, err)
		require.NoError(t, o.StartValidation())

		require.NoError(t, o.Fail("insufficient stock or seats"))

		assert.Equal(t, order.Failed, o.Status())
		assert.Equal(t, "insufficient stock or seats", o.ErrorMessage())
	})

	t.Run("should not fail an already failed order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(),
			[]order.TicketItem{mustTicket(t, "A1", 10000)}, nil, "card", "")
		require.NoError(t, err)
		require.NoError(t, o.Fail("first"))

		require.Error(t, o.Fail("second"))
		assert.Equal(t, "first", o.ErrorMessage())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(),
			[]order.TicketItem{mustTicket(t, "A1", 10000)}, nil, "card", "")
		require.NoError(t, err)

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should leave a completed order untouched", func(t *testing.T) {
		o := newPaidOrder(t, "card")
		require.NoError(t, o.Complete())

		err := o.Cancel()

		require.Error(t, err)
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestOrder_RequestRefund(t *testing.T) {
	t.Run("should process refund for non-cash completed order", func(t *testing.T) {
		o := newPaidOrder(t, "card")
		require.NoError(t, o.Complete())

		err := o.RequestRefund()

		require.NoError(t, err)
		assert.Equal(t, order.RefundProcessed, o.Status())
		assert.Empty(t, o.ErrorMessage())
	})

	t.Run("should reject refund for cash completed order", func(t *testing.T) {
		o := newPaidOrder(t, order.PaymentMethodCash)
		require.NoError(t, o.Complete())

		err := o.RequestRefund()

		require.ErrorIs(t, err, order.ErrCashRefundRequiresManualProcess)
		assert.Equal(t, order.RefundRejected, o.Status())
		assert.NotEmpty(t, o.ErrorMessage())
	})

	t.Run("should refuse refund for non-completed order without state change", func(t *testing.T) {
		o := newPaidOrder(t, "card")

		err := o.RequestRefund()

		require.ErrorIs(t, err, order.ErrOnlyCompletedOrdersRefundable)
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, order.ErrOnlyCompletedOrdersRefundable.Error(), o.ErrorMessage())
	})
}

func TestOrder_SeatIDs(t *testing.T) {
	t.Run("should return seats in ticket order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(),
			[]order.TicketItem{
				mustTicket(t, "B2", 10000),
				mustTicket(t, "A1", 10000),
			}, nil, "card", "")
		require.NoError(t, err)

		seats := o.SeatIDs()

		require.Len(t, seats, 2)
		assert.Equal(t, "B2", seats[0].String())
		assert.Equal(t, "A1", seats[1].String())
	})
}

func TestLineItems(t *testing.T) {
	t.Run("should compute concession subtotal", func(t *testing.T) {
		popcorn := mustConcession(t, "popcorn", 2, 5)

		assert.InDelta(t, 10.0, popcorn.Subtotal(), 1e-9)
	})

	t.Run("should reject non-positive ticket price", func(t *testing.T) {
		seatID, _ := kernel.NewSeatID("A", 1)

		_, err := order.NewTicketItem(seatID, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ticket price")
	})

	t.Run("should reject concession with zero quantity", func(t *testing.T) {
		_, err := order.NewConcessionItem("soda", 0, 3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "concession quantity")
	})

	t.Run("should reject unnamed concession", func(t *testing.T) {
		_, err := order.NewConcessionItem("", 1, 3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "concession name")
	})
}
