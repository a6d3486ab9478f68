package guard_test

import (
	"errors"
	"testing"

	"boxoffice/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("should pass for a constructed guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("should return the given error for a zero value guard", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("Ticket must be created via NewTicket")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("should fall back to the default error when given nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("should expose a meaningful default error", func(t *testing.T) {
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuard_ValueObjectUsage exercises the guard the way the
// domain's value objects use it: embedded in a struct whose constructor is
// the only way to obtain a valid instance.
func TestConstructorGuard_ValueObjectUsage(t *testing.T) {
	type coupon struct {
		code  string
		rate  float64
		guard guard.ConstructorGuard
	}

	var errCouponNotConstructed = errors.New("coupon must be created via newCoupon")

	newCoupon := func(code string, rate float64) (coupon, error) {
		if code == "" {
			return coupon{}, errors.New("coupon code is required")
		}
		if rate <= 0 || rate >= 1 {
			return coupon{}, errors.New("coupon rate must be a fraction")
		}
		return coupon{
			code:  code,
			rate:  rate,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateCoupon := func(c coupon) error {
		return c.guard.Validate(errCouponNotConstructed)
	}

	t.Run("should validate a constructor built value", func(t *testing.T) {
		c, err := newCoupon("CINE20", 0.20)

		require.NoError(t, err)
		require.NoError(t, validateCoupon(c))
		assert.Equal(t, "CINE20", c.code)
		assert.InDelta(t, 0.20, c.rate, 1e-9)
	})

	t.Run("should reject a zero value", func(t *testing.T) {
		var c coupon

		err := validateCoupon(c)

		require.Error(t, err)
		assert.Equal(t, errCouponNotConstructed, err)
	})

	t.Run("should leave business rules to the constructor", func(t *testing.T) {
		_, err := newCoupon("", 0.20)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "coupon code is required")

		_, err = newCoupon("CINE20", 1.5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "coupon rate must be a fraction")
	})
}

func TestConstructorGuard_Copies(t *testing.T) {
	t.Run("should stay valid when passed by value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		validationError := errors.New("not constructed")

		copied := g

		require.NoError(t, g.Validate(validationError))
		require.NoError(t, copied.Validate(validationError))
	})
}

func TestConstructorGuard_Concurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				assert.NoError(t, g.Validate(validationError))
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}
