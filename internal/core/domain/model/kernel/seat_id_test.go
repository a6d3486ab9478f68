package kernel_test

import (
	"testing"

	"boxoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatID(t *testing.T) {
	t.Run("should create valid seat id", func(t *testing.T) {
		seat, err := kernel.NewSeatID("A", 1)

		require.NoError(t, err)
		require.NoError(t, seat.Validate())
		assert.Equal(t, "A", seat.Row())
		assert.Equal(t, 1, seat.Number())
		assert.Equal(t, "A1", seat.String())
	})

	t.Run("should upcase lowercase row labels", func(t *testing.T) {
		seat, err := kernel.NewSeatID("c", 12)

		require.NoError(t, err)
		assert.Equal(t, "C", seat.Row())
		assert.Equal(t, "C12", seat.String())
	})

	t.Run("should fail with empty row", func(t *testing.T) {
		_, err := kernel.NewSeatID("", 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "seat row")
	})

	t.Run("should fail with multi-letter row", func(t *testing.T) {
		_, err := kernel.NewSeatID("AA", 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "seat row")
	})

	t.Run("should fail with non-letter row", func(t *testing.T) {
		_, err := kernel.NewSeatID("7", 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "seat row")
	})

	t.Run("should fail with zero seat number", func(t *testing.T) {
		_, err := kernel.NewSeatID("A", 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "seat number")
	})

	t.Run("should fail with seat number above maximum", func(t *testing.T) {
		_, err := kernel.NewSeatID("A", kernel.SeatNumberMax+1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "seat number")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := kernel.NewSeatID("", -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "seat row")
		assert.Contains(t, err.Error(), "seat number")
	})
}

func TestSeatIDFromString(t *testing.T) {
	t.Run("should parse canonical form", func(t *testing.T) {
		seat, err := kernel.SeatIDFromString("B10")

		require.NoError(t, err)
		assert.Equal(t, "B", seat.Row())
		assert.Equal(t, 10, seat.Number())
	})

	t.Run("should parse lowercase row", func(t *testing.T) {
		seat, err := kernel.SeatIDFromString("a3")

		require.NoError(t, err)
		assert.Equal(t, "A3", seat.String())
	})

	t.Run("should fail on too-short input", func(t *testing.T) {
		_, err := kernel.SeatIDFromString("A")

		require.Error(t, err)
	})

	t.Run("should fail on non-numeric seat number", func(t *testing.T) {
		_, err := kernel.SeatIDFromString("Axx")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "non-numeric")
	})

	t.Run("should fail on empty string", func(t *testing.T) {
		_, err := kernel.SeatIDFromString("")

		require.Error(t, err)
	})
}

func TestSeatID_IsEqual(t *testing.T) {
	t.Run("should treat same row and number as equal", func(t *testing.T) {
		a, _ := kernel.NewSeatID("A", 5)
		b, _ := kernel.SeatIDFromString("a5")

		assert.True(t, a.IsEqual(b))
	})

	t.Run("should treat different seats as not equal", func(t *testing.T) {
		a, _ := kernel.NewSeatID("A", 5)
		b, _ := kernel.NewSeatID("A", 6)
		c, _ := kernel.NewSeatID("B", 5)

		assert.False(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestSeatID_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var seat kernel.SeatID

		err := seat.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "seat id must be created")
	})
}
