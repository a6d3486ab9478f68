package hall_test

import (
	"testing"

	"boxoffice/internal/core/domain/model/hall"
	"boxoffice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatMap(t *testing.T) {
	t.Run("should create valid layout", func(t *testing.T) {
		m, err := hall.NewSeatMap([]string{"A", "B"}, 4)

		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, m.Rows())
		assert.Equal(t, 4, m.SeatsPerRow())
		assert.Equal(t, 8, m.Capacity())
	})

	t.Run("should normalize lowercase rows", func(t *testing.T) {
		m, err := hall.NewSeatMap([]string{"a"}, 2)

		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, m.Rows())
	})

	t.Run("should reject empty rows", func(t *testing.T) {
		_, err := hall.NewSeatMap(nil, 4)
		require.Error(t, err)
	})

	t.Run("should reject duplicate rows", func(t *testing.T) {
		_, err := hall.NewSeatMap([]string{"A", "a"}, 4)
		require.Error(t, err)
	})

	t.Run("should reject zero seats per row", func(t *testing.T) {
		_, err := hall.NewSeatMap([]string{"A"}, 0)
		require.Error(t, err)
	})
}

func TestSeatMap_Traversal(t *testing.T) {
	m, err := hall.NewSeatMap([]string{"A", "B"}, 3)
	require.NoError(t, err)

	render := func(seats []kernel.SeatID) []string {
		out := make([]string, len(seats))
		for i, s := range seats {
			out[i] = s.String()
		}
		return out
	}

	t.Run("should enumerate row-major", func(t *testing.T) {
		assert.Equal(t,
			[]string{"A1", "A2", "A3", "B1", "B2", "B3"},
			render(m.SeatsByRow()))
	})

	t.Run("should enumerate column-major", func(t *testing.T) {
		assert.Equal(t,
			[]string{"A1", "B1", "A2", "B2", "A3", "B3"},
			render(m.SeatsByColumn()))
	})
}

func TestSeatMap_Contains(t *testing.T) {
	m := hall.NewDefaultSeatMap()

	inside, _ := kernel.SeatIDFromString("C10")
	outsideRow, _ := kernel.SeatIDFromString("D1")
	outsideNumber, _ := kernel.SeatIDFromString("A11")

	assert.True(t, m.Contains(inside))
	assert.False(t, m.Contains(outsideRow))
	assert.False(t, m.Contains(outsideNumber))
}
