// Package hall models the physical seat grid of a cinema hall. The seat
// map is a fixed layout of lettered rows with numbered seats; it knows how
// to enumerate itself row-major or column-major and which identifiers are
// part of the hall. Sold/held bookkeeping lives behind ports, not here.
package hall

import (
	"fmt"

	"boxoffice/internal/core/domain/model/kernel"
	"boxoffice/internal/pkg/errs"
)

// DefaultRows are the row labels of the default hall layout.
var DefaultRows = []string{"A", "B", "C"}

// DefaultSeatsPerRow is the number of seats per row in the default layout.
const DefaultSeatsPerRow = 10

// SeatMap is an immutable hall layout: ordered row labels and a uniform
// number of seats per row.
type SeatMap struct {
	rows        []string
	seatsPerRow int
}

// NewSeatMap creates a hall layout from ordered row labels and a seats-per-
// row count. Every row label must be a valid seat row; the count must be
// within the seat number range.
func NewSeatMap(rows []string, seatsPerRow int) (SeatMap, error) {
	if len(rows) == 0 {
		return SeatMap{}, errs.NewValueIsRequiredError("hall rows")
	}
	if seatsPerRow < kernel.SeatNumberMin || seatsPerRow > kernel.SeatNumberMax {
		return SeatMap{}, errs.NewValueIsOutOfRangeError("seats per row",
			seatsPerRow, kernel.SeatNumberMin, kernel.SeatNumberMax)
	}

	normalized := make([]string, len(rows))
	seen := make(map[string]bool, len(rows))
	for i, row := range rows {
		seatID, err := kernel.NewSeatID(row, 1)
		if err != nil {
			return SeatMap{}, err
		}
		label := seatID.Row()
		if seen[label] {
			return SeatMap{}, errs.NewValueIsInvalidErrorWithCause("hall rows",
				fmt.Errorf("row %q appears more than once", label))
		}
		seen[label] = true
		normalized[i] = label
	}

	return SeatMap{rows: normalized, seatsPerRow: seatsPerRow}, nil
}

// NewDefaultSeatMap creates the standard three-row, ten-seat layout.
func NewDefaultSeatMap() SeatMap {
	m, err := NewSeatMap(DefaultRows, DefaultSeatsPerRow)
	if err != nil {
		// The default layout is a compile-time constant shape.
		panic(err)
	}
	return m
}

// Rows returns the ordered row labels.
func (m SeatMap) Rows() []string {
	rows := make([]string, len(m.rows))
	copy(rows, m.rows)
	return rows
}

// SeatsPerRow returns the uniform number of seats in each row.
func (m SeatMap) SeatsPerRow() int {
	return m.seatsPerRow
}

// Capacity returns the total number of seats in the hall.
func (m SeatMap) Capacity() int {
	return len(m.rows) * m.seatsPerRow
}

// Contains reports whether the seat identifier names a seat in this hall.
func (m SeatMap) Contains(seatID kernel.SeatID) bool {
	if seatID.Number() < 1 || seatID.Number() > m.seatsPerRow {
		return false
	}
	for _, row := range m.rows {
		if row == seatID.Row() {
			return true
		}
	}
	return false
}

// SeatsByRow enumerates every seat row-major: A1, A2, ..., B1, B2, ...
func (m SeatMap) SeatsByRow() []kernel.SeatID {
	seats := make([]kernel.SeatID, 0, m.Capacity())
	for _, row := range m.rows {
		for n := 1; n <= m.seatsPerRow; n++ {
			seats = append(seats, m.mustSeat(row, n))
		}
	}
	return seats
}

// SeatsByColumn enumerates every seat column-major: A1, B1, C1, A2, B2, ...
func (m SeatMap) SeatsByColumn() []kernel.SeatID {
	seats := make([]kernel.SeatID, 0, m.Capacity())
	for n := 1; n <= m.seatsPerRow; n++ {
		for _, row := range m.rows {
			seats = append(seats, m.mustSeat(row, n))
		}
	}
	return seats
}

func (m SeatMap) mustSeat(row string, number int) kernel.SeatID {
	seatID, err := kernel.NewSeatID(row, number)
	if err != nil {
		// Rows and counts were validated at construction.
		panic(err)
	}
	return seatID
}
