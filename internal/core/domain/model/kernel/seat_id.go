package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"boxoffice/internal/pkg/errs"
	"boxoffice/internal/pkg/guard"
)

const (
	// SeatNumberMin is the lowest valid seat number within a row.
	SeatNumberMin = 1
	// SeatNumberMax is the highest valid seat number within a row.
	SeatNumberMax = 99
)

// ErrSeatIDIsNotConstructed is returned when attempting to use an improperly
// initialized SeatID. SeatIDs must be created via NewSeatID or SeatIDFromString.
var ErrSeatIDIsNotConstructed = errs.NewValueIsRequiredError(
	"seat id must be created via NewSeatID or SeatIDFromString constructors")

// SeatID identifies a single seat in a hall by its row label and seat number,
// rendered as the familiar "A1" form. SeatID is an immutable value object;
// the zero value is invalid and fails validation.
//
// Example:
//
//	seat, err := kernel.NewSeatID("A", 7)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(seat) // Output: A7
type SeatID struct { //nolint:recvcheck //using for validation
	row    string
	number int
	guard  guard.ConstructorGuard
}

// NewSeatID creates a SeatID from a row label and a seat number.
// The row must be a single letter A-Z (lowercase is accepted and upcased);
// the number must be within [SeatNumberMin..SeatNumberMax].
func NewSeatID(row string, number int) (SeatID, error) {
	seat := SeatID{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(seat.setRow(row), seat.setNumber(number)); err != nil {
		return SeatID{}, err
	}

	return seat, nil
}

// SeatIDFromString parses a seat identifier of the form "<row letter><number>",
// e.g. "A1" or "c12". Returns an error for any other shape.
func SeatIDFromString(s string) (SeatID, error) {
	if len(s) < 2 {
		return SeatID{}, errs.NewValueIsInvalidErrorWithCause("seat id",
			fmt.Errorf("%q is not of the form <row><number>", s))
	}

	number, err := strconv.Atoi(s[1:])
	if err != nil {
		return SeatID{}, errs.NewValueIsInvalidErrorWithCause("seat id",
			fmt.Errorf("%q has a non-numeric seat number", s))
	}

	return NewSeatID(s[:1], number)
}

// Row returns the row label, always a single uppercase letter.
func (s SeatID) Row() string {
	return s.row
}

// Number returns the seat number within the row.
func (s SeatID) Number() int {
	return s.number
}

// String returns the canonical "<row><number>" form, e.g. "B10".
func (s SeatID) String() string {
	return fmt.Sprintf("%s%d", s.row, s.number)
}

// IsEqual reports whether two seat identifiers refer to the same seat.
func (s SeatID) IsEqual(other SeatID) bool {
	return s.row == other.row && s.number == other.number
}

// Validate checks that the SeatID was created through a constructor.
func (s SeatID) Validate() error {
	return s.guard.Validate(ErrSeatIDIsNotConstructed)
}

func (s *SeatID) setRow(row string) error {
	row = strings.ToUpper(strings.TrimSpace(row))
	if len(row) != 1 || row[0] < 'A' || row[0] > 'Z' {
		return errs.NewValueIsInvalidErrorWithCause("seat row",
			fmt.Errorf("%q is not a single letter A-Z", row))
	}
	s.row = row
	return nil
}

func (s *SeatID) setNumber(number int) error {
	if number < SeatNumberMin || number > SeatNumberMax {
		return errs.NewValueIsOutOfRangeError("seat number", number, SeatNumberMin, SeatNumberMax)
	}
	s.number = number
	return nil
}
