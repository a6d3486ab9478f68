// Package seatrepo provides data transfer objects and mapping functions for
// the sold-seat registry. This package implements the repository pattern for
// seat sales, handling the conversion between seat identifiers and their
// database representation.
package seatrepo

import (
	"time"

	"boxoffice/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SoldSeatDTO represents the database structure for the sold-seat registry.
// One row per sold seat; the seat identifier is the primary key, so selling
// the same seat twice fails at the database level.
type SoldSeatDTO struct {
	SeatID  string    `gorm:"primaryKey;size:8"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	SoldAt  time.Time
}

// TableName specifies the database table name for sold seats.
// Overrides GORM's default naming convention to use "sold_seats".
func (SoldSeatDTO) TableName() string {
	return "sold_seats"
}

// fromDomain converts a seat sale to its database representation.
func fromDomain(orderID kernel.UUID, seat kernel.SeatID, soldAt time.Time) SoldSeatDTO {
	return SoldSeatDTO{
		SeatID:  seat.String(),
		OrderID: orderID.Bytes(),
		SoldAt:  soldAt,
	}
}

// toDomain converts a database row back to a seat identifier.
func toDomain(dto SoldSeatDTO) (kernel.SeatID, error) {
	return kernel.SeatIDFromString(dto.SeatID)
}
