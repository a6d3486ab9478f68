package seatrepo

import (
	"context"
	"errors"
	"time"

	"boxoffice/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ErrSeatAlreadySold is returned when marking a seat that is already in
// the registry.
var ErrSeatAlreadySold = errors.New("seat is already marked as sold")

// GormSeatRepository implements SeatRepository using GORM.
type GormSeatRepository struct {
	db *gorm.DB
}

// NewGormSeatRepository creates a new GORM sold-seat repository.
func NewGormSeatRepository(db *gorm.DB) *GormSeatRepository {
	return &GormSeatRepository{db: db}
}

// MarkSold records every seat of the order as sold. The batch insert runs
// as one statement: a duplicate seat fails the whole call, so inside a
// transaction either all seats of an order are sold or none.
func (r *GormSeatRepository) MarkSold(ctx context.Context, orderID kernel.UUID, seats []kernel.SeatID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if len(seats) == 0 {
		return nil
	}

	soldAt := time.Now().UTC()
	dtos := make([]SoldSeatDTO, 0, len(seats))
	for _, seat := range seats {
		if err := seat.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(orderID, seat, soldAt))
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrSeatAlreadySold
		}
		return err
	}

	return nil
}

// UnmarkSold returns the given seats to the sellable pool. Seats that are
// not in the registry are skipped silently.
func (r *GormSeatRepository) UnmarkSold(ctx context.Context, seats []kernel.SeatID) error {
	if len(seats) == 0 {
		return nil
	}

	ids := make([]string, 0, len(seats))
	for _, seat := range seats {
		if err := seat.Validate(); err != nil {
			return err
		}
		ids = append(ids, seat.String())
	}

	return r.db.WithContext(ctx).Delete(&SoldSeatDTO{}, "seat_id IN ?", ids).Error
}

// IsSold reports whether the seat is in the registry.
func (r *GormSeatRepository) IsSold(ctx context.Context, seat kernel.SeatID) (bool, error) {
	if err := seat.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&SoldSeatDTO{}).
		Where("seat_id = ?", seat.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GetAllSold retrieves every sold seat ordered by identifier.
func (r *GormSeatRepository) GetAllSold(ctx context.Context) ([]kernel.SeatID, error) {
	var dtos []SoldSeatDTO
	if err := r.db.WithContext(ctx).Order("seat_id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	seats := make([]kernel.SeatID, 0, len(dtos))
	for _, dto := range dtos {
		seat, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	return seats, nil
}
