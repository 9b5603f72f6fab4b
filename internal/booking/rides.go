package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"gorm.io/gorm"
)

// CreateRide inserts a new ride in the pending state with no driver assigned.
func (e *Engine) CreateRide(ctx context.Context, pickup, destination string) (*models.Ride, error) {
	pickup = strings.TrimSpace(pickup)
	destination = strings.TrimSpace(destination)
	if pickup == "" || destination == "" {
		return nil, fmt.Errorf("%w: pickup and destination are required", ErrValidation)
	}

	ride := models.Ride{
		Pickup:      pickup,
		Destination: destination,
		Status:      models.RideStatusPending,
	}
	if err := e.db.WithContext(ctx).Create(&ride).Error; err != nil {
		return nil, fmt.Errorf("%w: create ride: %v", ErrStorage, err)
	}
	return &ride, nil
}

// AcceptRide assigns a driver to a pending ride. The status check is part of
// the update's match predicate, so two concurrent acceptance attempts on the
// same ride cannot both observe a row change: at most one writer wins, the
// other gets ErrConflict.
func (e *Engine) AcceptRide(ctx context.Context, rideID, driverID uint) (*models.Ride, error) {
	if driverID == 0 {
		return nil, fmt.Errorf("%w: driver id is required", ErrValidation)
	}

	var driver models.Driver
	if err := e.db.WithContext(ctx).First(&driver, driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: driver %d", ErrNotFound, driverID)
		}
		return nil, fmt.Errorf("%w: load driver: %v", ErrStorage, err)
	}

	res := e.db.WithContext(ctx).Model(&models.Ride{}).
		Where("id = ? AND status = ?", rideID, models.RideStatusPending).
		Updates(map[string]interface{}{
			"status":    models.RideStatusAccepted,
			"driver_id": driverID,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("%w: accept ride: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		// Either the ride doesn't exist or it already left pending.
		// Re-read once to tell the two apart.
		return nil, e.rideMiss(ctx, rideID)
	}

	var ride models.Ride
	if err := e.db.WithContext(ctx).Preload("Driver").First(&ride, rideID).Error; err != nil {
		return nil, fmt.Errorf("%w: reload ride: %v", ErrStorage, err)
	}
	return &ride, nil
}

// CompleteRide moves an accepted ride to completed. Only the
// accepted -> completed edge is legal: completing a pending or already
// completed ride returns ErrConflict.
func (e *Engine) CompleteRide(ctx context.Context, rideID uint) (*models.Ride, error) {
	res := e.db.WithContext(ctx).Model(&models.Ride{}).
		Where("id = ? AND status = ?", rideID, models.RideStatusAccepted).
		Update("status", models.RideStatusCompleted)
	if res.Error != nil {
		return nil, fmt.Errorf("%w: complete ride: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, e.rideMiss(ctx, rideID)
	}

	var ride models.Ride
	if err := e.db.WithContext(ctx).Preload("Driver").First(&ride, rideID).Error; err != nil {
		return nil, fmt.Errorf("%w: reload ride: %v", ErrStorage, err)
	}
	return &ride, nil
}

// GetRide returns a single ride with its driver preloaded when assigned.
func (e *Engine) GetRide(ctx context.Context, rideID uint) (*models.Ride, error) {
	var ride models.Ride
	if err := e.db.WithContext(ctx).Preload("Driver").First(&ride, rideID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: ride %d", ErrNotFound, rideID)
		}
		return nil, fmt.Errorf("%w: load ride: %v", ErrStorage, err)
	}
	return &ride, nil
}

// ListRides returns all rides, newest first.
func (e *Engine) ListRides(ctx context.Context) ([]models.Ride, error) {
	var rides []models.Ride
	if err := e.db.WithContext(ctx).Order("created_at DESC").Find(&rides).Error; err != nil {
		return nil, fmt.Errorf("%w: list rides: %v", ErrStorage, err)
	}
	return rides, nil
}

// rideMiss classifies a zero-row conditional update on a ride: absent row
// means ErrNotFound, present row means the status precondition failed.
func (e *Engine) rideMiss(ctx context.Context, rideID uint) error {
	var ride models.Ride
	err := e.db.WithContext(ctx).First(&ride, rideID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: ride %d", ErrNotFound, rideID)
	}
	if err != nil {
		return fmt.Errorf("%w: load ride: %v", ErrStorage, err)
	}
	return fmt.Errorf("%w: ride %d is %s", ErrConflict, rideID, ride.Status)
}
