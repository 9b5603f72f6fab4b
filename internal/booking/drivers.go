package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"gorm.io/gorm"
)

// RegisterDriver creates a driver. Status defaults to "available" when empty.
func (e *Engine) RegisterDriver(ctx context.Context, name, status string) (*models.Driver, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if status == "" {
		status = models.DriverStatusAvailable
	}

	driver := models.Driver{Name: name, Status: status}
	if err := e.db.WithContext(ctx).Create(&driver).Error; err != nil {
		return nil, fmt.Errorf("%w: register driver: %v", ErrStorage, err)
	}
	return &driver, nil
}

// ListDrivers returns all drivers, newest first.
func (e *Engine) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	var drivers []models.Driver
	if err := e.db.WithContext(ctx).Order("created_at DESC").Find(&drivers).Error; err != nil {
		return nil, fmt.Errorf("%w: list drivers: %v", ErrStorage, err)
	}
	return drivers, nil
}

// GetDriver returns a single driver by id.
func (e *Engine) GetDriver(ctx context.Context, driverID uint) (*models.Driver, error) {
	var driver models.Driver
	if err := e.db.WithContext(ctx).First(&driver, driverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: driver %d", ErrNotFound, driverID)
		}
		return nil, fmt.Errorf("%w: load driver: %v", ErrStorage, err)
	}
	return &driver, nil
}

// SetDriverStatus updates a driver's free-form status. Ride acceptance and
// completion never call this implicitly; flipping availability is an explicit
// side effect left to the caller.
func (e *Engine) SetDriverStatus(ctx context.Context, driverID uint, status string) (*models.Driver, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrValidation)
	}

	res := e.db.WithContext(ctx).Model(&models.Driver{}).
		Where("id = ?", driverID).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("%w: update driver status: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: driver %d", ErrNotFound, driverID)
	}

	var driver models.Driver
	if err := e.db.WithContext(ctx).First(&driver, driverID).Error; err != nil {
		return nil, fmt.Errorf("%w: reload driver: %v", ErrStorage, err)
	}
	return &driver, nil
}
