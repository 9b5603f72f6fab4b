package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"gorm.io/gorm"
)

// HotelInput carries the caller-supplied fields for CreateHotel. Rating
// falls back to 4.0 when zero; AvailableRooms is a pointer so an explicit 0
// (sold out from the start) is distinguishable from an absent field, which
// defaults to 10.
type HotelInput struct {
	Name           string
	Location       string
	PricePerNight  float64
	Rating         float64
	Amenities      string
	Description    string
	AvailableRooms *int
}

// HotelFilter narrows ListHotels. Zero values mean "no filter"; the
// predicates are AND-composed.
type HotelFilter struct {
	Location string
	MinPrice float64
	MaxPrice float64
}

// CreateHotel validates and inserts a hotel.
func (e *Engine) CreateHotel(ctx context.Context, in HotelInput) (*models.Hotel, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)
	if in.Name == "" || in.Location == "" {
		return nil, fmt.Errorf("%w: name and location are required", ErrValidation)
	}
	if in.PricePerNight <= 0 {
		return nil, fmt.Errorf("%w: price must be greater than 0", ErrValidation)
	}
	if in.Rating == 0 {
		in.Rating = 4.0
	}
	if in.Rating < 0 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}
	rooms := 10
	if in.AvailableRooms != nil {
		if *in.AvailableRooms < 0 {
			return nil, fmt.Errorf("%w: available rooms cannot be negative", ErrValidation)
		}
		rooms = *in.AvailableRooms
	}

	hotel := models.Hotel{
		Name:           in.Name,
		Location:       in.Location,
		PricePerNight:  in.PricePerNight,
		Rating:         in.Rating,
		Amenities:      in.Amenities,
		Description:    in.Description,
		AvailableRooms: rooms,
	}
	if err := e.db.WithContext(ctx).Create(&hotel).Error; err != nil {
		return nil, fmt.Errorf("%w: create hotel: %v", ErrStorage, err)
	}
	return &hotel, nil
}

// BookHotel reserves one room and prices the stay. The decrement is a single
// conditional update matching available_rooms > 0, so two concurrent bookings
// racing for the last room cannot both succeed and the counter can never be
// driven negative. Exactly one room is taken per call; nights only scales
// the cost.
func (e *Engine) BookHotel(ctx context.Context, hotelID uint, nights int) (*models.Hotel, *models.HotelBooking, error) {
	if nights == 0 {
		nights = 1
	}
	if nights < 1 {
		return nil, nil, fmt.Errorf("%w: nights must be at least 1", ErrValidation)
	}

	res := e.db.WithContext(ctx).Model(&models.Hotel{}).
		Where("id = ? AND available_rooms > 0", hotelID).
		UpdateColumn("available_rooms", gorm.Expr("available_rooms - 1"))
	if res.Error != nil {
		return nil, nil, fmt.Errorf("%w: book hotel: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		var hotel models.Hotel
		err := e.db.WithContext(ctx).First(&hotel, hotelID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("%w: hotel %d", ErrNotFound, hotelID)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: load hotel: %v", ErrStorage, err)
		}
		return nil, nil, fmt.Errorf("%w: no rooms available", ErrConflict)
	}

	var hotel models.Hotel
	if err := e.db.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		return nil, nil, fmt.Errorf("%w: reload hotel: %v", ErrStorage, err)
	}

	booking := models.HotelBooking{
		HotelID:   hotelID,
		Nights:    nights,
		TotalCost: hotel.PricePerNight * float64(nights),
	}
	return &hotel, &booking, nil
}

// DeleteHotel removes a hotel row.
func (e *Engine) DeleteHotel(ctx context.Context, hotelID uint) error {
	res := e.db.WithContext(ctx).Delete(&models.Hotel{}, hotelID)
	if res.Error != nil {
		return fmt.Errorf("%w: delete hotel: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: hotel %d", ErrNotFound, hotelID)
	}
	return nil
}

// GetHotel returns a single hotel by id.
func (e *Engine) GetHotel(ctx context.Context, hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := e.db.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: hotel %d", ErrNotFound, hotelID)
		}
		return nil, fmt.Errorf("%w: load hotel: %v", ErrStorage, err)
	}
	return &hotel, nil
}

// ListHotels returns hotels that still have rooms, filtered and newest first.
func (e *Engine) ListHotels(ctx context.Context, filter HotelFilter) ([]models.Hotel, error) {
	query := e.db.WithContext(ctx).Where("available_rooms > 0")

	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	if filter.MinPrice > 0 {
		query = query.Where("price_per_night >= ?", filter.MinPrice)
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price_per_night <= ?", filter.MaxPrice)
	}

	var hotels []models.Hotel
	if err := query.Order("created_at DESC").Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("%w: list hotels: %v", ErrStorage, err)
	}
	return hotels, nil
}
