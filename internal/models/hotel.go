package models

import "time"

// Hotel rows carry their own room counter. AvailableRooms never goes
// negative: bookings decrement it with a conditional update that matches
// available_rooms > 0 and check the affected-row count.
type Hotel struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null"`
	Location       string    `json:"location" gorm:"not null"`
	PricePerNight  float64   `json:"price_per_night" gorm:"not null"`
	Rating         float64   `json:"rating" gorm:"default:4.0"`
	Amenities      string    `json:"amenities"`
	Description    string    `json:"description"`
	AvailableRooms int       `json:"available_rooms" gorm:"default:10"`
	CreatedAt      time.Time `json:"created_at"`
}

// HotelBooking is the receipt returned by a successful booking call.
// One room per call; nights only scales the cost.
type HotelBooking struct {
	HotelID   uint    `json:"hotel_id"`
	Nights    int     `json:"nights"`
	TotalCost float64 `json:"total_cost"`
}
