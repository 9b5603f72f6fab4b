package models

import "time"

type Restaurant struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Cuisine      string    `json:"cuisine" gorm:"not null"`
	Location     string    `json:"location" gorm:"not null"`
	Rating       float64   `json:"rating" gorm:"default:4.0"`
	DeliveryTime int       `json:"delivery_time" gorm:"default:30"`
	Menu         string    `json:"menu"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderItem is a line item in a restaurant order request.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is computed per request and not persisted.
type Order struct {
	RestaurantID        uint        `json:"restaurant_id"`
	RestaurantName      string      `json:"restaurant_name"`
	Items               []OrderItem `json:"items"`
	SpecialInstructions string      `json:"special_instructions"`
	EstimatedTotal      float64     `json:"estimated_total"`
	EstimatedDelivery   time.Time   `json:"estimated_delivery"`
	Status              string      `json:"status"`
}
