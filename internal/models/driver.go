package models

import "time"

// DriverStatusAvailable is the default status for newly registered drivers.
// Status is free-form text; ride acceptance does not flip it automatically,
// callers update it explicitly via the driver registry.
const DriverStatusAvailable = "available"

type Driver struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Status    string    `json:"status" gorm:"not null;default:'available'"`
	CreatedAt time.Time `json:"created_at"`
}
