package models

import "time"

type RideStatus string

const (
	RideStatusPending   RideStatus = "pending"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusCompleted RideStatus = "completed"
)

// Ride moves through pending -> accepted -> completed, each edge exactly once.
// DriverID stays nil until acceptance and is never reassigned afterwards.
type Ride struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Pickup      string     `json:"pickup" gorm:"not null"`
	Destination string     `json:"destination" gorm:"not null"`
	DriverID    *uint      `json:"driver_id"`
	Driver      *Driver    `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
	Status      RideStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt   time.Time  `json:"created_at"`
}
