package models

import "time"

// Item is the legacy listings table kept for existing clients.
type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	UserID      *uint     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
