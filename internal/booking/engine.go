// Package booking implements the marketplace booking engine: ride lifecycle,
// driver registry, hotel inventory reservation, and restaurant ordering.
//
// The engine is stateless between calls. Every operation re-reads current
// state from the database, and every state change is a single conditional
// write whose affected-row count is checked before success is reported. That
// discipline is what prevents double-acceptance of a ride and overselling of
// hotel rooms without any application-level locking.
package booking

import "gorm.io/gorm"

// Engine exposes the booking operations. It holds only the injected
// database handle; construct one at startup and share it across requests.
type Engine struct {
	db *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{db: db}
}
