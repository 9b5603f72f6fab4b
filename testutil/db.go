// Package testutil provides shared helpers for integration tests.
// Helpers in this package skip automatically when required environment
// variables are not set, so the suite can run without a database.
package testutil

import (
	"os"
	"testing"

	"github.com/davidkiptoo/safarigo-backend/internal/database"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a *gorm.DB connected to the database specified by the
// TEST_DATABASE_URL environment variable, runs migrations, and truncates
// all tables so every test starts from a clean slate.
//
// The test is skipped automatically if TEST_DATABASE_URL is not set, so
// integration tests are opt-in and never break environments without a DB.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("testutil.NewDB: open: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("testutil.NewDB: migrate: %v", err)
	}

	err = db.Exec("TRUNCATE rides, drivers, hotels, restaurants, items, users RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("testutil.NewDB: truncate: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
