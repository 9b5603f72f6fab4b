package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkiptoo/safarigo-backend/internal/booking"
	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"github.com/davidkiptoo/safarigo-backend/testutil"
)

func TestRegisterDriver_DefaultStatus(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	driver, err := engine.RegisterDriver(context.Background(), "Alice", "")
	require.NoError(t, err)

	assert.NotZero(t, driver.ID)
	assert.Equal(t, models.DriverStatusAvailable, driver.Status)
}

func TestRegisterDriver_ExplicitStatus(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	driver, err := engine.RegisterDriver(context.Background(), "Bob", "off duty")
	require.NoError(t, err)
	assert.Equal(t, "off duty", driver.Status)
}

func TestRegisterDriver_MissingName(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	_, err := engine.RegisterDriver(context.Background(), "  ", "")
	assert.ErrorIs(t, err, booking.ErrValidation)
}

func TestSetDriverStatus(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()

	driver, err := engine.RegisterDriver(ctx, "Alice", "")
	require.NoError(t, err)

	updated, err := engine.SetDriverStatus(ctx, driver.ID, "busy")
	require.NoError(t, err)
	assert.Equal(t, "busy", updated.Status)
}

func TestSetDriverStatus_NotFound(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	_, err := engine.SetDriverStatus(context.Background(), 9999, "busy")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

// Accepting and completing a ride must leave the driver row untouched;
// availability changes only through SetDriverStatus.
func TestDriverStatusNotTouchedByRideLifecycle(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()

	driver, err := engine.RegisterDriver(ctx, "Alice", "")
	require.NoError(t, err)

	ride, err := engine.CreateRide(ctx, "A", "B")
	require.NoError(t, err)
	_, err = engine.AcceptRide(ctx, ride.ID, driver.ID)
	require.NoError(t, err)
	_, err = engine.CompleteRide(ctx, ride.ID)
	require.NoError(t, err)

	got, err := engine.GetDriver(ctx, driver.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DriverStatusAvailable, got.Status)
}
