package booking_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkiptoo/safarigo-backend/internal/booking"
	"github.com/davidkiptoo/safarigo-backend/testutil"
)

func intPtr(n int) *int {
	return &n
}

func seedHotel(t *testing.T, engine *booking.Engine, rooms int) uint {
	t.Helper()
	hotel, err := engine.CreateHotel(context.Background(), booking.HotelInput{
		Name:           "Savanna Lodge",
		Location:       "Naivasha",
		PricePerNight:  100,
		AvailableRooms: intPtr(rooms),
	})
	require.NoError(t, err)
	return hotel.ID
}

func TestCreateHotel_Defaults(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	hotel, err := engine.CreateHotel(context.Background(), booking.HotelInput{
		Name:          "Savanna Lodge",
		Location:      "Naivasha",
		PricePerNight: 150,
	})
	require.NoError(t, err)

	assert.NotZero(t, hotel.ID)
	assert.Equal(t, 4.0, hotel.Rating)
	assert.Equal(t, 10, hotel.AvailableRooms)
}

// An explicit zero must survive as zero, not be promoted to the default
func TestCreateHotel_ExplicitZeroRooms(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()

	hotel, err := engine.CreateHotel(ctx, booking.HotelInput{
		Name:           "Fully Booked Inn",
		Location:       "Nairobi",
		PricePerNight:  100,
		AvailableRooms: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, hotel.AvailableRooms)

	// Sold out from the start: bookable never, listable never
	_, _, err = engine.BookHotel(ctx, hotel.ID, 1)
	assert.ErrorIs(t, err, booking.ErrConflict)

	listed, err := engine.ListHotels(ctx, booking.HotelFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestCreateHotel_NegativeRooms(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	_, err := engine.CreateHotel(context.Background(), booking.HotelInput{
		Name:           "Lodge",
		Location:       "Naivasha",
		PricePerNight:  100,
		AvailableRooms: intPtr(-1),
	})
	assert.ErrorIs(t, err, booking.ErrValidation)
}

func TestCreateHotel_Validation(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()

	cases := []struct {
		name  string
		input booking.HotelInput
	}{
		{"missing name", booking.HotelInput{Location: "Naivasha", PricePerNight: 100}},
		{"missing location", booking.HotelInput{Name: "Lodge", PricePerNight: 100}},
		{"zero price", booking.HotelInput{Name: "Lodge", Location: "Naivasha"}},
		{"negative price", booking.HotelInput{Name: "Lodge", Location: "Naivasha", PricePerNight: -5}},
		{"rating out of range", booking.HotelInput{Name: "Lodge", Location: "Naivasha", PricePerNight: 100, Rating: 7}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.CreateHotel(ctx, tc.input)
			assert.ErrorIs(t, err, booking.ErrValidation)
		})
	}
}

func TestBookHotel(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()
	hotelID := seedHotel(t, engine, 10)

	hotel, receipt, err := engine.BookHotel(ctx, hotelID, 3)
	require.NoError(t, err)

	// One room per call regardless of nights; cost scales with nights
	assert.Equal(t, 9, hotel.AvailableRooms)
	assert.Equal(t, 3, receipt.Nights)
	assert.Equal(t, 300.0, receipt.TotalCost)
}

func TestBookHotel_NightsDefaultsToOne(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	hotelID := seedHotel(t, engine, 10)

	_, receipt, err := engine.BookHotel(context.Background(), hotelID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, receipt.Nights)
	assert.Equal(t, 100.0, receipt.TotalCost)
}

func TestBookHotel_InvalidNights(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	hotelID := seedHotel(t, engine, 10)

	_, _, err := engine.BookHotel(context.Background(), hotelID, -2)
	assert.ErrorIs(t, err, booking.ErrValidation)
}

func TestBookHotel_NotFound(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	_, _, err := engine.BookHotel(context.Background(), 9999, 1)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestBookHotel_SoldOut(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()
	hotelID := seedHotel(t, engine, 1)

	hotel, _, err := engine.BookHotel(ctx, hotelID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, hotel.AvailableRooms)

	_, _, err = engine.BookHotel(ctx, hotelID, 1)
	assert.ErrorIs(t, err, booking.ErrConflict)

	// Counter must not go negative
	got, err := engine.GetHotel(ctx, hotelID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableRooms)
}

func TestBookHotel_ConcurrentLastRoom(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()
	hotelID := seedHotel(t, engine, 1)

	results := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, results[i] = engine.BookHotel(ctx, hotelID, 1)
		}(i)
	}
	wg.Wait()

	var wins, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, booking.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins, "exactly one booking must win the last room")
	assert.Equal(t, 1, conflicts)

	got, err := engine.GetHotel(ctx, hotelID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableRooms)
}

func TestDeleteHotel(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()
	hotelID := seedHotel(t, engine, 5)

	require.NoError(t, engine.DeleteHotel(ctx, hotelID))

	_, err := engine.GetHotel(ctx, hotelID)
	assert.ErrorIs(t, err, booking.ErrNotFound)

	err = engine.DeleteHotel(ctx, hotelID)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestListHotels_Filters(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()

	seed := []booking.HotelInput{
		{Name: "Budget Inn", Location: "Nairobi", PricePerNight: 50},
		{Name: "City Suites", Location: "Nairobi", PricePerNight: 200},
		{Name: "Beach Resort", Location: "Mombasa", PricePerNight: 300},
	}
	for _, in := range seed {
		_, err := engine.CreateHotel(ctx, in)
		require.NoError(t, err)
	}

	// Sold-out hotels never appear in listings
	soldOut, err := engine.CreateHotel(ctx, booking.HotelInput{
		Name: "Full House", Location: "Nairobi", PricePerNight: 80, AvailableRooms: intPtr(1),
	})
	require.NoError(t, err)
	_, _, err = engine.BookHotel(ctx, soldOut.ID, 1)
	require.NoError(t, err)

	all, err := engine.ListHotels(ctx, booking.HotelFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	nairobi, err := engine.ListHotels(ctx, booking.HotelFilter{Location: "nairobi"})
	require.NoError(t, err)
	assert.Len(t, nairobi, 2)

	midRange, err := engine.ListHotels(ctx, booking.HotelFilter{MinPrice: 100, MaxPrice: 250})
	require.NoError(t, err)
	require.Len(t, midRange, 1)
	assert.Equal(t, "City Suites", midRange[0].Name)

	both, err := engine.ListHotels(ctx, booking.HotelFilter{Location: "Mombasa", MinPrice: 250})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "Beach Resort", both[0].Name)
}
