package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidkiptoo/safarigo-backend/internal/booking"
	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"github.com/davidkiptoo/safarigo-backend/testutil"
)

func seedRestaurant(t *testing.T, engine *booking.Engine) *models.Restaurant {
	t.Helper()
	restaurant, err := engine.CreateRestaurant(context.Background(), booking.RestaurantInput{
		Name:     "Mama Njeri's",
		Cuisine:  "Kenyan",
		Location: "Nairobi",
	})
	require.NoError(t, err)
	return restaurant
}

func TestCreateRestaurant_Defaults(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	restaurant := seedRestaurant(t, engine)
	assert.Equal(t, 4.0, restaurant.Rating)
	assert.Equal(t, 30, restaurant.DeliveryTime)
}

func TestCreateRestaurant_Validation(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()

	_, err := engine.CreateRestaurant(ctx, booking.RestaurantInput{Cuisine: "Kenyan", Location: "Nairobi"})
	assert.ErrorIs(t, err, booking.ErrValidation)

	_, err = engine.CreateRestaurant(ctx, booking.RestaurantInput{
		Name: "X", Cuisine: "Kenyan", Location: "Nairobi", Rating: 5.5,
	})
	assert.ErrorIs(t, err, booking.ErrValidation)
}

// An explicit zero or negative delivery time is rejected, not silently
// replaced with the default
func TestCreateRestaurant_InvalidDeliveryTime(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()

	for _, minutes := range []int{0, -15} {
		_, err := engine.CreateRestaurant(ctx, booking.RestaurantInput{
			Name: "X", Cuisine: "Kenyan", Location: "Nairobi", DeliveryTime: intPtr(minutes),
		})
		assert.ErrorIs(t, err, booking.ErrValidation)
	}
}

func TestListRestaurants_Filters(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()

	seed := []booking.RestaurantInput{
		{Name: "Sushi Bar", Cuisine: "Japanese", Location: "Westlands", Rating: 4.8, DeliveryTime: intPtr(45)},
		{Name: "Burger Joint", Cuisine: "American", Location: "Westlands", Rating: 3.9, DeliveryTime: intPtr(20)},
		{Name: "Nyama Choma Place", Cuisine: "Kenyan", Location: "Karen", Rating: 4.5, DeliveryTime: intPtr(60)},
	}
	for _, in := range seed {
		_, err := engine.CreateRestaurant(ctx, in)
		require.NoError(t, err)
	}

	all, err := engine.ListRestaurants(ctx, booking.RestaurantFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Best rated first
	assert.Equal(t, "Sushi Bar", all[0].Name)

	fast, err := engine.ListRestaurants(ctx, booking.RestaurantFilter{MaxDeliveryTime: 30})
	require.NoError(t, err)
	require.Len(t, fast, 1)
	assert.Equal(t, "Burger Joint", fast[0].Name)

	rated, err := engine.ListRestaurants(ctx, booking.RestaurantFilter{MinRating: 4.0, Location: "westlands"})
	require.NoError(t, err)
	require.Len(t, rated, 1)
	assert.Equal(t, "Sushi Bar", rated[0].Name)
}

func TestDeleteRestaurant_NotFound(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	err := engine.DeleteRestaurant(context.Background(), 9999)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}

func TestPlaceOrder(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	ctx := context.Background()
	restaurant := seedRestaurant(t, engine)

	before := time.Now()
	order, err := engine.PlaceOrder(ctx, restaurant.ID, []models.OrderItem{
		{Name: "Ugali", Price: 150, Quantity: 2},
		{Name: "Sukuma", Price: 80}, // quantity defaults to 1
	}, "extra spicy")
	require.NoError(t, err)

	assert.Equal(t, restaurant.ID, order.RestaurantID)
	assert.Equal(t, "Mama Njeri's", order.RestaurantName)
	assert.Equal(t, 380.0, order.EstimatedTotal)
	assert.Equal(t, "confirmed", order.Status)
	assert.Equal(t, "extra spicy", order.SpecialInstructions)

	wantDelivery := before.Add(time.Duration(restaurant.DeliveryTime) * time.Minute)
	assert.WithinDuration(t, wantDelivery, order.EstimatedDelivery, time.Minute)
}

func TestPlaceOrder_EmptyItems(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))
	restaurant := seedRestaurant(t, engine)

	_, err := engine.PlaceOrder(context.Background(), restaurant.ID, nil, "")
	assert.ErrorIs(t, err, booking.ErrValidation)
}

func TestPlaceOrder_RestaurantNotFound(t *testing.T) {
	engine := booking.NewEngine(testutil.NewDB(t))

	_, err := engine.PlaceOrder(context.Background(), 9999, []models.OrderItem{{Name: "Ugali", Price: 150}}, "")
	assert.ErrorIs(t, err, booking.ErrNotFound)
}
