package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"gorm.io/gorm"
)

// RestaurantInput carries the caller-supplied fields for CreateRestaurant.
// DeliveryTime is a pointer so an explicitly supplied zero is rejected
// rather than conflated with an absent field, which defaults to 30.
type RestaurantInput struct {
	Name         string
	Cuisine      string
	Location     string
	Rating       float64
	DeliveryTime *int
	Menu         string
	Description  string
}

// RestaurantFilter narrows ListRestaurants; predicates are AND-composed.
type RestaurantFilter struct {
	Cuisine         string
	Location        string
	MinRating       float64
	MaxDeliveryTime int
}

// CreateRestaurant validates and inserts a restaurant.
func (e *Engine) CreateRestaurant(ctx context.Context, in RestaurantInput) (*models.Restaurant, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Cuisine = strings.TrimSpace(in.Cuisine)
	in.Location = strings.TrimSpace(in.Location)
	if in.Name == "" || in.Cuisine == "" || in.Location == "" {
		return nil, fmt.Errorf("%w: name, cuisine and location are required", ErrValidation)
	}
	if in.Rating == 0 {
		in.Rating = 4.0
	}
	if in.Rating < 0 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 0 and 5", ErrValidation)
	}
	deliveryTime := 30
	if in.DeliveryTime != nil {
		if *in.DeliveryTime <= 0 {
			return nil, fmt.Errorf("%w: delivery time must be greater than 0", ErrValidation)
		}
		deliveryTime = *in.DeliveryTime
	}

	restaurant := models.Restaurant{
		Name:         in.Name,
		Cuisine:      in.Cuisine,
		Location:     in.Location,
		Rating:       in.Rating,
		DeliveryTime: deliveryTime,
		Menu:         in.Menu,
		Description:  in.Description,
	}
	if err := e.db.WithContext(ctx).Create(&restaurant).Error; err != nil {
		return nil, fmt.Errorf("%w: create restaurant: %v", ErrStorage, err)
	}
	return &restaurant, nil
}

// ListRestaurants returns restaurants filtered by the given predicates,
// best rated first.
func (e *Engine) ListRestaurants(ctx context.Context, filter RestaurantFilter) ([]models.Restaurant, error) {
	query := e.db.WithContext(ctx).Model(&models.Restaurant{})

	if filter.Cuisine != "" {
		query = query.Where("LOWER(cuisine) LIKE LOWER(?)", "%"+filter.Cuisine+"%")
	}
	if filter.Location != "" {
		query = query.Where("LOWER(location) LIKE LOWER(?)", "%"+filter.Location+"%")
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	if filter.MaxDeliveryTime > 0 {
		query = query.Where("delivery_time <= ?", filter.MaxDeliveryTime)
	}

	var restaurants []models.Restaurant
	if err := query.Order("rating DESC, created_at DESC").Find(&restaurants).Error; err != nil {
		return nil, fmt.Errorf("%w: list restaurants: %v", ErrStorage, err)
	}
	return restaurants, nil
}

// DeleteRestaurant removes a restaurant row.
func (e *Engine) DeleteRestaurant(ctx context.Context, restaurantID uint) error {
	res := e.db.WithContext(ctx).Delete(&models.Restaurant{}, restaurantID)
	if res.Error != nil {
		return fmt.Errorf("%w: delete restaurant: %v", ErrStorage, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: restaurant %d", ErrNotFound, restaurantID)
	}
	return nil
}

// PlaceOrder prices an order against a restaurant. Orders are not persisted;
// the response is a quote with an estimated delivery time.
func (e *Engine) PlaceOrder(ctx context.Context, restaurantID uint, items []models.OrderItem, specialInstructions string) (*models.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	}

	var restaurant models.Restaurant
	if err := e.db.WithContext(ctx).First(&restaurant, restaurantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: restaurant %d", ErrNotFound, restaurantID)
		}
		return nil, fmt.Errorf("%w: load restaurant: %v", ErrStorage, err)
	}

	total := 0.0
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
		total += items[i].Price * float64(items[i].Quantity)
	}

	order := models.Order{
		RestaurantID:        restaurant.ID,
		RestaurantName:      restaurant.Name,
		Items:               items,
		SpecialInstructions: specialInstructions,
		EstimatedTotal:      total,
		EstimatedDelivery:   time.Now().Add(time.Duration(restaurant.DeliveryTime) * time.Minute),
		Status:              "confirmed",
	}
	return &order, nil
}
