package handlers

import (
	"strconv"

	"github.com/davidkiptoo/safarigo-backend/internal/booking"
	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// GetRestaurants retrieves restaurants with optional filters
func GetRestaurants(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := booking.RestaurantFilter{
			Cuisine:  c.Query("cuisine"),
			Location: c.Query("location"),
		}
		if v := c.Query("min_rating"); v != "" {
			if r, err := strconv.ParseFloat(v, 64); err == nil {
				filter.MinRating = r
			}
		}
		if v := c.Query("max_delivery_time"); v != "" {
			if t, err := strconv.Atoi(v); err == nil {
				filter.MaxDeliveryTime = t
			}
		}

		restaurants, err := engine.ListRestaurants(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, restaurants)
	}
}

// CreateRestaurant adds a restaurant to the catalog
func CreateRestaurant(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name         string  `json:"name"`
			Cuisine      string  `json:"cuisine"`
			Location     string  `json:"location"`
			Rating       float64 `json:"rating"`
			DeliveryTime *int    `json:"delivery_time"`
			Menu         string  `json:"menu"`
			Description  string  `json:"description"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		restaurant, err := engine.CreateRestaurant(c.Request.Context(), booking.RestaurantInput{
			Name:         input.Name,
			Cuisine:      input.Cuisine,
			Location:     input.Location,
			Rating:       input.Rating,
			DeliveryTime: input.DeliveryTime,
			Menu:         input.Menu,
			Description:  input.Description,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, restaurant)
	}
}

// DeleteRestaurant removes a restaurant from the catalog
func DeleteRestaurant(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid restaurant ID"})
			return
		}

		if err := engine.DeleteRestaurant(c.Request.Context(), restaurantID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, gin.H{"message": "Restaurant deleted successfully"})
	}
}

// PlaceOrder prices an order against a restaurant's menu
func PlaceOrder(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid restaurant ID"})
			return
		}

		var input struct {
			Items               []models.OrderItem `json:"items"`
			SpecialInstructions string             `json:"special_instructions"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		order, err := engine.PlaceOrder(c.Request.Context(), restaurantID, input.Items, input.SpecialInstructions)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(200, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}
