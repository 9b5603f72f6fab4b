package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/davidkiptoo/safarigo-backend/internal/booking"
	"github.com/davidkiptoo/safarigo-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// GetHotels retrieves hotels with rooms left, with optional filters.
// Listings are served from Redis when a fresh copy exists.
func GetHotels(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := booking.HotelFilter{Location: c.Query("location")}
		if v := c.Query("min_price"); v != "" {
			if p, err := strconv.ParseFloat(v, 64); err == nil {
				filter.MinPrice = p
			}
		}
		if v := c.Query("max_price"); v != "" {
			if p, err := strconv.ParseFloat(v, 64); err == nil {
				filter.MaxPrice = p
			}
		}

		cacheKey := fmt.Sprintf("%s:%g:%g", filter.Location, filter.MinPrice, filter.MaxPrice)
		if hotels, ok := services.GetCachedHotelList(c.Request.Context(), cacheKey); ok {
			c.JSON(200, hotels)
			return
		}

		hotels, err := engine.ListHotels(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err)
			return
		}

		if err := services.CacheHotelList(c.Request.Context(), cacheKey, hotels); err != nil {
			log.Printf("Failed to cache hotel list: %v", err)
		}

		c.JSON(200, hotels)
	}
}

// CreateHotel adds a hotel to the catalog
func CreateHotel(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name           string  `json:"name"`
			Location       string  `json:"location"`
			PricePerNight  float64 `json:"price_per_night"`
			Rating         float64 `json:"rating"`
			Amenities      string  `json:"amenities"`
			Description    string  `json:"description"`
			AvailableRooms *int    `json:"available_rooms"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		hotel, err := engine.CreateHotel(c.Request.Context(), booking.HotelInput{
			Name:           input.Name,
			Location:       input.Location,
			PricePerNight:  input.PricePerNight,
			Rating:         input.Rating,
			Amenities:      input.Amenities,
			Description:    input.Description,
			AvailableRooms: input.AvailableRooms,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		invalidateHotelCache()

		c.JSON(201, hotel)
	}
}

// DeleteHotel removes a hotel from the catalog
func DeleteHotel(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid hotel ID"})
			return
		}

		if err := engine.DeleteHotel(c.Request.Context(), hotelID); err != nil {
			respondError(c, err)
			return
		}

		invalidateHotelCache()

		c.JSON(200, gin.H{"message": "Hotel deleted successfully"})
	}
}

// BookHotel reserves one room and returns the stay quote
func BookHotel(engine *booking.Engine, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid hotel ID"})
			return
		}

		var input struct {
			Nights int `json:"nights"`
		}
		// Body is optional; nights defaults to 1
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		hotel, bookingReceipt, err := engine.BookHotel(c.Request.Context(), hotelID, input.Nights)
		if err != nil {
			respondError(c, err)
			return
		}

		invalidateHotelCache()
		hub.SendHotelBooked(services.HotelBooked{
			HotelID:        hotel.ID,
			AvailableRooms: hotel.AvailableRooms,
		})

		c.JSON(200, gin.H{
			"message": "Hotel booked successfully",
			"hotel":   hotel,
			"booking": bookingReceipt,
		})
	}
}

func invalidateHotelCache() {
	go func() {
		if err := services.InvalidateHotelCache(context.Background()); err != nil {
			log.Printf("Failed to invalidate hotel cache: %v", err)
		}
	}()
}
