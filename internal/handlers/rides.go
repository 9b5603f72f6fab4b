package handlers

import (
	"context"
	"log"
	"strconv"

	"github.com/davidkiptoo/safarigo-backend/internal/booking"
	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"github.com/davidkiptoo/safarigo-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// GetRides retrieves all rides, newest first
func GetRides(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		rides, err := engine.ListRides(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, rides)
	}
}

// CreateRide handles the creation of a new ride request
func CreateRide(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Pickup      string `json:"pickup"`
			Destination string `json:"destination"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		ride, err := engine.CreateRide(c.Request.Context(), input.Pickup, input.Destination)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, ride)
	}
}

// AcceptRide assigns a driver to a pending ride
func AcceptRide(engine *booking.Engine, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		rideID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid ride ID"})
			return
		}

		var input struct {
			DriverID uint `json:"driver_id"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		ride, err := engine.AcceptRide(c.Request.Context(), rideID, input.DriverID)
		if err != nil {
			respondError(c, err)
			return
		}

		// Fan out the acceptance to connected clients
		accepted := services.RideAccepted{
			RideID:   ride.ID,
			DriverID: input.DriverID,
		}
		if ride.Driver != nil {
			accepted.DriverName = ride.Driver.Name
		}
		hub.SendRideAccepted(accepted)

		go func() {
			if err := services.PublishRideUpdate(context.Background(), ride.ID, string(models.RideStatusAccepted)); err != nil {
				log.Printf("Failed to publish ride update: %v", err)
			}
		}()

		c.JSON(200, ride)
	}
}

// CompleteRide marks an accepted ride as completed
func CompleteRide(engine *booking.Engine, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		rideID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid ride ID"})
			return
		}

		ride, err := engine.CompleteRide(c.Request.Context(), rideID)
		if err != nil {
			respondError(c, err)
			return
		}

		completed := services.RideCompleted{RideID: ride.ID}
		if ride.DriverID != nil {
			completed.DriverID = *ride.DriverID
		}
		hub.SendRideCompleted(completed)

		go func() {
			if err := services.PublishRideUpdate(context.Background(), ride.ID, string(models.RideStatusCompleted)); err != nil {
				log.Printf("Failed to publish ride update: %v", err)
			}
		}()

		c.JSON(200, ride)
	}
}

// GetRide retrieves a single ride by id
func GetRide(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		rideID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid ride ID"})
			return
		}

		ride, err := engine.GetRide(c.Request.Context(), rideID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, ride)
	}
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	return uint(id), err
}
