package handlers

import (
	"context"
	"log"

	"github.com/davidkiptoo/safarigo-backend/internal/booking"
	"github.com/davidkiptoo/safarigo-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// GetDrivers retrieves all registered drivers
func GetDrivers(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		drivers, err := engine.ListDrivers(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(200, drivers)
	}
}

// RegisterDriver creates a new driver
func RegisterDriver(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		driver, err := engine.RegisterDriver(c.Request.Context(), input.Name, input.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(201, driver)
	}
}

// UpdateDriverStatus sets a driver's status. Ride acceptance does not flip
// availability on its own; clients call this explicitly when a driver goes
// on or off duty.
func UpdateDriverStatus(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid driver ID"})
			return
		}

		var input struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		driver, err := engine.SetDriverStatus(c.Request.Context(), driverID, input.Status)
		if err != nil {
			respondError(c, err)
			return
		}

		go func() {
			if err := services.SetDriverAvailability(context.Background(), driver.ID, driver.Status); err != nil {
				log.Printf("Failed to mirror driver availability: %v", err)
			}
		}()

		c.JSON(200, driver)
	}
}

// GetDriverAvailability reports a driver's current status, served from the
// Redis mirror when present and refreshed from the database on a miss.
func GetDriverAvailability(engine *booking.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		driverID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid driver ID"})
			return
		}

		if status, err := services.GetDriverAvailability(c.Request.Context(), driverID); err == nil {
			c.JSON(200, gin.H{"driver_id": driverID, "status": status, "cached": true})
			return
		}

		driver, err := engine.GetDriver(c.Request.Context(), driverID)
		if err != nil {
			respondError(c, err)
			return
		}

		go func() {
			if err := services.SetDriverAvailability(context.Background(), driver.ID, driver.Status); err != nil {
				log.Printf("Failed to mirror driver availability: %v", err)
			}
		}()

		c.JSON(200, gin.H{"driver_id": driver.ID, "status": driver.Status, "cached": false})
	}
}
