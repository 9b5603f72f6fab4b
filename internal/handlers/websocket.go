package handlers

import (
	"github.com/davidkiptoo/safarigo-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// WebSocketHandler upgrades the connection and registers the client with
// the hub. Requires the auth middleware to have set userId.
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userId")
		services.HandleWebSocket(hub, c.Writer, c.Request, userID)
	}
}

// WebSocketStats reports how many clients the hub currently holds
func WebSocketStats(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"connected": hub.GetConnectedClients()})
	}
}
