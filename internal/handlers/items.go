package handlers

import (
	"github.com/davidkiptoo/safarigo-backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Legacy items endpoints kept for existing mobile clients.

// GetItems retrieves all items, newest first
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Item
		if err := db.Order("created_at DESC").Find(&items).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(200, items)
	}
}

// CreateItem creates a new item
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			UserID      *uint  `json:"user_id"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		if input.Title == "" {
			c.JSON(400, gin.H{"error": "Title is required"})
			return
		}

		item := models.Item{
			Title:       input.Title,
			Description: input.Description,
			UserID:      input.UserID,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create item"})
			return
		}
		c.JSON(201, item)
	}
}

// DeleteItem removes an item
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := parseID(c.Param("id"))
		if err != nil {
			c.JSON(400, gin.H{"error": "Invalid item ID"})
			return
		}

		res := db.Delete(&models.Item{}, itemID)
		if res.Error != nil {
			c.JSON(500, gin.H{"error": "Failed to delete item"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(404, gin.H{"error": "Item not found"})
			return
		}
		c.JSON(200, gin.H{"message": "Item deleted successfully"})
	}
}
