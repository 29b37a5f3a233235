package handlers

import (
	"net/http"

	"manyar-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StatsHandler struct {
	DB *gorm.DB
}

func (h *StatsHandler) GetStats(c *gin.Context) {
	var (
		totalProducts    int64
		activeProducts   int64
		featuredProducts int64
		totalCategories  int64
		unreadMessages   int64
		totalMessages    int64
	)

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&totalProducts, h.DB.Model(&models.Product{})},
		{&activeProducts, h.DB.Model(&models.Product{}).Where("is_active = ?", true)},
		{&featuredProducts, h.DB.Model(&models.Product{}).Where("is_featured = ?", true)},
		{&totalCategories, h.DB.Model(&models.Category{})},
		{&unreadMessages, h.DB.Model(&models.ContactMessage{}).Where("is_read = ?", false)},
		{&totalMessages, h.DB.Model(&models.ContactMessage{})},
	}

	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_products":    totalProducts,
		"active_products":   activeProducts,
		"featured_products": featuredProducts,
		"total_categories":  totalCategories,
		"unread_messages":   unreadMessages,
		"total_messages":    totalMessages,
	})
}
