package handlers

import (
	"net/http"
	"strconv"

	"manyar-backend/models"
	"manyar-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactHandler struct {
	DB *gorm.DB
}

type messageListResponse struct {
	Messages []models.ContactMessage `json:"messages"`
	utils.Pagination
}

func (h *ContactHandler) CreateContactMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	if err := h.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *ContactHandler) GetContactMessages(c *gin.Context) {
	page, perPage := utils.ParsePageParams(c.Query("page"), c.Query("per_page"))

	query := h.DB.Model(&models.ContactMessage{})
	if v := c.Query("is_read"); v != "" {
		if isRead, err := strconv.ParseBool(v); err == nil {
			query = query.Where("is_read = ?", isRead)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pagination := utils.NewPagination(total, page, perPage)

	var messages []models.ContactMessage
	err := query.
		Order("created_at DESC, id DESC").
		Offset(pagination.Offset()).
		Limit(pagination.PerPage).
		Find(&messages).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if messages == nil {
		messages = []models.ContactMessage{}
	}

	c.JSON(http.StatusOK, messageListResponse{
		Messages:   messages,
		Pagination: pagination,
	})
}

func (h *ContactHandler) UpdateContactMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	var message models.ContactMessage
	if err := h.DB.First(&message, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	// Only the read flag is mutable through this endpoint.
	var req struct {
		IsRead *bool `json:"is_read"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.IsRead != nil {
		message.IsRead = *req.IsRead
		if err := h.DB.Model(&message).Update("is_read", message.IsRead).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, message)
}

func (h *ContactHandler) DeleteContactMessage(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	var message models.ContactMessage
	if err := h.DB.First(&message, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}

	if err := h.DB.Delete(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
