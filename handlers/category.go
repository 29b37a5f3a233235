package handlers

import (
	"net/http"

	"manyar-backend/models"
	"manyar-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	DB *gorm.DB
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.DB.Order("id ASC").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	counts, err := productCountsByCategory(h.DB)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	for i := range categories {
		categories[i].ProductsCount = counts[categories[i].ID]
	}
	if categories == nil {
		categories = []models.Category{}
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req struct {
		NameAr        string `json:"name_ar" binding:"required"`
		NameEn        string `json:"name_en" binding:"required"`
		DescriptionAr string `json:"description_ar"`
		DescriptionEn string `json:"description_en"`
		Icon          string `json:"icon"`
		WhatsappLink  string `json:"whatsapp_link"`
		PhoneNumber   string `json:"phone_number"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	category := models.Category{
		NameAr:        req.NameAr,
		NameEn:        req.NameEn,
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		Icon:          req.Icon,
		WhatsappLink:  req.WhatsappLink,
		PhoneNumber:   req.PhoneNumber,
	}

	if err := h.DB.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	h.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&category.ProductsCount)

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	// Partial update: only fields present in the body are applied.
	var req struct {
		NameAr        *string `json:"name_ar"`
		NameEn        *string `json:"name_en"`
		DescriptionAr *string `json:"description_ar"`
		DescriptionEn *string `json:"description_en"`
		Icon          *string `json:"icon"`
		WhatsappLink  *string `json:"whatsapp_link"`
		PhoneNumber   *string `json:"phone_number"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.NameAr != nil {
		category.NameAr = *req.NameAr
	}
	if req.NameEn != nil {
		category.NameEn = *req.NameEn
	}
	if req.DescriptionAr != nil {
		category.DescriptionAr = *req.DescriptionAr
	}
	if req.DescriptionEn != nil {
		category.DescriptionEn = *req.DescriptionEn
	}
	if req.Icon != nil {
		category.Icon = *req.Icon
	}
	if req.WhatsappLink != nil {
		category.WhatsappLink = *req.WhatsappLink
	}
	if req.PhoneNumber != nil {
		category.PhoneNumber = *req.PhoneNumber
	}

	if err := h.DB.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.DB.Model(&models.Product{}).Where("category_id = ?", category.ID).Count(&category.ProductsCount)

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	// Two-level cascade: category -> products -> product images, all
	// inside one transaction so a mid-sequence failure leaves no orphans.
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id IN (?)",
			tx.Model(&models.Product{}).Select("id").Where("category_id = ?", category.ID),
		).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", category.ID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
