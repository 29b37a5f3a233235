package handlers

import (
	"net/http"
	"strconv"

	"manyar-backend/models"
	"manyar-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductHandler struct {
	DB *gorm.DB
}

type productImageInput struct {
	ImageURL  string `json:"image_url" binding:"required"`
	AltText   string `json:"alt_text"`
	IsPrimary *bool  `json:"is_primary"`
	SortOrder *int   `json:"sort_order"`
}

type productListResponse struct {
	Products []models.Product `json:"products"`
	utils.Pagination
}

func (h *ProductHandler) GetProducts(c *gin.Context) {
	page, perPage := utils.ParsePageParams(c.Query("page"), c.Query("per_page"))

	// Inactive products are hidden unless is_active=false is asked for explicitly.
	isActive := true
	if v, err := strconv.ParseBool(c.DefaultQuery("is_active", "true")); err == nil {
		isActive = v
	}

	query := h.DB.Model(&models.Product{}).Where("is_active = ?", isActive)

	if v := c.Query("category_id"); v != "" {
		if categoryID, err := strconv.ParseUint(v, 10, 32); err == nil {
			query = query.Where("category_id = ?", categoryID)
		}
	}
	if v := c.Query("is_featured"); v != "" {
		if featured, err := strconv.ParseBool(v); err == nil {
			query = query.Where("is_featured = ?", featured)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	pagination := utils.NewPagination(total, page, perPage)

	var products []models.Product
	err := query.
		Preload("Category").
		Preload("Images", imagesBySortOrder).
		Order("created_at DESC, id DESC").
		Offset(pagination.Offset()).
		Limit(pagination.PerPage).
		Find(&products).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if err := h.decorateProducts(products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(http.StatusOK, productListResponse{
		Products:   products,
		Pagination: pagination,
	})
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req struct {
		NameAr        string              `json:"name_ar" binding:"required"`
		NameEn        string              `json:"name_en" binding:"required"`
		DescriptionAr string              `json:"description_ar"`
		DescriptionEn string              `json:"description_en"`
		Price         *float64            `json:"price"`
		OriginalPrice *float64            `json:"original_price"`
		ImageURL      string              `json:"image_url"`
		IsFeatured    *bool               `json:"is_featured"`
		IsActive      *bool               `json:"is_active"`
		StockQuantity *int                `json:"stock_quantity"`
		PhoneNumber   string              `json:"phone_number"`
		CategoryID    uint                `json:"category_id" binding:"required"`
		Images        []productImageInput `json:"images"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	product := models.Product{
		NameAr:        req.NameAr,
		NameEn:        req.NameEn,
		DescriptionAr: req.DescriptionAr,
		DescriptionEn: req.DescriptionEn,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		ImageURL:      req.ImageURL,
		IsFeatured:    req.IsFeatured != nil && *req.IsFeatured,
		IsActive:      req.IsActive == nil || *req.IsActive,
		PhoneNumber:   req.PhoneNumber,
		CategoryID:    req.CategoryID,
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	// Product plus its images is one atomic write; any failure rolls
	// the whole thing back.
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return createProductImages(tx, product.ID, req.Images)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	created, err := h.loadProduct(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	product, err := h.loadProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// Partial update; a present images key replaces the whole gallery.
	var req struct {
		NameAr        *string              `json:"name_ar"`
		NameEn        *string              `json:"name_en"`
		DescriptionAr *string              `json:"description_ar"`
		DescriptionEn *string              `json:"description_en"`
		Price         *float64             `json:"price"`
		OriginalPrice *float64             `json:"original_price"`
		ImageURL      *string              `json:"image_url"`
		IsFeatured    *bool                `json:"is_featured"`
		IsActive      *bool                `json:"is_active"`
		StockQuantity *int                 `json:"stock_quantity"`
		PhoneNumber   *string              `json:"phone_number"`
		CategoryID    *uint                `json:"category_id"`
		Images        *[]productImageInput `json:"images"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": utils.SanitizeValidationError(err)})
		return
	}

	if req.NameAr != nil {
		product.NameAr = *req.NameAr
	}
	if req.NameEn != nil {
		product.NameEn = *req.NameEn
	}
	if req.DescriptionAr != nil {
		product.DescriptionAr = *req.DescriptionAr
	}
	if req.DescriptionEn != nil {
		product.DescriptionEn = *req.DescriptionEn
	}
	if req.Price != nil {
		product.Price = req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.PhoneNumber != nil {
		product.PhoneNumber = *req.PhoneNumber
	}
	if req.CategoryID != nil {
		product.CategoryID = *req.CategoryID
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		if req.Images != nil {
			// Replace wholesale: drop every existing image, then
			// insert the supplied list fresh.
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
				return err
			}
			return createProductImages(tx, product.ID, *req.Images)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.loadProduct(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// createProductImages inserts the gallery for a product. The first
// image defaults to primary and sort order defaults to list position.
func createProductImages(tx *gorm.DB, productID uint, images []productImageInput) error {
	for i, img := range images {
		productImage := models.ProductImage{
			ProductID: productID,
			ImageURL:  img.ImageURL,
			AltText:   img.AltText,
			IsPrimary: i == 0,
			SortOrder: i,
		}
		if img.IsPrimary != nil {
			productImage.IsPrimary = *img.IsPrimary
		}
		if img.SortOrder != nil {
			productImage.SortOrder = *img.SortOrder
		}
		if err := tx.Create(&productImage).Error; err != nil {
			return err
		}
	}
	return nil
}

// loadProduct fetches a product with its category and ordered images
// and resolves the derived response fields.
func (h *ProductHandler) loadProduct(id uint) (*models.Product, error) {
	var product models.Product
	err := h.DB.
		Preload("Category").
		Preload("Images", imagesBySortOrder).
		First(&product, id).Error
	if err != nil {
		return nil, err
	}

	product.Decorate()
	if product.Category != nil {
		h.DB.Model(&models.Product{}).Where("category_id = ?", product.Category.ID).Count(&product.Category.ProductsCount)
	}
	return &product, nil
}

// decorateProducts resolves derived fields for a product list,
// filling category counts from one grouped query.
func (h *ProductHandler) decorateProducts(products []models.Product) error {
	counts, err := productCountsByCategory(h.DB)
	if err != nil {
		return err
	}
	for i := range products {
		products[i].Decorate()
		if products[i].Category != nil {
			products[i].Category.ProductsCount = counts[products[i].Category.ID]
		}
	}
	return nil
}
