package handlers

import (
	"errors"
	"net/http"

	"retail-pos-api/analytics"
	"retail-pos-api/config"
	"retail-pos-api/logger"
	"retail-pos-api/middleware"
	"retail-pos-api/models"

	"github.com/gin-gonic/gin"
)

var productSortColumns = map[string]string{
	"name":       "name",
	"sku":        "sku",
	"category":   "category",
	"price":      "price",
	"sort_order": "sort_order",
	"created_at": "created_at",
}

// ListProducts returns catalog products with filtering and pagination
func ListProducts(c *gin.Context) {
	page, limit, offset := pagination(c)

	q := config.DB.Model(&models.Product{})

	if category := c.Query("category"); category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if availability := c.Query("availability"); availability != "" && availability != "all" {
		q = q.Where("is_available = ?", availability == "available")
	}
	if featured := c.Query("featured"); featured != "" && featured != "all" {
		q = q.Where("is_featured = ?", featured == "featured")
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR sku LIKE ? OR barcode LIKE ? OR description LIKE ?", like, like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	column, ok := productSortColumns[c.DefaultQuery("sortBy", "sort_order")]
	if !ok {
		column = "sort_order"
	}
	direction := "ASC"
	if c.DefaultQuery("sortOrder", "asc") == "desc" {
		direction = "DESC"
	}

	var products []models.Product
	if err := q.Preload("CreatedBy").
		Order(column + " " + direction).
		Offset(offset).
		Limit(limit).
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages(total, limit),
		},
	})
}

// GetProduct returns a single product by id
func GetProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.Preload("CreatedBy").First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

type CreateProductRequest struct {
	Name            string                 `json:"name" binding:"required"`
	Description     string                 `json:"description"`
	Category        models.ProductCategory `json:"category"`
	SKU             string                 `json:"sku" binding:"required"`
	Barcode         string                 `json:"barcode"`
	Price           float64                `json:"price" binding:"min=0"`
	CostPrice       float64                `json:"cost_price" binding:"min=0"`
	Image           string                 `json:"image"`
	PreparationTime int                    `json:"preparation_time"`
	IsAvailable     *bool                  `json:"is_available"`
	IsFeatured      bool                   `json:"is_featured"`
	SortOrder       int                    `json:"sort_order"`
}

// CreateProduct creates a catalog product. A price below cost is rejected,
// never corrected.
func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Category == "" {
		req.Category = models.CategoryOther
	}
	if !models.ValidProductCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	product := models.Product{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		SKU:             req.SKU,
		Barcode:         req.Barcode,
		Price:           req.Price,
		CostPrice:       req.CostPrice,
		Image:           req.Image,
		PreparationTime: req.PreparationTime,
		IsAvailable:     available,
		IsFeatured:      req.IsFeatured,
		SortOrder:       req.SortOrder,
		CreatedByID:     middleware.GetUserID(c),
	}

	if err := config.DB.Create(&product).Error; err != nil {
		if errors.Is(err, models.ErrPriceBelowCost) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": models.ErrPriceBelowCost.Error()})
			return
		}
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "SKU already exists"})
			return
		}
		logger.Error("create product failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": product})
}

// UpdateProductRequest carries optional fields; only non-nil ones apply
type UpdateProductRequest struct {
	Name            *string                 `json:"name"`
	Description     *string                 `json:"description"`
	Category        *models.ProductCategory `json:"category"`
	SKU             *string                 `json:"sku"`
	Barcode         *string                 `json:"barcode"`
	Price           *float64                `json:"price"`
	CostPrice       *float64                `json:"cost_price"`
	Image           *string                 `json:"image"`
	PreparationTime *int                    `json:"preparation_time"`
	IsAvailable     *bool                   `json:"is_available"`
	IsFeatured      *bool                   `json:"is_featured"`
	SortOrder       *int                    `json:"sort_order"`
}

// UpdateProduct applies a partial update; the price/cost invariant is
// re-checked by the model hook on save
func UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		if !models.ValidProductCategory(*req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}
		product.Category = *req.Category
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Barcode != nil {
		product.Barcode = *req.Barcode
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.CostPrice != nil {
		product.CostPrice = *req.CostPrice
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.PreparationTime != nil {
		product.PreparationTime = *req.PreparationTime
	}
	if req.IsAvailable != nil {
		product.IsAvailable = *req.IsAvailable
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	if req.SortOrder != nil {
		product.SortOrder = *req.SortOrder
	}

	if err := config.DB.Save(&product).Error; err != nil {
		if errors.Is(err, models.ErrPriceBelowCost) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": models.ErrPriceBelowCost.Error()})
			return
		}
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "SKU already exists"})
			return
		}
		logger.Error("update product failed", "id", product.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// DeleteProduct hard-deletes a product
func DeleteProduct(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	if err := config.DB.Delete(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted successfully"})
}

// FeaturedProducts lists available featured products in display order
func FeaturedProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.
		Where("is_featured = ? AND is_available = ?", true, true).
		Order("sort_order ASC, name ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products, "count": len(products)})
}

// ProductsByCategory lists available products in one category
func ProductsByCategory(c *gin.Context) {
	category := models.ProductCategory(c.Param("category"))
	if !models.ValidProductCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
		return
	}

	var products []models.Product
	if err := config.DB.
		Where("category = ? AND is_available = ?", category, true).
		Order("sort_order ASC, name ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": products, "count": len(products)})
}

// ToggleProductAvailability flips the availability flag
func ToggleProductAvailability(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	product.IsAvailable = !product.IsAvailable
	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// ToggleProductFeatured flips the featured flag
func ToggleProductFeatured(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	product.IsFeatured = !product.IsFeatured
	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

type SortOrderRequest struct {
	SortOrder *int `json:"sort_order" binding:"required"`
}

// UpdateProductSortOrder sets the display rank of a product
func UpdateProductSortOrder(c *gin.Context) {
	var product models.Product
	if err := config.DB.First(&product, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	var req SortOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "sort_order is required"})
		return
	}

	product.SortOrder = *req.SortOrder
	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": product})
}

// ProductSummary serves the per-resource catalog analytics rollup
func ProductSummary(c *gin.Context) {
	data, err := analytics.Products(config.DB)
	if err != nil {
		logger.Error("product summary failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
