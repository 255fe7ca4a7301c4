package handlers

import (
	"net/http"
	"time"

	"retail-pos-api/analytics"
	"retail-pos-api/config"
	"retail-pos-api/logger"
	"retail-pos-api/middleware"
	"retail-pos-api/models"
	"retail-pos-api/stock"

	"github.com/gin-gonic/gin"
)

// inventorySortColumns whitelists sortable columns for the list endpoint
var inventorySortColumns = map[string]string{
	"name":          "name",
	"sku":           "sku",
	"category":      "category",
	"current_stock": "current_stock",
	"last_updated":  "last_updated",
	"created_at":    "created_at",
}

// ListInventory returns active inventory items with filtering and pagination
func ListInventory(c *gin.Context) {
	page, limit, offset := pagination(c)

	q := config.DB.Model(&models.InventoryItem{}).Where("is_active = ?", true)

	if category := c.Query("category"); category != "" && category != "all" {
		q = q.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("name LIKE ? OR sku LIKE ? OR barcode LIKE ?", like, like, like)
	}
	if status := c.Query("stockStatus"); status != "" && status != "all" {
		switch models.StockStatus(status) {
		case models.StockStatusOut:
			q = q.Where("current_stock = 0")
		case models.StockStatusLow:
			q = q.Where(models.LowStockCond)
		case models.StockStatusIn:
			q = q.Where("current_stock > min_stock")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	column, ok := inventorySortColumns[c.DefaultQuery("sortBy", "last_updated")]
	if !ok {
		column = "last_updated"
	}
	direction := "DESC"
	if c.DefaultQuery("sortOrder", "desc") == "asc" {
		direction = "ASC"
	}

	var items []models.InventoryItem
	if err := q.Preload("CreatedBy").
		Order(column + " " + direction).
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"pagination": gin.H{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages(total, limit),
		},
	})
}

// GetInventoryItem returns a single item by id
func GetInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := config.DB.Preload("CreatedBy").First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Inventory item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

type CreateInventoryRequest struct {
	Name         string                   `json:"name" binding:"required"`
	Description  string                   `json:"description"`
	Category     models.InventoryCategory `json:"category"`
	SKU          string                   `json:"sku" binding:"required"`
	Barcode      string                   `json:"barcode"`
	Unit         models.InventoryUnit     `json:"unit"`
	CurrentStock float64                  `json:"current_stock" binding:"min=0"`
	MinStock     float64                  `json:"min_stock" binding:"min=0"`
	MaxStock     float64                  `json:"max_stock" binding:"min=0"`
	CostPrice    float64                  `json:"cost_price" binding:"min=0"`
	SellingPrice float64                  `json:"selling_price" binding:"min=0"`
	Supplier     models.Supplier          `json:"supplier"`
	Location     string                   `json:"location"`
	ExpiryDate   *time.Time               `json:"expiry_date"`
}

// CreateInventoryItem creates a new item owned by the caller
func CreateInventoryItem(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Category == "" {
		req.Category = models.InvCategoryOther
	}
	if !models.ValidInventoryCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
		return
	}
	if req.Unit == "" {
		req.Unit = models.UnitPieces
	}
	if !models.ValidInventoryUnit(req.Unit) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid unit"})
		return
	}

	item := models.InventoryItem{
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		SKU:          req.SKU,
		Barcode:      req.Barcode,
		Unit:         req.Unit,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		CostPrice:    req.CostPrice,
		SellingPrice: req.SellingPrice,
		Supplier:     req.Supplier,
		Location:     req.Location,
		ExpiryDate:   req.ExpiryDate,
		IsActive:     true,
		LastUpdated:  time.Now(),
		CreatedByID:  middleware.GetUserID(c),
	}

	if err := config.DB.Create(&item).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "SKU already exists"})
			return
		}
		logger.Error("create inventory item failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	item.ComputeDerived()
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": item})
}

// UpdateInventoryRequest carries optional fields; only non-nil ones apply
type UpdateInventoryRequest struct {
	Name         *string                   `json:"name"`
	Description  *string                   `json:"description"`
	Category     *models.InventoryCategory `json:"category"`
	SKU          *string                   `json:"sku"`
	Barcode      *string                   `json:"barcode"`
	Unit         *models.InventoryUnit     `json:"unit"`
	CurrentStock *float64                  `json:"current_stock"`
	MinStock     *float64                  `json:"min_stock"`
	MaxStock     *float64                  `json:"max_stock"`
	CostPrice    *float64                  `json:"cost_price"`
	SellingPrice *float64                  `json:"selling_price"`
	Supplier     *models.Supplier          `json:"supplier"`
	Location     *string                   `json:"location"`
	ExpiryDate   *time.Time                `json:"expiry_date"`
	IsActive     *bool                     `json:"is_active"`
}

// UpdateInventoryItem applies a partial update to an item
func UpdateInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Inventory item not found"})
		return
	}

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Category != nil {
		if !models.ValidInventoryCategory(*req.Category) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid category"})
			return
		}
		item.Category = *req.Category
	}
	if req.SKU != nil {
		item.SKU = *req.SKU
	}
	if req.Barcode != nil {
		item.Barcode = *req.Barcode
	}
	if req.Unit != nil {
		if !models.ValidInventoryUnit(*req.Unit) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid unit"})
			return
		}
		item.Unit = *req.Unit
	}
	if req.CurrentStock != nil {
		if *req.CurrentStock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Stock cannot be negative"})
			return
		}
		item.CurrentStock = *req.CurrentStock
	}
	if req.MinStock != nil {
		item.MinStock = *req.MinStock
	}
	if req.MaxStock != nil {
		item.MaxStock = *req.MaxStock
	}
	if req.CostPrice != nil {
		item.CostPrice = *req.CostPrice
	}
	if req.SellingPrice != nil {
		item.SellingPrice = *req.SellingPrice
	}
	if req.Supplier != nil {
		item.Supplier = *req.Supplier
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.ExpiryDate != nil {
		item.ExpiryDate = req.ExpiryDate
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.LastUpdated = time.Now()

	if err := config.DB.Save(&item).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "SKU already exists"})
			return
		}
		logger.Error("update inventory item failed", "id", item.ID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	item.ComputeDerived()
	c.JSON(http.StatusOK, gin.H{"success": true, "data": item})
}

// DeleteInventoryItem soft-deletes by flipping the isActive flag
func DeleteInventoryItem(c *gin.Context) {
	var item models.InventoryItem
	if err := config.DB.First(&item, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Inventory item not found"})
		return
	}

	if err := config.DB.Model(&item).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Inventory item deleted successfully"})
}

// AdjustStock applies one signed stock adjustment to an item
func AdjustStock(c *gin.Context) {
	var adj stock.Adjustment
	if err := c.ShouldBindJSON(&adj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity, type, and reason are required"})
		return
	}

	itemID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Inventory item not found"})
		return
	}

	item, err := stock.Adjust(config.DB, itemID, adj)
	switch {
	case err == nil:
	case err == stock.ErrInvalidInput:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Quantity, type, and reason are required"})
		return
	case err == stock.ErrItemNotFound:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Inventory item not found"})
		return
	case err == stock.ErrNegativeStock:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Stock cannot be negative"})
		return
	default:
		logger.Error("adjust stock failed", "id", itemID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	verb := "added"
	if adj.Type == stock.TypeSubtract {
		verb = "subtracted"
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
		"message": "Stock " + verb + " successfully",
	})
}

type BulkAdjustmentRequest struct {
	Adjustments []stock.BulkEntry `json:"adjustments" binding:"required,min=1"`
}

// BulkStockAdjustment applies many adjustments with per-entry isolation.
// Always 200; individual failures are reported in the body.
func BulkStockAdjustment(c *gin.Context) {
	var req BulkAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Adjustments array is required"})
		return
	}

	result := stock.BulkAdjust(config.DB, req.Adjustments)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"message": result.Summary(),
	})
}

// LowStockAlerts lists active items at or below their reorder threshold,
// ascending by stock
func LowStockAlerts(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Preload("CreatedBy").
		Where("is_active = ?", true).
		Where(models.LowStockCond).
		Order("current_stock ASC").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": items, "count": len(items)})
}

// InventorySummary serves the condensed per-resource analytics rollup
func InventorySummary(c *gin.Context) {
	data, err := analytics.Summary(config.DB)
	if err != nil {
		logger.Error("inventory summary failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
