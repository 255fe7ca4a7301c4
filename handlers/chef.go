package handlers

import (
	"net/http"
	"time"

	"retail-pos-api/config"
	"retail-pos-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// chefProductView is a product joined with its production counts for today
type chefProductView struct {
	ID         uint                   `json:"id"`
	Name       string                 `json:"name"`
	Category   models.ProductCategory `json:"category"`
	Price      float64                `json:"price"`
	DailyCount int                    `json:"daily_count"`
	TotalToday int                    `json:"total_today"`
}

// ChefProducts lists all products with today's production counts
func ChefProducts(c *gin.Context) {
	var products []models.Product
	if err := config.DB.Order("sort_order ASC, name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	today := models.ProductionDate(time.Now())
	var productions []models.ChefProduction
	if err := config.DB.Where("date = ?", today).Find(&productions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	byProduct := make(map[uint]models.ChefProduction, len(productions))
	for _, p := range productions {
		byProduct[p.ProductID] = p
	}

	views := make([]chefProductView, 0, len(products))
	for _, p := range products {
		prod := byProduct[p.ID]
		views = append(views, chefProductView{
			ID:         p.ID,
			Name:       p.Name,
			Category:   p.Category,
			Price:      p.Price,
			DailyCount: prod.DailyCount,
			TotalToday: prod.TotalToday,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": views})
}

// AddProduction increments today's production counter for a product.
// The counter row is upserted atomically so counts survive restarts and
// concurrent taps never lose increments.
func AddProduction(c *gin.Context) {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	today := models.ProductionDate(time.Now())
	production := models.ChefProduction{
		ProductID:  productID,
		Date:       today,
		DailyCount: 1,
		TotalToday: 1,
	}
	err = config.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "product_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"daily_count": gorm.Expr("daily_count + 1"),
			"total_today": gorm.Expr("total_today + 1"),
		}),
	}).Create(&production).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	if err := config.DB.Where("product_id = ? AND date = ?", productID, today).First(&production).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": chefProductView{
		ID:         product.ID,
		Name:       product.Name,
		Category:   product.Category,
		Price:      product.Price,
		DailyCount: production.DailyCount,
		TotalToday: production.TotalToday,
	}})
}

// RemoveProduction decrements today's counter, floored at zero
func RemoveProduction(c *gin.Context) {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	var product models.Product
	if err := config.DB.First(&product, productID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	today := models.ProductionDate(time.Now())

	// Conditional decrement mirrors the stock floor: never below zero
	res := config.DB.Model(&models.ChefProduction{}).
		Where("product_id = ? AND date = ? AND daily_count > 0", productID, today).
		Updates(map[string]interface{}{
			"daily_count": gorm.Expr("daily_count - 1"),
			"total_today": gorm.Expr("CASE WHEN total_today > 0 THEN total_today - 1 ELSE 0 END"),
		})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No production to remove"})
		return
	}

	var production models.ChefProduction
	if err := config.DB.Where("product_id = ? AND date = ?", productID, today).First(&production).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": chefProductView{
		ID:         product.ID,
		Name:       product.Name,
		Category:   product.Category,
		Price:      product.Price,
		DailyCount: production.DailyCount,
		TotalToday: production.TotalToday,
	}})
}

// ChefStats summarizes today's production
func ChefStats(c *gin.Context) {
	today := models.ProductionDate(time.Now())

	var totals struct {
		DailyTotal int
		TodayTotal int
	}
	if err := config.DB.Table("chef_productions").
		Select("COALESCE(SUM(daily_count), 0) AS daily_total, COALESCE(SUM(total_today), 0) AS today_total").
		Where("date = ?", today).
		Scan(&totals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	topProduct := "No products yet"
	var top struct {
		Name  string
		Count int
	}
	err := config.DB.Table("chef_productions").
		Select("products.name AS name, chef_productions.daily_count AS count").
		Joins("JOIN products ON products.id = chef_productions.product_id").
		Where("chef_productions.date = ? AND chef_productions.daily_count > 0", today).
		Order("count DESC, name ASC").
		Limit(1).
		Scan(&top).Error
	if err == nil && top.Name != "" {
		topProduct = top.Name
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"total_daily_production": totals.DailyTotal,
			"total_today_production": totals.TodayTotal,
			"top_product":            topProduct,
			"date":                   today,
		},
	})
}

// KitchenStatus reports a simple operational heartbeat
func KitchenStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"status":  "operational",
			"message": "Kitchen is running smoothly!",
		},
	})
}

// PendingOrders lists orders the kitchen still has to work
func PendingOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Preload("Items").
		Where("status IN ?", []models.OrderStatus{models.OrderPending, models.OrderPreparing}).
		Order("created_at ASC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}
