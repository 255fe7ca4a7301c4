package analytics

import (
	"retail-pos-api/models"

	"gorm.io/gorm"
)

// CategoryInventoryDetail adds the average stock level per category
type CategoryInventoryDetail struct {
	Category   string  `json:"category"`
	Count      int64   `json:"count"`
	TotalValue float64 `json:"total_value"`
	AvgStock   float64 `json:"avg_stock"`
}

// CategoryValue ranks categories by held stock value
type CategoryValue struct {
	Category   string  `json:"category"`
	TotalValue float64 `json:"total_value"`
}

// InventoryData is the inventory analytics payload
type InventoryData struct {
	TotalItems      int64                     `json:"total_items"`
	LowStockItems   int64                     `json:"low_stock_items"`
	OutOfStockItems int64                     `json:"out_of_stock_items"`
	TotalValue      float64                   `json:"total_value"`
	CategoryStats   []CategoryInventoryDetail `json:"category_stats"`
	StockAlerts     []models.InventoryItem    `json:"stock_alerts"`
	ValueByCategory []CategoryValue           `json:"value_by_category"`
	RecentUpdates   []models.InventoryItem    `json:"recent_updates"`
}

// Inventory computes the full inventory report over active items
func Inventory(db *gorm.DB) (*InventoryData, error) {
	data := &InventoryData{
		CategoryStats:   []CategoryInventoryDetail{},
		StockAlerts:     []models.InventoryItem{},
		ValueByCategory: []CategoryValue{},
		RecentUpdates:   []models.InventoryItem{},
	}

	var err error
	if err = db.Model(&models.InventoryItem{}).
		Where("is_active = ?", true).
		Count(&data.TotalItems).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.InventoryItem{}).
		Where("is_active = ?", true).
		Where(models.LowStockCond).
		Count(&data.LowStockItems).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.InventoryItem{}).
		Where("is_active = ? AND current_stock = 0", true).
		Count(&data.OutOfStockItems).Error; err != nil {
		return nil, err
	}
	if data.TotalValue, err = inventoryTotalValue(db); err != nil {
		return nil, err
	}

	if err = db.Table("inventory_items").
		Select(`category,
			COUNT(*) AS count,
			COALESCE(SUM(current_stock * cost_price), 0) AS total_value,
			COALESCE(AVG(current_stock), 0) AS avg_stock`).
		Where("is_active = ?", true).
		Group("category").
		Order("count DESC").
		Scan(&data.CategoryStats).Error; err != nil {
		return nil, err
	}

	// Up to 10 lowest-stock alert items, ascending by stock
	if err = db.Where("is_active = ?", true).
		Where(models.LowStockCond).
		Order("current_stock ASC").
		Limit(10).
		Find(&data.StockAlerts).Error; err != nil {
		return nil, err
	}

	if err = db.Table("inventory_items").
		Select("category, COALESCE(SUM(current_stock * cost_price), 0) AS total_value").
		Where("is_active = ?", true).
		Group("category").
		Order("total_value DESC").
		Scan(&data.ValueByCategory).Error; err != nil {
		return nil, err
	}

	if err = db.Where("is_active = ?", true).
		Order("updated_at DESC").
		Limit(10).
		Find(&data.RecentUpdates).Error; err != nil {
		return nil, err
	}

	return data, nil
}

// InventorySummary is the smaller rollup served under /inventory/analytics
type InventorySummary struct {
	TotalItems    int64                   `json:"total_items"`
	OutOfStock    int64                   `json:"out_of_stock"`
	LowStock      int64                   `json:"low_stock"`
	TotalValue    float64                 `json:"total_value"`
	CategoryStats []CategoryInventoryStat `json:"category_stats"`
}

// Summary computes the condensed inventory rollup
func Summary(db *gorm.DB) (*InventorySummary, error) {
	data := &InventorySummary{CategoryStats: []CategoryInventoryStat{}}

	var err error
	if err = db.Model(&models.InventoryItem{}).
		Where("is_active = ?", true).
		Count(&data.TotalItems).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.InventoryItem{}).
		Where("is_active = ? AND current_stock = 0", true).
		Count(&data.OutOfStock).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.InventoryItem{}).
		Where("is_active = ?", true).
		Where(models.LowStockCond).
		Count(&data.LowStock).Error; err != nil {
		return nil, err
	}
	if data.TotalValue, err = inventoryTotalValue(db); err != nil {
		return nil, err
	}

	if err = db.Table("inventory_items").
		Select(`category,
			COUNT(*) AS total_items,
			COALESCE(SUM(current_stock), 0) AS total_stock,
			COALESCE(SUM(current_stock * cost_price), 0) AS total_value`).
		Where("is_active = ?", true).
		Group("category").
		Order("total_items DESC").
		Scan(&data.CategoryStats).Error; err != nil {
		return nil, err
	}

	return data, nil
}
