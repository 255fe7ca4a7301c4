package analytics

import (
	"time"

	"retail-pos-api/models"

	"gorm.io/gorm"
)

// WindowCounts holds order counts per standard time window
type WindowCounts struct {
	Total int64 `json:"total"`
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
}

// DashboardSales is the sales block of the dashboard snapshot
type DashboardSales struct {
	Total         float64         `json:"total"`
	Today         float64         `json:"today"`
	Week          float64         `json:"week"`
	Month         float64         `json:"month"`
	Orders        WindowCounts    `json:"orders"`
	AvgOrderValue float64         `json:"avg_order_value"`
	TopProducts   []ProductSales  `json:"top_products"`
	ByCategory    []CategorySales `json:"by_category"`
	Trend         []DailyPoint    `json:"trend"`
}

// CategoryInventoryStat is a per-category inventory rollup
type CategoryInventoryStat struct {
	Category   string  `json:"category"`
	TotalItems int64   `json:"total_items"`
	TotalStock float64 `json:"total_stock"`
	TotalValue float64 `json:"total_value"`
}

// DashboardInventory is the inventory block of the dashboard snapshot
type DashboardInventory struct {
	TotalItems int64                   `json:"total_items"`
	LowStock   int64                   `json:"low_stock"`
	OutOfStock int64                   `json:"out_of_stock"`
	TotalValue float64                 `json:"total_value"`
	ByCategory []CategoryInventoryStat `json:"by_category"`
}

// DashboardProducts is the product block of the dashboard snapshot
type DashboardProducts struct {
	Total      int64   `json:"total"`
	Available  int64   `json:"available"`
	Featured   int64   `json:"featured"`
	TotalValue float64 `json:"total_value"`
}

// DashboardData is the full dashboard snapshot
type DashboardData struct {
	Sales     DashboardSales     `json:"sales"`
	Inventory DashboardInventory `json:"inventory"`
	Products  DashboardProducts  `json:"products"`
}

// Dashboard computes the full snapshot relative to now. Window boundaries are
// local midnight, start of week (Sunday) and start of month.
func Dashboard(db *gorm.DB, now time.Time) (*DashboardData, error) {
	startOfToday := StartOfDay(now)
	startOfWeek := StartOfWeek(now)
	startOfMonth := StartOfMonth(now)
	weekAgo := now.AddDate(0, 0, -7)

	data := &DashboardData{}

	// Sales totals per window
	var err error
	if data.Sales.Total, err = sumOrderTotals(db, nil, nil); err != nil {
		return nil, err
	}
	if data.Sales.Today, err = sumOrderTotals(db, &startOfToday, nil); err != nil {
		return nil, err
	}
	if data.Sales.Week, err = sumOrderTotals(db, &startOfWeek, nil); err != nil {
		return nil, err
	}
	if data.Sales.Month, err = sumOrderTotals(db, &startOfMonth, nil); err != nil {
		return nil, err
	}

	// Order counts per window
	if data.Sales.Orders.Total, err = countOrders(db, nil, nil); err != nil {
		return nil, err
	}
	if data.Sales.Orders.Today, err = countOrders(db, &startOfToday, nil); err != nil {
		return nil, err
	}
	if data.Sales.Orders.Week, err = countOrders(db, &startOfWeek, nil); err != nil {
		return nil, err
	}
	if data.Sales.Orders.Month, err = countOrders(db, &startOfMonth, nil); err != nil {
		return nil, err
	}

	if data.Sales.AvgOrderValue, err = avgOrderValue(db, nil, nil); err != nil {
		return nil, err
	}
	if data.Sales.TopProducts, err = topProductsByQuantity(db, nil, nil, 5); err != nil {
		return nil, err
	}
	if data.Sales.ByCategory, err = salesByCategory(db, nil, nil); err != nil {
		return nil, err
	}
	if data.Sales.Trend, err = dailySales(db, &weekAgo, nil); err != nil {
		return nil, err
	}

	// Inventory snapshot
	if err = db.Model(&models.InventoryItem{}).
		Where("is_active = ?", true).
		Count(&data.Inventory.TotalItems).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.InventoryItem{}).
		Where("is_active = ?", true).
		Where(models.LowStockCond).
		Count(&data.Inventory.LowStock).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.InventoryItem{}).
		Where("is_active = ? AND current_stock = 0", true).
		Count(&data.Inventory.OutOfStock).Error; err != nil {
		return nil, err
	}
	if data.Inventory.TotalValue, err = inventoryTotalValue(db); err != nil {
		return nil, err
	}
	data.Inventory.ByCategory = []CategoryInventoryStat{}
	if err = db.Table("inventory_items").
		Select(`category,
			COUNT(*) AS total_items,
			COALESCE(SUM(current_stock), 0) AS total_stock,
			COALESCE(SUM(current_stock * cost_price), 0) AS total_value`).
		Where("is_active = ?", true).
		Group("category").
		Order("total_value DESC").
		Scan(&data.Inventory.ByCategory).Error; err != nil {
		return nil, err
	}

	// Product snapshot
	if err = db.Model(&models.Product{}).Count(&data.Products.Total).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.Product{}).Where("is_available = ?", true).Count(&data.Products.Available).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.Product{}).Where("is_featured = ?", true).Count(&data.Products.Featured).Error; err != nil {
		return nil, err
	}
	var row struct{ V float64 }
	if err = db.Table("products").Select("COALESCE(SUM(price), 0) AS v").Scan(&row).Error; err != nil {
		return nil, err
	}
	data.Products.TotalValue = row.V

	return data, nil
}
