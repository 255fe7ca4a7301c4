package analytics

import (
	"time"

	"gorm.io/gorm"
)

// RevenuePoint is one calendar-date bucket of a revenue series
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

// CategoryRevenue is a per-category revenue rollup
type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
	Orders   int64   `json:"orders"`
}

// ProductRevenue ranks a product by revenue in the window
type ProductRevenue struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Revenue   float64 `json:"revenue"`
	Quantity  float64 `json:"quantity"`
}

// RevenueData is the revenue analytics payload
type RevenueData struct {
	TotalRevenue       float64           `json:"total_revenue"`
	RevenueByDay       []RevenuePoint    `json:"revenue_by_day"`
	RevenueByCategory  []CategoryRevenue `json:"revenue_by_category"`
	ProfitMargin       float64           `json:"profit_margin"`
	TopRevenueProducts []ProductRevenue  `json:"top_revenue_products"`
}

// Revenue computes the revenue report over a trailing window of days.
// The profit margin is (revenue - cost) / revenue * 100, where cost is the
// product's current cost price times the quantity sold; it is 0 when the
// window has no revenue.
func Revenue(db *gorm.DB, days int, now time.Time) (*RevenueData, error) {
	start := now.AddDate(0, 0, -days)

	data := &RevenueData{
		RevenueByCategory:  []CategoryRevenue{},
		TopRevenueProducts: []ProductRevenue{},
	}

	var err error
	if data.TotalRevenue, err = sumOrderTotals(db, &start, nil); err != nil {
		return nil, err
	}

	daily, err := dailySales(db, &start, nil)
	if err != nil {
		return nil, err
	}
	data.RevenueByDay = make([]RevenuePoint, 0, len(daily))
	for _, p := range daily {
		data.RevenueByDay = append(data.RevenueByDay, RevenuePoint{
			Date:    p.Date,
			Revenue: p.Sales,
			Orders:  p.Orders,
		})
	}

	if err = db.Table("order_items").
		Select(`products.category AS category,
			SUM(order_items.price * order_items.quantity) AS revenue,
			COUNT(*) AS orders`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.created_at >= ?", start).
		Group("products.category").
		Order("revenue DESC").
		Scan(&data.RevenueByCategory).Error; err != nil {
		return nil, err
	}

	var margin struct {
		Revenue float64
		Cost    float64
	}
	if err = db.Table("order_items").
		Select(`COALESCE(SUM(order_items.price * order_items.quantity), 0) AS revenue,
			COALESCE(SUM(products.cost_price * order_items.quantity), 0) AS cost`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.created_at >= ?", start).
		Scan(&margin).Error; err != nil {
		return nil, err
	}
	if margin.Revenue > 0 {
		data.ProfitMargin = (margin.Revenue - margin.Cost) / margin.Revenue * 100
	}

	if err = db.Table("order_items").
		Select(`order_items.product_id AS product_id,
			order_items.name AS name,
			products.category AS category,
			SUM(order_items.price * order_items.quantity) AS revenue,
			SUM(order_items.quantity) AS quantity`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.created_at >= ?", start).
		Group("order_items.product_id, order_items.name, products.category").
		Order("revenue DESC, product_id ASC").
		Limit(10).
		Scan(&data.TopRevenueProducts).Error; err != nil {
		return nil, err
	}

	return data, nil
}
