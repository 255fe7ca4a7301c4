// Package analytics computes read-only rollups over orders, products and
// inventory. Every aggregate is recomputed fresh per call, and every averaged
// or summed metric falls back to 0 when there is no underlying data.
package analytics

import (
	"sort"
	"time"

	"retail-pos-api/models"

	"gorm.io/gorm"
)

// ProductSales is a per-product quantity/revenue rollup
type ProductSales struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category,omitempty"`
	TotalSold float64 `json:"total_sold"`
	Revenue   float64 `json:"revenue"`
}

// CategorySales is a per-category quantity/revenue rollup
type CategorySales struct {
	Category  string  `json:"category"`
	TotalSold float64 `json:"total_sold"`
	Revenue   float64 `json:"revenue"`
}

// DailyPoint is one calendar-date bucket of a sales series
type DailyPoint struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Orders int64   `json:"orders"`
}

// StartOfDay returns local midnight for t
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns local midnight of the most recent Sunday
func StartOfWeek(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, -int(t.Weekday()))
}

// StartOfMonth returns local midnight of the first of the month
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// orderWindow applies optional created_at bounds to an order-rooted query
func orderWindow(q *gorm.DB, since, until *time.Time) *gorm.DB {
	if since != nil {
		q = q.Where("orders.created_at >= ?", *since)
	}
	if until != nil {
		q = q.Where("orders.created_at <= ?", *until)
	}
	return q
}

func sumOrderTotals(db *gorm.DB, since, until *time.Time) (float64, error) {
	var row struct{ V float64 }
	q := db.Table("orders").Select("COALESCE(SUM(total), 0) AS v")
	if err := orderWindow(q, since, until).Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.V, nil
}

func countOrders(db *gorm.DB, since, until *time.Time) (int64, error) {
	var count int64
	q := db.Model(&models.Order{})
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	if until != nil {
		q = q.Where("created_at <= ?", *until)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func avgOrderValue(db *gorm.DB, since, until *time.Time) (float64, error) {
	var row struct{ V float64 }
	q := db.Table("orders").Select("COALESCE(AVG(total), 0) AS v")
	if err := orderWindow(q, since, until).Scan(&row).Error; err != nil {
		return 0, err
	}
	return row.V, nil
}

// topProductsByQuantity ranks products by units sold within the window.
// Ties break on product id so rankings stay deterministic.
func topProductsByQuantity(db *gorm.DB, since, until *time.Time, limit int) ([]ProductSales, error) {
	rows := []ProductSales{}
	q := db.Table("order_items").
		Select(`order_items.product_id AS product_id,
			order_items.name AS name,
			products.category AS category,
			SUM(order_items.quantity) AS total_sold,
			SUM(order_items.price * order_items.quantity) AS revenue`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id")
	q = orderWindow(q, since, until).
		Group("order_items.product_id, order_items.name, products.category").
		Order("total_sold DESC, product_id ASC").
		Limit(limit)
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// salesByCategory joins line items to their product's category
func salesByCategory(db *gorm.DB, since, until *time.Time) ([]CategorySales, error) {
	rows := []CategorySales{}
	q := db.Table("order_items").
		Select(`products.category AS category,
			SUM(order_items.quantity) AS total_sold,
			SUM(order_items.price * order_items.quantity) AS revenue`).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id")
	q = orderWindow(q, since, until).
		Group("products.category").
		Order("revenue DESC")
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// dailySales buckets orders by local calendar date. Bucketing happens in Go
// so the date boundary is identical to the window math used everywhere else.
func dailySales(db *gorm.DB, since, until *time.Time) ([]DailyPoint, error) {
	var orders []models.Order
	q := db.Model(&models.Order{}).Select("total, created_at")
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	if until != nil {
		q = q.Where("created_at <= ?", *until)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}

	buckets := map[string]*DailyPoint{}
	for _, o := range orders {
		day := o.CreatedAt.Local().Format("2006-01-02")
		p, ok := buckets[day]
		if !ok {
			p = &DailyPoint{Date: day}
			buckets[day] = p
		}
		p.Sales += o.Total
		p.Orders++
	}

	series := make([]DailyPoint, 0, len(buckets))
	for _, p := range buckets {
		series = append(series, *p)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series, nil
}

func inventoryTotalValue(db *gorm.DB) (float64, error) {
	var row struct{ V float64 }
	err := db.Table("inventory_items").
		Select("COALESCE(SUM(current_stock * cost_price), 0) AS v").
		Where("is_active = ?", true).
		Scan(&row).Error
	if err != nil {
		return 0, err
	}
	return row.V, nil
}
