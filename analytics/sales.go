package analytics

import (
	"time"

	"gorm.io/gorm"
)

// DateRange bounds a sales report. A nil End means "up to now".
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// TrailingRange is the default range: a rolling window of days ending at now
func TrailingRange(now time.Time, days int) DateRange {
	start := now.AddDate(0, 0, -days)
	return DateRange{Start: &start}
}

// StatusStat is a per-status order count/amount rollup
type StatusStat struct {
	Status      string  `json:"status"`
	Count       int64   `json:"count"`
	TotalAmount float64 `json:"total_amount"`
}

// SalesData is the sales analytics payload
type SalesData struct {
	TotalSales       float64         `json:"total_sales"`
	TotalOrders      int64           `json:"total_orders"`
	AvgOrderValue    float64         `json:"avg_order_value"`
	SalesByDay       []DailyPoint    `json:"sales_by_day"`
	SalesByCategory  []CategorySales `json:"sales_by_category"`
	TopProducts      []ProductSales  `json:"top_products"`
	OrderStatusStats []StatusStat    `json:"order_status_stats"`
}

// Sales computes the sales report for the given range
func Sales(db *gorm.DB, rng DateRange) (*SalesData, error) {
	data := &SalesData{}

	var err error
	if data.TotalSales, err = sumOrderTotals(db, rng.Start, rng.End); err != nil {
		return nil, err
	}
	if data.TotalOrders, err = countOrders(db, rng.Start, rng.End); err != nil {
		return nil, err
	}
	if data.AvgOrderValue, err = avgOrderValue(db, rng.Start, rng.End); err != nil {
		return nil, err
	}
	if data.SalesByDay, err = dailySales(db, rng.Start, rng.End); err != nil {
		return nil, err
	}
	if data.SalesByCategory, err = salesByCategory(db, rng.Start, rng.End); err != nil {
		return nil, err
	}
	if data.TopProducts, err = topProductsByQuantity(db, rng.Start, rng.End, 10); err != nil {
		return nil, err
	}

	data.OrderStatusStats = []StatusStat{}
	q := db.Table("orders").
		Select("status, COUNT(*) AS count, COALESCE(SUM(total), 0) AS total_amount")
	if err = orderWindow(q, rng.Start, rng.End).
		Group("status").
		Order("count DESC").
		Scan(&data.OrderStatusStats).Error; err != nil {
		return nil, err
	}

	return data, nil
}
