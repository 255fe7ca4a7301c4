package models

import "time"

// ChefProduction is a persisted per-product-per-day production counter.
// It replaces the old in-memory demo map so counts survive restarts.
type ChefProduction struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProductID  uint      `json:"product_id" gorm:"not null;uniqueIndex:idx_chef_product_date"`
	Product    *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Date       string    `json:"date" gorm:"not null;uniqueIndex:idx_chef_product_date"` // YYYY-MM-DD
	DailyCount int       `json:"daily_count" gorm:"not null;default:0"`
	TotalToday int       `json:"total_today" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProductionDate formats t as the canonical per-day bucket key
func ProductionDate(t time.Time) string {
	return t.Format("2006-01-02")
}
