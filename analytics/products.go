package analytics

import (
	"retail-pos-api/models"

	"gorm.io/gorm"
)

// CategoryProductStat is a per-category catalog rollup
type CategoryProductStat struct {
	Category   string  `json:"category"`
	Count      int64   `json:"count"`
	AvgPrice   float64 `json:"avg_price"`
	TotalValue float64 `json:"total_value"`
}

// PriceRange is the min/max spread of catalog prices
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProductData is the product analytics payload
type ProductData struct {
	TotalProducts       int64                 `json:"total_products"`
	AvailableProducts   int64                 `json:"available_products"`
	FeaturedProducts    int64                 `json:"featured_products"`
	TotalValue          float64               `json:"total_value"`
	CategoryStats       []CategoryProductStat `json:"category_stats"`
	AvgPrice            float64               `json:"avg_price"`
	AvgCost             float64               `json:"avg_cost"`
	PriceRange          PriceRange            `json:"price_range"`
	TopFeaturedProducts []models.Product      `json:"top_featured_products"`
}

// Products computes the catalog report
func Products(db *gorm.DB) (*ProductData, error) {
	data := &ProductData{
		CategoryStats:       []CategoryProductStat{},
		TopFeaturedProducts: []models.Product{},
	}

	var err error
	if err = db.Model(&models.Product{}).Count(&data.TotalProducts).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.Product{}).
		Where("is_available = ?", true).
		Count(&data.AvailableProducts).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&models.Product{}).
		Where("is_featured = ?", true).
		Count(&data.FeaturedProducts).Error; err != nil {
		return nil, err
	}

	var totals struct {
		TotalValue float64
		AvgPrice   float64
		AvgCost    float64
		MinPrice   float64
		MaxPrice   float64
	}
	if err = db.Table("products").
		Select(`COALESCE(SUM(price), 0) AS total_value,
			COALESCE(AVG(price), 0) AS avg_price,
			COALESCE(AVG(cost_price), 0) AS avg_cost,
			COALESCE(MIN(price), 0) AS min_price,
			COALESCE(MAX(price), 0) AS max_price`).
		Scan(&totals).Error; err != nil {
		return nil, err
	}
	data.TotalValue = totals.TotalValue
	data.AvgPrice = totals.AvgPrice
	data.AvgCost = totals.AvgCost
	data.PriceRange = PriceRange{Min: totals.MinPrice, Max: totals.MaxPrice}

	if err = db.Table("products").
		Select(`category,
			COUNT(*) AS count,
			COALESCE(AVG(price), 0) AS avg_price,
			COALESCE(SUM(price), 0) AS total_value`).
		Group("category").
		Order("count DESC").
		Scan(&data.CategoryStats).Error; err != nil {
		return nil, err
	}

	if err = db.Where("is_featured = ?", true).
		Order("sort_order ASC, name ASC").
		Limit(10).
		Find(&data.TopFeaturedProducts).Error; err != nil {
		return nil, err
	}

	return data, nil
}
