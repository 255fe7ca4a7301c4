package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ProductCategory is the closed set of menu categories
type ProductCategory string

const (
	CategoryBurgers   ProductCategory = "burgers"
	CategorySides     ProductCategory = "sides"
	CategoryBeverages ProductCategory = "beverages"
	CategoryDesserts  ProductCategory = "desserts"
	CategoryBreakfast ProductCategory = "breakfast"
	CategoryLunch     ProductCategory = "lunch"
	CategoryDinner    ProductCategory = "dinner"
	CategorySnacks    ProductCategory = "snacks"
	CategoryOther     ProductCategory = "other"
)

// ValidProductCategory reports whether c is one of the closed category set
func ValidProductCategory(c ProductCategory) bool {
	switch c {
	case CategoryBurgers, CategorySides, CategoryBeverages, CategoryDesserts,
		CategoryBreakfast, CategoryLunch, CategoryDinner, CategorySnacks, CategoryOther:
		return true
	}
	return false
}

// ErrPriceBelowCost rejects products priced below their cost
var ErrPriceBelowCost = errors.New("price cannot be less than cost price")

type Product struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	Name            string          `json:"name" gorm:"not null"`
	Description     string          `json:"description"`
	Category        ProductCategory `json:"category" gorm:"not null;default:'other';index"`
	SKU             string          `json:"sku" gorm:"uniqueIndex;not null"`
	Barcode         string          `json:"barcode"`
	Price           float64         `json:"price" gorm:"not null"`
	CostPrice       float64         `json:"cost_price" gorm:"not null"`
	Image           string          `json:"image"`
	PreparationTime int             `json:"preparation_time"` // minutes
	IsAvailable     bool            `json:"is_available" gorm:"default:true"`
	IsFeatured      bool            `json:"is_featured" gorm:"default:false;index"`
	SortOrder       int             `json:"sort_order" gorm:"default:0;index"`
	CreatedByID     uint            `json:"created_by_id" gorm:"not null"`
	CreatedBy       *User           `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BeforeSave enforces the price >= cost invariant; violations are rejected,
// never silently corrected
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Price < p.CostPrice {
		return ErrPriceBelowCost
	}
	return nil
}

// ProfitAmount is the absolute profit per unit
func (p *Product) ProfitAmount() float64 {
	return p.Price - p.CostPrice
}

// ProfitMargin is the percentage margin, 0 when cost is 0
func (p *Product) ProfitMargin() float64 {
	if p.CostPrice == 0 || p.Price == 0 {
		return 0
	}
	return (p.Price - p.CostPrice) / p.Price * 100
}
