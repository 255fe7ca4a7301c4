package models

import (
	"time"

	"gorm.io/gorm"
)

// InventoryCategory is the closed set of inventory item categories
type InventoryCategory string

const (
	InvCategoryIngredients InventoryCategory = "ingredients"
	InvCategoryPackaging   InventoryCategory = "packaging"
	InvCategoryEquipment   InventoryCategory = "equipment"
	InvCategoryBeverages   InventoryCategory = "beverages"
	InvCategoryCondiments  InventoryCategory = "condiments"
	InvCategoryOther       InventoryCategory = "other"
)

// ValidInventoryCategory reports whether c is one of the closed category set
func ValidInventoryCategory(c InventoryCategory) bool {
	switch c {
	case InvCategoryIngredients, InvCategoryPackaging, InvCategoryEquipment,
		InvCategoryBeverages, InvCategoryCondiments, InvCategoryOther:
		return true
	}
	return false
}

// InventoryUnit is the closed set of units of measure
type InventoryUnit string

const (
	UnitPieces  InventoryUnit = "pieces"
	UnitKg      InventoryUnit = "kg"
	UnitGrams   InventoryUnit = "grams"
	UnitLiters  InventoryUnit = "liters"
	UnitMl      InventoryUnit = "ml"
	UnitBoxes   InventoryUnit = "boxes"
	UnitPacks   InventoryUnit = "packs"
	UnitBottles InventoryUnit = "bottles"
)

// ValidInventoryUnit reports whether u is one of the closed unit set
func ValidInventoryUnit(u InventoryUnit) bool {
	switch u {
	case UnitPieces, UnitKg, UnitGrams, UnitLiters, UnitMl, UnitBoxes, UnitPacks, UnitBottles:
		return true
	}
	return false
}

// StockStatus is derived from current stock vs. min stock — never persisted
type StockStatus string

const (
	StockStatusOut StockStatus = "out_of_stock"
	StockStatusLow StockStatus = "low_stock"
	StockStatusIn  StockStatus = "in_stock"
)

// LowStockCond is the SQL form of the low-stock predicate.
// Must agree with IsLowStock — this is the single query-side source for it.
const LowStockCond = "current_stock <= min_stock"

// IsLowStock is the in-app form of the low-stock predicate
func IsLowStock(currentStock, minStock float64) bool {
	return currentStock <= minStock
}

type Supplier struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Email   string `json:"email"`
}

type InventoryItem struct {
	ID           uint              `json:"id" gorm:"primaryKey"`
	Name         string            `json:"name" gorm:"not null"`
	Description  string            `json:"description"`
	Category     InventoryCategory `json:"category" gorm:"not null;default:'other';index:idx_inventory_category_active"`
	SKU          string            `json:"sku" gorm:"uniqueIndex;not null"`
	Barcode      string            `json:"barcode"`
	Unit         InventoryUnit     `json:"unit" gorm:"not null;default:'pieces'"`
	CurrentStock float64           `json:"current_stock" gorm:"not null;default:0;index"`
	MinStock     float64           `json:"min_stock" gorm:"not null;default:0"`
	MaxStock     float64           `json:"max_stock" gorm:"not null;default:0"`
	CostPrice    float64           `json:"cost_price" gorm:"not null"`
	SellingPrice float64           `json:"selling_price" gorm:"not null"`
	Supplier     Supplier          `json:"supplier" gorm:"embedded;embeddedPrefix:supplier_"`
	Location     string            `json:"location"`
	ExpiryDate   *time.Time        `json:"expiry_date"`
	IsActive     bool              `json:"is_active" gorm:"default:true;index:idx_inventory_category_active"`
	LastUpdated  time.Time         `json:"last_updated"`
	CreatedByID  uint              `json:"created_by_id" gorm:"not null"`
	CreatedBy    *User             `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`

	// Derived, populated on read — never stored
	StockStatus     StockStatus `json:"stock_status" gorm:"-"`
	StockPercentage int         `json:"stock_percentage" gorm:"-"`
}

// ComputeDerived fills the derived stock fields from the stored ones
func (i *InventoryItem) ComputeDerived() {
	switch {
	case i.CurrentStock <= 0:
		i.StockStatus = StockStatusOut
	case IsLowStock(i.CurrentStock, i.MinStock):
		i.StockStatus = StockStatusLow
	default:
		i.StockStatus = StockStatusIn
	}
	if i.MaxStock > 0 {
		i.StockPercentage = int(i.CurrentStock/i.MaxStock*100 + 0.5)
	} else {
		i.StockPercentage = 0
	}
}

// AfterFind recomputes derived fields on every read
func (i *InventoryItem) AfterFind(tx *gorm.DB) error {
	i.ComputeDerived()
	return nil
}
