// Package stock applies signed quantity deltas to inventory records.
// Adjustments are expressed as a single conditional UPDATE so that the
// non-negativity floor holds even under concurrent callers.
package stock

import (
	"errors"
	"fmt"
	"time"

	"retail-pos-api/models"

	"gorm.io/gorm"
)

// AdjustmentType is the signed direction of a stock change
type AdjustmentType string

const (
	TypeAdd      AdjustmentType = "add"
	TypeSubtract AdjustmentType = "subtract"
)

var (
	ErrInvalidInput  = errors.New("quantity, type, and reason are required")
	ErrItemNotFound  = errors.New("inventory item not found")
	ErrNegativeStock = errors.New("stock cannot be negative")
)

// Adjustment is a single stock change request. Reason is required for audit
// but not persisted beyond the request.
type Adjustment struct {
	Quantity float64        `json:"quantity"`
	Type     AdjustmentType `json:"type"`
	Reason   string         `json:"reason"`
}

func (a Adjustment) validate() error {
	if a.Quantity <= 0 || a.Reason == "" {
		return ErrInvalidInput
	}
	if a.Type != TypeAdd && a.Type != TypeSubtract {
		return ErrInvalidInput
	}
	return nil
}

// delta returns the signed stock change
func (a Adjustment) delta() float64 {
	if a.Type == TypeSubtract {
		return -a.Quantity
	}
	return a.Quantity
}

// Adjust applies one adjustment to an inventory item and returns the updated
// record. The write is a conditional update: it only lands when the resulting
// stock stays >= 0, so two concurrent subtracts can never drive it negative.
func Adjust(db *gorm.DB, itemID uint, adj Adjustment) (*models.InventoryItem, error) {
	if err := adj.validate(); err != nil {
		return nil, err
	}

	delta := adj.delta()
	res := db.Model(&models.InventoryItem{}).
		Where("id = ? AND current_stock + ? >= 0", itemID, delta).
		Updates(map[string]interface{}{
			"current_stock": gorm.Expr("current_stock + ?", delta),
			"last_updated":  time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// Disambiguate: missing item vs. floor violation
		var count int64
		if err := db.Model(&models.InventoryItem{}).Where("id = ?", itemID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrItemNotFound
		}
		return nil, ErrNegativeStock
	}

	var item models.InventoryItem
	if err := db.First(&item, itemID).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// BulkEntry is one line of a bulk adjustment request
type BulkEntry struct {
	ItemID   uint           `json:"item_id"`
	Quantity float64        `json:"quantity"`
	Type     AdjustmentType `json:"type"`
	Reason   string         `json:"reason"`
}

// BulkSuccess reports one applied adjustment
type BulkSuccess struct {
	ItemID   uint    `json:"item_id"`
	NewStock float64 `json:"new_stock"`
	Success  bool    `json:"success"`
}

// BulkError reports one failed adjustment, keyed by item
type BulkError struct {
	ItemID uint   `json:"item_id"`
	Error  string `json:"error"`
}

// BulkResult carries both lists; the batch is never transactional
type BulkResult struct {
	Successful []BulkSuccess `json:"successful"`
	Errors     []BulkError   `json:"errors"`
}

// Summary renders the count summary reported to callers
func (r *BulkResult) Summary() string {
	return fmt.Sprintf("Updated %d items, %d errors", len(r.Successful), len(r.Errors))
}

// BulkAdjust processes entries sequentially in input order. Each entry's
// failure is isolated: it is recorded and the loop continues, and adjustments
// already applied to other items are never rolled back.
func BulkAdjust(db *gorm.DB, entries []BulkEntry) *BulkResult {
	result := &BulkResult{
		Successful: []BulkSuccess{},
		Errors:     []BulkError{},
	}

	for _, entry := range entries {
		item, err := Adjust(db, entry.ItemID, Adjustment{
			Quantity: entry.Quantity,
			Type:     entry.Type,
			Reason:   entry.Reason,
		})
		if err != nil {
			result.Errors = append(result.Errors, BulkError{
				ItemID: entry.ItemID,
				Error:  bulkErrorMessage(err),
			})
			continue
		}
		result.Successful = append(result.Successful, BulkSuccess{
			ItemID:   entry.ItemID,
			NewStock: item.CurrentStock,
			Success:  true,
		})
	}

	return result
}

func bulkErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrItemNotFound):
		return "Item not found"
	case errors.Is(err, ErrNegativeStock):
		return "Stock cannot be negative"
	case errors.Is(err, ErrInvalidInput):
		return ErrInvalidInput.Error()
	default:
		return "Update failed"
	}
}
