package stock

import (
	"testing"
	"time"

	"retail-pos-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.InventoryItem{}))
	return db
}

func seedItem(t *testing.T, db *gorm.DB, sku string, current, min float64) models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{
		Name:         "Test Item " + sku,
		Category:     models.InvCategoryIngredients,
		SKU:          sku,
		Unit:         models.UnitPieces,
		CurrentStock: current,
		MinStock:     min,
		MaxStock:     100,
		CostPrice:    2,
		SellingPrice: 5,
		IsActive:     true,
		LastUpdated:  time.Now().Add(-time.Hour),
		CreatedByID:  1,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestAdjustAdd(t *testing.T) {
	db := openTestDB(t)
	item := seedItem(t, db, "ING-001", 10, 5)
	before := item.LastUpdated

	updated, err := Adjust(db, item.ID, Adjustment{Quantity: 4, Type: TypeAdd, Reason: "delivery"})
	require.NoError(t, err)
	assert.Equal(t, 14.0, updated.CurrentStock)
	assert.True(t, updated.LastUpdated.After(before))
}

func TestAdjustSubtract(t *testing.T) {
	db := openTestDB(t)
	item := seedItem(t, db, "ING-002", 10, 5)

	updated, err := Adjust(db, item.ID, Adjustment{Quantity: 10, Type: TypeSubtract, Reason: "spoilage"})
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.CurrentStock)
}

func TestAdjustRejectsNegativeResult(t *testing.T) {
	db := openTestDB(t)
	item := seedItem(t, db, "ING-003", 5, 2)

	_, err := Adjust(db, item.ID, Adjustment{Quantity: 6, Type: TypeSubtract, Reason: "waste"})
	assert.ErrorIs(t, err, ErrNegativeStock)

	// failed adjustment must leave the record untouched
	var after models.InventoryItem
	require.NoError(t, db.First(&after, item.ID).Error)
	assert.Equal(t, 5.0, after.CurrentStock)

	// retrying the same over-subtract fails again identically
	_, err = Adjust(db, item.ID, Adjustment{Quantity: 6, Type: TypeSubtract, Reason: "waste"})
	assert.ErrorIs(t, err, ErrNegativeStock)
}

func TestAdjustValidation(t *testing.T) {
	db := openTestDB(t)
	item := seedItem(t, db, "ING-004", 5, 2)

	cases := []Adjustment{
		{Quantity: 0, Type: TypeAdd, Reason: "r"},
		{Quantity: -1, Type: TypeAdd, Reason: "r"},
		{Quantity: 1, Type: "multiply", Reason: "r"},
		{Quantity: 1, Type: TypeAdd, Reason: ""},
	}
	for _, adj := range cases {
		_, err := Adjust(db, item.ID, adj)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestAdjustItemNotFound(t *testing.T) {
	db := openTestDB(t)

	_, err := Adjust(db, 999, Adjustment{Quantity: 1, Type: TypeAdd, Reason: "r"})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestBulkAdjustPartialFailure(t *testing.T) {
	db := openTestDB(t)
	a := seedItem(t, db, "ING-010", 10, 5)
	b := seedItem(t, db, "ING-011", 3, 1)

	result := BulkAdjust(db, []BulkEntry{
		{ItemID: a.ID, Quantity: 5, Type: TypeAdd, Reason: "restock"},
		{ItemID: b.ID, Quantity: 4, Type: TypeSubtract, Reason: "waste"},
		{ItemID: 999, Quantity: 1, Type: TypeAdd, Reason: "restock"},
	})

	require.Len(t, result.Successful, 1)
	assert.Equal(t, a.ID, result.Successful[0].ItemID)
	assert.Equal(t, 15.0, result.Successful[0].NewStock)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, b.ID, result.Errors[0].ItemID)
	assert.Equal(t, "Stock cannot be negative", result.Errors[0].Error)
	assert.Equal(t, uint(999), result.Errors[1].ItemID)
	assert.Equal(t, "Item not found", result.Errors[1].Error)

	assert.Equal(t, "Updated 1 items, 2 errors", result.Summary())

	// the failed subtract did not roll back the applied add
	var afterA models.InventoryItem
	require.NoError(t, db.First(&afterA, a.ID).Error)
	assert.Equal(t, 15.0, afterA.CurrentStock)

	var afterB models.InventoryItem
	require.NoError(t, db.First(&afterB, b.ID).Error)
	assert.Equal(t, 3.0, afterB.CurrentStock)
}

func TestBulkAdjustEmptyResultSlices(t *testing.T) {
	db := openTestDB(t)

	result := BulkAdjust(db, nil)
	assert.NotNil(t, result.Successful)
	assert.NotNil(t, result.Errors)
	assert.Equal(t, "Updated 0 items, 0 errors", result.Summary())
}
