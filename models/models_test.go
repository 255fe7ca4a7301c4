package models

import (
	"fmt"
	"testing"
	"time"

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
	require.NoError(t, db.AutoMigrate(&Product{}, &InventoryItem{}, &Order{}, &OrderItem{}, &DailySequence{}))
	return db
}

func TestStockStatusDerivation(t *testing.T) {
	cases := []struct {
		current, min float64
		want         StockStatus
	}{
		{0, 10, StockStatusOut},
		{-1, 10, StockStatusOut},
		{5, 10, StockStatusLow},
		{10, 10, StockStatusLow}, // boundary: equal is low, not in
		{11, 10, StockStatusIn},
	}
	for _, tc := range cases {
		item := InventoryItem{CurrentStock: tc.current, MinStock: tc.min}
		item.ComputeDerived()
		assert.Equal(t, tc.want, item.StockStatus, "current=%v min=%v", tc.current, tc.min)
	}
}

func TestStockPercentage(t *testing.T) {
	item := InventoryItem{CurrentStock: 25, MaxStock: 100}
	item.ComputeDerived()
	assert.Equal(t, 25, item.StockPercentage)

	noMax := InventoryItem{CurrentStock: 25, MaxStock: 0}
	noMax.ComputeDerived()
	assert.Equal(t, 0, noMax.StockPercentage)
}

func TestDerivedFieldsPopulatedOnRead(t *testing.T) {
	db := openTestDB(t)
	item := InventoryItem{
		Name: "Napkins", SKU: "PKG-001", Category: InvCategoryPackaging,
		Unit: UnitPacks, CurrentStock: 5, MinStock: 10, MaxStock: 50,
		CostPrice: 1, SellingPrice: 2, IsActive: true, CreatedByID: 1,
	}
	require.NoError(t, db.Create(&item).Error)

	var loaded InventoryItem
	require.NoError(t, db.First(&loaded, item.ID).Error)
	assert.Equal(t, StockStatusLow, loaded.StockStatus)
	assert.Equal(t, 10, loaded.StockPercentage)

	// adding stock above the threshold flips the derived status
	require.NoError(t, db.Model(&loaded).Update("current_stock", 15).Error)
	require.NoError(t, db.First(&loaded, item.ID).Error)
	assert.Equal(t, StockStatusIn, loaded.StockStatus)
}

func TestProductPriceBelowCostRejected(t *testing.T) {
	db := openTestDB(t)

	bad := Product{Name: "Loss Leader", SKU: "PRD-001", Category: CategoryBurgers, Price: 3, CostPrice: 5, CreatedByID: 1}
	err := db.Create(&bad).Error
	assert.ErrorIs(t, err, ErrPriceBelowCost)

	var count int64
	require.NoError(t, db.Model(&Product{}).Count(&count).Error)
	assert.Zero(t, count)

	ok := Product{Name: "Burger", SKU: "PRD-002", Category: CategoryBurgers, Price: 5, CostPrice: 5, CreatedByID: 1}
	assert.NoError(t, db.Create(&ok).Error)

	// the hook also guards updates
	ok.Price = 4
	assert.ErrorIs(t, db.Save(&ok).Error, ErrPriceBelowCost)
}

func TestProductProfitMargin(t *testing.T) {
	p := Product{Price: 10, CostPrice: 6}
	assert.InDelta(t, 4.0, p.ProfitAmount(), 1e-9)
	assert.InDelta(t, 40.0, p.ProfitMargin(), 1e-9)

	free := Product{Price: 0, CostPrice: 0}
	assert.Equal(t, 0.0, free.ProfitMargin())
}

func TestOrderNumberSequence(t *testing.T) {
	db := openTestDB(t)
	day := time.Now().Format("20060102")

	for i := 1; i <= 3; i++ {
		order := Order{Subtotal: 10, Total: 10, PaymentMethod: PaymentCash, CreatedByID: 1}
		require.NoError(t, db.Create(&order).Error)
		assert.Equal(t, fmt.Sprintf("ORD-%s-%03d", day, i), order.OrderNumber)
	}
}

func TestOrderNumberPreserved(t *testing.T) {
	db := openTestDB(t)

	order := Order{OrderNumber: "ORD-20240101-042", Subtotal: 10, Total: 10, PaymentMethod: PaymentCard, CreatedByID: 1}
	require.NoError(t, db.Create(&order).Error)
	assert.Equal(t, "ORD-20240101-042", order.OrderNumber)
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidRole(RoleChef))
	assert.False(t, ValidRole("owner"))

	assert.True(t, ValidInventoryCategory(InvCategoryCondiments))
	assert.False(t, ValidInventoryCategory("hardware"))

	assert.True(t, ValidInventoryUnit(UnitLiters))
	assert.False(t, ValidInventoryUnit("gallons"))

	assert.True(t, ValidProductCategory(CategoryBreakfast))
	assert.False(t, ValidProductCategory("specials"))
}
