package analytics

import (
	"fmt"
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
	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.InventoryItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.DailySequence{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, category models.ProductCategory, price, cost float64) models.Product {
	t.Helper()
	p := models.Product{
		Name: name, SKU: "SKU-" + name, Category: category,
		Price: price, CostPrice: cost, IsAvailable: true, CreatedByID: 1,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

var orderSeq int

func seedOrder(t *testing.T, db *gorm.DB, createdAt time.Time, items ...models.OrderItem) models.Order {
	t.Helper()
	orderSeq++
	var total float64
	for i := range items {
		items[i].Total = items[i].Price * items[i].Quantity
		total += items[i].Total
	}
	o := models.Order{
		OrderNumber:   fmt.Sprintf("ORD-TEST-%03d", orderSeq),
		Items:         items,
		Subtotal:      total,
		Total:         total,
		Status:        models.OrderCompleted,
		PaymentMethod: models.PaymentCash,
		PaymentStatus: models.PaymentPaid,
		CreatedByID:   1,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

func TestWindowBoundaries(t *testing.T) {
	// Wednesday 2024-06-12 15:30 local
	now := time.Date(2024, 6, 12, 15, 30, 0, 0, time.Local)

	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local), StartOfDay(now))
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.Local), StartOfWeek(now)) // Sunday
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), StartOfMonth(now))

	// a Sunday is its own week start
	sunday := time.Date(2024, 6, 9, 10, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, time.Local), StartOfWeek(sunday))
}

func TestDashboardWindows(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2024, 6, 12, 15, 0, 0, 0, time.Local)

	burger := seedProduct(t, db, "Burger", models.CategoryBurgers, 10, 4)

	// one order today, one yesterday, one last month
	seedOrder(t, db, now.Add(-2*time.Hour), models.OrderItem{ProductID: burger.ID, Name: burger.Name, Quantity: 2, Price: 10})
	seedOrder(t, db, now.AddDate(0, 0, -1), models.OrderItem{ProductID: burger.ID, Name: burger.Name, Quantity: 1, Price: 10})
	seedOrder(t, db, now.AddDate(0, -1, 0), models.OrderItem{ProductID: burger.ID, Name: burger.Name, Quantity: 3, Price: 10})

	data, err := Dashboard(db, now)
	require.NoError(t, err)

	assert.Equal(t, 60.0, data.Sales.Total)
	assert.Equal(t, 20.0, data.Sales.Today)
	assert.Equal(t, 30.0, data.Sales.Month)
	assert.Equal(t, int64(3), data.Sales.Orders.Total)
	assert.Equal(t, int64(1), data.Sales.Orders.Today)
	assert.InDelta(t, 20.0, data.Sales.AvgOrderValue, 1e-9)

	require.Len(t, data.Sales.TopProducts, 1)
	assert.Equal(t, 6.0, data.Sales.TopProducts[0].TotalSold)
}

func TestDashboardEmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	data, err := Dashboard(db, time.Now())
	require.NoError(t, err)

	assert.Zero(t, data.Sales.Total)
	assert.Zero(t, data.Sales.AvgOrderValue)
	assert.Zero(t, data.Inventory.TotalItems)
	assert.NotNil(t, data.Inventory.ByCategory)
}

func TestTopProductsTieBreak(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	a := seedProduct(t, db, "Alpha", models.CategorySnacks, 5, 2)
	b := seedProduct(t, db, "Bravo", models.CategorySnacks, 5, 2)

	// equal quantities: lower product id must rank first
	seedOrder(t, db, now.Add(-time.Hour),
		models.OrderItem{ProductID: b.ID, Name: b.Name, Quantity: 3, Price: 5},
		models.OrderItem{ProductID: a.ID, Name: a.Name, Quantity: 3, Price: 5},
	)

	data, err := Sales(db, TrailingRange(now, 30))
	require.NoError(t, err)
	require.Len(t, data.TopProducts, 2)
	assert.Equal(t, a.ID, data.TopProducts[0].ProductID)
	assert.Equal(t, b.ID, data.TopProducts[1].ProductID)
}

func TestSalesDailyBucketing(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2024, 6, 12, 12, 0, 0, 0, time.Local)

	p := seedProduct(t, db, "Coffee", models.CategoryBeverages, 3, 1)
	seedOrder(t, db, time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local), models.OrderItem{ProductID: p.ID, Name: p.Name, Quantity: 1, Price: 3})
	seedOrder(t, db, time.Date(2024, 6, 10, 18, 0, 0, 0, time.Local), models.OrderItem{ProductID: p.ID, Name: p.Name, Quantity: 2, Price: 3})
	seedOrder(t, db, time.Date(2024, 6, 11, 9, 0, 0, 0, time.Local), models.OrderItem{ProductID: p.ID, Name: p.Name, Quantity: 1, Price: 3})

	data, err := Sales(db, TrailingRange(now, 30))
	require.NoError(t, err)

	require.Len(t, data.SalesByDay, 2)
	assert.Equal(t, "2024-06-10", data.SalesByDay[0].Date)
	assert.Equal(t, 9.0, data.SalesByDay[0].Sales)
	assert.Equal(t, int64(2), data.SalesByDay[0].Orders)
	assert.Equal(t, "2024-06-11", data.SalesByDay[1].Date)
	assert.Equal(t, 3.0, data.SalesByDay[1].Sales)
}

func TestRevenueProfitMargin(t *testing.T) {
	db := openTestDB(t)
	now := time.Now()

	p := seedProduct(t, db, "Fries", models.CategorySides, 10, 6)
	seedOrder(t, db, now.Add(-time.Hour), models.OrderItem{ProductID: p.ID, Name: p.Name, Quantity: 2, Price: 10})

	data, err := Revenue(db, 30, now)
	require.NoError(t, err)
	assert.Equal(t, 20.0, data.TotalRevenue)
	// revenue 20, cost 12 -> margin 40%
	assert.InDelta(t, 40.0, data.ProfitMargin, 1e-9)
}

func TestRevenueZeroGuard(t *testing.T) {
	db := openTestDB(t)

	data, err := Revenue(db, 30, time.Now())
	require.NoError(t, err)
	assert.Zero(t, data.TotalRevenue)
	assert.Zero(t, data.ProfitMargin)
	assert.NotNil(t, data.RevenueByDay)
	assert.NotNil(t, data.TopRevenueProducts)
}

func seedInventory(t *testing.T, db *gorm.DB, sku string, current, min, cost float64, active bool) models.InventoryItem {
	t.Helper()
	item := models.InventoryItem{
		Name: "Item " + sku, SKU: sku, Category: models.InvCategoryIngredients,
		Unit: models.UnitPieces, CurrentStock: current, MinStock: min, MaxStock: 100,
		CostPrice: cost, SellingPrice: cost * 2, IsActive: active,
		LastUpdated: time.Now(), CreatedByID: 1,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func TestInventoryReport(t *testing.T) {
	db := openTestDB(t)

	seedInventory(t, db, "A", 0, 5, 2, true)   // out of stock (and low)
	seedInventory(t, db, "B", 3, 5, 2, true)   // low
	seedInventory(t, db, "C", 20, 5, 2, true)  // healthy
	seedInventory(t, db, "D", 50, 5, 2, false) // inactive, excluded

	data, err := Inventory(db)
	require.NoError(t, err)

	assert.Equal(t, int64(3), data.TotalItems)
	assert.Equal(t, int64(2), data.LowStockItems)
	assert.Equal(t, int64(1), data.OutOfStockItems)
	assert.Equal(t, 46.0, data.TotalValue) // (0+3+20)*2

	require.Len(t, data.StockAlerts, 2)
	assert.Equal(t, "A", data.StockAlerts[0].SKU) // ascending by stock
	assert.Equal(t, "B", data.StockAlerts[1].SKU)
}

func TestInventorySummaryCounts(t *testing.T) {
	db := openTestDB(t)

	seedInventory(t, db, "A", 0, 5, 3, true)
	seedInventory(t, db, "B", 10, 5, 3, true)

	data, err := Summary(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.TotalItems)
	assert.Equal(t, int64(1), data.OutOfStock)
	assert.Equal(t, int64(1), data.LowStock)
	assert.Equal(t, 30.0, data.TotalValue)
	require.Len(t, data.CategoryStats, 1)
	assert.Equal(t, string(models.InvCategoryIngredients), data.CategoryStats[0].Category)
}
