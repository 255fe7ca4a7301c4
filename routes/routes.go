package routes

import (
	"retail-pos-api/handlers"
	"retail-pos-api/middleware"
	"retail-pos-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public auth routes ─────────────────────────────────────────
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.POST("/setup-sample-users", handlers.SetupSampleUsers)
	}

	// ── Authenticated auth routes ──────────────────────────────────
	authed := r.Group("/api/auth")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/me", handlers.Me)
		authed.GET("/validate", handlers.ValidateSession)
		authed.POST("/logout", handlers.Logout)
	}

	// ── Inventory ──────────────────────────────────────────────────
	inventory := r.Group("/api/inventory")
	inventory.Use(middleware.AuthRequired())
	{
		inventory.GET("/", handlers.ListInventory)
		inventory.GET("/analytics", handlers.InventorySummary)
		inventory.GET("/alerts/low-stock", handlers.LowStockAlerts)
		inventory.GET("/:id", handlers.GetInventoryItem)

		inventory.POST("/", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), handlers.CreateInventoryItem)
		inventory.PUT("/:id", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), handlers.UpdateInventoryItem)
		inventory.DELETE("/:id", middleware.RoleRequired(models.RoleAdmin), handlers.DeleteInventoryItem)

		inventory.PATCH("/:id/stock", middleware.RoleRequired(models.RoleAdmin, models.RoleManager, models.RoleStaff), handlers.AdjustStock)
		inventory.POST("/bulk-stock-adjustment", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), handlers.BulkStockAdjustment)
	}

	// ── Products ───────────────────────────────────────────────────
	products := r.Group("/api/products")
	products.Use(middleware.AuthRequired())
	{
		products.GET("/", handlers.ListProducts)
		products.GET("/analytics", handlers.ProductSummary)
		products.GET("/featured", handlers.FeaturedProducts)
		products.GET("/category/:category", handlers.ProductsByCategory)
		products.GET("/:id", handlers.GetProduct)

		products.POST("/", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), handlers.CreateProduct)
		products.PUT("/:id", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), handlers.UpdateProduct)
		products.DELETE("/:id", middleware.RoleRequired(models.RoleAdmin), handlers.DeleteProduct)

		products.PATCH("/:id/toggle-availability", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), handlers.ToggleProductAvailability)
		products.PATCH("/:id/toggle-featured", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), handlers.ToggleProductFeatured)
		products.PATCH("/:id/sort-order", middleware.RoleRequired(models.RoleAdmin, models.RoleManager), handlers.UpdateProductSortOrder)
	}

	// ── Analytics (any authenticated user) ─────────────────────────
	analytics := r.Group("/api/analytics")
	analytics.Use(middleware.AuthRequired())
	{
		analytics.GET("/dashboard", handlers.DashboardAnalytics)
		analytics.GET("/sales", handlers.SalesAnalytics)
		analytics.GET("/inventory", handlers.InventoryAnalytics)
		analytics.GET("/products", handlers.ProductAnalytics)
		analytics.GET("/revenue", handlers.RevenueAnalytics)
	}

	// ── Users ──────────────────────────────────────────────────────
	users := r.Group("/api/users")
	users.Use(middleware.AuthRequired())
	{
		users.PUT("/profile", handlers.UpdateProfile)
		users.PUT("/change-password", handlers.ChangePassword)

		users.GET("/", middleware.RoleRequired(models.RoleAdmin), handlers.GetUsers)
		users.GET("/:id", middleware.RoleRequired(models.RoleAdmin), handlers.GetUserByID)
		users.PUT("/:id", middleware.RoleRequired(models.RoleAdmin), handlers.UpdateUser)
		users.DELETE("/:id", middleware.RoleRequired(models.RoleAdmin), handlers.DeleteUser)
	}

	// ── Settings ───────────────────────────────────────────────────
	settings := r.Group("/api/settings")
	settings.Use(middleware.AuthRequired())
	{
		settings.GET("/", handlers.GetSettings)
		settings.PUT("/", middleware.RoleRequired(models.RoleAdmin), handlers.UpdateSettings)
		settings.POST("/reset", middleware.RoleRequired(models.RoleAdmin), handlers.ResetSettings)
		settings.GET("/export", middleware.RoleRequired(models.RoleAdmin), handlers.ExportSettings)

		settings.GET("/business", handlers.GetBusinessInfo)
		settings.GET("/notifications", handlers.GetNotificationSettings)
		settings.GET("/system", middleware.RoleRequired(models.RoleAdmin), handlers.GetSystemSettings)
	}

	// ── Chef ───────────────────────────────────────────────────────
	chef := r.Group("/api/chef")
	chef.Use(middleware.AuthRequired())
	{
		chef.GET("/products", handlers.ChefProducts)
		chef.POST("/products/:productId/add", handlers.AddProduction)
		chef.POST("/products/:productId/remove", handlers.RemoveProduction)
		chef.GET("/stats", handlers.ChefStats)
		chef.GET("/kitchen-status", handlers.KitchenStatus)
		chef.GET("/pending-orders", handlers.PendingOrders)
	}

	// ── Orders (stub) ──────────────────────────────────────────────
	orders := r.Group("/api/orders")
	orders.Use(middleware.AuthRequired())
	{
		orders.GET("/", handlers.ListOrders)
		orders.POST("/", handlers.CreateOrder)
		orders.GET("/:id", handlers.GetOrder)
		orders.PUT("/:id", handlers.UpdateOrder)
		orders.DELETE("/:id", handlers.CancelOrder)
	}
}
