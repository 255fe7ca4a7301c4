package handlers

import (
	"net/http"
	"strconv"
	"time"

	"retail-pos-api/analytics"
	"retail-pos-api/config"
	"retail-pos-api/logger"

	"github.com/gin-gonic/gin"
)

// defaultPeriodDays is the trailing window used when no range is given
const defaultPeriodDays = 30

// periodDays parses the period query param (days), defaulting to 30
func periodDays(c *gin.Context) int {
	days, err := strconv.Atoi(c.DefaultQuery("period", "30"))
	if err != nil || days <= 0 {
		return defaultPeriodDays
	}
	return days
}

// DashboardAnalytics serves the full dashboard snapshot
func DashboardAnalytics(c *gin.Context) {
	data, err := analytics.Dashboard(config.DB, time.Now())
	if err != nil {
		logger.Error("dashboard analytics failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// SalesAnalytics serves the sales report. Accepts either an explicit
// startDate/endDate pair (ISO dates) or a trailing period in days.
func SalesAnalytics(c *gin.Context) {
	var rng analytics.DateRange

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr != "" && endStr != "" {
		start, err1 := time.ParseInLocation("2006-01-02", startStr, time.Local)
		end, err2 := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err1 != nil || err2 != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date range"})
			return
		}
		// include the whole end day
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		rng = analytics.DateRange{Start: &start, End: &end}
	} else {
		rng = analytics.TrailingRange(time.Now(), periodDays(c))
	}

	data, err := analytics.Sales(config.DB, rng)
	if err != nil {
		logger.Error("sales analytics failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// InventoryAnalytics serves the full inventory report
func InventoryAnalytics(c *gin.Context) {
	data, err := analytics.Inventory(config.DB)
	if err != nil {
		logger.Error("inventory analytics failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// ProductAnalytics serves the catalog report
func ProductAnalytics(c *gin.Context) {
	data, err := analytics.Products(config.DB)
	if err != nil {
		logger.Error("product analytics failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// RevenueAnalytics serves the revenue report over a trailing window
func RevenueAnalytics(c *gin.Context) {
	data, err := analytics.Revenue(config.DB, periodDays(c), time.Now())
	if err != nil {
		logger.Error("revenue analytics failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
