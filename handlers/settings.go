package handlers

import (
	"net/http"

	"retail-pos-api/config"
	"retail-pos-api/middleware"
	"retail-pos-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// loadSettings fetches the singleton row, lazily creating it with defaults
func loadSettings(c *gin.Context) (*models.Settings, bool) {
	var settings models.Settings
	err := config.DB.First(&settings, models.SettingsID).Error
	if err == nil {
		return &settings, true
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return nil, false
	}

	settings = models.DefaultSettings(middleware.GetUserID(c))
	if err := config.DB.Create(&settings).Error; err != nil {
		// another request may have created it first; re-read
		if err := config.DB.First(&settings, models.SettingsID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
			return nil, false
		}
	}
	return &settings, true
}

// GetSettings returns the singleton settings document
func GetSettings(c *gin.Context) {
	settings, ok := loadSettings(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}

// UpdateSettingsRequest carries optional top-level fields and sub-settings
type UpdateSettingsRequest struct {
	BusinessName       *string                    `json:"business_name"`
	BusinessAddress    *string                    `json:"business_address"`
	BusinessPhone      *string                    `json:"business_phone"`
	BusinessEmail      *string                    `json:"business_email"`
	BusinessWebsite    *string                    `json:"business_website"`
	Currency           *string                    `json:"currency"`
	Timezone           *string                    `json:"timezone"`
	Language           *string                    `json:"language"`
	TaxRate            *float64                   `json:"tax_rate"`
	TaxInclusive       *bool                      `json:"tax_inclusive"`
	LowStockThreshold  *float64                   `json:"low_stock_threshold"`
	AutoReorderEnabled *bool                      `json:"auto_reorder_enabled"`
	EmailNotifications *models.EmailNotifications `json:"email_notifications"`
	SMSNotifications   *models.SMSNotifications   `json:"sms_notifications"`
	ReceiptSettings    *models.ReceiptSettings    `json:"receipt_settings"`
	OrderSettings      *models.OrderSettings      `json:"order_settings"`
	InventorySettings  *models.InventorySettings  `json:"inventory_settings"`
	SystemSettings     *models.SystemSettings     `json:"system_settings"`
}

func applySettingsUpdate(settings *models.Settings, req *UpdateSettingsRequest) {
	if req.BusinessName != nil {
		settings.BusinessName = *req.BusinessName
	}
	if req.BusinessAddress != nil {
		settings.BusinessAddress = *req.BusinessAddress
	}
	if req.BusinessPhone != nil {
		settings.BusinessPhone = *req.BusinessPhone
	}
	if req.BusinessEmail != nil {
		settings.BusinessEmail = *req.BusinessEmail
	}
	if req.BusinessWebsite != nil {
		settings.BusinessWebsite = *req.BusinessWebsite
	}
	if req.Currency != nil {
		settings.Currency = *req.Currency
	}
	if req.Timezone != nil {
		settings.Timezone = *req.Timezone
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}
	if req.TaxRate != nil {
		settings.TaxRate = *req.TaxRate
	}
	if req.TaxInclusive != nil {
		settings.TaxInclusive = *req.TaxInclusive
	}
	if req.LowStockThreshold != nil {
		settings.LowStockThreshold = *req.LowStockThreshold
	}
	if req.AutoReorderEnabled != nil {
		settings.AutoReorderEnabled = *req.AutoReorderEnabled
	}
	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.SMSNotifications != nil {
		settings.SMSNotifications = *req.SMSNotifications
	}
	if req.ReceiptSettings != nil {
		settings.ReceiptSettings = *req.ReceiptSettings
	}
	if req.OrderSettings != nil {
		settings.OrderSettings = *req.OrderSettings
	}
	if req.InventorySettings != nil {
		settings.InventorySettings = *req.InventorySettings
	}
	if req.SystemSettings != nil {
		settings.SystemSettings = *req.SystemSettings
	}
}

// UpdateSettings applies a partial update to the singleton (admin only)
func UpdateSettings(c *gin.Context) {
	settings, ok := loadSettings(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	applySettingsUpdate(settings, &req)
	settings.UpdatedByID = middleware.GetUserID(c)

	if err := config.DB.Save(settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings, "message": "Settings updated successfully"})
}

// ResetSettings restores hardcoded defaults (admin only)
func ResetSettings(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := config.DB.Delete(&models.Settings{}, models.SettingsID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	settings := models.DefaultSettings(userID)
	if err := config.DB.Create(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings, "message": "Settings reset to defaults"})
}

// GetBusinessInfo returns just the business profile slice of settings
func GetBusinessInfo(c *gin.Context) {
	settings, ok := loadSettings(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"business_name":    settings.BusinessName,
			"business_address": settings.BusinessAddress,
			"business_phone":   settings.BusinessPhone,
			"business_email":   settings.BusinessEmail,
			"business_website": settings.BusinessWebsite,
			"currency":         settings.Currency,
			"timezone":         settings.Timezone,
		},
	})
}

// GetNotificationSettings returns the notification slices of settings
func GetNotificationSettings(c *gin.Context) {
	settings, ok := loadSettings(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"email_notifications": settings.EmailNotifications,
			"sms_notifications":   settings.SMSNotifications,
		},
	})
}

// GetSystemSettings returns the system slice of settings (admin only)
func GetSystemSettings(c *gin.Context) {
	settings, ok := loadSettings(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings.SystemSettings})
}

// ExportSettings returns the full settings document for backup (admin only)
func ExportSettings(c *gin.Context) {
	settings, ok := loadSettings(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", "attachment; filename=settings-export.json")
	c.JSON(http.StatusOK, gin.H{"success": true, "data": settings})
}
