package models

import "time"

// SettingsID is the fixed primary key of the singleton settings row
const SettingsID = 1

type EmailNotifications struct {
	LowStock      bool `json:"low_stock"`
	NewOrders     bool `json:"new_orders"`
	DailyReports  bool `json:"daily_reports"`
	WeeklyReports bool `json:"weekly_reports"`
}

type SMSNotifications struct {
	LowStock  bool `json:"low_stock"`
	NewOrders bool `json:"new_orders"`
}

type ReceiptSettings struct {
	HeaderText string `json:"header_text"`
	FooterText string `json:"footer_text"`
	ShowTax    bool   `json:"show_tax"`
	ShowLogo   bool   `json:"show_logo"`
	LogoURL    string `json:"logo_url"`
}

type OrderSettings struct {
	AutoAcceptOrders    bool    `json:"auto_accept_orders"`
	RequireCustomerInfo bool    `json:"require_customer_info"`
	AllowCustomOrders   bool    `json:"allow_custom_orders"`
	MaxOrderValue       float64 `json:"max_order_value"`
	MinOrderValue       float64 `json:"min_order_value"`
}

type InventorySettings struct {
	TrackExpiryDates   bool `json:"track_expiry_dates"`
	ExpiryWarningDays  int  `json:"expiry_warning_days"`
	AllowNegativeStock bool `json:"allow_negative_stock"`
	AutoAdjustPricing  bool `json:"auto_adjust_pricing"`
}

type SystemSettings struct {
	MaintenanceMode   bool   `json:"maintenance_mode"`
	BackupFrequency   string `json:"backup_frequency"`
	DataRetentionDays int    `json:"data_retention_days"`
	MaxFileSizeMB     int    `json:"max_file_size_mb"`
}

// Settings is a true singleton: exactly one row with a fixed ID, lazily
// created with defaults on first read
type Settings struct {
	ID                 uint               `json:"id" gorm:"primaryKey"`
	BusinessName       string             `json:"business_name" gorm:"not null"`
	BusinessAddress    string             `json:"business_address"`
	BusinessPhone      string             `json:"business_phone"`
	BusinessEmail      string             `json:"business_email"`
	BusinessWebsite    string             `json:"business_website"`
	Currency           string             `json:"currency" gorm:"not null;default:'USD'"`
	Timezone           string             `json:"timezone" gorm:"not null;default:'UTC'"`
	Language           string             `json:"language" gorm:"not null;default:'en'"`
	TaxRate            float64            `json:"tax_rate" gorm:"not null;default:0"`
	TaxInclusive       bool               `json:"tax_inclusive" gorm:"default:false"`
	LowStockThreshold  float64            `json:"low_stock_threshold" gorm:"not null;default:10"`
	AutoReorderEnabled bool               `json:"auto_reorder_enabled" gorm:"default:false"`
	EmailNotifications EmailNotifications `json:"email_notifications" gorm:"embedded;embeddedPrefix:email_notif_"`
	SMSNotifications   SMSNotifications   `json:"sms_notifications" gorm:"embedded;embeddedPrefix:sms_notif_"`
	ReceiptSettings    ReceiptSettings    `json:"receipt_settings" gorm:"embedded;embeddedPrefix:receipt_"`
	OrderSettings      OrderSettings      `json:"order_settings" gorm:"embedded;embeddedPrefix:order_"`
	InventorySettings  InventorySettings  `json:"inventory_settings" gorm:"embedded;embeddedPrefix:inventory_"`
	SystemSettings     SystemSettings     `json:"system_settings" gorm:"embedded;embeddedPrefix:system_"`
	CreatedByID        uint               `json:"created_by_id"`
	UpdatedByID        uint               `json:"updated_by_id"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// DefaultSettings returns the hardcoded defaults used on first read
func DefaultSettings(createdBy uint) Settings {
	return Settings{
		ID:                SettingsID,
		BusinessName:      "My Restaurant",
		BusinessAddress:   "",
		BusinessPhone:     "",
		BusinessEmail:     "info@myrestaurant.com",
		Currency:          "USD",
		Timezone:          "UTC",
		Language:          "en",
		TaxRate:           0,
		LowStockThreshold: 10,
		EmailNotifications: EmailNotifications{
			LowStock:  true,
			NewOrders: true,
		},
		ReceiptSettings: ReceiptSettings{
			ShowTax: true,
		},
		OrderSettings: OrderSettings{
			RequireCustomerInfo: true,
			MaxOrderValue:       1000,
		},
		InventorySettings: InventorySettings{
			TrackExpiryDates:  true,
			ExpiryWarningDays: 30,
		},
		SystemSettings: SystemSettings{
			BackupFrequency:   "daily",
			DataRetentionDays: 365,
			MaxFileSizeMB:     5,
		},
		CreatedByID: createdBy,
		UpdatedByID: createdBy,
	}
}
