package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentMethod is the closed set of accepted payment methods
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentMobile PaymentMethod = "mobile"
)

// PaymentStatus tracks payment settlement
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type Order struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	OrderNumber   string        `json:"order_number" gorm:"uniqueIndex;not null"`
	Items         []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Subtotal      float64       `json:"subtotal" gorm:"not null"`
	Tax           float64       `json:"tax" gorm:"not null;default:0"`
	Total         float64       `json:"total" gorm:"not null"`
	Status        OrderStatus   `json:"status" gorm:"not null;default:'pending'"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'pending'"`
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Notes         string        `json:"notes"`
	CreatedByID   uint          `json:"created_by_id" gorm:"not null"`
	CreatedBy     *User         `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	CompletedByID *uint         `json:"completed_by_id"`
	CompletedBy   *User         `json:"completed_by,omitempty" gorm:"foreignKey:CompletedByID"`
	CompletedAt   *time.Time    `json:"completed_at"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Name      string  `json:"name" gorm:"not null"` // snapshot name at order time
	Quantity  float64 `json:"quantity" gorm:"not null"`
	Price     float64 `json:"price" gorm:"not null"` // snapshot unit price
	Total     float64 `json:"total" gorm:"not null"`
}

// DailySequence backs date-scoped order numbering. One row per calendar day,
// incremented atomically instead of counting existing orders, so concurrent
// creates never produce duplicate numbers.
type DailySequence struct {
	Day string `gorm:"primaryKey"`
	Seq int    `gorm:"not null;default:0"`
}

// BeforeCreate assigns a unique, human-readable, date-scoped order number
// of the form ORD-YYYYMMDD-NNN
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.OrderNumber != "" {
		return nil
	}
	day := time.Now().Format("20060102")
	var seq int
	err := tx.Raw(
		`INSERT INTO daily_sequences (day, seq) VALUES (?, 1)
		 ON CONFLICT(day) DO UPDATE SET seq = seq + 1
		 RETURNING seq`, day,
	).Scan(&seq).Error
	if err != nil {
		return err
	}
	o.OrderNumber = fmt.Sprintf("ORD-%s-%03d", day, seq)
	return nil
}
