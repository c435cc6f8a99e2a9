package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order fulfilment statuses.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order payment statuses. These evolve independently of the fulfilment
// status: a pending order can already be paid, and a cancelled order can
// end up refunded.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// Order represents a customer order. TotalAmount is a snapshot taken from
// the cart at creation time and never changes afterwards.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID          string          `json:"user_id" gorm:"type:varchar(36);index" validate:"required"`
	Status          string          `json:"status" gorm:"type:varchar(20);default:pending"`
	PaymentStatus   string          `json:"payment_status" gorm:"type:varchar(20);default:pending"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	ShippingAddress string          `json:"shipping_address" gorm:"type:text"`
	Items           []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Payment         *Payment        `json:"payment,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	gorm.Model
}

// CanBeCancelled reports whether the order may still be cancelled. Only
// orders that have not shipped qualify.
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusProcessing
}

// validOrderTransitions lists the allowed fulfilment status moves.
var validOrderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

// CanTransitionTo reports whether the fulfilment status may move to next.
func (o *Order) CanTransitionTo(next string) bool {
	for _, allowed := range validOrderTransitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// OrderItem is a single line of an order. Price is the per-unit effective
// price captured when the order was created; later catalog price changes
// must not affect it.
type OrderItem struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OrderID   string          `json:"order_id" gorm:"type:varchar(36);index" validate:"required"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	Product   *Product        `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"` // Price at the time of order
	ColorID   *string         `json:"color_id,omitempty" gorm:"type:varchar(36)"`
	gorm.Model
}

// TotalPrice is quantity times the snapshot price.
func (oi *OrderItem) TotalPrice() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
