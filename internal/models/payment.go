package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment methods accepted by the API. Only the wallet method is actually
// settled; the others are recorded as pending intents for an external
// gateway that does not exist yet.
const (
	PaymentMethodWallet       = "wallet"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodBankTransfer = "bank_transfer"
)

// Payment record statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Payment is the single payment record attached to an order. Amount always
// equals the order's snapshot total.
type Payment struct {
	ID            string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OrderID       string          `json:"order_id" gorm:"uniqueIndex;type:varchar(36)" validate:"required"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	PaymentMethod string          `json:"payment_method" gorm:"type:varchar(20)" validate:"required,oneof=wallet credit_card bank_transfer"`
	Status        string          `json:"status" gorm:"type:varchar(20);default:pending"`
	TransactionID string          `json:"transaction_id" gorm:"type:varchar(100)"`
	gorm.Model
}
