package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction types. The amount on a transaction is always positive; the
// type says which direction the money moved.
const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
	TransactionPurchase   = "purchase"
	TransactionRefund     = "refund"
)

// Wallet holds a user's store credit. Each user has exactly one wallet and
// the balance never goes below zero; it is only ever changed together with
// an appended Transaction row.
type Wallet struct {
	ID      string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID  string          `json:"user_id" gorm:"uniqueIndex;type:varchar(36)" validate:"required"`
	Balance decimal.Decimal `json:"balance" gorm:"type:decimal(10,2)"`
	gorm.Model
}

// Transaction is one append-only entry in a wallet's history. Rows are never
// updated or deleted. OrderID correlates purchases and refunds with the
// order that caused them; it is not an ownership edge.
type Transaction struct {
	ID       string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	WalletID string          `json:"wallet_id" gorm:"type:varchar(36);index" validate:"required"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Type     string          `json:"transaction_type" gorm:"column:transaction_type;type:varchar(20)" validate:"required,oneof=deposit withdrawal purchase refund"`
	OrderID  *string         `json:"order_id,omitempty" gorm:"type:varchar(36)"`
	gorm.Model
}
