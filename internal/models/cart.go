package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Cart holds a user's not-yet-ordered items. Each user has exactly one cart;
// totals are derived from the items on every read, never stored.
type Cart struct {
	ID     string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID string     `json:"user_id" gorm:"uniqueIndex;type:varchar(36)" validate:"required"`
	Items  []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	gorm.Model
}

// CartItem is one product line in a cart. At most one line exists per
// (product, color) pair; adding the same pair again bumps the quantity.
type CartItem struct {
	ID        string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	CartID    string   `json:"cart_id" gorm:"type:varchar(36);index" validate:"required"`
	ProductID string   `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int      `json:"quantity" validate:"required,min=1"`
	ColorID   *string  `json:"color_id,omitempty" gorm:"type:varchar(36)"`
	Color     *Color   `json:"color,omitempty" gorm:"foreignKey:ColorID"`
	gorm.Model
}

// TotalPrice is quantity times the product's current effective price.
func (ci *CartItem) TotalPrice() decimal.Decimal {
	if ci.Product == nil {
		return decimal.Zero
	}
	return ci.Product.EffectivePrice().Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
