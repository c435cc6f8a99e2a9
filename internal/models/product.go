package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Category groups products in the catalog.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	gorm.Model
}

// Color is a selectable product color.
type Color struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name string `json:"name" gorm:"type:varchar(50)" validate:"required,max=50"`
	Code string `json:"code" gorm:"type:varchar(7)" validate:"required,hexcolor"` // Hex color code
	gorm.Model
}

// Discount is a percentage price reduction valid within a time window.
type Discount struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name            string          `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Description     string          `json:"description" validate:"omitempty,max=500"`
	DiscountPercent decimal.Decimal `json:"discount_percent" gorm:"type:decimal(5,2)" validate:"required"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	IsActive        bool            `json:"is_active" gorm:"default:true"`
	gorm.Model
}

// IsValid reports whether the discount currently applies.
func (d *Discount) IsValid() bool {
	now := time.Now()
	return d.IsActive && !now.Before(d.StartDate) && !now.After(d.EndDate)
}

// Product represents a product in the store.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=3,max=200"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  string          `json:"category_id" gorm:"type:varchar(36)"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Colors      []Color         `json:"colors,omitempty" gorm:"many2many:product_colors"`
	DiscountID  *string         `json:"discount_id,omitempty" gorm:"type:varchar(36)"`
	Discount    *Discount       `json:"discount,omitempty" gorm:"foreignKey:DiscountID"`
	gorm.Model                  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// EffectivePrice is the per-unit price the checkout flow charges: the list
// price, reduced by the discount while one is active and valid. Cart totals
// and order-item snapshots both use this value so the amount shown in the
// cart is the amount frozen into the order.
func (p *Product) EffectivePrice() decimal.Decimal {
	if p.Discount != nil && p.Discount.IsValid() {
		discountAmount := p.Price.Mul(p.Discount.DiscountPercent).Div(decimal.NewFromInt(100))
		return p.Price.Sub(discountAmount).Round(2)
	}
	return p.Price
}

// HasActiveDiscount reports whether the product is currently discounted.
func (p *Product) HasActiveDiscount() bool {
	return p.Discount != nil && p.Discount.IsValid()
}

// Comment is a user review on a product.
type Comment struct {
	ID        string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	ProductID string `json:"product_id" gorm:"type:varchar(36);index" validate:"required"`
	UserID    string `json:"user_id" gorm:"type:varchar(36)" validate:"required"`
	Text      string `json:"text" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	gorm.Model
}
