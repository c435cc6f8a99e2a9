package repositories

import (
	"context"

	"belanja/internal/models"
)

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	// GetOrCreateByUserID returns the user's cart, creating the row on
	// first use. Items are preloaded with their product and discount so
	// totals can be derived without further queries.
	GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error)
	GetItem(ctx context.Context, cartID, itemID string) (*models.CartItem, error)
	// FindItem locates the line for a (product, color) pair, if any.
	FindItem(ctx context.Context, cartID, productID string, colorID *string) (*models.CartItem, error)
	CreateItem(ctx context.Context, item *models.CartItem) error
	UpdateItem(ctx context.Context, item *models.CartItem) error
	DeleteItem(ctx context.Context, cartID, itemID string) error
	ClearItems(ctx context.Context, cartID string) error
}
