package repositories

import (
	"context"

	"belanja/internal/models"
)

// OrderRepository defines the interface for order data access. Orders are
// always addressed together with their owner; there is no path to load
// another user's order.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByIDForUser(ctx context.Context, id, userID string) (*models.Order, error)
	GetAllForUser(ctx context.Context, userID string) ([]models.Order, error)
	Update(ctx context.Context, order *models.Order) error
	GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error)
}
