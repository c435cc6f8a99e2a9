package repositories

import (
	"context"
	"fmt"

	"belanja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create creates a new order together with its item snapshots.
func (r *GORMOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
	}
	if err := dbFromContext(ctx, r.db).Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByIDForUser retrieves an order owned by the given user, with its
// items and payment record preloaded.
func (r *GORMOrderRepository) GetByIDForUser(ctx context.Context, id, userID string) (*models.Order, error) {
	var order models.Order
	err := dbFromContext(ctx, r.db).
		Preload("Items").
		Preload("Payment").
		First(&order, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// GetAllForUser retrieves all orders belonging to the given user.
func (r *GORMOrderRepository) GetAllForUser(ctx context.Context, userID string) ([]models.Order, error) {
	var orders []models.Order
	err := dbFromContext(ctx, r.db).
		Preload("Items").
		Preload("Payment").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}

// Update persists changes to an order's status fields. Associations are
// deliberately left alone: item snapshots are immutable and the payment
// record has its own repository.
func (r *GORMOrderRepository) Update(ctx context.Context, order *models.Order) error {
	if err := dbFromContext(ctx, r.db).Omit(clause.Associations).Save(order).Error; err != nil {
		return fmt.Errorf("failed to update order %s: %w", order.ID, err)
	}
	return nil
}

// GetItems retrieves the item snapshots of an order.
func (r *GORMOrderRepository) GetItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := dbFromContext(ctx, r.db).
		Where("order_id = ?", orderID).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get items for order %s: %w", orderID, err)
	}
	return items, nil
}
