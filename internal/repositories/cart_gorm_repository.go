package repositories

import (
	"context"
	"errors"
	"fmt"

	"belanja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetOrCreateByUserID returns the user's cart, creating it on first use.
func (r *GORMCartRepository) GetOrCreateByUserID(ctx context.Context, userID string) (*models.Cart, error) {
	db := dbFromContext(ctx, r.db)

	var cart models.Cart
	err := db.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Discount").
		Preload("Items.Color").
		First(&cart, "user_id = ?", userID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}

	cart = models.Cart{ID: uuid.New().String(), UserID: userID}
	if err := db.Create(&cart).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart for user %s: %w", userID, err)
	}
	return &cart, nil
}

// GetItem retrieves a cart item, scoped to the cart so one user cannot
// address another user's lines.
func (r *GORMCartRepository) GetItem(ctx context.Context, cartID, itemID string) (*models.CartItem, error) {
	var item models.CartItem
	err := dbFromContext(ctx, r.db).
		Preload("Product").
		Preload("Product.Discount").
		First(&item, "id = ? AND cart_id = ?", itemID, cartID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get cart item %s: %w", itemID, err)
	}
	return &item, nil
}

// FindItem locates the existing line for a (product, color) pair.
func (r *GORMCartRepository) FindItem(ctx context.Context, cartID, productID string, colorID *string) (*models.CartItem, error) {
	query := dbFromContext(ctx, r.db).
		Preload("Product").
		Preload("Product.Discount").
		Where("cart_id = ? AND product_id = ?", cartID, productID)
	if colorID == nil {
		query = query.Where("color_id IS NULL")
	} else {
		query = query.Where("color_id = ?", *colorID)
	}

	var item models.CartItem
	if err := query.First(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to find cart item for product %s: %w", productID, err)
	}
	return &item, nil
}

// CreateItem creates a new cart item.
func (r *GORMCartRepository) CreateItem(ctx context.Context, item *models.CartItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if err := dbFromContext(ctx, r.db).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// UpdateItem updates an existing cart item.
func (r *GORMCartRepository) UpdateItem(ctx context.Context, item *models.CartItem) error {
	if err := dbFromContext(ctx, r.db).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update cart item %s: %w", item.ID, err)
	}
	return nil
}

// DeleteItem removes a single item from the cart.
func (r *GORMCartRepository) DeleteItem(ctx context.Context, cartID, itemID string) error {
	res := dbFromContext(ctx, r.db).Delete(&models.CartItem{}, "id = ? AND cart_id = ?", itemID, cartID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item %s: %w", itemID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %s not found: %w", itemID, gorm.ErrRecordNotFound)
	}
	return nil
}

// ClearItems removes every item from the cart. Clearing an already-empty
// cart is not an error.
func (r *GORMCartRepository) ClearItems(ctx context.Context, cartID string) error {
	if err := dbFromContext(ctx, r.db).Delete(&models.CartItem{}, "cart_id = ?", cartID).Error; err != nil {
		return fmt.Errorf("failed to clear cart %s: %w", cartID, err)
	}
	return nil
}
