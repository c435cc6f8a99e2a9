package services

import (
	"context"

	"belanja/internal/models"
	"belanja/internal/repositories"

	"github.com/shopspring/decimal"
)

// CartService handles business logic around the shopping cart. Totals are
// always derived from the live catalog price, so they can change between
// reads if a product's price or discount changes before checkout.
type CartService struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Get returns the user's cart with its items, creating the cart on first
// use.
func (s *CartService) Get(ctx context.Context, userID string) (*models.Cart, error) {
	return s.cartRepo.GetOrCreateByUserID(ctx, userID)
}

// AddItem puts a product into the user's cart. A line already holding the
// same (product, color) pair gets its quantity bumped instead of a
// duplicate line being created.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int, colorID *string) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, notFound(err)
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.cartRepo.FindItem(ctx, cart.ID, product.ID, colorID)
	if err == nil {
		existing.Quantity += quantity
		if err := s.cartRepo.UpdateItem(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	item := &models.CartItem{
		CartID:    cart.ID,
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
		ColorID:   colorID,
	}
	if err := s.cartRepo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes a line from the user's cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID string) error {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return notFound(s.cartRepo.DeleteItem(ctx, cart.ID, itemID))
}

// UpdateQuantity sets the quantity of a cart line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	item, err := s.cartRepo.GetItem(ctx, cart.ID, itemID)
	if err != nil {
		return nil, notFound(err)
	}

	item.Quantity = quantity
	if err := s.cartRepo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Clear removes every item from the user's cart. Clearing an empty cart is
// a no-op.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return s.cartRepo.ClearItems(ctx, cart.ID)
}

// Totals returns the cart's derived total price and item count:
// Σ(quantity × effective unit price) and Σ(quantity).
func (s *CartService) Totals(ctx context.Context, userID string) (decimal.Decimal, int, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return decimal.Zero, 0, err
	}

	total := decimal.Zero
	count := 0
	for i := range cart.Items {
		total = total.Add(cart.Items[i].TotalPrice())
		count += cart.Items[i].Quantity
	}
	return total, count, nil
}
