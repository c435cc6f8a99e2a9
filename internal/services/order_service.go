package services

import (
	"context"
	"errors"
	"fmt"

	"belanja/internal/models"
	"belanja/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService materializes carts into orders and drives the order side of
// settlement (cancel with refund-on-cancel, wallet pay).
type OrderService struct {
	orderRepo   repositories.OrderRepository
	cartRepo    repositories.CartRepository
	paymentRepo repositories.PaymentRepository
	wallets     *WalletService
	payments    *PaymentService
	uow         repositories.UnitOfWork
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	cartRepo repositories.CartRepository,
	paymentRepo repositories.PaymentRepository,
	wallets *WalletService,
	payments *PaymentService,
	uow repositories.UnitOfWork,
	publisher EventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		paymentRepo: paymentRepo,
		wallets:     wallets,
		payments:    payments,
		uow:         uow,
		publisher:   publisher,
	}
}

// CreateFromCart turns the user's cart into an immutable order. Within one
// unit of work it creates the order with the cart's total at this instant,
// snapshots every line's effective unit price into an order item, and
// clears the cart. Later catalog price changes do not touch the snapshots.
func (s *OrderService) CreateFromCart(ctx context.Context, userID, shippingAddress string) (*models.Order, error) {
	cart, err := s.cartRepo.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Status:          models.OrderStatusPending,
		PaymentStatus:   models.PaymentStatusPending,
		ShippingAddress: shippingAddress,
	}

	total := decimal.Zero
	for i := range cart.Items {
		item := &cart.Items[i]
		if item.Product == nil {
			return nil, fmt.Errorf("cart item %s has no product: %w", item.ID, gorm.ErrRecordNotFound)
		}
		unitPrice := item.Product.EffectivePrice()
		total = total.Add(unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     unitPrice,
			ColorID:   item.ColorID,
		})
	}
	order.TotalAmount = total

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}
		return s.cartRepo.ClearItems(ctx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(s.publisher, EventOrderCreated, map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
	})
	return order, nil
}

// Cancel cancels an order that has not shipped yet. If the order was
// already paid, the full amount goes back to the user's wallet and both
// the payment record and the order's payment status end up refunded — the
// wallet credit, the refund transaction row and both status flips are one
// atomic unit.
func (s *OrderService) Cancel(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, notFound(err)
	}
	if !order.CanBeCancelled() {
		return nil, fmt.Errorf("order cannot be cancelled in status %s: %w", order.Status, ErrInvalidTransition)
	}

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		order.Status = models.OrderStatusCancelled

		if order.PaymentStatus == models.PaymentStatusPaid {
			if _, err := s.wallets.credit(ctx, userID, order.TotalAmount, models.TransactionRefund, &order.ID); err != nil {
				return err
			}

			payment, err := s.paymentRepo.GetByOrderID(ctx, order.ID)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if payment != nil {
				payment.Status = models.PaymentRefunded
				if err := s.paymentRepo.Update(ctx, payment); err != nil {
					return err
				}
			}
			order.PaymentStatus = models.PaymentStatusRefunded
		}

		return s.orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(s.publisher, EventOrderCancelled, map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
	})
	return order, nil
}

// Pay settles the order from the user's wallet and returns the updated
// order. Repayment of a paid order and payment beyond the wallet balance
// are rejected without touching any state.
func (s *OrderService) Pay(ctx context.Context, userID, orderID string) (*models.Order, error) {
	if _, err := s.payments.Process(ctx, userID, orderID, models.PaymentMethodWallet); err != nil {
		return nil, err
	}
	return s.Get(ctx, userID, orderID)
}

// Get retrieves one of the user's orders.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return order, nil
}

// List retrieves all of the user's orders, newest first.
func (s *OrderService) List(ctx context.Context, userID string) ([]models.Order, error) {
	return s.orderRepo.GetAllForUser(ctx, userID)
}

// Items retrieves the item snapshots of one of the user's orders.
func (s *OrderService) Items(ctx context.Context, userID, orderID string) ([]models.OrderItem, error) {
	order, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.GetItems(ctx, order.ID)
}

// UpdateStatus advances the fulfilment status along
// pending → processing → shipped → delivered. Cancellation goes through
// Cancel so the refund path cannot be skipped.
func (s *OrderService) UpdateStatus(ctx context.Context, userID, orderID, status string) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, notFound(err)
	}
	if status == models.OrderStatusCancelled || !order.CanTransitionTo(status) {
		return nil, fmt.Errorf("order cannot move from %s to %s: %w", order.Status, status, ErrInvalidTransition)
	}

	order.Status = status
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}
