package services

import (
	"context"
	"errors"
	"fmt"

	"belanja/internal/models"
	"belanja/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// settler is the per-channel half of the settlement engine. Each payment
// method gets its own variant; dispatch happens on the variant, never on
// string comparison spread through the flow.
type settler interface {
	// Settle moves the money for an order and returns the completed
	// payment record. Every mutation it makes must happen inside one unit
	// of work.
	Settle(ctx context.Context, userID string, order *models.Order) (*models.Payment, error)
	// Refund moves the money back for a completed payment.
	Refund(ctx context.Context, userID string, payment *models.Payment, order *models.Order) error
}

// PaymentService is the settlement engine: it drives wallet balance,
// payment record and order payment status through their state machines,
// each protocol as a single atomic unit.
type PaymentService struct {
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepository
	wallets     *WalletService
	uow         repositories.UnitOfWork
	publisher   EventPublisher
	settlers    map[string]settler
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepository,
	wallets *WalletService,
	uow repositories.UnitOfWork,
	publisher EventPublisher,
) *PaymentService {
	s := &PaymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		wallets:     wallets,
		uow:         uow,
		publisher:   publisher,
	}
	s.settlers = map[string]settler{
		models.PaymentMethodWallet:       &walletSettler{s},
		models.PaymentMethodCreditCard:   &gatewaySettler{s, models.PaymentMethodCreditCard},
		models.PaymentMethodBankTransfer: &gatewaySettler{s, models.PaymentMethodBankTransfer},
	}
	return s
}

// Process attempts payment of an order through the given method.
func (s *PaymentService) Process(ctx context.Context, userID, orderID, method string) (*models.Payment, error) {
	order, err := s.orderRepo.GetByIDForUser(ctx, orderID, userID)
	if err != nil {
		return nil, notFound(err)
	}
	if order.PaymentStatus == models.PaymentStatusPaid {
		return nil, ErrAlreadyPaid
	}

	settler, ok := s.settlers[method]
	if !ok {
		return nil, fmt.Errorf("%q: %w", method, ErrInvalidPaymentMethod)
	}
	return settler.Settle(ctx, userID, order)
}

// Refund reverses a completed payment. Only completed payments can be
// refunded; anything else is an invalid transition.
func (s *PaymentService) Refund(ctx context.Context, userID, paymentID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByIDForUser(ctx, paymentID, userID)
	if err != nil {
		return nil, notFound(err)
	}
	if payment.Status != models.PaymentCompleted {
		return nil, fmt.Errorf("only completed payments can be refunded: %w", ErrInvalidTransition)
	}

	order, err := s.orderRepo.GetByIDForUser(ctx, payment.OrderID, userID)
	if err != nil {
		return nil, notFound(err)
	}

	if err := s.settlers[payment.PaymentMethod].Refund(ctx, userID, payment, order); err != nil {
		return nil, err
	}
	return payment, nil
}

// Cancel fails a pending payment and marks the order's payment as failed.
func (s *PaymentService) Cancel(ctx context.Context, userID, paymentID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByIDForUser(ctx, paymentID, userID)
	if err != nil {
		return nil, notFound(err)
	}
	if payment.Status != models.PaymentPending {
		return nil, fmt.Errorf("only pending payments can be cancelled: %w", ErrInvalidTransition)
	}

	order, err := s.orderRepo.GetByIDForUser(ctx, payment.OrderID, userID)
	if err != nil {
		return nil, notFound(err)
	}

	err = s.uow.Do(ctx, func(ctx context.Context) error {
		payment.Status = models.PaymentFailed
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return err
		}
		order.PaymentStatus = models.PaymentStatusFailed
		return s.orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Get retrieves a payment on one of the user's orders.
func (s *PaymentService) Get(ctx context.Context, userID, paymentID string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByIDForUser(ctx, paymentID, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return payment, nil
}

// List retrieves all payments on the user's orders.
func (s *PaymentService) List(ctx context.Context, userID string) ([]models.Payment, error) {
	return s.paymentRepo.GetAllForUser(ctx, userID)
}

// settleWallet is the wallet-channel settlement protocol: debit the wallet
// with an order-linked purchase transaction, complete the payment record
// and mark the order paid, all-or-nothing. A partial application (money
// gone but order unpaid) is the failure this unit of work exists to
// prevent.
func (s *PaymentService) settleWallet(ctx context.Context, userID string, order *models.Order) (*models.Payment, error) {
	var payment *models.Payment
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		transaction, err := s.wallets.debit(ctx, userID, order.TotalAmount, models.TransactionPurchase, &order.ID)
		if err != nil {
			return err
		}

		payment, err = s.upsertPayment(ctx, order, models.PaymentMethodWallet)
		if err != nil {
			return err
		}
		payment.Status = models.PaymentCompleted
		payment.TransactionID = transaction.ID
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return err
		}

		order.PaymentStatus = models.PaymentStatusPaid
		return s.orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	publishEvent(s.publisher, EventPaymentCompleted, map[string]interface{}{
		"paymentID": payment.ID,
		"orderID":   order.ID,
		"userID":    userID,
		"amount":    payment.Amount,
		"method":    payment.PaymentMethod,
	})
	return payment, nil
}

// refundWallet is the wallet-channel refund protocol: credit the wallet
// with an order-linked refund transaction and move payment and order to
// refunded, all-or-nothing.
func (s *PaymentService) refundWallet(ctx context.Context, userID string, payment *models.Payment, order *models.Order) error {
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		if _, err := s.wallets.credit(ctx, userID, payment.Amount, models.TransactionRefund, &order.ID); err != nil {
			return err
		}

		payment.Status = models.PaymentRefunded
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			return err
		}

		order.PaymentStatus = models.PaymentStatusRefunded
		return s.orderRepo.Update(ctx, order)
	})
	if err != nil {
		return err
	}

	publishEvent(s.publisher, EventPaymentRefunded, map[string]interface{}{
		"paymentID": payment.ID,
		"orderID":   order.ID,
		"userID":    userID,
		"amount":    payment.Amount,
	})
	return nil
}

// upsertPayment returns the order's payment record, creating it in pending
// state when the order has none yet. Amount is pinned to the order's
// snapshot total.
func (s *PaymentService) upsertPayment(ctx context.Context, order *models.Order, method string) (*models.Payment, error) {
	payment, err := s.paymentRepo.GetByOrderID(ctx, order.ID)
	if err == nil {
		payment.PaymentMethod = method
		return payment, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	payment = &models.Payment{
		ID:            uuid.New().String(),
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		PaymentMethod: method,
		Status:        models.PaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// walletSettler settles against the user's wallet balance. It is the only
// channel with a real implementation.
type walletSettler struct {
	s *PaymentService
}

func (w *walletSettler) Settle(ctx context.Context, userID string, order *models.Order) (*models.Payment, error) {
	return w.s.settleWallet(ctx, userID, order)
}

func (w *walletSettler) Refund(ctx context.Context, userID string, payment *models.Payment, order *models.Order) error {
	return w.s.refundWallet(ctx, userID, payment, order)
}

// gatewaySettler stands in for external channels (credit card, bank
// transfer) that have no gateway integration. Settling records a pending
// payment intent for a later gateway callback and reports not-implemented;
// refunding changes nothing at all.
type gatewaySettler struct {
	s      *PaymentService
	method string
}

func (g *gatewaySettler) Settle(ctx context.Context, userID string, order *models.Order) (*models.Payment, error) {
	if _, err := g.s.upsertPayment(ctx, order, g.method); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("%s payment: %w", g.method, ErrNotImplemented)
}

func (g *gatewaySettler) Refund(ctx context.Context, userID string, payment *models.Payment, order *models.Order) error {
	return fmt.Errorf("%s refund: %w", g.method, ErrNotImplemented)
}
