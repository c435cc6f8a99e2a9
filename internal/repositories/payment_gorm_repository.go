package repositories

import (
	"context"
	"fmt"

	"belanja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPaymentRepository is a GORM implementation of PaymentRepository.
type GORMPaymentRepository struct {
	db *gorm.DB
}

// NewGORMPaymentRepository creates a new instance of GORMPaymentRepository.
func NewGORMPaymentRepository(db *gorm.DB) *GORMPaymentRepository {
	return &GORMPaymentRepository{
		db: db,
	}
}

// Create creates a new payment record.
func (r *GORMPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if err := dbFromContext(ctx, r.db).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByIDForUser retrieves a payment whose order belongs to the given user.
func (r *GORMPaymentRepository) GetByIDForUser(ctx context.Context, id, userID string) (*models.Payment, error) {
	var payment models.Payment
	err := dbFromContext(ctx, r.db).
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("payments.id = ? AND orders.user_id = ?", id, userID).
		First(&payment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get payment by ID %s: %w", id, err)
	}
	return &payment, nil
}

// GetByOrderID retrieves the payment record of an order, if one exists.
func (r *GORMPaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	var payment models.Payment
	if err := dbFromContext(ctx, r.db).First(&payment, "order_id = ?", orderID).Error; err != nil {
		return nil, fmt.Errorf("failed to get payment for order %s: %w", orderID, err)
	}
	return &payment, nil
}

// GetAllForUser retrieves all payments on the user's orders.
func (r *GORMPaymentRepository) GetAllForUser(ctx context.Context, userID string) ([]models.Payment, error) {
	var payments []models.Payment
	err := dbFromContext(ctx, r.db).
		Joins("JOIN orders ON orders.id = payments.order_id").
		Where("orders.user_id = ?", userID).
		Order("payments.created_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get payments for user %s: %w", userID, err)
	}
	return payments, nil
}

// Update persists changes to a payment's status fields.
func (r *GORMPaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	res := dbFromContext(ctx, r.db).Save(payment)
	if res.Error != nil {
		return fmt.Errorf("failed to update payment %s: %w", payment.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("payment %s not found for update: %w", payment.ID, gorm.ErrRecordNotFound)
	}
	return nil
}
