package repositories

import (
	"context"

	"belanja/internal/models"
)

// PaymentRepository defines the interface for payment data access. A
// payment has no owner column of its own; ownership checks go through the
// payment's order.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByIDForUser(ctx context.Context, id, userID string) (*models.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (*models.Payment, error)
	GetAllForUser(ctx context.Context, userID string) ([]models.Payment, error)
	Update(ctx context.Context, payment *models.Payment) error
}
