package repositories

import (
	"context"

	"belanja/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	GetComments(ctx context.Context, productID string) ([]models.Comment, error)
	CreateComment(ctx context.Context, comment *models.Comment) error
}
