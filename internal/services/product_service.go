package services

import (
	"context"

	"belanja/internal/models"
	"belanja/internal/repositories"
)

// ProductService handles business logic related to the catalog. The
// settlement flow only consumes it read-only: product lookups and the
// effective price.
type ProductService struct {
	productRepo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo repositories.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return product, nil
}

// CreateProduct creates a new product. Used by seeding; catalog
// administration itself lives outside this service.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	return s.productRepo.Create(ctx, product)
}

// GetComments retrieves the reviews on a product, newest first.
func (s *ProductService) GetComments(ctx context.Context, productID string) ([]models.Comment, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, notFound(err)
	}
	return s.productRepo.GetComments(ctx, productID)
}

// AddComment attaches a review to a product.
func (s *ProductService) AddComment(ctx context.Context, userID, productID, text string, rating int) (*models.Comment, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, notFound(err)
	}

	comment := &models.Comment{
		ProductID: productID,
		UserID:    userID,
		Text:      text,
		Rating:    rating,
	}
	if err := s.productRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
