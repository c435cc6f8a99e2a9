package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"belanja/internal/models"
	"belanja/internal/repositories"
	"belanja/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

// fixture wires every service against an in-memory SQLite database, the
// same way main does against Postgres.
type fixture struct {
	db       *gorm.DB
	wallets  *services.WalletService
	carts    *services.CartService
	orders   *services.OrderService
	payments *services.PaymentService
	products *services.ProductService
	auth     *services.AuthService

	productRepo repositories.ProductRepository
	walletRepo  repositories.WalletRepository
	cartRepo    repositories.CartRepository
	orderRepo   repositories.OrderRepository
	paymentRepo repositories.PaymentRepository
	uow         repositories.UnitOfWork
}

// setupFixture opens a fresh in-memory database per test and wires the
// full service graph on top of it.
func setupFixture(t *testing.T) *fixture {
	t.Helper()

	// A named shared-cache DSN keeps all pooled connections on one database.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Color{},
		&models.Discount{},
		&models.Product{},
		&models.Comment{},
		&models.Cart{},
		&models.CartItem{},
		&models.Wallet{},
		&models.Transaction{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
	require.NoError(t, err)

	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	walletRepo := repositories.NewGORMWalletRepository(db)
	paymentRepo := repositories.NewGORMPaymentRepository(db)
	uow := repositories.NewGormUnitOfWork(db)

	wallets := services.NewWalletService(walletRepo, uow)
	payments := services.NewPaymentService(orderRepo, paymentRepo, wallets, uow, nil)
	orders := services.NewOrderService(orderRepo, cartRepo, paymentRepo, wallets, payments, uow, nil)

	return &fixture{
		db:          db,
		wallets:     wallets,
		carts:       services.NewCartService(cartRepo, productRepo),
		orders:      orders,
		payments:    payments,
		products:    services.NewProductService(productRepo),
		auth:        services.NewAuthService(userRepo, walletRepo, cartRepo, uow, "test_jwt_secret"),
		productRepo: productRepo,
		walletRepo:  walletRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		uow:         uow,
	}
}

// seedProduct creates a product with the given price.
func (f *fixture) seedProduct(t *testing.T, id string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{
		ID:    id,
		Name:  "Product " + id,
		Price: decimal.NewFromFloat(price),
		Stock: 100,
	}
	require.NoError(t, f.productRepo.Create(context.Background(), product))
	return product
}

// seedBalance gives the user a wallet holding the given balance via a
// regular deposit.
func (f *fixture) seedBalance(t *testing.T, userID string, balance float64) {
	t.Helper()
	_, err := f.wallets.Deposit(context.Background(), userID, decimal.NewFromFloat(balance))
	require.NoError(t, err)
}

// checkout puts quantity of the product into the user's cart and turns the
// cart into an order.
func (f *fixture) checkout(t *testing.T, userID, productID string, quantity int) *models.Order {
	t.Helper()
	ctx := context.Background()
	_, err := f.carts.AddItem(ctx, userID, productID, quantity, nil)
	require.NoError(t, err)
	order, err := f.orders.CreateFromCart(ctx, userID, "Jl. Merdeka No. 1")
	require.NoError(t, err)
	return order
}
