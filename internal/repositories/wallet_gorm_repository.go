package repositories

import (
	"context"
	"fmt"

	"belanja/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMWalletRepository is a GORM implementation of WalletRepository.
type GORMWalletRepository struct {
	db *gorm.DB
}

// NewGORMWalletRepository creates a new instance of GORMWalletRepository.
func NewGORMWalletRepository(db *gorm.DB) *GORMWalletRepository {
	return &GORMWalletRepository{
		db: db,
	}
}

// Create creates a new wallet.
func (r *GORMWalletRepository) Create(ctx context.Context, wallet *models.Wallet) error {
	if wallet.ID == "" {
		wallet.ID = uuid.New().String()
	}
	if err := dbFromContext(ctx, r.db).Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetByUserID retrieves the wallet belonging to the given user.
func (r *GORMWalletRepository) GetByUserID(ctx context.Context, userID string) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := dbFromContext(ctx, r.db).First(&wallet, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to get wallet for user %s: %w", userID, err)
	}
	return &wallet, nil
}

// GetByUserIDForUpdate retrieves the wallet with a SELECT ... FOR UPDATE
// lock. SQLite (used in tests) has no row locks; its writes serialize on
// the database file, so the clause is skipped there.
func (r *GORMWalletRepository) GetByUserIDForUpdate(ctx context.Context, userID string) (*models.Wallet, error) {
	db := dbFromContext(ctx, r.db)
	if db.Dialector.Name() != "sqlite" {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var wallet models.Wallet
	if err := db.First(&wallet, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to lock wallet for user %s: %w", userID, err)
	}
	return &wallet, nil
}

// UpdateBalance persists the wallet's new balance.
func (r *GORMWalletRepository) UpdateBalance(ctx context.Context, wallet *models.Wallet) error {
	err := dbFromContext(ctx, r.db).
		Model(&models.Wallet{}).
		Where("id = ?", wallet.ID).
		Update("balance", wallet.Balance).Error
	if err != nil {
		return fmt.Errorf("failed to update balance of wallet %s: %w", wallet.ID, err)
	}
	return nil
}

// CreateTransaction appends a transaction row. Rows are append-only; there
// is intentionally no update or delete counterpart.
func (r *GORMWalletRepository) CreateTransaction(ctx context.Context, transaction *models.Transaction) error {
	if transaction.ID == "" {
		transaction.ID = uuid.New().String()
	}
	if err := dbFromContext(ctx, r.db).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactions retrieves a wallet's transaction history, newest first.
func (r *GORMWalletRepository) GetTransactions(ctx context.Context, walletID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := dbFromContext(ctx, r.db).
		Where("wallet_id = ?", walletID).
		Order("created_at DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for wallet %s: %w", walletID, err)
	}
	return transactions, nil
}
