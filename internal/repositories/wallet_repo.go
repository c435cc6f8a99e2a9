package repositories

import (
	"context"

	"belanja/internal/models"
)

// WalletRepository defines the interface for wallet and transaction data
// access. Balance updates and transaction appends are expected to run
// inside a unit of work so they commit together.
type WalletRepository interface {
	Create(ctx context.Context, wallet *models.Wallet) error
	GetByUserID(ctx context.Context, userID string) (*models.Wallet, error)
	// GetByUserIDForUpdate takes a row-level lock on the wallet for the
	// duration of the surrounding unit of work, so concurrent settlement
	// against the same wallet serializes.
	GetByUserIDForUpdate(ctx context.Context, userID string) (*models.Wallet, error)
	UpdateBalance(ctx context.Context, wallet *models.Wallet) error
	CreateTransaction(ctx context.Context, transaction *models.Transaction) error
	GetTransactions(ctx context.Context, walletID string) ([]models.Transaction, error)
}
