package services

import (
	"context"
	"errors"
	"fmt"

	"belanja/internal/models"
	"belanja/internal/repositories"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// WalletService is the ledger around a user's wallet: every balance change
// happens together with an appended transaction row, inside one unit of
// work, and the balance never goes below zero.
type WalletService struct {
	walletRepo repositories.WalletRepository
	uow        repositories.UnitOfWork
}

// NewWalletService creates a new WalletService.
func NewWalletService(walletRepo repositories.WalletRepository, uow repositories.UnitOfWork) *WalletService {
	return &WalletService{
		walletRepo: walletRepo,
		uow:        uow,
	}
}

// GetOrCreate returns the user's wallet, creating an empty one on first
// access.
func (s *WalletService) GetOrCreate(ctx context.Context, userID string) (*models.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	wallet = &models.Wallet{UserID: userID, Balance: decimal.Zero}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, err
	}
	return wallet, nil
}

// Deposit adds funds to the user's wallet and returns the recorded
// transaction.
func (s *WalletService) Deposit(ctx context.Context, userID string, amount decimal.Decimal) (*models.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}
	if _, err := s.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	var transaction *models.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		transaction, err = s.credit(ctx, userID, amount, models.TransactionDeposit, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// Withdraw removes funds from the user's wallet. It fails with
// ErrInsufficientFunds when the balance does not cover the amount, leaving
// the wallet untouched.
func (s *WalletService) Withdraw(ctx context.Context, userID string, amount decimal.Decimal) (*models.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidAmount
	}

	var transaction *models.Transaction
	err := s.uow.Do(ctx, func(ctx context.Context) error {
		var err error
		transaction, err = s.debit(ctx, userID, amount, models.TransactionWithdrawal, nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// Transactions returns the wallet's history, newest first.
func (s *WalletService) Transactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	wallet, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.walletRepo.GetTransactions(ctx, wallet.ID)
}

// credit increases the wallet balance and appends a transaction of the
// given type. It must run inside a unit of work; the settlement engine
// calls it with type purchase/refund and an order correlation.
func (s *WalletService) credit(ctx context.Context, userID string, amount decimal.Decimal, txType string, orderID *string) (*models.Transaction, error) {
	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}

	wallet.Balance = wallet.Balance.Add(amount)
	if err := s.walletRepo.UpdateBalance(ctx, wallet); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		WalletID: wallet.ID,
		Amount:   amount,
		Type:     txType,
		OrderID:  orderID,
	}
	if err := s.walletRepo.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}

// debit decreases the wallet balance and appends a transaction of the given
// type. It must run inside a unit of work; the row lock taken here is what
// serializes concurrent settlement against one wallet.
func (s *WalletService) debit(ctx context.Context, userID string, amount decimal.Decimal, txType string, orderID *string) (*models.Transaction, error) {
	wallet, err := s.walletRepo.GetByUserIDForUpdate(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}

	if wallet.Balance.LessThan(amount) {
		return nil, fmt.Errorf("balance %s cannot cover %s: %w", wallet.Balance, amount, ErrInsufficientFunds)
	}

	wallet.Balance = wallet.Balance.Sub(amount)
	if err := s.walletRepo.UpdateBalance(ctx, wallet); err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		WalletID: wallet.ID,
		Amount:   amount,
		Type:     txType,
		OrderID:  orderID,
	}
	if err := s.walletRepo.CreateTransaction(ctx, transaction); err != nil {
		return nil, err
	}
	return transaction, nil
}
