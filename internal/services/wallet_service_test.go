package services_test

import (
	"context"
	"testing"

	"belanja/internal/models"
	"belanja/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletService_GetOrCreate(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	wallet, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", wallet.UserID)
	assert.True(t, wallet.Balance.IsZero())

	// Second call returns the same wallet instead of creating another one
	again, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, wallet.ID, again.ID)
}

func TestWalletService_Deposit(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	transaction, err := f.wallets.Deposit(ctx, "user-1", decimal.NewFromFloat(50.00))
	require.NoError(t, err)
	assert.Equal(t, models.TransactionDeposit, transaction.Type)
	assert.True(t, transaction.Amount.Equal(decimal.NewFromFloat(50.00)))
	assert.Nil(t, transaction.OrderID)

	wallet, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromFloat(50.00)))
}

func TestWalletService_Deposit_InvalidAmount(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromFloat(-10.00)} {
		_, err := f.wallets.Deposit(ctx, "user-1", amount)
		assert.ErrorIs(t, err, services.ErrInvalidAmount)
	}

	// Nothing was recorded
	transactions, err := f.wallets.Transactions(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestWalletService_Withdraw(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedBalance(t, "user-1", 100.00)

	transaction, err := f.wallets.Withdraw(ctx, "user-1", decimal.NewFromFloat(40.00))
	require.NoError(t, err)
	assert.Equal(t, models.TransactionWithdrawal, transaction.Type)
	assert.True(t, transaction.Amount.Equal(decimal.NewFromFloat(40.00)))

	wallet, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromFloat(60.00)))
}

func TestWalletService_Withdraw_InsufficientFunds(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedBalance(t, "user-1", 30.00)

	_, err := f.wallets.Withdraw(ctx, "user-1", decimal.NewFromFloat(30.01))
	assert.ErrorIs(t, err, services.ErrInsufficientFunds)

	// The failed withdrawal left the balance unchanged and recorded nothing
	wallet, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromFloat(30.00)))

	transactions, err := f.wallets.Transactions(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, transactions, 1) // just the seed deposit
}

func TestWalletService_DepositThenWithdrawRestoresBalance(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedBalance(t, "user-1", 100.00)

	_, err := f.wallets.Deposit(ctx, "user-1", decimal.NewFromFloat(25.50))
	require.NoError(t, err)
	_, err = f.wallets.Withdraw(ctx, "user-1", decimal.NewFromFloat(25.50))
	require.NoError(t, err)

	wallet, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromFloat(100.00)))

	// Exactly two new rows: one deposit, one withdrawal
	transactions, err := f.wallets.Transactions(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, transactions, 3) // seed deposit + the pair above

	types := map[string]int{}
	for _, tx := range transactions {
		types[tx.Type]++
	}
	assert.Equal(t, 2, types[models.TransactionDeposit])
	assert.Equal(t, 1, types[models.TransactionWithdrawal])
}

func TestWalletService_BalanceNeverNegative(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedBalance(t, "user-1", 10.00)

	amounts := []float64{4.00, 4.00, 4.00, 4.00}
	for _, amount := range amounts {
		_, _ = f.wallets.Withdraw(ctx, "user-1", decimal.NewFromFloat(amount))

		wallet, err := f.wallets.GetOrCreate(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, wallet.Balance.IsNegative(), "balance went negative: %s", wallet.Balance)
	}

	wallet, err := f.wallets.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, wallet.Balance.Equal(decimal.NewFromFloat(2.00)))
}
