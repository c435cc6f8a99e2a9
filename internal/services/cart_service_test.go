package services_test

import (
	"context"
	"testing"
	"time"

	"belanja/internal/models"
	"belanja/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)

	item, err := f.carts.AddItem(ctx, "user-1", "prod-1", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "prod-1", item.ProductID)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_AddItem_UnknownProduct(t *testing.T) {
	f := setupFixture(t)

	_, err := f.carts.AddItem(context.Background(), "user-1", "missing", 1, nil)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartService_AddItem_InvalidQuantity(t *testing.T) {
	f := setupFixture(t)
	f.seedProduct(t, "prod-1", 75.00)

	for _, quantity := range []int{0, -3} {
		_, err := f.carts.AddItem(context.Background(), "user-1", "prod-1", quantity, nil)
		assert.ErrorIs(t, err, services.ErrInvalidQuantity)
	}
}

func TestCartService_AddItem_AggregatesSameProductAndColor(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)

	first, err := f.carts.AddItem(ctx, "user-1", "prod-1", 1, nil)
	require.NoError(t, err)
	second, err := f.carts.AddItem(ctx, "user-1", "prod-1", 2, nil)
	require.NoError(t, err)

	// Same line, bumped quantity — no duplicate rows for one pair
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.Quantity)

	cart, err := f.carts.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}

func TestCartService_AddItem_DistinctColorsGetDistinctLines(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)

	red := "color-red"
	blue := "color-blue"
	_, err := f.carts.AddItem(ctx, "user-1", "prod-1", 1, &red)
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, "user-1", "prod-1", 1, &blue)
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, "user-1", "prod-1", 1, nil)
	require.NoError(t, err)

	cart, err := f.carts.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 3)
}

func TestCartService_UpdateQuantity(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)

	item, err := f.carts.AddItem(ctx, "user-1", "prod-1", 1, nil)
	require.NoError(t, err)

	updated, err := f.carts.UpdateQuantity(ctx, "user-1", item.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Quantity)

	_, err = f.carts.UpdateQuantity(ctx, "user-1", item.ID, 0)
	assert.ErrorIs(t, err, services.ErrInvalidQuantity)

	_, err = f.carts.UpdateQuantity(ctx, "user-1", "missing-item", 2)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestCartService_RemoveItem(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)

	item, err := f.carts.AddItem(ctx, "user-1", "prod-1", 1, nil)
	require.NoError(t, err)

	require.NoError(t, f.carts.RemoveItem(ctx, "user-1", item.ID))

	cart, err := f.carts.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// Removing again, or from another user's cart, is NotFound
	assert.ErrorIs(t, f.carts.RemoveItem(ctx, "user-1", item.ID), services.ErrNotFound)
}

func TestCartService_RemoveItem_OtherUsersItem(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)

	item, err := f.carts.AddItem(ctx, "user-1", "prod-1", 1, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, f.carts.RemoveItem(ctx, "user-2", item.ID), services.ErrNotFound)
}

func TestCartService_Clear_IsIdempotent(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)

	_, err := f.carts.AddItem(ctx, "user-1", "prod-1", 2, nil)
	require.NoError(t, err)

	require.NoError(t, f.carts.Clear(ctx, "user-1"))
	require.NoError(t, f.carts.Clear(ctx, "user-1")) // second clear is a no-op

	cart, err := f.carts.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartService_Totals(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)
	f.seedProduct(t, "prod-2", 25.00)

	_, err := f.carts.AddItem(ctx, "user-1", "prod-1", 2, nil)
	require.NoError(t, err)
	_, err = f.carts.AddItem(ctx, "user-1", "prod-2", 3, nil)
	require.NoError(t, err)

	total, count, err := f.carts.Totals(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(225.00)), "got %s", total)
	assert.Equal(t, 5, count)
}

func TestCartService_Totals_UsesLiveDiscountedPrice(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	product := f.seedProduct(t, "prod-1", 100.00)
	_, err := f.carts.AddItem(ctx, "user-1", "prod-1", 1, nil)
	require.NoError(t, err)

	total, _, err := f.carts.Totals(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(100.00)))

	// Attach a 10% discount; the derived total follows the live price
	sale := &models.Discount{
		ID:              "disc-1",
		Name:            "Sale",
		DiscountPercent: decimal.NewFromInt(10),
		StartDate:       time.Now().Add(-time.Hour),
		EndDate:         time.Now().Add(time.Hour),
		IsActive:        true,
	}
	require.NoError(t, f.db.Create(sale).Error)
	product.DiscountID = &sale.ID
	require.NoError(t, f.productRepo.Update(ctx, product))

	total, _, err = f.carts.Totals(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromFloat(90.00)), "got %s", total)
}
