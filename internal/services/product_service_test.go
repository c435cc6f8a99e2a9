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

func TestProductService_GetProductByID(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)

	product, err := f.products.GetProductByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", product.ID)

	_, err = f.products.GetProductByID(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestProductService_EffectivePriceWithDiscount(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	sale := &models.Discount{
		ID:              "disc-1",
		Name:            "Sale",
		DiscountPercent: decimal.NewFromInt(25),
		StartDate:       time.Now().Add(-time.Hour),
		EndDate:         time.Now().Add(time.Hour),
		IsActive:        true,
	}
	require.NoError(t, f.db.Create(sale).Error)

	product := f.seedProduct(t, "prod-1", 80.00)
	product.DiscountID = &sale.ID
	require.NoError(t, f.productRepo.Update(ctx, product))

	loaded, err := f.products.GetProductByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.True(t, loaded.HasActiveDiscount())
	assert.True(t, loaded.EffectivePrice().Equal(decimal.NewFromFloat(60.00)), "got %s", loaded.EffectivePrice())

	// An expired discount no longer applies
	sale.EndDate = time.Now().Add(-time.Minute)
	require.NoError(t, f.db.Save(sale).Error)

	loaded, err = f.products.GetProductByID(ctx, "prod-1")
	require.NoError(t, err)
	assert.False(t, loaded.HasActiveDiscount())
	assert.True(t, loaded.EffectivePrice().Equal(decimal.NewFromFloat(80.00)))
}

func TestProductService_Comments(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()
	f.seedProduct(t, "prod-1", 75.00)

	comment, err := f.products.AddComment(ctx, "user-1", "prod-1", "Solid build quality", 4)
	require.NoError(t, err)
	assert.NotEmpty(t, comment.ID)

	comments, err := f.products.GetComments(ctx, "prod-1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Solid build quality", comments[0].Text)
	assert.Equal(t, 4, comments[0].Rating)

	_, err = f.products.AddComment(ctx, "user-1", "missing", "text", 3)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = f.products.GetComments(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
