package services

import (
	"context"
	"sync"
	"testing"

	"github.com/Youssef-M-Salama/E-Commerce-Website/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddToCart_MergesAndClamps(t *testing.T) {
	db := newDB(t)
	cat := seedCategory(t, db, "Shoes")
	seedProduct(t, db, 7, cat.ID, 19.99)
	customer := seedCustomer(t, db, "one@example.com")
	svc := NewCartService(db, zap.NewNop())
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, customer.ID, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(7), item.ProductID)
	assert.Equal(t, customer.ID, item.CustomerID)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, models.CartStatusActive, item.Status)

	item, err = svc.AddToCart(ctx, customer.ID, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, 8, item.Quantity)

	item, err = svc.AddToCart(ctx, customer.ID, 7, 95)
	require.NoError(t, err)
	assert.Equal(t, 99, item.Quantity)

	rows := activeRows(t, db, customer.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, 99, rows[0].Quantity)
}

func TestAddToCart_Rejections(t *testing.T) {
	db := newDB(t)
	cat := seedCategory(t, db, "Shoes")
	product := seedProduct(t, db, 0, cat.ID, 5)
	customer := seedCustomer(t, db, "one@example.com")
	svc := NewCartService(db, zap.NewNop())
	ctx := context.Background()

	_, err := svc.AddToCart(ctx, customer.ID, product.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddToCart(ctx, customer.ID, product.ID, 100)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = svc.AddToCart(ctx, 0, product.ID, 1)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.AddToCart(ctx, customer.ID, 9999, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Empty(t, activeRows(t, db, customer.ID))
}

func TestAddToCart_RemovedRowDoesNotBlockNewOne(t *testing.T) {
	db := newDB(t)
	cat := seedCategory(t, db, "Shoes")
	product := seedProduct(t, db, 0, cat.ID, 5)
	customer := seedCustomer(t, db, "one@example.com")
	require.NoError(t, db.Create(&models.Cart{
		ProductID: product.ID, CustomerID: customer.ID, Quantity: 4, Status: models.CartStatusRemoved,
	}).Error)

	svc := NewCartService(db, zap.NewNop())
	item, err := svc.AddToCart(context.Background(), customer.ID, product.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)

	var total int64
	require.NoError(t, db.Model(&models.Cart{}).Count(&total).Error)
	assert.EqualValues(t, 2, total)
}

func TestCartRow_StoresRemovedStatus(t *testing.T) {
	db := newDB(t)
	cat := seedCategory(t, db, "Shoes")
	product := seedProduct(t, db, 0, cat.ID, 5)
	customer := seedCustomer(t, db, "one@example.com")

	row := models.Cart{ProductID: product.ID, CustomerID: customer.ID, Quantity: 1, Status: models.CartStatusRemoved}
	require.NoError(t, db.Create(&row).Error)

	var stored models.Cart
	require.NoError(t, db.First(&stored, row.ID).Error)
	assert.Equal(t, models.CartStatusRemoved, stored.Status)
	assert.Empty(t, activeRows(t, db, customer.ID))
}

func TestActivePairUniqueIndex(t *testing.T) {
	db := newDB(t)
	cat := seedCategory(t, db, "Shoes")
	product := seedProduct(t, db, 0, cat.ID, 5)
	customer := seedCustomer(t, db, "one@example.com")

	first := models.Cart{ProductID: product.ID, CustomerID: customer.ID, Quantity: 1, Status: models.CartStatusActive}
	require.NoError(t, db.Create(&first).Error)

	second := models.Cart{ProductID: product.ID, CustomerID: customer.ID, Quantity: 1, Status: models.CartStatusActive}
	assert.Error(t, db.Create(&second).Error)
}

func TestAddToCart_Concurrent(t *testing.T) {
	db := newDB(t)
	cat := seedCategory(t, db, "Shoes")
	product := seedProduct(t, db, 0, cat.ID, 5)
	customer := seedCustomer(t, db, "one@example.com")
	svc := NewCartService(db, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.AddToCart(context.Background(), customer.ID, product.ID, 1)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, len(activeRows(t, db, customer.ID)), 1)
}

func TestUpdateAndRemove_Ownership(t *testing.T) {
	db := newDB(t)
	cat := seedCategory(t, db, "Shoes")
	product := seedProduct(t, db, 0, cat.ID, 5)
	owner := seedCustomer(t, db, "owner@example.com")
	other := seedCustomer(t, db, "other@example.com")
	svc := NewCartService(db, zap.NewNop())
	ctx := context.Background()

	item, err := svc.AddToCart(ctx, owner.ID, product.ID, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateQuantity(ctx, item.ID, other.ID, 5), ErrForbidden)
	assert.ErrorIs(t, svc.RemoveFromCart(ctx, item.ID, other.ID), ErrForbidden)
	assert.ErrorIs(t, svc.UpdateQuantity(ctx, item.ID, 0, 5), ErrForbidden)
	assert.ErrorIs(t, svc.UpdateQuantity(ctx, 12345, owner.ID, 5), ErrNotFound)

	for _, q := range []int{0, -1, 100} {
		assert.ErrorIs(t, svc.UpdateQuantity(ctx, item.ID, owner.ID, q), ErrInvalidQuantity, "quantity %d", q)
	}

	require.NoError(t, svc.UpdateQuantity(ctx, item.ID, owner.ID, 6))
	assert.Equal(t, 6, activeRows(t, db, owner.ID)[0].Quantity)

	require.NoError(t, svc.RemoveFromCart(ctx, item.ID, owner.ID))
	assert.Empty(t, activeRows(t, db, owner.ID))
	assert.ErrorIs(t, svc.RemoveFromCart(ctx, item.ID, owner.ID), ErrNotFound)
}

func TestCountItemsAndList(t *testing.T) {
	db := newDB(t)
	cat := seedCategory(t, db, "Shoes")
	a := seedProduct(t, db, 0, cat.ID, 2.50)
	b := seedProduct(t, db, 0, cat.ID, 10)
	customer := seedCustomer(t, db, "one@example.com")
	svc := NewCartService(db, zap.NewNop())
	ctx := context.Background()

	count, err := svc.CountItems(ctx, customer.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	_, err = svc.AddToCart(ctx, customer.ID, a.ID, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, customer.ID, b.ID, 3)
	require.NoError(t, err)

	count, err = svc.CountItems(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	count, err = svc.CountItems(ctx, 0)
	require.NoError(t, err)
	assert.Zero(t, count)

	items, err := svc.ListActive(ctx, customer.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Product.Category)
	assert.Equal(t, "Shoes", items[0].Product.Category.Name)
	assert.InDelta(t, 35.0, CartTotal(items), 0.001)
}
