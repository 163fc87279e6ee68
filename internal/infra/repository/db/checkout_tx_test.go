package db

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createRandomUser(t *testing.T) *model.User {
	t.Helper()

	user, err := testStore.CreateUser(context.Background(), &model.User{
		Name:         "buyer",
		Email:        fmt.Sprintf("%s@test.local", uuid.NewString()),
		PasswordHash: "not-a-real-hash",
		Address:      "台北市信義區測試路1號",
		IsActive:     true,
	})
	require.NoError(t, err)
	require.NotZero(t, user.UserID)
	return user
}

func createRandomProduct(t *testing.T, price string, stock int) *model.Product {
	t.Helper()

	product, err := testStore.CreateProduct(context.Background(), &model.Product{
		Name:     fmt.Sprintf("product-%s", uuid.NewString()[:8]),
		Price:    decimal.RequireFromString(price),
		StockQty: stock,
		IsActive: true,
	})
	require.NoError(t, err)
	require.NotZero(t, product.ProductID)
	return product
}

func fillCart(t *testing.T, userID uint, items map[uint]int) {
	t.Helper()

	cart, err := testStore.GetOrCreateCart(context.Background(), userID)
	require.NoError(t, err)
	for productID, qty := range items {
		_, err := testStore.AddItem(context.Background(), cart.CartID, productID, qty)
		require.NoError(t, err)
	}
}

func createRandomCoupon(t *testing.T, mutate func(c *model.Coupon)) *model.Coupon {
	t.Helper()

	now := time.Now().UTC()
	c := &model.Coupon{
		Code:           uuid.NewString()[:12],
		DiscountType:   model.CouponTypePercentage,
		DiscountValue:  decimal.NewFromInt(10),
		MinOrderAmount: decimal.Zero,
		MaxDiscount:    decimal.NewFromInt(100),
		UsageLimit:     3,
		ValidFrom:      now.Add(-time.Hour),
		ValidUntil:     now.Add(time.Hour),
		IsActive:       true,
	}
	if mutate != nil {
		mutate(c)
	}

	coupon, err := testStore.CreateCoupon(context.Background(), c)
	require.NoError(t, err)
	return coupon
}

func TestPlaceOrderTx(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestPlaceOrderTx")
	}

	ctx := context.Background()
	user := createRandomUser(t)
	p1 := createRandomProduct(t, "100.00", 10)
	p2 := createRandomProduct(t, "49.50", 5)
	fillCart(t, user.UserID, map[uint]int{p1.ProductID: 2, p2.ProductID: 1})

	order, err := testStore.PlaceOrderTx(ctx, PlaceOrderParams{
		UserID:          user.UserID,
		ShippingAddress: user.Address,
		PaymentMethod:   "credit_card",
	})
	require.NoError(t, err)
	require.NotZero(t, order.OrderID)
	require.Equal(t, model.OrderStatusCreated, order.Status)
	require.Len(t, order.OrderItems, 2)

	// 2*100 + 49.50
	require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("249.50")), "got %s", order.TotalAmount)

	// 付款與物流同事務建立
	require.NotNil(t, order.Payment)
	require.Equal(t, model.PaymentStatusPending, order.Payment.Status)
	require.True(t, order.Payment.Amount.Equal(order.TotalAmount))
	require.NotNil(t, order.Shipping)
	require.Equal(t, "standard", order.Shipping.CourierName)

	// 庫存已扣
	got1, err := testStore.GetProductByID(ctx, p1.ProductID)
	require.NoError(t, err)
	require.Equal(t, 8, got1.StockQty)
	got2, err := testStore.GetProductByID(ctx, p2.ProductID)
	require.NoError(t, err)
	require.Equal(t, 4, got2.StockQty)

	// 購物車已清空
	cart, err := testStore.GetCartByUserID(ctx, user.UserID)
	require.NoError(t, err)
	items, err := testStore.GetCartItems(ctx, cart.CartID)
	require.NoError(t, err)
	require.Empty(t, items)

	// 價格快照
	reloaded, err := testStore.GetOrderByID(ctx, order.OrderID)
	require.NoError(t, err)
	for _, item := range reloaded.OrderItems {
		require.True(t, item.Subtotal.Equal(item.PriceAtTime.Mul(decimal.NewFromInt(int64(item.Quantity)))))
	}
}

func TestPlaceOrderTx_EmptyCart(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestPlaceOrderTx_EmptyCart")
	}

	user := createRandomUser(t)

	_, err := testStore.PlaceOrderTx(context.Background(), PlaceOrderParams{
		UserID:          user.UserID,
		ShippingAddress: user.Address,
		PaymentMethod:   "credit_card",
	})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderTx_InsufficientStock(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestPlaceOrderTx_InsufficientStock")
	}

	ctx := context.Background()
	user := createRandomUser(t)
	p1 := createRandomProduct(t, "100.00", 10)
	p2 := createRandomProduct(t, "50.00", 1)
	fillCart(t, user.UserID, map[uint]int{p1.ProductID: 2, p2.ProductID: 3})

	_, err := testStore.PlaceOrderTx(ctx, PlaceOrderParams{
		UserID:          user.UserID,
		ShippingAddress: user.Address,
		PaymentMethod:   "credit_card",
	})
	require.ErrorIs(t, err, ErrProductStockNotEnough)

	// 整筆回滾，庫存與購物車維持原狀
	got1, err := testStore.GetProductByID(ctx, p1.ProductID)
	require.NoError(t, err)
	require.Equal(t, 10, got1.StockQty)

	cart, err := testStore.GetCartByUserID(ctx, user.UserID)
	require.NoError(t, err)
	items, err := testStore.GetCartItems(ctx, cart.CartID)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestPlaceOrderTx_InactiveProduct(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestPlaceOrderTx_InactiveProduct")
	}

	ctx := context.Background()
	user := createRandomUser(t)
	p := createRandomProduct(t, "100.00", 10)
	fillCart(t, user.UserID, map[uint]int{p.ProductID: 1})

	require.NoError(t, testStore.DeactivateProduct(ctx, p.ProductID))

	_, err := testStore.PlaceOrderTx(ctx, PlaceOrderParams{
		UserID:          user.UserID,
		ShippingAddress: user.Address,
		PaymentMethod:   "credit_card",
	})
	require.ErrorIs(t, err, ErrProductStockNotEnough)
}

func TestPlaceOrderTx_WithCoupon(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestPlaceOrderTx_WithCoupon")
	}

	ctx := context.Background()
	user := createRandomUser(t)
	p := createRandomProduct(t, "200.00", 10)
	fillCart(t, user.UserID, map[uint]int{p.ProductID: 1})
	coupon := createRandomCoupon(t, nil)

	order, err := testStore.PlaceOrderTx(ctx, PlaceOrderParams{
		UserID:          user.UserID,
		ShippingAddress: user.Address,
		CouponCode:      coupon.Code,
		PaymentMethod:   "credit_card",
	})
	require.NoError(t, err)

	// 200 - 10% = 180
	require.True(t, order.TotalAmount.Equal(decimal.RequireFromString("180")), "got %s", order.TotalAmount)

	got, err := testStore.GetCouponByCode(ctx, coupon.Code)
	require.NoError(t, err)
	require.Equal(t, 1, got.UsedCount)
}

func TestPlaceOrderTx_UnknownCoupon(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestPlaceOrderTx_UnknownCoupon")
	}

	ctx := context.Background()
	user := createRandomUser(t)
	p := createRandomProduct(t, "200.00", 10)
	fillCart(t, user.UserID, map[uint]int{p.ProductID: 1})

	_, err := testStore.PlaceOrderTx(ctx, PlaceOrderParams{
		UserID:          user.UserID,
		ShippingAddress: user.Address,
		CouponCode:      "no-such-code",
		PaymentMethod:   "credit_card",
	})
	require.ErrorIs(t, err, ErrCouponNotFound)

	// 優惠券失敗同樣整筆回滾
	got, err := testStore.GetProductByID(ctx, p.ProductID)
	require.NoError(t, err)
	require.Equal(t, 10, got.StockQty)
}

func TestPlaceOrderTx_ExhaustedCoupon(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestPlaceOrderTx_ExhaustedCoupon")
	}

	ctx := context.Background()
	user := createRandomUser(t)
	p := createRandomProduct(t, "200.00", 10)
	fillCart(t, user.UserID, map[uint]int{p.ProductID: 1})
	coupon := createRandomCoupon(t, func(c *model.Coupon) {
		c.UsageLimit = 1
		c.UsedCount = 1
	})

	_, err := testStore.PlaceOrderTx(ctx, PlaceOrderParams{
		UserID:          user.UserID,
		ShippingAddress: user.Address,
		CouponCode:      coupon.Code,
		PaymentMethod:   "credit_card",
	})
	require.ErrorIs(t, err, ErrCouponExhausted)
}

func placeRandomOrder(t *testing.T) (*model.User, *model.Product, *model.Order) {
	t.Helper()

	user := createRandomUser(t)
	p := createRandomProduct(t, "100.00", 10)
	fillCart(t, user.UserID, map[uint]int{p.ProductID: 3})

	order, err := testStore.PlaceOrderTx(context.Background(), PlaceOrderParams{
		UserID:          user.UserID,
		ShippingAddress: user.Address,
		PaymentMethod:   "credit_card",
	})
	require.NoError(t, err)
	return user, p, order
}

func TestCancelOrderTx(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestCancelOrderTx")
	}

	ctx := context.Background()
	user, p, order := placeRandomOrder(t)

	require.NoError(t, testStore.CancelOrderTx(ctx, order.OrderID, user.UserID))

	got, err := testStore.GetOrderByID(ctx, order.OrderID)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusCancelled, got.Status)
	require.Equal(t, model.PaymentStatusFailed, got.Payment.Status)

	// 庫存回補
	product, err := testStore.GetProductByID(ctx, p.ProductID)
	require.NoError(t, err)
	require.Equal(t, 10, product.StockQty)
}

func TestCancelOrderTx_NotOwner(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestCancelOrderTx_NotOwner")
	}

	_, _, order := placeRandomOrder(t)
	other := createRandomUser(t)

	err := testStore.CancelOrderTx(context.Background(), order.OrderID, other.UserID)
	require.ErrorIs(t, err, ErrOrderNotExist)
}

func TestCancelOrderTx_AlreadyPaid(t *testing.T) {
	if testStore == nil {
		t.Skip("Database not configured, skipping TestCancelOrderTx_AlreadyPaid")
	}

	ctx := context.Background()
	user, _, order := placeRandomOrder(t)

	require.NoError(t, testStore.MarkOrderPaid(ctx, order.OrderID, "txn-test"))

	err := testStore.CancelOrderTx(ctx, order.OrderID, user.UserID)
	require.ErrorIs(t, err, ErrOrderStateInvalid)
}
