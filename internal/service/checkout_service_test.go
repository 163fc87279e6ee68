package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/shopcenter/internal/event"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// stubStore 只覆寫測試用到的方法，其餘呼叫會 panic
type stubStore struct {
	db.Store
	placeOrderFn func(ctx context.Context, params db.PlaceOrderParams) (*model.Order, error)
	getUserFn    func(ctx context.Context, id uint) (*model.User, error)
}

func (s *stubStore) PlaceOrderTx(ctx context.Context, params db.PlaceOrderParams) (*model.Order, error) {
	return s.placeOrderFn(ctx, params)
}

func (s *stubStore) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	return s.getUserFn(ctx, id)
}

type stubProducer struct {
	published []*event.OrderPlacedEvent
	err       error
}

func (p *stubProducer) ProduceOrderPlacedEvent(ctx context.Context, evt *event.OrderPlacedEvent) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, evt)
	return nil
}

func (p *stubProducer) Close() error { return nil }

func sampleOrder() *model.Order {
	return &model.Order{
		OrderID:     99,
		UserID:      7,
		Status:      model.OrderStatusCreated,
		TotalAmount: decimal.NewFromInt(180),
		OrderItems:  []model.OrderItem{{ProductID: 1, Quantity: 2}},
	}
}

func TestPlaceOrder_RetriesOnConflict(t *testing.T) {
	attempts := 0
	store := &stubStore{
		placeOrderFn: func(ctx context.Context, params db.PlaceOrderParams) (*model.Order, error) {
			attempts++
			if attempts < 3 {
				return nil, db.ErrCheckoutConflict
			}
			return sampleOrder(), nil
		},
	}
	prod := &stubProducer{}
	svc := NewCheckoutService(store, prod, zerolog.Nop())

	order, err := svc.PlaceOrder(context.Background(), PlaceOrderParams{
		UserID:          7,
		ShippingAddress: "somewhere",
		PaymentMethod:   "credit_card",
	})
	require.NoError(t, err)
	require.Equal(t, 3, attempts)
	require.Equal(t, uint(99), order.OrderID)

	// 成功後發布事件
	require.Len(t, prod.published, 1)
	require.Equal(t, uint(99), prod.published[0].OrderID)
}

func TestPlaceOrder_GivesUpAfterMaxRetries(t *testing.T) {
	attempts := 0
	store := &stubStore{
		placeOrderFn: func(ctx context.Context, params db.PlaceOrderParams) (*model.Order, error) {
			attempts++
			return nil, db.ErrCheckoutConflict
		},
	}
	prod := &stubProducer{}
	svc := NewCheckoutService(store, prod, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderParams{
		UserID:          7,
		ShippingAddress: "somewhere",
		PaymentMethod:   "credit_card",
	})
	require.ErrorIs(t, err, db.ErrCheckoutConflict)
	require.Equal(t, 3, attempts)
	require.Empty(t, prod.published)
}

func TestPlaceOrder_NonRetryableErrorFailsFast(t *testing.T) {
	attempts := 0
	store := &stubStore{
		placeOrderFn: func(ctx context.Context, params db.PlaceOrderParams) (*model.Order, error) {
			attempts++
			return nil, db.ErrEmptyCart
		},
	}
	svc := NewCheckoutService(store, &stubProducer{}, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderParams{
		UserID:          7,
		ShippingAddress: "somewhere",
		PaymentMethod:   "credit_card",
	})
	require.ErrorIs(t, err, db.ErrEmptyCart)
	require.Equal(t, 1, attempts)
}

func TestPlaceOrder_MissingPaymentMethod(t *testing.T) {
	store := &stubStore{}
	svc := NewCheckoutService(store, &stubProducer{}, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderParams{
		UserID:          7,
		ShippingAddress: "somewhere",
	})
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestPlaceOrder_FallsBackToUserAddress(t *testing.T) {
	var captured db.PlaceOrderParams
	store := &stubStore{
		placeOrderFn: func(ctx context.Context, params db.PlaceOrderParams) (*model.Order, error) {
			captured = params
			return sampleOrder(), nil
		},
		getUserFn: func(ctx context.Context, id uint) (*model.User, error) {
			return &model.User{UserID: id, Address: "預設收件地址"}, nil
		},
	}
	svc := NewCheckoutService(store, &stubProducer{}, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderParams{
		UserID:        7,
		PaymentMethod: "credit_card",
	})
	require.NoError(t, err)
	require.Equal(t, "預設收件地址", captured.ShippingAddress)
}

func TestPlaceOrder_NoAddressAnywhere(t *testing.T) {
	store := &stubStore{
		getUserFn: func(ctx context.Context, id uint) (*model.User, error) {
			return &model.User{UserID: id}, nil
		},
	}
	svc := NewCheckoutService(store, &stubProducer{}, zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderParams{
		UserID:        7,
		PaymentMethod: "credit_card",
	})
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestPlaceOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	store := &stubStore{
		placeOrderFn: func(ctx context.Context, params db.PlaceOrderParams) (*model.Order, error) {
			return sampleOrder(), nil
		},
	}
	prod := &stubProducer{err: context.DeadlineExceeded}
	svc := NewCheckoutService(store, prod, zerolog.Nop())

	order, err := svc.PlaceOrder(context.Background(), PlaceOrderParams{
		UserID:          7,
		ShippingAddress: "somewhere",
		PaymentMethod:   "credit_card",
	})
	require.NoError(t, err)
	require.NotNil(t, order)
}
