package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/RoyceAzure/lab/shopcenter/internal/constants"
	"github.com/RoyceAzure/lab/shopcenter/internal/event"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/producer"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/rs/zerolog"
)

type PlaceOrderParams struct {
	UserID          uint
	ShippingAddress string
	CouponCode      string
	PaymentMethod   string
	Courier         string
}

type ICheckoutService interface {
	// PlaceOrder 下單，購物車轉訂單
	// 整個轉換在單一資料庫事務內完成，失敗時不留任何部分結果
	// 遇到並發衝突會重試，超過上限回傳 db.ErrCheckoutConflict
	// 成功後發布 order_placed 事件，發布失敗只記錄不影響訂單
	//
	// 錯誤:
	//   - ErrInvalidParam: 付款方式為空，或無收件地址可用
	//   - db.ErrEmptyCart: 購物車為空
	//   - db.ErrProductStockNotEnough: 庫存不足
	//   - db.ErrCouponNotFound: 優惠券代碼不存在
	//   - db.ErrCouponExhausted: 優惠券用量已達上限
	//   - db.ErrInvalidCoupon: 優惠券停用、效期外或未達低消
	//   - db.ErrCheckoutConflict: 並發衝突且重試仍失敗
	PlaceOrder(ctx context.Context, params PlaceOrderParams) (*model.Order, error)
	// CancelOrder 取消訂單，僅限 created 狀態，庫存回補
	//
	// 錯誤:
	//   - db.ErrOrderNotExist: 訂單不存在或不屬於該使用者
	//   - db.ErrOrderStateInvalid: 訂單已付款或已出貨
	CancelOrder(ctx context.Context, orderID, userID uint) error
}

type CheckoutService struct {
	store         db.Store
	eventProducer producer.IOrderEventProducer
	logger        zerolog.Logger
}

func NewCheckoutService(store db.Store, eventProducer producer.IOrderEventProducer, logger zerolog.Logger) ICheckoutService {
	if reflect.ValueOf(store).IsNil() {
		panic("checkout service initialization failed: store cannot be nil")
	}
	if reflect.ValueOf(eventProducer).IsNil() {
		panic("checkout service initialization failed: eventProducer cannot be nil")
	}

	return &CheckoutService{
		store:         store,
		eventProducer: eventProducer,
		logger:        logger.With().Str("component", "checkout_service").Logger(),
	}
}

func (c *CheckoutService) PlaceOrder(ctx context.Context, params PlaceOrderParams) (*model.Order, error) {
	if params.PaymentMethod == "" {
		return nil, fmt.Errorf("%w: payment method is required", ErrInvalidParam)
	}

	// 未指定收件地址時用使用者預設地址
	address := params.ShippingAddress
	if address == "" {
		user, err := c.store.GetUserByID(ctx, params.UserID)
		if err != nil {
			return nil, err
		}
		address = user.Address
	}
	if address == "" {
		return nil, fmt.Errorf("%w: shipping address is required", ErrInvalidParam)
	}

	txParams := db.PlaceOrderParams{
		UserID:          params.UserID,
		ShippingAddress: address,
		CouponCode:      params.CouponCode,
		PaymentMethod:   params.PaymentMethod,
		Courier:         params.Courier,
	}

	var order *model.Order
	var err error
	for attempt := 1; attempt <= constants.CheckoutMaxRetries; attempt++ {
		order, err = c.store.PlaceOrderTx(ctx, txParams)
		if err == nil {
			break
		}
		if !errors.Is(err, db.ErrCheckoutConflict) {
			return nil, err
		}
		c.logger.Warn().
			Uint("user_id", params.UserID).
			Int("attempt", attempt).
			Msg("checkout conflict, retrying")
	}
	if err != nil {
		return nil, err
	}

	c.publishOrderPlaced(ctx, order)
	return order, nil
}

func (c *CheckoutService) CancelOrder(ctx context.Context, orderID, userID uint) error {
	return c.store.CancelOrderTx(ctx, orderID, userID)
}

// publishOrderPlaced 事務提交後才發布，失敗只記錄
func (c *CheckoutService) publishOrderPlaced(ctx context.Context, order *model.Order) {
	evt := event.NewOrderPlacedEvent(order.OrderID, order.UserID, order.TotalAmount, len(order.OrderItems))
	if err := c.eventProducer.ProduceOrderPlacedEvent(ctx, evt); err != nil {
		c.logger.Error().Err(err).
			Uint("order_id", order.OrderID).
			Msg("publish order_placed event failed")
	}
}

var _ ICheckoutService = (*CheckoutService)(nil)
