package service

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/google/uuid"
)

type IOrderService interface {
	// GetOrder 取得訂單，一般使用者只能看自己的
	//
	// 錯誤:
	//   - db.ErrOrderNotExist: 訂單不存在
	//   - ErrForbidden: 訂單不屬於該使用者
	GetOrder(ctx context.Context, orderID, requesterID uint, isAdmin bool) (*model.Order, error)
	ListUserOrders(ctx context.Context, userID uint, offset, limit int) ([]model.Order, int64, error)
	// ListAllOrders 管理端全量查詢
	ListAllOrders(ctx context.Context, offset, limit int) ([]model.Order, int64, error)
	// Pay 模擬付款成功，created -> paid，同時補上交易編號
	//
	// 錯誤:
	//   - db.ErrOrderStateInvalid: 訂單不在 created 狀態
	Pay(ctx context.Context, orderID, userID uint) (*model.Order, error)
	// FailPayment 將待付款記錄標記為失敗，訂單保持 created，管理端操作
	//
	// 錯誤:
	//   - db.ErrOrderStateInvalid: 沒有待付款記錄
	FailPayment(ctx context.Context, orderID uint) (*model.Order, error)
	// Ship 出貨，paid -> shipped，管理端操作
	Ship(ctx context.Context, orderID uint, trackingNumber string) (*model.Order, error)
	// Deliver 送達，shipped -> delivered
	Deliver(ctx context.Context, orderID uint) (*model.Order, error)
}

type OrderService struct {
	store db.Store
}

func NewOrderService(store db.Store) IOrderService {
	if reflect.ValueOf(store).IsNil() {
		panic("order service initialization failed: store cannot be nil")
	}
	return &OrderService{store: store}
}

func (o *OrderService) GetOrder(ctx context.Context, orderID, requesterID uint, isAdmin bool) (*model.Order, error) {
	order, err := o.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != requesterID {
		return nil, ErrForbidden
	}
	return order, nil
}

func (o *OrderService) ListUserOrders(ctx context.Context, userID uint, offset, limit int) ([]model.Order, int64, error) {
	return o.store.ListOrdersByUserID(ctx, userID, offset, limit)
}

func (o *OrderService) ListAllOrders(ctx context.Context, offset, limit int) ([]model.Order, int64, error) {
	return o.store.ListOrders(ctx, offset, limit)
}

func (o *OrderService) Pay(ctx context.Context, orderID, userID uint) (*model.Order, error) {
	order, err := o.store.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}

	// 實際金流接上前先用 uuid 當交易編號
	transactionID := fmt.Sprintf("txn-%s", uuid.NewString())
	if err := o.store.MarkOrderPaid(ctx, orderID, transactionID); err != nil {
		return nil, err
	}
	return o.store.GetOrderByID(ctx, orderID)
}

func (o *OrderService) FailPayment(ctx context.Context, orderID uint) (*model.Order, error) {
	if err := o.store.MarkPaymentFailed(ctx, orderID); err != nil {
		return nil, err
	}
	return o.store.GetOrderByID(ctx, orderID)
}

func (o *OrderService) Ship(ctx context.Context, orderID uint, trackingNumber string) (*model.Order, error) {
	if trackingNumber == "" {
		return nil, fmt.Errorf("%w: tracking number is required", ErrInvalidParam)
	}

	estimated := time.Now().UTC().Add(72 * time.Hour)
	if err := o.store.MarkOrderShipped(ctx, orderID, trackingNumber, estimated); err != nil {
		return nil, err
	}
	return o.store.GetOrderByID(ctx, orderID)
}

func (o *OrderService) Deliver(ctx context.Context, orderID uint) (*model.Order, error) {
	if err := o.store.MarkOrderDelivered(ctx, orderID); err != nil {
		return nil, err
	}
	return o.store.GetOrderByID(ctx, orderID)
}

var _ IOrderService = (*OrderService)(nil)
