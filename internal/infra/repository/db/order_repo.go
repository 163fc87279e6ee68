package db

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

var (
	// ErrOrderNotExist 訂單不存在
	ErrOrderNotExist = errors.New("order is not exist")
	// ErrOrderStateInvalid 訂單狀態不允許此操作
	ErrOrderStateInvalid = errors.New("order state does not allow this operation")
)

type OrderRepo struct {
	db *DbDao
}

func NewOrderRepo(db *DbDao) *OrderRepo {
	return &OrderRepo{db: db}
}

func (s *OrderRepo) GetOrderByID(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Preload("Payment").
		Preload("Shipping").
		First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotExist
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderRepo) ListOrdersByUserID(ctx context.Context, userID uint, offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Order{}).Where("user_id = ?", userID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, total, err
}

func (s *OrderRepo) ListOrders(ctx context.Context, offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	if err := s.db.WithContext(ctx).Model(&model.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.WithContext(ctx).
		Preload("OrderItems").
		Offset(offset).Limit(limit).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, total, err
}

// MarkOrderPaid created -> paid，同時將付款記錄標記為完成
func (s *OrderRepo) MarkOrderPaid(ctx context.Context, orderID uint, transactionID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := transitOrderStatus(tx.WithContext(ctx), orderID, model.OrderStatusCreated, model.OrderStatusPaid); err != nil {
			return err
		}

		now := time.Now().UTC()
		return tx.WithContext(ctx).Model(&model.Payment{}).
			Where("order_id = ?", orderID).
			Updates(map[string]interface{}{
				"status":         model.PaymentStatusCompleted,
				"transaction_id": transactionID,
				"payment_date":   now,
			}).Error
	})
}

// MarkOrderShipped paid -> shipped，寫入物流追蹤資訊
func (s *OrderRepo) MarkOrderShipped(ctx context.Context, orderID uint, trackingNumber string, estimatedDelivery time.Time) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := transitOrderStatus(tx.WithContext(ctx), orderID, model.OrderStatusPaid, model.OrderStatusShipped); err != nil {
			return err
		}

		return tx.WithContext(ctx).Model(&model.Shipping{}).
			Where("order_id = ?", orderID).
			Updates(map[string]interface{}{
				"status":             model.ShippingStatusShipped,
				"tracking_number":    trackingNumber,
				"estimated_delivery": estimatedDelivery,
			}).Error
	})
}

// MarkOrderDelivered shipped -> delivered
func (s *OrderRepo) MarkOrderDelivered(ctx context.Context, orderID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := transitOrderStatus(tx.WithContext(ctx), orderID, model.OrderStatusShipped, model.OrderStatusDelivered); err != nil {
			return err
		}

		now := time.Now().UTC()
		return tx.WithContext(ctx).Model(&model.Shipping{}).
			Where("order_id = ?", orderID).
			Updates(map[string]interface{}{
				"status":       model.ShippingStatusDelivered,
				"delivered_at": now,
			}).Error
	})
}

// MarkPaymentFailed 付款失敗，訂單保持 created
func (s *OrderRepo) MarkPaymentFailed(ctx context.Context, orderID uint) error {
	res := s.db.WithContext(ctx).Model(&model.Payment{}).
		Where("order_id = ? AND status = ?", orderID, model.PaymentStatusPending).
		Update("status", model.PaymentStatusFailed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrOrderStateInvalid
	}
	return nil
}

// CountOrders 回傳訂單統計
func (s *OrderRepo) CountOrders(ctx context.Context) (total, created, delivered int64, err error) {
	if err = s.db.WithContext(ctx).Model(&model.Order{}).Count(&total).Error; err != nil {
		return
	}
	if err = s.db.WithContext(ctx).Model(&model.Order{}).Where("status = ?", model.OrderStatusCreated).Count(&created).Error; err != nil {
		return
	}
	err = s.db.WithContext(ctx).Model(&model.Order{}).Where("status = ?", model.OrderStatusDelivered).Count(&delivered).Error
	return
}

// transitOrderStatus 以 guard 條件做狀態轉移，避免並發下重複轉移
func transitOrderStatus(tx *gorm.DB, orderID uint, from, to string) error {
	res := tx.Model(&model.Order{}).
		Where("order_id = ? AND status = ?", orderID, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&model.Order{}).Where("order_id = ?", orderID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrOrderNotExist
		}
		return ErrOrderStateInvalid
	}
	return nil
}
