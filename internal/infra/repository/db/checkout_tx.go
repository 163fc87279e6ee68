package db

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrEmptyCart 購物車為空，無法下單
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidCoupon 優惠券停用、效期外或未達低消
	ErrInvalidCoupon = errors.New("coupon is not applicable")
	// ErrCheckoutConflict 並發衝突，可重試
	ErrCheckoutConflict = errors.New("checkout conflict, retry")
)

type PlaceOrderParams struct {
	UserID          uint
	ShippingAddress string
	CouponCode      string
	PaymentMethod   string
	Courier         string
}

type CheckoutRepo struct {
	db *DbDao
}

func NewCheckoutRepo(db *DbDao) *CheckoutRepo {
	return &CheckoutRepo{db: db}
}

// PlaceOrderTx 將購物車轉為訂單，單一事務內完成：
// 建立 Order + OrderItems(價格快照) + Payment(pending) + Shipping(pending)、
// 扣商品庫存、優惠券用量 +1、清空購物車。
// 任一前置條件或寫入時 guard 失敗則整筆回滾，資料庫維持原狀。
//
// 錯誤:
//   - ErrEmptyCart: 購物車為空
//   - ErrProductStockNotEnough: 庫存不足(檢查時或寫入時)，錯誤訊息帶商品ID
//   - ErrCouponNotFound: 優惠券代碼不存在
//   - ErrCouponExhausted: 優惠券用量已達上限(檢查時或寫入時)
//   - ErrInvalidCoupon: 優惠券停用、效期外或未達低消
//   - ErrCheckoutConflict: 並發衝突(deadlock/serialization)，呼叫端可重試
func (s *CheckoutRepo) PlaceOrderTx(ctx context.Context, params PlaceOrderParams) (*model.Order, error) {
	var order *model.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		// 取購物車與內容
		var cart model.Cart
		if err := tx.Where("user_id = ?", params.UserID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmptyCart
			}
			return err
		}

		var cartItems []model.CartItem
		if err := tx.Where("cart_id = ?", cart.CartID).Order("cart_item_id").Find(&cartItems).Error; err != nil {
			return err
		}
		if len(cartItems) == 0 {
			return ErrEmptyCart
		}

		// 鎖定商品列，固定以 product_id 排序取鎖，避免互相等待
		productIDs := make([]uint, 0, len(cartItems))
		for _, item := range cartItems {
			productIDs = append(productIDs, item.ProductID)
		}
		sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

		var products []model.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("product_id IN ?", productIDs).
			Find(&products).Error; err != nil {
			return err
		}

		productByID := make(map[uint]model.Product, len(products))
		for _, p := range products {
			productByID[p.ProductID] = p
		}

		// 前置檢查：商品上架中且庫存足夠，並以當下價格計算小計
		subtotal := decimal.Zero
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		for _, item := range cartItems {
			product, ok := productByID[item.ProductID]
			if !ok || !product.IsActive {
				return fmt.Errorf("%w: product %d", ErrProductStockNotEnough, item.ProductID)
			}
			if product.StockQty < item.Quantity {
				return fmt.Errorf("%w: product %d", ErrProductStockNotEnough, item.ProductID)
			}

			lineSubtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
			subtotal = subtotal.Add(lineSubtotal)
			orderItems = append(orderItems, model.OrderItem{
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				PriceAtTime: product.Price,
				Subtotal:    lineSubtotal,
			})
		}

		// 優惠券檢查與折扣計算
		discount := decimal.Zero
		var coupon *model.Coupon
		if params.CouponCode != "" {
			var c model.Coupon
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("code = ?", params.CouponCode).
				First(&c).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: code %s", ErrCouponNotFound, params.CouponCode)
			}
			if err != nil {
				return err
			}
			if err := ValidateCoupon(&c, subtotal, time.Now().UTC()); err != nil {
				return err
			}
			discount = ComputeDiscount(&c, subtotal)
			coupon = &c
		}

		total := subtotal.Sub(discount)
		if total.IsNegative() {
			total = decimal.Zero
		}

		// 建立訂單與明細
		order = &model.Order{
			UserID:          params.UserID,
			OrderDate:       time.Now().UTC(),
			Status:          model.OrderStatusCreated,
			TotalAmount:     total,
			ShippingAddress: params.ShippingAddress,
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for i := range orderItems {
			orderItems[i].OrderID = order.OrderID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return err
		}
		order.OrderItems = orderItems

		// 扣庫存，寫入時以 guard 條件再驗一次，擋住並發耗盡
		for _, item := range cartItems {
			res := tx.Model(&model.Product{}).
				Where("product_id = ? AND stock_qty >= ?", item.ProductID, item.Quantity).
				Update("stock_qty", gorm.Expr("stock_qty - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %d", ErrProductStockNotEnough, item.ProductID)
			}
		}

		// 優惠券用量 +1，同樣在寫入時 guard 用量上限
		if coupon != nil {
			res := tx.Model(&model.Coupon{}).
				Where("coupon_id = ? AND used_count < usage_limit", coupon.CouponID).
				Update("used_count", gorm.Expr("used_count + 1"))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: code %s", ErrCouponExhausted, coupon.Code)
			}
		}

		// 付款與物流記錄，與訂單同事務建立
		courier := params.Courier
		if courier == "" {
			courier = "standard"
		}
		payment := &model.Payment{
			OrderID:       order.OrderID,
			PaymentMethod: params.PaymentMethod,
			Amount:        total,
			Status:        model.PaymentStatusPending,
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		shipping := &model.Shipping{
			OrderID:     order.OrderID,
			CourierName: courier,
			Status:      model.ShippingStatusPending,
		}
		if err := tx.Create(shipping).Error; err != nil {
			return err
		}
		order.Payment = payment
		order.Shipping = shipping

		// 清空購物車
		return tx.Unscoped().Where("cart_id = ?", cart.CartID).Delete(&model.CartItem{}).Error
	})

	if err != nil {
		if isRetryableTxError(err) {
			return nil, fmt.Errorf("%w: %v", ErrCheckoutConflict, err)
		}
		return nil, err
	}
	return order, nil
}

// CancelOrderTx 取消訂單(僅限 created)並回補庫存，付款記錄標記失敗。
// 優惠券用量不回補，見 coupon redemption 規則。
func (s *CheckoutRepo) CancelOrderTx(ctx context.Context, orderID, userID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		tx = tx.WithContext(ctx)

		var order model.Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ? AND user_id = ?", orderID, userID).
			First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotExist
		}
		if err != nil {
			return err
		}
		if order.Status != model.OrderStatusCreated {
			return ErrOrderStateInvalid
		}

		var items []model.OrderItem
		if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Model(&model.Product{}).
				Where("product_id = ?", item.ProductID).
				Update("stock_qty", gorm.Expr("stock_qty + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.Order{}).
			Where("order_id = ?", orderID).
			Update("status", model.OrderStatusCancelled).Error; err != nil {
			return err
		}

		return tx.Model(&model.Payment{}).
			Where("order_id = ? AND status = ?", orderID, model.PaymentStatusPending).
			Update("status", model.PaymentStatusFailed).Error
	})

	if err != nil && isRetryableTxError(err) {
		return fmt.Errorf("%w: %v", ErrCheckoutConflict, err)
	}
	return err
}

// isRetryableTxError deadlock 或 serialization failure
func isRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}
