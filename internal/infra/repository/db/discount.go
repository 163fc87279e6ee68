package db

import (
	"fmt"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
)

var percentBase = decimal.NewFromInt(100)

// ValidateCoupon 檢查優惠券當下是否可用於該小計
// 停用、效期外、未達低消回傳包裝 ErrInvalidCoupon 的錯誤
// 用量達上限回傳包裝 ErrCouponExhausted 的錯誤
func ValidateCoupon(c *model.Coupon, subtotal decimal.Decimal, now time.Time) error {
	if !c.IsActive {
		return fmt.Errorf("%w: code %s inactive", ErrInvalidCoupon, c.Code)
	}
	if now.Before(c.ValidFrom) || now.After(c.ValidUntil) {
		return fmt.Errorf("%w: code %s out of valid window", ErrInvalidCoupon, c.Code)
	}
	if c.UsedCount >= c.UsageLimit {
		return fmt.Errorf("%w: code %s", ErrCouponExhausted, c.Code)
	}
	if subtotal.LessThan(c.MinOrderAmount) {
		return fmt.Errorf("%w: code %s requires min order %s", ErrInvalidCoupon, c.Code, c.MinOrderAmount)
	}
	return nil
}

// ComputeDiscount 計算折扣金額，結果不超過小計
// percentage: subtotal * value / 100
// fixed: 固定金額
// 兩種類型都以 MaxDiscount 封頂(>0 才生效)
func ComputeDiscount(c *model.Coupon, subtotal decimal.Decimal) decimal.Decimal {
	var discount decimal.Decimal
	switch c.DiscountType {
	case model.CouponTypePercentage:
		discount = subtotal.Mul(c.DiscountValue).Div(percentBase).Round(2)
	case model.CouponTypeFixed:
		discount = c.DiscountValue
	default:
		return decimal.Zero
	}
	if c.MaxDiscount.IsPositive() && discount.GreaterThan(c.MaxDiscount) {
		discount = c.MaxDiscount
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}
	return discount
}
