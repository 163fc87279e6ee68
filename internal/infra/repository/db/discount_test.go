package db

import (
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validCoupon() *model.Coupon {
	now := time.Now().UTC()
	return &model.Coupon{
		Code:           "SAVE10",
		DiscountType:   model.CouponTypePercentage,
		DiscountValue:  decimal.NewFromInt(10),
		MinOrderAmount: decimal.NewFromInt(100),
		MaxDiscount:    decimal.NewFromInt(50),
		UsageLimit:     5,
		UsedCount:      0,
		ValidFrom:      now.Add(-time.Hour),
		ValidUntil:     now.Add(time.Hour),
		IsActive:       true,
	}
}

func TestValidateCoupon(t *testing.T) {
	now := time.Now().UTC()
	subtotal := decimal.NewFromInt(200)

	testCases := []struct {
		name    string
		mutate  func(c *model.Coupon)
		wantErr error
	}{
		{
			name:    "可用",
			mutate:  func(c *model.Coupon) {},
			wantErr: nil,
		},
		{
			name:    "已停用",
			mutate:  func(c *model.Coupon) { c.IsActive = false },
			wantErr: ErrInvalidCoupon,
		},
		{
			name:    "尚未生效",
			mutate:  func(c *model.Coupon) { c.ValidFrom = now.Add(time.Hour) },
			wantErr: ErrInvalidCoupon,
		},
		{
			name:    "已過期",
			mutate:  func(c *model.Coupon) { c.ValidUntil = now.Add(-time.Minute) },
			wantErr: ErrInvalidCoupon,
		},
		{
			name:    "用量已達上限",
			mutate:  func(c *model.Coupon) { c.UsedCount = c.UsageLimit },
			wantErr: ErrCouponExhausted,
		},
		{
			name:    "未達低消",
			mutate:  func(c *model.Coupon) { c.MinOrderAmount = decimal.NewFromInt(500) },
			wantErr: ErrInvalidCoupon,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCoupon()
			tc.mutate(c)

			err := ValidateCoupon(c, subtotal, now)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestComputeDiscount_Percentage(t *testing.T) {
	c := validCoupon()

	// 10% of 200 = 20
	discount := ComputeDiscount(c, decimal.NewFromInt(200))
	require.True(t, discount.Equal(decimal.NewFromInt(20)), "got %s", discount)
}

func TestComputeDiscount_PercentageCappedByMaxDiscount(t *testing.T) {
	c := validCoupon()

	// 10% of 1000 = 100，被 MaxDiscount 50 封頂
	discount := ComputeDiscount(c, decimal.NewFromInt(1000))
	require.True(t, discount.Equal(decimal.NewFromInt(50)), "got %s", discount)
}

func TestComputeDiscount_SmallCapWins(t *testing.T) {
	c := validCoupon()
	c.MaxDiscount = decimal.NewFromInt(5)

	// 10% of 100 = 10，封頂 5，總額 95
	subtotal := decimal.NewFromInt(100)
	discount := ComputeDiscount(c, subtotal)
	require.True(t, discount.Equal(decimal.NewFromInt(5)), "got %s", discount)
	require.True(t, subtotal.Sub(discount).Equal(decimal.NewFromInt(95)))
}

func TestComputeDiscount_PercentageWithoutCap(t *testing.T) {
	c := validCoupon()
	c.MaxDiscount = decimal.Zero

	// MaxDiscount 為 0 時不封頂
	discount := ComputeDiscount(c, decimal.NewFromInt(1000))
	require.True(t, discount.Equal(decimal.NewFromInt(100)), "got %s", discount)
}

func TestComputeDiscount_PercentageRounding(t *testing.T) {
	c := validCoupon()
	c.DiscountValue = decimal.NewFromInt(15)

	// 15% of 99.99 = 14.9985 -> 15.00
	discount := ComputeDiscount(c, decimal.RequireFromString("99.99"))
	require.True(t, discount.Equal(decimal.RequireFromString("15.00")), "got %s", discount)
}

func TestComputeDiscount_Fixed(t *testing.T) {
	c := validCoupon()
	c.DiscountType = model.CouponTypeFixed
	c.DiscountValue = decimal.NewFromInt(30)

	discount := ComputeDiscount(c, decimal.NewFromInt(200))
	require.True(t, discount.Equal(decimal.NewFromInt(30)), "got %s", discount)
}

func TestComputeDiscount_FixedCappedByMaxDiscount(t *testing.T) {
	c := validCoupon()
	c.DiscountType = model.CouponTypeFixed
	c.DiscountValue = decimal.NewFromInt(30)
	c.MaxDiscount = decimal.NewFromInt(20)

	// 固定金額同樣受 MaxDiscount 封頂，min(30, 20) = 20
	discount := ComputeDiscount(c, decimal.NewFromInt(200))
	require.True(t, discount.Equal(decimal.NewFromInt(20)), "got %s", discount)
}

func TestComputeDiscount_FixedClampedToSubtotal(t *testing.T) {
	c := validCoupon()
	c.DiscountType = model.CouponTypeFixed
	c.DiscountValue = decimal.NewFromInt(300)
	c.MaxDiscount = decimal.Zero

	// 折扣不得超過小計
	discount := ComputeDiscount(c, decimal.NewFromInt(200))
	require.True(t, discount.Equal(decimal.NewFromInt(200)), "got %s", discount)
}

func TestComputeDiscount_UnknownType(t *testing.T) {
	c := validCoupon()
	c.DiscountType = "bogus"

	discount := ComputeDiscount(c, decimal.NewFromInt(200))
	require.True(t, discount.IsZero(), "got %s", discount)
}
