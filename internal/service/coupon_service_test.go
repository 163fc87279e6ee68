package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type couponStubStore struct {
	db.Store
	coupon  *model.Coupon
	updated *model.Coupon
}

func (s *couponStubStore) GetCouponByID(ctx context.Context, id uint) (*model.Coupon, error) {
	if s.coupon == nil {
		return nil, db.ErrCouponNotFound
	}
	c := *s.coupon
	return &c, nil
}

func (s *couponStubStore) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error {
	s.updated = coupon
	return nil
}

func storedCoupon() *model.Coupon {
	now := time.Now().UTC()
	return &model.Coupon{
		CouponID:      1,
		Code:          "SAVE10",
		DiscountType:  model.CouponTypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		MaxDiscount:   decimal.NewFromInt(50),
		UsageLimit:    5,
		UsedCount:     2,
		ValidFrom:     now.Add(-time.Hour),
		ValidUntil:    now.Add(time.Hour),
		IsActive:      true,
	}
}

func TestUpdateCoupon(t *testing.T) {
	store := &couponStubStore{coupon: storedCoupon()}
	svc := NewCouponService(store)

	newValue := decimal.NewFromInt(15)
	newLimit := 8
	coupon, err := svc.UpdateCoupon(context.Background(), 1, UpdateCouponParams{
		DiscountValue: &newValue,
		UsageLimit:    &newLimit,
	})
	require.NoError(t, err)
	require.True(t, coupon.DiscountValue.Equal(newValue))
	require.Equal(t, 8, coupon.UsageLimit)

	// 未帶的欄位不更動
	require.Equal(t, "SAVE10", coupon.Code)
	require.Equal(t, 2, coupon.UsedCount)
	require.NotNil(t, store.updated)
}

func TestUpdateCoupon_LimitBelowUsedCount(t *testing.T) {
	store := &couponStubStore{coupon: storedCoupon()}
	svc := NewCouponService(store)

	newLimit := 1
	_, err := svc.UpdateCoupon(context.Background(), 1, UpdateCouponParams{
		UsageLimit: &newLimit,
	})
	require.ErrorIs(t, err, ErrInvalidParam)
	require.Nil(t, store.updated)
}

func TestUpdateCoupon_InvertedWindow(t *testing.T) {
	store := &couponStubStore{coupon: storedCoupon()}
	svc := NewCouponService(store)

	from := time.Now().UTC().Add(2 * time.Hour)
	_, err := svc.UpdateCoupon(context.Background(), 1, UpdateCouponParams{
		ValidFrom: &from,
	})
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestUpdateCoupon_NotFound(t *testing.T) {
	store := &couponStubStore{}
	svc := NewCouponService(store)

	desc := "new description"
	_, err := svc.UpdateCoupon(context.Background(), 404, UpdateCouponParams{
		Description: &desc,
	})
	require.ErrorIs(t, err, db.ErrCouponNotFound)
}
