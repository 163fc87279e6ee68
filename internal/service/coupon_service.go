package service

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
)

type CreateCouponParams struct {
	Code           string
	Description    string
	DiscountType   string
	DiscountValue  decimal.Decimal
	MinOrderAmount decimal.Decimal
	MaxDiscount    decimal.Decimal
	UsageLimit     int
	ValidFrom      time.Time
	ValidUntil     time.Time
}

// UpdateCouponParams 未帶的欄位不更動
// 代碼與折扣類型不可變，既有訂單的折扣依據不能被改寫
type UpdateCouponParams struct {
	Description    *string
	DiscountValue  *decimal.Decimal
	MinOrderAmount *decimal.Decimal
	MaxDiscount    *decimal.Decimal
	UsageLimit     *int
	ValidFrom      *time.Time
	ValidUntil     *time.Time
	IsActive       *bool
}

// CouponPreview 結帳前試算
type CouponPreview struct {
	Code     string          `json:"code"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

type ICouponService interface {
	// CreateCoupon 建立優惠券，管理端操作
	//
	// 錯誤:
	//   - ErrInvalidParam: 代碼為空、折扣類型不合法、效期顛倒或上限不為正
	CreateCoupon(ctx context.Context, params CreateCouponParams) (*model.Coupon, error)
	GetCouponByID(ctx context.Context, id uint) (*model.Coupon, error)
	ListCoupons(ctx context.Context, offset, limit int) ([]model.Coupon, error)
	// UpdateCoupon 管理端更新，代碼與折扣類型不可變
	//
	// 錯誤:
	//   - db.ErrCouponNotFound: 優惠券不存在
	//   - ErrInvalidParam: 折扣值不為正、效期顛倒或上限低於已用量
	UpdateCoupon(ctx context.Context, id uint, params UpdateCouponParams) (*model.Coupon, error)
	Deactivate(ctx context.Context, id uint) error
	// Preview 對指定小計試算折扣，不消耗使用次數
	//
	// 錯誤:
	//   - db.ErrCouponNotFound: 代碼不存在
	//   - db.ErrCouponExhausted: 用量已達上限
	//   - db.ErrInvalidCoupon: 停用、效期外或未達低消
	Preview(ctx context.Context, code string, subtotal decimal.Decimal) (*CouponPreview, error)
}

type CouponService struct {
	store db.Store
}

func NewCouponService(store db.Store) ICouponService {
	if reflect.ValueOf(store).IsNil() {
		panic("coupon service initialization failed: store cannot be nil")
	}
	return &CouponService{store: store}
}

func (c *CouponService) CreateCoupon(ctx context.Context, params CreateCouponParams) (*model.Coupon, error) {
	if params.Code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidParam)
	}
	if params.DiscountType != model.CouponTypePercentage && params.DiscountType != model.CouponTypeFixed {
		return nil, fmt.Errorf("%w: unknown discount type %q", ErrInvalidParam, params.DiscountType)
	}
	if !params.DiscountValue.IsPositive() {
		return nil, fmt.Errorf("%w: discount value must be positive", ErrInvalidParam)
	}
	if !params.ValidUntil.After(params.ValidFrom) {
		return nil, fmt.Errorf("%w: valid_until must be after valid_from", ErrInvalidParam)
	}
	if params.UsageLimit <= 0 {
		return nil, fmt.Errorf("%w: usage limit must be positive", ErrInvalidParam)
	}

	return c.store.CreateCoupon(ctx, &model.Coupon{
		Code:           params.Code,
		Description:    params.Description,
		DiscountType:   params.DiscountType,
		DiscountValue:  params.DiscountValue,
		MinOrderAmount: params.MinOrderAmount,
		MaxDiscount:    params.MaxDiscount,
		UsageLimit:     params.UsageLimit,
		ValidFrom:      params.ValidFrom,
		ValidUntil:     params.ValidUntil,
		IsActive:       true,
	})
}

func (c *CouponService) GetCouponByID(ctx context.Context, id uint) (*model.Coupon, error) {
	return c.store.GetCouponByID(ctx, id)
}

func (c *CouponService) ListCoupons(ctx context.Context, offset, limit int) ([]model.Coupon, error) {
	return c.store.ListCoupons(ctx, offset, limit)
}

func (c *CouponService) UpdateCoupon(ctx context.Context, id uint, params UpdateCouponParams) (*model.Coupon, error) {
	coupon, err := c.store.GetCouponByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Description != nil {
		coupon.Description = *params.Description
	}
	if params.DiscountValue != nil {
		coupon.DiscountValue = *params.DiscountValue
	}
	if params.MinOrderAmount != nil {
		coupon.MinOrderAmount = *params.MinOrderAmount
	}
	if params.MaxDiscount != nil {
		coupon.MaxDiscount = *params.MaxDiscount
	}
	if params.UsageLimit != nil {
		coupon.UsageLimit = *params.UsageLimit
	}
	if params.ValidFrom != nil {
		coupon.ValidFrom = *params.ValidFrom
	}
	if params.ValidUntil != nil {
		coupon.ValidUntil = *params.ValidUntil
	}
	if params.IsActive != nil {
		coupon.IsActive = *params.IsActive
	}

	if !coupon.DiscountValue.IsPositive() {
		return nil, fmt.Errorf("%w: discount value must be positive", ErrInvalidParam)
	}
	if !coupon.ValidUntil.After(coupon.ValidFrom) {
		return nil, fmt.Errorf("%w: valid_until must be after valid_from", ErrInvalidParam)
	}
	if coupon.UsageLimit < coupon.UsedCount {
		return nil, fmt.Errorf("%w: usage limit cannot be below used count %d", ErrInvalidParam, coupon.UsedCount)
	}

	if err := c.store.UpdateCoupon(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (c *CouponService) Deactivate(ctx context.Context, id uint) error {
	return c.store.DeactivateCoupon(ctx, id)
}

func (c *CouponService) Preview(ctx context.Context, code string, subtotal decimal.Decimal) (*CouponPreview, error) {
	coupon, err := c.store.GetCouponByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := db.ValidateCoupon(coupon, subtotal, time.Now().UTC()); err != nil {
		return nil, err
	}

	discount := db.ComputeDiscount(coupon, subtotal)
	return &CouponPreview{
		Code:     coupon.Code,
		Discount: discount,
		Total:    subtotal.Sub(discount),
	}, nil
}

var _ ICouponService = (*CouponService)(nil)
