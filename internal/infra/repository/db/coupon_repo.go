package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

var (
	// ErrCouponNotFound 優惠券不存在
	ErrCouponNotFound = errors.New("coupon not found")
	// ErrCouponExhausted 優惠券用量已達上限
	ErrCouponExhausted = errors.New("coupon usage limit reached")
)

type CouponRepo struct {
	db *DbDao
}

func NewCouponRepo(db *DbDao) *CouponRepo {
	return &CouponRepo{db: db}
}

func (s *CouponRepo) CreateCoupon(ctx context.Context, coupon *model.Coupon) (*model.Coupon, error) {
	if err := s.db.WithContext(ctx).Create(coupon).Error; err != nil {
		return nil, err
	}
	return coupon, nil
}

func (s *CouponRepo) GetCouponByID(ctx context.Context, id uint) (*model.Coupon, error) {
	var coupon model.Coupon
	err := s.db.WithContext(ctx).First(&coupon, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponRepo) GetCouponByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&coupon).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (s *CouponRepo) ListCoupons(ctx context.Context, offset, limit int) ([]model.Coupon, error) {
	var coupons []model.Coupon
	err := s.db.WithContext(ctx).Offset(offset).Limit(limit).Order("coupon_id").Find(&coupons).Error
	return coupons, err
}

func (s *CouponRepo) UpdateCoupon(ctx context.Context, coupon *model.Coupon) error {
	return s.db.WithContext(ctx).Save(coupon).Error
}

// DeactivateCoupon 停用優惠券，保留歷史
func (s *CouponRepo) DeactivateCoupon(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Model(&model.Coupon{}).
		Where("coupon_id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCouponNotFound
	}
	return nil
}
