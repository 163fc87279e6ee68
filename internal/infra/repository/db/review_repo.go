package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

var (
	// ErrReviewNotFound 評論不存在
	ErrReviewNotFound = errors.New("review not found")
	// ErrReviewDuplicated 同一使用者對同一商品只能有一則評論
	ErrReviewDuplicated = errors.New("review already exists for this product")
)

type ReviewRepo struct {
	db *DbDao
}

func NewReviewRepo(db *DbDao) *ReviewRepo {
	return &ReviewRepo{db: db}
}

func (s *ReviewRepo) CreateReview(ctx context.Context, review *model.Review) (*model.Review, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Review{}).
		Where("user_id = ? AND product_id = ?", review.UserID, review.ProductID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrReviewDuplicated
	}

	if err := s.db.WithContext(ctx).Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewRepo) GetReviewByID(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	err := s.db.WithContext(ctx).First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *ReviewRepo) ListReviewsByProduct(ctx context.Context, productID uint, offset, limit int) ([]model.Review, error) {
	var reviews []model.Review
	err := s.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Offset(offset).Limit(limit).
		Order("review_id DESC").
		Find(&reviews).Error
	return reviews, err
}

func (s *ReviewRepo) UpdateReview(ctx context.Context, review *model.Review) error {
	return s.db.WithContext(ctx).Save(review).Error
}

func (s *ReviewRepo) DeleteReview(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}

// GetProductRating 回傳商品平均評分與評論數
func (s *ReviewRepo) GetProductRating(ctx context.Context, productID uint) (avg float64, count int64, err error) {
	row := s.db.WithContext(ctx).Model(&model.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0), COUNT(*)").
		Row()
	err = row.Scan(&avg, &count)
	return
}

// HasUserPurchasedProduct 確認使用者是否買過該商品，作為評論資格
func (s *ReviewRepo) HasUserPurchasedProduct(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.order_id = order_items.order_id").
		Where("orders.user_id = ? AND order_items.product_id = ? AND orders.status <> ?",
			userID, productID, model.OrderStatusCancelled).
		Count(&count).Error
	return count > 0, err
}
