package service

import (
	"context"
	"fmt"
	"reflect"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
)

type IReviewService interface {
	// CreateReview 對已購買商品留評，一人一商品一則
	//
	// 錯誤:
	//   - ErrInvalidParam: 評分不在 1 到 5
	//   - ErrNotPurchased: 沒有該商品的有效訂單
	//   - db.ErrReviewDuplicated: 已評論過
	CreateReview(ctx context.Context, userID, productID uint, rating int, comment string) (*model.Review, error)
	ListProductReviews(ctx context.Context, productID uint, offset, limit int) ([]model.Review, error)
	// UpdateReview 僅評論作者可修改
	UpdateReview(ctx context.Context, reviewID, userID uint, rating int, comment string) (*model.Review, error)
	// DeleteReview 作者或管理員可刪除
	DeleteReview(ctx context.Context, reviewID, requesterID uint, isAdmin bool) error
}

type ReviewService struct {
	store db.Store
}

func NewReviewService(store db.Store) IReviewService {
	if reflect.ValueOf(store).IsNil() {
		panic("review service initialization failed: store cannot be nil")
	}
	return &ReviewService{store: store}
}

func (r *ReviewService) CreateReview(ctx context.Context, userID, productID uint, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidParam)
	}

	if _, err := r.store.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}

	purchased, err := r.store.HasUserPurchasedProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	if !purchased {
		return nil, ErrNotPurchased
	}

	return r.store.CreateReview(ctx, &model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
	})
}

func (r *ReviewService) ListProductReviews(ctx context.Context, productID uint, offset, limit int) ([]model.Review, error) {
	return r.store.ListReviewsByProduct(ctx, productID, offset, limit)
}

func (r *ReviewService) UpdateReview(ctx context.Context, reviewID, userID uint, rating int, comment string) (*model.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidParam)
	}

	review, err := r.store.GetReviewByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrForbidden
	}

	review.Rating = rating
	review.Comment = comment
	if err := r.store.UpdateReview(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (r *ReviewService) DeleteReview(ctx context.Context, reviewID, requesterID uint, isAdmin bool) error {
	review, err := r.store.GetReviewByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if !isAdmin && review.UserID != requesterID {
		return ErrForbidden
	}
	return r.store.DeleteReview(ctx, reviewID)
}

var _ IReviewService = (*ReviewService)(nil)
