package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
)

var (
	// ErrWishlistItemNotFound 收藏項目不存在
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	// ErrWishlistDuplicated 商品已在收藏清單
	ErrWishlistDuplicated = errors.New("product already in wishlist")
)

type WishlistRepo struct {
	db *DbDao
}

func NewWishlistRepo(db *DbDao) *WishlistRepo {
	return &WishlistRepo{db: db}
}

func (s *WishlistRepo) AddWishlistItem(ctx context.Context, userID, productID uint) (*model.WishlistItem, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrWishlistDuplicated
	}

	item := &model.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *WishlistRepo) ListWishlistByUser(ctx context.Context, userID uint) ([]model.WishlistItem, error) {
	var items []model.WishlistItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("wishlist_id").
		Find(&items).Error
	return items, err
}

func (s *WishlistRepo) RemoveWishlistItem(ctx context.Context, userID, productID uint) error {
	res := s.db.WithContext(ctx).Unscoped().
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrWishlistItemNotFound
	}
	return nil
}
