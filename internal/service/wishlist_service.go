package service

import (
	"context"
	"reflect"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
)

type IWishlistService interface {
	// AddItem 加入願望清單，重複加入回傳 db.ErrWishlistDuplicated
	AddItem(ctx context.Context, userID, productID uint) (*model.WishlistItem, error)
	ListItems(ctx context.Context, userID uint) ([]model.WishlistItem, error)
	RemoveItem(ctx context.Context, userID, productID uint) error
}

type WishlistService struct {
	store db.Store
}

func NewWishlistService(store db.Store) IWishlistService {
	if reflect.ValueOf(store).IsNil() {
		panic("wishlist service initialization failed: store cannot be nil")
	}
	return &WishlistService{store: store}
}

func (w *WishlistService) AddItem(ctx context.Context, userID, productID uint) (*model.WishlistItem, error) {
	if _, err := w.store.GetProductByID(ctx, productID); err != nil {
		return nil, err
	}
	return w.store.AddWishlistItem(ctx, userID, productID)
}

func (w *WishlistService) ListItems(ctx context.Context, userID uint) ([]model.WishlistItem, error) {
	return w.store.ListWishlistByUser(ctx, userID)
}

func (w *WishlistService) RemoveItem(ctx context.Context, userID, productID uint) error {
	return w.store.RemoveWishlistItem(ctx, userID, productID)
}

var _ IWishlistService = (*WishlistService)(nil)
