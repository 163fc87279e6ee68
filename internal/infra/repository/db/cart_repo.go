package db

import (
	"context"
	"errors"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

var (
	// ErrCartNotExist 購物車不存在
	ErrCartNotExist = errors.New("cart is not exist")
	// ErrCartItemNotFound 購物車內無此商品
	ErrCartItemNotFound = errors.New("cart item not found")
)

type CartRepo struct {
	db *DbDao
}

func NewCartRepo(db *DbDao) *CartRepo {
	return &CartRepo{db: db}
}

func (s *CartRepo) GetCartByUserID(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := s.db.WithContext(ctx).
		Preload("CartItems", func(db *gorm.DB) *gorm.DB { return db.Order("cart_items.cart_item_id") }).
		Preload("CartItems.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCartNotExist
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// GetOrCreateCart 取得使用者購物車，不存在則建立
func (s *CartRepo) GetOrCreateCart(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := s.GetCartByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotExist) {
		return nil, err
	}

	cart = &model.Cart{UserID: userID}
	if err := s.db.WithContext(ctx).Create(cart).Error; err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem 加入商品，已存在則累加數量
func (s *CartRepo) AddItem(ctx context.Context, cartID, productID uint, quantity int) (*model.CartItem, error) {
	var item model.CartItem
	err := s.db.Transaction(func(tx *gorm.DB) error {
		err := tx.WithContext(ctx).
			Where("cart_id = ? AND product_id = ?", cartID, productID).
			First(&item).Error
		if err == nil {
			item.Quantity += quantity
			return tx.WithContext(ctx).Model(&model.CartItem{}).
				Where("cart_item_id = ?", item.CartItemID).
				Update("quantity", item.Quantity).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		item = model.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
		return tx.WithContext(ctx).Create(&item).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItemQuantity 數量更新為 0 時直接移除
func (s *CartRepo) UpdateItemQuantity(ctx context.Context, cartID, productID uint, quantity int) error {
	if quantity == 0 {
		return s.RemoveItem(ctx, cartID, productID)
	}

	res := s.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Update("quantity", quantity)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (s *CartRepo) RemoveItem(ctx context.Context, cartID, productID uint) error {
	res := s.db.WithContext(ctx).Unscoped().
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Delete(&model.CartItem{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

// ClearCart 清空購物車內所有商品
func (s *CartRepo) ClearCart(ctx context.Context, cartID uint) error {
	return s.db.WithContext(ctx).Unscoped().
		Where("cart_id = ?", cartID).
		Delete(&model.CartItem{}).Error
}

func (s *CartRepo) GetCartItems(ctx context.Context, cartID uint) ([]model.CartItem, error) {
	var items []model.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product").
		Where("cart_id = ?", cartID).
		Order("cart_item_id").
		Find(&items).Error
	return items, err
}
