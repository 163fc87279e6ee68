package service

import (
	"context"
	"fmt"
	"reflect"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
)

// CartSummary 購物車內容與即時小計
// 價格為當下商品價格，實際金額以下單時快照為準
type CartSummary struct {
	Cart     *model.Cart     `json:"cart"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type ICartService interface {
	// GetCart 取得購物車，不存在時自動建立空車
	GetCart(ctx context.Context, userID uint) (*CartSummary, error)
	// AddItem 加入商品，已存在時數量累加
	//
	// 錯誤:
	//   - ErrInvalidParam: 數量不為正
	//   - db.ErrProductNotFound: 商品不存在
	//   - db.ErrProductInactive: 商品已下架
	//   - db.ErrProductStockNotEnough: 加入後數量超過現有庫存
	AddItem(ctx context.Context, userID, productID uint, quantity int) (*CartSummary, error)
	// UpdateItemQuantity 改數量，0 代表移除
	UpdateItemQuantity(ctx context.Context, userID, productID uint, quantity int) (*CartSummary, error)
	RemoveItem(ctx context.Context, userID, productID uint) error
	ClearCart(ctx context.Context, userID uint) error
}

type CartService struct {
	store db.Store
}

func NewCartService(store db.Store) ICartService {
	if reflect.ValueOf(store).IsNil() {
		panic("cart service initialization failed: store cannot be nil")
	}
	return &CartService{store: store}
}

func (c *CartService) GetCart(ctx context.Context, userID uint) (*CartSummary, error) {
	cart, err := c.store.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.summarize(ctx, cart.CartID)
}

func (c *CartService) AddItem(ctx context.Context, userID, productID uint, quantity int) (*CartSummary, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidParam)
	}

	product, err := c.store.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, db.ErrProductInactive
	}

	cart, err := c.store.GetOrCreateCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 加車時做一次庫存提示性檢查，最終庫存以下單時為準
	items, err := c.store.GetCartItems(ctx, cart.CartID)
	if err != nil {
		return nil, err
	}
	existing := 0
	for _, item := range items {
		if item.ProductID == productID {
			existing = item.Quantity
			break
		}
	}
	if existing+quantity > product.StockQty {
		return nil, fmt.Errorf("%w: product %d", db.ErrProductStockNotEnough, productID)
	}

	if _, err := c.store.AddItem(ctx, cart.CartID, productID, quantity); err != nil {
		return nil, err
	}
	return c.summarize(ctx, cart.CartID)
}

func (c *CartService) UpdateItemQuantity(ctx context.Context, userID, productID uint, quantity int) (*CartSummary, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidParam)
	}

	cart, err := c.store.GetCartByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := c.store.UpdateItemQuantity(ctx, cart.CartID, productID, quantity); err != nil {
		return nil, err
	}
	return c.summarize(ctx, cart.CartID)
}

func (c *CartService) RemoveItem(ctx context.Context, userID, productID uint) error {
	cart, err := c.store.GetCartByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return c.store.RemoveItem(ctx, cart.CartID, productID)
}

func (c *CartService) ClearCart(ctx context.Context, userID uint) error {
	cart, err := c.store.GetCartByUserID(ctx, userID)
	if err != nil {
		return err
	}
	return c.store.ClearCart(ctx, cart.CartID)
}

func (c *CartService) summarize(ctx context.Context, cartID uint) (*CartSummary, error) {
	items, err := c.store.GetCartItems(ctx, cartID)
	if err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &CartSummary{
		Cart: &model.Cart{
			CartID:    cartID,
			CartItems: items,
		},
		Subtotal: subtotal,
	}, nil
}
