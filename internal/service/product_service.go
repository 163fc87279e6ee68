package service

import (
	"context"
	"fmt"
	"reflect"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"github.com/shopspring/decimal"
)

type CreateProductParams struct {
	Name        string
	Description string
	Price       decimal.Decimal
	StockQty    int
	CategoryID  *uint
	Brand       string
}

type UpdateProductParams struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	CategoryID  *uint
	Brand       *string
	IsActive    *bool
}

// ProductRating 商品評分彙總
type ProductRating struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type IProductService interface {
	// CreateProduct 建立商品
	//
	// 錯誤:
	//   - ErrInvalidParam: 名稱為空、價格或庫存為負
	//   - db.ErrCategoryNotFound: 指定的分類不存在
	CreateProduct(ctx context.Context, params CreateProductParams) (*model.Product, error)
	GetProductByID(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context, offset, limit int, categoryID *uint) ([]model.Product, int64, error)
	SearchProducts(ctx context.Context, term string, offset, limit int) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id uint, params UpdateProductParams) (*model.Product, error)
	// AdjustStock 調整庫存，delta 可為負，結果不得為負
	//
	// 錯誤:
	//   - db.ErrProductStockNotEnough: 扣減後庫存為負
	AdjustStock(ctx context.Context, id uint, delta int) (int, error)
	// Deactivate 下架商品，歷史訂單的價格快照不受影響
	Deactivate(ctx context.Context, id uint) error
	GetProductRating(ctx context.Context, id uint) (*ProductRating, error)
}

type ProductService struct {
	store db.Store
}

func NewProductService(store db.Store) IProductService {
	if reflect.ValueOf(store).IsNil() {
		panic("product service initialization failed: store cannot be nil")
	}
	return &ProductService{store: store}
}

func (p *ProductService) CreateProduct(ctx context.Context, params CreateProductParams) (*model.Product, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidParam)
	}
	if params.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidParam)
	}
	if params.StockQty < 0 {
		return nil, fmt.Errorf("%w: stock cannot be negative", ErrInvalidParam)
	}

	if params.CategoryID != nil {
		if _, err := p.store.GetCategoryByID(ctx, *params.CategoryID); err != nil {
			return nil, err
		}
	}

	return p.store.CreateProduct(ctx, &model.Product{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		StockQty:    params.StockQty,
		CategoryID:  params.CategoryID,
		Brand:       params.Brand,
		IsActive:    true,
	})
}

func (p *ProductService) GetProductByID(ctx context.Context, id uint) (*model.Product, error) {
	return p.store.GetProductByID(ctx, id)
}

func (p *ProductService) ListProducts(ctx context.Context, offset, limit int, categoryID *uint) ([]model.Product, int64, error) {
	return p.store.ListProducts(ctx, offset, limit, categoryID)
}

func (p *ProductService) SearchProducts(ctx context.Context, term string, offset, limit int) ([]model.Product, error) {
	if term == "" {
		return nil, fmt.Errorf("%w: search term is required", ErrInvalidParam)
	}
	return p.store.SearchProducts(ctx, term, offset, limit)
}

func (p *ProductService) UpdateProduct(ctx context.Context, id uint, params UpdateProductParams) (*model.Product, error) {
	product, err := p.store.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		product.Name = *params.Name
	}
	if params.Description != nil {
		product.Description = *params.Description
	}
	if params.Price != nil {
		if params.Price.IsNegative() {
			return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidParam)
		}
		product.Price = *params.Price
	}
	if params.CategoryID != nil {
		if _, err := p.store.GetCategoryByID(ctx, *params.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = params.CategoryID
	}
	if params.Brand != nil {
		product.Brand = *params.Brand
	}
	if params.IsActive != nil {
		product.IsActive = *params.IsActive
	}

	if err := p.store.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (p *ProductService) AdjustStock(ctx context.Context, id uint, delta int) (int, error) {
	return p.store.AdjustStock(ctx, id, delta)
}

func (p *ProductService) Deactivate(ctx context.Context, id uint) error {
	return p.store.DeactivateProduct(ctx, id)
}

func (p *ProductService) GetProductRating(ctx context.Context, id uint) (*ProductRating, error) {
	if _, err := p.store.GetProductByID(ctx, id); err != nil {
		return nil, err
	}

	avg, count, err := p.store.GetProductRating(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductRating{Average: avg, Count: count}, nil
}

var _ IProductService = (*ProductService)(nil)
