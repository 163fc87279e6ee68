package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/shopcenter/internal/infra/repository/db/model"
	"gorm.io/gorm"
)

var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrProductStockNotEnough 商品庫存不足
	ErrProductStockNotEnough = errors.New("product stock not enough")
	// ErrProductInactive 商品已下架
	ErrProductInactive = errors.New("product is not active")
)

type ProductRepo struct {
	db *DbDao
}

func NewProductRepo(db *DbDao) *ProductRepo {
	return &ProductRepo{db: db}
}

func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if err := s.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductRepo) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product
	err := s.db.WithContext(ctx).First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts 分頁查詢商品，categoryID 為 nil 表示不過濾分類
func (s *ProductRepo) ListProducts(ctx context.Context, offset, limit int, categoryID *uint) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := s.db.WithContext(ctx).Model(&model.Product{}).Where("is_active = ?", true)
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Offset(offset).Limit(limit).Order("product_id").Find(&products).Error
	return products, total, err
}

// SearchProducts 以名稱或描述模糊搜尋
func (s *ProductRepo) SearchProducts(ctx context.Context, term string, offset, limit int) ([]model.Product, error) {
	var products []model.Product
	pattern := fmt.Sprintf("%%%s%%", term)
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("name ILIKE ? OR description ILIKE ?", pattern, pattern).
		Offset(offset).Limit(limit).Order("product_id").
		Find(&products).Error
	return products, err
}

func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.db.WithContext(ctx).Save(product).Error
}

// AdjustStock 調整庫存，delta 可為負，寫入時 guard stock_qty 不為負
func (s *ProductRepo) AdjustStock(ctx context.Context, productID uint, delta int) (int, error) {
	var currentStock int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.WithContext(ctx).First(&product, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		res := tx.WithContext(ctx).Model(&model.Product{}).
			Where("product_id = ? AND stock_qty + ? >= 0", productID, delta).
			Update("stock_qty", gorm.Expr("stock_qty + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProductStockNotEnough
		}

		currentStock = product.StockQty + delta
		return nil
	})

	if err != nil {
		return 0, err
	}
	return currentStock, nil
}

// DeactivateProduct 商品不做硬刪除，下架處理
func (s *ProductRepo) DeactivateProduct(ctx context.Context, productID uint) error {
	res := s.db.WithContext(ctx).Model(&model.Product{}).
		Where("product_id = ?", productID).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// CountProducts 回傳商品統計：總數、上架數、低庫存數(低於 lowStock)
func (s *ProductRepo) CountProducts(ctx context.Context, lowStock int) (total, active, low int64, err error) {
	if err = s.db.WithContext(ctx).Model(&model.Product{}).Count(&total).Error; err != nil {
		return
	}
	if err = s.db.WithContext(ctx).Model(&model.Product{}).Where("is_active = ?", true).Count(&active).Error; err != nil {
		return
	}
	err = s.db.WithContext(ctx).Model(&model.Product{}).Where("stock_qty < ?", lowStock).Count(&low).Error
	return
}
