package dto

import "github.com/shopspring/decimal"

type CreateCategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CreateProductDTO struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	StockQty    int             `json:"stock_qty"`
	CategoryID  *uint           `json:"category_id"`
	Brand       string          `json:"brand"`
}

// UpdateProductDTO 指標欄位未帶表示不變更
type UpdateProductDTO struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uint            `json:"category_id"`
	Brand       *string          `json:"brand"`
	IsActive    *bool            `json:"is_active"`
}

type AdjustStockDTO struct {
	Delta int `json:"delta"`
}

type AdjustStockResponse struct {
	ProductID uint `json:"product_id"`
	StockQty  int  `json:"stock_qty"`
}

type CreateReviewDTO struct {
	ProductID uint   `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type UpdateReviewDTO struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type AddWishlistItemDTO struct {
	ProductID uint `json:"product_id"`
}
