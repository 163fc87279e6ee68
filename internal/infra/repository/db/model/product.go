package model

import (
	"github.com/shopspring/decimal"
)

// Product 商品不做硬刪除，下架用 IsActive 控制
// StockQty 由 DB check constraint 保證不為負
type Product struct {
	BaseModel
	ProductID   uint            `gorm:"primaryKey" json:"product_id"`
	Name        string          `gorm:"not null;type:varchar(200);index" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price"`
	StockQty    int             `gorm:"not null;default:0;check:stock_qty >= 0" json:"stock_qty"`
	CategoryID  *uint           `gorm:"index" json:"category_id"`
	Brand       string          `gorm:"type:varchar(100)" json:"brand"`
	IsActive    bool            `gorm:"not null;default:true" json:"is_active"`
	OrderItems  []OrderItem     `gorm:"foreignKey:ProductID" json:"-"`
	Reviews     []Review        `gorm:"foreignKey:ProductID" json:"-"`
}
