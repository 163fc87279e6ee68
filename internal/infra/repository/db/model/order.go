package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	OrderStatusCreated   = "created"   // 已成立
	OrderStatusPaid      = "paid"      // 已付款
	OrderStatusShipped   = "shipped"   // 已出貨
	OrderStatusDelivered = "delivered" // 已送達
	OrderStatusCancelled = "cancelled" // 已取消
)

type Order struct {
	BaseModel
	OrderID         uint            `gorm:"primaryKey" json:"order_id"`
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	OrderDate       time.Time       `gorm:"not null" json:"order_date"`
	Status          string          `gorm:"not null;type:varchar(20);default:'created'" json:"status"`
	TotalAmount     decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"total_amount"`
	ShippingAddress string          `gorm:"not null;type:text" json:"shipping_address"`
	OrderItems      []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	Payment         *Payment        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payment,omitempty"`
	Shipping        *Shipping       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"shipping,omitempty"`
}

// OrderItem PriceAtTime 為下單當下的商品價格快照，之後不再重算
type OrderItem struct {
	BaseModel
	OrderItemID uint            `gorm:"primaryKey" json:"order_item_id"`
	OrderID     uint            `gorm:"not null;index" json:"order_id"`
	ProductID   uint            `gorm:"not null;index" json:"product_id"`
	Quantity    int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	PriceAtTime decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"price_at_time"`
	Subtotal    decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"subtotal"`
}
