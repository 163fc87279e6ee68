package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddCartItemDTO struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type UpdateCartItemDTO struct {
	Quantity int `json:"quantity"`
}

// PlaceOrderDTO 下單參數
// shipping_address 未帶時用使用者預設地址
type PlaceOrderDTO struct {
	ShippingAddress string `json:"shipping_address"`
	CouponCode      string `json:"coupon_code"`
	PaymentMethod   string `json:"payment_method"`
	Courier         string `json:"courier"`
}

type ShipOrderDTO struct {
	TrackingNumber string `json:"tracking_number"`
}

type CouponPreviewDTO struct {
	Code     string          `json:"code"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// UpdateCouponDTO 未帶的欄位不更動，代碼與折扣類型不可變
type UpdateCouponDTO struct {
	Description    *string          `json:"description"`
	DiscountValue  *decimal.Decimal `json:"discount_value"`
	MinOrderAmount *decimal.Decimal `json:"min_order_amount"`
	MaxDiscount    *decimal.Decimal `json:"max_discount"`
	UsageLimit     *int             `json:"usage_limit"`
	ValidFrom      *time.Time       `json:"valid_from"`
	ValidUntil     *time.Time       `json:"valid_until"`
	IsActive       *bool            `json:"is_active"`
}

type CreateCouponDTO struct {
	Code           string          `json:"code"`
	Description    string          `json:"description"`
	DiscountType   string          `json:"discount_type"`
	DiscountValue  decimal.Decimal `json:"discount_value"`
	MinOrderAmount decimal.Decimal `json:"min_order_amount"`
	MaxDiscount    decimal.Decimal `json:"max_discount"`
	UsageLimit     int             `json:"usage_limit"`
	ValidFrom      time.Time       `json:"valid_from"`
	ValidUntil     time.Time       `json:"valid_until"`
}
