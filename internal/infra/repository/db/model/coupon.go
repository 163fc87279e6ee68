package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CouponTypePercentage = "percentage"
	CouponTypeFixed      = "fixed"
)

// Coupon UsedCount 不得超過 UsageLimit，寫入時由 guard 條件保證
type Coupon struct {
	BaseModel
	CouponID       uint            `gorm:"primaryKey" json:"coupon_id"`
	Code           string          `gorm:"unique;not null;type:varchar(20)" json:"code"`
	Description    string          `gorm:"type:text" json:"description"`
	DiscountType   string          `gorm:"not null;type:varchar(10)" json:"discount_type"`
	DiscountValue  decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"discount_value"`
	MinOrderAmount decimal.Decimal `gorm:"not null;type:decimal(10,2);default:0" json:"min_order_amount"`
	MaxDiscount    decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"max_discount"`
	UsageLimit     int             `gorm:"not null" json:"usage_limit"`
	UsedCount      int             `gorm:"not null;default:0;check:used_count <= usage_limit" json:"used_count"`
	ValidFrom      time.Time       `gorm:"not null" json:"valid_from"`
	ValidUntil     time.Time       `gorm:"not null" json:"valid_until"`
	IsActive       bool            `gorm:"not null;default:true" json:"is_active"`
}
