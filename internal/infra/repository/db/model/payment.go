package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment 與 Order 一對一，由 order_id 的 unique index 保證
type Payment struct {
	BaseModel
	PaymentID     uint            `gorm:"primaryKey" json:"payment_id"`
	OrderID       uint            `gorm:"not null;uniqueIndex" json:"order_id"`
	PaymentMethod string          `gorm:"not null;type:varchar(50)" json:"payment_method"`
	Amount        decimal.Decimal `gorm:"not null;type:decimal(10,2)" json:"amount"`
	Status        string          `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`
	TransactionID string          `gorm:"type:varchar(100)" json:"transaction_id"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
}
