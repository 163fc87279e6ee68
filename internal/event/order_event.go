package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventTypeOrderPlaced EventType = "order_placed"
)

// OrderPlacedEvent 下單成功後發布，下游通知、報表用
type OrderPlacedEvent struct {
	EventID     string          `json:"event_id"`
	OrderID     uint            `json:"order_id"`
	UserID      uint            `json:"user_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	ItemCount   int             `json:"item_count"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

func NewOrderPlacedEvent(orderID, userID uint, totalAmount decimal.Decimal, itemCount int) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		EventID:     uuid.NewString(),
		OrderID:     orderID,
		UserID:      userID,
		TotalAmount: totalAmount,
		ItemCount:   itemCount,
		OccurredAt:  time.Now().UTC(),
	}
}

func (e *OrderPlacedEvent) Type() EventType {
	return EventTypeOrderPlaced
}

func (e *OrderPlacedEvent) GetID() string {
	return e.EventID
}
