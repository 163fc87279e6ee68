package model

import "time"

const (
	ShippingStatusPending   = "pending"
	ShippingStatusShipped   = "shipped"
	ShippingStatusDelivered = "delivered"
)

// Shipping 與 Order 一對一，由 order_id 的 unique index 保證
type Shipping struct {
	BaseModel
	ShipmentID        uint       `gorm:"primaryKey" json:"shipment_id"`
	OrderID           uint       `gorm:"not null;uniqueIndex" json:"order_id"`
	CourierName       string     `gorm:"not null;type:varchar(100)" json:"courier_name"`
	TrackingNumber    *string    `gorm:"type:varchar(100)" json:"tracking_number,omitempty"`
	Status            string     `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`
	EstimatedDelivery *time.Time `json:"estimated_delivery,omitempty"`
	DeliveredAt       *time.Time `json:"delivered_at,omitempty"`
}
