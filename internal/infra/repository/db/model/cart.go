package model

// Cart 每個使用者同一時間只有一個有效購物車
type Cart struct {
	BaseModel
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	CartItems []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"cart_items"`
}

type CartItem struct {
	BaseModel
	CartItemID uint    `gorm:"primaryKey" json:"cart_item_id"`
	CartID     uint    `gorm:"not null;uniqueIndex:idx_cart_product" json:"cart_id"`
	ProductID  uint    `gorm:"not null;uniqueIndex:idx_cart_product" json:"product_id"`
	Quantity   int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	Product    Product `gorm:"foreignKey:ProductID" json:"product"`
}
