package model

type WishlistItem struct {
	BaseModel
	WishlistID uint    `gorm:"primaryKey" json:"wishlist_id"`
	UserID     uint    `gorm:"not null;uniqueIndex:idx_user_product_wish" json:"user_id"`
	ProductID  uint    `gorm:"not null;uniqueIndex:idx_user_product_wish" json:"product_id"`
	Product    Product `gorm:"foreignKey:ProductID" json:"product"`
}
