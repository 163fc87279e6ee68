package model

type Review struct {
	BaseModel
	ReviewID  uint   `gorm:"primaryKey" json:"review_id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_user_product_review" json:"user_id"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_user_product_review" json:"product_id"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string `gorm:"type:text" json:"comment"`
}
