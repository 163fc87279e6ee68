package model

type User struct {
	BaseModel
	UserID       uint           `gorm:"primaryKey" json:"user_id"`
	Name         string         `gorm:"not null;type:varchar(100)" json:"name"`
	Email        string         `gorm:"unique;not null;type:varchar(100)" json:"email"`
	PasswordHash string         `gorm:"not null;type:varchar(255)" json:"-"`
	Phone        string         `gorm:"type:varchar(20)" json:"phone"`
	Address      string         `gorm:"type:text" json:"address"`
	IsActive     bool           `gorm:"not null;default:true" json:"is_active"`
	Orders       []Order        `gorm:"foreignKey:UserID" json:"-"`
	Reviews      []Review       `gorm:"foreignKey:UserID" json:"-"`
	Wishlist     []WishlistItem `gorm:"foreignKey:UserID" json:"-"`
}
