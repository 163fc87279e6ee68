package model

type Category struct {
	BaseModel
	CategoryID   uint      `gorm:"primaryKey" json:"category_id"`
	CategoryName string    `gorm:"unique;not null;type:varchar(100)" json:"category_name"`
	Description  string    `gorm:"type:text" json:"description"`
	Products     []Product `gorm:"foreignKey:CategoryID" json:"-"`
}
