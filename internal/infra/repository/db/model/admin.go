package model

const (
	AdminRoleSuper   = "super"
	AdminRoleManager = "manager"
	AdminRoleSupport = "support"
)

type Admin struct {
	BaseModel
	AdminID      uint   `gorm:"primaryKey" json:"admin_id"`
	Username     string `gorm:"unique;not null;type:varchar(50)" json:"username"`
	Email        string `gorm:"unique;not null;type:varchar(100)" json:"email"`
	PasswordHash string `gorm:"not null;type:varchar(255)" json:"-"`
	Role         string `gorm:"not null;type:varchar(20);default:'support'" json:"role"`
	IsActive     bool   `gorm:"not null;default:true" json:"is_active"`
}
