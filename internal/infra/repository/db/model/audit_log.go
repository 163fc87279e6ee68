package model

// AuditLog 管理端異動的 before/after 快照，OldValues/NewValues 存 JSON 字串
type AuditLog struct {
	BaseModel
	AuditID   uint   `gorm:"primaryKey" json:"audit_id"`
	AdminID   *uint  `gorm:"index" json:"admin_id,omitempty"`
	UserID    *uint  `gorm:"index" json:"user_id,omitempty"`
	Action    string `gorm:"not null;type:varchar(100)" json:"action"`
	TableName string `gorm:"not null;type:varchar(50);index" json:"table_name"`
	RecordID  uint   `gorm:"index" json:"record_id"`
	OldValues string `gorm:"type:text" json:"old_values,omitempty"`
	NewValues string `gorm:"type:text" json:"new_values,omitempty"`
	IPAddress string `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent string `gorm:"type:text" json:"user_agent,omitempty"`
}
