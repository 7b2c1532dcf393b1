package model

import (
	"time"

	"gorm.io/datatypes"
)

// AdminAuditLog records every admin mutation: who did what to which row,
// with the before/after snapshots as JSON.
type AdminAuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	AdminID    uint           `gorm:"not null;index" json:"admin_id"`
	Action     string         `gorm:"type:varchar(100);not null" json:"action"` // e.g., "country_update", "application_status"
	Resource   string         `gorm:"type:varchar(100)" json:"resource"`        // e.g., "countries", "applications"
	ResourceID uint           `json:"resource_id"`
	OldValue   datatypes.JSON `gorm:"type:jsonb" json:"old_value"`
	NewValue   datatypes.JSON `gorm:"type:jsonb" json:"new_value"`
	IPAddress  string         `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent  string         `gorm:"type:text" json:"user_agent"`
	CreatedAt  time.Time      `json:"created_at"`

	// Relationships
	Admin *Admin `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
}

// TableName specifies the table name for AdminAuditLog
func (AdminAuditLog) TableName() string {
	return "admin_audit_logs"
}
