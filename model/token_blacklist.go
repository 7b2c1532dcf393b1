package model

import (
	"time"
)

// JWTTokenBlacklist stores revoked token IDs (JTI). Rows past their token's
// natural expiry are purged by a cron job.
type JWTTokenBlacklist struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	JTI       string    `gorm:"uniqueIndex;not null;type:varchar(64)" json:"jti"`
	AdminID   uint      `gorm:"index" json:"admin_id"`
	TokenType string    `gorm:"type:varchar(20)" json:"token_type"` // access, refresh
	Reason    string    `gorm:"type:varchar(100)" json:"reason"`    // logout, password_change
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for JWTTokenBlacklist
func (JWTTokenBlacklist) TableName() string {
	return "jwt_token_blacklist"
}
