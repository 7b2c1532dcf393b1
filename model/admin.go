package model

import (
	"time"
)

// Admin is a dashboard operator. Credentials are stored as a bcrypt hash
// only; TokenVersion increments to invalidate all outstanding tokens.
type Admin struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"type:varchar(255)" json:"name"`
	TokenVersion int       `gorm:"default:0" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	AuditLogs []AdminAuditLog `gorm:"foreignKey:AdminID" json:"-"`
}
