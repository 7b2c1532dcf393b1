package model

import (
	"time"
)

// SiteSetting is a singleton row (cardinality 0 or 1) holding site identity,
// contact channels and theme colors. Writes go through a read-then-write
// insert-or-update, never an upsert.
type SiteSetting struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	SiteName         string    `gorm:"type:varchar(255)" json:"site_name"`
	SiteLogo         string    `gorm:"type:varchar(500)" json:"site_logo"`
	Phone            string    `gorm:"type:varchar(50)" json:"phone"`
	Email            string    `gorm:"type:varchar(255)" json:"email"`
	Whatsapp         string    `gorm:"type:varchar(50)" json:"whatsapp"`
	Address          string    `gorm:"type:text" json:"address"`
	AboutDescription string    `gorm:"type:text" json:"about_description"`
	PrimaryColor     string    `gorm:"type:varchar(20)" json:"primary_color"`
	SecondaryColor   string    `gorm:"type:varchar(20)" json:"secondary_color"`
	AccentColor      string    `gorm:"type:varchar(20)" json:"accent_color"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName specifies the table name for SiteSetting
func (SiteSetting) TableName() string {
	return "site_settings"
}
