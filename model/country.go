package model

import (
	"time"
)

// Country represents a study destination with bilingual content
type Country struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	NameEN            string    `gorm:"not null;index" json:"name_en"`
	NameAR            string    `gorm:"not null" json:"name_ar"`
	DescriptionEN     string    `gorm:"type:text" json:"description_en"`
	DescriptionAR     string    `gorm:"type:text" json:"description_ar"`
	ImageURL          string    `gorm:"type:varchar(500)" json:"image_url"`
	FlagEmoji         string    `gorm:"type:varchar(16)" json:"flag_emoji"`
	Capital           string    `gorm:"type:varchar(255)" json:"capital"`
	Population        int64     `json:"population"`
	AcceptanceRate    float64   `json:"acceptance_rate"`
	LivingCost        float64   `json:"living_cost"`
	UniversitiesCount int       `json:"universities_count"`
	StudentsCount     string    `gorm:"type:varchar(100)" json:"students_count"`
	Featured          bool      `gorm:"default:false;index" json:"featured"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Relationships
	Universities []University `gorm:"foreignKey:CountryID" json:"universities,omitempty"`
}
