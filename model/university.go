package model

import (
	"time"
)

// University represents an educational institution in a destination country.
// CountryID is a nullable reference; a university whose country was deleted
// keeps pointing at the gone row (no cascade, no cleanup).
type University struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	NameEN        string    `gorm:"not null;index" json:"name_en"`
	NameAR        string    `gorm:"not null" json:"name_ar"`
	DescriptionEN string    `gorm:"type:text" json:"description_en"`
	DescriptionAR string    `gorm:"type:text" json:"description_ar"`
	ImageURL      string    `gorm:"type:varchar(500)" json:"image_url"`
	CountryID     *uint     `gorm:"index" json:"country_id"`
	Ranking       int       `gorm:"index" json:"ranking"` // lower is better
	StudentsCount string    `gorm:"type:varchar(100)" json:"students_count"`
	Website       string    `gorm:"type:varchar(500)" json:"website"`
	Featured      bool      `gorm:"default:false;index" json:"featured"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Country  *Country  `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Programs []Program `gorm:"foreignKey:UniversityID" json:"programs,omitempty"`
}
