package model

import (
	"time"
)

// Degree levels offered by programs
const (
	DegreeBachelor = "Bachelor"
	DegreeMaster   = "Master"
	DegreePhD      = "PhD"
	DegreeDiploma  = "Diploma"
)

// Program represents an academic program offered by a university
type Program struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	NameEN         string    `gorm:"not null;index" json:"name_en"`
	NameAR         string    `gorm:"not null" json:"name_ar"`
	DescriptionEN  string    `gorm:"type:text" json:"description_en"`
	DescriptionAR  string    `gorm:"type:text" json:"description_ar"`
	RequirementsEN string    `gorm:"type:text" json:"requirements_en"`
	RequirementsAR string    `gorm:"type:text" json:"requirements_ar"`
	ImageURL       string    `gorm:"type:varchar(500)" json:"image_url"`
	UniversityID   *uint     `gorm:"index" json:"university_id"`
	DegreeLevel    string    `gorm:"type:varchar(20)" json:"degree_level"` // Bachelor, Master, PhD, Diploma
	Duration       string    `gorm:"type:varchar(100)" json:"duration"`
	Language       string    `gorm:"type:varchar(100)" json:"language"`
	TuitionFee     string    `gorm:"type:varchar(100)" json:"tuition_fee"`
	Featured       bool      `gorm:"default:false;index" json:"featured"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	University *University `gorm:"foreignKey:UniversityID" json:"university,omitempty"`
}

// IsValidDegreeLevel reports whether level is one of the supported degrees.
func IsValidDegreeLevel(level string) bool {
	switch level {
	case DegreeBachelor, DegreeMaster, DegreePhD, DegreeDiploma:
		return true
	}
	return false
}
