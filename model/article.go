package model

import (
	"time"
)

// Article represents a blog article. Published gates public visibility;
// Featured only affects ordering.
type Article struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	TitleEN    string    `gorm:"not null" json:"title_en"`
	TitleAR    string    `gorm:"not null" json:"title_ar"`
	ExcerptEN  string    `gorm:"type:text" json:"excerpt_en"`
	ExcerptAR  string    `gorm:"type:text" json:"excerpt_ar"`
	ContentEN  string    `gorm:"type:text" json:"content_en"` // rich HTML, sanitized on write
	ContentAR  string    `gorm:"type:text" json:"content_ar"`
	ImageURL   string    `gorm:"type:varchar(500)" json:"image_url"`
	AuthorName string    `gorm:"type:varchar(255)" json:"author_name"`
	Featured   bool      `gorm:"default:false;index" json:"featured"`
	Published  bool      `gorm:"default:false;index" json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
