package model

import (
	"errors"
	"time"
)

// Application statuses. The status column is a closed vocabulary enforced
// by the API, not by the database.
const (
	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ErrInvalidStatus is returned when a status value is outside the vocabulary.
var ErrInvalidStatus = errors.New("status must be one of: pending, contacted, completed, cancelled")

// Application is a consultation request submitted by a visitor.
// ProgramID is optional; the referenced program may have been deleted.
type Application struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	FullName       string    `gorm:"not null" json:"full_name"`
	Email          string    `gorm:"not null" json:"email"`
	Phone          string    `gorm:"not null" json:"phone"`
	Nationality    string    `gorm:"type:varchar(100)" json:"nationality"`
	EducationLevel string    `gorm:"type:varchar(100)" json:"education_level"`
	Message        string    `gorm:"type:text" json:"message"`
	ProgramID      *uint     `gorm:"index" json:"program_id"`
	Status         string    `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Program *Program `gorm:"foreignKey:ProgramID" json:"program,omitempty"`
}

// IsValidStatus reports whether status belongs to the closed vocabulary.
// Any valid status may be set from any other; there is no transition table.
func IsValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusContacted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
