package models

import "time"

// Student represents an enrolled student identified by USN
type Student struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	USN             string     `json:"usn" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName       string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName        string     `json:"last_name" gorm:"not null" validate:"required"`
	Email           *string    `json:"email,omitempty" gorm:"uniqueIndex" validate:"omitempty,email"`
	Department      string     `json:"department" gorm:"not null;index" validate:"required"`
	CurrentSemester int        `json:"current_semester" gorm:"not null;default:1" validate:"min=1,max=8"`
	BatchYear       int        `json:"batch_year" gorm:"not null"`
	IsActive        bool       `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
