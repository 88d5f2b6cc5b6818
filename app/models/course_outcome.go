package models

import "time"

// CourseOutcome is one numbered learning outcome of a course. Outcomes are
// created at course setup and treated as immutable once attainment has been
// calculated; recalculation regenerates all dependent derived rows.
type CourseOutcome struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CourseID    string     `json:"course_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CONumber    int        `json:"co_number" gorm:"not null" validate:"required,min=1"`
	Description string     `json:"description" gorm:"type:text"`
	BloomLevel  *string    `json:"bloom_level,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;references:ID"`
}
