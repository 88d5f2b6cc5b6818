package models

import "time"

// Marksheet represents one uploaded assessment. The actual marks live in a
// dynamically named table (TableName) whose columns are a student identifier
// plus one column per question; column naming is resolved at read time.
type Marksheet struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CourseID       string     `json:"course_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name           string     `json:"name" gorm:"not null" validate:"required"`
	AssessmentType string     `json:"assessment_type" gorm:"not null;default:'internal'"`
	TableName      string     `json:"table_name" gorm:"uniqueIndex;not null" validate:"required"`
	RowCount       int        `json:"row_count" gorm:"default:0"`
	UploadedBy     *string    `json:"uploaded_by,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID;references:ID"`
}
