package models

import "time"

// QuestionCOMapping associates one question column of a marksheet with
// exactly one course outcome and the question's maximum marks. Entries with
// max_marks <= 0 are never persisted; such a question is treated as absent.
type QuestionCOMapping struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	MarksheetID    string     `json:"marksheet_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	QuestionColumn string     `json:"question_column" gorm:"not null" validate:"required"`
	OriginalName   string     `json:"original_name" gorm:"not null"`
	CONumber       int        `json:"co_number" gorm:"not null" validate:"required,min=1"`
	COID           *string    `json:"co_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	MaxMarks       *float64   `json:"max_marks,omitempty" gorm:"type:decimal(6,2)" validate:"omitempty,gt=0"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Marksheet *Marksheet     `json:"marksheet,omitempty" gorm:"foreignKey:MarksheetID;references:ID"`
	Outcome   *CourseOutcome `json:"outcome,omitempty" gorm:"foreignKey:COID;references:ID"`
}

// COMappingFile stores upload metadata for a marksheet's mapping set
type COMappingFile struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	MarksheetID  string    `json:"marksheet_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	ContentHash  string    `json:"content_hash" gorm:"not null"`
	MappingCount int       `json:"mapping_count" gorm:"not null;default:0"`
	UploadedBy   *string   `json:"uploaded_by,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
