package models

import "time"

// QuestionVerticalAnalysis holds the per-question attainment statistics for
// one marksheet: how many students attempted the question and how many
// scored at least 60% of its maximum marks.
type QuestionVerticalAnalysis struct {
	ID                     string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	MarksheetID            string    `json:"marksheet_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	QuestionColumn         string    `json:"question_column" gorm:"not null"`
	CONumber               int       `json:"co_number" gorm:"not null"`
	MaxMarks               float64   `json:"max_marks" gorm:"not null;type:decimal(6,2)"`
	AttemptsCount          int       `json:"attempts_count" gorm:"not null;default:0"`
	StudentsAboveThreshold int       `json:"students_above_threshold" gorm:"not null;default:0"`
	CreatedAt              time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// CombinedCOAttainment aggregates vertical-analysis rows for one course
// outcome across every assessment of the course. Unique per (course, CO);
// recomputation overwrites in place.
type CombinedCOAttainment struct {
	ID                     string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	CourseID               string    `json:"course_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	COID                   string    `json:"co_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CONumber               int       `json:"co_number" gorm:"not null"`
	NumQuestions           int       `json:"num_questions" gorm:"not null;default:0"`
	TotalMaxMarks          float64   `json:"total_max_marks" gorm:"not null;default:0;type:decimal(8,2)"`
	TotalAttempts          int       `json:"total_attempts" gorm:"not null;default:0"`
	StudentsAboveThreshold int       `json:"students_above_threshold" gorm:"not null;default:0"`
	AttainmentPercent      float64   `json:"attainment_percent" gorm:"not null;default:0;type:decimal(5,2)"`
	Threshold              float64   `json:"threshold" gorm:"not null;default:60.0;type:decimal(5,2)"`
	CreatedAt              time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt              time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
