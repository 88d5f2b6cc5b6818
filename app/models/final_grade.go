package models

import "time"

// CIEComposition is the pre-computed internal assessment composite for a
// student in a course, already scaled to a 50-point basis by the upstream
// internal-marks pipeline.
type CIEComposition struct {
	ID         string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID  string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CourseID   string    `json:"course_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CIETotal50 float64   `json:"cie_total_50" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=50"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// SEEMarks is the raw semester-end examination score for a student in a
// course, out of SEEMaxMarks (nominally 100).
type SEEMarks struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID   string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CourseID    string    `json:"course_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SEEObtained float64   `json:"see_obtained" gorm:"not null;type:decimal(6,2)" validate:"gte=0"`
	SEEMaxMarks float64   `json:"see_max_marks" gorm:"not null;default:100;type:decimal(6,2)" validate:"gt=0"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// StudentFinalGrade is the derived final result for a student in a course:
// CIE and SEE components on a 50+50 scale, letter grade, grade points and
// pass flag. Unique per (student, course); recalculation overwrites.
type StudentFinalGrade struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID       string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CourseID        string    `json:"course_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CIEOn50         float64   `json:"cie_on_50" gorm:"not null;type:decimal(5,2)"`
	SEEOn50         float64   `json:"see_on_50" gorm:"not null;type:decimal(5,2)"`
	FinalPercentage float64   `json:"final_percentage" gorm:"not null;type:decimal(5,2)"`
	LetterGrade     string    `json:"letter_grade" gorm:"not null"`
	GradePoints     float64   `json:"grade_points" gorm:"not null;type:decimal(4,2)"`
	Credits         int       `json:"credits" gorm:"not null;default:3"`
	IsPassed        bool      `json:"is_passed" gorm:"not null;default:false"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Course  *Course  `json:"course,omitempty" gorm:"foreignKey:CourseID;references:ID"`
}
