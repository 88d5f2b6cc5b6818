package models

import "time"

// SemesterResult is the per-student roll-up of one semester's final grades
type SemesterResult struct {
	ID                string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID         string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SemesterNumber    int       `json:"semester_number" gorm:"not null" validate:"required,min=1,max=8"`
	AcademicYear      string    `json:"academic_year" gorm:"not null"`
	SGPA              float64   `json:"sgpa" gorm:"not null;default:0;type:decimal(4,2)"`
	CreditsRegistered int       `json:"credits_registered" gorm:"not null;default:0"`
	CreditsEarned     int       `json:"credits_earned" gorm:"not null;default:0"`
	CoursesTotal      int       `json:"courses_total" gorm:"not null;default:0"`
	CoursesPassed     int       `json:"courses_passed" gorm:"not null;default:0"`
	SemesterStatus    string    `json:"semester_status" gorm:"not null;default:'in_progress'"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// CGPASnapshot is one entry of the append-only cgpa_history log
type CGPASnapshot struct {
	SemesterNumber int       `json:"semester_number"`
	SGPA           float64   `json:"sgpa"`
	CGPA           float64   `json:"cgpa"`
	CreditsEarned  int       `json:"credits_earned"`
	RecordedAt     time.Time `json:"recorded_at"`
}

// StudentCGPA is the single cumulative row per student. CGPAHistory is an
// ordered append-only log of semester snapshots stored as jsonb.
type StudentCGPA struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID       string         `json:"student_id" gorm:"uniqueIndex;not null;type:uuid" validate:"required,uuid"`
	CGPA            float64        `json:"cgpa" gorm:"not null;default:0;type:decimal(4,2)"`
	CurrentSemester int            `json:"current_semester" gorm:"not null;default:1"`
	TotalCredits    int            `json:"total_credits" gorm:"not null;default:0"`
	CGPAHistory     []CGPASnapshot `json:"cgpa_history" gorm:"type:jsonb"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}
