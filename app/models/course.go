package models

import "time"

// Course represents one offering of a subject in a specific semester
type Course struct {
	ID         string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Code       string     `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Name       string     `json:"name" gorm:"not null" validate:"required"`
	Department string     `json:"department" gorm:"not null;index" validate:"required"`
	Semester   int        `json:"semester" gorm:"not null" validate:"required,min=1,max=8"`
	Credits    int        `json:"credits" gorm:"not null;default:3" validate:"gte=0"`
	TeacherID  *string    `json:"teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive   bool       `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Outcomes   []*CourseOutcome `json:"outcomes,omitempty" gorm:"foreignKey:CourseID;references:ID"`
	Marksheets []*Marksheet     `json:"marksheets,omitempty" gorm:"foreignKey:CourseID;references:ID"`
}

// Enrollment links a student to a course for an academic year
type Enrollment struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID    string     `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CourseID     string     `json:"course_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Semester     int        `json:"semester" gorm:"not null" validate:"required,min=1,max=8"`
	AcademicYear string     `json:"academic_year" gorm:"not null"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`

	Student *Student `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
	Course  *Course  `json:"course,omitempty" gorm:"foreignKey:CourseID;references:ID"`
}
