package grades

import (
	"database/sql"
	"fmt"

	"github.com/trahulprabhu38/major-project-sub003/app/database"
	"github.com/trahulprabhu38/major-project-sub003/app/errs"
	"github.com/trahulprabhu38/major-project-sub003/app/models"
)

// getCIEComposition fetches the internal composite for (student, course);
// returns nil when the upstream pipeline has not produced it yet
func getCIEComposition(db *sql.DB, studentID, courseID string) (*models.CIEComposition, error) {
	cie := &models.CIEComposition{}
	query := `
		SELECT id, student_id, course_id, cie_total_50, created_at, updated_at
		FROM final_cie_composition
		WHERE student_id = $1 AND course_id = $2
	`

	err := db.QueryRow(query, studentID, courseID).Scan(
		&cie.ID, &cie.StudentID, &cie.CourseID, &cie.CIETotal50, &cie.CreatedAt, &cie.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch CIE composition: %w", err)
	}

	return cie, nil
}

// getSEEMarks fetches the semester-end marks for (student, course)
func getSEEMarks(db *sql.DB, studentID, courseID string) (*models.SEEMarks, error) {
	see := &models.SEEMarks{}
	query := `
		SELECT id, student_id, course_id, see_obtained, see_max_marks, created_at, updated_at
		FROM see_marks
		WHERE student_id = $1 AND course_id = $2
	`

	err := db.QueryRow(query, studentID, courseID).Scan(
		&see.ID, &see.StudentID, &see.CourseID, &see.SEEObtained, &see.SEEMaxMarks, &see.CreatedAt, &see.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch SEE marks: %w", err)
	}

	return see, nil
}

// CalculateFinalGrade combines a student's CIE and SEE components into a
// final grade and upserts it. Both input rows must already exist; the
// calculator never invents missing components.
func CalculateFinalGrade(db *sql.DB, studentID, courseID string) (*models.StudentFinalGrade, error) {
	course, err := database.GetCourseByID(db, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, &errs.NotFoundError{Entity: "course", ID: courseID}
	}

	cie, err := getCIEComposition(db, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if cie == nil {
		return nil, &errs.PrerequisiteMissingError{What: "CIE composition for student " + studentID}
	}

	see, err := getSEEMarks(db, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if see == nil {
		return nil, &errs.PrerequisiteMissingError{What: "SEE marks for student " + studentID}
	}

	computed := ComputeFinalGrade(cie.CIETotal50, see.SEEObtained, see.SEEMaxMarks)

	grade := &models.StudentFinalGrade{
		StudentID:       studentID,
		CourseID:        courseID,
		CIEOn50:         computed.CIEOn50,
		SEEOn50:         computed.SEEOn50,
		FinalPercentage: computed.FinalPercentage,
		LetterGrade:     computed.LetterGrade,
		GradePoints:     computed.GradePoints,
		Credits:         course.Credits,
		IsPassed:        computed.IsPassed,
	}

	query := `
		INSERT INTO student_final_grades (student_id, course_id, cie_on_50, see_on_50, final_percentage, letter_grade, grade_points, credits, is_passed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (student_id, course_id)
		DO UPDATE SET cie_on_50 = EXCLUDED.cie_on_50,
			see_on_50 = EXCLUDED.see_on_50,
			final_percentage = EXCLUDED.final_percentage,
			letter_grade = EXCLUDED.letter_grade,
			grade_points = EXCLUDED.grade_points,
			credits = EXCLUDED.credits,
			is_passed = EXCLUDED.is_passed,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = db.QueryRow(query, grade.StudentID, grade.CourseID, grade.CIEOn50, grade.SEEOn50,
		grade.FinalPercentage, grade.LetterGrade, grade.GradePoints, grade.Credits, grade.IsPassed,
	).Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert final grade: %w", err)
	}

	return grade, nil
}

// RecalcError records one student whose grade could not be calculated
type RecalcError struct {
	StudentID string `json:"student_id"`
	USN       string `json:"usn"`
	Error     string `json:"error"`
}

// RecalcSummary reports a course-wide grade recalculation
type RecalcSummary struct {
	Total      int           `json:"total"`
	Calculated int           `json:"calculated"`
	Failed     int           `json:"failed"`
	Errors     []RecalcError `json:"errors,omitempty"`
}

// RecalculateAllGrades recomputes the final grade of every enrolled student
// of a course. Students are processed sequentially; one student's failure is
// recorded and never aborts the batch.
func RecalculateAllGrades(db *sql.DB, courseID string) (*RecalcSummary, error) {
	course, err := database.GetCourseByID(db, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, &errs.NotFoundError{Entity: "course", ID: courseID}
	}

	students, err := database.GetEnrolledStudents(db, courseID)
	if err != nil {
		return nil, err
	}

	summary := &RecalcSummary{Total: len(students)}

	for _, student := range students {
		if _, err := CalculateFinalGrade(db, student.ID, courseID); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, RecalcError{
				StudentID: student.ID,
				USN:       student.USN,
				Error:     err.Error(),
			})
			continue
		}
		summary.Calculated++
	}

	return summary, nil
}

// GetStudentGrades fetches all stored final grades of a student with course
// details joined in
func GetStudentGrades(db *sql.DB, studentID string) ([]*models.StudentFinalGrade, error) {
	query := `
		SELECT g.id, g.student_id, g.course_id, g.cie_on_50, g.see_on_50, g.final_percentage,
			g.letter_grade, g.grade_points, g.credits, g.is_passed, g.created_at, g.updated_at,
			c.id, c.code, c.name, c.department, c.semester, c.credits
		FROM student_final_grades g
		JOIN courses c ON g.course_id = c.id AND c.deleted_at IS NULL
		WHERE g.student_id = $1
		ORDER BY c.semester, c.code
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.StudentFinalGrade
	for rows.Next() {
		var g models.StudentFinalGrade
		var c models.Course

		err := rows.Scan(&g.ID, &g.StudentID, &g.CourseID, &g.CIEOn50, &g.SEEOn50,
			&g.FinalPercentage, &g.LetterGrade, &g.GradePoints, &g.Credits, &g.IsPassed,
			&g.CreatedAt, &g.UpdatedAt,
			&c.ID, &c.Code, &c.Name, &c.Department, &c.Semester, &c.Credits)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student grade: %w", err)
		}

		g.Course = &c
		grades = append(grades, &g)
	}

	return grades, nil
}
