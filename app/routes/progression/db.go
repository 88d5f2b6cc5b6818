package progression

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trahulprabhu38/major-project-sub003/app/database"
	"github.com/trahulprabhu38/major-project-sub003/app/errs"
	"github.com/trahulprabhu38/major-project-sub003/app/models"
)

// SemesterCourse is one course row inside a semester of the timeline
type SemesterCourse struct {
	CourseID    string   `json:"course_id"`
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Credits     int      `json:"credits"`
	LetterGrade *string  `json:"letter_grade"`
	GradePoints *float64 `json:"grade_points"`
	IsPassed    *bool    `json:"is_passed"`
}

// ProgressionRecord is the full multi-semester view of one student
type ProgressionRecord struct {
	Student         *models.Student       `json:"student"`
	CGPA            float64               `json:"cgpa"`
	CurrentSemester int                   `json:"current_semester"`
	TotalCredits    int                   `json:"total_credits"`
	CGPAHistory     []models.CGPASnapshot `json:"cgpa_history"`
	Semesters       []SemesterEntry       `json:"semesters"`
	Warnings        []string              `json:"warnings,omitempty"`
}

// getSemesterResults fetches every stored semester result for a student
func getSemesterResults(db *sql.DB, studentID string) ([]*models.SemesterResult, error) {
	query := `
		SELECT id, student_id, semester_number, academic_year, sgpa, credits_registered,
			credits_earned, courses_total, courses_passed, semester_status, created_at, updated_at
		FROM semester_results
		WHERE student_id = $1
		ORDER BY semester_number ASC
	`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch semester results: %w", err)
	}
	defer rows.Close()

	var results []*models.SemesterResult
	for rows.Next() {
		var r models.SemesterResult
		err := rows.Scan(&r.ID, &r.StudentID, &r.SemesterNumber, &r.AcademicYear, &r.SGPA,
			&r.CreditsRegistered, &r.CreditsEarned, &r.CoursesTotal, &r.CoursesPassed,
			&r.SemesterStatus, &r.CreatedAt, &r.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan semester result: %w", err)
		}
		results = append(results, &r)
	}

	return results, nil
}

// GetSemesterCourses joins enrollments with final grades for one student's
// semester. Courses without a grade yet come back with null grade fields;
// missing credits default to 3.
func GetSemesterCourses(db *sql.DB, studentID string, semesterNumber int, academicYear string) ([]*SemesterCourse, error) {
	query := `
		SELECT c.id, c.code, c.name, COALESCE(NULLIF(c.credits, 0), 3),
			g.letter_grade, g.grade_points, g.is_passed
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id AND c.deleted_at IS NULL
		LEFT JOIN student_final_grades g ON g.student_id = e.student_id AND g.course_id = e.course_id
		WHERE e.student_id = $1 AND e.semester = $2 AND e.academic_year = $3 AND e.deleted_at IS NULL
		ORDER BY c.code
	`

	rows, err := db.Query(query, studentID, semesterNumber, academicYear)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch semester courses: %w", err)
	}
	defer rows.Close()

	var courses []*SemesterCourse
	for rows.Next() {
		var sc SemesterCourse
		var letter sql.NullString
		var points sql.NullFloat64
		var passed sql.NullBool

		err := rows.Scan(&sc.CourseID, &sc.Code, &sc.Name, &sc.Credits, &letter, &points, &passed)
		if err != nil {
			return nil, fmt.Errorf("failed to scan semester course: %w", err)
		}

		if letter.Valid {
			sc.LetterGrade = &letter.String
		}
		if points.Valid {
			sc.GradePoints = &points.Float64
		}
		if passed.Valid {
			sc.IsPassed = &passed.Bool
		}
		courses = append(courses, &sc)
	}

	return courses, nil
}

// getStudentCGPA fetches the cumulative row; nil when none exists yet
func getStudentCGPA(db *sql.DB, studentID string) (*models.StudentCGPA, error) {
	record := &models.StudentCGPA{}
	var history []byte

	query := `
		SELECT id, student_id, cgpa, current_semester, total_credits, cgpa_history, created_at, updated_at
		FROM student_cgpa
		WHERE student_id = $1
	`

	err := db.QueryRow(query, studentID).Scan(
		&record.ID, &record.StudentID, &record.CGPA, &record.CurrentSemester,
		&record.TotalCredits, &history, &record.CreatedAt, &record.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student CGPA: %w", err)
	}

	if len(history) > 0 {
		if err := json.Unmarshal(history, &record.CGPAHistory); err != nil {
			return nil, fmt.Errorf("failed to decode cgpa history: %w", err)
		}
	}

	return record, nil
}

// GetStudentProgression builds the complete 8-semester timeline for a
// student, with per-semester course grades and the cumulative CGPA record.
func GetStudentProgression(db *sql.DB, studentID string) (*ProgressionRecord, error) {
	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, &errs.NotFoundError{Entity: "student", ID: studentID}
	}

	results, err := getSemesterResults(db, studentID)
	if err != nil {
		return nil, err
	}

	record := &ProgressionRecord{
		Student:         student,
		CurrentSemester: student.CurrentSemester,
		CGPAHistory:     []models.CGPASnapshot{},
		Semesters:       BuildTimeline(results),
	}

	for _, r := range results {
		// The timeline has exactly TotalSemesters slots; a result row with a
		// semester number outside that range is bad upstream data and is
		// skipped with a diagnostic rather than crashing the whole view.
		if r.SemesterNumber < 1 || r.SemesterNumber > TotalSemesters {
			record.Warnings = append(record.Warnings,
				fmt.Sprintf("semester result with out-of-range semester number %d ignored", r.SemesterNumber))
			continue
		}

		courses, err := GetSemesterCourses(db, studentID, r.SemesterNumber, r.AcademicYear)
		if err != nil {
			return nil, err
		}
		record.Semesters[r.SemesterNumber-1].Courses = courses
	}

	cgpa, err := getStudentCGPA(db, studentID)
	if err != nil {
		return nil, err
	}
	if cgpa != nil {
		record.CGPA = cgpa.CGPA
		record.TotalCredits = cgpa.TotalCredits
		if cgpa.CurrentSemester > record.CurrentSemester {
			record.CurrentSemester = cgpa.CurrentSemester
		}
		if cgpa.CGPAHistory != nil {
			record.CGPAHistory = cgpa.CGPAHistory
		}
	}

	return record, nil
}

// UpdateStudentCGPA recomputes the cumulative CGPA from all stored semester
// results and appends a snapshot to the append-only history log. Called
// after a semester result lands.
func UpdateStudentCGPA(db *sql.DB, studentID string) (*models.StudentCGPA, error) {
	student, err := database.GetStudentByID(db, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, &errs.NotFoundError{Entity: "student", ID: studentID}
	}

	results, err := getSemesterResults(db, studentID)
	if err != nil {
		return nil, err
	}

	cgpa, totalCredits := WeightedCGPA(results)

	currentSemester := student.CurrentSemester
	var latestSGPA float64
	latestSemester := 0
	for _, r := range results {
		if r.SemesterNumber > latestSemester {
			latestSemester = r.SemesterNumber
			latestSGPA = r.SGPA
		}
	}
	if latestSemester >= currentSemester {
		currentSemester = latestSemester
	}

	existing, err := getStudentCGPA(db, studentID)
	if err != nil {
		return nil, err
	}

	var history []models.CGPASnapshot
	if existing != nil {
		history = existing.CGPAHistory
	}

	// The history logs one snapshot per semester result, not one per
	// recalculation. A recompute that lands on the same latest semester with
	// unchanged numbers keeps the log as is; the scalar columns still refresh.
	if !snapshotAlreadyLogged(history, latestSemester, latestSGPA, cgpa) {
		history = append(history, models.CGPASnapshot{
			SemesterNumber: latestSemester,
			SGPA:           latestSGPA,
			CGPA:           cgpa,
			CreditsEarned:  totalCredits,
			RecordedAt:     time.Now().UTC(),
		})
	}

	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cgpa history: %w", err)
	}

	record := &models.StudentCGPA{
		StudentID:       studentID,
		CGPA:            cgpa,
		CurrentSemester: currentSemester,
		TotalCredits:    totalCredits,
		CGPAHistory:     history,
	}

	query := `
		INSERT INTO student_cgpa (student_id, cgpa, current_semester, total_credits, cgpa_history)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (student_id)
		DO UPDATE SET cgpa = EXCLUDED.cgpa,
			current_semester = EXCLUDED.current_semester,
			total_credits = EXCLUDED.total_credits,
			cgpa_history = EXCLUDED.cgpa_history,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err = db.QueryRow(query, studentID, cgpa, currentSemester, totalCredits, historyJSON).
		Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert student CGPA: %w", err)
	}

	return record, nil
}

// snapshotAlreadyLogged reports whether the latest history entry already
// records this semester with the same numbers
func snapshotAlreadyLogged(history []models.CGPASnapshot, semesterNumber int, sgpa, cgpa float64) bool {
	if len(history) == 0 {
		return false
	}
	last := history[len(history)-1]
	return last.SemesterNumber == semesterNumber && last.SGPA == sgpa && last.CGPA == cgpa
}

// SemesterStatistics is the department-wide view of one semester
type SemesterStatistics struct {
	SemesterNumber    int           `json:"semester_number"`
	Department        string        `json:"department"`
	TotalStudents     int           `json:"total_students"`
	AverageSGPA       float64       `json:"average_sgpa"`
	HighestSGPA       float64       `json:"highest_sgpa"`
	LowestSGPA        float64       `json:"lowest_sgpa"`
	PassPercentage    float64       `json:"pass_percentage"`
	GradeDistribution []GradeBucket `json:"grade_distribution"`
}

// GetSemesterStatistics computes department-wide averages and extrema over
// completed semesters plus a grade histogram for the semester's courses
func GetSemesterStatistics(db *sql.DB, semesterNumber int, department string) (*SemesterStatistics, error) {
	stats := &SemesterStatistics{
		SemesterNumber: semesterNumber,
		Department:     department,
	}

	summaryQuery := `
		SELECT COUNT(*),
			COALESCE(AVG(sr.sgpa), 0),
			COALESCE(MAX(sr.sgpa), 0),
			COALESCE(MIN(sr.sgpa), 0),
			COUNT(*) FILTER (WHERE sr.semester_status = 'failed')
		FROM semester_results sr
		JOIN students s ON s.id = sr.student_id AND s.deleted_at IS NULL
		WHERE sr.semester_number = $1
		AND sr.semester_status IN ('completed', 'failed')
		AND ($2 = '' OR s.department = $2)
	`

	var failedCount int
	err := db.QueryRow(summaryQuery, semesterNumber, department).Scan(
		&stats.TotalStudents, &stats.AverageSGPA, &stats.HighestSGPA, &stats.LowestSGPA, &failedCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch semester statistics: %w", err)
	}

	stats.PassPercentage = PassPercentage(stats.TotalStudents, failedCount)

	distributionQuery := `
		SELECT g.letter_grade, COUNT(*)
		FROM student_final_grades g
		JOIN enrollments e ON e.student_id = g.student_id AND e.course_id = g.course_id AND e.deleted_at IS NULL
		JOIN students s ON s.id = g.student_id AND s.deleted_at IS NULL
		WHERE e.semester = $1
		AND ($2 = '' OR s.department = $2)
		GROUP BY g.letter_grade
	`

	rows, err := db.Query(distributionQuery, semesterNumber, department)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grade distribution: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var letter string
		var count int
		if err := rows.Scan(&letter, &count); err != nil {
			return nil, fmt.Errorf("failed to scan grade count: %w", err)
		}
		counts[letter] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.GradeDistribution = OrderedDistribution(counts)

	return stats, nil
}

// CourseStudentProgression is one enrolled student's standing in a course
type CourseStudentProgression struct {
	StudentID       string  `json:"student_id"`
	USN             string  `json:"usn"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	FinalPercentage float64 `json:"final_percentage"`
	LetterGrade     string  `json:"letter_grade"`
	GradePoints     float64 `json:"grade_points"`
	IsPassed        bool    `json:"is_passed"`
	CGPA            float64 `json:"cgpa"`
}

// GetCourseStudentsProgression lists every enrolled student of a course with
// their final grade and cumulative CGPA; unset numeric fields coalesce to 0
func GetCourseStudentsProgression(db *sql.DB, courseID string) ([]*CourseStudentProgression, error) {
	query := `
		SELECT s.id, s.usn, s.first_name, s.last_name,
			COALESCE(g.final_percentage, 0),
			COALESCE(g.letter_grade, ''),
			COALESCE(g.grade_points, 0),
			COALESCE(g.is_passed, false),
			COALESCE(sc.cgpa, 0)
		FROM enrollments e
		JOIN students s ON s.id = e.student_id AND s.deleted_at IS NULL
		LEFT JOIN student_final_grades g ON g.student_id = e.student_id AND g.course_id = e.course_id
		LEFT JOIN student_cgpa sc ON sc.student_id = s.id
		WHERE e.course_id = $1 AND e.deleted_at IS NULL
		ORDER BY s.usn
	`

	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course progression: %w", err)
	}
	defer rows.Close()

	var students []*CourseStudentProgression
	for rows.Next() {
		var p CourseStudentProgression
		err := rows.Scan(&p.StudentID, &p.USN, &p.FirstName, &p.LastName,
			&p.FinalPercentage, &p.LetterGrade, &p.GradePoints, &p.IsPassed, &p.CGPA)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course progression: %w", err)
		}
		students = append(students, &p)
	}

	return students, nil
}

// TopPerformer is one row of the CGPA leaderboard
type TopPerformer struct {
	StudentID       string  `json:"student_id"`
	USN             string  `json:"usn"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	Department      string  `json:"department"`
	CGPA            float64 `json:"cgpa"`
	CurrentSemester int     `json:"current_semester"`
	TotalCredits    int     `json:"total_credits"`
}

// GetTopPerformers returns the highest-CGPA students, optionally filtered by
// department
func GetTopPerformers(db *sql.DB, department string, limit int) ([]*TopPerformer, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `
		SELECT s.id, s.usn, s.first_name, s.last_name, s.department,
			COALESCE(sc.cgpa, 0), COALESCE(sc.current_semester, 1), COALESCE(sc.total_credits, 0)
		FROM student_cgpa sc
		JOIN students s ON s.id = sc.student_id AND s.deleted_at IS NULL
		WHERE s.is_active = true
		AND ($1 = '' OR s.department = $1)
		ORDER BY sc.cgpa DESC, s.usn
		LIMIT $2
	`

	rows, err := db.Query(query, department, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top performers: %w", err)
	}
	defer rows.Close()

	var performers []*TopPerformer
	for rows.Next() {
		var t TopPerformer
		err := rows.Scan(&t.StudentID, &t.USN, &t.FirstName, &t.LastName,
			&t.Department, &t.CGPA, &t.CurrentSemester, &t.TotalCredits)
		if err != nil {
			return nil, fmt.Errorf("failed to scan top performer: %w", err)
		}
		performers = append(performers, &t)
	}

	return performers, nil
}
