package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/trahulprabhu38/major-project-sub003/app/models"
)

// ToPostgresArray adapts a string slice for use with = ANY($n) filters
func ToPostgresArray(values []string) interface{} {
	return pq.Array(values)
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name, r.is_active, r.created_at, r.updated_at
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1 AND r.is_active = true
	`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user roles: %w", err)
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.IsActive, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, &role)
	}

	return roles, nil
}

// GetCourseByID fetches a course; returns nil when it does not exist
func GetCourseByID(db *sql.DB, courseID string) (*models.Course, error) {
	course := &models.Course{}
	query := `
		SELECT id, code, name, department, semester, credits, teacher_id, is_active, created_at, updated_at
		FROM courses
		WHERE id = $1 AND deleted_at IS NULL
	`

	var teacherID sql.NullString
	err := db.QueryRow(query, courseID).Scan(
		&course.ID, &course.Code, &course.Name, &course.Department,
		&course.Semester, &course.Credits, &teacherID, &course.IsActive,
		&course.CreatedAt, &course.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}

	if teacherID.Valid {
		course.TeacherID = &teacherID.String
	}

	return course, nil
}

// GetCourseOutcomes fetches a course's outcomes ordered by CO number
func GetCourseOutcomes(db *sql.DB, courseID string) ([]*models.CourseOutcome, error) {
	query := `
		SELECT id, course_id, co_number, description, bloom_level, created_at, updated_at
		FROM course_outcomes
		WHERE course_id = $1 AND deleted_at IS NULL
		ORDER BY co_number ASC
	`

	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course outcomes: %w", err)
	}
	defer rows.Close()

	var outcomes []*models.CourseOutcome
	for rows.Next() {
		var co models.CourseOutcome
		var bloom sql.NullString

		err := rows.Scan(&co.ID, &co.CourseID, &co.CONumber, &co.Description,
			&bloom, &co.CreatedAt, &co.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course outcome: %w", err)
		}

		if bloom.Valid {
			co.BloomLevel = &bloom.String
		}
		outcomes = append(outcomes, &co)
	}

	return outcomes, nil
}

// GetMarksheetByID fetches a marksheet; returns nil when it does not exist
func GetMarksheetByID(db *sql.DB, marksheetID string) (*models.Marksheet, error) {
	ms := &models.Marksheet{}
	query := `
		SELECT id, course_id, name, assessment_type, table_name, row_count, uploaded_by, created_at, updated_at
		FROM marksheets
		WHERE id = $1 AND deleted_at IS NULL
	`

	var uploadedBy sql.NullString
	err := db.QueryRow(query, marksheetID).Scan(
		&ms.ID, &ms.CourseID, &ms.Name, &ms.AssessmentType, &ms.TableName,
		&ms.RowCount, &uploadedBy, &ms.CreatedAt, &ms.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch marksheet: %w", err)
	}

	if uploadedBy.Valid {
		ms.UploadedBy = &uploadedBy.String
	}

	return ms, nil
}

// GetMarksheetsByCourse fetches all marksheets uploaded for a course
func GetMarksheetsByCourse(db *sql.DB, courseID string) ([]*models.Marksheet, error) {
	query := `
		SELECT id, course_id, name, assessment_type, table_name, row_count, created_at, updated_at
		FROM marksheets
		WHERE course_id = $1 AND deleted_at IS NULL
		ORDER BY created_at ASC
	`

	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch marksheets: %w", err)
	}
	defer rows.Close()

	var marksheets []*models.Marksheet
	for rows.Next() {
		var ms models.Marksheet
		err := rows.Scan(&ms.ID, &ms.CourseID, &ms.Name, &ms.AssessmentType,
			&ms.TableName, &ms.RowCount, &ms.CreatedAt, &ms.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan marksheet: %w", err)
		}
		marksheets = append(marksheets, &ms)
	}

	return marksheets, nil
}

// GetStudentByID fetches a student; returns nil when it does not exist
func GetStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	student := &models.Student{}
	query := `
		SELECT id, usn, first_name, last_name, email, department, current_semester, batch_year, is_active, created_at, updated_at
		FROM students
		WHERE id = $1 AND deleted_at IS NULL
	`

	var email sql.NullString
	err := db.QueryRow(query, studentID).Scan(
		&student.ID, &student.USN, &student.FirstName, &student.LastName,
		&email, &student.Department, &student.CurrentSemester, &student.BatchYear,
		&student.IsActive, &student.CreatedAt, &student.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}

	if email.Valid {
		student.Email = &email.String
	}

	return student, nil
}

// GetEnrolledStudents fetches all active students enrolled in a course
func GetEnrolledStudents(db *sql.DB, courseID string) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.usn, s.first_name, s.last_name, s.department, s.current_semester, s.batch_year, s.is_active
		FROM students s
		JOIN enrollments e ON s.id = e.student_id AND e.deleted_at IS NULL
		WHERE e.course_id = $1 AND s.is_active = true AND s.deleted_at IS NULL
		ORDER BY s.usn
	`

	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enrolled students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var s models.Student
		err := rows.Scan(&s.ID, &s.USN, &s.FirstName, &s.LastName,
			&s.Department, &s.CurrentSemester, &s.BatchYear, &s.IsActive)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, &s)
	}

	return students, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// CreateFacultyUser creates a faculty account with the teacher role
func CreateFacultyUser(db *sql.DB, user *models.User) error {
	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	user.ID = uuid.NewString()
	query := `INSERT INTO users (id, email, password, first_name, last_name, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING created_at, updated_at`

	err = db.QueryRow(query, user.ID, user.Email, hashedPassword, user.FirstName, user.LastName).Scan(
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	roleQuery := `INSERT INTO user_roles (user_id, role_id)
				  SELECT $1, id FROM roles WHERE name = 'teacher'
				  ON CONFLICT DO NOTHING`
	if _, err := db.Exec(roleQuery, user.ID); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	user.IsActive = true
	return nil
}

// StudentFilters narrows student listings
type StudentFilters struct {
	Department string
	Semester   int
	Limit      int
	Offset     int
}

// GetStudents lists active students with optional department and semester
// filters, returning the unpaginated total alongside the page
func GetStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	where := `WHERE is_active = true AND deleted_at IS NULL`
	args := []interface{}{}

	if filters.Department != "" {
		args = append(args, filters.Department)
		where += fmt.Sprintf(" AND department = $%d", len(args))
	}
	if filters.Semester > 0 {
		args = append(args, filters.Semester)
		where += fmt.Sprintf(" AND current_semester = $%d", len(args))
	}

	var totalCount int
	countQuery := `SELECT COUNT(*) FROM students ` + where
	if err := db.QueryRow(countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	query := `SELECT id, usn, first_name, last_name, department, current_semester, batch_year, is_active
			  FROM students ` + where + ` ORDER BY usn`
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filters.Offset > 0 {
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var s models.Student
		err := rows.Scan(&s.ID, &s.USN, &s.FirstName, &s.LastName,
			&s.Department, &s.CurrentSemester, &s.BatchYear, &s.IsActive)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, &s)
	}

	return students, totalCount, nil
}
