package database

import (
	"database/sql"
	"fmt"
	"log"
)

// RunMigrations creates the derived tables owned by the attainment and
// grading pipelines. Source tables (courses, students, marksheets, the
// dynamic mark tables, CIE/SEE rows) are provisioned by the main schema and
// the upload service; everything here is regenerable derived data.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS question_co_mappings (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			marksheet_id uuid NOT NULL,
			question_column text NOT NULL,
			original_name text NOT NULL DEFAULT '',
			co_number integer NOT NULL,
			co_id uuid,
			max_marks decimal(6,2),
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW(),
			deleted_at timestamptz
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_qcm_sheet_question_co
			ON question_co_mappings (marksheet_id, question_column, co_number)`,

		`CREATE TABLE IF NOT EXISTS comapping_files (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			marksheet_id uuid NOT NULL UNIQUE,
			content_hash text NOT NULL,
			mapping_count integer NOT NULL DEFAULT 0,
			uploaded_by uuid,
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS question_vertical_analysis (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			marksheet_id uuid NOT NULL,
			question_column text NOT NULL,
			co_number integer NOT NULL,
			max_marks decimal(6,2) NOT NULL,
			attempts_count integer NOT NULL DEFAULT 0,
			students_above_threshold integer NOT NULL DEFAULT 0,
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_qva_sheet_question_co
			ON question_vertical_analysis (marksheet_id, question_column, co_number)`,

		`CREATE TABLE IF NOT EXISTS co_attainment (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			course_id uuid NOT NULL,
			co_id uuid NOT NULL,
			co_number integer NOT NULL,
			num_questions integer NOT NULL DEFAULT 0,
			total_max_marks decimal(8,2) NOT NULL DEFAULT 0,
			total_attempts integer NOT NULL DEFAULT 0,
			students_above_threshold integer NOT NULL DEFAULT 0,
			attainment_percent decimal(5,2) NOT NULL DEFAULT 0,
			threshold decimal(5,2) NOT NULL DEFAULT 60.0,
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW(),
			UNIQUE (course_id, co_id)
		)`,

		`CREATE TABLE IF NOT EXISTS student_final_grades (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id uuid NOT NULL,
			course_id uuid NOT NULL,
			cie_on_50 decimal(5,2) NOT NULL DEFAULT 0,
			see_on_50 decimal(5,2) NOT NULL DEFAULT 0,
			final_percentage decimal(5,2) NOT NULL DEFAULT 0,
			letter_grade text NOT NULL DEFAULT 'F',
			grade_points decimal(4,2) NOT NULL DEFAULT 0,
			credits integer NOT NULL DEFAULT 3,
			is_passed boolean NOT NULL DEFAULT false,
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, course_id)
		)`,

		`CREATE TABLE IF NOT EXISTS semester_results (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id uuid NOT NULL,
			semester_number integer NOT NULL,
			academic_year text NOT NULL DEFAULT '',
			sgpa decimal(4,2) NOT NULL DEFAULT 0,
			credits_registered integer NOT NULL DEFAULT 0,
			credits_earned integer NOT NULL DEFAULT 0,
			courses_total integer NOT NULL DEFAULT 0,
			courses_passed integer NOT NULL DEFAULT 0,
			semester_status text NOT NULL DEFAULT 'in_progress',
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW(),
			UNIQUE (student_id, semester_number)
		)`,

		`CREATE TABLE IF NOT EXISTS student_cgpa (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id uuid NOT NULL UNIQUE,
			cgpa decimal(4,2) NOT NULL DEFAULT 0,
			current_semester integer NOT NULL DEFAULT 1,
			total_credits integer NOT NULL DEFAULT 0,
			cgpa_history jsonb NOT NULL DEFAULT '[]',
			created_at timestamptz NOT NULL DEFAULT NOW(),
			updated_at timestamptz NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
