package attainment

import (
	"database/sql"
	"fmt"

	"github.com/trahulprabhu38/major-project-sub003/app/database"
	"github.com/trahulprabhu38/major-project-sub003/app/errs"
	"github.com/trahulprabhu38/major-project-sub003/app/models"
	"github.com/trahulprabhu38/major-project-sub003/app/routes/comappings"
)

// VerticalSummary reports the outcome of a per-marksheet vertical analysis
// run. A marksheet whose student-ID column cannot be resolved is skipped
// with a diagnostic instead of failing the pipeline.
type VerticalSummary struct {
	MarksheetID       string   `json:"marksheet_id"`
	QuestionsAnalyzed int      `json:"questions_analyzed"`
	RowsStored        int      `json:"rows_stored"`
	Skipped           bool     `json:"skipped"`
	Warnings          []string `json:"warnings,omitempty"`
}

// CalculateVerticalAnalysis recomputes per-question attainment statistics
// for one marksheet and replaces its question_vertical_analysis rows in a
// single transaction.
func CalculateVerticalAnalysis(db *sql.DB, marksheetID string) (*VerticalSummary, error) {
	marksheet, err := database.GetMarksheetByID(db, marksheetID)
	if err != nil {
		return nil, err
	}
	if marksheet == nil {
		return nil, &errs.NotFoundError{Entity: "marksheet", ID: marksheetID}
	}

	summary := &VerticalSummary{MarksheetID: marksheetID}

	idColumn, err := database.ResolveStudentIDColumn(db, marksheet.TableName)
	if err != nil {
		return nil, err
	}
	if idColumn == "" {
		summary.Skipped = true
		summary.Warnings = append(summary.Warnings,
			fmt.Sprintf("no student identifier column found in table %s, marksheet skipped", marksheet.TableName))
		return summary, nil
	}

	mappings, err := comappings.GetValidMappings(db, marksheetID)
	if err != nil {
		return nil, err
	}
	if len(mappings) == 0 {
		summary.Warnings = append(summary.Warnings, "no valid CO mappings for this marksheet")
	}

	tableColumns, err := database.GetTableColumns(db, marksheet.TableName)
	if err != nil {
		return nil, err
	}

	// Stats are computed once per question column; a multi-CO question
	// contributes the same counts to each of its mapped COs.
	statsByQuestion := map[string]QuestionStats{}
	maxByQuestion := map[string]float64{}

	for _, m := range mappings {
		if _, done := statsByQuestion[m.QuestionColumn]; done {
			continue
		}

		actual := database.FindColumnCaseInsensitive(tableColumns, m.QuestionColumn)
		if actual == "" {
			summary.Warnings = append(summary.Warnings,
				fmt.Sprintf("mapped question %q not present in table %s, skipped", m.QuestionColumn, marksheet.TableName))
			continue
		}

		maxMarks := comappings.DefaultMaxMarks
		if m.MaxMarks != nil {
			maxMarks = *m.MaxMarks
		}

		marks, err := database.ReadQuestionMarks(db, marksheet.TableName, actual)
		if err != nil {
			return nil, err
		}

		statsByQuestion[m.QuestionColumn] = AnalyzeQuestion(marks, maxMarks)
		maxByQuestion[m.QuestionColumn] = maxMarks
		summary.QuestionsAnalyzed++
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM question_vertical_analysis WHERE marksheet_id = $1`, marksheetID); err != nil {
		return nil, &errs.TransactionFailure{Op: "delete old vertical analysis", Err: err}
	}

	insertStmt, err := tx.Prepare(`
		INSERT INTO question_vertical_analysis (marksheet_id, question_column, co_number, max_marks, attempts_count, students_above_threshold)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	if err != nil {
		return nil, &errs.TransactionFailure{Op: "prepare vertical insert", Err: err}
	}
	defer insertStmt.Close()

	for _, m := range mappings {
		stats, ok := statsByQuestion[m.QuestionColumn]
		if !ok {
			continue
		}

		_, err := insertStmt.Exec(marksheetID, m.QuestionColumn, m.CONumber,
			maxByQuestion[m.QuestionColumn], stats.AttemptsCount, stats.StudentsAboveThreshold)
		if err != nil {
			return nil, &errs.TransactionFailure{Op: "insert vertical analysis", Err: err}
		}
		summary.RowsStored++
	}

	if err := tx.Commit(); err != nil {
		return nil, &errs.TransactionFailure{Op: "commit", Err: err}
	}

	return summary, nil
}

// CalculateCombinedAttainment rebuilds the combined CO attainment of a
// course from every marksheet's vertical analysis. The stored set is fully
// replaced in one transaction so it always reflects the current CO list; a
// CO with no mapped questions yet gets a zero-valued row.
func CalculateCombinedAttainment(db *sql.DB, courseID string) ([]CombinedResult, error) {
	course, err := database.GetCourseByID(db, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, &errs.NotFoundError{Entity: "course", ID: courseID}
	}

	outcomes, err := database.GetCourseOutcomes(db, courseID)
	if err != nil {
		return nil, err
	}

	aggregateQuery := `
		SELECT COUNT(qva.id),
			COALESCE(SUM(qcm.max_marks), 0),
			COALESCE(SUM(qva.attempts_count), 0),
			COALESCE(SUM(qva.students_above_threshold), 0)
		FROM question_vertical_analysis qva
		JOIN question_co_mappings qcm
			ON qcm.marksheet_id = qva.marksheet_id
			AND LOWER(qcm.question_column) = LOWER(qva.question_column)
			AND qcm.co_number = qva.co_number
			AND qcm.deleted_at IS NULL
		JOIN marksheets m ON m.id = qva.marksheet_id AND m.deleted_at IS NULL
		WHERE m.course_id = $1 AND qva.co_number = $2
	`

	var results []CombinedResult
	for _, co := range outcomes {
		r := CombinedResult{
			COID:      co.ID,
			CONumber:  co.CONumber,
			Threshold: Threshold,
		}

		err := db.QueryRow(aggregateQuery, courseID, co.CONumber).Scan(
			&r.NumQuestions, &r.TotalMaxMarks, &r.TotalAttempts, &r.StudentsAboveThreshold,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to aggregate CO%d: %w", co.CONumber, err)
		}

		if r.NumQuestions > 0 {
			r.AttainmentPercent = AttainmentPercent(r.StudentsAboveThreshold, r.TotalAttempts)
		}

		results = append(results, r)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Full rebuild: prior rows go first so deleted COs leave no orphans
	if _, err := tx.Exec(`DELETE FROM co_attainment WHERE course_id = $1`, courseID); err != nil {
		return nil, &errs.TransactionFailure{Op: "delete old attainment", Err: err}
	}

	insertStmt, err := tx.Prepare(`
		INSERT INTO co_attainment (course_id, co_id, co_number, num_questions, total_max_marks, total_attempts, students_above_threshold, attainment_percent, threshold)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`)
	if err != nil {
		return nil, &errs.TransactionFailure{Op: "prepare attainment insert", Err: err}
	}
	defer insertStmt.Close()

	for _, r := range results {
		_, err := insertStmt.Exec(courseID, r.COID, r.CONumber, r.NumQuestions,
			r.TotalMaxMarks, r.TotalAttempts, r.StudentsAboveThreshold, r.AttainmentPercent, r.Threshold)
		if err != nil {
			return nil, &errs.TransactionFailure{Op: "insert attainment", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, &errs.TransactionFailure{Op: "commit", Err: err}
	}

	return results, nil
}

// GetCourseAttainment reads the stored combined attainment rows for a course
func GetCourseAttainment(db *sql.DB, courseID string) ([]*models.CombinedCOAttainment, error) {
	query := `
		SELECT id, course_id, co_id, co_number, num_questions, total_max_marks,
			total_attempts, students_above_threshold, attainment_percent, threshold,
			created_at, updated_at
		FROM co_attainment
		WHERE course_id = $1
		ORDER BY co_number ASC
	`

	rows, err := db.Query(query, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attainment: %w", err)
	}
	defer rows.Close()

	var attainments []*models.CombinedCOAttainment
	for rows.Next() {
		var a models.CombinedCOAttainment
		err := rows.Scan(&a.ID, &a.CourseID, &a.COID, &a.CONumber, &a.NumQuestions,
			&a.TotalMaxMarks, &a.TotalAttempts, &a.StudentsAboveThreshold,
			&a.AttainmentPercent, &a.Threshold, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attainment: %w", err)
		}
		attainments = append(attainments, &a)
	}

	return attainments, nil
}
